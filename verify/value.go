package verify

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"reflect"
	"strings"

	"github.com/aprimc/from-lambda/expr"
)

// Value is a concrete runtime value.
type Value = interface{}

// List is a list value.
type List []Value

// Set is a set value. Items keep insertion order and are unique.
type Set []Value

// Entry is one key/value item of a Dict.
type Entry struct {
	Key   Value
	Value Value
}

// Dict is a dictionary value. Entries keep insertion order.
type Dict []Entry

// Object is a value whose attributes are looked up by name.
type Object map[string]Value

// Func is a callable value.
type Func func(args ...Value) (Value, error)

// ErrEval reports a runtime failure such as a type mismatch or a division
// by zero. Both sides of a round trip are expected to fail alike.
var ErrEval = errors.New("evaluation error")

func evalErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrEval, fmt.Sprintf(format, args...))
}

// normalize widens ints to int64 and floats to float64.
func normalize(v Value) Value {
	switch v := v.(type) {
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case float32:
		return float64(v)
	case expr.TupleValue:
		t := make(expr.TupleValue, len(v))
		for i, item := range v {
			t[i] = normalize(item)
		}
		return t
	case []interface{}:
		l := make(List, len(v))
		for i, item := range v {
			l[i] = normalize(item)
		}
		return l
	case map[string]interface{}:
		return Object(v)
	}
	return v
}

func typeName(v Value) string {
	switch v.(type) {
	case nil:
		return "NoneType"
	case bool:
		return "bool"
	case int64:
		return "int"
	case float64:
		return "float"
	case complex128:
		return "complex"
	case string:
		return "str"
	case expr.TupleValue:
		return "tuple"
	case List:
		return "list"
	case Set:
		return "set"
	case Dict:
		return "dict"
	case Func:
		return "function"
	case Object:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}

// Truth returns the truth value of v.
func Truth(v Value) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case int64:
		return v != 0
	case float64:
		return v != 0
	case complex128:
		return v != 0
	case string:
		return v != ""
	case expr.TupleValue:
		return len(v) > 0
	case List:
		return len(v) > 0
	case Set:
		return len(v) > 0
	case Dict:
		return len(v) > 0
	}
	return true
}

// Same reports whether a and b are the same value for round-trip purposes:
// equal types and equal contents.
func Same(a, b Value) bool {
	fa, aok := a.(float64)
	fb, bok := b.(float64)
	if aok && bok && math.IsNaN(fa) && math.IsNaN(fb) {
		return true
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if _, ok := a.(Func); ok {
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	return reflect.DeepEqual(a, b)
}

// Format renders v the way the host language prints it.
func Format(v Value) string {
	switch v := v.(type) {
	case List:
		return "[" + formatAll([]Value(v)) + "]"
	case Set:
		if len(v) == 0 {
			return "set()"
		}
		return "{" + formatAll([]Value(v)) + "}"
	case Dict:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = Format(e.Key) + ": " + Format(e.Value)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case expr.TupleValue:
		if len(v) == 1 {
			return "(" + Format(v[0]) + ",)"
		}
		return "(" + formatAll([]Value(v)) + ")"
	case Func:
		return "<function>"
	case Object:
		return "<object>"
	}
	return expr.Repr(v)
}

func formatAll(vs []Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = Format(v)
	}
	return strings.Join(parts, ", ")
}

// isNumber reports whether v takes part in arithmetic. bool counts as an
// integer.
func isNumber(v Value) bool {
	switch v.(type) {
	case bool, int64, float64, complex128:
		return true
	}
	return false
}

func asInt(v Value) (int64, bool) {
	switch v := v.(type) {
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case int64:
		return v, true
	}
	return 0, false
}

func asFloat(v Value) float64 {
	if n, ok := asInt(v); ok {
		return float64(n)
	}
	return v.(float64)
}

func asComplex(v Value) complex128 {
	if c, ok := v.(complex128); ok {
		return c
	}
	return complex(asFloat(v), 0)
}

// numericKind returns the widest kind of x and y: 0 int, 1 float, 2
// complex.
func numericKind(x, y Value) int {
	kind := func(v Value) int {
		switch v.(type) {
		case float64:
			return 1
		case complex128:
			return 2
		}
		return 0
	}
	a, b := kind(x), kind(y)
	if a > b {
		return a
	}
	return b
}

func equal(x, y Value) bool {
	if isNumber(x) && isNumber(y) {
		switch numericKind(x, y) {
		case 0:
			a, _ := asInt(x)
			b, _ := asInt(y)
			return a == b
		case 1:
			return asFloat(x) == asFloat(y)
		default:
			return asComplex(x) == asComplex(y)
		}
	}

	switch x := x.(type) {
	case nil:
		return y == nil
	case string:
		s, ok := y.(string)
		return ok && x == s
	case expr.TupleValue:
		t, ok := y.(expr.TupleValue)
		return ok && equalSeq(x, t)
	case List:
		l, ok := y.(List)
		return ok && equalSeq(x, l)
	case Set:
		s, ok := y.(Set)
		if !ok || len(x) != len(s) {
			return false
		}
		for _, item := range x {
			if !contains([]Value(s), item) {
				return false
			}
		}
		return true
	case Dict:
		d, ok := y.(Dict)
		if !ok || len(x) != len(d) {
			return false
		}
		for _, e := range x {
			v, found := d.lookup(e.Key)
			if !found || !equal(e.Value, v) {
				return false
			}
		}
		return true
	}

	return identical(x, y)
}

func equalSeq(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func contains(items []Value, v Value) bool {
	for _, item := range items {
		if equal(item, v) {
			return true
		}
	}
	return false
}

func (d Dict) lookup(key Value) (Value, bool) {
	for _, e := range d {
		if equal(e.Key, key) {
			return e.Value, true
		}
	}
	return nil, false
}

// identical approximates the identity test: singletons and scalars compare
// by value, containers and functions by reference.
func identical(x, y Value) bool {
	switch x.(type) {
	case nil, bool, int64, float64, complex128, string:
		return reflect.TypeOf(x) == reflect.TypeOf(y) && x == y
	}

	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	if vx.Type() != vy.Type() {
		return false
	}
	switch vx.Kind() {
	case reflect.Slice:
		return vx.Pointer() == vy.Pointer() && vx.Len() == vy.Len()
	case reflect.Map, reflect.Func:
		return vx.Pointer() == vy.Pointer()
	}
	return false
}

func hashable(v Value) bool {
	switch v := v.(type) {
	case List, Set, Dict, Object:
		return false
	case expr.TupleValue:
		for _, item := range v {
			if !hashable(item) {
				return false
			}
		}
	}
	return true
}

func newSet(items []Value) (Set, error) {
	s := make(Set, 0, len(items))
	for _, item := range items {
		if !hashable(item) {
			return nil, evalErrorf("unhashable type: '%s'", typeName(item))
		}
		if !contains([]Value(s), item) {
			s = append(s, item)
		}
	}
	return s, nil
}

func newDict(keys, values []Value) (Dict, error) {
	d := make(Dict, 0, len(keys))
	for i, k := range keys {
		if !hashable(k) {
			return nil, evalErrorf("unhashable type: '%s'", typeName(k))
		}
		replaced := false
		for j := range d {
			if equal(d[j].Key, k) {
				d[j].Value = values[i]
				replaced = true
				break
			}
		}
		if !replaced {
			d = append(d, Entry{Key: k, Value: values[i]})
		}
	}
	return d, nil
}

func cpow(x, y complex128) complex128 {
	if x == 0 && y == 0 {
		return 1
	}
	return cmplx.Pow(x, y)
}
