package verify

import (
	"math"
	"strings"

	"github.com/aprimc/from-lambda/expr"
)

// Unary applies a prefix operator.
func Unary(op expr.UnaryOp, x Value) (Value, error) {
	if op == expr.Not {
		return !Truth(x), nil
	}

	switch x := x.(type) {
	case bool, int64:
		n, _ := asInt(x)
		switch op {
		case expr.Pos:
			return n, nil
		case expr.Neg:
			return -n, nil
		case expr.Invert:
			return ^n, nil
		}
	case float64:
		switch op {
		case expr.Pos:
			return x, nil
		case expr.Neg:
			return -x, nil
		}
	case complex128:
		switch op {
		case expr.Pos:
			return x, nil
		case expr.Neg:
			return -x, nil
		}
	}

	return nil, evalErrorf("bad operand type for unary %s: '%s'", op, typeName(x))
}

// Binary applies an infix operator other than and/or, which short-circuit
// and are handled by the callers.
func Binary(op expr.BinaryOp, x, y Value) (Value, error) {
	switch {
	case op == expr.Subscript:
		return subscript(x, y)
	case op.IsCompare():
		return compare(op, x, y)
	case op.IsBoolean():
		return nil, evalErrorf("%s does not evaluate eagerly", op)
	}

	if isNumber(x) && isNumber(y) {
		return arith(op, x, y)
	}

	switch op {
	case expr.Add:
		return concat(x, y)
	case expr.Mul:
		if _, ok := asInt(y); ok {
			return repeat(x, y)
		}
		return repeat(y, x)
	case expr.Mod:
		if s, ok := x.(string); ok {
			return nil, evalErrorf("string formatting of %q is not supported", s)
		}
	}

	return nil, unsupported(op, x, y)
}

func unsupported(op expr.BinaryOp, x, y Value) error {
	return evalErrorf("unsupported operand type(s) for %s: '%s' and '%s'",
		op, typeName(x), typeName(y))
}

func arith(op expr.BinaryOp, x, y Value) (Value, error) {
	_, xBool := x.(bool)
	_, yBool := y.(bool)
	if xBool && yBool {
		a, b := x.(bool), y.(bool)
		switch op {
		case expr.BitAnd:
			return a && b, nil
		case expr.BitOr:
			return a || b, nil
		case expr.BitXor:
			return a != b, nil
		}
	}

	switch numericKind(x, y) {
	case 0:
		a, _ := asInt(x)
		b, _ := asInt(y)
		return intArith(op, a, b)
	case 1:
		return floatArith(op, asFloat(x), asFloat(y))
	default:
		return complexArith(op, asComplex(x), asComplex(y))
	}
}

func intArith(op expr.BinaryOp, a, b int64) (Value, error) {
	switch op {
	case expr.Add:
		return a + b, nil
	case expr.Sub:
		return a - b, nil
	case expr.Mul:
		return a * b, nil
	case expr.TrueDiv:
		if b == 0 {
			return nil, evalErrorf("division by zero")
		}
		return float64(a) / float64(b), nil
	case expr.FloorDiv, expr.Mod:
		if b == 0 {
			return nil, evalErrorf("integer division or modulo by zero")
		}
		q, r := a/b, a%b
		if r != 0 && (r < 0) != (b < 0) {
			q--
			r += b
		}
		if op == expr.FloorDiv {
			return q, nil
		}
		return r, nil
	case expr.Power:
		if b < 0 {
			if a == 0 {
				return nil, evalErrorf("0.0 cannot be raised to a negative power")
			}
			return math.Pow(float64(a), float64(b)), nil
		}
		result := int64(1)
		for ; b > 0; b-- {
			result *= a
		}
		return result, nil
	case expr.LShift, expr.RShift:
		if b < 0 {
			return nil, evalErrorf("negative shift count")
		}
		if op == expr.LShift {
			return a << uint64(b), nil
		}
		return a >> uint64(b), nil
	case expr.BitAnd:
		return a & b, nil
	case expr.BitOr:
		return a | b, nil
	case expr.BitXor:
		return a ^ b, nil
	}
	return nil, unsupported(op, a, b)
}

func floatArith(op expr.BinaryOp, a, b float64) (Value, error) {
	switch op {
	case expr.Add:
		return a + b, nil
	case expr.Sub:
		return a - b, nil
	case expr.Mul:
		return a * b, nil
	case expr.TrueDiv, expr.FloorDiv, expr.Mod:
		if b == 0 {
			return nil, evalErrorf("float division by zero")
		}
		switch op {
		case expr.TrueDiv:
			return a / b, nil
		case expr.FloorDiv:
			return math.Floor(a / b), nil
		}
		r := math.Mod(a, b)
		if r != 0 && (r < 0) != (b < 0) {
			r += b
		}
		return r, nil
	case expr.Power:
		if a == 0 && b < 0 {
			return nil, evalErrorf("0.0 cannot be raised to a negative power")
		}
		return math.Pow(a, b), nil
	}
	return nil, unsupported(op, a, b)
}

func complexArith(op expr.BinaryOp, a, b complex128) (Value, error) {
	switch op {
	case expr.Add:
		return a + b, nil
	case expr.Sub:
		return a - b, nil
	case expr.Mul:
		return a * b, nil
	case expr.TrueDiv:
		if b == 0 {
			return nil, evalErrorf("complex division by zero")
		}
		return a / b, nil
	case expr.Power:
		return cpow(a, b), nil
	}
	return nil, unsupported(op, a, b)
}

func concat(x, y Value) (Value, error) {
	switch x := x.(type) {
	case string:
		if y, ok := y.(string); ok {
			return x + y, nil
		}
	case List:
		if y, ok := y.(List); ok {
			return append(append(List{}, x...), y...), nil
		}
	case expr.TupleValue:
		if y, ok := y.(expr.TupleValue); ok {
			return append(append(expr.TupleValue{}, x...), y...), nil
		}
	}
	return nil, unsupported(expr.Add, x, y)
}

func repeat(seq, count Value) (Value, error) {
	n, ok := asInt(count)
	if !ok {
		return nil, unsupported(expr.Mul, seq, count)
	}
	if n < 0 {
		n = 0
	}

	switch s := seq.(type) {
	case string:
		return strings.Repeat(s, int(n)), nil
	case List:
		out := List{}
		for i := int64(0); i < n; i++ {
			out = append(out, s...)
		}
		return out, nil
	case expr.TupleValue:
		out := expr.TupleValue{}
		for i := int64(0); i < n; i++ {
			out = append(out, s...)
		}
		return out, nil
	}
	return nil, unsupported(expr.Mul, seq, count)
}

func compare(op expr.BinaryOp, x, y Value) (Value, error) {
	switch op {
	case expr.Eq:
		return equal(x, y), nil
	case expr.Ne:
		return !equal(x, y), nil
	case expr.Is:
		return identical(x, y), nil
	case expr.IsNot:
		return !identical(x, y), nil
	case expr.In, expr.NotIn:
		found, err := member(x, y)
		if err != nil {
			return nil, err
		}
		return found == (op == expr.In), nil
	}

	c, err := order(op, x, y)
	if err != nil {
		return nil, err
	}
	switch op {
	case expr.Lt:
		return c < 0, nil
	case expr.Le:
		return c <= 0, nil
	case expr.Gt:
		return c > 0, nil
	default:
		return c >= 0, nil
	}
}

// order returns the sign of x - y for orderable values.
func order(op expr.BinaryOp, x, y Value) (int, error) {
	if isNumber(x) && isNumber(y) && numericKind(x, y) < 2 {
		if numericKind(x, y) == 0 {
			a, _ := asInt(x)
			b, _ := asInt(y)
			switch {
			case a < b:
				return -1, nil
			case a > b:
				return 1, nil
			}
			return 0, nil
		}
		return sign(asFloat(x) - asFloat(y)), nil
	}

	switch x := x.(type) {
	case string:
		if y, ok := y.(string); ok {
			return strings.Compare(x, y), nil
		}
	case List:
		if y, ok := y.(List); ok {
			return orderSeq(op, x, y)
		}
	case expr.TupleValue:
		if y, ok := y.(expr.TupleValue); ok {
			return orderSeq(op, x, y)
		}
	}

	return 0, evalErrorf("'%s' not supported between instances of '%s' and '%s'",
		op, typeName(x), typeName(y))
}

func orderSeq(op expr.BinaryOp, a, b []Value) (int, error) {
	for i := 0; i < len(a) && i < len(b); i++ {
		if equal(a[i], b[i]) {
			continue
		}
		return order(op, a[i], b[i])
	}
	return sign(float64(len(a) - len(b))), nil
}

func sign(f float64) int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	}
	return 0
}

func member(x, container Value) (bool, error) {
	switch c := container.(type) {
	case string:
		s, ok := x.(string)
		if !ok {
			return false, evalErrorf("'in <string>' requires string as left operand, not %s", typeName(x))
		}
		return strings.Contains(c, s), nil
	case List:
		return contains(c, x), nil
	case expr.TupleValue:
		return contains(c, x), nil
	case Set:
		return contains(c, x), nil
	case Dict:
		_, found := c.lookup(x)
		return found, nil
	}
	return false, evalErrorf("argument of type '%s' is not iterable", typeName(container))
}

func subscript(x, key Value) (Value, error) {
	switch c := x.(type) {
	case Dict:
		v, found := c.lookup(key)
		if !found {
			return nil, evalErrorf("key error: %s", Format(key))
		}
		return v, nil
	case string:
		i, err := index(key, len(c))
		if err != nil {
			return nil, err
		}
		return string(c[i]), nil
	case List:
		i, err := index(key, len(c))
		if err != nil {
			return nil, err
		}
		return c[i], nil
	case expr.TupleValue:
		i, err := index(key, len(c))
		if err != nil {
			return nil, err
		}
		return c[i], nil
	}
	return nil, evalErrorf("'%s' object is not subscriptable", typeName(x))
}

func index(key Value, n int) (int, error) {
	i, ok := asInt(key)
	if !ok {
		return 0, evalErrorf("indices must be integers, not %s", typeName(key))
	}
	if i < 0 {
		i += int64(n)
	}
	if i < 0 || i >= int64(n) {
		return 0, evalErrorf("index out of range")
	}
	return int(i), nil
}

// Attribute looks up name on x.
func Attribute(x Value, name string) (Value, error) {
	if o, ok := x.(Object); ok {
		if v, found := o[name]; found {
			return normalize(v), nil
		}
	}

	if name == "real" || name == "imag" {
		switch v := x.(type) {
		case bool, int64:
			n, _ := asInt(v)
			if name == "real" {
				return n, nil
			}
			return int64(0), nil
		case float64:
			if name == "real" {
				return v, nil
			}
			return 0.0, nil
		case complex128:
			if name == "real" {
				return real(v), nil
			}
			return imag(v), nil
		}
	}

	return nil, evalErrorf("'%s' object has no attribute '%s'", typeName(x), name)
}

// Call calls f with args.
func Call(f Value, args []Value) (Value, error) {
	fn, ok := f.(Func)
	if !ok {
		return nil, evalErrorf("'%s' object is not callable", typeName(f))
	}

	v, err := fn(args...)
	if err != nil {
		return nil, err
	}
	return normalize(v), nil
}
