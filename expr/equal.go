package expr

import "reflect"

// Equal reports whether a and b are structurally equal: same node types,
// same operators and names, and recursively equal children.
func Equal(a, b Node) bool {
	switch a := a.(type) {
	case *Literal:
		b, ok := b.(*Literal)
		return ok && a.Text == b.Text && literalValueEqual(a.Value, b.Value)
	case *Param:
		b, ok := b.(*Param)
		return ok && a.Name == b.Name
	case *Global:
		b, ok := b.(*Global)
		return ok && a.Name == b.Name
	case *Unary:
		b, ok := b.(*Unary)
		return ok && a.Op == b.Op && Equal(a.X, b.X)
	case *Binary:
		b, ok := b.(*Binary)
		return ok && a.Op == b.Op && Equal(a.X, b.X) && Equal(a.Y, b.Y)
	case *Attribute:
		b, ok := b.(*Attribute)
		return ok && a.Name == b.Name && Equal(a.X, b.X)
	case *Conditional:
		b, ok := b.(*Conditional)
		return ok && Equal(a.Cond, b.Cond) &&
			Equal(a.Then, b.Then) && Equal(a.Else, b.Else)
	case *List:
		b, ok := b.(*List)
		return ok && equalAll(a.Items, b.Items)
	case *Tuple:
		b, ok := b.(*Tuple)
		return ok && equalAll(a.Items, b.Items)
	case *Set:
		b, ok := b.(*Set)
		return ok && equalAll(a.Items, b.Items)
	case *Map:
		b, ok := b.(*Map)
		if !ok || len(a.Pairs) != len(b.Pairs) {
			return false
		}
		for i := range a.Pairs {
			if !Equal(a.Pairs[i].Key, b.Pairs[i].Key) ||
				!Equal(a.Pairs[i].Value, b.Pairs[i].Value) {
				return false
			}
		}
		return true
	case *Call:
		b, ok := b.(*Call)
		return ok && Equal(a.Func, b.Func) && equalAll(a.Args, b.Args)
	case *Function:
		b, ok := b.(*Function)
		if !ok || len(a.Params) != len(b.Params) {
			return false
		}
		for i := range a.Params {
			if a.Params[i] != b.Params[i] {
				return false
			}
		}
		return Equal(a.Body, b.Body)
	default:
		return false
	}
}

func equalAll(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Literal values are opaque host values; slices and maps are compared
// element-wise.
func literalValueEqual(a, b interface{}) bool {
	return reflect.DeepEqual(a, b)
}
