// Package expr defines the expression tree produced by the decompiler, the
// operator precedence table shared by the normalizer and the printer, and
// the normalizer itself.
//
// The node set is closed: every Node is one of the types declared in this
// file. Nodes are immutable once built and form a tree.
package expr

import "strings"

// Node is an expression tree node.
type Node interface {
	node()
}

func (*Literal) node()     {}
func (*Param) node()       {}
func (*Global) node()      {}
func (*Unary) node()       {}
func (*Binary) node()      {}
func (*Attribute) node()   {}
func (*Conditional) node() {}
func (*List) node()        {}
func (*Tuple) node()       {}
func (*Set) node()         {}
func (*Map) node()         {}
func (*Call) node()        {}
func (*Function) node()    {}

// Literal is a constant. Text, when set, is the canonical host rendering
// of Value and takes priority when printing.
type Literal struct {
	Value interface{}
	Text  string
}

// Param is a reference to a parameter of the enclosing function.
type Param struct {
	Name string
}

// Global is a reference to a free (global) name.
type Global struct {
	Name string
}

// Unary applies a prefix operator.
type Unary struct {
	Op UnaryOp
	X  Node
}

// Binary applies an infix operator.
type Binary struct {
	Op BinaryOp
	X  Node
	Y  Node
}

// Attribute is X.Name.
type Attribute struct {
	Name string
	X    Node
}

// Conditional is Then if Cond else Else.
type Conditional struct {
	Cond Node
	Then Node
	Else Node
}

// List is a list display.
type List struct {
	Items []Node
}

// Tuple is a tuple display.
type Tuple struct {
	Items []Node
}

// Set is a set display.
type Set struct {
	Items []Node
}

// Pair is one key/value entry of a Map.
type Pair struct {
	Key   Node
	Value Node
}

// Map is a dictionary display. Pairs keep insertion order.
type Map struct {
	Pairs []Pair
}

// Call calls Func with positional arguments.
type Call struct {
	Func Node
	Args []Node
}

// Function is the root of a decompiled tree.
type Function struct {
	Params []string
	Body   Node
}

// Precedence returns the binding strength of n.
func Precedence(n Node) int {
	switch n := n.(type) {
	case *Binary:
		return n.Op.Precedence()
	case *Unary:
		return n.Op.Precedence()
	case *Function:
		return PrecLambda
	case *Conditional:
		return PrecConditional
	case *Attribute, *Call:
		return PrecPostfix
	case *List, *Tuple, *Set, *Map:
		return PrecDisplay
	case *Literal:
		// Folded negative constants read as a unary minus.
		if strings.HasPrefix(n.String(), "-") {
			return PrecUnary
		}
		return PrecAtom
	default:
		return PrecAtom
	}
}

// NewBinary is a shorthand for &Binary{op, x, y}.
func NewBinary(op BinaryOp, x, y Node) *Binary {
	return &Binary{Op: op, X: x, Y: y}
}

// NewUnary is a shorthand for &Unary{op, x}.
func NewUnary(op UnaryOp, x Node) *Unary {
	return &Unary{Op: op, X: x}
}
