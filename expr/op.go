package expr

import "fmt"

// Binding strengths. Higher binds tighter.
const (
	PrecLambda      = 0
	PrecConditional = 2
	PrecOr          = 5
	PrecAnd         = 7
	PrecNot         = 9
	PrecCompare     = 10
	PrecBitOr       = 12
	PrecBitXor      = 14
	PrecBitAnd      = 16
	PrecShift       = 18
	PrecAdd         = 20
	PrecMul         = 22
	PrecUnary       = 25
	PrecPower       = 27
	PrecPostfix     = 30
	PrecDisplay     = 32
	PrecAtom        = 63
)

// UnaryOp is a prefix operator.
type UnaryOp int

// Unary operators.
const (
	Pos UnaryOp = iota
	Neg
	Invert
	Not
	numUnaryOps
)

var unaryOps = [...]string{
	Pos:    "+",
	Neg:    "-",
	Invert: "~",
	Not:    "not",
}

func (op UnaryOp) String() string {
	if op >= 0 && op < numUnaryOps {
		return unaryOps[op]
	}
	return fmt.Sprintf("UnaryOp<%d>", int(op))
}

// Precedence returns the binding strength of the operator.
func (op UnaryOp) Precedence() int {
	if op == Not {
		return PrecNot
	}
	return PrecUnary
}

// BinaryOp is an infix operator. Subscript is treated as a binary operator
// printed as x[y].
type BinaryOp int

// Binary operators.
const (
	Power BinaryOp = iota
	Mul
	MatMul
	TrueDiv
	FloorDiv
	Mod
	Add
	Sub
	Subscript
	LShift
	RShift
	BitAnd
	BitXor
	BitOr

	compare_op_begin
	Lt
	Le
	Eq
	Ne
	Gt
	Ge
	In
	NotIn
	Is
	IsNot
	compare_op_end

	And
	Or
	numBinaryOps
)

var binaryOps = [...]string{
	Power:     "**",
	Mul:       "*",
	MatMul:    "@",
	TrueDiv:   "/",
	FloorDiv:  "//",
	Mod:       "%",
	Add:       "+",
	Sub:       "-",
	Subscript: "[]",
	LShift:    "<<",
	RShift:    ">>",
	BitAnd:    "&",
	BitXor:    "^",
	BitOr:     "|",
	Lt:        "<",
	Le:        "<=",
	Eq:        "==",
	Ne:        "!=",
	Gt:        ">",
	Ge:        ">=",
	In:        "in",
	NotIn:     "not in",
	Is:        "is",
	IsNot:     "is not",
	And:       "and",
	Or:        "or",
}

var binaryPrecedence = [...]int{
	Power:     PrecPower,
	Mul:       PrecMul,
	MatMul:    PrecMul,
	TrueDiv:   PrecMul,
	FloorDiv:  PrecMul,
	Mod:       PrecMul,
	Add:       PrecAdd,
	Sub:       PrecAdd,
	Subscript: PrecPostfix,
	LShift:    PrecShift,
	RShift:    PrecShift,
	BitAnd:    PrecBitAnd,
	BitXor:    PrecBitXor,
	BitOr:     PrecBitOr,
	Lt:        PrecCompare,
	Le:        PrecCompare,
	Eq:        PrecCompare,
	Ne:        PrecCompare,
	Gt:        PrecCompare,
	Ge:        PrecCompare,
	In:        PrecCompare,
	NotIn:     PrecCompare,
	Is:        PrecCompare,
	IsNot:     PrecCompare,
	And:       PrecAnd,
	Or:        PrecOr,
}

func (op BinaryOp) String() string {
	if op >= 0 && op < numBinaryOps && binaryOps[op] != "" {
		return binaryOps[op]
	}
	return fmt.Sprintf("BinaryOp<%d>", int(op))
}

// Precedence returns the binding strength of the operator.
func (op BinaryOp) Precedence() int {
	if op < 0 || op >= numBinaryOps || binaryOps[op] == "" {
		panic(fmt.Sprintf("invalid binary operator %d", int(op)))
	}
	return binaryPrecedence[op]
}

// IsCompare returns true if op is a comparison, membership or identity
// test. Comparisons chain in the host language and so never associate.
func (op BinaryOp) IsCompare() bool {
	return op > compare_op_begin && op < compare_op_end
}

// IsBoolean returns true for the short-circuit operators.
func (op BinaryOp) IsBoolean() bool {
	return op == And || op == Or
}

// IsRightAssoc returns true if op groups from the right.
func (op BinaryOp) IsRightAssoc() bool {
	return op == Power
}

// LookupCompare returns the comparison operator spelled s.
func LookupCompare(s string) (BinaryOp, bool) {
	for op := compare_op_begin + 1; op < compare_op_end; op++ {
		if binaryOps[op] == s {
			return op, true
		}
	}
	return 0, false
}
