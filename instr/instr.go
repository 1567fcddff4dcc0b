// Package instr defines the instruction model consumed by the decompiler.
package instr

import "fmt"

// Category is the kind of an instruction.
type Category int

// Supported instruction categories. Anything else is rejected by Decode.
const (
	LoadConst Category = iota
	LoadFast
	LoadGlobal
	LoadAttr

	UnaryPositive
	UnaryNegative
	UnaryNot
	UnaryInvert

	BinaryPower
	BinaryMultiply
	BinaryMatrixMultiply
	BinaryFloorDivide
	BinaryTrueDivide
	BinaryModulo
	BinaryAdd
	BinarySubtract
	BinarySubscr
	BinaryLshift
	BinaryRshift
	BinaryAnd
	BinaryXor
	BinaryOr
	CompareOp

	JumpIfFalseOrPop
	JumpIfTrueOrPop
	PopJumpIfFalse
	PopJumpIfTrue
	JumpForward

	BuildList
	BuildTuple
	BuildSet
	BuildMap
	CallFunction

	Nop
	PopTop
	RotTwo
	RotThree
	DupTop
	DupTopTwo
	ReturnValue

	numCategories
)

var categoryNames = [...]string{
	LoadConst:            "LOAD_CONST",
	LoadFast:             "LOAD_FAST",
	LoadGlobal:           "LOAD_GLOBAL",
	LoadAttr:             "LOAD_ATTR",
	UnaryPositive:        "UNARY_POSITIVE",
	UnaryNegative:        "UNARY_NEGATIVE",
	UnaryNot:             "UNARY_NOT",
	UnaryInvert:          "UNARY_INVERT",
	BinaryPower:          "BINARY_POWER",
	BinaryMultiply:       "BINARY_MULTIPLY",
	BinaryMatrixMultiply: "BINARY_MATRIX_MULTIPLY",
	BinaryFloorDivide:    "BINARY_FLOOR_DIVIDE",
	BinaryTrueDivide:     "BINARY_TRUE_DIVIDE",
	BinaryModulo:         "BINARY_MODULO",
	BinaryAdd:            "BINARY_ADD",
	BinarySubtract:       "BINARY_SUBTRACT",
	BinarySubscr:         "BINARY_SUBSCR",
	BinaryLshift:         "BINARY_LSHIFT",
	BinaryRshift:         "BINARY_RSHIFT",
	BinaryAnd:            "BINARY_AND",
	BinaryXor:            "BINARY_XOR",
	BinaryOr:             "BINARY_OR",
	CompareOp:            "COMPARE_OP",
	JumpIfFalseOrPop:     "JUMP_IF_FALSE_OR_POP",
	JumpIfTrueOrPop:      "JUMP_IF_TRUE_OR_POP",
	PopJumpIfFalse:       "POP_JUMP_IF_FALSE",
	PopJumpIfTrue:        "POP_JUMP_IF_TRUE",
	JumpForward:          "JUMP_FORWARD",
	BuildList:            "BUILD_LIST",
	BuildTuple:           "BUILD_TUPLE",
	BuildSet:             "BUILD_SET",
	BuildMap:             "BUILD_MAP",
	CallFunction:         "CALL_FUNCTION",
	Nop:                  "NOP",
	PopTop:               "POP_TOP",
	RotTwo:               "ROT_TWO",
	RotThree:             "ROT_THREE",
	DupTop:               "DUP_TOP",
	DupTopTwo:            "DUP_TOP_TWO",
	ReturnValue:          "RETURN_VALUE",
}

// Name returns the host opcode name of the category.
func (c Category) Name() string {
	if c < 0 || c >= numCategories {
		panic(fmt.Sprintf("invalid category %d", int(c)))
	}
	return categoryNames[c]
}

func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return fmt.Sprintf("Category<%d>", int(c))
	}
	return categoryNames[c]
}

// IsJump reports whether the operand of the category is a jump target.
func (c Category) IsJump() bool {
	switch c {
	case JumpIfFalseOrPop, JumpIfTrueOrPop,
		PopJumpIfFalse, PopJumpIfTrue, JumpForward:
		return true
	}
	return false
}

// HasName reports whether the operand of the category is an identifier.
func (c Category) HasName() bool {
	return c == LoadFast || c == LoadGlobal || c == LoadAttr
}

// HasCount reports whether the operand of the category is an item count.
func (c Category) HasCount() bool {
	switch c {
	case BuildList, BuildTuple, BuildSet, BuildMap, CallFunction:
		return true
	}
	return false
}

// Raw is an instruction as handed over by the host runtime, before
// decoding.
type Raw struct {
	OpName  string
	Arg     interface{}
	ArgRepr string
	Offset  int
}

// Instruction is a decoded instruction. Arg holds the literal value for
// LoadConst, the identifier for name loads, the comparison operator text
// for CompareOp, the target offset for jumps and the item count for build
// and call instructions.
type Instruction struct {
	Category Category
	Arg      interface{}
	Repr     string
	Offset   int
}

// Name returns the identifier operand.
func (i Instruction) Name() string {
	s, _ := i.Arg.(string)
	return s
}

// Target returns the jump target offset.
func (i Instruction) Target() int {
	n, _ := i.Arg.(int)
	return n
}

// Count returns the item count operand.
func (i Instruction) Count() int {
	n, _ := i.Arg.(int)
	return n
}

func (i Instruction) String() string {
	switch {
	case i.Category.IsJump():
		return fmt.Sprintf("%d %s (to %d)", i.Offset, i.Category, i.Target())
	case i.Arg == nil && i.Repr == "":
		return fmt.Sprintf("%d %s", i.Offset, i.Category)
	case i.Repr != "":
		return fmt.Sprintf("%d %s (%s)", i.Offset, i.Category, i.Repr)
	default:
		return fmt.Sprintf("%d %s (%v)", i.Offset, i.Category, i.Arg)
	}
}
