// Package core reconstructs expression trees from instruction streams by
// abstract stack interpretation.
package core

import (
	"github.com/aprimc/from-lambda/expr"
	"github.com/aprimc/from-lambda/instr"
	"github.com/sarchlab/akita/v4/sim"
)

// HookPosInstInterpret marks an instruction about to be interpreted. The
// hook item is the instruction, the detail is the stack depth.
var HookPosInstInterpret = &sim.HookPos{Name: "Inst Interpret"}

// HookPosConditionalBuild marks a conditional reconstructed from a jump.
// The hook item is the node after normalization.
var HookPosConditionalBuild = &sim.HookPos{Name: "Conditional Build"}

var unaryOps = map[instr.Category]expr.UnaryOp{
	instr.UnaryPositive: expr.Pos,
	instr.UnaryNegative: expr.Neg,
	instr.UnaryNot:      expr.Not,
	instr.UnaryInvert:   expr.Invert,
}

var binaryOps = map[instr.Category]expr.BinaryOp{
	instr.BinaryPower:          expr.Power,
	instr.BinaryMultiply:       expr.Mul,
	instr.BinaryMatrixMultiply: expr.MatMul,
	instr.BinaryFloorDivide:    expr.FloorDiv,
	instr.BinaryTrueDivide:     expr.TrueDiv,
	instr.BinaryModulo:         expr.Mod,
	instr.BinaryAdd:            expr.Add,
	instr.BinarySubtract:       expr.Sub,
	instr.BinarySubscr:         expr.Subscript,
	instr.BinaryLshift:         expr.LShift,
	instr.BinaryRshift:         expr.RShift,
	instr.BinaryAnd:            expr.BitAnd,
	instr.BinaryXor:            expr.BitXor,
	instr.BinaryOr:             expr.BitOr,
}

// A Decompiler turns the instruction stream of a single-expression function
// back into an expression tree. It holds no per-call state and may be used
// from several goroutines once built.
type Decompiler struct {
	sim.HookableBase

	name     string
	maxDepth int
}

// Name returns the name of the decompiler.
func (d *Decompiler) Name() string {
	return d.name
}

// Decompile reconstructs the function with the given parameter names from
// its decoded instruction stream.
func (d *Decompiler) Decompile(
	params []string,
	stream instr.Stream,
) (*expr.Function, error) {
	r := &run{d: d, stream: stream}

	body, err := r.interpret(0, len(stream), &Stack{})
	if err != nil {
		return nil, err
	}

	return &expr.Function{
		Params: append([]string(nil), params...),
		Body:   body,
	}, nil
}

// run is the state of one Decompile call.
type run struct {
	d      *Decompiler
	stream instr.Stream
	depth  int
}

// interpret walks the instructions in [start, end) and returns the value the
// range leaves on top of the stack, either at a return instruction or when
// the walk leaves the range.
func (r *run) interpret(start, end int, s *Stack) (expr.Node, error) {
	r.depth++
	defer func() { r.depth-- }()

	if r.depth > r.d.maxDepth {
		return nil, &instr.Error{
			Kind: instr.ErrUnsupportedInstruction,
			Msg:  "expression nesting too deep",
		}
	}

	i := start
	for i < end {
		inst := r.stream[i]
		r.d.InvokeHook(sim.HookCtx{
			Domain: r.d,
			Pos:    HookPosInstInterpret,
			Item:   inst,
			Detail: s.Len(),
		})

		var err error
		switch inst.Category {
		case instr.ReturnValue:
			return s.top(inst)
		case instr.LoadConst:
			s.push(&expr.Literal{Value: inst.Arg, Text: inst.Repr})
		case instr.LoadFast:
			s.push(&expr.Param{Name: inst.Name()})
		case instr.LoadGlobal:
			s.push(&expr.Global{Name: inst.Name()})
		case instr.LoadAttr:
			err = r.loadAttr(inst, s)
		case instr.UnaryPositive, instr.UnaryNegative,
			instr.UnaryNot, instr.UnaryInvert:
			err = r.unary(inst, s)
		case instr.BinaryPower, instr.BinaryMultiply,
			instr.BinaryMatrixMultiply, instr.BinaryFloorDivide,
			instr.BinaryTrueDivide, instr.BinaryModulo,
			instr.BinaryAdd, instr.BinarySubtract, instr.BinarySubscr,
			instr.BinaryLshift, instr.BinaryRshift,
			instr.BinaryAnd, instr.BinaryXor, instr.BinaryOr,
			instr.CompareOp:
			err = r.binary(inst, s)
		case instr.BuildList, instr.BuildTuple, instr.BuildSet:
			err = r.buildSequence(inst, s)
		case instr.BuildMap:
			err = r.buildMap(inst, s)
		case instr.CallFunction:
			err = r.call(inst, s)
		case instr.Nop:
		case instr.PopTop:
			_, err = s.pop(inst)
		case instr.RotTwo:
			err = s.rotTwo(inst)
		case instr.RotThree:
			err = s.rotThree(inst)
		case instr.DupTop:
			err = s.dupTop(inst)
		case instr.DupTopTwo:
			err = s.dupTopTwo(inst)
		case instr.JumpForward:
			i, err = r.resolve(inst, i, end)
			if err != nil {
				return nil, err
			}
			continue
		case instr.JumpIfFalseOrPop, instr.JumpIfTrueOrPop:
			i, err = r.shortCircuit(inst, i, end, s)
			if err != nil {
				return nil, err
			}
			continue
		case instr.PopJumpIfFalse, instr.PopJumpIfTrue:
			var (
				n    expr.Node
				next int
			)
			n, next, err = r.conditional(inst, i, end, s)
			if err != nil {
				return nil, err
			}
			if next < 0 {
				return n, nil
			}
			i = next
			continue
		default:
			return nil, instr.NewError(instr.ErrUnsupportedInstruction, inst, "")
		}

		if err != nil {
			return nil, err
		}
		i++
	}

	if s.Len() == 0 {
		return nil, &instr.Error{
			Kind: instr.ErrMalformedStack,
			Msg:  "range produced no value",
		}
	}
	return s.items[s.Len()-1], nil
}

// resolve returns the index of the jump target of inst, located at index
// i, clamped to end. Backward jumps form loops and are rejected.
func (r *run) resolve(inst instr.Instruction, i, end int) (int, error) {
	j, err := r.stream.Find(inst.Target())
	if err != nil {
		e := err.(*instr.Error)
		e.OpName = inst.Category.String()
		e.Offset = inst.Offset
		return 0, e
	}

	if j <= i {
		return 0, instr.NewError(instr.ErrUnsupportedInstruction, inst,
			"backward jump to offset %d", inst.Target())
	}

	if j > end {
		j = end
	}
	return j, nil
}

func (r *run) loadAttr(inst instr.Instruction, s *Stack) error {
	x, err := s.pop(inst)
	if err != nil {
		return err
	}
	s.push(&expr.Attribute{Name: inst.Name(), X: x})
	return nil
}

// UnaryOperator returns the operator applied by a unary instruction.
func UnaryOperator(c instr.Category) (expr.UnaryOp, bool) {
	op, ok := unaryOps[c]
	return op, ok
}

// BinaryOperator returns the operator applied by a binary or comparison
// instruction.
func BinaryOperator(inst instr.Instruction) (expr.BinaryOp, bool) {
	if inst.Category == instr.CompareOp {
		return expr.LookupCompare(inst.Name())
	}
	op, ok := binaryOps[inst.Category]
	return op, ok
}

func (r *run) unary(inst instr.Instruction, s *Stack) error {
	x, err := s.pop(inst)
	if err != nil {
		return err
	}
	s.push(expr.NewUnary(unaryOps[inst.Category], x))
	return nil
}

func (r *run) binary(inst instr.Instruction, s *Stack) error {
	op, ok := BinaryOperator(inst)
	if !ok {
		return instr.NewError(instr.ErrUnsupportedInstruction, inst,
			"unknown operator %v", inst.Arg)
	}

	y, err := s.pop(inst)
	if err != nil {
		return err
	}
	x, err := s.pop(inst)
	if err != nil {
		return err
	}
	s.push(expr.NewBinary(op, x, y))
	return nil
}

func (r *run) buildSequence(inst instr.Instruction, s *Stack) error {
	items, err := s.popN(inst, inst.Count())
	if err != nil {
		return err
	}

	switch inst.Category {
	case instr.BuildList:
		s.push(&expr.List{Items: items})
	case instr.BuildTuple:
		s.push(&expr.Tuple{Items: items})
	default:
		s.push(&expr.Set{Items: items})
	}
	return nil
}

func (r *run) buildMap(inst instr.Instruction, s *Stack) error {
	items, err := s.popN(inst, 2*inst.Count())
	if err != nil {
		return err
	}

	pairs := make([]expr.Pair, inst.Count())
	for k := range pairs {
		pairs[k] = expr.Pair{Key: items[2*k], Value: items[2*k+1]}
	}
	s.push(&expr.Map{Pairs: pairs})
	return nil
}

func (r *run) call(inst instr.Instruction, s *Stack) error {
	args, err := s.popN(inst, inst.Count())
	if err != nil {
		return err
	}
	f, err := s.pop(inst)
	if err != nil {
		return err
	}
	s.push(&expr.Call{Func: f, Args: args})
	return nil
}

// shortCircuit rebuilds `a and b` / `a or b` from a jump-if-or-pop at index
// i. The right operand is the value of the range between the jump and its
// target. It returns the index at which the enclosing walk resumes.
func (r *run) shortCircuit(
	inst instr.Instruction,
	i, end int,
	s *Stack,
) (int, error) {
	a, err := s.pop(inst)
	if err != nil {
		return 0, err
	}

	jj, err := r.resolve(inst, i, end)
	if err != nil {
		return 0, err
	}

	b, err := r.interpret(i+1, jj, s.fork())
	if err != nil {
		return 0, err
	}

	op := expr.And
	if inst.Category == instr.JumpIfTrueOrPop {
		op = expr.Or
	}
	s.push(expr.NewBinary(op, a, b))

	return jj, nil
}

// conditional rebuilds a ternary from a pop-jump at index i. When the then
// arm ends in a forward jump over the else arm, the conditional is a
// sub-expression: it is pushed and the walk resumes at the returned index.
// Otherwise both arms run to the end of the range and the conditional is
// the value of the range; the returned index is then -1.
func (r *run) conditional(
	inst instr.Instruction,
	i, end int,
	s *Stack,
) (expr.Node, int, error) {
	c, err := s.pop(inst)
	if err != nil {
		return nil, 0, err
	}
	if inst.Category == instr.PopJumpIfTrue {
		c = expr.NewUnary(expr.Not, c)
	}

	jj, err := r.resolve(inst, i, end)
	if err != nil {
		return nil, 0, err
	}

	k := -1
	if prev := r.stream[jj-1]; prev.Category == instr.JumpForward {
		k, err = r.resolve(prev, jj-1, end)
		if err != nil {
			return nil, 0, err
		}
	}

	if k < 0 {
		then, err := r.interpret(i+1, end, s.fork())
		if err != nil {
			return nil, 0, err
		}
		els, err := r.interpret(jj, end, s.fork())
		if err != nil {
			return nil, 0, err
		}
		return r.buildConditional(c, then, els), -1, nil
	}

	then, err := r.interpret(i+1, jj-1, s.fork())
	if err != nil {
		return nil, 0, err
	}
	els, err := r.interpret(jj, k, s.fork())
	if err != nil {
		return nil, 0, err
	}
	s.push(r.buildConditional(c, then, els))
	return nil, k, nil
}

func (r *run) buildConditional(c, then, els expr.Node) expr.Node {
	n := expr.Normalize(&expr.Conditional{Cond: c, Then: then, Else: els})
	r.d.InvokeHook(sim.HookCtx{
		Domain: r.d,
		Pos:    HookPosConditionalBuild,
		Item:   n,
	})
	return n
}
