package verify

import (
	"fmt"

	"github.com/aprimc/from-lambda/core"
	"github.com/aprimc/from-lambda/expr"
	"github.com/aprimc/from-lambda/instr"
)

// DefaultMaxSteps bounds the number of instructions a Machine executes.
const DefaultMaxSteps = 10000

// Machine executes an instruction stream on concrete values. It is the
// reference the decompiled tree is checked against.
type Machine struct {
	params []string
	stream instr.Stream

	MaxSteps  int
	TraceInst func(inst instr.Instruction, stack []Value)
}

// NewMachine creates a machine for a function with the given parameters.
func NewMachine(params []string, stream instr.Stream) *Machine {
	return &Machine{
		params:   params,
		stream:   stream,
		MaxSteps: DefaultMaxSteps,
	}
}

type machineState struct {
	stack   []Value
	locals  map[string]Value
	globals map[string]Value
}

func (s *machineState) push(v Value) {
	s.stack = append(s.stack, v)
}

func (s *machineState) popN(inst instr.Instruction, n int) ([]Value, error) {
	if len(s.stack) < n {
		return nil, instr.NewError(instr.ErrMalformedStack, inst,
			"need %d operands, stack holds %d", n, len(s.stack))
	}
	vs := make([]Value, n)
	copy(vs, s.stack[len(s.stack)-n:])
	s.stack = s.stack[:len(s.stack)-n]
	return vs, nil
}

func (s *machineState) pop(inst instr.Instruction) (Value, error) {
	vs, err := s.popN(inst, 1)
	if err != nil {
		return nil, err
	}
	return vs[0], nil
}

func (s *machineState) peek(inst instr.Instruction, n int) error {
	if len(s.stack) < n {
		return instr.NewError(instr.ErrMalformedStack, inst,
			"need %d operands, stack holds %d", n, len(s.stack))
	}
	return nil
}

// Run executes the stream under c and returns the value it returns.
func (m *Machine) Run(c Case) (Value, error) {
	if len(c.Args) != len(m.params) {
		return nil, fmt.Errorf("expected %d arguments, got %d",
			len(m.params), len(c.Args))
	}

	s := &machineState{
		locals:  make(map[string]Value, len(m.params)),
		globals: c.Globals,
	}
	for i, p := range m.params {
		s.locals[p] = normalize(c.Args[i])
	}

	pc := 0
	for step := 0; step < m.MaxSteps; step++ {
		if pc >= len(m.stream) {
			return nil, &instr.Error{
				Kind: instr.ErrMalformedStack,
				Msg:  "execution ran past the last instruction",
			}
		}

		inst := m.stream[pc]
		if m.TraceInst != nil {
			m.TraceInst(inst, s.stack)
		}

		if inst.Category == instr.ReturnValue {
			return s.pop(inst)
		}

		next, err := m.exec(inst, pc, s)
		if err != nil {
			return nil, err
		}
		pc = next
	}

	return nil, fmt.Errorf("no return after %d steps", m.MaxSteps)
}

func (m *Machine) jump(inst instr.Instruction) (int, error) {
	j, err := m.stream.Find(inst.Target())
	if err != nil {
		e := err.(*instr.Error)
		e.OpName = inst.Category.String()
		e.Offset = inst.Offset
		return 0, e
	}
	return j, nil
}

// exec executes one instruction at index pc and returns the index of the
// next one.
func (m *Machine) exec(inst instr.Instruction, pc int, s *machineState) (int, error) {
	switch inst.Category {
	case instr.LoadConst:
		s.push(normalize(inst.Arg))
	case instr.LoadFast:
		s.push(s.locals[inst.Name()])
	case instr.LoadGlobal:
		v, found := s.globals[inst.Name()]
		if !found {
			return 0, evalErrorf("name '%s' is not defined", inst.Name())
		}
		s.push(normalize(v))
	case instr.LoadAttr:
		x, err := s.pop(inst)
		if err != nil {
			return 0, err
		}
		v, err := Attribute(x, inst.Name())
		if err != nil {
			return 0, err
		}
		s.push(v)
	case instr.UnaryPositive, instr.UnaryNegative,
		instr.UnaryNot, instr.UnaryInvert:
		return pc + 1, m.unary(inst, s)
	case instr.BuildList, instr.BuildTuple, instr.BuildSet, instr.BuildMap:
		return pc + 1, m.build(inst, s)
	case instr.CallFunction:
		args, err := s.popN(inst, inst.Count()+1)
		if err != nil {
			return 0, err
		}
		v, err := Call(args[0], args[1:])
		if err != nil {
			return 0, err
		}
		s.push(v)
	case instr.Nop:
	case instr.PopTop:
		_, err := s.pop(inst)
		return pc + 1, err
	case instr.RotTwo, instr.RotThree, instr.DupTop, instr.DupTopTwo:
		return pc + 1, m.shuffle(inst, s)
	case instr.JumpForward:
		return m.jump(inst)
	case instr.JumpIfFalseOrPop, instr.JumpIfTrueOrPop:
		if err := s.peek(inst, 1); err != nil {
			return 0, err
		}
		want := inst.Category == instr.JumpIfTrueOrPop
		if Truth(s.stack[len(s.stack)-1]) == want {
			return m.jump(inst)
		}
		s.stack = s.stack[:len(s.stack)-1]
	case instr.PopJumpIfFalse, instr.PopJumpIfTrue:
		v, err := s.pop(inst)
		if err != nil {
			return 0, err
		}
		if Truth(v) == (inst.Category == instr.PopJumpIfTrue) {
			return m.jump(inst)
		}
	default:
		op, ok := core.BinaryOperator(inst)
		if !ok {
			return 0, instr.NewError(instr.ErrUnsupportedInstruction, inst, "")
		}
		args, err := s.popN(inst, 2)
		if err != nil {
			return 0, err
		}
		v, err := Binary(op, args[0], args[1])
		if err != nil {
			return 0, err
		}
		s.push(v)
	}

	return pc + 1, nil
}

func (m *Machine) unary(inst instr.Instruction, s *machineState) error {
	x, err := s.pop(inst)
	if err != nil {
		return err
	}
	op, _ := core.UnaryOperator(inst.Category)
	v, err := Unary(op, x)
	if err != nil {
		return err
	}
	s.push(v)
	return nil
}

func (m *Machine) build(inst instr.Instruction, s *machineState) error {
	n := inst.Count()
	if inst.Category == instr.BuildMap {
		n *= 2
	}

	items, err := s.popN(inst, n)
	if err != nil {
		return err
	}

	var v Value
	switch inst.Category {
	case instr.BuildList:
		v = List(items)
	case instr.BuildTuple:
		v = expr.TupleValue(items)
	case instr.BuildSet:
		v, err = newSet(items)
	default:
		keys := make([]Value, 0, n/2)
		values := make([]Value, 0, n/2)
		for i := 0; i < n; i += 2 {
			keys = append(keys, items[i])
			values = append(values, items[i+1])
		}
		v, err = newDict(keys, values)
	}
	if err != nil {
		return err
	}

	s.push(v)
	return nil
}

func (m *Machine) shuffle(inst instr.Instruction, s *machineState) error {
	need := map[instr.Category]int{
		instr.RotTwo: 2, instr.RotThree: 3, instr.DupTop: 1, instr.DupTopTwo: 2,
	}[inst.Category]
	if err := s.peek(inst, need); err != nil {
		return err
	}

	n := len(s.stack)
	switch inst.Category {
	case instr.RotTwo:
		s.stack[n-1], s.stack[n-2] = s.stack[n-2], s.stack[n-1]
	case instr.RotThree:
		s.stack[n-1], s.stack[n-2], s.stack[n-3] =
			s.stack[n-2], s.stack[n-3], s.stack[n-1]
	case instr.DupTop:
		s.push(s.stack[n-1])
	case instr.DupTopTwo:
		s.stack = append(s.stack, s.stack[n-2], s.stack[n-1])
	}
	return nil
}
