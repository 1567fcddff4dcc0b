package core

import (
	"github.com/aprimc/from-lambda/expr"
	"github.com/aprimc/from-lambda/instr"
)

// Stack is the abstract operand stack of the interpreter. A Stack is owned
// by exactly one control-flow branch; call fork before handing it to a
// divergent branch.
type Stack struct {
	items []expr.Node
}

// Len returns the number of nodes on the stack.
func (s *Stack) Len() int {
	return len(s.items)
}

func (s *Stack) fork() *Stack {
	items := make([]expr.Node, len(s.items), cap(s.items)+1)
	copy(items, s.items)
	return &Stack{items: items}
}

func (s *Stack) push(n expr.Node) {
	s.items = append(s.items, n)
}

func (s *Stack) mustHave(inst instr.Instruction, n int) error {
	if len(s.items) < n {
		return instr.NewError(instr.ErrMalformedStack, inst,
			"need %d operands, stack holds %d", n, len(s.items))
	}
	return nil
}

func (s *Stack) pop(inst instr.Instruction) (expr.Node, error) {
	if err := s.mustHave(inst, 1); err != nil {
		return nil, err
	}
	n := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return n, nil
}

// popN removes the n topmost nodes and returns them in push order.
func (s *Stack) popN(inst instr.Instruction, n int) ([]expr.Node, error) {
	if err := s.mustHave(inst, n); err != nil {
		return nil, err
	}
	nodes := make([]expr.Node, n)
	copy(nodes, s.items[len(s.items)-n:])
	s.items = s.items[:len(s.items)-n]
	return nodes, nil
}

func (s *Stack) top(inst instr.Instruction) (expr.Node, error) {
	if err := s.mustHave(inst, 1); err != nil {
		return nil, err
	}
	return s.items[len(s.items)-1], nil
}

func (s *Stack) rotTwo(inst instr.Instruction) error {
	if err := s.mustHave(inst, 2); err != nil {
		return err
	}
	n := len(s.items)
	s.items[n-1], s.items[n-2] = s.items[n-2], s.items[n-1]
	return nil
}

// rotThree lifts the second and third items up one position and moves the
// top down to position three.
func (s *Stack) rotThree(inst instr.Instruction) error {
	if err := s.mustHave(inst, 3); err != nil {
		return err
	}
	n := len(s.items)
	s.items[n-1], s.items[n-2], s.items[n-3] =
		s.items[n-2], s.items[n-3], s.items[n-1]
	return nil
}

func (s *Stack) dupTop(inst instr.Instruction) error {
	if err := s.mustHave(inst, 1); err != nil {
		return err
	}
	s.push(s.items[len(s.items)-1])
	return nil
}

func (s *Stack) dupTopTwo(inst instr.Instruction) error {
	if err := s.mustHave(inst, 2); err != nil {
		return err
	}
	n := len(s.items)
	s.items = append(s.items, s.items[n-2], s.items[n-1])
	return nil
}
