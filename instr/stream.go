package instr

import (
	"fmt"
	"sort"
)

// Stream is the ordered instruction sequence of one function. Offsets are
// strictly increasing.
type Stream []Instruction

// Decode turns the raw host instructions into a Stream using DefaultISA.
func Decode(raw []Raw) (Stream, error) {
	return DecodeWith(DefaultISA, raw)
}

// DecodeWith turns the raw host instructions into a Stream using isa.
func DecodeWith(isa *ISA, raw []Raw) (Stream, error) {
	s := make(Stream, 0, len(raw))

	for i, r := range raw {
		c, ok := isa.Lookup(r.OpName)
		if !ok {
			return nil, &Error{
				Kind:   ErrUnsupportedInstruction,
				OpName: r.OpName,
				Offset: r.Offset,
			}
		}

		inst := Instruction{Category: c, Repr: r.ArgRepr, Offset: r.Offset}
		arg, err := decodeOperand(c, r.Arg)
		if err != nil {
			return nil, NewError(ErrUnsupportedInstruction, inst, "%v", err)
		}
		inst.Arg = arg

		if i > 0 && r.Offset <= raw[i-1].Offset {
			return nil, NewError(ErrMalformedStack, inst,
				"offset not greater than previous offset %d", raw[i-1].Offset)
		}

		s = append(s, inst)
	}

	return s, nil
}

func decodeOperand(c Category, arg interface{}) (interface{}, error) {
	switch {
	case c == LoadConst:
		return arg, nil
	case c.HasName():
		name, ok := arg.(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("expected identifier operand, got %v", arg)
		}
		return name, nil
	case c == CompareOp:
		op, ok := arg.(string)
		if !ok || !CompareOps[op] {
			return nil, fmt.Errorf("unsupported comparison %v", arg)
		}
		return op, nil
	case c.IsJump():
		n, ok := toInt(arg)
		if !ok {
			return nil, fmt.Errorf("expected jump target, got %v", arg)
		}
		return n, nil
	case c.HasCount():
		n, ok := toInt(arg)
		if !ok || n < 0 {
			return nil, fmt.Errorf("expected item count, got %v", arg)
		}
		return n, nil
	default:
		return nil, nil
	}
}

func toInt(v interface{}) (int, bool) {
	switch v := v.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}

// Find returns the index of the instruction located at offset. An offset
// beyond the last instruction denotes the end of the function and yields
// len(s). Any other offset is an addressing error.
func (s Stream) Find(offset int) (int, error) {
	i := sort.Search(len(s), func(i int) bool {
		return s[i].Offset >= offset
	})

	if i == len(s) {
		return i, nil
	}

	if s[i].Offset != offset {
		return 0, &Error{
			Kind: ErrMalformedStack,
			Msg:  fmt.Sprintf("no instruction at offset %d", offset),
		}
	}

	return i, nil
}
