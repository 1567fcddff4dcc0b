package verify

import (
	"testing"

	"github.com/aprimc/from-lambda/instr"
)

// decode assigns offsets 0, 2, 4, ... to raw and decodes it.
func decode(t *testing.T, raw ...instr.Raw) instr.Stream {
	t.Helper()
	for i := range raw {
		raw[i].Offset = 2 * i
	}
	s, err := instr.Decode(raw)
	if err != nil {
		t.Fatalf("Failed to decode stream: %v", err)
	}
	return s
}

func op(name string, arg ...interface{}) instr.Raw {
	r := instr.Raw{OpName: name}
	if len(arg) > 0 {
		r.Arg = arg[0]
	}
	return r
}

// chainStream is a < b < c.
func chainStream(t *testing.T) instr.Stream {
	return decode(t,
		op("LOAD_FAST", "a"),
		op("LOAD_FAST", "b"),
		op("DUP_TOP"),
		op("ROT_THREE"),
		op("COMPARE_OP", "<"),
		op("JUMP_IF_FALSE_OR_POP", 18),
		op("LOAD_FAST", "c"),
		op("COMPARE_OP", "<"),
		op("RETURN_VALUE"),
		op("ROT_TWO"),
		op("POP_TOP"),
		op("RETURN_VALUE"),
	)
}

// incStream is x + 1.
func incStream(t *testing.T) instr.Stream {
	return decode(t,
		op("LOAD_FAST", "x"),
		op("LOAD_CONST", 1),
		op("BINARY_ADD"),
		op("RETURN_VALUE"),
	)
}

func args(vs ...Value) Case {
	return Case{Args: vs}
}
