package verify

import (
	"fmt"

	"github.com/aprimc/from-lambda/expr"
	"github.com/aprimc/from-lambda/instr"
)

// Mismatch describes a case on which the stream and the tree disagree.
type Mismatch struct {
	Case       int
	Machine    Value
	MachineErr error
	Tree       Value
	TreeErr    error
}

func (m Mismatch) String() string {
	return fmt.Sprintf("case %d: stream gives %s, tree gives %s",
		m.Case, outcome(m.Machine, m.MachineErr), outcome(m.Tree, m.TreeErr))
}

func outcome(v Value, err error) string {
	if err != nil {
		return "error (" + err.Error() + ")"
	}
	return Format(v)
}

// CheckRoundTrip runs stream on a Machine and evaluates f for every case.
// Runs that both fail count as agreeing. Returns the cases on which the
// two disagree.
func CheckRoundTrip(f *expr.Function, stream instr.Stream, cases []Case) []Mismatch {
	m := NewMachine(f.Params, stream)

	var mismatches []Mismatch
	for i, c := range cases {
		want, wantErr := m.Run(c)
		got, gotErr := Eval(f, c)

		switch {
		case wantErr != nil && gotErr != nil:
			continue
		case wantErr == nil && gotErr == nil && Same(want, got):
			continue
		}

		mismatches = append(mismatches, Mismatch{
			Case:       i,
			Machine:    want,
			MachineErr: wantErr,
			Tree:       got,
			TreeErr:    gotErr,
		})
	}

	return mismatches
}
