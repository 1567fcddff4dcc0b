package program

import (
	"fmt"
	"io"

	"github.com/aprimc/from-lambda/expr"
	"github.com/aprimc/from-lambda/instr"
	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteListing renders a decoded stream as a table. Jump targets are
// marked with ">>".
func WriteListing(w io.Writer, title string, s instr.Stream) {
	targets := make(map[int]bool)
	for _, inst := range s {
		if inst.Category.IsJump() {
			targets[inst.Target()] = true
		}
	}

	t := table.NewWriter()
	t.SetTitle(title)
	t.AppendHeader(table.Row{"", "Offset", "Op", "Arg"})

	for _, inst := range s {
		mark := ""
		if targets[inst.Offset] {
			mark = ">>"
		}
		t.AppendRow(table.Row{mark, inst.Offset, inst.Category.Name(), operandText(inst)})
	}

	fmt.Fprintln(w, t.Render())
}

func operandText(inst instr.Instruction) string {
	switch {
	case inst.Category.IsJump():
		return fmt.Sprintf("to %d", inst.Target())
	case inst.Repr != "":
		return inst.Repr
	case inst.Category == instr.LoadConst:
		return expr.Repr(inst.Arg)
	case inst.Arg != nil:
		return fmt.Sprint(inst.Arg)
	default:
		return ""
	}
}
