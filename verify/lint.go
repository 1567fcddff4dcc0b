package verify

import (
	"fmt"

	"github.com/aprimc/from-lambda/instr"
)

// RunLint performs static checks on a decoded instruction stream.
// It validates structure (STRUCT) and control flow (FLOW) by propagating
// the stack depth along every path. Returns a list of issues found, or an
// empty list if no issues.
func RunLint(s instr.Stream) []Issue {
	if len(s) == 0 {
		return []Issue{{
			Type:    IssueStruct,
			Offset:  -1,
			Message: "Empty instruction stream",
		}}
	}

	var issues []Issue

	// STRUCT/FLOW: Validate jump targets
	targets := make(map[int]int) // instruction index → target index
	for i, inst := range s {
		if !inst.Category.IsJump() {
			continue
		}

		j, err := s.Find(inst.Target())
		if err != nil {
			issues = append(issues, issueAt(IssueStruct, inst,
				fmt.Sprintf("Jump target %d is not an instruction offset", inst.Target()),
				map[string]interface{}{"target": inst.Target()}))
			continue
		}
		if j <= i {
			issues = append(issues, issueAt(IssueFlow, inst,
				fmt.Sprintf("Backward jump to offset %d forms a loop", inst.Target()),
				map[string]interface{}{"target": inst.Target()}))
			continue
		}
		targets[i] = j
	}

	issues = append(issues, checkStackDepth(s, targets)...)

	return issues
}

func issueAt(t IssueType, inst instr.Instruction, msg string, details map[string]interface{}) Issue {
	return Issue{
		Type:    t,
		Offset:  inst.Offset,
		Op:      inst.Category.String(),
		Message: msg,
		Details: details,
	}
}

type edge struct {
	to    int
	depth int
}

// checkStackDepth walks every path from the entry and checks that pops
// never underflow, that paths meet with equal depths and that every path
// ends in a return.
func checkStackDepth(s instr.Stream, targets map[int]int) []Issue {
	var issues []Issue

	depths := make([]int, len(s))
	for i := range depths {
		depths[i] = -1
	}
	depths[0] = 0
	work := []int{0}
	fellOff := false

	for len(work) > 0 {
		i := work[len(work)-1]
		work = work[:len(work)-1]

		inst := s[i]
		depth := depths[i]
		need, delta := stackEffect(inst)

		if depth < need {
			issues = append(issues, issueAt(IssueStruct, inst,
				fmt.Sprintf("Stack underflow: needs %d operands, holds %d", need, depth),
				map[string]interface{}{"need": need, "depth": depth}))
			continue
		}

		var next []edge
		target, hasTarget := targets[i]
		switch inst.Category {
		case instr.ReturnValue:
		case instr.JumpForward:
			if hasTarget {
				next = append(next, edge{target, depth})
			}
		case instr.JumpIfFalseOrPop, instr.JumpIfTrueOrPop:
			if hasTarget {
				next = append(next, edge{target, depth})
			}
			next = append(next, edge{i + 1, depth - 1})
		case instr.PopJumpIfFalse, instr.PopJumpIfTrue:
			if hasTarget {
				next = append(next, edge{target, depth - 1})
			}
			next = append(next, edge{i + 1, depth - 1})
		default:
			next = append(next, edge{i + 1, depth + delta})
		}

		for _, e := range next {
			if e.to >= len(s) {
				if !fellOff {
					issues = append(issues, issueAt(IssueFlow, inst,
						"Control reaches the end of the stream without a return", nil))
					fellOff = true
				}
				continue
			}

			switch prev := depths[e.to]; {
			case prev < 0:
				depths[e.to] = e.depth
				work = append(work, e.to)
			case prev != e.depth:
				issues = append(issues, issueAt(IssueFlow, s[e.to],
					fmt.Sprintf("Inconsistent stack depth: %d and %d", prev, e.depth),
					map[string]interface{}{"depth": prev, "incoming": e.depth}))
			}
		}
	}

	return issues
}

// stackEffect returns the number of operands inst needs on the stack and
// the change in depth when execution falls through it.
func stackEffect(inst instr.Instruction) (need, delta int) {
	switch inst.Category {
	case instr.LoadConst, instr.LoadFast, instr.LoadGlobal:
		return 0, 1
	case instr.LoadAttr,
		instr.UnaryPositive, instr.UnaryNegative,
		instr.UnaryNot, instr.UnaryInvert:
		return 1, 0
	case instr.BuildList, instr.BuildTuple, instr.BuildSet:
		return inst.Count(), 1 - inst.Count()
	case instr.BuildMap:
		return 2 * inst.Count(), 1 - 2*inst.Count()
	case instr.CallFunction:
		return inst.Count() + 1, -inst.Count()
	case instr.Nop, instr.JumpForward:
		return 0, 0
	case instr.PopTop:
		return 1, -1
	case instr.RotTwo:
		return 2, 0
	case instr.RotThree:
		return 3, 0
	case instr.DupTop:
		return 1, 1
	case instr.DupTopTwo:
		return 2, 2
	case instr.JumpIfFalseOrPop, instr.JumpIfTrueOrPop,
		instr.PopJumpIfFalse, instr.PopJumpIfTrue,
		instr.ReturnValue:
		return 1, -1
	default:
		// binary operators and comparisons
		return 2, -1
	}
}
