// Package verify provides checking tools for decompiled functions.
//
// It implements two complementary stages:
//
// 1. Static Lint (lint.go): structural and control-flow checks on a decoded
// instruction stream, run before decompilation.
//   - STRUCT checks: jump targets, stack underflow
//   - FLOW checks: backward jumps, missing return, inconsistent stack depth
//     at merge points
//
// 2. Round trip (roundtrip.go): the instruction stream is executed on a
// concrete stack machine (machine.go) and the decompiled tree is evaluated
// directly (eval.go) under the same bindings. Both must agree on every
// supplied case.
//
// # Values
//
// The machine and the evaluator share one value model (value.go):
//
//   - nil, bool, int64, float64, complex128, string
//   - expr.TupleValue for tuples, List, Set and Dict for the mutable displays
//   - Object for attribute lookup, Func for callables
//
// Ints of every Go width are widened to int64 on entry.
//
// # Usage Example
//
//	stream, _ := instr.Decode(raw)
//	if issues := verify.RunLint(stream); len(issues) > 0 {
//	    ...
//	}
//
//	d := core.NewBuilder().Build("Decompiler")
//	report := verify.GenerateReport("inc", d, []string{"x"}, stream, []verify.Case{
//	    {Args: []verify.Value{1}},
//	    {Args: []verify.Value{2.5}},
//	})
//	report.WriteReport(os.Stdout)
package verify

// IssueType categorizes lint issues
type IssueType string

const (
	IssueStruct IssueType = "STRUCT" // Malformed stream (bad target, underflow)
	IssueFlow   IssueType = "FLOW"   // Control flow outside the expression subset
)

// Issue represents a single lint issue
type Issue struct {
	Type    IssueType              // STRUCT or FLOW
	Offset  int                    // Offset of the offending instruction, -1 if none
	Op      string                 // Opcode name, empty if none
	Message string                 // Human-readable description
	Details map[string]interface{} // Additional structured data
}

// Case is one set of bindings under which a function is evaluated.
type Case struct {
	Args    []Value
	Globals map[string]Value
}
