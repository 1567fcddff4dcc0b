package verify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aprimc/from-lambda/core"
	"github.com/aprimc/from-lambda/instr"
	"github.com/aprimc/from-lambda/printer"
	"github.com/jedib0t/go-pretty/v6/table"
)

// VerificationReport represents a complete verification report
type VerificationReport struct {
	Name         string
	Text         string
	DecompileErr error
	LintIssues   []Issue
	StructIssues []Issue
	FlowIssues   []Issue
	CaseCount    int
	Mismatches   []Mismatch
}

// GenerateReport runs lint, decompiles the stream with d and checks the
// result against the stream on every case.
func GenerateReport(
	name string,
	d *core.Decompiler,
	params []string,
	stream instr.Stream,
	cases []Case,
) *VerificationReport {
	report := &VerificationReport{
		Name:      name,
		CaseCount: len(cases),
	}

	// Run lint
	report.LintIssues = RunLint(stream)

	// Categorize issues
	for _, issue := range report.LintIssues {
		if issue.Type == IssueStruct {
			report.StructIssues = append(report.StructIssues, issue)
		} else {
			report.FlowIssues = append(report.FlowIssues, issue)
		}
	}

	f, err := d.Decompile(params, stream)
	if err != nil {
		report.DecompileErr = err
		return report
	}
	report.Text = printer.Print(f)

	report.Mismatches = CheckRoundTrip(f, stream, cases)

	return report
}

// Passed reports whether the function decompiled cleanly and agreed with
// its stream on every case.
func (r *VerificationReport) Passed() bool {
	return r.DecompileErr == nil &&
		len(r.LintIssues) == 0 &&
		len(r.Mismatches) == 0
}

// WriteReport writes a formatted report to a writer
func (r *VerificationReport) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "VERIFICATION REPORT: %s\n", r.Name)
	fmt.Fprintln(w, separator)

	// STAGE 1: LINT
	fmt.Fprintln(w, "\nSTAGE 1: STATIC LINT CHECKS")
	if len(r.LintIssues) == 0 {
		fmt.Fprintln(w, "✓ No lint issues found!")
	} else {
		fmt.Fprintf(w, "⚠ Found %d lint issues (%d STRUCT, %d FLOW):\n",
			len(r.LintIssues), len(r.StructIssues), len(r.FlowIssues))

		t := table.NewWriter()
		t.AppendHeader(table.Row{"Type", "Offset", "Op", "Message"})
		for _, issue := range r.LintIssues {
			t.AppendRow(table.Row{issue.Type, issue.Offset, issue.Op, issue.Message})
		}
		fmt.Fprintln(w, t.Render())
	}

	// STAGE 2: DECOMPILATION
	fmt.Fprintln(w, "\nSTAGE 2: DECOMPILATION")
	if r.DecompileErr != nil {
		fmt.Fprintf(w, "⚠ Decompilation failed: %v\n", r.DecompileErr)
	} else {
		fmt.Fprintf(w, "✓ %s\n", r.Text)
	}

	// STAGE 3: ROUND TRIP
	if r.DecompileErr == nil {
		fmt.Fprintln(w, "\nSTAGE 3: ROUND TRIP")
		if len(r.Mismatches) == 0 {
			fmt.Fprintf(w, "✓ Stream and tree agree on %d cases\n", r.CaseCount)
		} else {
			fmt.Fprintf(w, "⚠ %d of %d cases disagree:\n",
				len(r.Mismatches), r.CaseCount)

			t := table.NewWriter()
			t.AppendHeader(table.Row{"Case", "Stream", "Tree"})
			for _, m := range r.Mismatches {
				t.AppendRow(table.Row{
					m.Case,
					outcome(m.Machine, m.MachineErr),
					outcome(m.Tree, m.TreeErr),
				})
			}
			fmt.Fprintln(w, t.Render())
		}
	}

	fmt.Fprintln(w)
}

// SaveReportToFile saves the report to a file
func (r *VerificationReport) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
