// Command fromlambda decompiles the functions stored in a program file and
// prints them as lambda expressions.
//
//	fromlambda [flags] FILE
//
// FILE is a YAML fixture (.yaml, .yml) or a disassembler listing (.dis,
// .txt). With -verify every function is linted and its decompiled form is
// checked against the stream on the cases stored in the fixture.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aprimc/from-lambda/api"
	"github.com/aprimc/from-lambda/core"
	"github.com/aprimc/from-lambda/instr"
	"github.com/aprimc/from-lambda/program"
	"github.com/aprimc/from-lambda/verify"
	"github.com/tebeka/atexit"
)

var (
	fnName    = flag.String("fn", "", "only decompile the named function")
	listing   = flag.Bool("dis", false, "print the instruction listing of each function")
	check     = flag.Bool("verify", false, "lint and round-trip check each function")
	reportDir = flag.String("report-dir", "", "save verification reports to this directory")
	trace     = flag.Bool("trace", false, "log every interpreted instruction")
	logFile   = flag.String("log", "", "write logs to this file instead of stderr")
	maxDepth  = flag.Int("max-depth", core.DefaultMaxDepth, "maximum nesting of conditional ranges")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] FILE\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 || *maxDepth < 1 {
		flag.Usage()
		atexit.Exit(2)
	}

	setupLogging()

	fns, err := program.LoadFile(flag.Arg(0))
	if err != nil {
		slog.Error("Failed to load program", "Error", err)
		atexit.Exit(1)
	}

	if *fnName != "" {
		f, ok := program.Lookup(fns, *fnName)
		if !ok {
			slog.Error("Function not found", "Function", *fnName)
			atexit.Exit(1)
		}
		fns = []*program.Function{f}
	}

	builder := core.NewBuilder().WithMaxDepth(*maxDepth)
	if *trace {
		builder = builder.WithHook(core.TraceHook{})
	}
	decompiler := builder.Build("Decompiler")
	driver := api.DriverBuilder{}.
		WithDecompiler(decompiler).
		Build("Driver")

	failed := 0
	for _, f := range fns {
		if !run(driver, decompiler, f) {
			failed++
		}
	}

	if failed > 0 {
		slog.Warn("Some functions failed", "Failed", failed, "Total", len(fns))
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

func setupLogging() {
	level := slog.LevelWarn
	if *trace {
		level = core.LevelTrace
	}

	var w io.Writer = os.Stderr
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to create log file: %v\n", err)
			atexit.Exit(1)
		}
		atexit.Register(func() { f.Close() })
		w = f
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func run(driver api.Driver, decompiler *core.Decompiler, f *program.Function) bool {
	stream, err := instr.Decode(f.Code)
	if err != nil {
		slog.Error("Failed to decode", "Function", f.Name, "Error", err)
		return false
	}

	if *listing {
		program.WriteListing(os.Stdout, f.Name, stream)
	}

	if *check {
		return verifyFunction(decompiler, f, stream)
	}

	text, err := driver.DecompileToText(f)
	if err != nil {
		slog.Error("Failed to decompile", "Function", f.Name, "Error", err)
		return false
	}

	fmt.Printf("%s = %s\n", f.Name, text)
	return true
}

func verifyFunction(
	decompiler *core.Decompiler,
	f *program.Function,
	stream instr.Stream,
) bool {
	cases := make([]verify.Case, len(f.Cases))
	for i, c := range f.Cases {
		cases[i] = verify.Case{Args: c.Args, Globals: c.Globals}
	}

	report := verify.GenerateReport(f.Name, decompiler, f.Params, stream, cases)
	report.WriteReport(os.Stdout)

	if *reportDir != "" {
		path := filepath.Join(*reportDir, f.Name+".txt")
		if err := report.SaveReportToFile(path); err != nil {
			slog.Error("Failed to save report", "Function", f.Name, "Error", err)
		}
	}

	return report.Passed()
}
