package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aprimc/from-lambda/api"
	"github.com/aprimc/from-lambda/core"
	"github.com/aprimc/from-lambda/instr"
	"github.com/aprimc/from-lambda/program"
	"github.com/aprimc/from-lambda/verify"
	"github.com/tebeka/atexit"
)

//go:embed chain_compare.dis
var listing string

func check(driver api.Driver, f *program.Function, cases []verify.Case) bool {
	text, err := driver.DecompileToText(f)
	if err != nil {
		fmt.Println("❌", f.Name, err)
		return false
	}
	fmt.Println(text)

	decoded, err := driver.Decompile(f)
	if err != nil {
		panic(err)
	}
	stream, err := instr.Decode(f.Code)
	if err != nil {
		panic(err)
	}

	mismatches := verify.CheckRoundTrip(decoded, stream, cases)
	for _, m := range mismatches {
		fmt.Println("❌", m)
	}
	return len(mismatches) == 0
}

func main() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: core.LevelTrace,
	})
	slog.SetDefault(slog.New(handler))

	fns, err := program.ParseListing(strings.NewReader(listing))
	if err != nil {
		panic(err)
	}

	decompiler := core.NewBuilder().
		WithHook(core.TraceHook{}).
		Build("Decompiler")
	driver := api.DriverBuilder{}.
		WithDecompiler(decompiler).
		Build("Driver")

	between, _ := program.Lookup(fns, "between")
	clamp, _ := program.Lookup(fns, "clamp")

	ok := check(driver, between, []verify.Case{
		{Args: []verify.Value{0, 5, 10}},
		{Args: []verify.Value{0, 10, 10}},
		{Args: []verify.Value{0, -1, 10}},
	})
	ok = check(driver, clamp, []verify.Case{
		{Args: []verify.Value{-3}},
		{Args: []verify.Value{4}},
		{Args: []verify.Value{12.5}},
	}) && ok

	if ok {
		fmt.Println("✅ Round trip tests passed!")
	} else {
		fmt.Println("❌ Round trip tests failed!")
	}

	atexit.Exit(0)
}
