package core

import (
	"context"
	"log/slog"

	"github.com/aprimc/from-lambda/expr"
	"github.com/aprimc/from-lambda/instr"
	"github.com/aprimc/from-lambda/printer"
	"github.com/sarchlab/akita/v4/sim"
)

const (
	LevelTrace slog.Level = slog.LevelInfo + 1
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// TraceHook logs the progress of a decompiler at LevelTrace.
type TraceHook struct{}

// Func implements sim.Hook.
func (h TraceHook) Func(ctx sim.HookCtx) {
	name := ""
	if named, ok := ctx.Domain.(sim.Named); ok {
		name = named.Name()
	}

	switch ctx.Pos {
	case HookPosInstInterpret:
		inst := ctx.Item.(instr.Instruction)
		Trace("Interpret",
			"Decompiler", name,
			"Offset", inst.Offset,
			"Op", inst.Category.String(),
			"Arg", inst.Arg,
			"StackDepth", ctx.Detail,
		)
	case HookPosConditionalBuild:
		Trace("Conditional",
			"Decompiler", name,
			"Expr", printer.Print(ctx.Item.(expr.Node)),
		)
	}
}
