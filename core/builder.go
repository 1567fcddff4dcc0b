package core

import (
	"github.com/aprimc/from-lambda/expr"
	"github.com/aprimc/from-lambda/instr"
	"github.com/sarchlab/akita/v4/sim"
)

// DefaultMaxDepth bounds the nesting of conditionals and short-circuit
// chains a Decompiler accepts.
const DefaultMaxDepth = 1000

// Builder can create new decompilers.
type Builder struct {
	maxDepth int
	hooks    []sim.Hook
}

// NewBuilder returns a Builder with default settings.
func NewBuilder() Builder {
	return Builder{
		maxDepth: DefaultMaxDepth,
	}
}

// WithMaxDepth sets the maximum nesting depth.
func (b Builder) WithMaxDepth(maxDepth int) Builder {
	if maxDepth < 1 {
		panic("max depth must be positive")
	}
	b.maxDepth = maxDepth
	return b
}

// WithHook attaches a hook to every decompiler built.
func (b Builder) WithHook(hook sim.Hook) Builder {
	b.hooks = append(b.hooks[:len(b.hooks):len(b.hooks)], hook)
	return b
}

// Build creates a decompiler.
func (b Builder) Build(name string) *Decompiler {
	d := &Decompiler{
		name:     name,
		maxDepth: b.maxDepth,
	}
	if d.maxDepth == 0 {
		d.maxDepth = DefaultMaxDepth
	}

	for _, h := range b.hooks {
		d.AcceptHook(h)
	}

	return d
}

var defaultDecompiler = NewBuilder().Build("Decompiler")

// Decompile decodes the raw instruction stream of a function and
// reconstructs its body with a default decompiler.
func Decompile(params []string, raw []instr.Raw) (*expr.Function, error) {
	stream, err := instr.Decode(raw)
	if err != nil {
		return nil, err
	}
	return defaultDecompiler.Decompile(params, stream)
}
