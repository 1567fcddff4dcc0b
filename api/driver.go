// Package api decompiles function values obtained from the host runtime.
package api

import (
	"errors"
	"fmt"

	"github.com/aprimc/from-lambda/core"
	"github.com/aprimc/from-lambda/expr"
	"github.com/aprimc/from-lambda/instr"
	"github.com/aprimc/from-lambda/printer"
)

// ErrUnsupportedSignature reports a parameter kind that a single-expression
// function with positional parameters cannot have.
var ErrUnsupportedSignature = errors.New("unsupported signature")

// ParamKind is the binding kind of a parameter.
type ParamKind int

// Parameter kinds.
const (
	Positional ParamKind = iota
	PositionalOnly
	VarPositional
	KeywordOnly
	VarKeyword
)

func (k ParamKind) String() string {
	switch k {
	case Positional:
		return "positional"
	case PositionalOnly:
		return "positional-only"
	case VarPositional:
		return "var-positional"
	case KeywordOnly:
		return "keyword-only"
	case VarKeyword:
		return "var-keyword"
	}
	return fmt.Sprintf("ParamKind<%d>", int(k))
}

// Param is one formal parameter.
type Param struct {
	Name string
	Kind ParamKind
}

// Function is a function value as exposed by the host runtime's
// reflection facility.
type Function interface {
	// Signature returns the formal parameters in declaration order.
	Signature() ([]Param, error)

	// Instructions returns the instruction stream of the function body.
	Instructions() ([]instr.Raw, error)
}

// Driver decompiles functions.
type Driver interface {
	// Name returns the name of the driver.
	Name() string

	// Decompile reconstructs the expression tree of fn.
	Decompile(fn Function) (*expr.Function, error)

	// DecompileToText reconstructs fn and renders it as source text.
	DecompileToText(fn Function) (string, error)
}

type driverImpl struct {
	name       string
	decompiler *core.Decompiler
}

func (d *driverImpl) Name() string {
	return d.name
}

func (d *driverImpl) Decompile(fn Function) (*expr.Function, error) {
	params, err := d.params(fn)
	if err != nil {
		return nil, err
	}

	raw, err := fn.Instructions()
	if err != nil {
		return nil, fmt.Errorf("reading instructions: %w", err)
	}

	stream, err := instr.Decode(raw)
	if err != nil {
		return nil, err
	}

	return d.decompiler.Decompile(params, stream)
}

func (d *driverImpl) params(fn Function) ([]string, error) {
	sig, err := fn.Signature()
	if err != nil {
		return nil, fmt.Errorf("reading signature: %w", err)
	}

	names := make([]string, 0, len(sig))
	for _, p := range sig {
		if p.Kind != Positional && p.Kind != PositionalOnly {
			return nil, fmt.Errorf("%w: %s parameter %q",
				ErrUnsupportedSignature, p.Kind, p.Name)
		}
		names = append(names, p.Name)
	}

	return names, nil
}

func (d *driverImpl) DecompileToText(fn Function) (string, error) {
	f, err := d.Decompile(fn)
	if err != nil {
		return "", err
	}
	return printer.Print(f), nil
}

var defaultDriver = DriverBuilder{}.Build("Driver")

// DecompileToText decompiles fn with a default driver and renders the
// result.
func DecompileToText(fn Function) (string, error) {
	return defaultDriver.DecompileToText(fn)
}
