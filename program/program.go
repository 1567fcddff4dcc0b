// Package program loads decompilation inputs from files: YAML fixtures that
// spell out instruction streams, and text listings in the layout of the
// host disassembler.
package program

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aprimc/from-lambda/api"
	"github.com/aprimc/from-lambda/instr"
)

// Function is a function loaded from a file. It satisfies api.Function.
type Function struct {
	Name   string
	Params []string
	Code   []instr.Raw
	Cases  []Case
}

// Case is one set of bindings stored alongside a function.
type Case struct {
	Args    []interface{}
	Globals map[string]interface{}
}

// Signature returns the parameters of the function, all positional.
func (f *Function) Signature() ([]api.Param, error) {
	params := make([]api.Param, len(f.Params))
	for i, name := range f.Params {
		params[i] = api.Param{Name: name, Kind: api.Positional}
	}
	return params, nil
}

// Instructions returns the raw instruction stream.
func (f *Function) Instructions() ([]instr.Raw, error) {
	return f.Code, nil
}

// Lookup returns the function called name.
func Lookup(fns []*Function, name string) (*Function, bool) {
	for _, f := range fns {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// LoadFile reads the functions stored in path. The format follows the
// extension: .yaml and .yml are fixtures, .dis and .txt are listings.
func LoadFile(path string) ([]*Function, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read program file: %w", err)
	}

	var fns []*Function
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		fns, err = LoadYAML(data)
	case ".dis", ".txt":
		fns, err = ParseListing(strings.NewReader(string(data)))
	default:
		return nil, fmt.Errorf("unknown program file extension %q", ext)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fns, nil
}
