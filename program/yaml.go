package program

import (
	"fmt"

	"github.com/aprimc/from-lambda/expr"
	"github.com/aprimc/from-lambda/instr"
	"gopkg.in/yaml.v3"
)

type yamlFile struct {
	Functions []yamlFunction `yaml:"functions"`
}

type yamlFunction struct {
	Name   string     `yaml:"name"`
	Params []string   `yaml:"params"`
	Code   []yamlInst `yaml:"code"`
	Cases  []yamlCase `yaml:"cases"`
}

type yamlInst struct {
	Offset *int        `yaml:"offset"`
	Op     string      `yaml:"op"`
	Arg    interface{} `yaml:"arg"`
	Repr   string      `yaml:"repr"`
}

type yamlCase struct {
	Args    []interface{}          `yaml:"args"`
	Globals map[string]interface{} `yaml:"globals"`
}

// LoadYAML parses a fixture file of the form
//
//	functions:
//	  - name: inc
//	    params: [x]
//	    code:
//	      - {offset: 0, op: LOAD_FAST, arg: x}
//	      - {offset: 2, op: LOAD_CONST, arg: 1}
//	      - {offset: 4, op: BINARY_ADD}
//	      - {offset: 6, op: RETURN_VALUE}
//	    cases:
//	      - {args: [1]}
//	      - {args: [2.5]}
//
// Offsets may be omitted, in which case instruction i sits at 2*i. YAML
// sequences given as LOAD_CONST operands become tuple constants. Cases are
// optional bindings used when verifying the decompiled function.
func LoadYAML(data []byte) ([]*Function, error) {
	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	fns := make([]*Function, 0, len(file.Functions))
	for i, yf := range file.Functions {
		if yf.Name == "" {
			return nil, fmt.Errorf("function %d has no name", i)
		}

		f := &Function{
			Name:   yf.Name,
			Params: yf.Params,
			Code:   make([]instr.Raw, len(yf.Code)),
		}

		for j, yi := range yf.Code {
			if yi.Op == "" {
				return nil, fmt.Errorf("%s: instruction %d has no op", yf.Name, j)
			}

			raw := instr.Raw{
				OpName:  yi.Op,
				Arg:     yi.Arg,
				ArgRepr: yi.Repr,
				Offset:  2 * j,
			}
			if yi.Offset != nil {
				raw.Offset = *yi.Offset
			}
			if yi.Op == instr.LoadConst.Name() {
				raw.Arg = yamlConst(yi.Arg)
			}

			f.Code[j] = raw
		}

		for _, yc := range yf.Cases {
			if len(yc.Args) != len(yf.Params) {
				return nil, fmt.Errorf("%s: case has %d arguments, want %d",
					yf.Name, len(yc.Args), len(yf.Params))
			}
			f.Cases = append(f.Cases, Case{Args: yc.Args, Globals: yc.Globals})
		}

		fns = append(fns, f)
	}

	return fns, nil
}

func yamlConst(v interface{}) interface{} {
	seq, ok := v.([]interface{})
	if !ok {
		return v
	}

	t := make(expr.TupleValue, len(seq))
	for i, item := range seq {
		t[i] = yamlConst(item)
	}
	return t
}
