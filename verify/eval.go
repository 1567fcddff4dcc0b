package verify

import (
	"fmt"

	"github.com/aprimc/from-lambda/expr"
)

// Eval evaluates a decompiled function under c.
func Eval(f *expr.Function, c Case) (Value, error) {
	if len(c.Args) != len(f.Params) {
		return nil, fmt.Errorf("expected %d arguments, got %d",
			len(f.Params), len(c.Args))
	}

	env := &env{
		locals:  make(map[string]Value, len(f.Params)),
		globals: c.Globals,
	}
	for i, p := range f.Params {
		env.locals[p] = normalize(c.Args[i])
	}

	return env.eval(f.Body)
}

type env struct {
	locals  map[string]Value
	globals map[string]Value
}

func (e *env) eval(n expr.Node) (Value, error) {
	switch n := n.(type) {
	case *expr.Literal:
		return normalize(n.Value), nil
	case *expr.Param:
		return e.locals[n.Name], nil
	case *expr.Global:
		v, found := e.globals[n.Name]
		if !found {
			return nil, evalErrorf("name '%s' is not defined", n.Name)
		}
		return normalize(v), nil
	case *expr.Unary:
		x, err := e.eval(n.X)
		if err != nil {
			return nil, err
		}
		return Unary(n.Op, x)
	case *expr.Binary:
		return e.binary(n)
	case *expr.Attribute:
		x, err := e.eval(n.X)
		if err != nil {
			return nil, err
		}
		return Attribute(x, n.Name)
	case *expr.Conditional:
		c, err := e.eval(n.Cond)
		if err != nil {
			return nil, err
		}
		if Truth(c) {
			return e.eval(n.Then)
		}
		return e.eval(n.Else)
	case *expr.List:
		items, err := e.evalAll(n.Items)
		return List(items), err
	case *expr.Tuple:
		items, err := e.evalAll(n.Items)
		return expr.TupleValue(items), err
	case *expr.Set:
		items, err := e.evalAll(n.Items)
		if err != nil {
			return nil, err
		}
		return newSet(items)
	case *expr.Map:
		return e.dict(n)
	case *expr.Call:
		f, err := e.eval(n.Func)
		if err != nil {
			return nil, err
		}
		args, err := e.evalAll(n.Args)
		if err != nil {
			return nil, err
		}
		return Call(f, args)
	}

	return nil, fmt.Errorf("cannot evaluate %T", n)
}

func (e *env) binary(n *expr.Binary) (Value, error) {
	x, err := e.eval(n.X)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case expr.And:
		if !Truth(x) {
			return x, nil
		}
		return e.eval(n.Y)
	case expr.Or:
		if Truth(x) {
			return x, nil
		}
		return e.eval(n.Y)
	}

	y, err := e.eval(n.Y)
	if err != nil {
		return nil, err
	}
	return Binary(n.Op, x, y)
}

func (e *env) evalAll(nodes []expr.Node) ([]Value, error) {
	vs := make([]Value, len(nodes))
	for i, n := range nodes {
		v, err := e.eval(n)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}

func (e *env) dict(n *expr.Map) (Value, error) {
	keys := make([]Value, len(n.Pairs))
	values := make([]Value, len(n.Pairs))
	for i, p := range n.Pairs {
		k, err := e.eval(p.Key)
		if err != nil {
			return nil, err
		}
		v, err := e.eval(p.Value)
		if err != nil {
			return nil, err
		}
		keys[i], values[i] = k, v
	}
	return newDict(keys, values)
}
