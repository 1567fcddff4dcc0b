// Package printer renders expression trees as host-language source text
// with the fewest parentheses that keep the tree's grouping.
package printer

import (
	"fmt"
	"strings"

	"github.com/aprimc/from-lambda/expr"
)

// Print renders n. It panics if n is not one of the node types of package
// expr.
func Print(n expr.Node) string {
	p := printer{}
	p.node(n)
	return p.b.String()
}

type printer struct {
	b strings.Builder
}

func (p *printer) write(s string) {
	p.b.WriteString(s)
}

// sub prints n, wrapped in parentheses if paren is set.
func (p *printer) sub(n expr.Node, paren bool) {
	if paren {
		p.write("(")
		p.node(n)
		p.write(")")
		return
	}
	p.node(n)
}

func (p *printer) node(n expr.Node) {
	switch n := n.(type) {
	case *expr.Function:
		p.function(n)
	case *expr.Literal:
		p.write(n.String())
	case *expr.Param:
		p.write(n.Name)
	case *expr.Global:
		p.write(n.Name)
	case *expr.Unary:
		p.unary(n)
	case *expr.Binary:
		p.binary(n)
	case *expr.Attribute:
		p.attribute(n)
	case *expr.Call:
		p.sub(n.Func, expr.Precedence(n.Func) < expr.PrecPostfix)
		p.write("(")
		p.list(n.Args)
		p.write(")")
	case *expr.Conditional:
		p.sub(n.Then, expr.Precedence(n.Then) <= expr.PrecConditional)
		p.write(" if ")
		p.sub(n.Cond, expr.Precedence(n.Cond) <= expr.PrecConditional)
		p.write(" else ")
		p.sub(n.Else, expr.Precedence(n.Else) < expr.PrecConditional)
	case *expr.List:
		p.write("[")
		p.list(n.Items)
		p.write("]")
	case *expr.Tuple:
		p.write("(")
		p.list(n.Items)
		if len(n.Items) == 1 {
			p.write(",")
		}
		p.write(")")
	case *expr.Set:
		if len(n.Items) == 0 {
			p.write("set()")
			return
		}
		p.write("{")
		p.list(n.Items)
		p.write("}")
	case *expr.Map:
		p.write("{")
		for i, pair := range n.Pairs {
			if i > 0 {
				p.write(", ")
			}
			p.node(pair.Key)
			p.write(": ")
			p.node(pair.Value)
		}
		p.write("}")
	default:
		panic(fmt.Sprintf("printer: unknown node type %T", n))
	}
}

func (p *printer) function(f *expr.Function) {
	p.write("lambda")
	if len(f.Params) > 0 {
		p.write(" ")
		p.write(strings.Join(f.Params, ", "))
	}
	p.write(": ")
	p.node(f.Body)
}

func (p *printer) list(items []expr.Node) {
	for i, item := range items {
		if i > 0 {
			p.write(", ")
		}
		p.node(item)
	}
}

func (p *printer) unary(u *expr.Unary) {
	p.write(u.Op.String())
	if u.Op == expr.Not {
		p.write(" ")
	}
	p.sub(u.X, expr.Precedence(u.X) < u.Op.Precedence())
}

func (p *printer) attribute(a *expr.Attribute) {
	paren := expr.Precedence(a.X) < expr.PrecPostfix
	if lit, ok := a.X.(*expr.Literal); ok && isDecimalInt(lit.String()) {
		// 1.real would lex as a float.
		paren = true
	}
	p.sub(a.X, paren)
	p.write(".")
	p.write(a.Name)
}

func (p *printer) binary(b *expr.Binary) {
	if b.Op == expr.Subscript {
		p.sub(b.X, expr.Precedence(b.X) < expr.PrecPostfix)
		p.write("[")
		p.node(b.Y)
		p.write("]")
		return
	}

	prec := b.Op.Precedence()
	lp, rp := expr.Precedence(b.X), expr.Precedence(b.Y)

	var left, right bool
	switch {
	case b.Op.IsBoolean():
		left, right = lp < prec, rp < prec
	case b.Op.IsCompare():
		left, right = lp <= prec, rp <= prec
	case b.Op.IsRightAssoc():
		left, right = lp <= prec, rp < expr.PrecUnary
	default:
		left, right = lp < prec, rp <= prec
	}

	p.sub(b.X, left)
	p.write(" ")
	p.write(b.Op.String())
	p.write(" ")
	p.sub(b.Y, right)
}

func isDecimalInt(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
