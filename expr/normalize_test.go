package expr_test

import (
	"github.com/aprimc/from-lambda/expr"
	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func g(name string) expr.Node { return &expr.Global{Name: name} }

var _ = Describe("Normalize", func() {
	It("should fold or with a shared else arm", func() {
		c := &expr.Conditional{
			Cond: g("a"),
			Then: expr.NewBinary(expr.Or, g("b"), g("c")),
			Else: g("c"),
		}

		want := expr.NewBinary(expr.Or,
			expr.NewBinary(expr.And, g("a"), g("b")), g("c"))
		Expect(cmp.Diff(want, expr.Normalize(c))).To(BeEmpty())
	})

	It("should fold and with a negated condition", func() {
		c := &expr.Conditional{
			Cond: expr.NewUnary(expr.Not, g("a")),
			Then: expr.NewBinary(expr.And, g("b"), g("c")),
			Else: g("c"),
		}

		want := expr.NewBinary(expr.And,
			expr.NewBinary(expr.Or, g("a"), g("b")), g("c"))
		Expect(cmp.Diff(want, expr.Normalize(c))).To(BeEmpty())
	})

	It("should keep and without a negated condition", func() {
		c := &expr.Conditional{
			Cond: g("a"),
			Then: expr.NewBinary(expr.And, g("b"), g("c")),
			Else: g("c"),
		}
		Expect(expr.Normalize(c)).To(BeIdenticalTo(c))
	})

	It("should keep a conditional whose else arm differs", func() {
		c := &expr.Conditional{
			Cond: g("a"),
			Then: expr.NewBinary(expr.Or, g("b"), g("c")),
			Else: g("d"),
		}
		Expect(expr.Normalize(c)).To(BeIdenticalTo(c))
	})

	It("should keep a conditional with a non-boolean then arm", func() {
		c := &expr.Conditional{
			Cond: g("a"),
			Then: expr.NewBinary(expr.Add, g("b"), g("c")),
			Else: g("c"),
		}
		Expect(expr.Normalize(c)).To(BeIdenticalTo(c))

		c = &expr.Conditional{Cond: g("a"), Then: g("b"), Else: g("c")}
		Expect(expr.Normalize(c)).To(BeIdenticalTo(c))
	})

	It("should be stable when applied twice", func() {
		c := &expr.Conditional{
			Cond: g("a"),
			Then: expr.NewBinary(expr.Or, g("b"), g("c")),
			Else: g("c"),
		}

		once := expr.Normalize(c)
		_, isCond := once.(*expr.Conditional)
		Expect(isCond).To(BeFalse())
		Expect(expr.Normalize(c)).To(Satisfy(func(n expr.Node) bool {
			return expr.Equal(n, once)
		}))
	})

	It("should compare the else arm structurally", func() {
		c := &expr.Conditional{
			Cond: g("a"),
			Then: expr.NewBinary(expr.Or, g("b"),
				&expr.Attribute{Name: "y", X: g("x")}),
			Else: &expr.Attribute{Name: "y", X: g("x")},
		}
		Expect(expr.Normalize(c)).To(BeAssignableToTypeOf(&expr.Binary{}))
	})
})
