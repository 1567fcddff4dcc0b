package expr_test

import (
	"github.com/aprimc/from-lambda/expr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Operators", func() {
	It("should order precedence from or to power", func() {
		order := []expr.BinaryOp{
			expr.Or, expr.And, expr.Lt, expr.BitOr, expr.BitXor,
			expr.BitAnd, expr.LShift, expr.Add, expr.Mul, expr.Power,
		}
		for i := 1; i < len(order); i++ {
			Expect(order[i].Precedence()).
				To(BeNumerically(">", order[i-1].Precedence()))
		}
	})

	It("should place not between and and comparisons", func() {
		Expect(expr.Not.Precedence()).
			To(BeNumerically(">", expr.And.Precedence()))
		Expect(expr.Not.Precedence()).
			To(BeNumerically("<", expr.Eq.Precedence()))
		Expect(expr.Neg.Precedence()).To(Equal(expr.PrecUnary))
	})

	It("should classify operators", func() {
		Expect(expr.IsNot.IsCompare()).To(BeTrue())
		Expect(expr.Add.IsCompare()).To(BeFalse())
		Expect(expr.Or.IsBoolean()).To(BeTrue())
		Expect(expr.Power.IsRightAssoc()).To(BeTrue())
		Expect(expr.Sub.IsRightAssoc()).To(BeFalse())
	})

	It("should look up comparisons by spelling", func() {
		op, ok := expr.LookupCompare("not in")
		Expect(ok).To(BeTrue())
		Expect(op).To(Equal(expr.NotIn))

		_, ok = expr.LookupCompare("exception match")
		Expect(ok).To(BeFalse())
	})

	It("should panic on invalid operators", func() {
		Expect(func() { expr.BinaryOp(-1).Precedence() }).To(Panic())
		Expect(expr.BinaryOp(100).String()).To(Equal("BinaryOp<100>"))
	})

	It("should report node precedence", func() {
		Expect(expr.Precedence(&expr.Literal{Value: -3})).To(Equal(expr.PrecUnary))
		Expect(expr.Precedence(&expr.Literal{Value: 3})).To(Equal(expr.PrecAtom))
		Expect(expr.Precedence(&expr.Call{Func: g("f")})).
			To(Equal(expr.PrecPostfix))
		Expect(expr.Precedence(&expr.Set{})).To(Equal(expr.PrecDisplay))
		Expect(expr.Precedence(&expr.Conditional{})).
			To(Equal(expr.PrecConditional))
	})
})

var _ = Describe("Repr", func() {
	DescribeTable("constants",
		func(v interface{}, want string) {
			Expect(expr.Repr(v)).To(Equal(want))
		},
		Entry("none", nil, "None"),
		Entry("false", false, "False"),
		Entry("int", 42, "42"),
		Entry("negative int64", int64(-7), "-7"),
		Entry("whole float", 2.0, "2.0"),
		Entry("float", 0.25, "0.25"),
		Entry("imaginary", complex(0, 2), "2j"),
		Entry("complex", complex(1, -2), "(1-2j)"),
		Entry("string", "a'b\"c\n", `'a\'b"c\n'`),
		Entry("string with single quote", "it's", `"it's"`),
		Entry("empty tuple", expr.TupleValue{}, "()"),
		Entry("single tuple", expr.TupleValue{"x"}, "('x',)"),
		Entry("nested tuple", expr.TupleValue{1, expr.TupleValue{2, 3}},
			"(1, (2, 3))"),
		Entry("list", []interface{}{1, nil}, "[1, None]"),
	)
})
