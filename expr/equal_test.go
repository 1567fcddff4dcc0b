package expr_test

import (
	"github.com/aprimc/from-lambda/expr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Equal", func() {
	lit := func(v interface{}) expr.Node { return &expr.Literal{Value: v} }

	DescribeTable("structural equality",
		func(a, b expr.Node, want bool) {
			Expect(expr.Equal(a, b)).To(Equal(want))
			Expect(expr.Equal(b, a)).To(Equal(want))
		},
		Entry("same global", g("a"), g("a"), true),
		Entry("different globals", g("a"), g("b"), false),
		Entry("global and parameter",
			g("a"), &expr.Param{Name: "a"}, false),
		Entry("equal literals", lit(1), lit(1), true),
		Entry("literals of different types", lit(1), lit(1.0), false),
		Entry("equal tuple constants",
			lit(expr.TupleValue{1, "a"}), lit(expr.TupleValue{1, "a"}), true),
		Entry("binary operators differ",
			expr.NewBinary(expr.Add, g("a"), g("b")),
			expr.NewBinary(expr.Sub, g("a"), g("b")), false),
		Entry("nested binary",
			expr.NewBinary(expr.Add, g("a"), expr.NewUnary(expr.Neg, g("b"))),
			expr.NewBinary(expr.Add, g("a"), expr.NewUnary(expr.Neg, g("b"))),
			true),
		Entry("lists of different length",
			&expr.List{Items: []expr.Node{g("a")}},
			&expr.List{Items: []expr.Node{g("a"), g("b")}}, false),
		Entry("list and tuple",
			&expr.List{Items: []expr.Node{g("a")}},
			&expr.Tuple{Items: []expr.Node{g("a")}}, false),
		Entry("maps",
			&expr.Map{Pairs: []expr.Pair{{Key: g("a"), Value: lit(1)}}},
			&expr.Map{Pairs: []expr.Pair{{Key: g("a"), Value: lit(1)}}}, true),
		Entry("calls with different arguments",
			&expr.Call{Func: g("f"), Args: []expr.Node{g("a")}},
			&expr.Call{Func: g("f"), Args: []expr.Node{g("b")}}, false),
		Entry("conditionals",
			&expr.Conditional{Cond: g("a"), Then: g("b"), Else: g("c")},
			&expr.Conditional{Cond: g("a"), Then: g("b"), Else: g("c")}, true),
		Entry("functions with different parameters",
			&expr.Function{Params: []string{"x"}, Body: g("a")},
			&expr.Function{Params: []string{"y"}, Body: g("a")}, false),
	)
})
