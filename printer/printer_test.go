package printer_test

import (
	"github.com/aprimc/from-lambda/expr"
	"github.com/aprimc/from-lambda/printer"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func g(name string) expr.Node { return &expr.Global{Name: name} }

func lit(v interface{}) expr.Node { return &expr.Literal{Value: v} }

func fn(body expr.Node, params ...string) expr.Node {
	return &expr.Function{Params: params, Body: body}
}

var _ = Describe("Print", func() {
	DescribeTable("binary operators",
		func(n expr.Node, want string) {
			Expect(printer.Print(n)).To(Equal(want))
		},
		Entry("left chain",
			expr.NewBinary(expr.Sub, expr.NewBinary(expr.Sub, g("a"), g("b")), g("c")),
			"a - b - c"),
		Entry("right grouping of a left-associative operator",
			expr.NewBinary(expr.Sub, g("a"), expr.NewBinary(expr.Sub, g("b"), g("c"))),
			"a - (b - c)"),
		Entry("higher precedence on the right",
			expr.NewBinary(expr.Add, g("a"), expr.NewBinary(expr.Mul, g("b"), g("c"))),
			"a + b * c"),
		Entry("lower precedence on the left",
			expr.NewBinary(expr.Mul, expr.NewBinary(expr.Add, g("a"), g("b")), g("c")),
			"(a + b) * c"),
		Entry("right-nested power",
			expr.NewBinary(expr.Power, g("a"), expr.NewBinary(expr.Power, g("b"), g("c"))),
			"a ** b ** c"),
		Entry("left-nested power",
			expr.NewBinary(expr.Power, expr.NewBinary(expr.Power, g("a"), g("b")), g("c")),
			"(a ** b) ** c"),
		Entry("unary base of power",
			expr.NewBinary(expr.Power, expr.NewUnary(expr.Neg, g("a")), g("b")),
			"(-a) ** b"),
		Entry("unary exponent",
			expr.NewBinary(expr.Power, g("a"), expr.NewUnary(expr.Neg, g("b"))),
			"a ** -b"),
		Entry("negative literal base",
			expr.NewBinary(expr.Power, &expr.Literal{Value: -1, Text: "-1"}, lit(2)),
			"(-1) ** 2"),
		Entry("nested and on the right",
			expr.NewBinary(expr.And, g("a"), expr.NewBinary(expr.And, g("b"), g("c"))),
			"a and b and c"),
		Entry("or under and",
			expr.NewBinary(expr.And, expr.NewBinary(expr.Or, g("a"), g("b")), g("c")),
			"(a or b) and c"),
		Entry("and under or",
			expr.NewBinary(expr.Or, expr.NewBinary(expr.And, g("a"), g("b")), g("c")),
			"a and b or c"),
		Entry("left-nested and of comparisons",
			expr.NewBinary(expr.And,
				expr.NewBinary(expr.And,
					expr.NewBinary(expr.Lt, g("a"), g("b")),
					expr.NewBinary(expr.Lt, g("b"), g("c"))),
				expr.NewBinary(expr.Lt, g("d"), g("e"))),
			"a < b and b < c and d < e"),
		Entry("comparison of a comparison",
			expr.NewBinary(expr.Eq, expr.NewBinary(expr.Lt, g("a"), g("b")), g("c")),
			"(a < b) == c"),
		Entry("not as a comparison operand",
			expr.NewBinary(expr.Eq, g("a"), expr.NewUnary(expr.Not, g("b"))),
			"a == (not b)"),
		Entry("not as an arithmetic operand",
			expr.NewBinary(expr.Add, g("a"), expr.NewUnary(expr.Not, g("b"))),
			"a + (not b)"),
		Entry("bitwise precedence",
			expr.NewBinary(expr.BitOr,
				expr.NewBinary(expr.BitXor, g("a"), expr.NewBinary(expr.BitAnd, g("b"), g("c"))),
				expr.NewBinary(expr.LShift, g("d"), g("e"))),
			"a ^ b & c | d << e"),
		Entry("subscript of a sum",
			expr.NewBinary(expr.Subscript, expr.NewBinary(expr.Add, g("a"), g("b")), g("c")),
			"(a + b)[c]"),
		Entry("subscript by a conditional",
			expr.NewBinary(expr.Subscript, g("a"),
				&expr.Conditional{Cond: g("b"), Then: g("c"), Else: g("d")}),
			"a[c if b else d]"),
	)

	DescribeTable("unary operators",
		func(n expr.Node, want string) {
			Expect(printer.Print(n)).To(Equal(want))
		},
		Entry("not", expr.NewUnary(expr.Not, g("a")), "not a"),
		Entry("not of a comparison",
			expr.NewUnary(expr.Not, expr.NewBinary(expr.In, g("a"), g("b"))), "not a in b"),
		Entry("not of and",
			expr.NewUnary(expr.Not, expr.NewBinary(expr.And, g("a"), g("b"))), "not (a and b)"),
		Entry("double negation", expr.NewUnary(expr.Neg, expr.NewUnary(expr.Neg, g("a"))), "--a"),
		Entry("minus of a power",
			expr.NewUnary(expr.Neg, expr.NewBinary(expr.Power, g("a"), g("b"))), "-a ** b"),
		Entry("invert of a product",
			expr.NewUnary(expr.Invert, expr.NewBinary(expr.Mul, g("a"), g("b"))), "~(a * b)"),
	)

	DescribeTable("conditionals",
		func(n expr.Node, want string) {
			Expect(printer.Print(n)).To(Equal(want))
		},
		Entry("plain",
			&expr.Conditional{Cond: g("b"), Then: g("a"), Else: g("c")},
			"a if b else c"),
		Entry("nested else",
			&expr.Conditional{Cond: g("b"), Then: g("a"),
				Else: &expr.Conditional{Cond: g("d"), Then: g("c"), Else: g("e")}},
			"a if b else c if d else e"),
		Entry("nested then",
			&expr.Conditional{Cond: g("b"),
				Then: &expr.Conditional{Cond: g("d"), Then: g("c"), Else: g("e")},
				Else: g("a")},
			"(c if d else e) if b else a"),
		Entry("nested condition",
			&expr.Conditional{
				Cond: &expr.Conditional{Cond: g("c"), Then: g("b"), Else: g("d")},
				Then: g("a"), Else: g("e")},
			"a if (b if c else d) else e"),
		Entry("boolean arms",
			&expr.Conditional{Cond: expr.NewBinary(expr.Or, g("a"), g("b")),
				Then: expr.NewBinary(expr.And, g("c"), g("d")),
				Else: expr.NewUnary(expr.Not, g("e"))},
			"c and d if a or b else not e"),
		Entry("operand of a sum",
			expr.NewBinary(expr.Add,
				&expr.Conditional{Cond: g("b"), Then: g("a"), Else: g("c")}, lit(1)),
			"(a if b else c) + 1"),
	)

	DescribeTable("displays",
		func(n expr.Node, want string) {
			Expect(printer.Print(n)).To(Equal(want))
		},
		Entry("empty list", &expr.List{}, "[]"),
		Entry("list", &expr.List{Items: []expr.Node{lit(1), g("a")}}, "[1, a]"),
		Entry("empty tuple", &expr.Tuple{}, "()"),
		Entry("single tuple", &expr.Tuple{Items: []expr.Node{g("a")}}, "(a,)"),
		Entry("tuple", &expr.Tuple{Items: []expr.Node{g("a"), g("b")}}, "(a, b)"),
		Entry("empty set", &expr.Set{}, "set()"),
		Entry("set", &expr.Set{Items: []expr.Node{lit(1)}}, "{1}"),
		Entry("empty map", &expr.Map{}, "{}"),
		Entry("map", &expr.Map{Pairs: []expr.Pair{
			{Key: lit("k"), Value: expr.NewBinary(expr.Or, g("a"), g("b"))},
		}}, "{'k': a or b}"),
		Entry("conditional item",
			&expr.List{Items: []expr.Node{
				&expr.Conditional{Cond: g("b"), Then: g("a"), Else: g("c")},
			}},
			"[a if b else c]"),
		Entry("folded tuple constant", lit(expr.TupleValue{1, "x"}), "(1, 'x')"),
	)

	DescribeTable("postfix",
		func(n expr.Node, want string) {
			Expect(printer.Print(n)).To(Equal(want))
		},
		Entry("attribute", &expr.Attribute{Name: "b", X: g("a")}, "a.b"),
		Entry("attribute of a sum",
			&expr.Attribute{Name: "c", X: expr.NewBinary(expr.Add, g("a"), g("b"))},
			"(a + b).c"),
		Entry("attribute of an integer", &expr.Attribute{Name: "real", X: lit(1)},
			"(1).real"),
		Entry("attribute of a float", &expr.Attribute{Name: "real", X: lit(1.5)},
			"1.5.real"),
		Entry("attribute of a string",
			&expr.Attribute{Name: "upper", X: lit("s")}, "'s'.upper"),
		Entry("attribute of a display",
			&expr.Attribute{Name: "count", X: &expr.List{}}, "[].count"),
		Entry("call of a call",
			&expr.Call{Func: &expr.Call{Func: g("f")}, Args: []expr.Node{g("x")}},
			"f()(x)"),
		Entry("call of a unary",
			&expr.Call{Func: expr.NewUnary(expr.Neg, g("f"))}, "(-f)()"),
		Entry("call arguments",
			&expr.Call{Func: g("f"), Args: []expr.Node{
				expr.NewBinary(expr.Add, g("a"), g("b")),
				&expr.Conditional{Cond: g("c"), Then: g("d"), Else: g("e")},
			}},
			"f(a + b, d if c else e)"),
	)

	It("should print functions", func() {
		Expect(printer.Print(fn(g("a")))).To(Equal("lambda: a"))
		Expect(printer.Print(fn(
			expr.NewBinary(expr.Add, &expr.Param{Name: "x"}, &expr.Param{Name: "y"}), "x", "y",
		))).To(Equal("lambda x, y: x + y"))
		Expect(printer.Print(fn(
			&expr.Conditional{Cond: g("b"), Then: g("a"), Else: g("c")}, "x",
		))).To(Equal("lambda x: a if b else c"))
	})

	It("should print literal text verbatim", func() {
		Expect(printer.Print(&expr.Literal{Value: 1.0, Text: "1.0"})).To(Equal("1.0"))
		Expect(printer.Print(lit(nil))).To(Equal("None"))
		Expect(printer.Print(lit(true))).To(Equal("True"))
		Expect(printer.Print(lit("it's"))).To(Equal(`"it's"`))
	})

	It("should be idempotent", func() {
		n := fn(expr.NewBinary(expr.Or,
			expr.NewBinary(expr.And, g("a"), expr.NewBinary(expr.Lt, g("b"), g("c"))),
			&expr.Call{Func: g("f"), Args: []expr.Node{&expr.Tuple{Items: []expr.Node{g("x")}}}},
		), "x")
		Expect(printer.Print(n)).To(Equal(printer.Print(n)))
		Expect(printer.Print(n)).To(Equal("lambda x: a and b < c or f((x,))"))
	})

	It("should panic on foreign nodes", func() {
		Expect(func() { printer.Print(nil) }).To(Panic())
	})
})
