package instr_test

import (
	"errors"

	"github.com/aprimc/from-lambda/instr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decode", func() {
	It("should decode supported instructions", func() {
		s, err := instr.Decode([]instr.Raw{
			{OpName: "LOAD_FAST", Arg: "x", Offset: 0},
			{OpName: "LOAD_CONST", Arg: 1.5, ArgRepr: "1.5", Offset: 2},
			{OpName: "COMPARE_OP", Arg: "<=", Offset: 4},
			{OpName: "POP_JUMP_IF_FALSE", Arg: int64(10), Offset: 6},
			{OpName: "BUILD_LIST", Arg: float64(2), Offset: 8},
			{OpName: "RETURN_VALUE", Offset: 10},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(HaveLen(6))

		Expect(s[0].Category).To(Equal(instr.LoadFast))
		Expect(s[0].Name()).To(Equal("x"))
		Expect(s[1].Arg).To(Equal(1.5))
		Expect(s[1].Repr).To(Equal("1.5"))
		Expect(s[2].Name()).To(Equal("<="))
		Expect(s[3].Target()).To(Equal(10))
		Expect(s[4].Count()).To(Equal(2))
		Expect(s[5].Arg).To(BeNil())
	})

	It("should reject unknown opcodes", func() {
		_, err := instr.Decode([]instr.Raw{
			{OpName: "LOAD_FAST", Arg: "x", Offset: 0},
			{OpName: "MAKE_FUNCTION", Arg: 0, Offset: 2},
		})
		Expect(errors.Is(err, instr.ErrUnsupportedInstruction)).To(BeTrue())

		var ie *instr.Error
		Expect(errors.As(err, &ie)).To(BeTrue())
		Expect(ie.OpName).To(Equal("MAKE_FUNCTION"))
		Expect(ie.Offset).To(Equal(2))
		Expect(err.Error()).
			To(Equal("unsupported instruction: MAKE_FUNCTION at offset 2"))
	})

	It("should reject malformed operands", func() {
		_, err := instr.Decode([]instr.Raw{
			{OpName: "LOAD_GLOBAL", Arg: 3, Offset: 0},
		})
		Expect(errors.Is(err, instr.ErrUnsupportedInstruction)).To(BeTrue())

		_, err = instr.Decode([]instr.Raw{
			{OpName: "BUILD_TUPLE", Arg: -1, Offset: 0},
		})
		Expect(errors.Is(err, instr.ErrUnsupportedInstruction)).To(BeTrue())

		_, err = instr.Decode([]instr.Raw{
			{OpName: "JUMP_FORWARD", Arg: 2.5, Offset: 0},
		})
		Expect(errors.Is(err, instr.ErrUnsupportedInstruction)).To(BeTrue())
	})

	It("should reject offsets out of order", func() {
		_, err := instr.Decode([]instr.Raw{
			{OpName: "NOP", Offset: 2},
			{OpName: "NOP", Offset: 2},
		})
		Expect(errors.Is(err, instr.ErrMalformedStack)).To(BeTrue())
	})

	It("should decode with a custom instruction set", func() {
		isa := instr.NewISA("small")
		_, err := instr.DecodeWith(isa, []instr.Raw{{OpName: "NOP"}})
		Expect(errors.Is(err, instr.ErrUnsupportedInstruction)).To(BeTrue())
		Expect(isa.Name()).To(Equal("small"))

		isa.Register("NOP", instr.Nop)
		s, err := instr.DecodeWith(isa, []instr.Raw{{OpName: "NOP"}})
		Expect(err).NotTo(HaveOccurred())
		Expect(s[0].Category).To(Equal(instr.Nop))
	})
})

var _ = Describe("Stream", func() {
	var s instr.Stream

	BeforeEach(func() {
		var err error
		s, err = instr.Decode([]instr.Raw{
			{OpName: "NOP", Offset: 0},
			{OpName: "NOP", Offset: 2},
			{OpName: "NOP", Offset: 6},
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("should find instructions by offset", func() {
		Expect(s.Find(0)).To(Equal(0))
		Expect(s.Find(2)).To(Equal(1))
		Expect(s.Find(6)).To(Equal(2))
	})

	It("should map offsets past the end to the stream length", func() {
		Expect(s.Find(8)).To(Equal(3))
		Expect(s.Find(100)).To(Equal(3))
	})

	It("should reject offsets between instructions", func() {
		_, err := s.Find(4)
		Expect(errors.Is(err, instr.ErrMalformedStack)).To(BeTrue())
	})
})

var _ = Describe("Category", func() {
	It("should name categories after host opcodes", func() {
		Expect(instr.JumpIfFalseOrPop.Name()).To(Equal("JUMP_IF_FALSE_OR_POP"))

		c, ok := instr.DefaultISA.Lookup("DUP_TOP_TWO")
		Expect(ok).To(BeTrue())
		Expect(c).To(Equal(instr.DupTopTwo))
	})

	It("should panic on invalid categories", func() {
		Expect(func() { instr.Category(-1).Name() }).To(Panic())
		Expect(instr.Category(999).String()).To(Equal("Category<999>"))
	})

	It("should classify operands", func() {
		Expect(instr.JumpForward.IsJump()).To(BeTrue())
		Expect(instr.LoadAttr.HasName()).To(BeTrue())
		Expect(instr.CallFunction.HasCount()).To(BeTrue())
		Expect(instr.ReturnValue.IsJump()).To(BeFalse())
	})

	It("should format instructions", func() {
		inst := instr.Instruction{
			Category: instr.LoadConst, Arg: 1, Repr: "1", Offset: 4,
		}
		Expect(inst.String()).To(Equal("4 LOAD_CONST (1)"))
	})
})
