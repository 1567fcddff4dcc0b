package instr

// ISA maps host opcode names to instruction categories.
type ISA struct {
	name           string
	nameToCategory map[string]Category
}

// NewISA creates an empty instruction set.
func NewISA(name string) *ISA {
	return &ISA{
		name:           name,
		nameToCategory: make(map[string]Category),
	}
}

// Name returns the name of the instruction set.
func (isa *ISA) Name() string {
	return isa.name
}

// Register maps opName to c. Hosts that spell an opcode differently can
// register the alias on their own ISA.
func (isa *ISA) Register(opName string, c Category) {
	isa.nameToCategory[opName] = c
}

// Lookup returns the category registered under opName.
func (isa *ISA) Lookup(opName string) (Category, bool) {
	c, ok := isa.nameToCategory[opName]
	return c, ok
}

// DefaultISA is the instruction subset understood by the decompiler. It is
// filled once at init and never modified afterwards.
var DefaultISA = NewISA("lambda expression subset")

func init() {
	for c := Category(0); c < numCategories; c++ {
		DefaultISA.Register(c.Name(), c)
	}
}

// CompareOps is the operator vocabulary accepted as a CompareOp operand.
var CompareOps = map[string]bool{
	"<": true, "<=": true, "==": true, "!=": true, ">": true, ">=": true,
	"in": true, "not in": true, "is": true, "is not": true,
}
