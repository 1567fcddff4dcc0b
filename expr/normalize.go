package expr

// Normalize rewrites the two conditional shapes produced by mixed and/or
// chains back into boolean operator form:
//
//	x or y if c else y      -->  c and x or y
//	x and y if not z else y -->  (z or x) and y
//
// The rewrite is shallow. Any other conditional is returned unchanged.
func Normalize(c *Conditional) Node {
	then, ok := c.Then.(*Binary)
	if !ok || !Equal(then.Y, c.Else) {
		return c
	}

	switch then.Op {
	case Or:
		return NewBinary(Or, NewBinary(And, c.Cond, then.X), c.Else)
	case And:
		cond, ok := c.Cond.(*Unary)
		if ok && cond.Op == Not {
			return NewBinary(And, NewBinary(Or, cond.X, then.X), c.Else)
		}
	}

	return c
}
