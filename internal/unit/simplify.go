package unit

// Simplify looks for a lower-magnitude encoding of c by walking the identity
// catalog once, in order.
//
// For each identity, if multiplying by it lowers the magnitude, keep
// multiplying while each step strictly lowers it further; otherwise try the
// same with division. Earlier identities are never revisited.
//
// This is a greedy local search. The result is always Equal to c, but it is
// not guaranteed to be the smallest encoding, and it depends on catalog
// order. Comparisons are strict: a step that keeps the magnitude unchanged
// is not taken.
func (c Composite) Simplify() Composite {
	current := c
	for _, identity := range catalog {
		mag := current.Magnitude()
		if next := current.Multiply(identity); next.Magnitude() < mag {
			current = descend(next, identity, Composite.Multiply)
		} else if next := current.Divide(identity); next.Magnitude() < mag {
			current = descend(next, identity, Composite.Divide)
		}
	}
	return current
}

// descend applies step repeatedly while it strictly decreases magnitude.
func descend(from, identity Composite, step func(Composite, Composite) Composite) Composite {
	current := from
	mag := current.Magnitude()
	for {
		next := step(current, identity)
		nextMag := next.Magnitude()
		if nextMag >= mag {
			return current
		}
		current, mag = next, nextMag
	}
}
