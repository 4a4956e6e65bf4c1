package fsm

import (
	"fmt"
)

// Quantifier is the repetition suffix attached to a token's atom.
type Quantifier uint8

const (
	// QuantNone matches the atom exactly once.
	QuantNone Quantifier = iota

	// QuantStar matches the atom zero or more times.
	QuantStar

	// QuantPlus matches the atom one or more times.
	QuantPlus
)

// String returns a human-readable representation of the Quantifier.
func (q Quantifier) String() string {
	switch q {
	case QuantNone:
		return "None"
	case QuantStar:
		return "Star"
	case QuantPlus:
		return "Plus"
	default:
		return fmt.Sprintf("Unknown(%d)", q)
	}
}

// Token pairs one atom with its quantifier. It is the flat view of the state
// chain the Backtracker searches over: one Token per consuming atom, with
// Star/Plus states folded into the preceding atom's Quant field.
type Token struct {
	// Sym is the literal symbol matched; meaningless when Wild is set.
	Sym byte

	// Wild marks the '.' wildcard atom.
	Wild bool

	// Quant is the repetition suffix, QuantNone if the atom stood alone.
	Quant Quantifier
}

// Accepts reports whether the token's atom accepts the symbol c.
func (t Token) Accepts(c byte) bool {
	return t.Wild || c == t.Sym
}

// MinWidth returns the minimum number of input symbols the token consumes:
// 0 for a starred atom, 1 otherwise.
func (t Token) MinWidth() int {
	if t.Quant == QuantStar {
		return 0
	}
	return 1
}
