// Package prefilter provides fast input rejection for whole-string matching.
//
// A prefilter checks cheap necessary conditions derived from the compiled
// token list before the backtracking search runs:
//
//   - Length bounds: tokens without a '*' quantifier each consume at least
//     one symbol, and a quantifier-free pattern consumes exactly one symbol
//     per token, so inputs of the wrong length can never match.
//   - Required literals: a run of consecutive unquantified literal atoms is
//     a substring of every accepted input. An Aho-Corasick automaton over
//     those runs rejects inputs containing none of them in one scan.
//
// Prefilters are pure accelerators: an input they pass still has to survive
// the full search, and an input they reject is guaranteed not to match.
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/fsmatch/fsm"
)

// minLiteralLen is the shortest required-literal run worth scanning for.
// Single bytes hit too often to reject much.
const minLiteralLen = 2

// Filter holds the necessary-condition checks for one compiled pattern.
// It is immutable after Build and safe for concurrent use.
type Filter struct {
	// minLen is the fewest input symbols any accepted string has.
	minLen int

	// exact is set when the pattern has no quantifiers at all, in which
	// case accepted strings have exactly minLen symbols.
	exact bool

	// literals searches for the required literal runs; nil when the
	// pattern has no run of at least minLiteralLen unquantified literals.
	literals *ahocorasick.Automaton
}

// Build derives a Filter from the token list of a compiled pattern.
func Build(tokens []fsm.Token) (*Filter, error) {
	f := &Filter{exact: true}

	var lits [][]byte
	var run []byte
	flush := func() {
		if len(run) >= minLiteralLen {
			lits = append(lits, run)
		}
		run = nil
	}

	for _, t := range tokens {
		f.minLen += t.MinWidth()
		if t.Quant != fsm.QuantNone {
			f.exact = false
		}
		if t.Quant == fsm.QuantNone && !t.Wild {
			run = append(run, t.Sym)
			continue
		}
		flush()
	}
	flush()

	if len(lits) > 0 {
		builder := ahocorasick.NewBuilder()
		for _, lit := range lits {
			builder.AddPattern(lit)
		}
		auto, err := builder.Build()
		if err != nil {
			return nil, err
		}
		f.literals = auto
	}

	return f, nil
}

// MinLen returns the fewest input symbols any accepted string has.
func (f *Filter) MinLen() int {
	return f.minLen
}

// Exact reports whether accepted strings have exactly MinLen symbols.
func (f *Filter) Exact() bool {
	return f.exact
}

// CanMatch reports whether the input passes every necessary condition.
// A false result means the input cannot match; a true result decides
// nothing and the full search must run.
func (f *Filter) CanMatch(input []byte) bool {
	if len(input) < f.minLen {
		return false
	}
	if f.exact && len(input) != f.minLen {
		return false
	}
	if f.literals != nil && !f.literals.IsMatch(input) {
		return false
	}
	return true
}
