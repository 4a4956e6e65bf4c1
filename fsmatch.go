// Package fsmatch provides a minimal whole-string regular expression matcher.
//
// Patterns are built from four token forms: a literal ASCII character, the
// '.' wildcard, and the '*' (zero or more) and '+' (one or more) quantifiers
// applied to the single preceding atom. There is no grouping, alternation,
// character classes, or anchoring, and matching is whole-string only: the
// pattern must consume the entire input.
//
// Basic usage:
//
//	re, err := fsmatch.Compile("a*4.+hi")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("aaaaaa4uhi") // true
//	re.MatchString("4uhi")       // true
//	re.MatchString("meow")       // false
//
// A compiled Regex is immutable and safe for concurrent use.
package fsmatch

import (
	"github.com/coregx/fsmatch/fsm"
	"github.com/coregx/fsmatch/prefilter"
)

// Regex represents a compiled pattern.
//
// A Regex is never mutated after compilation, so it is safe to share across
// goroutines without synchronization.
type Regex struct {
	pattern string
	machine *fsm.FSM
	search  *fsm.Backtracker
	filter  *prefilter.Filter
	config  Config
}

// Compile compiles a pattern with the default configuration.
//
// It fails with an error wrapping fsm.ErrInvalidSymbol if the pattern
// contains a non-ASCII atom, and fsm.ErrDanglingQuantifier if a '*' or '+'
// has no atom to apply to.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("fsmatch: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with custom configuration.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	machine, err := fsm.Compile(pattern)
	if err != nil {
		return nil, err
	}

	re := &Regex{
		pattern: pattern,
		machine: machine,
		search:  fsm.NewBacktracker(machine),
		config:  config,
	}

	if config.EnablePrefilter {
		filter, err := prefilter.Build(machine.Tokens())
		if err != nil {
			// The search is complete without it.
			filter = nil
		}
		re.filter = filter
	}

	return re, nil
}

// Match reports whether the pattern accepts the entire input b.
//
// Match is total: it never fails, and a false result means "no match", not
// an error. Any configured step budget is ignored; use MatchBudget to
// surface budget exhaustion.
func (r *Regex) Match(b []byte) bool {
	if r.filter != nil && !r.filter.CanMatch(b) {
		return false
	}
	return r.search.Search(b)
}

// MatchString reports whether the pattern accepts the entire string s.
func (r *Regex) MatchString(s string) bool {
	return r.Match([]byte(s))
}

// MatchBudget is Match with the configured step budget applied. When
// Config.MaxSteps > 0 and the search exhausts it before reaching a verdict,
// MatchBudget returns fsm.ErrBudgetExceeded.
func (r *Regex) MatchBudget(b []byte) (bool, error) {
	if r.filter != nil && !r.filter.CanMatch(b) {
		return false, nil
	}
	return r.search.SearchBudget(b, r.config.MaxSteps)
}

// String returns the source text used to compile the pattern.
func (r *Regex) String() string {
	return r.pattern
}
