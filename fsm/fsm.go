// Package fsm implements the finite state machine behind fsmatch.
//
// A pattern compiles into a strict path of typed states
// (Start -> ... -> Term) held in an arena and addressed by StateID, plus a
// flat token list derived from the same chain. The Backtracker decides
// whole-string acceptance over the token list using an explicit stack.
package fsm

import (
	"fmt"
)

// StateID uniquely identifies a state in the arena.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID.
// Term states use it as their next link.
const InvalidState StateID = 0xFFFFFFFF

// StateKind identifies the type of a state.
type StateKind uint8

const (
	// StateStart is the entry state. It consumes no input.
	StateStart StateKind = iota

	// StateTerm is the accepting end-of-chain state. It consumes no input.
	StateTerm

	// StateDot matches any single symbol.
	StateDot

	// StateLiteral matches exactly one symbol.
	StateLiteral

	// StateStar repeats its base atom zero or more times.
	StateStar

	// StatePlus repeats its base atom one or more times.
	StatePlus
)

// String returns a human-readable representation of the StateKind.
func (k StateKind) String() string {
	switch k {
	case StateStart:
		return "Start"
	case StateTerm:
		return "Term"
	case StateDot:
		return "Dot"
	case StateLiteral:
		return "Literal"
	case StateStar:
		return "Star"
	case StatePlus:
		return "Plus"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// State is a single node of the compiled chain. The kind determines which
// fields are valid.
type State struct {
	kind StateKind

	// For Literal: the symbol matched.
	sym byte

	// For Star/Plus: the wrapped atom whose acceptance test is reused.
	base StateID

	// Sole outgoing edge; InvalidState for Term.
	next StateID
}

// Kind returns the state's type.
func (s *State) Kind() StateKind {
	return s.kind
}

// Sym returns the matched symbol for Literal states, 0 otherwise.
func (s *State) Sym() byte {
	if s.kind == StateLiteral {
		return s.sym
	}
	return 0
}

// Base returns the wrapped atom for Star/Plus states, InvalidState otherwise.
func (s *State) Base() StateID {
	if s.kind == StateStar || s.kind == StatePlus {
		return s.base
	}
	return InvalidState
}

// Next returns the sole outgoing edge, or InvalidState for Term.
func (s *State) Next() StateID {
	return s.next
}

// FSM is a compiled pattern: an immutable arena of states forming a strict
// path, and the token list derived from it.
//
// An FSM is never mutated after Compile returns, so it is safe for
// concurrent use from multiple goroutines.
type FSM struct {
	pattern string
	states  []State
	tokens  []Token
}

// Pattern returns the source text the FSM was compiled from.
func (m *FSM) Pattern() string {
	return m.pattern
}

// States returns the number of states in the arena, including Start and Term.
func (m *FSM) States() int {
	return len(m.states)
}

// State returns the state with the given ID, or nil if out of range.
// InvalidState is checked before the int conversion, which would wrap it to
// -1 on 32-bit platforms.
func (m *FSM) State(id StateID) *State {
	if id == InvalidState || int(id) >= len(m.states) {
		return nil
	}
	return &m.states[id]
}

// Start returns the ID of the Start state. It is always 0.
func (m *FSM) Start() StateID {
	return 0
}

// Tokens returns the token list derived from the state chain. The slice is
// shared and must not be modified.
func (m *FSM) Tokens() []Token {
	return m.tokens
}

// Accepts reports whether the state with the given ID accepts the symbol c.
// Start and Term accept nothing, Dot accepts everything, Literal accepts its
// own symbol, and Star/Plus delegate to their base atom.
func (m *FSM) Accepts(id StateID, c byte) bool {
	s := m.State(id)
	if s == nil {
		return false
	}
	switch s.kind {
	case StateDot:
		return true
	case StateLiteral:
		return c == s.sym
	case StateStar, StatePlus:
		return m.Accepts(s.base, c)
	default:
		// Start, Term
		return false
	}
}
