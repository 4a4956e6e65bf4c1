package fsm

// Compile builds the state chain and token list for the given pattern.
//
// The pattern is scanned left to right. Each '.' or ASCII literal appends a
// consuming state to the chain and a token to the flat list; '*' and '+'
// append a quantifier state wrapping the previous atom and fold into that
// atom's token. Both views come out of the single scan, so they cannot
// disagree about pattern semantics.
//
// Compile fails with ErrInvalidSymbol for a non-ASCII byte and with
// ErrDanglingQuantifier for a quantifier that has no atom to apply to
// (leading, or stacked as in "a**"). Errors are wrapped in a *CompileError
// carrying the pattern and offset.
func Compile(pattern string) (*FSM, error) {
	m := &FSM{
		pattern: pattern,
		states:  make([]State, 0, len(pattern)+2),
	}
	m.states = append(m.states, State{kind: StateStart, next: InvalidState})

	prev := m.Start()
	lastAtom := m.Start()

	for i := 0; i < len(pattern); i++ {
		var st State

		switch c := pattern[i]; {
		case c == '*' || c == '+':
			// A quantifier reuses the prior atom's acceptance test.
			// Start has no test and quantifiers do not stack.
			switch m.states[lastAtom].kind {
			case StateStart, StateStar, StatePlus:
				return nil, &CompileError{Pattern: pattern, Pos: i, Err: ErrDanglingQuantifier}
			}
			st = State{kind: StateStar, base: lastAtom}
			quant := QuantStar
			if c == '+' {
				st.kind = StatePlus
				quant = QuantPlus
			}
			m.tokens[len(m.tokens)-1].Quant = quant

		case c == '.':
			st = State{kind: StateDot}
			m.tokens = append(m.tokens, Token{Wild: true})

		case c < 0x80:
			st = State{kind: StateLiteral, sym: c}
			m.tokens = append(m.tokens, Token{Sym: c})

		default:
			return nil, &CompileError{Pattern: pattern, Pos: i, Err: ErrInvalidSymbol}
		}

		st.next = InvalidState
		id := StateID(len(m.states))
		m.states = append(m.states, st)
		m.states[prev].next = id
		prev = id
		lastAtom = id
	}

	term := StateID(len(m.states))
	m.states = append(m.states, State{kind: StateTerm, next: InvalidState})
	m.states[prev].next = term

	return m, nil
}
