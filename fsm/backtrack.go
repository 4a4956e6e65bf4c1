package fsm

// Backtracker decides whole-string acceptance by backtracking over the
// token list of a compiled FSM.
//
// The search walks an explicit stack of (token index, input position)
// frames instead of recursing, so pathological pattern/input pairs cannot
// overflow the goroutine stack. A bit vector over (token, position) pairs
// marks frames already explored; a pair that failed once fails always, so
// revisiting it cannot change the verdict.
//
// All per-search scratch lives on the stack of the Search call, which keeps
// a single Backtracker safe for concurrent use.
type Backtracker struct {
	tokens []Token
}

// frame is one pending branch of the search: try to match tokens[tok:]
// against input[pos:].
type frame struct {
	tok int
	pos int
}

// NewBacktracker creates a backtracker for the given compiled FSM.
func NewBacktracker(m *FSM) *Backtracker {
	return &Backtracker{tokens: m.Tokens()}
}

// Search reports whether the entire input is consumed by the entire token
// sequence. It is total: every call returns a definite verdict.
func (b *Backtracker) Search(input []byte) bool {
	ok, _ := b.search(input, 0)
	return ok
}

// SearchBudget is Search with an opt-in step budget. Each explored branch
// costs one step; when maxSteps is exhausted before a verdict is reached,
// SearchBudget returns ErrBudgetExceeded. maxSteps <= 0 means no budget.
func (b *Backtracker) SearchBudget(input []byte, maxSteps int) (bool, error) {
	return b.search(input, maxSteps)
}

func (b *Backtracker) search(input []byte, maxSteps int) (bool, error) {
	nTok := len(b.tokens)
	nPos := len(input) + 1

	// visited bit vector, one bit per (token, position) pair; token index
	// nTok is the end-of-pattern pseudo token
	visited := make([]uint64, ((nTok+1)*nPos+63)/64)

	// Branches are pushed deepest-repetition first so that the LIFO pop
	// order explores repetition counts shortest first.
	stack := make([]frame, 0, nTok+nPos)
	stack = append(stack, frame{tok: 0, pos: 0})

	steps := 0
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx := f.tok*nPos + f.pos
		if visited[idx/64]&(1<<(idx%64)) != 0 {
			continue
		}
		visited[idx/64] |= 1 << (idx % 64)

		if maxSteps > 0 {
			steps++
			if steps > maxSteps {
				return false, ErrBudgetExceeded
			}
		}

		if f.tok == nTok {
			if f.pos == len(input) {
				return true, nil
			}
			continue
		}

		t := b.tokens[f.tok]
		switch t.Quant {
		case QuantNone:
			if f.pos < len(input) && t.Accepts(input[f.pos]) {
				stack = append(stack, frame{tok: f.tok + 1, pos: f.pos + 1})
			}

		case QuantStar:
			run := acceptRun(t, input, f.pos)
			for k := run; k >= 0; k-- {
				stack = append(stack, frame{tok: f.tok + 1, pos: f.pos + k})
			}

		case QuantPlus:
			run := acceptRun(t, input, f.pos)
			for k := run; k >= 1; k-- {
				stack = append(stack, frame{tok: f.tok + 1, pos: f.pos + k})
			}
		}
	}

	return false, nil
}

// acceptRun returns the length of the maximal run of symbols accepted by
// t's atom starting at input[pos].
func acceptRun(t Token, input []byte, pos int) int {
	n := 0
	for pos+n < len(input) && t.Accepts(input[pos+n]) {
		n++
	}
	return n
}
