package fsmatch

// Config controls compilation and search behavior.
//
// Example:
//
//	config := fsmatch.DefaultConfig()
//	config.MaxSteps = 1_000_000
//	re, err := fsmatch.CompileWithConfig("a*a*a*b", config)
type Config struct {
	// EnablePrefilter enables cheap input rejection (length bounds and
	// required-literal scanning) before the backtracking search runs.
	// Disabling it never changes results, only speed.
	// Default: true
	EnablePrefilter bool

	// MaxSteps caps the number of branches a budgeted search explores
	// before MatchBudget gives up with fsm.ErrBudgetExceeded. Zero means
	// no budget. Match ignores this cap entirely, preserving the
	// unbounded reference semantics.
	// Default: 0
	MaxSteps int
}

// DefaultConfig returns a configuration with sensible defaults: prefilter
// on, no step budget.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter: true,
	}
}
