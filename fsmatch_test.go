package fsmatch

import (
	"errors"
	"strings"
	"testing"

	"github.com/coregx/fsmatch/fsm"
)

// TestCompile tests basic compilation
func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"empty", "", false},
		{"literal", "hello", false},
		{"wildcard", "h.llo", false},
		{"star", "a*b", false},
		{"plus", "a+b", false},
		{"sample", "a*4.+hi", false},
		{"non-ascii", "héllo", true},
		{"leading quantifier", "*a", true},
		{"stacked quantifiers", "a**", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Errorf("Compile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && re == nil {
				t.Error("Compile() returned nil")
			}
			if !tt.wantErr && re.String() != tt.pattern {
				t.Errorf("String() = %q, want %q", re.String(), tt.pattern)
			}
		})
	}
}

// TestCompileErrorKinds tests that sentinel error kinds survive wrapping
func TestCompileErrorKinds(t *testing.T) {
	if _, err := Compile("\xff"); !errors.Is(err, fsm.ErrInvalidSymbol) {
		t.Errorf("Compile(\"\\xff\") error = %v, want ErrInvalidSymbol", err)
	}
	if _, err := Compile("a+*"); !errors.Is(err, fsm.ErrDanglingQuantifier) {
		t.Errorf("Compile(\"a+*\") error = %v, want ErrDanglingQuantifier", err)
	}
}

// TestMustCompile tests panic on invalid pattern
func TestMustCompile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustCompile() did not panic on invalid pattern")
		}
	}()

	MustCompile("*")
}

// TestMatch tests whole-string acceptance through the public API
func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"sample long prefix", "a*4.+hi", "aaaaaa4uhi", true},
		{"sample empty prefix", "a*4.+hi", "4uhi", true},
		{"sample mismatch", "a*4.+hi", "meow", false},
		{"sample mismatch repeated", "a*4.+hi", "pupupuuuu", false},
		{"empty pattern empty input", "", "", true},
		{"empty pattern nonempty input", "", "x", false},
		{"whole string only", "cat", "cats", false},
		{"no partial prefix", "at", "cat", false},
		{"trailing constraint", "a*b", "aaab", true},
		{"order sensitive", "a*b", "baaa", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := MustCompile(tt.pattern)

			if got := re.Match([]byte(tt.input)); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
			if got := re.MatchString(tt.input); got != tt.want {
				t.Errorf("MatchString() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestMatchPrefilterEquivalence checks that disabling the prefilter never
// changes a verdict
func TestMatchPrefilterEquivalence(t *testing.T) {
	config := DefaultConfig()
	config.EnablePrefilter = false

	patterns := []string{"", "cat", "c.t", "a*b", "a+", "a*4.+hi", ".*hi"}
	inputs := []string{"", "x", "cat", "cut", "aaab", "4uhi", "aaaa4uhi", "meow", "hhi"}

	for _, pattern := range patterns {
		plain, err := CompileWithConfig(pattern, config)
		if err != nil {
			t.Fatalf("CompileWithConfig(%q) error = %v", pattern, err)
		}
		filtered := MustCompile(pattern)

		for _, input := range inputs {
			if got, want := filtered.MatchString(input), plain.MatchString(input); got != want {
				t.Errorf("prefilter changed verdict for (%q, %q): %v vs %v", pattern, input, got, want)
			}
		}
	}
}

// TestMatchBudget tests the opt-in step budget surface
func TestMatchBudget(t *testing.T) {
	t.Run("default has no budget", func(t *testing.T) {
		re := MustCompile("a*4.+hi")
		ok, err := re.MatchBudget([]byte("aaaaaa4uhi"))
		if err != nil || !ok {
			t.Errorf("MatchBudget() = %v, %v, want true, nil", ok, err)
		}
	})

	t.Run("exhausted budget surfaces error", func(t *testing.T) {
		config := DefaultConfig()
		config.MaxSteps = 10
		re, err := CompileWithConfig(strings.Repeat("a*", 20)+"b", config)
		if err != nil {
			t.Fatal(err)
		}
		_, err = re.MatchBudget([]byte(strings.Repeat("a", 2000)))
		if !errors.Is(err, fsm.ErrBudgetExceeded) {
			t.Errorf("MatchBudget() error = %v, want ErrBudgetExceeded", err)
		}
	})

	t.Run("match ignores budget", func(t *testing.T) {
		config := DefaultConfig()
		config.MaxSteps = 1
		re, err := CompileWithConfig("a*4.+hi", config)
		if err != nil {
			t.Fatal(err)
		}
		if !re.Match([]byte("aaaaaa4uhi")) {
			t.Error("Match() must ignore the step budget")
		}
	})
}

// TestMatchConcurrent exercises one compiled Regex from many goroutines
func TestMatchConcurrent(t *testing.T) {
	re := MustCompile("a*4.+hi")
	inputs := map[string]bool{
		"aaaaaa4uhi": true,
		"4uhi":       true,
		"meow":       false,
		"pupupuuuu":  false,
	}

	done := make(chan error, 8)
	for g := 0; g < 8; g++ {
		go func() {
			for i := 0; i < 200; i++ {
				for input, want := range inputs {
					if got := re.MatchString(input); got != want {
						done <- errors.New("concurrent MatchString gave wrong verdict for " + input)
						return
					}
				}
			}
			done <- nil
		}()
	}
	for g := 0; g < 8; g++ {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}
}

// BenchmarkMatch measures the public API on the reference pattern
func BenchmarkMatch(b *testing.B) {
	re := MustCompile("a*4.+hi")
	input := []byte("aaaaaaaaaaaaaaaa4uhi")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !re.Match(input) {
			b.Fatal("expected match")
		}
	}
}

// BenchmarkMatchPrefilterReject measures prefilter rejection of a
// non-candidate input
func BenchmarkMatchPrefilterReject(b *testing.B) {
	re := MustCompile("a*4.+hi")
	input := []byte(strings.Repeat("z", 4096))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if re.Match(input) {
			b.Fatal("expected no match")
		}
	}
}
