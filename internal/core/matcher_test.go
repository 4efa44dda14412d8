package core_test

import (
	"fmt"
	"testing"

	"github.com/onsi/gomega"
	"github.com/toejough/unitest"
	"github.com/toejough/unitest/match"
)

// TestMatchValue_DeepEqualFallback verifies plain values compare structurally.
func TestMatchValue_DeepEqualFallback(t *testing.T) {
	t.Parallel()

	if ok, _ := unitest.MatchValue([]int{1, 2}, []int{1, 2}); !ok {
		t.Error("expected equal slices to match")
	}

	ok, msg := unitest.MatchValue(3, 4)
	if ok {
		t.Error("expected 3 and 4 not to match")
	}

	if msg == "" {
		t.Error("expected a failure message for mismatched values")
	}
}

// TestMatchValue_GomegaMatchers verifies gomega matchers work via duck typing.
func TestMatchValue_GomegaMatchers(t *testing.T) {
	t.Parallel()

	if ok, _ := unitest.MatchValue(42, gomega.BeNumerically(">", 10)); !ok {
		t.Error("expected BeNumerically(\">\", 10) to match 42")
	}

	ok, msg := unitest.MatchValue("hi", gomega.Equal("bye"))
	if ok {
		t.Error("expected Equal(\"bye\") not to match \"hi\"")
	}

	if msg == "" {
		t.Error("expected the matcher's failure message to be propagated")
	}
}

// TestMatchValue_BeAny matches everything, nil included.
func TestMatchValue_BeAny(t *testing.T) {
	t.Parallel()

	for _, v := range []any{nil, 0, "text", []byte{1}} {
		if ok, _ := unitest.MatchValue(v, match.BeAny); !ok {
			t.Errorf("expected BeAny to match %#v", v)
		}
	}
}

// TestMatchValue_Satisfy verifies predicate matching and type mismatch
// reporting through the match package.
func TestMatchValue_Satisfy(t *testing.T) {
	t.Parallel()

	positive := match.Satisfy(func(n int) error {
		if n <= 0 {
			return fmt.Errorf("expected positive, got %d", n)
		}

		return nil
	})

	if ok, _ := unitest.MatchValue(5, positive); !ok {
		t.Error("expected 5 to satisfy the predicate")
	}

	if ok, _ := unitest.MatchValue(-5, positive); ok {
		t.Error("expected -5 not to satisfy the predicate")
	}

	// Wrong dynamic type is a mismatch with an explanatory message, not a panic.
	ok, msg := unitest.MatchValue("not an int", positive)
	if ok {
		t.Error("expected a string not to satisfy an int predicate")
	}

	if msg == "" {
		t.Error("expected a type mismatch message")
	}
}
