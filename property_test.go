// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fibkont_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/fibkont"
)

const propertyN = 300

// randIndex returns a random index in [1, 24].
func randIndex(rng *rand.Rand) int {
	return rng.IntN(24) + 1
}

// TestPropertyRecurrence: Evaluate(n) == Evaluate(n-1) + Evaluate(n-2) for n > 2.
func TestPropertyRecurrence(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := randIndex(rng) + 2
		vn := mustEvaluate(t, n)
		v1 := mustEvaluate(t, n-1)
		v2 := mustEvaluate(t, n-2)
		if vn != v1+v2 {
			t.Fatalf("recurrence: F(%d)=%d != F(%d)+F(%d)=%d", n, vn, n-1, n-2, v1+v2)
		}
	}
}

// TestPropertyMonotonicity: Evaluate(n+1) >= Evaluate(n).
func TestPropertyMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := randIndex(rng)
		if a, b := mustEvaluate(t, n), mustEvaluate(t, n+1); b < a {
			t.Fatalf("monotonicity: F(%d)=%d > F(%d)=%d", n, a, n+1, b)
		}
	}
}

// TestPropertyTrampolineMatchesRecursive: the trampoline and the recursive
// CPS formulation agree on every input — defunctionalization changes how the
// value is computed, never which value.
func TestPropertyTrampolineMatchesRecursive(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := randIndex(rng)
		iter := mustEvaluate(t, n)
		rec, err := fibkont.EvaluateRecursive(n)
		if err != nil {
			t.Fatalf("EvaluateRecursive(%d) error: %v", n, err)
		}
		if iter != rec {
			t.Fatalf("Evaluate(%d)=%d != EvaluateRecursive(%d)=%d", n, iter, n, rec)
		}
	}
}

// TestPropertyConventionsAgree: F0(n) under F(0)=0, F(1)=1 equals F(n) under
// F(1)=F(2)=1 for all n >= 1.
func TestPropertyConventionsAgree(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	for range propertyN {
		n := randIndex(rng)
		one := mustEvaluate(t, n)
		zero, err := fibkont.EvaluateZeroIndexed(n)
		if err != nil {
			t.Fatalf("EvaluateZeroIndexed(%d) error: %v", n, err)
		}
		if one != zero {
			t.Fatalf("conventions disagree at n=%d: one-indexed %d, zero-indexed %d", n, one, zero)
		}
	}
}

func mustEvaluate(t *testing.T, n int) uint64 {
	t.Helper()
	v, err := fibkont.Evaluate(n)
	if err != nil {
		t.Fatalf("Evaluate(%d) error: %v", n, err)
	}
	return v
}
