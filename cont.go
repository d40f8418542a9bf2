// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fibkont

// Recursive continuation-passing formulation over the same [Kont] data.
// This is the evaluator the trampoline was derived from: the deferred
// minus-two branch already lives in an explicit frame, but control still
// rides the native call stack. Kept as the executable specification of
// [Evaluate]; the two must agree on every input.

// Resume folds v into the deferred work recorded on k. This is the central
// interpreter of the continuation data (the "apply" of the defunctionalized
// CPS form): on Empty the computation is complete and v is the answer; on a
// frame it resolves the recorded index's minus-two branch and adds it to v.
func Resume(k Kont, v uint64) uint64 {
	f, ok := k.(*Frame)
	if !ok {
		return v
	}
	return v + evaluateRec(f.Pending-2, f.rest)
}

func evaluateRec(index int, k Kont) uint64 {
	if index <= 2 {
		return Resume(k, 1)
	}
	return evaluateRec(index-1, Push(k, index))
}

// EvaluateRecursive computes the n-th Fibonacci number under the convention
// F(1) = F(2) = 1 using native recursion over explicit continuation frames.
// Native call depth grows linearly with n; prefer [Evaluate] for anything
// beyond reference use.
//
// Returns a [DomainError] when n < 1.
func EvaluateRecursive(n int) (uint64, error) {
	if n < 1 {
		return 0, &DomainError{N: n, Min: 1}
	}
	return evaluateRec(n, Empty{}), nil
}
