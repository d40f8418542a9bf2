// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fibkont

import "strconv"

// DomainError reports an index outside the recurrence's domain. The
// recurrence is undefined below its base cases, so the evaluators reject such
// input instead of producing an undefined terminal value.
type DomainError struct {
	// N is the rejected index.
	N int

	// Min is the smallest valid index for the convention in use:
	// 1 for [Evaluate], 0 for [EvaluateZeroIndexed].
	Min int
}

func (e *DomainError) Error() string {
	return "fibkont: index " + strconv.Itoa(e.N) +
		" outside domain n >= " + strconv.Itoa(e.Min)
}

// invariantViolation panics with a descriptive message for internal contract
// breaches. Such breaches must never be observable for any valid input; a
// panic here indicates a defect in the evaluator's transition logic.
// Extracted as a noinline function so that callers remain inlineable.
//
//go:noinline
func invariantViolation(msg string) {
	panic("fibkont: invariant violation: " + msg)
}
