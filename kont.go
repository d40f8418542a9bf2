// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fibkont

// Kont is the defunctionalized continuation: the deferred work that remains
// once the current subcomputation yields a value. It is pure data — frames
// hold no closures and no callbacks; the evaluation loops are the only
// interpreters. Dispatch uses type switches, not tags — Kont is a pure marker
// interface.
type Kont interface {
	kont() // unexported marker method
}

// Empty is the terminal continuation: no pending work. When the evaluator
// reaches the terminal region with an Empty continuation, the accumulator is
// the final answer.
type Empty struct{}

func (Empty) kont() {}

// Frame is one unit of deferred work: the index whose minus-two branch is
// still owed once the minus-one branch below it completes. Each frame
// exclusively owns its tail; the structure is a singly linked stack, built
// once and never mutated after construction.
type Frame struct {
	// Pending is the index recorded before the evaluator committed to the
	// minus-one branch. Popping resolves Pending-2.
	Pending int

	rest   Kont
	pooled bool
}

func (*Frame) kont() {}

// Push returns a new continuation with a frame recording index on top of k.
// Pure: k is not mutated and remains valid. O(1).
func Push(k Kont, index int) Kont {
	return &Frame{Pending: index, rest: k}
}

// IsEmpty reports whether k has no pending work.
func IsEmpty(k Kont) bool {
	_, ok := k.(Empty)
	return ok
}

// Pop returns the pending index recorded by the newest frame and the
// remaining continuation. Valid only when k is a frame: popping Empty is a
// contract violation and panics. Callers check [IsEmpty] first.
func Pop(k Kont) (pending int, rest Kont) {
	f, ok := k.(*Frame)
	if !ok {
		invariantViolation("pop of empty continuation")
	}
	return f.Pending, f.rest
}

// Depth returns the number of frames on k.
func Depth(k Kont) int {
	d := 0
	for {
		f, ok := k.(*Frame)
		if !ok {
			return d
		}
		d++
		k = f.rest
	}
}

// PendingIndices returns the recorded indices walking newest frame first.
// Under trampoline evaluation every recorded index exceeds 2 and each frame's
// index is strictly below the one it owns: the sequence strictly increases
// toward the oldest frame.
func PendingIndices(k Kont) []int {
	var indices []int
	for {
		f, ok := k.(*Frame)
		if !ok {
			return indices
		}
		indices = append(indices, f.Pending)
		k = f.rest
	}
}
