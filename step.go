// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fibkont

// Stepping boundary for external drivers. Evaluator performs the same
// transitions as [Evaluate], one per Step call, and keeps the state triple
// and transition counters open for inspection between steps.

// Evaluator is a stepping trampoline over the (index, continuation,
// accumulator) state triple. The zero value is not usable; construct with
// [NewEvaluator].
//
// The exposed continuation is built with the pure [Push] and may be retained
// by callers across steps; frames are never recycled behind their back.
// Not safe for concurrent use.
type Evaluator struct {
	index int
	cont  Kont
	acc   uint64
	done  bool

	steps    uint64
	pushes   uint64
	pops     uint64
	depth    int
	maxDepth int
}

// NewEvaluator returns an evaluator positioned before the first transition
// for the n-th term under the convention F(1) = F(2) = 1.
// Returns a [DomainError] when n < 1.
func NewEvaluator(n int) (*Evaluator, error) {
	if n < 1 {
		return nil, &DomainError{N: n, Min: 1}
	}
	return &Evaluator{index: n, cont: Empty{}}, nil
}

// Step performs one transition and reports whether the computation halted.
// Calling Step after completion is a no-op returning true.
func (e *Evaluator) Step() bool {
	if e.done {
		return true
	}
	e.steps++
	if e.index <= 2 {
		e.acc++
		if IsEmpty(e.cont) {
			e.done = true
			return true
		}
		pending, rest := Pop(e.cont)
		e.index = pending - 2
		e.cont = rest
		e.pops++
		e.depth--
		return false
	}
	e.cont = Push(e.cont, e.index)
	e.index--
	e.pushes++
	e.depth++
	if e.depth > e.maxDepth {
		e.maxDepth = e.depth
	}
	return false
}

// Run drives the evaluator to completion and returns the accumulator.
func (e *Evaluator) Run() uint64 {
	for !e.Step() {
	}
	return e.acc
}

// Index returns the index currently being resolved.
func (e *Evaluator) Index() int { return e.index }

// Kont returns the current continuation. Safe to retain and walk.
func (e *Evaluator) Kont() Kont { return e.cont }

// Accumulator returns the running sum of terminal contributions so far.
func (e *Evaluator) Accumulator() uint64 { return e.acc }

// Done reports whether the computation has halted.
func (e *Evaluator) Done() bool { return e.done }

// Result returns the final value and true once the computation has halted,
// or zero and false while transitions remain.
func (e *Evaluator) Result() (uint64, bool) {
	if !e.done {
		return 0, false
	}
	return e.acc, true
}

// Steps returns the number of transitions performed. On completion it equals
// the number of calls the naive two-way recursion would have made, 2·F(n)−1.
func (e *Evaluator) Steps() uint64 { return e.steps }

// Pushes returns the number of frames pushed so far.
func (e *Evaluator) Pushes() uint64 { return e.pushes }

// Pops returns the number of frames popped so far. On completion it equals
// [Evaluator.Pushes].
func (e *Evaluator) Pops() uint64 { return e.pops }

// Depth returns the current frame depth of the continuation.
func (e *Evaluator) Depth() int { return e.depth }

// MaxDepth returns the deepest continuation observed, bounded by n-2.
func (e *Evaluator) MaxDepth() int { return e.maxDepth }
