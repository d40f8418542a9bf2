// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fibkont evaluates the linear binary-recursive Fibonacci recurrence
// on an explicit, heap-managed continuation stack instead of the native call
// stack.
//
// The recurrence F(n) = F(n-1) + F(n-2) with F(1) = F(2) = 1 has one
// recursive call that is taken immediately (the n-1 branch) and one that is
// deferred (the n-2 branch). Defunctionalization (Reynolds 1972) replaces the
// deferred call's continuation with a first-order data value: a [Kont] is
// either [Empty] or a [Frame] recording the pending index and owning the rest
// of the stack. All interpretation of that data lives in the evaluation loops;
// frames carry no closures and no callbacks.
//
// # Evaluators
//
// Three evaluators share the [Kont] representation:
//
//   - [Evaluate]: the iterative trampoline. Constant native stack depth,
//     continuation frames on the heap, allocation-free at steady state.
//   - [EvaluateRecursive]: the continuation-passing formulation over the same
//     frames, with [Resume] as the frame interpreter. Native call depth grows
//     with n; it is the executable specification of [Evaluate].
//   - [Evaluator]: a stepping variant of the trampoline that advances one
//     transition per [Evaluator.Step] call and exposes the live state triple
//     and transition counters for inspection.
//
// [EvaluateZeroIndexed] implements the F(0) = 0, F(1) = 1 convention; its
// terminal region folds per-case seed values rather than a uniform 1.
//
// # Complexity
//
// The trampoline preserves the naive recursion's semantics exactly: the loop
// performs one iteration per call the two-way recursive definition would have
// made (2·F(n)−1 iterations), and folds base-case contributions in the same
// order. Only the space regime changes: continuation frames live on the heap,
// at most n−2 deep, so the achievable n is bounded by memory and patience,
// never by a native recursion limit.
//
// # Errors
//
// Arguments below the domain (n < 1, or n < 0 for the zero-indexed
// convention) fail with [DomainError]. Internal contract breaches, such as
// popping an empty continuation, panic; they indicate a defect in the
// transition logic and are never returned as values.
//
// Accumulators are uint64. Overflow would require n > 93, which is
// unreachable: evaluating n = 93 would take 2·F(93)−1 ≈ 2.4e19 iterations.
package fibkont
