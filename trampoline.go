// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fibkont

// Evaluate computes the n-th Fibonacci number under the convention
// F(1) = F(2) = 1 without recursive function calls. Native stack usage is
// constant in n; continuation frames live on the heap, at most n-2 deep.
//
// Returns a [DomainError] when n < 1.
//
// The loop is the defunctionalized trampoline: each iteration either pushes
// a frame and descends into the minus-one branch, or folds a base value into
// the accumulator and pops the newest frame to resolve its minus-two branch.
// It performs exactly one iteration per call the naive two-way recursive
// definition would have made.
func Evaluate(n int) (uint64, error) {
	if n < 1 {
		return 0, &DomainError{N: n, Min: 1}
	}

	var (
		index      = n
		cont  Kont = Empty{}
		acc   uint64
	)
	for {
		if index <= 2 {
			// Terminal region: both base cases contribute 1.
			acc++
			f, ok := cont.(*Frame)
			if !ok {
				return acc, nil
			}
			// Read the popped record before overwriting cont: the next
			// index and the remaining continuation both derive from f.
			index = f.Pending - 2
			cont = f.rest
			releaseFrame(f)
			continue
		}
		// Recursive region: record the current index before descending, so
		// the frame remembers to resolve index-2 once the index-1 branch
		// is fully resolved.
		f := acquireFrame()
		f.Pending = index
		f.rest = cont
		cont = f
		index--
	}
}
