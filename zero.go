// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fibkont

// EvaluateZeroIndexed computes the n-th Fibonacci number under the
// convention F(0) = 0, F(1) = 1, n >= 0, on the same trampoline shape as
// [Evaluate].
//
// The terminal fold is not a drop-in constant change from the one-indexed
// convention: the two base cases contribute different seed values, so the
// terminal region (index <= 1) folds the index itself — 0 for F(0), 1 for
// F(1). The frame bookkeeping is re-derived accordingly: the recursive
// region is index > 1, pushes still record the current index, and pops still
// resolve pending-2, which now bottoms out at 0 rather than 1.
//
// Returns a [DomainError] when n < 0.
func EvaluateZeroIndexed(n int) (uint64, error) {
	if n < 0 {
		return 0, &DomainError{N: n, Min: 0}
	}

	var (
		index      = n
		cont  Kont = Empty{}
		acc   uint64
	)
	for {
		if index <= 1 {
			acc += uint64(index)
			f, ok := cont.(*Frame)
			if !ok {
				return acc, nil
			}
			index = f.Pending - 2
			cont = f.rest
			releaseFrame(f)
			continue
		}
		f := acquireFrame()
		f.Pending = index
		f.rest = cont
		cont = f
		index--
	}
}
