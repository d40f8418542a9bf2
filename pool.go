// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fibkont

import "sync"

// Frame pool for the trampoline hot loop. The trampoline owns its
// continuation exclusively and pops every frame exactly once, so popped
// frames can be recycled immediately. Pooled frames never escape to callers:
// the stepping [Evaluator] exposes its continuation and therefore uses the
// pure [Push] instead.

var framePool = sync.Pool{New: func() any { return new(Frame) }}

// acquireFrame returns a pooled single-use frame whose Pending and rest
// fields must be filled before evaluation.
func acquireFrame() *Frame {
	f := framePool.Get().(*Frame)
	f.pooled = true
	return f
}

// releaseFrame zeroes and returns f to the pool; no-op if not pooled.
func releaseFrame(f *Frame) {
	if !f.pooled {
		return
	}
	f.Pending = 0
	f.rest = nil
	f.pooled = false
	framePool.Put(f)
}
