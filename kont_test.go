// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fibkont_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/fibkont"
)

func TestEmptyIsEmpty(t *testing.T) {
	if !fibkont.IsEmpty(fibkont.Empty{}) {
		t.Error("IsEmpty(Empty{}) = false, want true")
	}
}

func TestPushPop(t *testing.T) {
	k := fibkont.Push(fibkont.Empty{}, 10)

	if fibkont.IsEmpty(k) {
		t.Error("IsEmpty after Push = true, want false")
	}

	pending, rest := fibkont.Pop(k)
	if pending != 10 {
		t.Errorf("Pop pending = %d, want 10", pending)
	}
	if !fibkont.IsEmpty(rest) {
		t.Error("Pop rest should be Empty")
	}
}

func TestPushIsPure(t *testing.T) {
	base := fibkont.Push(fibkont.Empty{}, 10)
	before := fibkont.PendingIndices(base)

	// Pushing on top of base must not disturb it.
	_ = fibkont.Push(base, 8)
	_ = fibkont.Push(base, 6)

	after := fibkont.PendingIndices(base)
	if !slices.Equal(before, after) {
		t.Errorf("Push mutated its argument: %v -> %v", before, after)
	}
	if d := fibkont.Depth(base); d != 1 {
		t.Errorf("Depth(base) = %d, want 1", d)
	}
}

func TestPopEmptyPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Pop(Empty{}) should panic")
		}
		msg, ok := r.(string)
		if !ok || msg != "fibkont: invariant violation: pop of empty continuation" {
			t.Errorf("unexpected panic value: %v", r)
		}
	}()
	fibkont.Pop(fibkont.Empty{})
}

func TestDepth(t *testing.T) {
	var k fibkont.Kont = fibkont.Empty{}
	if d := fibkont.Depth(k); d != 0 {
		t.Errorf("Depth(Empty) = %d, want 0", d)
	}
	for i, index := range []int{10, 8, 6, 4} {
		k = fibkont.Push(k, index)
		if d := fibkont.Depth(k); d != i+1 {
			t.Errorf("Depth after %d pushes = %d, want %d", i+1, d, i+1)
		}
	}
}

func TestPendingIndices(t *testing.T) {
	var k fibkont.Kont = fibkont.Empty{}
	if got := fibkont.PendingIndices(k); len(got) != 0 {
		t.Errorf("PendingIndices(Empty) = %v, want empty", got)
	}

	k = fibkont.Push(k, 10)
	k = fibkont.Push(k, 8)
	k = fibkont.Push(k, 6)

	want := []int{6, 8, 10} // newest first
	if got := fibkont.PendingIndices(k); !slices.Equal(got, want) {
		t.Errorf("PendingIndices = %v, want %v", got, want)
	}
}
