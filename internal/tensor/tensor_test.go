package tensor

import (
	"bytes"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
)

func TestTensor_AliasesBackingBytes(t *testing.T) {
	backing := []byte{1, 2, 3, 4}
	tsr := New(dtypes.Float32, []int64{1}, backing)

	if tsr.Size() != 4 {
		t.Fatalf("unexpected size: %d", tsr.Size())
	}

	// Borrowed, not copied: mutations through the caller's slice are
	// visible, which is what makes the lifetime contract matter.
	backing[0] = 9
	if !bytes.Equal(tsr.RawData(), []byte{9, 2, 3, 4}) {
		t.Fatalf("tensor must alias its backing bytes, got %v", tsr.RawData())
	}
}

func TestInputList_PreservesOrder(t *testing.T) {
	a := New(dtypes.Int32, nil, []byte{1})
	b := New(dtypes.Int32, nil, []byte{2})
	list := NewInputList([]*Tensor{a, b})

	if list.Len() != 2 {
		t.Fatalf("unexpected length: %d", list.Len())
	}
	if list.At(0) != a || list.At(1) != b {
		t.Fatalf("input list must preserve positional order")
	}
	if got := list.Slice(); got[0] != a || got[1] != b {
		t.Fatalf("slice view must preserve positional order")
	}
}
