// Package tensor defines the borrowed tensor values handed to the cache key
// generator as guaranteed constants.
//
// Only the raw content bytes and their length participate in fingerprinting;
// dtype and dimensions are carried for diagnostics and for callers that
// align constants with argument metadata. Tensors are borrowed, never owned:
// the generator reads them lazily, and the caller must keep them alive until
// the deferred fingerprint has been realized or discarded.
package tensor

import "github.com/gomlx/gopjrt/dtypes"

// Tensor is a constant value declared for a compiled computation.
//
// Content may legitimately influence the compilation cache key, since
// compiled code can embed constant values.
type Tensor struct {
	dtype dtypes.DType
	dims  []int64
	data  []byte
}

// New builds a tensor over the given backing bytes. The bytes are aliased,
// not copied.
func New(dtype dtypes.DType, dims []int64, data []byte) *Tensor {
	return &Tensor{dtype: dtype, dims: dims, data: data}
}

// DType returns the element type.
func (t *Tensor) DType() dtypes.DType { return t.dtype }

// Dims returns the dimension sizes.
func (t *Tensor) Dims() []int64 { return t.dims }

// RawData returns the backing content bytes.
func (t *Tensor) RawData() []byte { return t.data }

// Size returns the content length in bytes.
func (t *Tensor) Size() int { return len(t.data) }

// InputList is an ordered collection of input tensors, as handed over by an
// op-style caller that addresses inputs positionally.
type InputList struct {
	tensors []*Tensor
}

// NewInputList wraps the given tensors. The slice is aliased, not copied.
func NewInputList(tensors []*Tensor) InputList {
	return InputList{tensors: tensors}
}

// Len returns the number of inputs.
func (l InputList) Len() int { return len(l.tensors) }

// At returns the i-th input.
func (l InputList) At(i int) *Tensor { return l.tensors[i] }

// Slice returns the underlying ordered tensors.
func (l InputList) Slice() []*Tensor { return l.tensors }
