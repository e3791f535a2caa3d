// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ndslice

import (
	"iter"
	"slices"

	"github.com/bufbuild/ndslice/internal/ext/slicesx"
)

// Slice is an n-dimensional view over linear storage.
//
// A Slice is a value: copying it copies the view, never the elements. It
// consists of a shape, a stride array whose presence depends on the kind K
// (see [Kind]), and an [Iterator] positioned at element (0, ..., 0).
// Subviews produced by the topology operations share the backing store of
// their parent; none of them allocate element storage.
//
// Any extent of zero makes the slice empty; iteration then yields nothing
// regardless of the other extents.
//
// The zero Slice has rank zero and must not be indexed.
type Slice[K Kind, T any] struct {
	shape   []int
	strides []int
	iter    Iterator[T]
}

// From wraps data in a rank-1 contiguous slice.
func From[T any](data []T) Slice[Contiguous, T] {
	return Shaped(data, len(data))
}

// Shaped wraps data in a contiguous slice of the given shape. len(data)
// must equal the product of the extents.
func Shaped[T any](data []T, shape ...int) Slice[Contiguous, T] {
	checkShape(shape)
	if n := slicesx.Product(shape); n != len(data) {
		panic("ndslice: shape does not cover the data")
	}
	return Slice[Contiguous, T]{
		shape: slices.Clone(shape),
		iter:  linearIterator[T]{data, 0},
	}
}

// New allocates backing storage for the given shape and returns a
// contiguous slice over it. This is the one constructor that allocates
// elements; every other view borrows.
func New[T any](shape ...int) Slice[Contiguous, T] {
	checkShape(shape)
	return Shaped(make([]T, slicesx.Product(shape)), shape...)
}

// Rank returns the number of dimensions.
func (s Slice[K, T]) Rank() int {
	return len(s.shape)
}

// Shape returns a copy of the extents.
func (s Slice[K, T]) Shape() []int {
	return slices.Clone(s.shape)
}

// Strides returns a copy of the stored strides: none for [Contiguous],
// the outer n-1 for [Canonical], all n for [Universal]. Strides are signed
// element offsets, not byte offsets.
func (s Slice[K, T]) Strides() []int {
	return slices.Clone(s.strides)
}

// Len returns the extent of the outermost dimension.
func (s Slice[K, T]) Len() int {
	if len(s.shape) == 0 {
		return 0
	}
	return s.shape[0]
}

// Size returns the total element count.
func (s Slice[K, T]) Size() int {
	if len(s.shape) == 0 {
		return 0
	}
	return slicesx.Product(s.shape)
}

// IsEmpty returns whether the slice holds no elements.
func (s Slice[K, T]) IsEmpty() bool {
	return len(s.shape) == 0 || slicesx.HasZero(s.shape)
}

// Iterator returns the cursor at element (0, ..., 0).
func (s Slice[K, T]) Iterator() Iterator[T] {
	return s.iter
}

// offset linearizes a full multi-index according to the kind.
func (s Slice[K, T]) offset(idx []int) int {
	if len(idx) != len(s.shape) {
		panic("ndslice: index rank does not match slice rank")
	}
	off := 0
	switch kindOf[K]() {
	case kindContiguous:
		for d, i := range idx {
			s.checkIndex(d, i)
			off = off*s.shape[d] + i
		}
	case kindCanonical:
		last := len(idx) - 1
		for d, i := range idx {
			s.checkIndex(d, i)
			if d == last {
				off += i
			} else {
				off += i * s.strides[d]
			}
		}
	case kindUniversal:
		for d, i := range idx {
			s.checkIndex(d, i)
			off += i * s.strides[d]
		}
	}
	return off
}

func (s Slice[K, T]) checkIndex(dim, i int) {
	if i < 0 || i >= s.shape[dim] {
		panic("ndslice: index out of range")
	}
}

// At returns the element at the given multi-index. The index must be full
// rank; use [Slice.Sub] for partial indexing.
func (s Slice[K, T]) At(idx ...int) T {
	return s.iter.At(s.offset(idx))
}

// Ref returns the address of the element at the given multi-index. It
// panics if the elements are computed rather than stored.
func (s Slice[K, T]) Ref(idx ...int) *T {
	return ref(s.iter, s.offset(idx))
}

// Set stores v at the given multi-index. It panics if the elements are
// computed rather than stored.
func (s Slice[K, T]) Set(v T, idx ...int) {
	*s.Ref(idx...) = v
}

// Sub indexes the outermost dimension, returning a view of rank n-1. The
// kind is preserved: a trailing block of a contiguous slice is contiguous,
// and dropping the outermost dimension never disturbs the innermost
// stride.
//
// Sub requires rank >= 2; use [Slice.At] on rank-1 slices.
func (s Slice[K, T]) Sub(i int) Slice[K, T] {
	if len(s.shape) < 2 {
		panic("ndslice: Sub requires rank >= 2")
	}
	s.checkIndex(0, i)
	var strides []int
	if len(s.strides) > 0 {
		strides = slices.Clone(s.strides[1:])
	}
	return Slice[K, T]{
		shape:   slices.Clone(s.shape[1:]),
		strides: strides,
		iter:    s.iter.Skip(i * s.outerStride()),
	}
}

// Slice bounds the outermost dimension to [lo, hi), preserving the kind.
func (s Slice[K, T]) Slice(lo, hi int) Slice[K, T] {
	if len(s.shape) == 0 {
		panic("ndslice: Slice requires rank >= 1")
	}
	if lo < 0 || hi < lo || hi > s.shape[0] {
		panic("ndslice: bounds out of range")
	}
	shape := slices.Clone(s.shape)
	shape[0] = hi - lo
	return Slice[K, T]{
		shape:   shape,
		strides: slices.Clone(s.strides),
		iter:    s.iter.Skip(lo * s.outerStride()),
	}
}

// outerStride returns the element step of the outermost dimension.
func (s Slice[K, T]) outerStride() int {
	switch kindOf[K]() {
	case kindContiguous:
		return slicesx.Product(s.shape[1:])
	case kindCanonical:
		if len(s.shape) == 1 {
			return 1
		}
		return s.strides[0]
	default:
		return s.strides[0]
	}
}

// fullStrides returns all n effective strides, materializing the implied
// ones.
func (s Slice[K, T]) fullStrides() []int {
	switch kindOf[K]() {
	case kindContiguous:
		return slicesx.RowMajor(s.shape)
	case kindCanonical:
		strides := make([]int, len(s.shape))
		copy(strides, s.strides)
		strides[len(strides)-1] = 1
		return strides
	default:
		return slices.Clone(s.strides)
	}
}

// Values returns a row-major iterator over the elements, in the style of
// [slices.Values].
func (s Slice[K, T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.IsEmpty() {
			return
		}
		idx := make([]int, len(s.shape))
		strides := s.fullStrides()
		off := 0
		for {
			if !yield(s.iter.At(off)) {
				return
			}
			d := len(idx) - 1
			for d >= 0 {
				idx[d]++
				off += strides[d]
				if idx[d] < s.shape[d] {
					break
				}
				off -= idx[d] * strides[d]
				idx[d] = 0
				d--
			}
			if d < 0 {
				return
			}
		}
	}
}

// All returns a row-major iterator over (flat index, element) pairs, in
// the style of [slices.All].
func (s Slice[K, T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range s.Values() {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Collect copies the elements into a new Go slice in row-major order.
func (s Slice[K, T]) Collect() []T {
	out := make([]T, 0, s.Size())
	for v := range s.Values() {
		out = append(out, v)
	}
	return out
}

// Fill stores v in every element.
func (s Slice[K, T]) Fill(v T) {
	if s.IsEmpty() {
		return
	}
	idx := make([]int, len(s.shape))
	strides := s.fullStrides()
	mut, ok := s.iter.(MutIterator[T])
	if !ok {
		panic("ndslice: iterator elements are not addressable")
	}
	off := 0
	for {
		*mut.Ref(off) = v
		d := len(idx) - 1
		for d >= 0 {
			idx[d]++
			off += strides[d]
			if idx[d] < s.shape[d] {
				break
			}
			off -= idx[d] * strides[d]
			idx[d] = 0
			d--
		}
		if d < 0 {
			return
		}
	}
}

// Equal reports whether two slices have the same shape and equal elements
// in row-major order. The kinds need not match.
func Equal[KA, KB Kind, T comparable](a Slice[KA, T], b Slice[KB, T]) bool {
	if !slices.Equal(a.shape, b.shape) {
		return false
	}
	next, stop := iter.Pull(b.Values())
	defer stop()
	for v := range a.Values() {
		w, ok := next()
		if !ok || v != w {
			return false
		}
	}
	return true
}

// checkShape validates a caller-provided shape vector.
func checkShape(shape []int) {
	if len(shape) == 0 {
		panic("ndslice: rank must be at least 1")
	}
	if !slicesx.AllNonNegative(shape) {
		panic("ndslice: negative extent")
	}
}
