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
	"slices"

	"github.com/bufbuild/ndslice/internal/ext/slicesx"
)

// Transposed reorders the dimensions.
//
// With no arguments the dimension order is reversed (the familiar matrix
// transpose for rank 2). With arguments, the named dimensions are moved to
// the front in the given order and the remaining dimensions follow in
// their original order. Dimensions must be distinct and in range.
func (s Slice[K, T]) Transposed(dims ...int) Slice[Universal, T] {
	u := s.Universal()
	n := len(u.shape)
	perm := make([]int, 0, n)
	if len(dims) == 0 {
		for d := n - 1; d >= 0; d-- {
			perm = append(perm, d)
		}
	} else {
		perm = append(perm, dims...)
		for d := range n {
			if !slices.Contains(dims, d) {
				perm = append(perm, d)
			}
		}
		if len(perm) != n || !slicesx.IsPermutation(perm) {
			panic("ndslice: invalid dimension list")
		}
	}

	shape := make([]int, n)
	strides := make([]int, n)
	for i, d := range perm {
		shape[i] = u.shape[d]
		strides[i] = u.strides[d]
	}
	return Slice[Universal, T]{shape, strides, u.iter}
}

// Diagonal returns the rank-1 view of the elements with equal indexes in
// every dimension. Its length is the minimum extent and its stride is the
// sum of the strides.
func (s Slice[K, T]) Diagonal() Slice[Universal, T] {
	u := s.Universal()
	length := slices.Min(u.shape)
	stride := 0
	for _, st := range u.strides {
		stride += st
	}
	return Slice[Universal, T]{[]int{length}, []int{stride}, u.iter}
}

// Antidiagonal returns the diagonal running from the top-right corner of
// the leading inscribed square of a rank-2 slice: axis 1 is reversed over
// the square, then the diagonal is taken.
func (s Slice[K, T]) Antidiagonal() Slice[Universal, T] {
	if len(s.shape) != 2 {
		panic("ndslice: Antidiagonal requires rank 2")
	}
	u := s.Universal()
	length := min(u.shape[0], u.shape[1])
	if length == 0 {
		return Slice[Universal, T]{[]int{0}, []int{0}, u.iter}
	}
	return Slice[Universal, T]{
		shape:   []int{length},
		strides: []int{u.strides[0] - u.strides[1]},
		iter:    u.iter.Skip((length - 1) * u.strides[1]),
	}
}

// Strided keeps every factor-th element along every dimension.
func (s Slice[K, T]) Strided(factor int) Slice[Universal, T] {
	if factor < 1 {
		panic("ndslice: stride factor must be positive")
	}
	u := s.Universal()
	for d := range u.shape {
		u.shape[d] = (u.shape[d] + factor - 1) / factor
		u.strides[d] *= factor
	}
	return u
}

// StridedAlong keeps every factor-th element along one dimension.
func (s Slice[K, T]) StridedAlong(dim, factor int) Slice[Universal, T] {
	if factor < 1 {
		panic("ndslice: stride factor must be positive")
	}
	u := s.Universal()
	s.checkDim(dim)
	u.shape[dim] = (u.shape[dim] + factor - 1) / factor
	u.strides[dim] *= factor
	return u
}

// Retro reverses iteration order along every dimension. The cursor is
// advanced to the last element and every stride is negated, so a double
// Retro restores the original view.
func (s Slice[K, T]) Retro() Slice[Universal, T] {
	u := s.Universal()
	off := 0
	for d := range u.shape {
		if u.shape[d] > 0 {
			off += (u.shape[d] - 1) * u.strides[d]
		}
		u.strides[d] = -u.strides[d]
	}
	u.iter = u.iter.Skip(off)
	return u
}

// DropBorders removes one element from both ends of every dimension.
// Extents shrink by two, saturating at zero.
func (s Slice[K, T]) DropBorders() Slice[Universal, T] {
	u := s.Universal()
	off := 0
	for d := range u.shape {
		if u.shape[d] >= 2 {
			off += u.strides[d]
		}
		u.shape[d] = max(u.shape[d]-2, 0)
	}
	u.iter = u.iter.Skip(off)
	return u
}

// Flattened returns the rank-1 row-major view of a slice of any kind. The
// result's cursor carries the per-dimension position decomposition; the
// elements are not moved.
//
// On a contiguous slice this is a plain reshape; Flattened is for the
// kinds whose layout cannot be described by a single stride.
func (s Slice[K, T]) Flattened() Slice[Contiguous, T] {
	if kindOf[K]() == kindContiguous {
		return Slice[Contiguous, T]{[]int{s.Size()}, nil, s.iter}
	}
	return Slice[Contiguous, T]{
		shape: []int{s.Size()},
		iter: flatIterator[T]{
			base:    s.iter,
			shape:   slices.Clone(s.shape),
			strides: s.fullStrides(),
		},
	}
}

func (s Slice[K, T]) checkDim(dim int) {
	if dim < 0 || dim >= len(s.shape) {
		panic("ndslice: dimension out of range")
	}
}
