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
)

// Blocks tiles the slice with non-overlapping blocks of the given extents.
// The outer view indexes the tiling; each element is the block itself.
// Every extent must divide the corresponding dimension.
func Blocks[K Kind, T any](s Slice[K, T], extents ...int) Slice[Universal, Slice[Universal, T]] {
	u := s.Universal()
	if len(extents) != len(u.shape) {
		panic("ndslice: block rank does not match slice rank")
	}
	outerShape := make([]int, len(u.shape))
	outerStrides := make([]int, len(u.shape))
	for d, e := range extents {
		if e < 1 || u.shape[d]%e != 0 {
			panic("ndslice: block extent does not tile the dimension")
		}
		outerShape[d] = u.shape[d] / e
		outerStrides[d] = u.strides[d] * e
	}
	return Slice[Universal, Slice[Universal, T]]{
		shape:   outerShape,
		strides: outerStrides,
		iter: packIterator[Universal, T]{
			base: u.iter,
			inner: Slice[Universal, T]{
				shape:   slices.Clone(extents),
				strides: u.strides,
			},
		},
	}
}

// Windows slides an overlapping block of the given extents over the slice.
// The outer extents are max(length-extent+1, 0); the outer strides are the
// original ones, so adjacent windows overlap by all but one position.
func Windows[K Kind, T any](s Slice[K, T], extents ...int) Slice[Universal, Slice[Universal, T]] {
	u := s.Universal()
	if len(extents) != len(u.shape) {
		panic("ndslice: window rank does not match slice rank")
	}
	outerShape := make([]int, len(u.shape))
	for d, e := range extents {
		if e < 1 {
			panic("ndslice: window extent must be positive")
		}
		outerShape[d] = max(u.shape[d]-e+1, 0)
	}
	return Slice[Universal, Slice[Universal, T]]{
		shape:   outerShape,
		strides: slices.Clone(u.strides),
		iter: packIterator[Universal, T]{
			base: u.iter,
			inner: Slice[Universal, T]{
				shape:   slices.Clone(extents),
				strides: u.strides,
			},
		},
	}
}

// StairsDirection selects between the two triangular decompositions of
// [Stairs].
type StairsDirection int8

const (
	// StairsIncreasing yields rows of lengths 1, 2, ..., n.
	StairsIncreasing StairsDirection = iota
	// StairsDecreasing yields rows of lengths n, n-1, ..., 1.
	StairsDecreasing
)

// Stairs chops a rank-1 slice of length n*(n+1)/2 into n rows of strictly
// increasing or decreasing length: the triangular decomposition used to
// iterate the distinct pairs of a symmetric relation.
func Stairs[K Kind, T any](s Slice[K, T], dir StairsDirection) Slice[Contiguous, Slice[K, T]] {
	if s.Rank() != 1 {
		panic("ndslice: Stairs requires rank 1")
	}
	total := s.shape[0]
	n := 0
	for n*(n+1)/2 < total {
		n++
	}
	if n*(n+1)/2 != total {
		panic("ndslice: length is not triangular")
	}

	bounds := make([]int, n+1)
	acc := 0
	for i := range n {
		rowLen := i + 1
		if dir == StairsDecreasing {
			rowLen = n - i
		}
		bounds[i] = acc
		acc += rowLen
	}
	bounds[n] = acc
	return Slice[Contiguous, Slice[K, T]]{
		shape: []int{n},
		iter:  chopIterator[K, T]{source: s, bounds: bounds},
	}
}

// Triplet is the element of [Triplets]: the decomposition of a rank-1
// slice around one position.
type Triplet[K Kind, T any] struct {
	Left   Slice[K, T]
	Center T
	Right  Slice[K, T]
}

// tripletIterator synthesizes the decomposition lazily.
type tripletIterator[K Kind, T any] struct {
	source Slice[K, T]
	pos    int
}

func (it tripletIterator[K, T]) At(k int) Triplet[K, T] {
	n := it.pos + k
	return Triplet[K, T]{
		Left:   it.source.Slice(0, n),
		Center: it.source.At(n),
		Right:  it.source.Slice(n+1, it.source.shape[0]),
	}
}

func (it tripletIterator[K, T]) Skip(k int) Iterator[Triplet[K, T]] {
	return tripletIterator[K, T]{it.source, it.pos + k}
}

// Triplets exposes, at each index i of a rank-1 slice, the view of the
// elements before i, the element at i, and the view of the elements after
// i. All three share the source's store.
func Triplets[K Kind, T any](s Slice[K, T]) Slice[Contiguous, Triplet[K, T]] {
	if s.Rank() != 1 {
		panic("ndslice: Triplets requires rank 1")
	}
	return Slice[Contiguous, Triplet[K, T]]{
		shape: []int{s.shape[0]},
		iter:  tripletIterator[K, T]{source: s},
	}
}
