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

// Pack nests the last p dimensions: the result is a rank n-p slice whose
// elements are rank-p views into the same store. Inner views keep the
// parent's kind; the outer slice is universal, with strides taken from the
// parent's outer dimensions.
//
// Nothing is materialized: the inner structure is stored once and each
// access synthesizes a fresh view.
func Pack[K Kind, T any](s Slice[K, T], p int) Slice[Universal, Slice[K, T]] {
	return Ipack(s, s.Rank()-p)
}

// Ipack nests all but the first p dimensions: the result is a rank-p slice
// of rank n-p views. See [Pack].
func Ipack[K Kind, T any](s Slice[K, T], p int) Slice[Universal, Slice[K, T]] {
	n := s.Rank()
	if p < 1 || p >= n {
		panic("ndslice: pack depth out of range")
	}
	full := s.fullStrides()

	inner := Slice[K, T]{shape: slices.Clone(s.shape[p:])}
	switch kindOf[K]() {
	case kindContiguous:
		// Trailing dimensions of a contiguous slice are contiguous.
	case kindCanonical:
		inner.strides = slices.Clone(s.strides[p:])
	default:
		inner.strides = slices.Clone(s.strides[p:])
	}

	return Slice[Universal, Slice[K, T]]{
		shape:   slices.Clone(s.shape[:p]),
		strides: slices.Clone(full[:p]),
		iter:    packIterator[K, T]{base: s.iter, inner: inner},
	}
}

// Unpack merges the two stride layers of a packed slice back into a flat
// view over the same store. It accepts the slices produced by [Pack],
// [Ipack], [ByDim], [AlongDim], [EvertPack], [Blocks] and [Windows].
//
// The result is universal; use [AssumeCanonical] or [AssumeContiguous] to
// recover a stronger kind when the layout warrants it.
func Unpack[KO, KI Kind, T any](s Slice[KO, Slice[KI, T]]) Slice[Universal, T] {
	pack, ok := s.iter.(packIterator[KI, T])
	if !ok {
		panic("ndslice: not a packed slice")
	}
	outer := s.Universal()
	inner := pack.At(0).Universal()

	return Slice[Universal, T]{
		shape:   append(outer.shape, inner.shape...),
		strides: append(outer.strides, inner.strides...),
		iter:    pack.base.Skip(pack.pos),
	}
}

// EvertPack swaps the outer and inner layers of a packed slice: iterating
// the result walks the former element axes outermost.
func EvertPack[KO, KI Kind, T any](s Slice[KO, Slice[KI, T]]) Slice[Universal, Slice[Universal, T]] {
	pack, ok := s.iter.(packIterator[KI, T])
	if !ok {
		panic("ndslice: not a packed slice")
	}
	outer := s.Universal()
	inner := pack.At(0).Universal()

	return Slice[Universal, Slice[Universal, T]]{
		shape:   inner.shape,
		strides: inner.strides,
		iter: packIterator[Universal, T]{
			base: pack.base.Skip(pack.pos),
			inner: Slice[Universal, T]{
				shape:   outer.shape,
				strides: outer.strides,
			},
		},
	}
}

// ByDim exposes the named dimensions (in order) as the outer axes; the
// elements are views over the remaining dimensions in their original
// order. Dimensions must be distinct.
func ByDim[K Kind, T any](s Slice[K, T], dims ...int) Slice[Universal, Slice[Universal, T]] {
	if len(dims) == 0 || len(dims) >= s.Rank() {
		panic("ndslice: dimension count out of range")
	}
	t := s.Transposed(dims...)
	return Ipack(t, len(dims))
}

// AlongDim is the dual of [ByDim]: the named dimensions span the elements
// and the remaining dimensions are the outer axes.
//
// AlongDim(s, dims) iterates the same subspaces as
// EvertPack(ByDim(s, dims)).
func AlongDim[K Kind, T any](s Slice[K, T], dims ...int) Slice[Universal, Slice[Universal, T]] {
	if len(dims) == 0 || len(dims) >= s.Rank() {
		panic("ndslice: dimension count out of range")
	}
	rest := make([]int, 0, s.Rank())
	for d := range s.Rank() {
		if !slices.Contains(dims, d) {
			rest = append(rest, d)
		}
	}
	outer := len(rest)
	// The full permutation keeps the element axes in the order given.
	t := s.Transposed(append(rest, dims...)...)
	return Ipack(t, outer)
}
