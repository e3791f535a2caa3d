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

	"golang.org/x/exp/constraints"

	"github.com/bufbuild/ndslice/field"
)

// windowIterator reports, at each position, the reduction of the
// width-element window starting there along one stride.
type windowIterator[T, U any] struct {
	base   Iterator[T]
	width  int
	stride int
	fn     func(Slice[Universal, T]) U
}

func (it windowIterator[T, U]) At(k int) U {
	return it.fn(Slice[Universal, T]{
		shape:   []int{it.width},
		strides: []int{it.stride},
		iter:    it.base.Skip(k),
	})
}

func (it windowIterator[T, U]) Skip(k int) Iterator[U] {
	return windowIterator[T, U]{it.base.Skip(k), it.width, it.stride, it.fn}
}

// pairIterator reports fn over the elements at a fixed relative offset.
type pairIterator[T, U any] struct {
	base  Iterator[T]
	delta int
	fn    func(a, b T) U
}

func (it pairIterator[T, U]) At(k int) U {
	return it.fn(it.base.At(k), it.base.At(k+it.delta))
}

func (it pairIterator[T, U]) Skip(k int) Iterator[U] {
	return pairIterator[T, U]{it.base.Skip(k), it.delta, it.fn}
}

// SlideAlong reduces every width-element sliding window along dim with fn,
// lazily: the element at a position is fn applied to the rank-1 window
// view rooted there. The dim extent shrinks to max(length-width+1, 0).
func SlideAlong[K Kind, T, U any](s Slice[K, T], width, dim int, fn func(Slice[Universal, T]) U) Slice[Universal, U] {
	if width < 1 {
		panic("ndslice: window width must be positive")
	}
	u := s.Universal()
	u.checkDim(dim)
	shape := slices.Clone(u.shape)
	shape[dim] = max(shape[dim]-width+1, 0)
	return Slice[Universal, U]{
		shape:   shape,
		strides: slices.Clone(u.strides),
		iter: windowIterator[T, U]{
			base:   u.iter,
			width:  width,
			stride: u.strides[dim],
			fn:     fn,
		},
	}
}

// Slide applies [SlideAlong] over every dimension in turn, so each extent
// shrinks by width-1. fn must be shape-preserving in type (T to T) for
// the per-dimension passes to compose.
func Slide[K Kind, T any](s Slice[K, T], width int, fn func(Slice[Universal, T]) T) Slice[Universal, T] {
	out := s.Universal()
	for d := range out.shape {
		out = SlideAlong(out, width, d, fn)
	}
	return out
}

// Pairwise reduces each element with the one lag positions further along
// dim: the element at i becomes fn(s[i], s[i+lag]). The dim extent shrinks
// by lag.
func Pairwise[K Kind, T, U any](s Slice[K, T], lag, dim int, fn func(a, b T) U) Slice[Universal, U] {
	if lag < 1 {
		panic("ndslice: lag must be positive")
	}
	u := s.Universal()
	u.checkDim(dim)
	shape := slices.Clone(u.shape)
	shape[dim] = max(shape[dim]-lag, 0)
	return Slice[Universal, U]{
		shape:   shape,
		strides: slices.Clone(u.strides),
		iter: pairIterator[T, U]{
			base:  u.iter,
			delta: lag * u.strides[dim],
			fn:    fn,
		},
	}
}

// Diff is [Pairwise] with subtraction: the element at i becomes
// s[i+lag] - s[i].
func Diff[K Kind, T field.Number](s Slice[K, T], lag, dim int) Slice[Universal, T] {
	return Pairwise(s, lag, dim, func(a, b T) T { return b - a })
}

// neighboursIterator pairs each interior element with the reduction of its
// two axis-adjacent neighbours per dimension.
type neighboursIterator[T any] struct {
	base    Iterator[T] // rooted at the interior origin
	strides []int
	fn      func(a, b T) T
}

func (it neighboursIterator[T]) At(k int) Pair[T, T] {
	acc := it.fn(it.base.At(k-it.strides[0]), it.base.At(k+it.strides[0]))
	for _, st := range it.strides[1:] {
		acc = it.fn(acc, it.fn(it.base.At(k-st), it.base.At(k+st)))
	}
	return Pair[T, T]{it.base.At(k), acc}
}

func (it neighboursIterator[T]) Skip(k int) Iterator[Pair[T, T]] {
	return neighboursIterator[T]{it.base.Skip(k), it.strides, it.fn}
}

// WithNeighboursSum pairs every interior element with the fn-reduction of
// its 2n axis-adjacent neighbours; with addition as fn, that is the
// neighbour sum. The view spans the interior, as by [Slice.DropBorders].
func WithNeighboursSum[K Kind, T any](s Slice[K, T], fn func(a, b T) T) Slice[Universal, Pair[T, T]] {
	interior := s.DropBorders()
	return Slice[Universal, Pair[T, T]]{
		shape:   interior.shape,
		strides: interior.strides,
		iter: neighboursIterator[T]{
			base:    interior.iter,
			strides: interior.strides,
			fn:      fn,
		},
	}
}

// Minimum is a ready-made window reducer for [Slide] and [SlideAlong].
func Minimum[T constraints.Ordered](w Slice[Universal, T]) T {
	first := true
	var acc T
	for v := range w.Values() {
		if first || v < acc {
			acc = v
			first = false
		}
	}
	return acc
}

// Sum is a ready-made window reducer for [Slide] and [SlideAlong].
func Sum[T field.Number](w Slice[Universal, T]) T {
	var acc T
	for v := range w.Values() {
		acc += v
	}
	return acc
}
