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

	"github.com/bufbuild/ndslice/field"
	"golang.org/x/exp/constraints"
)

// FromField wraps a cursor-free field in a lazy contiguous slice of the
// given shape. The field is consulted with row-major flat indexes.
func FromField[T any](f field.Field[T], shape ...int) Slice[Contiguous, T] {
	checkShape(shape)
	return Slice[Contiguous, T]{
		shape: slices.Clone(shape),
		iter:  fieldIterator[T]{f, 0},
	}
}

// Iota returns the lazy slice counting 0, 1, 2, ... in row-major order.
func Iota(shape ...int) Slice[Contiguous, int] {
	return IotaStep(0, 1, shape...)
}

// IotaStep is [Iota] with an arbitrary start and step: the element at flat
// index i is start + step*i.
func IotaStep[T field.Number](start, step T, shape ...int) Slice[Contiguous, T] {
	return FromField[T](field.Iota[T]{Start: start, Step: step}, shape...)
}

// NdIota returns the lazy slice whose element at each position is that
// position's multi-index.
func NdIota(shape ...int) Slice[Contiguous, []int] {
	checkShape(shape)
	return FromField[[]int](field.NewNdIota(shape...), shape...)
}

// Linspace returns count evenly spaced values from start to stop, both
// included. count must be at least 2.
func Linspace[T constraints.Float](start, stop T, count int) Slice[Contiguous, T] {
	if count < 2 {
		panic("ndslice: Linspace needs at least 2 points")
	}
	return FromField[T](field.Linspace[T]{Start: start, Stop: stop, Count: count}, count)
}

// Magic returns the lazy n-by-n magic square. See [field.Magic] for the
// constructions used.
func Magic(n int) Slice[Contiguous, int] {
	return FromField[int](field.NewMagic(n), n, n)
}

// Cycle returns a rank-1 lazy slice of the given length repeating the
// first period values of source.
func Cycle[T any](source field.Field[T], period, length int) Slice[Contiguous, T] {
	if period <= 0 {
		panic("ndslice: period must be positive")
	}
	return FromField[T](field.Cycle[T]{Source: source, Period: period}, length)
}

// Indexed returns the rank-1 lazy slice whose element at i is
// f.At(indices[i]): lookup composition of a field with an index table.
// The table is borrowed, not copied.
func Indexed[T any](f field.Field[T], indices []int) Slice[Contiguous, T] {
	return Slice[Contiguous, T]{
		shape: []int{len(indices)},
		iter:  indexIterator[T]{f, indices, 0},
	}
}

// Cartesian returns the lazy Cartesian-product slice of the given axes;
// its rank is the number of axes and the element at a multi-index is the
// tuple of per-axis values.
func Cartesian[T any](axes ...field.Axis[T]) Slice[Contiguous, []T] {
	shape := make([]int, len(axes))
	for i, a := range axes {
		shape[i] = a.Len
	}
	checkShape(shape)
	return FromField[[]T](field.NewCartesian(axes...), shape...)
}

// Kronecker returns the lazy Kronecker-product slice of the given axes
// under combine; its rank is the number of axes.
func Kronecker[T any](combine func(T, T) T, axes ...field.Axis[T]) Slice[Contiguous, T] {
	shape := make([]int, len(axes))
	for i, a := range axes {
		shape[i] = a.Len
	}
	checkShape(shape)
	return FromField[T](field.NewKronecker(combine, axes...), shape...)
}

// KroneckerProduct is [Kronecker] with multiplication.
func KroneckerProduct[T field.Number](axes ...field.Axis[T]) Slice[Contiguous, T] {
	return Kronecker(func(a, b T) T { return a * b }, axes...)
}
