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

package field

// Axis pairs a field with the extent it contributes to a product field.
type Axis[T any] struct {
	Field Field[T]
	Len   int
}

// Cartesian is the Cartesian product of its axes: the flat index is
// decomposed row-major over the axis extents and each axis contributes one
// component of the reported tuple.
//
// The reported tuple is freshly allocated on every call, like [NdIota].
type Cartesian[T any] struct {
	axes []Axis[T]
}

// NewCartesian constructs a [Cartesian] over the given axes.
func NewCartesian[T any](axes ...Axis[T]) Cartesian[T] {
	return Cartesian[T]{axes}
}

// Size returns the total number of tuples.
func (c Cartesian[T]) Size() int {
	n := 1
	for _, a := range c.axes {
		n *= a.Len
	}
	return n
}

// At implements [Field].
func (c Cartesian[T]) At(index int) []T {
	out := make([]T, len(c.axes))
	for d := len(c.axes) - 1; d >= 0; d-- {
		out[d] = c.axes[d].Field.At(index % c.axes[d].Len)
		index /= c.axes[d].Len
	}
	return out
}

// Kronecker is the generalized Kronecker product of its axes: the flat
// index is decomposed row-major over the axis extents and the per-axis
// values are folded left-to-right with Combine.
type Kronecker[T any] struct {
	Combine func(T, T) T
	axes    []Axis[T]
	divs    []int
}

// NewKronecker constructs a [Kronecker] with an explicit combiner.
func NewKronecker[T any](combine func(T, T) T, axes ...Axis[T]) Kronecker[T] {
	if len(axes) == 0 {
		panic("field: Kronecker needs at least one axis")
	}
	divs := make([]int, len(axes))
	div := 1
	for d := len(axes) - 1; d >= 0; d-- {
		divs[d] = div
		div *= axes[d].Len
	}
	return Kronecker[T]{combine, axes, divs}
}

// NewKroneckerProduct constructs the ordinary [Kronecker] product, which
// multiplies the per-axis values.
func NewKroneckerProduct[T Number](axes ...Axis[T]) Kronecker[T] {
	return NewKronecker(func(a, b T) T { return a * b }, axes...)
}

// Size returns the total number of values.
func (k Kronecker[T]) Size() int {
	n := 1
	for _, a := range k.axes {
		n *= a.Len
	}
	return n
}

// At implements [Field].
func (k Kronecker[T]) At(index int) T {
	acc := k.axes[0].Field.At(index / k.divs[0] % k.axes[0].Len)
	for d := 1; d < len(k.axes); d++ {
		acc = k.Combine(acc, k.axes[d].Field.At(index/k.divs[d]%k.axes[d].Len))
	}
	return acc
}
