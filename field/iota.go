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

import (
	"golang.org/x/exp/constraints"
)

// Iota is the arithmetic progression Start, Start+Step, Start+2*Step, ...
type Iota[T Number] struct {
	Start, Step T
}

// At implements [Field].
func (f Iota[T]) At(index int) T {
	return f.Start + T(index)*f.Step
}

// NdIota reports, at each flat index, the multi-index of that position in a
// row-major traversal of the given shape.
//
// The reported index slice is freshly allocated on every call; multi-indexes
// of dynamic rank have no stack representation in Go.
type NdIota struct {
	shape []int
}

// NewNdIota constructs an [NdIota] over shape.
func NewNdIota(shape ...int) NdIota {
	return NdIota{shape}
}

// At implements [Field].
func (f NdIota) At(index int) []int {
	idx := make([]int, len(f.shape))
	for d := len(f.shape) - 1; d >= 0; d-- {
		idx[d] = index % f.shape[d]
		index /= f.shape[d]
	}
	return idx
}

// Linspace reports Count evenly spaced values from Start to Stop, both
// endpoints included. Count must be at least 2.
//
// Values are computed by exact-endpoint interpolation rather than repeated
// addition, so Linspace.At(Count-1) == Stop even when the step is not
// representable.
type Linspace[T constraints.Float] struct {
	Start, Stop T
	Count       int
}

// At implements [Field].
func (f Linspace[T]) At(index int) T {
	if index == f.Count-1 {
		return f.Stop
	}
	n := T(f.Count - 1)
	return (f.Start*(n-T(index)) + f.Stop*T(index)) / n
}
