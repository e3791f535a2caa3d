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

// Package field provides random-access value producers without cursor
// semantics.
//
// A field is the stateless dual of an iterator: it has no position, is
// trivially copyable, and may be infinite. Fields become finite views once
// wrapped in a shape by package ndslice.
package field

import (
	"golang.org/x/exp/constraints"
)

// Field is a random-access producer of values.
//
// At may be called with any non-negative index unless the concrete field
// documents a bound. Fields must be pure: At reports the same value for the
// same index every time.
type Field[T any] interface {
	// At returns the value at the given index.
	At(index int) T
}

// Number is the constraint shared by the arithmetic fields.
type Number interface {
	constraints.Integer | constraints.Float
}

// Func implements [Field] using an access function as underlying storage.
type Func[T any] struct {
	Get func(int) T
}

// NewFunc constructs a new [Func].
//
// This function exists because Go currently will not infer type parameters
// of a type.
func NewFunc[T any](get func(int) T) Func[T] {
	return Func[T]{get}
}

// At implements [Field].
func (f Func[T]) At(index int) T {
	return f.Get(index)
}

// Repeat is a field that reports the same value at every index.
type Repeat[T any] struct {
	Value T
}

// At implements [Field].
func (r Repeat[T]) At(int) T {
	return r.Value
}

// Cycle repeats the first Period values of Source forever.
type Cycle[T any] struct {
	Source Field[T]
	Period int
}

// At implements [Field].
func (c Cycle[T]) At(index int) T {
	return c.Source.At(index % c.Period)
}

// Bits exposes the individual bits of a field of 64-bit words,
// least-significant bit first.
type Bits struct {
	Words Field[uint64]
}

// At implements [Field].
func (b Bits) At(index int) bool {
	return b.Words.At(index>>6)>>(uint(index)&63)&1 != 0
}
