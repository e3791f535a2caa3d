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

// Universal downgrades to the fully explicit stride representation. This
// is always valid and materializes the implied strides.
func (s Slice[K, T]) Universal() Slice[Universal, T] {
	return Slice[Universal, T]{
		shape:   slices.Clone(s.shape),
		strides: s.fullStrides(),
		iter:    s.iter,
	}
}

// Canonical downgrades to the representation that stores the outer n-1
// strides and implies an innermost stride of 1.
//
// Valid from [Contiguous] and [Canonical] slices; converting a [Universal]
// slice requires [AssumeCanonical], since its innermost stride is not
// known to be 1.
func (s Slice[K, T]) Canonical() Slice[Canonical, T] {
	switch kindOf[K]() {
	case kindUniversal:
		panic("ndslice: a universal slice is not known to be canonical; use AssumeCanonical")
	case kindCanonical:
		return Slice[Canonical, T]{slices.Clone(s.shape), slices.Clone(s.strides), s.iter}
	default:
		full := slicesx.RowMajor(s.shape)
		return Slice[Canonical, T]{slices.Clone(s.shape), full[:len(full)-1], s.iter}
	}
}

// AssumeCanonical upgrades a universal slice under the caller's assertion
// that its innermost stride is 1. The assertion is verified; violating it
// is a programmer error, not a recoverable condition.
func AssumeCanonical[T any](s Slice[Universal, T]) Slice[Canonical, T] {
	if n := len(s.strides); n > 0 && s.strides[n-1] != 1 {
		panic("ndslice: innermost stride is not 1")
	}
	return Slice[Canonical, T]{
		shape:   slices.Clone(s.shape),
		strides: slices.Clone(s.strides[:len(s.strides)-1]),
		iter:    s.iter,
	}
}

// AssumeContiguous upgrades a canonical slice under the caller's assertion
// that its explicit strides are exactly the row-major ones. The assertion
// is verified; violating it is a programmer error, not a recoverable
// condition.
func AssumeContiguous[T any](s Slice[Canonical, T]) Slice[Contiguous, T] {
	implied := slicesx.RowMajor(s.shape)
	if !slices.Equal(s.strides, implied[:len(implied)-1]) {
		panic("ndslice: strides are not row-major")
	}
	return Slice[Contiguous, T]{
		shape: slices.Clone(s.shape),
		iter:  s.iter,
	}
}
