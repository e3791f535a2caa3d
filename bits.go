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
	"math/bits"
	"slices"

	"golang.org/x/exp/constraints"
)

// wordType is the element constraint of the bit-level reinterpreting
// views.
type wordType interface {
	constraints.Unsigned
}

// wordBits returns the width of W in bits.
func wordBits[W wordType]() int {
	return bits.Len64(uint64(^W(0)))
}

// Bitwise reinterprets a slice of unsigned words as a slice of its
// individual bits, least-significant bit first within each word. The
// innermost extent grows by the word width.
//
// The view is read-only; bits are written through the underlying words.
func Bitwise[K Kind, W wordType](s Slice[K, W]) Slice[Contiguous, bool] {
	width := wordBits[W]()
	shape := slices.Clone(s.shape)
	shape[len(shape)-1] *= width
	return Slice[Contiguous, bool]{
		shape: shape,
		iter:  bitIterator[W]{words: s.flatIter(), width: width},
	}
}

// Bitpack reinterprets a slice of unsigned words as a slice of packed
// width-bit fields, least-significant first; a field may straddle one word
// boundary, so width must not exceed the source word width. The innermost
// extent scales by wordBits/width, and the total bit count of a row must
// be divisible by width.
func Bitpack[K Kind, W wordType](s Slice[K, W], width int) Slice[Contiguous, uint64] {
	wb := wordBits[W]()
	if width < 1 || width > wb {
		panic("ndslice: field width out of range")
	}
	shape := slices.Clone(s.shape)
	rowBits := shape[len(shape)-1] * wb
	if rowBits%width != 0 {
		panic("ndslice: field width does not tile the row")
	}
	shape[len(shape)-1] = rowBits / width
	return Slice[Contiguous, uint64]{
		shape: shape,
		iter:  bitpackIterator[W]{words: s.flatIter(), width: wb, bits: width},
	}
}

// ByteGroup reinterprets a slice of bytes as a slice of group-byte
// big-endian integers. The innermost extent shrinks by the group size,
// which must divide it and fit the target type.
//
// Values are assembled byte by byte, so the result is identical on little-
// and big-endian hosts.
func ByteGroup[T wordType, K Kind](s Slice[K, byte], group int) Slice[Contiguous, T] {
	if group < 1 || group*8 > wordBits[T]() {
		panic("ndslice: group does not fit the target type")
	}
	shape := slices.Clone(s.shape)
	if shape[len(shape)-1]%group != 0 {
		panic("ndslice: group does not tile the row")
	}
	shape[len(shape)-1] /= group
	return Slice[Contiguous, T]{
		shape: shape,
		iter:  byteGroupIterator[T]{bytes: s.flatIter(), group: group},
	}
}
