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

// Package bitsx contains extensions to Go's package math/bits.
package bitsx

import (
	"math/bits"
)

// Len64 returns the minimum number of bits required to represent the
// magnitude held in words, which is little-endian and need not be
// normalized. Zero requires zero bits.
func Len64(words []uint64) uint {
	for i := len(words) - 1; i >= 0; i-- {
		if words[i] != 0 {
			return uint(i*64) + uint(bits.Len64(words[i]))
		}
	}
	return 0
}

// DecimalDigits bounds the number of base-10 digits of an n-bit magnitude
// from above. The bound is floor(n * 0.30103) + 1; 0.30103 is slightly
// larger than log10(2), so the result never under-counts.
func DecimalDigits(n uint) uint {
	return n*30103/100000 + 1
}
