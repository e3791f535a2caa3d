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

package bigint

import (
	"math"
)

// Float64 converts the value to the nearest float64, rounding half to
// even. Values beyond the float64 range convert to the signed infinity.
func (x *Int) Float64() float64 {
	if x.n == 0 {
		return 0
	}
	bitLen := x.BitLen()
	var f float64
	if bitLen <= 53 {
		f = float64(x.lowBits())
	} else {
		// 53 mantissa bits, one rounding bit, and a sticky OR of the
		// rest.
		shift := bitLen - 54
		mant := x.bitsAt(shift, 54)
		sticky := x.anyBitsBelow(shift)

		round := mant & 1
		mant >>= 1
		if round != 0 && (sticky || mant&1 != 0) {
			mant++
			if mant == 1<<53 {
				mant >>= 1
				shift++
			}
		}
		f = math.Ldexp(float64(mant), shift+1)
	}
	if x.neg {
		f = -f
	}
	return f
}

// lowBits returns the low word; only valid when the magnitude fits one
// word.
func (x *Int) lowBits() uint64 {
	return x.words[0]
}

// bitsAt extracts count bits of the magnitude starting at bit position
// from, least significant first. count must be at most 64, so two words
// always suffice.
func (x *Int) bitsAt(from, count int) uint64 {
	word, off := from/WordBits, uint(from%WordBits)
	v := x.words[word] >> off
	if off != 0 && word+1 < x.n {
		v |= x.words[word+1] << (WordBits - off)
	}
	if count < 64 {
		v &= 1<<uint(count) - 1
	}
	return v
}

// anyBitsBelow reports whether any bit below position from is set.
func (x *Int) anyBitsBelow(from int) bool {
	word, off := from/WordBits, uint(from%WordBits)
	for i := 0; i < word && i < x.n; i++ {
		if x.words[i] != 0 {
			return true
		}
	}
	if word < x.n && off > 0 {
		if x.words[word]&(1<<off-1) != 0 {
			return true
		}
	}
	return false
}
