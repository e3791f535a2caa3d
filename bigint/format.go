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
	"github.com/bufbuild/ndslice/internal/ext/bitsx"
)

// String formats the value in minimal decimal: an optional leading minus,
// then digits with no leading zeros. Zero formats as "0".
func (x *Int) String() string {
	return string(x.AppendDecimal(nil))
}

// AppendDecimal appends the decimal form of x to dst and returns the
// extended buffer.
//
// Digits are produced least significant first by dividing a scratch copy
// of the magnitude by the largest power of 10 that fits a word, then the
// run is reversed in place. The scratch and digit buffers are bounded by
// the capacity.
func (x *Int) AppendDecimal(dst []byte) []byte {
	if x.n == 0 {
		return append(dst, '0')
	}

	scratch := Make(make([]Word, x.n))
	copy(scratch.words, x.words[:x.n])
	scratch.n = x.n

	if x.neg {
		dst = append(dst, '-')
	}
	start := len(dst)
	bound := bitsx.DecimalDigits(uint(x.BitLen()))
	if cap(dst)-start < int(bound) {
		grown := make([]byte, len(dst), len(dst)+int(bound))
		copy(grown, dst)
		dst = grown
	}

	for scratch.n > 0 {
		rem := scratch.DivModUint64(pow10[maxPow10], 0)
		if scratch.n == 0 {
			// Most significant chunk: no zero padding.
			for rem > 0 {
				dst = append(dst, byte('0'+rem%10))
				rem /= 10
			}
		} else {
			for range maxPow10 {
				dst = append(dst, byte('0'+rem%10))
				rem /= 10
			}
		}
	}

	// The digits were emitted backwards.
	for i, j := start, len(dst)-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = dst[j], dst[i]
	}
	return dst
}

// HexString formats the magnitude in minimal lowercase hexadecimal with
// an optional leading minus.
func (x *Int) HexString() string {
	if x.n == 0 {
		return "0"
	}
	buf := make([]byte, 0, x.n*16+1)
	if x.neg {
		buf = append(buf, '-')
	}
	buf = appendWord(buf, x.words[x.n-1], 4, false)
	for i := x.n - 2; i >= 0; i-- {
		buf = appendWord(buf, x.words[i], 4, true)
	}
	return string(buf)
}

// BinaryString formats the magnitude in minimal binary with an optional
// leading minus.
func (x *Int) BinaryString() string {
	if x.n == 0 {
		return "0"
	}
	buf := make([]byte, 0, x.n*64+1)
	if x.neg {
		buf = append(buf, '-')
	}
	buf = appendWord(buf, x.words[x.n-1], 1, false)
	for i := x.n - 2; i >= 0; i-- {
		buf = appendWord(buf, x.words[i], 1, true)
	}
	return string(buf)
}

const digits = "0123456789abcdef"

// appendWord formats one word with bitsPerDigit-wide digits, zero-padded
// to the full word width unless the word leads the number.
func appendWord(buf []byte, w Word, bitsPerDigit uint, pad bool) []byte {
	perWord := WordBits / bitsPerDigit
	mask := Word(1)<<bitsPerDigit - 1
	started := pad
	for i := int(perWord) - 1; i >= 0; i-- {
		d := w >> (uint(i) * bitsPerDigit) & mask
		if d != 0 {
			started = true
		}
		if started {
			buf = append(buf, digits[d])
		}
	}
	if !started {
		// A leading word is never zero on a normalized value, but a
		// single zero digit keeps the helper total.
		buf = append(buf, '0')
	}
	return buf
}
