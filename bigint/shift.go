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

// Shl shifts the magnitude left by n bits in place, zero-filling the
// vacated low words. Bits shifted past the capacity are dropped without
// report; use [Int.ShlChecked] to observe the loss.
func (x *Int) Shl(n uint) *Int {
	if x.n == 0 || n == 0 {
		return x
	}
	wordShift := int(n / WordBits)
	bitShift := n % WordBits

	capWords := len(x.words)
	// Highest destination index holding any bit, before clamping.
	top := x.n - 1 + wordShift
	if bitShift != 0 && x.words[x.n-1]>>(WordBits-bitShift) != 0 {
		top++
	}
	newLen := top + 1
	if newLen > capWords {
		newLen = capWords
	}

	for di := newLen - 1; di >= wordShift; di-- {
		si := di - wordShift
		var v Word
		if si < x.n {
			v = x.words[si] << bitShift
		}
		if bitShift != 0 && si > 0 && si-1 < x.n {
			v |= x.words[si-1] >> (WordBits - bitShift)
		}
		x.words[di] = v
	}
	for di := min(wordShift, newLen) - 1; di >= 0; di-- {
		x.words[di] = 0
	}
	x.n = newLen
	x.normalize()
	return x
}

// ShlChecked is [Int.Shl] reporting whether any one bits were dropped.
func (x *Int) ShlChecked(n uint) (lost bool) {
	lost = x.n > 0 && uint(x.BitLen())+n > uint(len(x.words))*WordBits
	x.Shl(n)
	return lost
}

// Shr shifts the magnitude right by n bits in place, discarding the low
// bits.
func (x *Int) Shr(n uint) *Int {
	if x.n == 0 || n == 0 {
		return x
	}
	wordShift := int(n / WordBits)
	bitShift := n % WordBits
	if wordShift >= x.n {
		x.n = 0
		x.normalize()
		return x
	}

	newLen := x.n - wordShift
	for di := range newLen {
		si := di + wordShift
		v := x.words[si] >> bitShift
		if bitShift != 0 && si+1 < x.n {
			v |= x.words[si+1] << (WordBits - bitShift)
		}
		x.words[di] = v
	}
	x.n = newLen
	x.normalize()
	return x
}
