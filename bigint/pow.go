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

// maxPow5 is the largest k with 5^k representable in a word; pow5 holds
// 5^0 through 5^maxPow5.
const maxPow5 = 27

var pow5 = func() [maxPow5 + 1]Word {
	var t [maxPow5 + 1]Word
	t[0] = 1
	for i := 1; i < len(t); i++ {
		t[i] = t[i-1] * 5
	}
	return t
}()

// maxPow10 is the largest k with 10^k representable in a word; pow10
// holds 10^0 through 10^maxPow10. The decimal parser and formatter chunk
// digits by maxPow10.
const maxPow10 = 19

var pow10 = func() [maxPow10 + 1]Word {
	var t [maxPow10 + 1]Word
	t[0] = 1
	for i := 1; i < len(t); i++ {
		t[i] = t[i-1] * 10
	}
	return t
}()

// MulPow5 multiplies the magnitude by 5^k in place, consuming k in chunks
// of the largest power of 5 that fits a word. It reports whether any
// carry did not fit the capacity; the stored value is then truncated.
func (x *Int) MulPow5(k uint) (overflow bool) {
	for k >= maxPow5 {
		if x.MulAddUint64(pow5[maxPow5], 0) != 0 {
			overflow = true
		}
		k -= maxPow5
	}
	if k > 0 {
		if x.MulAddUint64(pow5[k], 0) != 0 {
			overflow = true
		}
	}
	return overflow
}
