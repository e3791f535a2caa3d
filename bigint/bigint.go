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

// Package bigint provides a fixed-capacity arbitrary-precision signed
// integer.
//
// An [Int] never grows: its capacity is the length of the word buffer it
// was constructed over, and every operation that could exceed it reports
// the excess through an overflow result instead of reallocating. Buffers
// come from the caller ([Make]); [New] is the allocating convenience.
//
// Words are 64-bit and stored least-significant first. After every public
// operation the value is normalized: the most significant active word is
// non-zero, and zero is represented by an active length of 0 with a
// non-negative sign.
package bigint

import (
	"math/bits"

	"github.com/bufbuild/ndslice/internal/ext/bitsx"
)

// Word is a single coefficient of an [Int]'s magnitude.
type Word = uint64

// WordBits is the width of a [Word].
const WordBits = 64

// Int is a fixed-capacity signed integer.
//
// The zero Int has capacity 0 and holds the value 0; it can represent
// nothing else. Ints are passed by pointer; copying the struct aliases the
// buffer.
type Int struct {
	neg   bool
	n     int    // active words
	words []Word // the full buffer; words[n:] are unspecified
}

// Make constructs an Int of value 0 over a caller-provided buffer. The
// buffer's length is the Int's capacity; its contents need not be zeroed.
func Make(buf []Word) Int {
	return Int{words: buf}
}

// New allocates a buffer of capWords words and returns an Int of value 0
// over it.
func New(capWords int) *Int {
	x := Make(make([]Word, capWords))
	return &x
}

// FromUint64 returns a new Int of the given capacity holding v.
func FromUint64(capWords int, v uint64) *Int {
	return New(capWords).SetUint64(v)
}

// FromInt64 returns a new Int of the given capacity holding v.
func FromInt64(capWords int, v int64) *Int {
	return New(capWords).SetInt64(v)
}

// FromWords returns a new Int of the given capacity holding the
// little-endian magnitude words with the given sign. It reports overflow
// (true) when the normalized magnitude does not fit, in which case the
// Int is zero.
func FromWords(capWords int, words []Word, neg bool) (*Int, bool) {
	x := New(capWords)
	overflow := x.SetWords(words, neg)
	return x, overflow
}

// Cap returns the capacity in words.
func (x *Int) Cap() int {
	return len(x.words)
}

// Len returns the number of active words. Zero has length 0.
func (x *Int) Len() int {
	return x.n
}

// Sign returns -1, 0 or +1.
func (x *Int) Sign() int {
	switch {
	case x.n == 0:
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// IsZero returns whether the value is 0.
func (x *Int) IsZero() bool {
	return x.n == 0
}

// BitLen returns the length of the magnitude in bits. Zero has bit length
// 0.
func (x *Int) BitLen() int {
	return int(bitsx.Len64(x.words[:x.n]))
}

// View borrows the active words and sign. The view shares the buffer and
// is invalidated by any mutation of x.
func (x *Int) View() View {
	return View{Words: x.words[:x.n], Neg: x.neg}
}

// normalize restores the length/sign invariants. Every public mutator
// funnels through here before returning.
func (x *Int) normalize() {
	for x.n > 0 && x.words[x.n-1] == 0 {
		x.n--
	}
	if x.n == 0 {
		x.neg = false
	}
}

// SetUint64 stores v. v must fit, which only rules out a zero-capacity
// Int.
func (x *Int) SetUint64(v uint64) *Int {
	x.neg = false
	x.n = 0
	if v != 0 {
		if len(x.words) == 0 {
			panic("bigint: zero-capacity Int")
		}
		x.words[0] = v
		x.n = 1
	}
	return x
}

// SetInt64 stores v.
func (x *Int) SetInt64(v int64) *Int {
	neg := v < 0
	var mag uint64
	if neg {
		mag = -uint64(v)
	} else {
		mag = uint64(v)
	}
	x.SetUint64(mag)
	x.neg = neg && x.n > 0
	return x
}

// Set copies the value of v into x. It reports overflow (true) when v does
// not fit x's capacity, in which case x is left zero.
func (x *Int) Set(v View) bool {
	words := v.norm()
	if len(words) > len(x.words) {
		x.n = 0
		x.neg = false
		return true
	}
	copy(x.words, words)
	x.n = len(words)
	x.neg = v.Neg && x.n > 0
	return false
}

// SetWords stores the little-endian magnitude words with the given sign.
// It reports overflow (true) when the normalized magnitude does not fit.
func (x *Int) SetWords(words []Word, neg bool) bool {
	return x.Set(View{Words: words, Neg: neg})
}

// Neg negates x in place.
func (x *Int) Neg() *Int {
	if x.n > 0 {
		x.neg = !x.neg
	}
	return x
}

// Cmp compares x with the view y and returns -1, 0 or +1.
func (x *Int) Cmp(y View) int {
	return x.View().Cmp(y)
}

// Uint64 returns the low word of the magnitude and whether that is the
// exact value (the magnitude fits one word and the sign is non-negative).
func (x *Int) Uint64() (uint64, bool) {
	switch x.n {
	case 0:
		return 0, true
	case 1:
		return x.words[0], !x.neg
	default:
		return x.words[0], false
	}
}

// Int64 returns the value as an int64 and whether it was representable.
func (x *Int) Int64() (int64, bool) {
	mag, _ := x.Uint64()
	if x.n > 1 {
		return 0, false
	}
	if x.neg {
		if mag > 1<<63 {
			return 0, false
		}
		return -int64(mag), true
	}
	if mag > 1<<63-1 {
		return 0, false
	}
	return int64(mag), true
}

// MulAddUint64 computes x = x*m + add in place and returns the carry word
// that did not fit. When the result fits the capacity (the usual case) the
// carry is appended to the magnitude and 0 is returned.
func (x *Int) MulAddUint64(m, add Word) (overflow Word) {
	carry := add
	for i := range x.n {
		hi, lo := bits.Mul64(x.words[i], m)
		lo, c := bits.Add64(lo, carry, 0)
		x.words[i] = lo
		carry = hi + c
	}
	if carry != 0 {
		if x.n < len(x.words) {
			x.words[x.n] = carry
			x.n++
			carry = 0
		}
	}
	x.normalize()
	return carry
}

// MulAddWords computes x = x*m + add in place, where m and the running
// carry are multi-word values; add seeds the carry and must not be longer
// than m. Carry words that fit the capacity are appended one at a time;
// the rest are returned, least significant first, with high zero words
// trimmed. A nil result means everything fit.
func (x *Int) MulAddWords(m []Word, add []Word) (overflow []Word) {
	if len(m) == 0 {
		panic("bigint: empty multiplier")
	}
	if len(add) > len(m) {
		panic("bigint: carry seed longer than multiplier")
	}
	carry := make([]Word, len(m))
	copy(carry, add)

	for i := range x.n {
		d := x.words[i]
		var out, hi Word
		for j := range m {
			mhi, lo := bits.Mul64(m[j], d)
			lo, c := bits.Add64(lo, hi, 0)
			mhi += c
			lo, c = bits.Add64(lo, carry[j], 0)
			mhi += c
			if j == 0 {
				out = lo
			} else {
				carry[j-1] = lo
			}
			hi = mhi
		}
		carry[len(m)-1] = hi
		x.words[i] = out
	}

	k := 0
	for k < len(carry) && x.n < len(x.words) {
		x.words[x.n] = carry[k]
		x.n++
		k++
	}
	rest := carry[k:]
	for len(rest) > 0 && rest[len(rest)-1] == 0 {
		rest = rest[:len(rest)-1]
	}
	x.normalize()
	if len(rest) == 0 {
		return nil
	}
	return rest
}

// DivModUint64 computes x = (rem*2^(64*len) + x) / d in place, schoolbook
// from the most significant word down, and returns the final remainder.
// rem seeds the division from above and must be less than d.
func (x *Int) DivModUint64(d, rem Word) Word {
	if d == 0 {
		panic("bigint: division by zero")
	}
	if rem >= d {
		panic("bigint: remainder seed not less than divisor")
	}
	for i := x.n - 1; i >= 0; i-- {
		x.words[i], rem = bits.Div64(rem, x.words[i], d)
	}
	x.normalize()
	return rem
}

// Add computes x += y and reports whether a carry could not be stored.
func (x *Int) Add(y View) bool {
	return x.addSub(y, false)
}

// Sub computes x -= y and reports whether a carry could not be stored.
func (x *Int) Sub(y View) bool {
	return x.addSub(y, true)
}

func (x *Int) addSub(y View, flip bool) (overflow bool) {
	yw := y.norm()
	yneg := y.Neg != flip
	if len(yw) == 0 {
		return false
	}

	if x.neg == yneg {
		// Same sign: magnitudes add, sign is unchanged.
		overflow = x.uadd(yw)
	} else {
		switch ucmp(x.words[:x.n], yw) {
		case 0:
			x.n = 0
		case 1:
			x.usub(yw)
		default:
			// |y| > |x|: the result takes y's magnitude and sign.
			overflow = x.usubFrom(yw)
			x.neg = !x.neg
		}
	}
	x.normalize()
	return overflow
}

// uadd adds the magnitude yw into x's magnitude.
func (x *Int) uadd(yw []Word) (overflow bool) {
	n := max(x.n, len(yw))
	if n > len(x.words) {
		n = len(x.words)
		overflow = true
	}
	var c Word
	for i := range n {
		var a, b Word
		if i < x.n {
			a = x.words[i]
		}
		if i < len(yw) {
			b = yw[i]
		}
		x.words[i], c = bits.Add64(a, b, c)
	}
	x.n = n
	if c != 0 {
		if x.n < len(x.words) {
			x.words[x.n] = c
			x.n++
		} else {
			overflow = true
		}
	}
	// Words of y beyond the capacity are themselves an overflow.
	for i := len(x.words); i < len(yw); i++ {
		if yw[i] != 0 {
			overflow = true
		}
	}
	return overflow
}

// usub subtracts the magnitude yw from x's magnitude; |x| must be >= |y|.
func (x *Int) usub(yw []Word) {
	var borrow Word
	for i := range x.n {
		var b Word
		if i < len(yw) {
			b = yw[i]
		}
		x.words[i], borrow = bits.Sub64(x.words[i], b, borrow)
	}
}

// usubFrom replaces x's magnitude with |y| - |x|; |y| must be > |x|. The
// result is y's magnitude minus x's, so it can only overflow if y itself
// does not fit.
func (x *Int) usubFrom(yw []Word) (overflow bool) {
	n := len(yw)
	if n > len(x.words) {
		// Only high zero words of the difference may be dropped.
		n = len(x.words)
	}
	var borrow Word
	for i := range n {
		var a Word
		if i < x.n {
			a = x.words[i]
		}
		x.words[i], borrow = bits.Sub64(yw[i], a, borrow)
	}
	for i := n; i < len(yw); i++ {
		var a Word
		if i < x.n {
			a = x.words[i]
		}
		d, b := bits.Sub64(yw[i], a, borrow)
		borrow = b
		if d != 0 {
			overflow = true
		}
	}
	x.n = n
	return overflow
}
