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
	"github.com/bufbuild/ndslice/field"
)

// fieldIterator adapts a cursor-free [field.Field] into a cursor.
type fieldIterator[T any] struct {
	f   field.Field[T]
	pos int
}

func (it fieldIterator[T]) At(k int) T {
	return it.f.At(it.pos + k)
}

func (it fieldIterator[T]) Skip(k int) Iterator[T] {
	return fieldIterator[T]{it.f, it.pos + k}
}

// indexIterator composes a field with an index lookup table: the element at
// k is f.At(indices[k]).
type indexIterator[T any] struct {
	f       field.Field[T]
	indices []int
	pos     int
}

func (it indexIterator[T]) At(k int) T {
	return it.f.At(it.indices[it.pos+k])
}

func (it indexIterator[T]) Skip(k int) Iterator[T] {
	return indexIterator[T]{it.f, it.indices, it.pos + k}
}

// mapIterator applies a function to every element of its base on access.
type mapIterator[T, U any] struct {
	base Iterator[T]
	fn   func(T) U
}

func (it mapIterator[T, U]) At(k int) U {
	return it.fn(it.base.At(k))
}

func (it mapIterator[T, U]) Skip(k int) Iterator[U] {
	return mapIterator[T, U]{it.base.Skip(k), it.fn}
}

// vmapIterator is mapIterator over a value-typed callable.
type vmapIterator[T, U any, C Callable[T, U]] struct {
	base Iterator[T]
	c    C
}

func (it vmapIterator[T, U, C]) At(k int) U {
	return it.c.Call(it.base.At(k))
}

func (it vmapIterator[T, U, C]) Skip(k int) Iterator[U] {
	return vmapIterator[T, U, C]{it.base.Skip(k), it.c}
}

// flatIterator linearizes an arbitrary strided geometry: offset k is
// decomposed row-major over shape and re-linearized through strides. The
// decomposition is the per-dimension position vector of the cursor.
//
// Positions must stay within [0, product(shape)).
type flatIterator[T any] struct {
	base    Iterator[T]
	shape   []int
	strides []int
	pos     int
}

func (it flatIterator[T]) offset(k int) int {
	n := it.pos + k
	off := 0
	for d := len(it.shape) - 1; d >= 0; d-- {
		off += n % it.shape[d] * it.strides[d]
		n /= it.shape[d]
	}
	return off
}

func (it flatIterator[T]) At(k int) T {
	return it.base.At(it.offset(k))
}

func (it flatIterator[T]) Ref(k int) *T {
	return ref(it.base, it.offset(k))
}

func (it flatIterator[T]) Skip(k int) Iterator[T] {
	return flatIterator[T]{it.base, it.shape, it.strides, it.pos + k}
}

// packIterator synthesizes inner views on demand: the element at k is a
// fresh slice over the same store, rooted k base elements from the cursor.
// The inner structure is fixed at construction time; nothing is
// materialized.
type packIterator[K Kind, T any] struct {
	base  Iterator[T]
	inner Slice[K, T] // prototype; its iterator field is nil
	pos   int
}

func (it packIterator[K, T]) At(k int) Slice[K, T] {
	inner := it.inner
	inner.iter = it.base.Skip(it.pos + k)
	return inner
}

func (it packIterator[K, T]) Skip(k int) Iterator[Slice[K, T]] {
	return packIterator[K, T]{it.base, it.inner, it.pos + k}
}

// chopIterator cuts a one-dimensional slice at the given bounds: the
// element at k is source[bounds[k]:bounds[k+1]].
type chopIterator[K Kind, T any] struct {
	source Slice[K, T]
	bounds []int
	pos    int
}

func (it chopIterator[K, T]) At(k int) Slice[K, T] {
	n := it.pos + k
	return it.source.Slice(it.bounds[n], it.bounds[n+1])
}

func (it chopIterator[K, T]) Skip(k int) Iterator[Slice[K, T]] {
	return chopIterator[K, T]{it.source, it.bounds, it.pos + k}
}

// zipIterator2 advances two cursors in lockstep and reports value pairs.
type zipIterator2[A, B any] struct {
	a Iterator[A]
	b Iterator[B]

	// The zipped inputs, kept so the zip can be undone.
	origA Slice[Universal, A]
	origB Slice[Universal, B]
}

func (it zipIterator2[A, B]) At(k int) Pair[A, B] {
	return Pair[A, B]{it.a.At(k), it.b.At(k)}
}

func (it zipIterator2[A, B]) Skip(k int) Iterator[Pair[A, B]] {
	return zipIterator2[A, B]{it.a.Skip(k), it.b.Skip(k), it.origA, it.origB}
}

// zipPtrIterator2 is zipIterator2 yielding reference tuples. Both bases
// must be addressable.
type zipPtrIterator2[A, B any] struct {
	a MutIterator[A]
	b MutIterator[B]
}

func (it zipPtrIterator2[A, B]) At(k int) Pair[*A, *B] {
	return Pair[*A, *B]{it.a.Ref(k), it.b.Ref(k)}
}

func (it zipPtrIterator2[A, B]) Skip(k int) Iterator[Pair[*A, *B]] {
	return zipPtrIterator2[A, B]{
		it.a.Skip(k).(MutIterator[A]),
		it.b.Skip(k).(MutIterator[B]),
	}
}

// zipIterator3 is zipIterator2 over three cursors.
type zipIterator3[A, B, C any] struct {
	a Iterator[A]
	b Iterator[B]
	c Iterator[C]
}

func (it zipIterator3[A, B, C]) At(k int) Triple[A, B, C] {
	return Triple[A, B, C]{it.a.At(k), it.b.At(k), it.c.At(k)}
}

func (it zipIterator3[A, B, C]) Skip(k int) Iterator[Triple[A, B, C]] {
	return zipIterator3[A, B, C]{it.a.Skip(k), it.b.Skip(k), it.c.Skip(k)}
}

// cachedIterator is the read-through triple view: on first access the
// original element is copied into the cache and the flag is set; later
// accesses serve the cache. Ref sets the flag and exposes the cache cell,
// since a caller taking a reference is about to write it.
type cachedIterator[T any] struct {
	orig  Iterator[T]
	cache MutIterator[T]
	flags MutIterator[bool]
	pos   int
}

func (it cachedIterator[T]) At(k int) T {
	n := it.pos + k
	if done := it.flags.Ref(n); !*done {
		*it.cache.Ref(n) = it.orig.At(n)
		*done = true
	}
	return *it.cache.Ref(n)
}

func (it cachedIterator[T]) Ref(k int) *T {
	n := it.pos + k
	*it.flags.Ref(n) = true
	return it.cache.Ref(n)
}

func (it cachedIterator[T]) Skip(k int) Iterator[T] {
	return cachedIterator[T]{it.orig, it.cache, it.flags, it.pos + k}
}

// bitIterator unpacks the bits of a word cursor, least-significant first.
type bitIterator[W wordType] struct {
	words Iterator[W]
	width int
	pos   int
}

func (it bitIterator[W]) At(k int) bool {
	n := it.pos + k
	return it.words.At(n/it.width)>>(uint(n%it.width))&1 != 0
}

func (it bitIterator[W]) Skip(k int) Iterator[bool] {
	return bitIterator[W]{it.words, it.width, it.pos + k}
}

// bitpackIterator gathers fixed-width bit fields from a word cursor. A
// field may straddle a word boundary; the two halves are recombined
// least-significant first.
type bitpackIterator[W wordType] struct {
	words Iterator[W]
	width int // bits per source word
	bits  int // bits per packed field
	pos   int
}

func (it bitpackIterator[W]) At(k int) uint64 {
	start := (it.pos + k) * it.bits
	word, shift := start/it.width, start%it.width
	v := uint64(it.words.At(word)) >> uint(shift)
	if shift+it.bits > it.width {
		v |= uint64(it.words.At(word+1)) << uint(it.width-shift)
	}
	if it.bits < 64 {
		v &= 1<<uint(it.bits) - 1
	}
	return v
}

func (it bitpackIterator[W]) Skip(k int) Iterator[uint64] {
	return bitpackIterator[W]{it.words, it.width, it.bits, it.pos + k}
}

// byteGroupIterator combines runs of k bytes into big-endian integers.
type byteGroupIterator[T wordType] struct {
	bytes Iterator[byte]
	group int
	pos   int
}

func (it byteGroupIterator[T]) At(k int) T {
	start := (it.pos + k) * it.group
	var v uint64
	for i := range it.group {
		v = v<<8 | uint64(it.bytes.At(start+i))
	}
	return T(v)
}

func (it byteGroupIterator[T]) Skip(k int) Iterator[T] {
	return byteGroupIterator[T]{it.bytes, it.group, it.pos + k}
}
