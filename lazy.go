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
	"errors"
	"slices"
)

// ErrShapeMismatch is reported when an operation requires its operands to
// have identical shapes.
var ErrShapeMismatch = errors.New("ndslice: shapes do not match")

// Pair is a two-element tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is a three-element tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Callable is a value-typed function object, for lazy transforms that
// carry state without closing over it.
type Callable[T, U any] interface {
	Call(T) U
}

// Map returns the view applying fn to every element on access. The shape,
// kind and strides are those of s; nothing is evaluated until an element
// is read.
//
// fn must not mutate the backing store.
func Map[K Kind, T, U any](s Slice[K, T], fn func(T) U) Slice[K, U] {
	return Slice[K, U]{
		shape:   slices.Clone(s.shape),
		strides: slices.Clone(s.strides),
		iter:    mapIterator[T, U]{s.iter, fn},
	}
}

// VMap is [Map] over a value-typed callable.
func VMap[K Kind, T, U any, C Callable[T, U]](s Slice[K, T], c C) Slice[K, U] {
	return Slice[K, U]{
		shape:   slices.Clone(s.shape),
		strides: slices.Clone(s.strides),
		iter:    vmapIterator[T, U, C]{s.iter, c},
	}
}

// flatIter returns a cursor addressed by row-major flat index, hiding the
// slice's stride geometry. Contiguous slices expose their own cursor; the
// other kinds are wrapped in a re-linearizing one.
func (s Slice[K, T]) flatIter() Iterator[T] {
	if kindOf[K]() == kindContiguous {
		return s.iter
	}
	return flatIterator[T]{
		base:    s.iter,
		shape:   slices.Clone(s.shape),
		strides: s.fullStrides(),
	}
}

// Zip2 combines two equally shaped slices into a view of value pairs. The
// inputs' stride geometries may differ; each cursor advances through its
// own layout.
//
// The zipped view is lazy and read-only; use [Zip2Ptr] to write through a
// zip, or [Unzip2] to recover an input.
func Zip2[KA, KB Kind, A, B any](a Slice[KA, A], b Slice[KB, B]) (Slice[Contiguous, Pair[A, B]], error) {
	if !slices.Equal(a.shape, b.shape) {
		return Slice[Contiguous, Pair[A, B]]{}, ErrShapeMismatch
	}
	return Slice[Contiguous, Pair[A, B]]{
		shape: slices.Clone(a.shape),
		iter: zipIterator2[A, B]{
			a:     a.flatIter(),
			b:     b.flatIter(),
			origA: a.Universal(),
			origB: b.Universal(),
		},
	}, nil
}

// Unzip2 recovers the inputs of [Zip2]. It accepts only an unmodified
// zipped view.
func Unzip2[A, B any](z Slice[Contiguous, Pair[A, B]]) (Slice[Universal, A], Slice[Universal, B]) {
	zip, ok := z.iter.(zipIterator2[A, B])
	if !ok {
		panic("ndslice: not a zipped slice")
	}
	return zip.origA, zip.origB
}

// Zip2Ptr combines two equally shaped slices into a view of reference
// pairs. Writing through the references mutates the inputs' stores; the
// references of one pair are independent. Both inputs must have
// addressable elements.
func Zip2Ptr[KA, KB Kind, A, B any](a Slice[KA, A], b Slice[KB, B]) (Slice[Contiguous, Pair[*A, *B]], error) {
	if !slices.Equal(a.shape, b.shape) {
		return Slice[Contiguous, Pair[*A, *B]]{}, ErrShapeMismatch
	}
	ma, ok := a.flatIter().(MutIterator[A])
	if !ok {
		panic("ndslice: iterator elements are not addressable")
	}
	mb, ok := b.flatIter().(MutIterator[B])
	if !ok {
		panic("ndslice: iterator elements are not addressable")
	}
	return Slice[Contiguous, Pair[*A, *B]]{
		shape: slices.Clone(a.shape),
		iter:  zipPtrIterator2[A, B]{ma, mb},
	}, nil
}

// Zip3 combines three equally shaped slices into a view of value triples.
func Zip3[KA, KB, KC Kind, A, B, C any](a Slice[KA, A], b Slice[KB, B], c Slice[KC, C]) (Slice[Contiguous, Triple[A, B, C]], error) {
	if !slices.Equal(a.shape, b.shape) || !slices.Equal(a.shape, c.shape) {
		return Slice[Contiguous, Triple[A, B, C]]{}, ErrShapeMismatch
	}
	return Slice[Contiguous, Triple[A, B, C]]{
		shape: slices.Clone(a.shape),
		iter:  zipIterator3[A, B, C]{a.flatIter(), b.flatIter(), c.flatIter()},
	}, nil
}

// Cached is a read-through view over three equally shaped slices: reading
// an element computes original's element into cache once, records the
// fact in flags, and serves cache thereafter. Writing through the view
// stores into cache and sets the flag, so the original is never consulted
// for that element again.
//
// cache and flags must have addressable elements. Concurrent first
// accesses of the same element are the caller's to serialize.
func Cached[K, KC, KF Kind, T any](original Slice[K, T], cache Slice[KC, T], flags Slice[KF, bool]) (Slice[Contiguous, T], error) {
	if !slices.Equal(original.shape, cache.shape) || !slices.Equal(original.shape, flags.shape) {
		return Slice[Contiguous, T]{}, ErrShapeMismatch
	}
	mc, ok := cache.flatIter().(MutIterator[T])
	if !ok {
		panic("ndslice: iterator elements are not addressable")
	}
	mf, ok := flags.flatIter().(MutIterator[bool])
	if !ok {
		panic("ndslice: iterator elements are not addressable")
	}
	return Slice[Contiguous, T]{
		shape: slices.Clone(original.shape),
		iter: cachedIterator[T]{
			orig:  original.flatIter(),
			cache: mc,
			flags: mf,
		},
	}, nil
}
