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

// Iterator is a movable cursor over a linear sequence of elements.
//
// An iterator has no length; a [Slice] bounds it with a shape. Offsets are
// signed: At(-1) is the element before the cursor, and Skip(-1) moves the
// cursor back. Lazy iterators (map, zip, field-backed) compute elements on
// access and never mutate backing storage.
type Iterator[T any] interface {
	// At returns the element k positions from the cursor.
	At(k int) T

	// Skip returns a cursor advanced by k elements. The receiver is
	// unchanged.
	Skip(k int) Iterator[T]
}

// MutIterator is an [Iterator] whose elements are addressable.
type MutIterator[T any] interface {
	Iterator[T]

	// Ref returns the address of the element k positions from the cursor.
	Ref(k int) *T
}

// linearIterator is the direct cursor over a Go slice. It is the iterator
// of every slice built over caller memory.
type linearIterator[T any] struct {
	data []T
	pos  int
}

func (it linearIterator[T]) At(k int) T {
	return it.data[it.pos+k]
}

func (it linearIterator[T]) Ref(k int) *T {
	return &it.data[it.pos+k]
}

func (it linearIterator[T]) Skip(k int) Iterator[T] {
	return linearIterator[T]{it.data, it.pos + k}
}

// stridedIterator multiplies every offset by a fixed step.
type stridedIterator[T any] struct {
	base Iterator[T]
	step int
}

func (it stridedIterator[T]) At(k int) T {
	return it.base.At(k * it.step)
}

func (it stridedIterator[T]) Ref(k int) *T {
	return ref(it.base, k*it.step)
}

func (it stridedIterator[T]) Skip(k int) Iterator[T] {
	return stridedIterator[T]{it.base.Skip(k * it.step), it.step}
}

// retroIterator reverses the direction of its base.
type retroIterator[T any] struct {
	base Iterator[T]
}

func (it retroIterator[T]) At(k int) T {
	return it.base.At(-k)
}

func (it retroIterator[T]) Ref(k int) *T {
	return ref(it.base, -k)
}

func (it retroIterator[T]) Skip(k int) Iterator[T] {
	return retroIterator[T]{it.base.Skip(-k)}
}

// ref resolves a mutable reference through an iterator, panicking when the
// iterator is lazy. Out-of-line so the strided/retro wrappers can forward
// mutability without asserting in the common read path.
func ref[T any](it Iterator[T], k int) *T {
	mut, ok := it.(MutIterator[T])
	if !ok {
		panic("ndslice: iterator elements are not addressable")
	}
	return mut.Ref(k)
}
