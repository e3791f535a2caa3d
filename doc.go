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

// Package ndslice provides zero-copy n-dimensional views over linear
// memory.
//
// A [Slice] is a shape, a stride representation, and a cursor; every
// operation in this package produces a new view over the same store
// without touching elements. How much stride information a slice carries
// is part of its type: see [Kind] for the contiguous, canonical and
// universal representations and the conversions between them.
//
// The package splits producers in two. An [Iterator] is a movable cursor
// with indexed access: the dynamic end of a slice. A [field.Field] is a
// random-access producer with no cursor at all, used by the lazy
// generators ([Iota], [Linspace], [Magic], [Cartesian]) that have no
// backing store. Topology that needs a single traversal composes
// iterators; topology that needs random access composes fields.
//
// The view operations never allocate element storage. The only allocations
// in this package are the small shape and stride vectors of the views
// themselves, and the multi-index tuples of [NdIota] and [Cartesian].
//
// Nothing here synchronizes: reads from any number of goroutines are safe
// while no goroutine writes, writes require exclusive access to the
// overlapping region, and overlap detection is the caller's problem.
// [ParallelEach] fans work out over disjoint sections, which needs no
// detection.
//
// Package [bigint] provides the fixed-capacity big integer that shares
// this package's separation of borrowed views from owned storage.
package ndslice
