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

package ndslice_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/ndslice"
)

func TestPack(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := ndslice.Iota(2, 3, 4)

	// Pack nests the trailing dimensions.
	p := ndslice.Pack(s, 2)
	assert.Equal([]int{2}, p.Shape())
	assert.Equal([]int{3, 4}, p.At(0).Shape())
	assert.Equal(s.Sub(1).Collect(), p.At(1).Collect())

	// Ipack nests all but the leading dimensions.
	ip := ndslice.Ipack(s, 2)
	assert.Equal([]int{2, 3}, ip.Shape())
	assert.Equal([]int{20, 21, 22, 23}, ip.At(1, 2).Collect())

	assert.Panics(func() { ndslice.Pack(s, 0) })
	assert.Panics(func() { ndslice.Pack(s, 3) })
}

func TestPackUnpackRoundTrip(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := ndslice.Iota(2, 3, 4)
	for p := 1; p < 3; p++ {
		u := ndslice.Unpack(ndslice.Pack(s, p))
		assert.Equal(s.Shape(), u.Shape(), "pack depth %d", p)
		assert.True(ndslice.Equal(s.Universal(), u), "pack depth %d", p)
	}

	// Unpacking merges the layers of a blocks view back into a
	// rank-doubled view.
	blocks := ndslice.Blocks(ndslice.Iota(4, 6), 2, 3)
	flat := ndslice.Unpack(blocks)
	assert.Equal([]int{2, 2, 2, 3}, flat.Shape())
	assert.Equal(blocks.At(1, 0).At(0, 0), flat.At(1, 0, 0, 0))
}

func TestEvertPack(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := ndslice.Iota(2, 3, 4)
	p := ndslice.Pack(s, 2)  // outer (2), inner (3, 4)
	e := ndslice.EvertPack(p) // outer (3, 4), inner (2)

	assert.Equal([]int{3, 4}, e.Shape())
	assert.Equal([]int{2}, e.At(0, 0).Shape())
	assert.Equal([]int{1, 13}, e.At(0, 1).Collect())

	// Evert twice restores the original nesting.
	back := ndslice.EvertPack(e)
	assert.Equal(p.Shape(), back.Shape())
	assert.Equal(p.At(1).Collect(), back.At(1).Collect())
}

func TestByDimAlongDim(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := ndslice.Iota(2, 3, 4)

	// byDim(1): iterate dimension 1 outermost; elements span (2, 4).
	by := ndslice.ByDim(s, 1)
	assert.Equal([]int{3}, by.Shape())
	assert.Equal([]int{2, 4}, by.At(0).Shape())
	assert.Equal([]int{4, 5, 6, 7, 16, 17, 18, 19}, by.At(1).Collect())

	// alongDim(1): elements span dimension 1; outer axes are the rest.
	along := ndslice.AlongDim(s, 1)
	assert.Equal([]int{2, 4}, along.Shape())
	assert.Equal([]int{1, 5, 9}, along.At(0, 1).Collect())

	// byDim then evertPack is alongDim.
	everted := ndslice.EvertPack(by)
	assert.Equal(along.Shape(), everted.Shape())
	var fromEvert, fromAlong [][]int
	for v := range everted.Values() {
		fromEvert = append(fromEvert, v.Collect())
	}
	for v := range along.Values() {
		fromAlong = append(fromAlong, v.Collect())
	}
	assert.Empty(cmp.Diff(fromAlong, fromEvert))

	assert.Panics(func() { ndslice.ByDim(s, 0, 1, 2) })
}

func TestByDimTrailing(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// Choosing the leading dimensions in order reproduces Ipack's
	// nesting.
	s := ndslice.Iota(2, 3, 4)
	by := ndslice.ByDim(s, 0, 1)
	ip := ndslice.Ipack(s, 2)
	assert.Equal(ip.Shape(), by.Shape())
	assert.Equal(ip.At(1, 2).Collect(), by.At(1, 2).Collect())
}
