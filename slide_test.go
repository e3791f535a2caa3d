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

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/ndslice"
)

func TestSlideAlong(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := ndslice.Iota(6)
	sums := ndslice.SlideAlong(s, 3, 0, ndslice.Sum)
	assert.Equal([]int{4}, sums.Shape())
	assert.Equal([]int{3, 6, 9, 12}, sums.Collect())

	// Along an inner axis of a matrix.
	m := ndslice.Iota(2, 4)
	rows := ndslice.SlideAlong(m, 2, 1, ndslice.Sum)
	assert.Equal([]int{2, 3}, rows.Shape())
	assert.Equal([]int{1, 3, 5, 9, 11, 13}, rows.Collect())

	// A window wider than the axis leaves nothing.
	assert.True(ndslice.SlideAlong(ndslice.Iota(2), 5, 0, ndslice.Sum).IsEmpty())
}

func TestSlide(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// A 2-wide minimum slide over every axis of a 3x3.
	s := ndslice.Iota(3, 3).Retro()
	mins := ndslice.Slide(s, 2, ndslice.Minimum)
	assert.Equal([]int{2, 2}, mins.Shape())
	assert.Equal([]int{4, 3, 1, 0}, mins.Collect())
}

func TestPairwiseDiff(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := ndslice.From([]int{1, 2, 4, 8, 16})

	sums := ndslice.Pairwise(s, 1, 0, func(a, b int) int { return a + b })
	assert.Equal([]int{3, 6, 12, 24}, sums.Collect())

	d1 := ndslice.Diff(s, 1, 0)
	assert.Equal([]int{1, 2, 4, 8}, d1.Collect())

	d2 := ndslice.Diff(s, 2, 0)
	assert.Equal([]int{3, 6, 12}, d2.Collect())

	// diff with lag n is pairwise of b-a at lag n.
	lagged := ndslice.Pairwise(s, 2, 0, func(a, b int) int { return b - a })
	assert.Equal(d2.Collect(), lagged.Collect())
}

func TestWithNeighboursSum(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := ndslice.Iota(3, 3)
	n := ndslice.WithNeighboursSum(s, func(a, b int) int { return a + b })
	assert.Equal([]int{1, 1}, n.Shape())

	// The single interior cell of a 3x3 iota: value 4, neighbours
	// 1 + 7 + 3 + 5.
	got := n.At(0, 0)
	assert.Equal(4, got.First)
	assert.Equal(16, got.Second)

	// No interior, no elements.
	assert.True(ndslice.WithNeighboursSum(ndslice.Iota(2, 5), func(a, b int) int { return a + b }).IsEmpty())
}
