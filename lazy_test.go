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
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/ndslice"
	"github.com/bufbuild/ndslice/field"
)

func TestMap(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := ndslice.Iota(2, 3)
	doubled := ndslice.Map(s, func(v int) int { return 2 * v })
	assert.Equal([]int{0, 2, 4, 6, 8, 10}, doubled.Collect())
	assert.Equal(s.Shape(), doubled.Shape())

	// The kind is preserved, so topology composes on the mapped view.
	assert.Equal([]int{0, 8}, doubled.Diagonal().Collect())

	// Mapping is lazy: the function sees writes made after Map.
	data := []int{1, 2, 3}
	inc := ndslice.Map(ndslice.From(data), func(v int) int { return v + 1 })
	data[0] = 10
	assert.Equal(11, inc.At(0))

	// A mapped view is not addressable.
	assert.Panics(func() { inc.Set(0, 0) })
}

type scaler struct {
	factor int
}

func (s scaler) Call(v int) int { return v * s.factor }

func TestVMap(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := ndslice.Iota(4)
	tripled := ndslice.VMap(s, scaler{3})
	assert.Equal([]int{0, 3, 6, 9}, tripled.Collect())
}

func TestZip2(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	a := ndslice.Iota(2, 3)
	b := ndslice.Map(ndslice.Iota(2, 3), func(v int) int { return 10 * v })

	z, err := ndslice.Zip2(a, b)
	require.NoError(err)
	assert.Equal([]int{2, 3}, z.Shape())
	assert.Equal(ndslice.Pair[int, int]{5, 50}, z.At(1, 2))

	// The inputs may have different stride geometry.
	tr := ndslice.Iota(3, 2).Transposed() // shape (2, 3), strides (1, 2)
	mixed, err := ndslice.Zip2(a, tr)
	require.NoError(err)
	assert.Equal(ndslice.Pair[int, int]{1, 2}, mixed.At(0, 1))
	assert.Equal(ndslice.Pair[int, int]{5, 5}, mixed.At(1, 2))

	_, err = ndslice.Zip2(a, ndslice.Iota(3, 2))
	assert.ErrorIs(err, ndslice.ErrShapeMismatch)

	// Unzip recovers the inputs.
	ua, ub := ndslice.Unzip2(z)
	assert.True(ndslice.Equal(a.Universal(), ua))
	assert.True(ndslice.Equal(b.Universal(), ub))
}

func TestZip2Ptr(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	left := make([]int, 4)
	right := make([]int, 4)
	z, err := ndslice.Zip2Ptr(ndslice.From(left), ndslice.From(right))
	require.NoError(err)

	// The pair components are independent references into each store.
	for i, p := range z.All() {
		*p.First = i
		*p.Second = -i
	}
	assert.Equal([]int{0, 1, 2, 3}, left)
	assert.Equal([]int{0, -1, -2, -3}, right)

	assert.Panics(func() { ndslice.Zip2Ptr(ndslice.Iota(4), ndslice.From(right)) })
}

func TestZip3(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	a := ndslice.Iota(3)
	z, err := ndslice.Zip3(a, a, a)
	require.NoError(err)
	assert.Equal(ndslice.Triple[int, int, int]{2, 2, 2}, z.At(2))
}

func TestCached(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	calls := 0
	expensive := ndslice.FromField[int](field.NewFunc(func(i int) int {
		calls++
		return i * i
	}), 5)

	cache := ndslice.New[int](5)
	flags := ndslice.New[bool](5)
	c, err := ndslice.Cached(expensive, cache, flags)
	require.NoError(err)

	assert.Equal(9, c.At(3))
	assert.Equal(9, c.At(3))
	assert.Equal(1, calls, "the original is computed once per element")

	assert.Equal(16, c.At(4))
	assert.Equal(2, calls)

	// Writing through the view bypasses the original entirely.
	c.Set(100, 0)
	assert.Equal(100, c.At(0))
	assert.Equal(2, calls)

	_, err = ndslice.Cached(expensive, ndslice.New[int](4), flags)
	assert.ErrorIs(err, ndslice.ErrShapeMismatch)
}

func TestIndexed(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	squares := field.NewFunc(func(i int) int { return i * i })
	s := ndslice.Indexed[int](squares, []int{3, 0, 3, 1})
	assert.Equal([]int{9, 0, 9, 1}, s.Collect())
}

func TestCycle(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	base := field.Iota[int]{Start: 1, Step: 1}
	s := ndslice.Cycle[int](base, 3, 7)
	assert.Equal([]int{1, 2, 3, 1, 2, 3, 1}, s.Collect())
}
