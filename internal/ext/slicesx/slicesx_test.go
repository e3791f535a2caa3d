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

package slicesx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/ndslice/internal/ext/slicesx"
)

func TestGet(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := []int{1, 2, 3}
	v, ok := slicesx.Get(s, 1)
	assert.True(ok)
	assert.Equal(2, v)

	_, ok = slicesx.Get(s, -1)
	assert.False(ok)
	_, ok = slicesx.Get(s, 3)
	assert.False(ok)

	assert.Nil(slicesx.GetPointer(s, 5))
	*slicesx.GetPointer(s, 0) = 9
	assert.Equal(9, s[0])

	last, ok := slicesx.Last(s)
	assert.True(ok)
	assert.Equal(3, last)
	_, ok = slicesx.Last([]int{})
	assert.False(ok)
}

func TestShapeHelpers(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal(24, slicesx.Product([]int{2, 3, 4}))
	assert.Equal(1, slicesx.Product(nil), "the empty product is 1")

	assert.True(slicesx.HasZero([]int{2, 0, 4}))
	assert.False(slicesx.HasZero([]int{2, 3}))

	assert.True(slicesx.AllNonNegative([]int{0, 1}))
	assert.False(slicesx.AllNonNegative([]int{1, -1}))

	assert.True(slicesx.IsPermutation([]int{2, 0, 1}))
	assert.False(slicesx.IsPermutation([]int{0, 0, 1}))
	assert.False(slicesx.IsPermutation([]int{0, 3}))

	assert.Equal([]int{12, 4, 1}, slicesx.RowMajor([]int{2, 3, 4}))
	assert.Equal([]int{1}, slicesx.RowMajor([]int{7}))
}
