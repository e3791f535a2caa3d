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

func TestBitwise(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := ndslice.From([]uint8{0b1010_0101, 0b1111_0000})
	bits := ndslice.Bitwise(s)
	assert.Equal([]int{16}, bits.Shape())

	// Least-significant bit first within each word.
	want := []bool{
		true, false, true, false, false, true, false, true,
		false, false, false, false, true, true, true, true,
	}
	assert.Equal(want, bits.Collect())

	// Rows expand independently.
	grid := ndslice.Bitwise(ndslice.Shaped([]uint8{1, 0, 0, 128}, 2, 2))
	assert.Equal([]int{2, 16}, grid.Shape())
	assert.True(grid.At(0, 0))
	assert.True(grid.At(1, 15))
}

func TestBitpack(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := ndslice.From([]uint8{0xAB, 0xCD})
	nibbles := ndslice.Bitpack(s, 4)
	assert.Equal([]int{4}, nibbles.Shape())
	assert.Equal([]uint64{0xB, 0xA, 0xD, 0xC}, nibbles.Collect())

	// Fields may straddle word boundaries.
	wide := ndslice.Bitpack(ndslice.From([]uint16{0x3421, 0x0087, 0xFFEE}), 12)
	assert.Equal([]uint64{0x421, 0x873, 0xE00, 0xFFE}, wide.Collect())

	assert.Panics(func() { ndslice.Bitpack(s, 5) })
}

func TestByteGroup(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	s := ndslice.From([]byte{0x12, 0x34, 0x56, 0x78})
	grouped := ndslice.ByteGroup[uint16](s, 2)
	assert.Equal([]int{2}, grouped.Shape())
	assert.Equal([]uint16{0x1234, 0x5678}, grouped.Collect())

	wide := ndslice.ByteGroup[uint32](s, 4)
	assert.Equal([]uint32{0x12345678}, wide.Collect())

	assert.Panics(func() { ndslice.ByteGroup[uint16](s, 3) })
	assert.Panics(func() { ndslice.ByteGroup[uint16](ndslice.From([]byte{1, 2, 3}), 2) })
}
