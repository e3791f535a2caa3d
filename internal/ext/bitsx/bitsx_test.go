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

package bitsx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/ndslice/internal/ext/bitsx"
)

func TestLen64(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal(uint(0), bitsx.Len64(nil))
	assert.Equal(uint(0), bitsx.Len64([]uint64{0, 0}))
	assert.Equal(uint(3), bitsx.Len64([]uint64{7}))
	assert.Equal(uint(65), bitsx.Len64([]uint64{7, 1}))
	assert.Equal(uint(64), bitsx.Len64([]uint64{^uint64(0), 0}), "high zeros are ignored")
}

func TestDecimalDigits(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// The bound never undercounts: 2^64 - 1 has 20 digits.
	assert.GreaterOrEqual(bitsx.DecimalDigits(64), uint(20))
	assert.Equal(uint(1), bitsx.DecimalDigits(0))
	// And it stays tight: no more than one digit of slack at word sizes.
	assert.LessOrEqual(bitsx.DecimalDigits(64), uint(21))
}
