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
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/ndslice"
)

func TestParallelEach(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	data := make([]int, 4*8)
	s := ndslice.Shaped(data, 4, 8)

	// Each section is a disjoint view, so writes need no locking.
	err := ndslice.ParallelEach(context.Background(), 2, s,
		func(i int, sub ndslice.Slice[ndslice.Contiguous, int]) error {
			sub.Fill(i + 1)
			return nil
		})
	require.NoError(err)
	for row := range 4 {
		assert.Equal(row+1, s.At(row, 0))
		assert.Equal(row+1, s.At(row, 7))
	}

	// Reductions over sections compose with atomics on the caller side.
	var total atomic.Int64
	err = ndslice.ParallelEach(context.Background(), 0, ndslice.Iota(6, 5),
		func(_ int, sub ndslice.Slice[ndslice.Contiguous, int]) error {
			sum := 0
			for v := range sub.Values() {
				sum += v
			}
			total.Add(int64(sum))
			return nil
		})
	require.NoError(err)
	assert.Equal(int64(29*30/2), total.Load())
}

func TestParallelEachError(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	boom := errors.New("boom")
	err := ndslice.ParallelEach(context.Background(), 4, ndslice.Iota(8, 2),
		func(i int, _ ndslice.Slice[ndslice.Contiguous, int]) error {
			if i == 3 {
				return boom
			}
			return nil
		})
	assert.ErrorIs(err, boom)

	// A cancelled context stops the fan-out.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = ndslice.ParallelEach(ctx, 1, ndslice.Iota(8, 2),
		func(int, ndslice.Slice[ndslice.Contiguous, int]) error { return nil })
	assert.ErrorIs(err, context.Canceled)
}