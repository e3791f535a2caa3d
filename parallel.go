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
	"context"
	"errors"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"
)

// ParallelEach applies fn to every section of the outermost dimension of
// s, at most parallelism at a time. Section i is s.Slice(i, i+1): the
// sections are disjoint views over the store, so fn may write through them
// without synchronizing. A parallelism of zero or less uses
// [runtime.GOMAXPROCS].
//
// The core types carry no synchronization of their own; this helper is the
// sanctioned way to fan work out over a slice.
func ParallelEach[K Kind, T any](ctx context.Context, parallelism int64, s Slice[K, T], fn func(i int, sub Slice[K, T]) error) error {
	if parallelism <= 0 {
		parallelism = int64(runtime.GOMAXPROCS(-1))
	}

	sem := semaphore.NewWeighted(parallelism)
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i := range s.Len() {
		if err := sem.Acquire(ctx, 1); err != nil {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			if err := fn(i, s.Slice(i, i+1)); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return errors.Join(errs...)
}
