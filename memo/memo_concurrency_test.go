// Copyright 2025 Binaek Sarkar
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package memo

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Concurrent Get calls for the same key must rendezvous on a single loader
// invocation (singleflight), the same guarantee engine relies on so two
// goroutines racing to evaluate a compound's status don't double-poll every
// handler in the intersection.
func TestMemo_ConcurrentGetsSingleflight(t *testing.T) {
	m := New[int](8)
	var calls int32
	release := make(chan struct{})
	loader := func(ctx context.Context, key string) (int, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return 42, nil
	}

	const goroutines = 20
	var wg sync.WaitGroup
	results := make([]int, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := m.Get(context.Background(), "k", time.Minute, loader)
			require.NoError(t, err)
			results[i] = v
		}(i)
	}

	// give every goroutine a chance to reach the cv.Wait before releasing
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	require.EqualValues(t, 1, atomic.LoadInt32(&calls), "only one goroutine should have called the loader")
	for _, v := range results {
		require.Equal(t, 42, v)
	}
}

// Concurrent operations across distinct keys must not corrupt the LRU list
// or freelist.
func TestMemo_ConcurrentDistinctKeysStayIndependent(t *testing.T) {
	m := New[string](64)
	loader := func(ctx context.Context, key string) (string, error) {
		return key, nil
	}

	const keys = 50
	var wg sync.WaitGroup
	for i := 0; i < keys; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i%26))
			_, err := m.Get(context.Background(), key, time.Minute, loader)
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 26; i++ {
		key := string(rune('a' + i))
		v, ok := m.Peek(key)
		require.True(t, ok)
		require.Equal(t, key, v)
	}
}

// Concurrent Delete and Get on the same key must never deadlock or panic,
// regardless of interleaving.
func TestMemo_ConcurrentGetAndDeleteDoNotRace(t *testing.T) {
	m := New[int](4)
	loader := func(ctx context.Context, key string) (int, error) {
		return 1, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.Get(context.Background(), "k", time.Millisecond, loader)
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Delete("k")
		}()
	}
	wg.Wait()
}
