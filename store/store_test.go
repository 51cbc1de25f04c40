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

package store

import (
	"sync"
	"testing"

	"github.com/binaek/cl0/trinary"
	"github.com/stretchr/testify/require"
)

func TestStore_GetMissingIsConflict(t *testing.T) {
	s := New()
	require.Equal(t, trinary.Conflict, s.Get("never-seen"))
	require.False(t, s.Has("never-seen"))
}

func TestStore_SetAndGet(t *testing.T) {
	s := New()
	require.NoError(t, s.Set("a", trinary.True))
	require.Equal(t, trinary.True, s.Get("a"))
	require.True(t, s.Has("a"))

	require.NoError(t, s.Set("a", trinary.False))
	require.Equal(t, trinary.False, s.Get("a"))
}

func TestStore_SetRejectsConflict(t *testing.T) {
	s := New()
	err := s.Set("a", trinary.Conflict)
	require.Error(t, err)
	require.False(t, s.Has("a"))
}

func TestStore_ConcurrentAccessIsSafe(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_ = s.Set("shared", trinary.True)
			} else {
				_ = s.Get("shared")
			}
		}(i)
	}
	wg.Wait()
}
