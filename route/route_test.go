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

package route

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRoute_CallReturnsHandlerResult(t *testing.T) {
	r, err := New(func(ctx context.Context, req int) (int, error) {
		return req * 2, nil
	}, 4, nil)
	require.NoError(t, err)
	defer r.Close()

	res, err := r.Call(context.Background(), 21)
	require.NoError(t, err)
	require.Equal(t, 42, res)
}

func TestRoute_NotifyDoesNotBlockOnHandler(t *testing.T) {
	var processed int32
	r, err := New(func(ctx context.Context, req int) (int, error) {
		atomic.AddInt32(&processed, 1)
		return req, nil
	}, 2, nil)
	require.NoError(t, err)
	defer r.Close()

	for i := 0; i < 10; i++ {
		r.Notify(i)
	}

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&processed) == 10
	}, time.Second, time.Millisecond)
}

func TestRoute_CallAfterCloseErrors(t *testing.T) {
	r, err := New(func(ctx context.Context, req int) (int, error) { return req, nil }, 1, nil)
	require.NoError(t, err)
	r.Close()

	_, err = r.Call(context.Background(), 1)
	require.Error(t, err)
}
