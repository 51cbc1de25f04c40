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

// Package route implements the node's message route (spec.md §4.1): an
// unbounded FIFO carrying requests to a single handler closure, exposing
// notify (fire-and-forget) and call (wait for a reply) over the same
// queue. Route values are cheaply clonable — all clones feed the same
// queue.
package route

import (
	"context"
	"log/slog"
	"sync"

	"github.com/binaek/cl0/xerr"
	"github.com/google/uuid"
	"github.com/jackc/puddle/v2"
	"github.com/pkg/errors"
)

// Handler processes one request and produces a result.
type Handler[Req, Res any] func(ctx context.Context, req Req) (Res, error)

type envelope[Req, Res any] struct {
	id    string
	req   Req
	reply chan result[Res] // nil for notify
}

type result[Res any] struct {
	value Res
	err   error
}

// Route is the shared state backing every clone: a growable FIFO, a
// background dispatcher goroutine, and a bounded pool of concurrent
// in-flight handler invocations.
type Route[Req, Res any] struct {
	handler Handler[Req, Res]
	log     *slog.Logger

	mu     sync.Mutex
	cond   *sync.Cond
	queue  []envelope[Req, Res]
	closed bool

	pool *puddle.Pool[struct{}]
}

// New starts a route's background dispatcher. concurrency bounds how many
// handler invocations may run at once — the route itself still spawns one
// task per message in enqueue order (spec.md §4.1); concurrency only
// bounds how many of those tasks may be *executing* simultaneously.
func New[Req, Res any](handler Handler[Req, Res], concurrency int32, log *slog.Logger) (*Route[Req, Res], error) {
	if log == nil {
		log = slog.Default()
	}
	pool, err := puddle.NewPool(&puddle.Config[struct{}]{
		Constructor: func(context.Context) (struct{}, error) { return struct{}{}, nil },
		Destructor:  func(struct{}) {},
		MaxSize:     concurrency,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating route dispatch pool")
	}

	r := &Route[Req, Res]{
		handler: handler,
		log:     log,
		pool:    pool,
	}
	r.cond = sync.NewCond(&r.mu)
	go r.dispatchLoop()
	return r, nil
}

// Notify enqueues req without waiting for the result. A failure to enqueue
// (the route has been closed) is silently dropped, per spec.md §4.1.
func (r *Route[Req, Res]) Notify(req Req) {
	r.enqueue(envelope[Req, Res]{id: uuid.NewString(), req: req})
}

// Call enqueues req together with a reply slot and blocks until the
// handler completes or ctx is done.
func (r *Route[Req, Res]) Call(ctx context.Context, req Req) (Res, error) {
	var zero Res
	env := envelope[Req, Res]{id: uuid.NewString(), req: req, reply: make(chan result[Res], 1)}
	if !r.enqueue(env) {
		return zero, xerr.ErrTransport("route is closed")
	}
	select {
	case res := <-env.reply:
		return res.value, res.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Close stops the dispatcher. Already-queued messages are still drained;
// no new message is accepted afterwards.
func (r *Route[Req, Res]) Close() {
	r.mu.Lock()
	r.closed = true
	r.cond.Broadcast()
	r.mu.Unlock()
}

func (r *Route[Req, Res]) enqueue(env envelope[Req, Res]) bool {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return false
	}
	r.queue = append(r.queue, env)
	r.cond.Signal()
	r.mu.Unlock()
	return true
}

// dispatchLoop consumes the queue strictly in enqueue order, spawning one
// task per message — dispatch order is preserved, completion order is not.
func (r *Route[Req, Res]) dispatchLoop() {
	for {
		r.mu.Lock()
		for len(r.queue) == 0 && !r.closed {
			r.cond.Wait()
		}
		if len(r.queue) == 0 && r.closed {
			r.mu.Unlock()
			return
		}
		env := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()

		go r.run(env)
	}
}

func (r *Route[Req, Res]) run(env envelope[Req, Res]) {
	ctx := context.Background()
	res, err := r.pool.Acquire(ctx)
	if err != nil {
		r.deliver(env, result[Res]{err: errors.Wrap(err, "acquiring route dispatch slot")})
		return
	}
	defer res.Release()

	value, err := r.handler(ctx, env.req)
	if err != nil {
		r.log.Debug("route handler failed", "message_id", env.id, "error", err)
	}
	r.deliver(env, result[Res]{value: value, err: err})
}

func (r *Route[Req, Res]) deliver(env envelope[Req, Res], res result[Res]) {
	if env.reply == nil {
		return
	}
	env.reply <- res
}
