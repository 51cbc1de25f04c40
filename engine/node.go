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

// Package engine implements the node kernel (C7) and the condition/action
// evaluator (C8): the component that owns the alias tree, variable store,
// and handler registry, and that dispatches rule processing against them.
package engine

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/binaek/cl0/alias"
	"github.com/binaek/cl0/ast"
	"github.com/binaek/cl0/handler"
	"github.com/binaek/cl0/memo"
	"github.com/binaek/cl0/route"
	"github.com/binaek/cl0/store"
	"github.com/binaek/cl0/trinary"
	"github.com/binaek/cl0/xerr"
)

// conditionCacheTTL bounds how long a memoized get_atomic_condition result
// may be served before being recomputed; every write that could change the
// answer (store_atomic_condition) actively invalidates the affected key,
// so this only shortens the window for a write this node never learns
// about (there are none, single-node) — it exists purely to collapse
// concurrent duplicate reads, not to trade away freshness.
const conditionCacheTTL = 2 * time.Second

// Node is the rule engine kernel: C3 (alias tree), C4 (variable store), C5
// (handler registry), and the C8 evaluator, wired behind the public routes
// new_rules/get_rules.
type Node struct {
	store *store.Store
	tree  *alias.Tree

	handlersMu sync.RWMutex
	handlers   map[string]*handler.Handler

	cache *memo.Memo[trinary.Value]

	rngMu sync.Mutex
	rng   *rand.Rand

	log *slog.Logger

	closedMu sync.RWMutex
	closed   bool

	newRulesRoute *route.Route[[]ast.Rule, []bool]
	getRulesRoute *route.Route[[]string, []ast.RuleWithArgs]
}

// Config tunes the node's routes.
type Config struct {
	Log              *slog.Logger
	DispatchParallel int32 // bound on concurrently executing route handler invocations, see route.New
}

// New builds an empty node with no rules installed. Use NewRules to
// bootstrap it.
func New(cfg Config) (*Node, error) {
	if cfg.Log == nil {
		cfg.Log = slog.Default()
	}
	if cfg.DispatchParallel <= 0 {
		cfg.DispatchParallel = 16
	}

	n := &Node{
		store:    store.New(),
		tree:     alias.NewTree(),
		handlers: make(map[string]*handler.Handler),
		cache:    memo.New[trinary.Value](1024),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		log:      cfg.Log,
	}

	newRulesRoute, err := route.New(n.handleNewRules, cfg.DispatchParallel, cfg.Log)
	if err != nil {
		return nil, err
	}
	getRulesRoute, err := route.New(n.handleGetRules, cfg.DispatchParallel, cfg.Log)
	if err != nil {
		return nil, err
	}
	n.newRulesRoute = newRulesRoute
	n.getRulesRoute = getRulesRoute

	return n, nil
}

// Close stops the node's routes. Any call or notify racing a Close may
// observe ErrNodeDropped.
func (n *Node) Close() {
	n.closedMu.Lock()
	n.closed = true
	n.closedMu.Unlock()
	n.newRulesRoute.Close()
	n.getRulesRoute.Close()
}

func (n *Node) checkAlive() error {
	n.closedMu.RLock()
	defer n.closedMu.RUnlock()
	if n.closed {
		return xerr.ErrNodeDropped()
	}
	return nil
}

// NewRules is the node's public "new_rules" route: it bootstraps (or
// extends) the node with a batch of rules and reports, per spec.md §9 OQ1,
// one bool per input rule (true on success) in input order.
func (n *Node) NewRules(ctx context.Context, rules []ast.Rule) ([]bool, error) {
	if err := n.checkAlive(); err != nil {
		return nil, err
	}
	return n.newRulesRoute.Call(ctx, rules)
}

// GetRules is the node's public "get_rules" route, delegating to the alias
// tree (C3).
func (n *Node) GetRules(ctx context.Context, path []string) ([]ast.RuleWithArgs, error) {
	if err := n.checkAlive(); err != nil {
		return nil, err
	}
	return n.getRulesRoute.Call(ctx, path)
}

func (n *Node) handleGetRules(ctx context.Context, path []string) ([]ast.RuleWithArgs, error) {
	return n.tree.GetRules(path)
}

func (n *Node) handlerFor(id string) (*handler.Handler, bool) {
	n.handlersMu.RLock()
	h, ok := n.handlers[id]
	n.handlersMu.RUnlock()
	if !ok {
		n.log.Debug("handler lookup miss", "id", id)
	}
	return h, ok
}

func (n *Node) handlerOrCreate(id string) *handler.Handler {
	n.handlersMu.RLock()
	h, ok := n.handlers[id]
	n.handlersMu.RUnlock()
	if ok {
		return h
	}

	n.handlersMu.Lock()
	defer n.handlersMu.Unlock()
	if h, ok := n.handlers[id]; ok {
		return h
	}
	h = handler.New(id)
	n.handlers[id] = h
	n.log.Debug("handler created", "id", id)
	return h
}

func (n *Node) randomIndex(count int) int {
	n.rngMu.Lock()
	defer n.rngMu.Unlock()
	return n.rng.Intn(count)
}
