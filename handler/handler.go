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

// Package handler implements the node's event handler registry (spec.md
// §4.5): one Handler per event identifier, holding a map from
// (rule, alias-path) to activation status.
package handler

import (
	"context"
	"sync"

	"github.com/binaek/cl0/ast"
	"github.com/binaek/cl0/trinary"
	"github.com/pkg/errors"
)

// ConditionEvaluator evaluates a reactive rule's condition against current
// node state. A nil condition (an unconditional ECA rule) always holds.
type ConditionEvaluator func(ctx context.Context, cond ast.Condition) (bool, error)

// ActionFirer fires a rule's action as a new case rule, re-entering the
// node kernel's process_rule route.
type ActionFirer func(ctx context.Context, action ast.Action) error

// Handler is one event identifier's set of installed reactive rules.
type Handler struct {
	ID string

	mu      sync.Mutex
	entries map[ast.RuleKey]ast.ReactiveRuleWithArgs
	order   []ast.RuleKey
}

func New(id string) *Handler {
	return &Handler{
		ID:      id,
		entries: make(map[ast.RuleKey]ast.ReactiveRuleWithArgs),
	}
}

// NewRule inserts a rule, or overwrites the status of one already present
// under the same (rule, alias) key. Documented as never failing by
// spec.md §4.5; the only failure mode here is a hashing error, which we
// still surface rather than hide.
func (h *Handler) NewRule(rwa ast.ReactiveRuleWithArgs) error {
	key, err := ast.NewRuleKey(rwa.Rule, rwa.Alias)
	if err != nil {
		return errors.Wrap(err, "keying rule for handler")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.entries[key]; !exists {
		h.order = append(h.order, key)
	}
	h.entries[key] = rwa
	return nil
}

// GetRules returns every installed rule if all is true, otherwise only
// those whose status is not False.
func (h *Handler) GetRules(all bool) []ast.ReactiveRuleWithArgs {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]ast.ReactiveRuleWithArgs, 0, len(h.order))
	for _, key := range h.order {
		rwa := h.entries[key]
		if !all && rwa.Value == trinary.False {
			continue
		}
		out = append(out, rwa)
	}
	return out
}

// StatusOf returns the stored status for a specific (rule, alias) key, as
// currently held by the handler — the authoritative answer to "ask its
// handler for that rule's stored status" (spec.md §4.6a), which may differ
// from whatever status the alias tree's own copy of the rule was installed
// with if it has since been updated via NewRule.
func (h *Handler) StatusOf(key ast.RuleKey) (trinary.Value, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	rwa, ok := h.entries[key]
	if !ok {
		return trinary.Conflict, false
	}
	return rwa.Value, true
}

// AggregatedState is: the shared status if every entry agrees; else True
// if any entry is True; else False if any entry is False; else Conflict.
func (h *Handler) AggregatedState() trinary.Value {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) == 0 {
		return trinary.Conflict
	}

	var first trinary.Value
	uniform := true
	sawTrue, sawFalse := false, false
	for i, key := range h.order {
		v := h.entries[key].Value
		if i == 0 {
			first = v
		} else if v != first {
			uniform = false
		}
		switch v {
		case trinary.True:
			sawTrue = true
		case trinary.False:
			sawFalse = true
		}
	}
	if uniform {
		return first
	}
	if sawTrue {
		return trinary.True
	}
	if sawFalse {
		return trinary.False
	}
	return trinary.Conflict
}

// ProcessAction evaluates every True-status rule's condition and, where it
// holds, fires its action; False and Conflict rules are skipped. Returns
// the conjunction of per-rule successes, aborting at the first error.
func (h *Handler) ProcessAction(ctx context.Context, evaluate ConditionEvaluator, fire ActionFirer) (bool, error) {
	snapshot := h.snapshotTrueEntries()

	result := true
	for _, rwa := range snapshot {
		cond, action, ok := ast.ConditionAndAction(rwa.Rule)
		if !ok {
			continue
		}
		holds := true
		if cond != nil {
			var err error
			holds, err = evaluate(ctx, cond)
			if err != nil {
				return false, err
			}
		}
		if !holds {
			continue
		}
		if err := fire(ctx, action); err != nil {
			return false, err
		}
	}
	return result, nil
}

func (h *Handler) snapshotTrueEntries() []ast.ReactiveRuleWithArgs {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]ast.ReactiveRuleWithArgs, 0, len(h.order))
	for _, key := range h.order {
		rwa := h.entries[key]
		if rwa.Value == trinary.True {
			out = append(out, rwa)
		}
	}
	return out
}
