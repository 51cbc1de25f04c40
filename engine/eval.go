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

package engine

import (
	"context"
	"sync"

	"github.com/binaek/cl0/ast"
	"github.com/binaek/cl0/trinary"
	"github.com/binaek/cl0/xerr"
)

// evaluateCondition is the recursive condition evaluator, spec.md §4.6.
// A nil condition (an unconditional reactive rule) always holds.
func (n *Node) evaluateCondition(ctx context.Context, cond ast.Condition) (bool, error) {
	if cond == nil {
		return true, nil
	}
	switch v := cond.(type) {
	case ast.AtomicConditionExpr:
		val, err := n.getAtomicCondition(ctx, v.AC, nil)
		if err != nil {
			return false, err
		}
		return val == trinary.True, nil

	case ast.Not:
		inner, err := n.evaluateCondition(ctx, v.Inner)
		if err != nil {
			return false, err
		}
		return !inner, nil

	case ast.Parens:
		return n.evaluateCondition(ctx, v.Inner)

	case ast.Conjunction:
		for _, item := range v.Items {
			ok, err := n.evaluateCondition(ctx, item)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil

	case ast.Disjunction:
		for _, item := range v.Items {
			ok, err := n.evaluateCondition(ctx, item)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil

	default:
		return false, xerr.ErrInvalidInvocation("unknown condition shape %T", cond)
	}
}

// processAction evaluates an action, spec.md §4.6's process_action(action).
func (n *Node) processAction(ctx context.Context, action ast.Action) (bool, error) {
	switch v := action.(type) {
	case ast.PrimitiveAction:
		return n.processPrimitiveEvent(ctx, v.Event)
	case ast.ActionList:
		switch v.Kind {
		case ast.Sequence:
			return n.processSequence(ctx, v.Items)
		case ast.Parallel:
			return n.processParallel(ctx, v.Items)
		case ast.Alternative:
			return n.processAlternative(ctx, v.Items)
		}
	}
	return false, xerr.ErrInvalidInvocation("unknown action shape %T", action)
}

// processSequence dispatches every item as a separate concurrent task, in
// textual order, with no wait between dispatches (spec.md I5: Aᵢ's first
// suspension precedes Aⱼ's for j > i). Completion order is unconstrained;
// the conjunction of results is returned, in textual order, so "first
// error" means first by dispatch order, not by arrival.
func (n *Node) processSequence(ctx context.Context, items []ast.Action) (bool, error) {
	results := make([]error, len(items))
	oks := make([]bool, len(items))
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item ast.Action) {
			defer wg.Done()
			ok, err := n.processAction(ctx, item)
			oks[i], results[i] = ok, err
		}(i, item)
	}
	wg.Wait()
	all := true
	for i, err := range results {
		if err != nil {
			return false, err
		}
		all = all && oks[i]
	}
	return all, nil
}

// processParallel holds every item at a rendezvous barrier until all have
// arrived, then releases them simultaneously (spec.md: "all start together
// after the barrier").
func (n *Node) processParallel(ctx context.Context, items []ast.Action) (bool, error) {
	results := make([]error, len(items))
	ready := make(chan struct{}, len(items))
	release := make(chan struct{})

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item ast.Action) {
			defer wg.Done()
			ready <- struct{}{}
			<-release
			_, err := n.processAction(ctx, item)
			results[i] = err
		}(i, item)
	}
	for range items {
		<-ready
	}
	close(release)
	wg.Wait()

	for _, err := range results {
		if err != nil {
			return false, err
		}
	}
	return true, nil
}

// processAlternative uniformly picks exactly one item from a process-local
// random source and runs it; an empty list is a parse-time impossibility
// for a well-formed AST but is still guarded against here.
func (n *Node) processAlternative(ctx context.Context, items []ast.Action) (bool, error) {
	if len(items) == 0 {
		return false, xerr.ErrEmptyAlternative()
	}
	idx := n.randomIndex(len(items))
	return n.processAction(ctx, items[idx])
}

func (n *Node) processPrimitiveEvent(ctx context.Context, ev ast.PrimitiveEvent) (bool, error) {
	switch v := ev.(type) {
	case ast.Trigger:
		return n.processTrigger(ctx, v)
	case ast.Production:
		return n.processProduction(ctx, v)
	case ast.Consumption:
		return n.processConsumption(ctx, v)
	default:
		return false, xerr.ErrInvalidInvocation("unknown primitive event shape %T", ev)
	}
}

// processTrigger fires a handler's reactive rules for a bare event name.
// Per spec.md §4.6: no handler for id is a hard failure; otherwise the
// handler's own aggregated state gates whether its process_action route
// runs at all (True), is a silent no-op (False, inactive event), or is a
// silent no-op (Conflict, ambiguous — do nothing).
func (n *Node) processTrigger(ctx context.Context, t ast.Trigger) (bool, error) {
	h, ok := n.handlerFor(t.ID)
	if !ok {
		return false, xerr.ErrInvalidAction(t.ID)
	}
	if h.AggregatedState() != trinary.True {
		return true, nil
	}
	return h.ProcessAction(ctx, n.evaluateCondition, n.fireAsCase)
}

// fireAsCase re-enters the node kernel's rule processing route with action
// wrapped as a fresh case rule, the mechanism by which a handler's fired
// reactive-rule actions and a Production/Consumption's bundle case rules
// are actually executed.
func (n *Node) fireAsCase(ctx context.Context, action ast.Action) error {
	return n.ProcessRule(ctx, ast.NewRuleWithArgs(ast.CaseRule{Action: action}))
}

// processProduction asserts AC true. If AC resolves via alias-rule lookup
// to a known bundle, the bundle's case rules are fired after the store;
// otherwise this is a plain assignment of AC to True (spec.md §4.6).
func (n *Node) processProduction(ctx context.Context, p ast.Production) (bool, error) {
	rules, _, lookupErr := n.getAliasRules(p.AC, nil)

	ok, err := n.storeAtomicCondition(ctx, p.AC, trinary.True, nil, true)
	if err != nil {
		return false, err
	}
	if lookupErr == nil {
		if err := n.fireCaseRules(ctx, rules); err != nil {
			return false, err
		}
	}
	return ok, nil
}

// processConsumption is processProduction's mirror: asserts AC false, and
// preserves union-merge semantics at the namespace leaf by not overriding
// existing entries.
func (n *Node) processConsumption(ctx context.Context, c ast.Consumption) (bool, error) {
	rules, _, lookupErr := n.getAliasRules(c.AC, nil)

	ok, err := n.storeAtomicCondition(ctx, c.AC, trinary.False, nil, false)
	if err != nil {
		return false, err
	}
	if lookupErr == nil {
		if err := n.fireCaseRules(ctx, rules); err != nil {
			return false, err
		}
	}
	return ok, nil
}

func (n *Node) fireCaseRules(ctx context.Context, rules []ast.Rule) error {
	for _, r := range rules {
		if !ast.IsCase(r) {
			continue
		}
		if err := n.ProcessRule(ctx, ast.NewRuleWithArgs(r)); err != nil {
			return err
		}
	}
	return nil
}
