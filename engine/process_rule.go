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

	"github.com/binaek/cl0/ast"
	"github.com/binaek/cl0/trinary"
)

// ProcessRule applies one rule-with-args to the node, per spec.md §4.7.
func (n *Node) ProcessRule(ctx context.Context, rwa ast.RuleWithArgs) error {
	switch {
	case rwa.Reactive != nil:
		return n.processReactive(*rwa.Reactive)
	case rwa.Case != nil:
		_, err := n.processAction(ctx, rwa.Case.Action)
		return err
	case rwa.Fact != nil:
		return n.processFact(ctx, *rwa.Fact)
	case rwa.Declarative != nil:
		// Accepted and carried through round-trip; not yet interpreted.
		return nil
	default:
		return nil
	}
}

func (n *Node) processReactive(rwa ast.ReactiveRuleWithArgs) error {
	id, ok := ast.EventIdentifier(rwa.Rule)
	if !ok {
		return nil
	}
	h := n.handlerOrCreate(id)
	return h.NewRule(rwa)
}

// processFact asserts rule.Atomic with rule.Value if set, or the kind
// default otherwise: True for a primitive, False for a compound or
// sub-compound. The override flag is always true for Fact rules.
func (n *Node) processFact(ctx context.Context, rwa ast.FactRuleWithArgs) error {
	var status trinary.Value
	if rwa.Value != nil {
		status = *rwa.Value
	} else {
		status = factDefault(rwa.Rule.Atomic)
	}
	_, err := n.storeAtomicCondition(ctx, rwa.Rule.Atomic, status, nil, true)
	return err
}

func factDefault(ac ast.AtomicCondition) trinary.Value {
	if _, ok := ac.(ast.Primitive); ok {
		return trinary.True
	}
	return trinary.False
}
