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

// handleNewRules backs the new_rules route. Per spec.md §4.7:
//  1. every atomic condition mentioned anywhere in rules is seeded False.
//  2. rules are partitioned into non-case and case.
//  3. non-case rules are applied first, populating handlers/aliases/facts.
//  4. case rules are applied against the now-fully-populated node.
//
// The two-phase application matters: a case rule's trigger may name a
// handler a later reactive rule would install; applying non-case rules
// first guarantees every handler exists before any case rule fires.
func (n *Node) handleNewRules(ctx context.Context, rules []ast.Rule) ([]bool, error) {
	for _, ac := range ast.CollectAtomics(rules) {
		if _, err := n.storeAtomicCondition(ctx, ac, trinary.False, nil, false); err != nil {
			n.log.Debug("bootstrap: seeding atomic condition failed", "atomic", ac.String(), "error", err)
		}
	}

	results := make([]bool, len(rules))
	var nonCase, caseIdx []int
	for i, r := range rules {
		if ast.IsCase(r) {
			caseIdx = append(caseIdx, i)
		} else {
			nonCase = append(nonCase, i)
		}
	}

	for _, i := range nonCase {
		err := n.ProcessRule(ctx, ast.NewRuleWithArgs(rules[i]))
		results[i] = err == nil
		if err != nil {
			n.log.Debug("bootstrap: non-case rule failed", "rule", rules[i].String(), "error", err)
		}
	}
	for _, i := range caseIdx {
		err := n.ProcessRule(ctx, ast.NewRuleWithArgs(rules[i]))
		results[i] = err == nil
		if err != nil {
			n.log.Debug("bootstrap: case rule failed", "rule", rules[i].String(), "error", err)
		}
	}

	return results, nil
}
