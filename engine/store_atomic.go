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
	"strings"

	"github.com/binaek/cl0/ast"
	"github.com/binaek/cl0/trinary"
	"github.com/binaek/cl0/xerr"
)

func cacheKey(ac ast.AtomicCondition, namespace []string) string {
	return strings.Join(namespace, ".") + "::" + ac.String()
}

func appendPath(namespace []string, segment string) []string {
	out := make([]string, 0, len(namespace)+1)
	out = append(out, namespace...)
	out = append(out, segment)
	return out
}

// storeAtomicCondition is the variable/alias writer, spec.md §4.4.
func (n *Node) storeAtomicCondition(ctx context.Context, ac ast.AtomicCondition, status trinary.Value, namespace []string, overrideEntries bool) (bool, error) {
	n.cache.Delete(cacheKey(ac, namespace))

	switch v := ac.(type) {
	case ast.Primitive:
		if err := n.store.Set(v.Name, status); err != nil {
			return false, err
		}
		return true, nil

	case ast.Compound:
		targetPath := namespace
		if v.HasAlias {
			targetPath = appendPath(namespace, v.Alias)
		}

		if len(targetPath) > 0 {
			rwaList := make([]ast.RuleWithArgs, 0, len(v.Rules))
			for _, r := range v.Rules {
				rwaList = append(rwaList, withCompoundArgs(r, status, targetPath))
			}
			if _, err := n.tree.CreateRules(targetPath, rwaList, overrideEntries); err != nil {
				return false, err
			}
		}

		for _, r := range v.Rules {
			if ast.IsCase(r) {
				continue // deferred to the caller, not fired here
			}
			rwa := withCompoundArgs(r, status, targetPath)
			if len(targetPath) == 0 {
				rwa = withCompoundArgs(r, status, nil)
			}
			if err := n.ProcessRule(ctx, rwa); err != nil {
				return false, err
			}
		}
		return true, nil

	case ast.SubCompound:
		return n.storeAtomicCondition(ctx, v.Inner, status, appendPath(namespace, v.Namespace), overrideEntries)

	default:
		return false, xerr.ErrInvalidInvocation("unknown atomic condition shape %T", ac)
	}
}

// withCompoundArgs converts a bare rule into the rule-with-args carrying
// the status and target path a compound's installation assigns it
// (spec.md §4.4).
func withCompoundArgs(r ast.Rule, status trinary.Value, path []string) ast.RuleWithArgs {
	switch v := r.(type) {
	case ast.ECARule, ast.CARule:
		return ast.RuleWithArgs{Reactive: &ast.ReactiveRuleWithArgs{Rule: r, Value: status, Alias: path}}
	case ast.FactRule:
		st := status
		return ast.RuleWithArgs{Fact: &ast.FactRuleWithArgs{Rule: v, Value: &st}}
	case ast.CaseRule:
		return ast.RuleWithArgs{Case: &v}
	case ast.CCRule, ast.CTRule:
		return ast.RuleWithArgs{Declarative: &ast.CCOrCT{Rule: r}}
	default:
		return ast.NewRuleWithArgs(r)
	}
}

// getAtomicCondition resolves an atomic condition's ternary activation,
// memoized per spec.md §4.6a's cost concerns; every write that could
// change the answer invalidates the same cache key, so a cache hit is
// never older than the most recent store_atomic_condition on this key.
func (n *Node) getAtomicCondition(ctx context.Context, ac ast.AtomicCondition, namespace []string) (trinary.Value, error) {
	return n.cache.Get(ctx, cacheKey(ac, namespace), conditionCacheTTL, func(ctx context.Context, _ string) (trinary.Value, error) {
		return n.computeAtomicCondition(ctx, ac, namespace)
	})
}

func (n *Node) computeAtomicCondition(ctx context.Context, ac ast.AtomicCondition, namespace []string) (trinary.Value, error) {
	switch v := ac.(type) {
	case ast.Primitive:
		return n.store.Get(v.Name), nil

	case ast.Compound:
		path := namespace
		if v.HasAlias {
			path = appendPath(namespace, v.Alias)
		}
		if len(path) == 0 {
			return trinary.Conflict, xerr.ErrNamespaceMissing(nil)
		}

		installed, err := n.tree.GetRules(path)
		if err != nil {
			return trinary.Conflict, err
		}
		intersection := intersectByRule(installed, v.Rules)

		sawConflict, sawFalse := false, false
		for _, rwa := range intersection {
			if rwa.Reactive == nil {
				continue
			}
			id, ok := ast.EventIdentifier(rwa.Reactive.Rule)
			if !ok {
				continue
			}
			h, ok := n.handlerFor(id)
			if !ok {
				continue
			}
			key, err := ast.NewRuleKey(rwa.Reactive.Rule, rwa.Reactive.Alias)
			if err != nil {
				return trinary.Conflict, err
			}
			status, ok := h.StatusOf(key)
			if !ok {
				continue
			}
			switch status {
			case trinary.Conflict:
				sawConflict = true
			case trinary.False:
				sawFalse = true
			}
		}
		switch {
		case sawConflict:
			return trinary.Conflict, nil
		case sawFalse:
			return trinary.False, nil
		default:
			return trinary.True, nil
		}

	case ast.SubCompound:
		return n.computeAtomicCondition(ctx, v.Inner, appendPath(namespace, v.Namespace))

	default:
		return trinary.Conflict, xerr.ErrInvalidInvocation("unknown atomic condition shape %T", ac)
	}
}

// intersectByRule keeps only the installed rules whose underlying Rule is
// structurally equal to one the caller declared.
func intersectByRule(installed []ast.RuleWithArgs, declared []ast.Rule) []ast.RuleWithArgs {
	declaredHashes := make(map[uint64]struct{}, len(declared))
	for _, r := range declared {
		h, err := ast.Hash(r)
		if err != nil {
			continue
		}
		declaredHashes[h] = struct{}{}
	}

	var out []ast.RuleWithArgs
	for _, rwa := range installed {
		h, err := ast.Hash(rwa.Rule())
		if err != nil {
			continue
		}
		if _, ok := declaredHashes[h]; ok {
			out = append(out, rwa)
		}
	}
	return out
}

// getAliasRules resolves the bundle of rules addressed by ac under
// namespace, per spec.md §4.6's get_alias_rules.
func (n *Node) getAliasRules(ac ast.AtomicCondition, namespace []string) ([]ast.Rule, []string, error) {
	switch v := ac.(type) {
	case ast.Primitive:
		fullPath := appendPath(namespace, v.Name)
		installed, err := n.tree.GetRules(fullPath)
		if err != nil {
			return nil, fullPath, err
		}
		return toBareRules(installed), fullPath, nil

	case ast.Compound:
		if len(namespace) == 0 {
			return nil, nil, xerr.ErrNamespaceMissing(nil)
		}
		installed, err := n.tree.GetRules(namespace)
		if err != nil {
			return nil, namespace, err
		}
		return toBareRules(intersectByRule(installed, v.Rules)), namespace, nil

	case ast.SubCompound:
		return n.getAliasRules(v.Inner, appendPath(namespace, v.Namespace))

	default:
		return nil, namespace, xerr.ErrInvalidInvocation("unknown atomic condition shape %T", ac)
	}
}

func toBareRules(rwas []ast.RuleWithArgs) []ast.Rule {
	out := make([]ast.Rule, 0, len(rwas))
	for _, rwa := range rwas {
		out = append(out, rwa.Rule())
	}
	return out
}
