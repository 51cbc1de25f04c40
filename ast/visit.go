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

package ast

// Visit recursively walks r and every node reachable from it (conditions,
// actions, atomic conditions, and — for compounds — the rules they bundle),
// calling f on each node encountered, r included.
func Visit(r Rule, f func(Node)) {
	f(r)
	switch v := r.(type) {
	case ECARule:
		visitEvent(v.Event, f)
		if v.Condition != nil {
			visitCondition(v.Condition, f)
		}
		visitAction(v.Action, f)
	case CARule:
		visitCondition(v.Condition, f)
		visitAction(v.Action, f)
	case CaseRule:
		visitAction(v.Action, f)
	case FactRule:
		visitAtomic(v.Atomic, f)
	case CCRule:
		if v.Premise != nil {
			visitCondition(v.Premise, f)
		}
		visitAtomic(v.Atomic, f)
	case CTRule:
		if v.Premise != nil {
			visitCondition(v.Premise, f)
		}
		visitCondition(v.Conclusion, f)
	}
}

func visitCondition(c Condition, f func(Node)) {
	f(c)
	switch v := c.(type) {
	case AtomicConditionExpr:
		visitAtomic(v.AC, f)
	case Not:
		visitCondition(v.Inner, f)
	case Parens:
		visitCondition(v.Inner, f)
	case Conjunction:
		for _, it := range v.Items {
			visitCondition(it, f)
		}
	case Disjunction:
		for _, it := range v.Items {
			visitCondition(it, f)
		}
	}
}

func visitAction(a Action, f func(Node)) {
	f(a)
	switch v := a.(type) {
	case PrimitiveAction:
		visitEvent(v.Event, f)
	case ActionList:
		for _, it := range v.Items {
			visitAction(it, f)
		}
	}
}

func visitEvent(e PrimitiveEvent, f func(Node)) {
	f(e)
	switch v := e.(type) {
	case Production:
		visitAtomic(v.AC, f)
	case Consumption:
		visitAtomic(v.AC, f)
	}
}

func visitAtomic(ac AtomicCondition, f func(Node)) {
	f(ac)
	switch v := ac.(type) {
	case Compound:
		for _, r := range v.Rules {
			Visit(r, f)
		}
	case SubCompound:
		visitAtomic(v.Inner, f)
	}
}

// CollectAtomics returns every AtomicCondition node reachable from rules,
// in traversal order, including duplicates — used by the node bootstrap to
// seed the variable store and alias tree before any rule is applied
// (spec.md §4.7 step 1).
func CollectAtomics(rules []Rule) []AtomicCondition {
	var out []AtomicCondition
	for _, r := range rules {
		Visit(r, func(n Node) {
			if ac, ok := n.(AtomicCondition); ok {
				out = append(out, ac)
			}
		})
	}
	return out
}
