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

import "fmt"

// ECARule fires Action when Event occurs, gated by an optional Condition.
type ECARule struct {
	Event     PrimitiveEvent
	Condition Condition // nil when no guard was given
	Action    Action
}

func (ECARule) ruleNode() {}

// Identifier returns the event id this rule reacts to.
func (r ECARule) Identifier() string {
	if t, ok := r.Event.(Trigger); ok {
		return t.ID
	}
	return ""
}

func (r ECARule) String() string {
	if r.Condition != nil {
		return fmt.Sprintf("%s: %s => %s.", r.Event.String(), r.Condition.String(), r.Action.String())
	}
	return fmt.Sprintf("%s => %s.", r.Event.String(), r.Action.String())
}

// CARule fires Action whenever Condition holds. Per spec.md §9 OQ3, every
// CA rule shares the empty-string event identifier — this is a deliberate,
// documented design flag, not an oversight: all CA rules in a node collapse
// into a single handler.
type CARule struct {
	Condition Condition
	Action    Action
}

func (CARule) ruleNode() {}

// Identifier is always the empty string for CA rules (see the doc comment
// on CARule).
func (CARule) Identifier() string { return "" }

func (r CARule) String() string {
	return fmt.Sprintf(":%s => %s.", r.Condition.String(), r.Action.String())
}

// CaseRule executes Action unconditionally, once, when encountered.
type CaseRule struct {
	Action Action
}

func (CaseRule) ruleNode() {}

func (r CaseRule) String() string {
	return fmt.Sprintf("=> %s.", r.Action.String())
}

// FactRule asserts Atomic in the variable store when processed.
type FactRule struct {
	Atomic AtomicCondition
}

func (FactRule) ruleNode() {}

func (r FactRule) String() string {
	return r.Atomic.String() + "."
}

// CCRule declares that, given an optional Premise, Atomic should hold. Not
// interpreted by the engine (spec.md §4.7/§9 OQ2) — parsed, stored, and
// round-tripped only.
type CCRule struct {
	Premise Condition // nil when no premise was given
	Atomic  AtomicCondition
}

func (CCRule) ruleNode() {}

func (r CCRule) String() string {
	if r.Premise != nil {
		return fmt.Sprintf("%s -> %s.", r.Premise.String(), r.Atomic.String())
	}
	return fmt.Sprintf("-> %s.", r.Atomic.String())
}

// CTRule declares that, given an optional Premise, Conclusion should hold.
// Not interpreted by the engine, same as CCRule.
type CTRule struct {
	Premise    Condition // nil when no premise was given
	Conclusion Condition
}

func (CTRule) ruleNode() {}

func (r CTRule) String() string {
	if r.Premise != nil {
		return fmt.Sprintf("%s -o %s.", r.Premise.String(), r.Conclusion.String())
	}
	return fmt.Sprintf("-o %s.", r.Conclusion.String())
}

// IsCase reports whether r is a CaseRule — used by the node bootstrap's
// two-phase rule application (spec.md §4.7) and by store_atomic_condition's
// deferred-case-rule rule (spec.md §4.4/§9).
func IsCase(r Rule) bool {
	_, ok := r.(CaseRule)
	return ok
}

// IsReactive reports whether r is an ECARule or CARule.
func IsReactive(r Rule) bool {
	switch r.(type) {
	case ECARule, CARule:
		return true
	default:
		return false
	}
}

// ConditionAndAction extracts the guard (nil means unconditional) and
// action from a reactive rule. ok is false for any non-reactive rule.
func ConditionAndAction(r Rule) (cond Condition, action Action, ok bool) {
	switch v := r.(type) {
	case ECARule:
		return v.Condition, v.Action, true
	case CARule:
		return v.Condition, v.Action, true
	default:
		return nil, nil, false
	}
}

// EventIdentifier returns the event identifier a reactive rule installs
// its handler under: the trigger id for an ECA rule, the empty string for
// a CA rule (see the doc comment on CARule.Identifier).
func EventIdentifier(r Rule) (id string, ok bool) {
	switch v := r.(type) {
	case ECARule:
		return v.Identifier(), true
	case CARule:
		return v.Identifier(), true
	default:
		return "", false
	}
}
