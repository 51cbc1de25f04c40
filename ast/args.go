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

import "github.com/binaek/cl0/trinary"

// ReactiveRuleWithArgs carries a reactive rule plus the activation value and
// namespace path it was installed under — the (rule, alias-path) key a
// handler stores, remembering which bundle (if any) the rule came from.
type ReactiveRuleWithArgs struct {
	Rule  Rule // ECARule or CARule
	Value trinary.Value
	Alias []string // nil when the rule was not installed under a compound
}

// FactRuleWithArgs carries a fact rule plus an optional override value.
type FactRuleWithArgs struct {
	Rule  FactRule
	Value *trinary.Value // nil means "use the default for this atomic shape"
}

// RuleWithArgs is the tagged union carried through compound installation:
// a rule plus whatever extra activation/namespace context it picked up.
type RuleWithArgs struct {
	Declarative *CCOrCT
	Case        *CaseRule
	Fact        *FactRuleWithArgs
	Reactive    *ReactiveRuleWithArgs
}

// CCOrCT wraps either declarative rule kind so RuleWithArgs.Declarative can
// hold either without widening Rule itself.
type CCOrCT struct {
	Rule Rule // CCRule or CTRule
}

// Rule converts a RuleWithArgs back to a bare Rule, discarding the
// activation value and namespace path — the inverse of NewRuleWithArgs.
func (rwa RuleWithArgs) Rule() Rule {
	switch {
	case rwa.Declarative != nil:
		return rwa.Declarative.Rule
	case rwa.Case != nil:
		return *rwa.Case
	case rwa.Fact != nil:
		return rwa.Fact.Rule
	case rwa.Reactive != nil:
		return rwa.Reactive.Rule
	default:
		return nil
	}
}

// NewRuleWithArgs lifts a bare Rule into a RuleWithArgs, defaulting a
// reactive rule's activation to True with no alias, and a fact rule's
// override value to unset — mirroring the original implementation's
// From<Rule> for RuleWithArgs.
func NewRuleWithArgs(r Rule) RuleWithArgs {
	switch v := r.(type) {
	case CCRule:
		return RuleWithArgs{Declarative: &CCOrCT{Rule: v}}
	case CTRule:
		return RuleWithArgs{Declarative: &CCOrCT{Rule: v}}
	case CaseRule:
		return RuleWithArgs{Case: &v}
	case FactRule:
		return RuleWithArgs{Fact: &FactRuleWithArgs{Rule: v, Value: nil}}
	case ECARule:
		return RuleWithArgs{Reactive: &ReactiveRuleWithArgs{Rule: v, Value: trinary.True}}
	case CARule:
		return RuleWithArgs{Reactive: &ReactiveRuleWithArgs{Rule: v, Value: trinary.True}}
	default:
		return RuleWithArgs{}
	}
}
