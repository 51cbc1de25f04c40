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

package handler

import (
	"context"
	"testing"

	"github.com/binaek/cl0/ast"
	"github.com/binaek/cl0/trinary"
	"github.com/stretchr/testify/require"
)

func eca(action ast.Action) ast.ECARule {
	return ast.ECARule{Event: ast.Trigger{ID: "go"}, Action: action}
}

func TestHandler_AggregatedState(t *testing.T) {
	h := New("go")
	require.Equal(t, trinary.Conflict, h.AggregatedState()) // no rules yet

	require.NoError(t, h.NewRule(ast.ReactiveRuleWithArgs{Rule: eca(ast.PrimitiveAction{Event: ast.Trigger{ID: "a"}}), Value: trinary.True}))
	require.Equal(t, trinary.True, h.AggregatedState()) // uniform

	require.NoError(t, h.NewRule(ast.ReactiveRuleWithArgs{Rule: eca(ast.PrimitiveAction{Event: ast.Trigger{ID: "b"}}), Value: trinary.False}))
	require.Equal(t, trinary.True, h.AggregatedState()) // mixed, any True wins

	require.NoError(t, h.NewRule(ast.ReactiveRuleWithArgs{Rule: eca(ast.PrimitiveAction{Event: ast.Trigger{ID: "c"}}), Value: trinary.Conflict}))
	require.Equal(t, trinary.True, h.AggregatedState()) // still any True wins
}

func TestHandler_GetRulesFiltersFalseUnlessAll(t *testing.T) {
	h := New("go")
	require.NoError(t, h.NewRule(ast.ReactiveRuleWithArgs{Rule: eca(ast.PrimitiveAction{Event: ast.Trigger{ID: "a"}}), Value: trinary.True}))
	require.NoError(t, h.NewRule(ast.ReactiveRuleWithArgs{Rule: eca(ast.PrimitiveAction{Event: ast.Trigger{ID: "b"}}), Value: trinary.False}))

	require.Len(t, h.GetRules(false), 1)
	require.Len(t, h.GetRules(true), 2)
}

func TestHandler_NewRuleOverwritesSameKey(t *testing.T) {
	h := New("go")
	rule := eca(ast.PrimitiveAction{Event: ast.Trigger{ID: "a"}})
	require.NoError(t, h.NewRule(ast.ReactiveRuleWithArgs{Rule: rule, Value: trinary.True}))
	require.NoError(t, h.NewRule(ast.ReactiveRuleWithArgs{Rule: rule, Value: trinary.False}))

	rules := h.GetRules(true)
	require.Len(t, rules, 1)
	require.Equal(t, trinary.False, rules[0].Value)
}

func TestHandler_ProcessActionSkipsFalseAndConflict(t *testing.T) {
	h := New("go")
	fired := 0

	mkRule := func(id string, status trinary.Value) {
		require.NoError(t, h.NewRule(ast.ReactiveRuleWithArgs{
			Rule:  ast.CARule{Condition: ast.AtomicConditionExpr{AC: ast.Primitive{Name: id}}, Action: ast.PrimitiveAction{Event: ast.Trigger{ID: id}}},
			Value: status,
		}))
	}
	mkRule("true-rule", trinary.True)
	mkRule("false-rule", trinary.False)
	mkRule("conflict-rule", trinary.Conflict)

	evaluate := func(ctx context.Context, cond ast.Condition) (bool, error) { return true, nil }
	fire := func(ctx context.Context, action ast.Action) error { fired++; return nil }

	ok, err := h.ProcessAction(context.Background(), evaluate, fire)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, fired)
}
