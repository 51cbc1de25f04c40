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

package alias

import (
	"sync"
	"testing"

	"github.com/binaek/cl0/ast"
	"github.com/stretchr/testify/require"
)

func fact(name string) ast.RuleWithArgs {
	return ast.NewRuleWithArgs(ast.FactRule{Atomic: ast.Primitive{Name: name}})
}

func TestTree_GetRulesMissingNamespace(t *testing.T) {
	tree := NewTree()
	_, err := tree.GetRules([]string{"nope"})
	require.Error(t, err)
}

func TestTree_CreateAndGetRules(t *testing.T) {
	tree := NewTree()
	prev, err := tree.CreateRules([]string{"bundle"}, []ast.RuleWithArgs{fact("a"), fact("b")}, false)
	require.NoError(t, err)
	require.Nil(t, prev)

	rules, err := tree.GetRules([]string{"bundle"})
	require.NoError(t, err)
	require.Len(t, rules, 2)
}

func TestTree_CreateRulesUnionDedupesAndPreservesOrder(t *testing.T) {
	tree := NewTree()
	_, err := tree.CreateRules([]string{"bundle"}, []ast.RuleWithArgs{fact("a"), fact("b")}, false)
	require.NoError(t, err)

	prev, err := tree.CreateRules([]string{"bundle"}, []ast.RuleWithArgs{fact("b"), fact("c")}, false)
	require.NoError(t, err)
	require.Len(t, prev, 2)

	rules, err := tree.GetRules([]string{"bundle"})
	require.NoError(t, err)
	require.Len(t, rules, 3)
	require.Equal(t, "a", rules[0].Fact.Rule.Atomic.(ast.Primitive).Name)
	require.Equal(t, "b", rules[1].Fact.Rule.Atomic.(ast.Primitive).Name)
	require.Equal(t, "c", rules[2].Fact.Rule.Atomic.(ast.Primitive).Name)
}

func TestTree_CreateRulesOverrideReplaces(t *testing.T) {
	tree := NewTree()
	_, err := tree.CreateRules([]string{"bundle"}, []ast.RuleWithArgs{fact("a")}, false)
	require.NoError(t, err)

	prev, err := tree.CreateRules([]string{"bundle"}, []ast.RuleWithArgs{fact("z")}, true)
	require.NoError(t, err)
	require.Len(t, prev, 1)

	rules, err := tree.GetRules([]string{"bundle"})
	require.NoError(t, err)
	require.Len(t, rules, 1)
	require.Equal(t, "z", rules[0].Fact.Rule.Atomic.(ast.Primitive).Name)
}

func TestTree_NestedPathCreatesIntermediateNodes(t *testing.T) {
	tree := NewTree()
	_, err := tree.CreateRules([]string{"a", "b", "c"}, []ast.RuleWithArgs{fact("leaf")}, false)
	require.NoError(t, err)

	_, err = tree.GetRules([]string{"a", "b"})
	require.NoError(t, err) // intermediate node exists, even with no rules of its own

	rules, err := tree.GetRules([]string{"a", "b", "c"})
	require.NoError(t, err)
	require.Len(t, rules, 1)
}

func TestTree_ConcurrentCreateIsSafe(t *testing.T) {
	tree := NewTree()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := "same"
			_, _ = tree.CreateRules([]string{name}, []ast.RuleWithArgs{fact("x")}, false)
		}(i)
	}
	wg.Wait()

	rules, err := tree.GetRules([]string{"same"})
	require.NoError(t, err)
	require.Len(t, rules, 1) // every racer inserted the same fact; dedupe collapses to one
}
