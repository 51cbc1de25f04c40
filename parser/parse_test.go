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

package parser

import (
	"testing"

	"github.com/binaek/cl0/ast"
	"github.com/stretchr/testify/require"
)

func TestParser_Programs(t *testing.T) {
	for _, tc := range programTests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewParserFromString(tc.src, tc.name)
			rules, err := p.ParseProgram()
			require.NoError(t, err)
			require.Len(t, rules, tc.count)
		})
	}
}

var programTests = []struct {
	name  string
	src   string
	count int
}{
	{name: "fact", src: `sun.`, count: 1},
	{name: "eca-no-condition", src: `#click => +loaded.`, count: 1},
	{name: "eca-with-condition", src: `#click: loaded => +done.`, count: 1},
	{name: "ca-rule", src: `:loaded => +done.`, count: 1},
	{name: "case-rule", src: `=> +done.`, count: 1},
	{name: "cc-with-premise", src: `loaded -> done.`, count: 1},
	{name: "cc-premiseless", src: `-> done.`, count: 1},
	{name: "ct-with-premise", src: `loaded -o done and ready.`, count: 1},
	{name: "ct-premiseless", src: `-o done or ready.`, count: 1},
	{name: "multiple-rules", src: "a.\nb.\nc.\n", count: 3},
	{
		name:  "compound-with-alias",
		src:   `#start => +{ a. b. } as bundle.`,
		count: 1,
	},
}

func TestParser_ConditionPrecedence(t *testing.T) {
	// "not" binds tighter than "and", which binds tighter than "or":
	// "a or b and not c" groups as Disjunction[a, Conjunction[b, Not[c]]].
	p := NewParserFromString(`:a or b and not c => +done.`, "precedence")
	rules, err := p.ParseProgram()
	require.NoError(t, err)
	require.Len(t, rules, 1)

	ca, ok := rules[0].(ast.CARule)
	require.True(t, ok)

	or, ok := ca.Condition.(ast.Disjunction)
	require.True(t, ok)
	require.Len(t, or.Items, 2)

	and, ok := or.Items[1].(ast.Conjunction)
	require.True(t, ok)
	require.Len(t, and.Items, 2)
	require.IsType(t, ast.Not{}, and.Items[1])
}

func TestParser_ActionCombinatorPrecedence(t *testing.T) {
	// Parallel binds tightest, then alternative, then sequence loosest:
	// "#a, #b alt #c; #d" groups as Sequence[ Alternative[ Parallel[a,b], c ], d ].
	p := NewParserFromString(`#trigger => #a, #b alt #c; #d.`, "action-precedence")
	rules, err := p.ParseProgram()
	require.NoError(t, err)
	require.Len(t, rules, 1)

	eca, ok := rules[0].(ast.ECARule)
	require.True(t, ok)

	seq, ok := eca.Action.(ast.ActionList)
	require.True(t, ok)
	require.Equal(t, ast.Sequence, seq.Kind)
	require.Len(t, seq.Items, 2)

	alt, ok := seq.Items[0].(ast.ActionList)
	require.True(t, ok)
	require.Equal(t, ast.Alternative, alt.Kind)
	require.Len(t, alt.Items, 2)

	par, ok := alt.Items[0].(ast.ActionList)
	require.True(t, ok)
	require.Equal(t, ast.Parallel, par.Kind)
	require.Len(t, par.Items, 2)
}

func TestParser_SubCompoundNamespace(t *testing.T) {
	p := NewParserFromString(`ns.child.`, "subcompound")
	rules, err := p.ParseProgram()
	require.NoError(t, err)
	require.Len(t, rules, 1)

	fact, ok := rules[0].(ast.FactRule)
	require.True(t, ok)

	sc, ok := fact.Atomic.(ast.SubCompound)
	require.True(t, ok)
	require.Equal(t, "ns", sc.Namespace)
	require.Equal(t, ast.Primitive{Name: "child"}, sc.Inner)
}

func TestParser_EmptyAlternativeIsNotAParseConcern(t *testing.T) {
	// An Alternative with zero choices cannot arise from the grammar (the
	// term before the first "alt" is always required; a trailing "alt" is
	// tolerated and yields a one-item list) — EmptyAlternativeError is
	// raised by the evaluator, not the parser, for an ActionList built
	// with no items.
	p := NewParserFromString(`#go => #a alt #b.`, "alt")
	rules, err := p.ParseProgram()
	require.NoError(t, err)
	require.Len(t, rules, 1)
}

func TestParser_RoundTripsToSource(t *testing.T) {
	for _, src := range []string{
		"#click => +loaded.",
		":loaded => +done.",
		"loaded -> done.",
		"loaded -o done and ready.",
	} {
		p := NewParserFromString(src, "roundtrip")
		rules, err := p.ParseProgram()
		require.NoError(t, err)
		require.Len(t, rules, 1)
		require.Equal(t, src, rules[0].String())
	}
}
