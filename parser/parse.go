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
	"github.com/binaek/cl0/ast"
	"github.com/binaek/cl0/tokens"
)

// ParseProgram parses every rule in the input, in order, stopping at the
// first error.
func (p *Parser) ParseProgram() ([]ast.Rule, error) {
	var rules []ast.Rule
	for p.hasTokens() {
		r := p.parseRule()
		if p.err != nil {
			return nil, p.err
		}
		if r == nil {
			break
		}
		rules = append(rules, r)
	}
	return rules, p.err
}

// ParseRule parses a single rule and the end-of-rule token that terminates
// it. Any input after that token is left unread and is not checked —
// callers that want a whole program should use ParseProgram instead.
func (p *Parser) ParseRule() (ast.Rule, error) {
	r := p.parseRule()
	return r, p.err
}

// parseRule dispatches on the lookahead token to the one rule kind it can
// start: CaseRule on "=>", CARule on ":", an ECARule on any primitive-event
// starter ("#"/"+"/"-"), and otherwise a Fact/CC/CT rule discovered by
// parsing a leading condition (or premise-less "->"/"-o") and inspecting
// what follows it.
func (p *Parser) parseRule() ast.Rule {
	if !p.hasTokens() {
		return nil
	}

	switch {
	case p.canExpect(tokens.TokenFatArrow):
		return p.parseCaseRule()
	case p.canExpect(tokens.PunctColon):
		return p.parseCARule()
	case p.canExpectAnyOf(tokens.TokenHash, tokens.TokenPlus, tokens.TokenMinus):
		return p.parseECARule()
	case p.canExpect(tokens.TokenArrow):
		return p.parsePremiselessCC()
	case p.canExpect(tokens.TokenArrowO):
		return p.parsePremiselessCT()
	default:
		return p.parseFactOrDeclarative()
	}
}

func (p *Parser) parseCaseRule() ast.Rule {
	p.advance() // =>
	action := p.parseAction()
	p.expect(tokens.TokenEndOfRule)
	return ast.CaseRule{Action: action}
}

func (p *Parser) parseCARule() ast.Rule {
	p.advance() // :
	cond := p.parseCondition()
	if !p.expect(tokens.TokenFatArrow) {
		return ast.CARule{Condition: cond}
	}
	action := p.parseAction()
	p.expect(tokens.TokenEndOfRule)
	return ast.CARule{Condition: cond, Action: action}
}

func (p *Parser) parseECARule() ast.Rule {
	event := p.parsePrimitiveEvent()
	switch {
	case p.canExpect(tokens.PunctColon):
		p.advance()
		cond := p.parseCondition()
		if !p.expect(tokens.TokenFatArrow) {
			return ast.ECARule{Event: event, Condition: cond}
		}
		action := p.parseAction()
		p.expect(tokens.TokenEndOfRule)
		return ast.ECARule{Event: event, Condition: cond, Action: action}
	case p.canExpect(tokens.TokenFatArrow):
		p.advance()
		action := p.parseAction()
		p.expect(tokens.TokenEndOfRule)
		return ast.ECARule{Event: event, Action: action}
	default:
		p.errorf("expected ':' or '=>' after event, got %s", p.current.Kind)
		return ast.ECARule{Event: event}
	}
}

func (p *Parser) parsePremiselessCC() ast.Rule {
	p.advance() // ->
	atomic := p.parseAtomicCondition()
	p.expect(tokens.TokenEndOfRule)
	return ast.CCRule{Atomic: atomic}
}

func (p *Parser) parsePremiselessCT() ast.Rule {
	p.advance() // -o
	conclusion := p.parseCondition()
	p.expect(tokens.TokenEndOfRule)
	return ast.CTRule{Conclusion: conclusion}
}

// parseFactOrDeclarative parses a leading Condition and then decides, from
// what follows it, whether the rule is a bare Fact ("AC."), a CC rule
// ("Condition -> AC."), or a CT rule ("Condition -o Condition.").
func (p *Parser) parseFactOrDeclarative() ast.Rule {
	cond := p.parseCondition()

	switch {
	case p.canExpect(tokens.TokenArrow):
		p.advance()
		atomic := p.parseAtomicCondition()
		p.expect(tokens.TokenEndOfRule)
		return ast.CCRule{Premise: cond, Atomic: atomic}
	case p.canExpect(tokens.TokenArrowO):
		p.advance()
		conclusion := p.parseCondition()
		p.expect(tokens.TokenEndOfRule)
		return ast.CTRule{Premise: cond, Conclusion: conclusion}
	case p.canExpect(tokens.TokenEndOfRule):
		p.advance()
		ace, ok := cond.(ast.AtomicConditionExpr)
		if !ok {
			p.errorf("a bare fact must be an atomic condition, got %s", cond)
			return ast.FactRule{}
		}
		return ast.FactRule{Atomic: ace.AC}
	default:
		p.errorf("expected '->', '-o', or end of rule, got %s", p.current.Kind)
		return ast.FactRule{}
	}
}

// parseCondition parses the full condition grammar: disjunction over
// conjunctions over unary (not/atomic/parenthesized) terms — "or" binds
// loosest, "not" tightest.
func (p *Parser) parseCondition() ast.Condition {
	return p.parseDisjunction()
}

func (p *Parser) parseDisjunction() ast.Condition {
	first := p.parseConjunction()
	if !p.canExpect(tokens.KeywordOr) {
		return first
	}
	items := []ast.Condition{first}
	for p.canExpect(tokens.KeywordOr) {
		p.advance()
		items = append(items, p.parseConjunction())
	}
	return ast.Disjunction{Items: items}
}

func (p *Parser) parseConjunction() ast.Condition {
	first := p.parseUnary()
	if !p.canExpect(tokens.KeywordAnd) {
		return first
	}
	items := []ast.Condition{first}
	for p.canExpect(tokens.KeywordAnd) {
		p.advance()
		items = append(items, p.parseUnary())
	}
	return ast.Conjunction{Items: items}
}

func (p *Parser) parseUnary() ast.Condition {
	if p.canExpect(tokens.KeywordNot) {
		p.advance()
		return ast.Not{Inner: p.parseUnary()}
	}
	return p.parseConditionPrimary()
}

func (p *Parser) parseConditionPrimary() ast.Condition {
	if p.canExpect(tokens.PunctLParen) {
		p.advance()
		inner := p.parseCondition()
		p.expect(tokens.PunctRParen)
		return ast.Parens{Inner: inner}
	}
	return ast.AtomicConditionExpr{AC: p.parseAtomicCondition()}
}

// parsePrimitiveEvent parses "#id", "+AC", or "-AC".
func (p *Parser) parsePrimitiveEvent() ast.PrimitiveEvent {
	switch {
	case p.canExpect(tokens.TokenHash):
		p.advance()
		id := p.current
		p.expect(tokens.Ident)
		return ast.Trigger{ID: id.Value}
	case p.canExpect(tokens.TokenPlus):
		p.advance()
		return ast.Production{AC: p.parseAtomicCondition()}
	case p.canExpect(tokens.TokenMinus):
		p.advance()
		return ast.Consumption{AC: p.parseAtomicCondition()}
	default:
		p.errorf("expected a primitive event ('#', '+', or '-'), got %s", p.current.Kind)
		return nil
	}
}

// parseAtomicCondition parses an identifier (a Primitive, or the namespace
// head of a SubCompound if followed directly by a dot) or a brace-delimited
// Compound.
func (p *Parser) parseAtomicCondition() ast.AtomicCondition {
	if p.canExpect(tokens.PunctLCurly) {
		return p.parseCompound()
	}

	if !p.canExpect(tokens.Ident) {
		p.errorf("expected an atomic condition, got %s", p.current.Kind)
		return ast.Primitive{}
	}
	name := p.current.Value
	p.advance()

	if p.canExpect(tokens.TokenDot) {
		p.advance()
		return ast.SubCompound{Namespace: name, Inner: p.parseAtomicCondition()}
	}
	return ast.Primitive{Name: name}
}

func (p *Parser) parseCompound() ast.AtomicCondition {
	p.expect(tokens.PunctLCurly)
	var rules []ast.Rule
	for p.hasTokens() && !p.canExpect(tokens.PunctRCurly) {
		r := p.parseRule()
		if p.err != nil {
			return ast.Compound{Rules: rules}
		}
		if r == nil {
			break
		}
		rules = append(rules, r)
	}
	p.expect(tokens.PunctRCurly)

	if p.canExpect(tokens.KeywordAs) {
		p.advance()
		alias := p.current.Value
		p.expect(tokens.Ident)
		return ast.Compound{Rules: rules, Alias: alias, HasAlias: true}
	}
	return ast.Compound{Rules: rules}
}

// parseAction parses the combinator grammar in precedence order, loosest to
// tightest: sequence (";"/"seq") over alternative ("alt") over parallel
// (","/"par") over a bare primitive-event action. Trailing separators are
// tolerated, matching the surface grammar's forgiving action lists.
func (p *Parser) parseAction() ast.Action {
	return p.parseSequence()
}

func (p *Parser) parseSequence() ast.Action {
	first := p.parseAlternative()
	if !p.canExpectAnyOf(tokens.PunctSemi, tokens.KeywordSeq) {
		return first
	}
	items := []ast.Action{first}
	for p.canExpectAnyOf(tokens.PunctSemi, tokens.KeywordSeq) {
		p.advance()
		if p.isActionTerminator() {
			break // trailing separator
		}
		items = append(items, p.parseAlternative())
	}
	return ast.ActionList{Kind: ast.Sequence, Items: items}
}

func (p *Parser) parseAlternative() ast.Action {
	first := p.parseParallel()
	if !p.canExpect(tokens.KeywordAlt) {
		return first
	}
	items := []ast.Action{first}
	for p.canExpect(tokens.KeywordAlt) {
		p.advance()
		if p.isActionTerminator() {
			break
		}
		items = append(items, p.parseParallel())
	}
	return ast.ActionList{Kind: ast.Alternative, Items: items}
}

func (p *Parser) parseParallel() ast.Action {
	first := p.parsePrimitiveActionTerm()
	if !p.canExpectAnyOf(tokens.PunctComma, tokens.KeywordPar) {
		return first
	}
	items := []ast.Action{first}
	for p.canExpectAnyOf(tokens.PunctComma, tokens.KeywordPar) {
		p.advance()
		if p.isActionTerminator() {
			break
		}
		items = append(items, p.parsePrimitiveActionTerm())
	}
	return ast.ActionList{Kind: ast.Parallel, Items: items}
}

func (p *Parser) parsePrimitiveActionTerm() ast.Action {
	event := p.parsePrimitiveEvent()
	return ast.PrimitiveAction{Event: event}
}

// isActionTerminator reports whether current cannot start another action
// term — used to tolerate a trailing separator right before the rule's
// closing token.
func (p *Parser) isActionTerminator() bool {
	return p.canExpectAnyOf(tokens.TokenEndOfRule, tokens.PunctRCurly, tokens.EOF)
}
