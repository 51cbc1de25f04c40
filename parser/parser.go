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

// Package parser turns CL0 surface text into the ast package's Rule tree.
package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/binaek/cl0/lexer"
	"github.com/binaek/cl0/tokens"
	"github.com/binaek/cl0/xerr"
)

// Parser is a two-token-lookahead recursive-descent parser over a Lexer.
type Parser struct {
	lexer     *lexer.Lexer
	reference string

	current tokens.Instance
	next    tokens.Instance
	atEOF   bool

	err error
}

// NewParser creates a parser reading from input, reporting filename in
// error ranges.
func NewParser(input io.Reader, filename string) *Parser {
	p := &Parser{
		lexer:     lexer.NewLexer(input, filename),
		reference: filename,
	}
	p.advance()
	p.advance()
	return p
}

// NewParserFromString is a convenience wrapper around NewParser for
// in-memory source text.
func NewParserFromString(input, filename string) *Parser {
	return NewParser(strings.NewReader(input), filename)
}

func (p *Parser) head() tokens.Instance {
	return p.current
}

// advance shifts the lookahead window forward one token and returns the
// token that was current before the shift.
func (p *Parser) advance() tokens.Instance {
	if p.atEOF {
		return tokens.Err(p.current.Range, "cannot advance, already at EOF")
	}
	if p.current.IsOfKind(tokens.Error) {
		p.errorf("%s", p.current.Value)
		return p.current
	}
	current := p.current
	p.current = p.next
	if p.current.Kind == tokens.EOF {
		p.atEOF = true
		return current
	}
	p.next = p.lexer.NextToken()
	return current
}

// expect advances past current if it has the given kind, recording a
// ParseError (spec.md §7) and leaving current unchanged otherwise.
func (p *Parser) expect(kind tokens.Kind) bool {
	if p.current.Kind != kind {
		p.err = errors.Join(p.err, xerr.ErrParse(p.current.Range, string(kind), string(p.current.Kind)))
		return false
	}
	p.advance()
	return true
}

func (p *Parser) canExpect(kind tokens.Kind) bool {
	return p.current.Kind == kind
}

func (p *Parser) canExpectAnyOf(kinds ...tokens.Kind) bool {
	for _, kind := range kinds {
		if p.current.Kind == kind {
			return true
		}
	}
	return false
}

func (p *Parser) hasTokens() bool {
	return !p.atEOF
}

func (p *Parser) peek() tokens.Instance {
	if p.atEOF {
		return tokens.Instance{Kind: tokens.EOF}
	}
	return p.next
}

// errorf records a formatted parse error anchored at the current token's
// range, joining with any error already recorded.
func (p *Parser) errorf(format string, args ...any) {
	format = "parsing error at %s: " + format
	args = append([]any{p.current.Range.String()}, args...)
	p.err = errors.Join(p.err, fmt.Errorf(format, args...))
}
