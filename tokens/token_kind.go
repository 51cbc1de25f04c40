// SPDX-License-Identifier: Apache-2.0

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

package tokens

type Kind string

const (
	EOF     Kind = "EOF"
	Error   Kind = "Error"
	Unknown Kind = "Unknown"

	// Literals
	Ident Kind = "Ident"
	Int   Kind = "Int"

	// Keywords
	KeywordSeq Kind = "seq"
	KeywordPar Kind = "par"
	KeywordAlt Kind = "alt"
	KeywordAnd Kind = "and"
	KeywordOr  Kind = "or"
	KeywordNot Kind = "not"
	KeywordAs  Kind = "as"

	// Multi-char operators
	TokenFatArrow Kind = "FatArrow" // =>
	TokenArrow    Kind = "Arrow"    // ->
	TokenArrowO   Kind = "ArrowO"   // -o

	// Single-char operators/punctuation
	TokenHash   Kind = "Hash"  // #
	TokenPlus   Kind = "Plus"  // +
	TokenMinus  Kind = "Minus" // -
	PunctColon  Kind = "Colon" // :
	PunctComma  Kind = "Comma"
	PunctSemi   Kind = "Semicolon"
	PunctLParen Kind = "LeftParen"
	PunctRParen Kind = "RightParen"
	PunctLCurly Kind = "LeftBrace"
	PunctRCurly Kind = "RightBrace"

	// A dot followed by whitespace or end-of-input is end-of-rule; any
	// other dot qualifies a namespace segment.
	TokenDot       Kind = "Dot"
	TokenEndOfRule Kind = "EndOfRule"

	// Comments
	LineComment Kind = "LineComment"
)

// Keywords map for fast lookup.
var keywords = map[string]Kind{
	"seq": KeywordSeq,
	"par": KeywordPar,
	"alt": KeywordAlt,
	"and": KeywordAnd,
	"or":  KeywordOr,
	"not": KeywordNot,
	"as":  KeywordAs,
}

func IsKeyword(str string) (Kind, bool) {
	kind, exists := keywords[str]
	return kind, exists
}

func (k Kind) String() string {
	return string(k)
}
