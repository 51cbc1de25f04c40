package lexer

import (
	"strings"
	"testing"

	"github.com/binaek/cl0/tokens"
	"github.com/stretchr/testify/require"
)

func allKinds(t *testing.T, src string) []tokens.Kind {
	t.Helper()
	l := NewLexer(strings.NewReader(src), "test.cl0")
	var kinds []tokens.Kind
	for {
		tok := l.NextToken()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == tokens.EOF {
			break
		}
	}
	return kinds
}

func TestMultiCharOperators(t *testing.T) {
	kinds := allKinds(t, "=> -> -o")
	require.Equal(t, []tokens.Kind{
		tokens.TokenFatArrow,
		tokens.TokenArrow,
		tokens.TokenArrowO,
		tokens.EOF,
	}, kinds)
}

func TestContextSensitiveDot(t *testing.T) {
	l := NewLexer(strings.NewReader("ns.leaf ."), "test.cl0")

	tok := l.NextToken()
	require.Equal(t, tokens.Ident, tok.Kind)
	require.Equal(t, "ns", tok.Value)

	tok = l.NextToken()
	require.Equal(t, tokens.TokenDot, tok.Kind)

	tok = l.NextToken()
	require.Equal(t, tokens.Ident, tok.Kind)
	require.Equal(t, "leaf", tok.Value)

	tok = l.NextToken()
	require.Equal(t, tokens.TokenEndOfRule, tok.Kind)
}

func TestLineComment(t *testing.T) {
	kinds := allKinds(t, "+a % this is ignored\n+b.")
	require.Equal(t, []tokens.Kind{
		tokens.TokenPlus,
		tokens.Ident,
		tokens.TokenPlus,
		tokens.Ident,
		tokens.TokenEndOfRule,
		tokens.EOF,
	}, kinds)
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	kinds := allKinds(t, "seq par alt and or not as loaded")
	require.Equal(t, []tokens.Kind{
		tokens.KeywordSeq,
		tokens.KeywordPar,
		tokens.KeywordAlt,
		tokens.KeywordAnd,
		tokens.KeywordOr,
		tokens.KeywordNot,
		tokens.KeywordAs,
		tokens.Ident,
		tokens.EOF,
	}, kinds)
}

func TestHashEvent(t *testing.T) {
	kinds := allKinds(t, "#e => +loaded.")
	require.Equal(t, []tokens.Kind{
		tokens.TokenHash,
		tokens.Ident,
		tokens.TokenFatArrow,
		tokens.TokenPlus,
		tokens.Ident,
		tokens.TokenEndOfRule,
		tokens.EOF,
	}, kinds)
}
