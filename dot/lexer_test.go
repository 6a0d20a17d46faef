package dot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotlayout/dotlayout/dot"
)

func allTokens(src string) []dot.TokenKind {
	l := dot.NewLexer(src)
	var kinds []dot.TokenKind
	for {
		tok := l.NextToken()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == dot.TokEOF || tok.Kind == dot.TokError {
			return kinds
		}
	}
}

func TestLexerRecognizesKeywordsAndPunctuation(t *testing.T) {
	t.Parallel()

	kinds := allTokens(`digraph { a -> b [label="x"] }`)
	require.Equal(t, []dot.TokenKind{
		dot.TokDigraphKW, dot.TokOpenBrace,
		dot.TokIdentifier, dot.TokArrowRight, dot.TokIdentifier,
		dot.TokOpenBracket, dot.TokIdentifier, dot.TokEqual, dot.TokIdentifier, dot.TokCloseBracket,
		dot.TokCloseBrace, dot.TokEOF,
	}, kinds)
}

func TestLexerDistinguishesArrowLineFromArrowRight(t *testing.T) {
	t.Parallel()

	l := dot.NewLexer("a -- b -> c")
	kinds := []dot.TokenKind{}
	for {
		tok := l.NextToken()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == dot.TokEOF {
			break
		}
	}
	assert.Contains(t, kinds, dot.TokArrowLine)
	assert.Contains(t, kinds, dot.TokArrowRight)
}

func TestLexerSkipsLineAndBlockComments(t *testing.T) {
	t.Parallel()

	kinds := allTokens("a // comment\n-> /* block\ncomment */ b")
	assert.Equal(t, []dot.TokenKind{dot.TokIdentifier, dot.TokArrowRight, dot.TokIdentifier, dot.TokEOF}, kinds)
}

func TestLexerReadsQuotedStringWithEscapes(t *testing.T) {
	t.Parallel()

	l := dot.NewLexer(`"hello\nworld"`)
	tok := l.NextToken()
	require.Equal(t, dot.TokIdentifier, tok.Kind)
	assert.Equal(t, "hello\nworld", tok.Text)
}

func TestLexerReadsNegativeNumberAfterDash(t *testing.T) {
	t.Parallel()

	l := dot.NewLexer("-12.5")
	tok := l.NextToken()
	require.Equal(t, dot.TokIdentifier, tok.Kind)
	assert.Equal(t, "-12.5", tok.Text)
}
