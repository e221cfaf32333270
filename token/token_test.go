/*
File    : loxgo/token/token_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tok := New(PLUS, "+", 3)
	assert.Equal(t, PLUS, tok.Kind)
	assert.Equal(t, "+", tok.Lexeme)
	assert.Nil(t, tok.Literal)
	assert.Equal(t, 3, tok.Line)
}

func TestNewLiteral(t *testing.T) {
	tok := NewLiteral(NUMBER, "12.5", 12.5, 1)
	assert.Equal(t, NUMBER, tok.Kind)
	assert.Equal(t, 12.5, tok.Literal)
}

func TestKeywordsCoverage(t *testing.T) {
	for word, kind := range Keywords {
		tok := New(kind, word, 1)
		assert.Equal(t, kind, tok.Kind)
	}
	assert.Len(t, Keywords, 16)
}

func TestString(t *testing.T) {
	tok := New(SEMICOLON, ";", 1)
	assert.Equal(t, ";:;", tok.String())
}
