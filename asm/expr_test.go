package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	assert.NoError(asm.Symbols.Insert("FOO", Symbol{Kind: SYMBOL_CONST, Value: 5}))
	assert.NoError(asm.Symbols.Insert("buf", Symbol{Kind: SYMBOL_DATA, Value: 9, Size: 4, Location: 0x200}))
	assert.NoError(asm.Symbols.Insert("reg", Symbol{Kind: SYMBOL_REGISTER, Location: 3}))

	table := []struct {
		expr  string
		value int
		err   error
	}{
		{"42", 42, nil},
		{"FOO", 5, nil},
		{"buf", 0x200, nil},
		{"buf+1", 0x201, nil},
		{"FOO + 2 * 3", 21, nil},
		{"10 - 2 - 3", 5, nil},
		{"7 / 2", 3, nil},
		{"2 * FOO / 3", 3, nil},
		{"1 / 0", 0, ErrDivideByZero},
		{"reg", 0, ErrWrongSymbolKind},
		{"nope", 0, ErrUndeclared},
		{"FOO +", 0, ErrUnexpectedToken},
		{"FOO FOO", 0, ErrUnexpectedToken},
		{"FOO * ,", 0, ErrUnexpectedToken},
	}

	for _, entry := range table {
		value, err := asm.evaluate(Tokenize(entry.expr))
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.expr)
			continue
		}
		assert.NoError(err, entry.expr)
		assert.Equal(entry.value, value, entry.expr)
	}
}

func TestEvaluateComma(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	assert.NoError(asm.Symbols.Insert("FOO", Symbol{Kind: SYMBOL_CONST, Value: 5}))

	tokens := Tokenize("FOO + 1, 3")
	value, err := asm.evaluate(tokens)
	assert.NoError(err)
	assert.Equal(6, value)

	tok, ok := tokens.Peek()
	assert.True(ok)
	assert.Equal(TOKEN_COMMA, tok.Kind)
}

func TestEvaluateSize(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	assert.NoError(asm.Symbols.Insert("FOO", Symbol{Kind: SYMBOL_CONST, Value: 5}))

	size, err := asm.evaluateSize(Token{Kind: TOKEN_SIZE, Text: "FOO*2"})
	assert.NoError(err)
	assert.Equal(10, size)

	_, err = asm.evaluateSize(Token{Kind: TOKEN_SIZE, Text: "0 - 1"})
	assert.ErrorIs(err, ErrImmediateRange)

	_, err = asm.evaluateSize(Token{Kind: TOKEN_SIZE, Text: "1, 2"})
	assert.ErrorIs(err, ErrTrailingTokens)
}
