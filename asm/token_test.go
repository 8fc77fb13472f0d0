package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		text  string
		value uint16
		ok    bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"+42", 42, true},
		{"-1", 0xffff, true},
		{"-5", 0xfffb, true},
		{"0x1F", 0x1f, true},
		{"0X1f", 0x1f, true},
		{"017", 0o17, true},
		{"70000", 70000 & 0xffff, true},
		{"0x", 0, false},
		{"0x-1", 0, false},
		{"0x+1", 0, false},
		{"08", 0, false},
		{"0-1", 0, false},
		{"3000000000", 0, false},
		{"12ab", 0, false},
		{"1_000", 0, false},
		{"", 0, false},
	}

	for _, entry := range table {
		value, ok := parseNumber(entry.text)
		assert.Equal(entry.ok, ok, entry.text)
		assert.Equal(entry.value, value, entry.text)
	}
}

func TestNewToken(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		text  string
		token Token
	}{
		{"add", Token{Kind: TOKEN_INSTRUCTION, Text: "add"}},
		{"nop", Token{Kind: TOKEN_INSTRUCTION, Text: "nop"}},
		{"djnz", Token{Kind: TOKEN_MACRO, Text: "djnz"}},
		{"0x10", Token{Kind: TOKEN_NUMBER, Text: "0x10", Value: 16}},
		{".reg", Token{Kind: TOKEN_REGISTER, Text: ".reg"}},
		{".const", Token{Kind: TOKEN_CONST, Text: ".const"}},
		{".data", Token{Kind: TOKEN_DATA, Text: ".data"}},
		{"process", Token{Kind: TOKEN_PROCESS, Text: "process"}},
		{"endprocess", Token{Kind: TOKEN_ENDPROCESS, Text: "endprocess"}},
		{"loop:", Token{Kind: TOKEN_LABEL, Text: "loop"}},
		{`"hello world"`, Token{Kind: TOKEN_STRING, Text: "hello world", Value: 11}},
		{`'abc'`, Token{Kind: TOKEN_STRING, Text: "abc", Value: 3}},
		{`""`, Token{Kind: TOKEN_STRING, Text: "", Value: 0}},
		{"[FOO+2]", Token{Kind: TOKEN_SIZE, Text: "FOO+2"}},
		{"(ptr)", Token{Kind: TOKEN_INDIRECTION, Text: "ptr"}},
		{"_name9", Token{Kind: TOKEN_IDENTIFIER, Text: "_name9"}},
		{",", Token{Kind: TOKEN_COMMA, Text: ","}},
		{"*", Token{Kind: TOKEN_OPERATOR, Text: "*"}},
		{"-", Token{Kind: TOKEN_OPERATOR, Text: "-"}},
		{"9lives", Token{Kind: TOKEN_NONE, Text: "9lives"}},
		{"%", Token{Kind: TOKEN_NONE, Text: "%"}},
		{"worker.a", Token{Kind: TOKEN_NONE, Text: "worker.a"}},
	}

	for _, entry := range table {
		assert.Equal(entry.token, NewToken(entry.text), entry.text)
	}
}

func kinds(tokens *Tokens) (list []TokenKind) {
	for _, tok := range tokens.List() {
		list = append(list, tok.Kind)
	}
	return
}

func TestTokenize(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		line  string
		kinds []TokenKind
	}{
		{"add (a), b, c", []TokenKind{TOKEN_INSTRUCTION, TOKEN_INDIRECTION, TOKEN_COMMA, TOKEN_IDENTIFIER, TOKEN_COMMA, TOKEN_IDENTIFIER}},
		{`.data s "hello, world"`, []TokenKind{TOKEN_DATA, TOKEN_IDENTIFIER, TOKEN_STRING}},
		{".data b [FOO + 2]", []TokenKind{TOKEN_DATA, TOKEN_IDENTIFIER, TOKEN_SIZE}},
		{"FOO+2", []TokenKind{TOKEN_IDENTIFIER, TOKEN_OPERATOR, TOKEN_NUMBER}},
		{"x -1", []TokenKind{TOKEN_IDENTIFIER, TOKEN_NUMBER}},
		{"x - 1", []TokenKind{TOKEN_IDENTIFIER, TOKEN_OPERATOR, TOKEN_NUMBER}},
		{"x-1", []TokenKind{TOKEN_IDENTIFIER, TOKEN_OPERATOR, TOKEN_NUMBER}},
		{"loop: jmp loop", []TokenKind{TOKEN_LABEL, TOKEN_MACRO, TOKEN_IDENTIFIER}},
		{"process worker.a", []TokenKind{TOKEN_PROCESS, TOKEN_NONE}},
		{"", nil},
	}

	for _, entry := range table {
		assert.Equal(entry.kinds, kinds(Tokenize(entry.line)), entry.line)
	}

	tokens := Tokenize("ldi a, -1")
	list := tokens.List()
	assert.Equal(4, len(list))
	assert.Equal(Token{Kind: TOKEN_NUMBER, Text: "-1", Value: 0xffff}, list[3])

	tokens = Tokenize(`.data s "hello, world"`)
	list = tokens.List()
	assert.Equal("hello, world", list[2].Text)
	assert.Equal(12, list[2].Value)
}

func TestTokens(t *testing.T) {
	assert := assert.New(t)

	tokens := Tokenize("a, 1")
	assert.True(tokens.More())

	tok, ok := tokens.Peek()
	assert.True(ok)
	assert.Equal(TOKEN_IDENTIFIER, tok.Kind)

	tok, err := tokens.Expect(TOKEN_IDENTIFIER)
	assert.NoError(err)
	assert.Equal("a", tok.Text)

	_, err = tokens.Expect(TOKEN_NUMBER)
	assert.ErrorIs(err, ErrUnexpectedToken)

	tokens.Back()
	_, err = tokens.Expect(TOKEN_COMMA)
	assert.NoError(err)

	err = tokens.End()
	assert.ErrorIs(err, ErrTrailingTokens)

	_, err = tokens.Expect(TOKEN_NUMBER)
	assert.NoError(err)
	assert.False(tokens.More())
	assert.NoError(tokens.End())

	_, err = tokens.Expect(TOKEN_NUMBER)
	assert.ErrorIs(err, ErrUnexpectedToken)

	tokens = Tokenize("%")
	_, err = tokens.Expect(TOKEN_IDENTIFIER)
	assert.ErrorIs(err, ErrLexical)
}
