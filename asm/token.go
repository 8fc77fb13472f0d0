package asm

import (
	"regexp"
	"strconv"
	"strings"
)

// TokenKind is the classification of a source token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_NONE        = TokenKind(0)  // none
	TOKEN_IDENTIFIER  = TokenKind(1)  // identifier
	TOKEN_INSTRUCTION = TokenKind(2)  // instruction
	TOKEN_MACRO       = TokenKind(3)  // macro
	TOKEN_NUMBER      = TokenKind(4)  // number
	TOKEN_REGISTER    = TokenKind(5)  // .reg
	TOKEN_CONST       = TokenKind(6)  // .const
	TOKEN_DATA        = TokenKind(7)  // .data
	TOKEN_PROCESS     = TokenKind(8)  // process
	TOKEN_ENDPROCESS  = TokenKind(9)  // endprocess
	TOKEN_LABEL       = TokenKind(10) // label
	TOKEN_STRING      = TokenKind(11) // string
	TOKEN_SIZE        = TokenKind(12) // size
	TOKEN_INDIRECTION = TokenKind(13) // indirection
	TOKEN_COMMA       = TokenKind(14) // comma
	TOKEN_OPERATOR    = TokenKind(15) // operator
)

// Token is a classified piece of a source line.
//
// Text holds the meaningful part of the token: the label name without
// its colon, the contents of a string, the expression inside a size
// bracket, or the name inside an indirection.
// Value holds the 16-bit value of a number, or the length of a string.
type Token struct {
	Kind  TokenKind
	Text  string
	Value int
}

var keywordMap = map[string]TokenKind{
	".reg":       TOKEN_REGISTER,
	".const":     TOKEN_CONST,
	".data":      TOKEN_DATA,
	"process":    TOKEN_PROCESS,
	"endprocess": TOKEN_ENDPROCESS,
}

var (
	labelPattern       = regexp.MustCompile(`^(\w+\s*):$`)
	stringPattern      = regexp.MustCompile(`"(.*?)"|'(.*?)'`)
	sizePattern        = regexp.MustCompile(`\[((?s).*)\]`)
	indirectionPattern = regexp.MustCompile(`\((\w*?)\)`)
	identifierPattern  = regexp.MustCompile(`^[_a-zA-Z]+[_a-zA-Z0-9]*$`)
)

// parseNumber parses a hex (0x), octal (leading 0) or signed decimal
// literal. The whole text must be consumed, and the value must fit in
// 32 bits. The result is truncated to 16 bits.
func parseNumber(text string) (value uint16, ok bool) {
	base := 10
	digits := text
	switch {
	case len(text) > 1 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X'):
		base, digits = 16, text[2:]
	case len(text) > 1 && text[0] == '0':
		base, digits = 8, text[1:]
	}

	if base != 10 && (len(digits) == 0 || digits[0] == '+' || digits[0] == '-') {
		return
	}

	v64, err := strconv.ParseInt(digits, base, 32)
	if err != nil {
		return
	}

	value = uint16(v64)
	ok = true
	return
}

// NewToken classifies a single trimmed piece of source text.
func NewToken(text string) (tok Token) {
	tok.Text = text

	if _, ok := instructionMap[text]; ok {
		tok.Kind = TOKEN_INSTRUCTION
		return
	}

	if _, ok := macroMap[text]; ok {
		tok.Kind = TOKEN_MACRO
		return
	}

	if value, ok := parseNumber(text); ok {
		tok.Kind = TOKEN_NUMBER
		tok.Value = int(value)
		return
	}

	if kind, ok := keywordMap[text]; ok {
		tok.Kind = kind
		return
	}

	if match := labelPattern.FindStringSubmatch(text); match != nil {
		tok.Kind = TOKEN_LABEL
		tok.Text = strings.TrimSpace(match[1])
		return
	}

	if match := stringPattern.FindStringSubmatch(text); match != nil {
		tok.Kind = TOKEN_STRING
		tok.Text = match[1]
		if strings.HasPrefix(match[0], "'") {
			tok.Text = match[2]
		}
		tok.Value = len(tok.Text)
		return
	}

	if match := sizePattern.FindStringSubmatch(text); match != nil {
		tok.Kind = TOKEN_SIZE
		tok.Text = match[1]
		return
	}

	if match := indirectionPattern.FindStringSubmatch(text); match != nil {
		tok.Kind = TOKEN_INDIRECTION
		tok.Text = match[1]
		return
	}

	switch {
	case identifierPattern.MatchString(text):
		tok.Kind = TOKEN_IDENTIFIER
	case text == ",":
		tok.Kind = TOKEN_COMMA
	case text == "*", text == "/", text == "+", text == "-":
		tok.Kind = TOKEN_OPERATOR
	}

	return
}
