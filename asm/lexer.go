package asm

import (
	"regexp"
	"slices"
	"strings"
)

// tokenPattern finds candidate tokens, in order of preference:
// a bracketed size, a quoted string, a run of non-operator characters,
// a lone operator or comma, or a sign and number following whitespace.
var tokenPattern = regexp.MustCompile(`\[.*\]|".*"|'.*'|[^-,+*/\s]+|[-,+*/]|\s[-+][0-9]*(?:[xX][0-9a-fA-F]*)?`)

// Tokenize splits a comment-free source line into classified tokens.
func Tokenize(line string) (tokens *Tokens) {
	tokens = &Tokens{}
	for _, text := range tokenPattern.FindAllString(line, -1) {
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}
		tokens.list = append(tokens.list, NewToken(text))
	}
	return
}

// Tokens is a cursor over the tokens of one line.
type Tokens struct {
	list []Token
	pos  int
}

// NewTokens returns a cursor over a list of tokens.
func NewTokens(list ...Token) *Tokens {
	return &Tokens{list: list}
}

// List returns all tokens, consumed or not.
func (t *Tokens) List() []Token {
	return slices.Clone(t.list)
}

// More is true if there are unconsumed tokens.
func (t *Tokens) More() bool {
	return t.pos < len(t.list)
}

// Peek returns the next token without consuming it.
func (t *Tokens) Peek() (tok Token, ok bool) {
	if !t.More() {
		return
	}
	return t.list[t.pos], true
}

// Next consumes the next token.
func (t *Tokens) Next() (tok Token, ok bool) {
	tok, ok = t.Peek()
	if ok {
		t.pos++
	}
	return
}

// Back rewinds the cursor by one token.
func (t *Tokens) Back() {
	if t.pos > 0 {
		t.pos--
	}
}

// Expect consumes the next token, which must be one of the given kinds.
func (t *Tokens) Expect(kinds ...TokenKind) (tok Token, err error) {
	tok, ok := t.Next()
	switch {
	case !ok:
		err = &ErrUnexpected{Expected: kinds}
	case slices.Contains(kinds, tok.Kind):
	case tok.Kind == TOKEN_NONE:
		err = &ErrToken{Text: tok.Text, Err: ErrLexical}
	default:
		err = &ErrUnexpected{Found: tok, Expected: kinds}
	}
	return
}

// End verifies that all tokens have been consumed.
func (t *Tokens) End() (err error) {
	tok, ok := t.Peek()
	if ok {
		err = &ErrToken{Text: tok.Text, Err: ErrTrailingTokens}
	}
	return
}
