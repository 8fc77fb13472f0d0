package asm

import (
	"github.com/ezrec/avalanche/translate"
)

var f = translate.From

var (
	// Token errors
	ErrLexical         = translate.Error("unrecognized token")
	ErrUnexpectedToken = translate.Error("unexpected token")
	ErrTrailingTokens  = translate.Error("unexpected tokens after statement")

	// Symbol errors
	ErrUndeclared       = translate.Error("was not declared in this scope")
	ErrDuplicateSymbol  = translate.Error("was already defined in this scope")
	ErrDuplicateProcess = translate.Error("process already defined")
	ErrWrongSymbolKind  = translate.Error("is the wrong kind of symbol")
	ErrScope            = translate.Error("not permitted in this scope")

	// Value errors
	ErrImmediateRange = translate.Error("value out of range")
	ErrDivideByZero   = translate.Error("division by zero")
	ErrPredefine      = translate.Error("is not an integer expression")

	// Program errors
	ErrProcessCount     = translate.Error("too few processes")
	ErrSequenceCapacity = translate.Error("sequence table overflow")
)

// ErrToken ties an error to the source text that caused it.
type ErrToken struct {
	Text string
	Err  error
}

func (err *ErrToken) Error() string {
	return f("'%v' %v", err.Text, err.Err)
}

func (err *ErrToken) Unwrap() error {
	return err.Err
}

// ErrUnexpected reports a token of the wrong kind.
type ErrUnexpected struct {
	Found    Token
	Expected []TokenKind
}

func (err *ErrUnexpected) Error() string {
	if err.Found.Kind == TOKEN_NONE && len(err.Found.Text) == 0 {
		return f("%v: expected %v, found end of line", ErrUnexpectedToken, err.Expected)
	}
	return f("%v: expected %v, found %v '%v'", ErrUnexpectedToken, err.Expected, err.Found.Kind, err.Found.Text)
}

func (err *ErrUnexpected) Unwrap() error {
	return ErrUnexpectedToken
}

// ErrLimit reports a value that exceeds its permitted limit.
type ErrLimit struct {
	Value int
	Limit int
	Err   error
}

func (err *ErrLimit) Error() string {
	return f("%v: %d (limit %d)", err.Err, err.Value, err.Limit)
}

func (err *ErrLimit) Unwrap() error {
	return err.Err
}

// ErrSyntax is the error returned by Assembler.Parse.
// Errors that concern the whole program have a LineNo of 0.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	if err.LineNo == 0 {
		return err.Err.Error()
	}
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
