package asm

import (
	"fmt"
)

const (
	DATA_BASE    = 0x0200 // First address of the data segment.
	REGISTER_MAX = 0x100  // Register locations addressable by an instruction.
)

// hex16 renders the low 16 bits of a value as 4 hex digits.
func hex16(value int) string {
	return fmt.Sprintf("%02x%02x", (value>>8)&0xff, value&0xff)
}

// optionalValue evaluates an optional trailing value.
func (asm *Assembler) optionalValue(tokens *Tokens) (value int, err error) {
	if !tokens.More() {
		return
	}

	_, err = tokens.Expect(TOKEN_NUMBER, TOKEN_IDENTIFIER)
	if err != nil {
		return
	}
	tokens.Back()

	return asm.evaluate(tokens)
}

// allocRegister reserves the next register location.
func (asm *Assembler) allocRegister(name string, value int) (loc int, err error) {
	loc = asm.regCount
	if loc >= REGISTER_MAX {
		err = &ErrLimit{Value: loc + 1, Limit: REGISTER_MAX, Err: ErrImmediateRange}
		return
	}

	err = asm.Symbols.Insert(name, Symbol{Kind: SYMBOL_REGISTER, Value: value, Size: 1, Location: loc})
	if err != nil {
		return
	}

	asm.regCount++
	asm.prog.Registers = append(asm.prog.Registers, uint16(value))
	return
}

// declareConst handles `.const NAME value`.
func (asm *Assembler) declareConst(tokens *Tokens) (err error) {
	if asm.inProcess {
		err = &ErrToken{Text: ".const", Err: ErrScope}
		return
	}

	name, err := tokens.Expect(TOKEN_IDENTIFIER)
	if err != nil {
		return
	}

	_, err = tokens.Expect(TOKEN_NUMBER, TOKEN_IDENTIFIER)
	if err != nil {
		return
	}
	tokens.Back()

	value, err := asm.evaluate(tokens)
	if err != nil {
		return
	}

	err = tokens.End()
	if err != nil {
		return
	}

	err = asm.Symbols.Insert(name.Text, Symbol{Kind: SYMBOL_CONST, Value: value})
	if err != nil {
		return
	}

	asm.prog.Listing.Log(asm.lineNo, 0, hex16(value), asm.line)
	return
}

// declareRegister handles `.reg NAME [value]`.
func (asm *Assembler) declareRegister(tokens *Tokens) (err error) {
	name, err := tokens.Expect(TOKEN_IDENTIFIER)
	if err != nil {
		return
	}

	value, err := asm.optionalValue(tokens)
	if err != nil {
		return
	}

	err = tokens.End()
	if err != nil {
		return
	}

	loc, err := asm.allocRegister(asm.scope()+name.Text, value)
	if err != nil {
		return
	}

	asm.prog.Listing.Log(asm.lineNo, loc, hex16(value), asm.line)
	return
}

// declareData handles `.data NAME [value | "string" | [size]]`.
func (asm *Assembler) declareData(tokens *Tokens) (err error) {
	name, err := tokens.Expect(TOKEN_IDENTIFIER)
	if err != nil {
		return
	}

	value := 0
	size := 1
	var bytes []uint8

	if tokens.More() {
		var tok Token
		tok, err = tokens.Expect(TOKEN_IDENTIFIER, TOKEN_STRING, TOKEN_NUMBER, TOKEN_SIZE)
		if err != nil {
			return
		}

		switch tok.Kind {
		case TOKEN_STRING:
			size = len(tok.Text)
			if size > 0 {
				value = int(tok.Text[0])
			}
			bytes = append([]uint8(tok.Text), 0)
		case TOKEN_SIZE:
			size, err = asm.evaluateSize(tok)
			if err != nil {
				return
			}
			bytes = make([]uint8, size)
		default:
			tokens.Back()
			value, err = asm.evaluate(tokens)
			if err != nil {
				return
			}
		}
	}

	err = tokens.End()
	if err != nil {
		return
	}

	if bytes == nil {
		bytes = []uint8{uint8(value)}
	}

	loc := asm.dataCount
	err = asm.Symbols.Insert(asm.scope()+name.Text, Symbol{Kind: SYMBOL_DATA, Value: value, Size: size, Location: loc})
	if err != nil {
		return
	}

	asm.dataCount += len(bytes)
	asm.prog.Data = append(asm.prog.Data, bytes...)
	asm.prog.Listing.Log(asm.lineNo, loc, hex16(value), asm.line)
	return
}
