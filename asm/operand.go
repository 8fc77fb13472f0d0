package asm

// lookup resolves a name in the current process scope.
func (asm *Assembler) lookup(name string) (sym Symbol, err error) {
	return asm.Symbols.Lookup(name, asm.scope())
}

// comma consumes a separating comma.
func (asm *Assembler) comma(tokens *Tokens) (err error) {
	_, err = tokens.Expect(TOKEN_COMMA)
	return
}

// registerSymbol resolves a token to the location of a register.
func (asm *Assembler) registerSymbol(tok Token) (loc uint8, err error) {
	sym, err := asm.lookup(tok.Text)
	if err != nil {
		return
	}

	if sym.Kind != SYMBOL_REGISTER {
		err = &ErrToken{Text: tok.Text, Err: ErrWrongSymbolKind}
		return
	}

	loc = uint8(sym.Location)
	return
}

// register reads a plain register operand.
func (asm *Assembler) register(tokens *Tokens) (loc uint8, err error) {
	tok, err := tokens.Expect(TOKEN_IDENTIFIER)
	if err != nil {
		return
	}

	return asm.registerSymbol(tok)
}

// operand reads a register operand which may be indirect.
func (asm *Assembler) operand(tokens *Tokens) (loc uint8, indirect bool, err error) {
	tok, err := tokens.Expect(TOKEN_IDENTIFIER, TOKEN_INDIRECTION)
	if err != nil {
		return
	}

	indirect = tok.Kind == TOKEN_INDIRECTION
	loc, err = asm.registerSymbol(tok)
	return
}

// indirect reads a register operand which must be indirect.
func (asm *Assembler) indirect(tokens *Tokens) (loc uint8, err error) {
	tok, err := tokens.Expect(TOKEN_INDIRECTION)
	if err != nil {
		return
	}

	return asm.registerSymbol(tok)
}

// immediate reads an immediate expression.
func (asm *Assembler) immediate(tokens *Tokens) (value int, err error) {
	_, err = tokens.Expect(TOKEN_NUMBER, TOKEN_IDENTIFIER)
	if err != nil {
		return
	}
	tokens.Back()

	return asm.evaluate(tokens)
}

// bitIndex reads a 4-bit immediate.
func (asm *Assembler) bitIndex(tokens *Tokens) (bit uint8, err error) {
	value, err := asm.immediate(tokens)
	if err != nil {
		return
	}

	if value < 0 || value > BIT_MAX {
		err = &ErrLimit{Value: value, Limit: BIT_MAX, Err: ErrImmediateRange}
		return
	}

	bit = uint8(value)
	return
}

// label reads the address of a label.
func (asm *Assembler) label(tokens *Tokens) (loc int, err error) {
	tok, err := tokens.Expect(TOKEN_IDENTIFIER)
	if err != nil {
		return
	}

	sym, err := asm.lookup(tok.Text)
	if err != nil {
		return
	}

	if sym.Kind != SYMBOL_LABEL {
		err = &ErrToken{Text: tok.Text, Err: ErrWrongSymbolKind}
		return
	}

	loc = sym.Location
	return
}
