package asm

// value reads a single number or symbolic value.
func (asm *Assembler) value(tokens *Tokens) (value int, err error) {
	tok, err := tokens.Expect(TOKEN_NUMBER, TOKEN_IDENTIFIER)
	if err != nil {
		return
	}

	if tok.Kind == TOKEN_NUMBER {
		value = tok.Value
		return
	}

	sym, err := asm.lookup(tok.Text)
	if err != nil {
		return
	}

	switch sym.Kind {
	case SYMBOL_CONST:
		value = sym.Value
	case SYMBOL_DATA, SYMBOL_LABEL:
		value = sym.Location
	default:
		err = &ErrToken{Text: tok.Text, Err: ErrWrongSymbolKind}
	}

	return
}

// evaluate reads an expression of values and operators, strictly left
// to right. Evaluation stops before a comma, leaving it unconsumed.
func (asm *Assembler) evaluate(tokens *Tokens) (value int, err error) {
	value, err = asm.value(tokens)
	if err != nil {
		return
	}

	for tokens.More() {
		tok, _ := tokens.Peek()
		if tok.Kind == TOKEN_COMMA {
			break
		}

		var op Token
		op, err = tokens.Expect(TOKEN_OPERATOR)
		if err != nil {
			return
		}

		var rhs int
		rhs, err = asm.value(tokens)
		if err != nil {
			return
		}

		switch op.Text {
		case "*":
			value *= rhs
		case "+":
			value += rhs
		case "-":
			value -= rhs
		case "/":
			if rhs == 0 {
				err = &ErrToken{Text: op.Text, Err: ErrDivideByZero}
				return
			}
			value /= rhs
		}
	}

	return
}

// evaluateSize evaluates the expression inside a size bracket.
func (asm *Assembler) evaluateSize(tok Token) (size int, err error) {
	tokens := Tokenize(tok.Text)

	size, err = asm.evaluate(tokens)
	if err != nil {
		return
	}

	err = tokens.End()
	if err != nil {
		return
	}

	if size < 0 {
		err = &ErrLimit{Value: size, Limit: 0, Err: ErrImmediateRange}
	}

	return
}
