package asm

// encode assembles a single instruction.
func (asm *Assembler) encode(tok Token, tokens *Tokens) (err error) {
	inst := instructionMap[tok.Text]

	var word Word
	switch inst.Family {
	case FAMILY_ALU:
		word, err = asm.encodeAlu(inst.Opcode, tokens)
	case FAMILY_SHIFT:
		word, err = asm.encodeShift(inst.Opcode, tokens)
	case FAMILY_IMMEDIATE:
		word, err = asm.encodeImmediate(inst.Opcode, tokens)
	case FAMILY_JUMP:
		word, err = asm.encodeJump(inst.Opcode, tokens)
	case FAMILY_COMPARE:
		word, err = asm.encodeCompare(inst.Opcode, tokens)
	case FAMILY_BIT_TEST:
		word, err = asm.encodeBitTest(inst.Opcode, tokens)
	case FAMILY_BIT_FLAG:
		word, err = asm.encodeBitFlag(inst.Opcode, tokens)
	case FAMILY_NOP:
		word = MakeWord(OP_NOP, 0, 0, 0)
	}
	if err != nil {
		return
	}

	err = tokens.End()
	if err != nil {
		return
	}

	asm.emit(false, word)
	return
}

// encodeAlu: op target, rs1, rs2
func (asm *Assembler) encodeAlu(op uint8, tokens *Tokens) (word Word, err error) {
	target, indirect, err := asm.operand(tokens)
	if err != nil {
		return
	}
	if indirect {
		op |= FLAG_TARGET_INDIRECT
	}

	if err = asm.comma(tokens); err != nil {
		return
	}

	rs1, err := asm.register(tokens)
	if err != nil {
		return
	}

	if err = asm.comma(tokens); err != nil {
		return
	}

	rs2, indirect, err := asm.operand(tokens)
	if err != nil {
		return
	}
	if indirect {
		op |= FLAG_OPERAND_INDIRECT
	}

	word = MakeWord(op, target, rs1, rs2)
	return
}

// encodeShift: op target, rs1
func (asm *Assembler) encodeShift(op uint8, tokens *Tokens) (word Word, err error) {
	target, indirect, err := asm.operand(tokens)
	if err != nil {
		return
	}
	if indirect {
		op |= FLAG_TARGET_INDIRECT
	}

	if err = asm.comma(tokens); err != nil {
		return
	}

	rs1, err := asm.register(tokens)
	if err != nil {
		return
	}

	word = MakeWord(op, target, rs1, 0)
	return
}

// encodeImmediate: op target, imm16
func (asm *Assembler) encodeImmediate(op uint8, tokens *Tokens) (word Word, err error) {
	target, err := asm.register(tokens)
	if err != nil {
		return
	}

	if err = asm.comma(tokens); err != nil {
		return
	}

	imm, err := asm.immediate(tokens)
	if err != nil {
		return
	}

	word = MakeWordImmediate(op, target, uint16(imm))
	return
}

// encodeJump: op target, rs
func (asm *Assembler) encodeJump(op uint8, tokens *Tokens) (word Word, err error) {
	target, err := asm.register(tokens)
	if err != nil {
		return
	}

	if err = asm.comma(tokens); err != nil {
		return
	}

	rs, err := asm.register(tokens)
	if err != nil {
		return
	}

	word = MakeWord(op, target, rs, 0)
	return
}

// encodeCompare: op target, rs1, rs2
func (asm *Assembler) encodeCompare(op uint8, tokens *Tokens) (word Word, err error) {
	target, err := asm.register(tokens)
	if err != nil {
		return
	}

	if err = asm.comma(tokens); err != nil {
		return
	}

	rs1, err := asm.register(tokens)
	if err != nil {
		return
	}

	if err = asm.comma(tokens); err != nil {
		return
	}

	rs2, err := asm.register(tokens)
	if err != nil {
		return
	}

	word = MakeWord(op, target, rs1, rs2)
	return
}

// encodeBitTest: op target, bit, rs
func (asm *Assembler) encodeBitTest(op uint8, tokens *Tokens) (word Word, err error) {
	target, err := asm.register(tokens)
	if err != nil {
		return
	}

	if err = asm.comma(tokens); err != nil {
		return
	}

	bit, err := asm.bitIndex(tokens)
	if err != nil {
		return
	}

	if err = asm.comma(tokens); err != nil {
		return
	}

	rs, err := asm.register(tokens)
	if err != nil {
		return
	}

	word = MakeWord(op, target, bit, rs)
	return
}

// encodeBitFlag: op target, bit [, rs]
// Without a source register, the target is also the source.
func (asm *Assembler) encodeBitFlag(op uint8, tokens *Tokens) (word Word, err error) {
	target, indirect, err := asm.operand(tokens)
	if err != nil {
		return
	}
	if indirect {
		op |= FLAG_TARGET_INDIRECT
	}

	if err = asm.comma(tokens); err != nil {
		return
	}

	bit, err := asm.bitIndex(tokens)
	if err != nil {
		return
	}

	if !tokens.More() {
		if indirect {
			op |= FLAG_OPERAND_INDIRECT
		}
		word = MakeWord(op, target, bit, target)
		return
	}

	if err = asm.comma(tokens); err != nil {
		return
	}

	rs, indirect, err := asm.operand(tokens)
	if err != nil {
		return
	}
	if indirect {
		op |= FLAG_OPERAND_INDIRECT
	}

	word = MakeWord(op, target, bit, rs)
	return
}
