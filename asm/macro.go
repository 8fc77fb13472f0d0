package asm

import (
	"log"
)

// MACRO_MARKER is listed in place of the source text for every word of a
// macro expansion after the first.
const MACRO_MARKER = "<________|"

// Macro is a fixed length expansion into native instructions.
type Macro struct {
	Length int // Number of words emitted by the expansion.
	expand func(asm *Assembler, tokens *Tokens) (words []Word, err error)
}

// macroMap is filled in by init(), as the expansions refer back to the tokenizer.
var macroMap map[string]*Macro

func init() {
	macroMap = map[string]*Macro{
		"call": {1, expandCall},
		"djnz": {2, expandDjnz},
		"jmp":  {1, expandJmp},
		"ret":  {1, expandRet},
		"sll":  {1, expandSll},
		"sub":  {3, expandSub},
		"jler": {1, expandSwapped(OP_JGER)},
		"jgtr": {1, expandSwapped(OP_JLTR)},
		"inc":  {1, expandStep(REG_ONE)},
		"dec":  {1, expandStep(REG_MINUS_ONE)},
		"jeq":  {2, expandBranch(OP_JEQR, false)},
		"jne":  {2, expandBranch(OP_JNER, false)},
		"jlt":  {2, expandBranch(OP_JLTR, false)},
		"jge":  {2, expandBranch(OP_JGER, false)},
		"jgt":  {2, expandBranch(OP_JLTR, true)},
		"jle":  {2, expandBranch(OP_JGER, true)},
		"jbs":  {2, expandBitBranch(OP_JBSR)},
		"jbc":  {2, expandBitBranch(OP_JBCR)},
		"ld":   {1, expandLoad},
		"st":   {1, expandStore},
		"mov":  {1, expandMove},
	}
}

// scratch returns the scratch register of the current scope, creating it
// on first use.
func (asm *Assembler) scratch() (loc uint8, err error) {
	name := "___macro" + asm.scope() + "1__"

	sym, ok := asm.Symbols.Get(name)
	if ok {
		loc = uint8(sym.Location)
		return
	}

	reg, err := asm.allocRegister(name, 0)
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Printf("%v: scratch register %v at 0x%02x\n", asm.lineNo, name, reg)
	}

	loc = uint8(reg)
	return
}

// expand assembles a macro.
func (asm *Assembler) expand(tok Token, tokens *Tokens) (err error) {
	macro := macroMap[tok.Text]

	words, err := macro.expand(asm, tokens)
	if err != nil {
		return
	}

	err = tokens.End()
	if err != nil {
		return
	}

	if len(words) != macro.Length {
		log.Panicf("macro %v: emitted %d words, reserved %d", tok.Text, len(words), macro.Length)
	}

	asm.emit(true, words...)
	return
}

// call reg, label
func expandCall(asm *Assembler, tokens *Tokens) (words []Word, err error) {
	reg, err := asm.register(tokens)
	if err != nil {
		return
	}

	if err = asm.comma(tokens); err != nil {
		return
	}

	loc, err := asm.label(tokens)
	if err != nil {
		return
	}

	words = []Word{MakeWordImmediate(OP_JAL, reg, uint16(loc))}
	return
}

// jmp label
func expandJmp(asm *Assembler, tokens *Tokens) (words []Word, err error) {
	loc, err := asm.label(tokens)
	if err != nil {
		return
	}

	words = []Word{MakeWordImmediate(OP_JAL, REG_ZERO, uint16(loc))}
	return
}

// ret reg
func expandRet(asm *Assembler, tokens *Tokens) (words []Word, err error) {
	reg, err := asm.register(tokens)
	if err != nil {
		return
	}

	words = []Word{MakeWord(OP_JALR, reg, reg, REG_ZERO)}
	return
}

// djnz reg, label
func expandDjnz(asm *Assembler, tokens *Tokens) (words []Word, err error) {
	reg, err := asm.register(tokens)
	if err != nil {
		return
	}

	if err = asm.comma(tokens); err != nil {
		return
	}

	loc, err := asm.label(tokens)
	if err != nil {
		return
	}

	words = []Word{
		MakeWord(OP_ADD, reg, reg, REG_MINUS_ONE),
		MakeWordImmediate(OP_JNZ, reg, uint16(loc)),
	}
	return
}

// inc reg, dec reg
func expandStep(step uint8) func(asm *Assembler, tokens *Tokens) ([]Word, error) {
	return func(asm *Assembler, tokens *Tokens) (words []Word, err error) {
		reg, err := asm.register(tokens)
		if err != nil {
			return
		}

		words = []Word{MakeWord(OP_ADD, reg, reg, step)}
		return
	}
}

// sll dst, src
func expandSll(asm *Assembler, tokens *Tokens) (words []Word, err error) {
	op := uint8(OP_ADD)

	dst, indirect, err := asm.operand(tokens)
	if err != nil {
		return
	}
	if indirect {
		op |= FLAG_TARGET_INDIRECT
	}

	if err = asm.comma(tokens); err != nil {
		return
	}

	src, err := asm.register(tokens)
	if err != nil {
		return
	}

	words = []Word{MakeWord(op, dst, src, src)}
	return
}

// sub dst, rs1, rs2
func expandSub(asm *Assembler, tokens *Tokens) (words []Word, err error) {
	op := uint8(OP_ADD)
	xor := uint8(OP_XOR)

	dst, indirect, err := asm.operand(tokens)
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
		xor |= FLAG_OPERAND_INDIRECT
	}

	tmp, err := asm.scratch()
	if err != nil {
		return
	}

	words = []Word{
		MakeWord(xor, tmp, REG_MINUS_ONE, rs2),
		MakeWord(OP_ADD, tmp, tmp, REG_ONE),
		MakeWord(op, dst, rs1, tmp),
	}
	return
}

// jler target, rs1, rs2 and jgtr target, rs1, rs2
func expandSwapped(op uint8) func(asm *Assembler, tokens *Tokens) ([]Word, error) {
	return func(asm *Assembler, tokens *Tokens) (words []Word, err error) {
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

		words = []Word{MakeWord(op, target, rs2, rs1)}
		return
	}
}

// jeq rs1, rs2, label (and friends)
func expandBranch(op uint8, swap bool) func(asm *Assembler, tokens *Tokens) ([]Word, error) {
	return func(asm *Assembler, tokens *Tokens) (words []Word, err error) {
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

		if err = asm.comma(tokens); err != nil {
			return
		}

		loc, err := asm.label(tokens)
		if err != nil {
			return
		}

		tmp, err := asm.scratch()
		if err != nil {
			return
		}

		if swap {
			rs1, rs2 = rs2, rs1
		}

		words = []Word{
			MakeWordImmediate(OP_LDI, tmp, uint16(loc)),
			MakeWord(op, tmp, rs1, rs2),
		}
		return
	}
}

// jbs reg, bit, label and jbc reg, bit, label
func expandBitBranch(op uint8) func(asm *Assembler, tokens *Tokens) ([]Word, error) {
	return func(asm *Assembler, tokens *Tokens) (words []Word, err error) {
		reg, err := asm.register(tokens)
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

		loc, err := asm.label(tokens)
		if err != nil {
			return
		}

		tmp, err := asm.scratch()
		if err != nil {
			return
		}

		words = []Word{
			MakeWordImmediate(OP_LDI, tmp, uint16(loc)),
			MakeWord(op, tmp, bit, reg),
		}
		return
	}
}

// ld dst, (src)
func expandLoad(asm *Assembler, tokens *Tokens) (words []Word, err error) {
	dst, err := asm.register(tokens)
	if err != nil {
		return
	}

	if err = asm.comma(tokens); err != nil {
		return
	}

	src, err := asm.indirect(tokens)
	if err != nil {
		return
	}

	words = []Word{MakeWord(OP_ADD|FLAG_OPERAND_INDIRECT, dst, REG_ZERO, src)}
	return
}

// st (dst), src
func expandStore(asm *Assembler, tokens *Tokens) (words []Word, err error) {
	dst, err := asm.indirect(tokens)
	if err != nil {
		return
	}

	if err = asm.comma(tokens); err != nil {
		return
	}

	src, err := asm.register(tokens)
	if err != nil {
		return
	}

	words = []Word{MakeWord(OP_ADD|FLAG_TARGET_INDIRECT, dst, REG_ZERO, src)}
	return
}

// mov dst, src
func expandMove(asm *Assembler, tokens *Tokens) (words []Word, err error) {
	op := uint8(OP_ADD)

	dst, indirect, err := asm.operand(tokens)
	if err != nil {
		return
	}
	if indirect {
		op |= FLAG_TARGET_INDIRECT
	}

	if err = asm.comma(tokens); err != nil {
		return
	}

	src, indirect, err := asm.operand(tokens)
	if err != nil {
		return
	}
	if indirect {
		op |= FLAG_OPERAND_INDIRECT
	}

	words = []Word{MakeWord(op, dst, REG_ZERO, src)}
	return
}
