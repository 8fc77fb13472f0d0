package asm

import (
	"fmt"
)

// Family is the operand layout of an instruction.
type Family int

//go:generate go tool stringer -linecomment -type=Family
const (
	FAMILY_ALU       = Family(0) // alu
	FAMILY_SHIFT     = Family(1) // shift
	FAMILY_IMMEDIATE = Family(2) // immediate
	FAMILY_JUMP      = Family(3) // jump
	FAMILY_COMPARE   = Family(4) // compare
	FAMILY_BIT_TEST  = Family(5) // bittest
	FAMILY_BIT_FLAG  = Family(6) // bitflag
	FAMILY_NOP       = Family(7) // nop
)

// Opcode bytes.
const (
	OP_ADD  = 0x00
	OP_OR   = 0x02
	OP_AND  = 0x03
	OP_XOR  = 0x04
	OP_SRL  = 0x06
	OP_SETB = 0x07
	OP_CLRB = 0x08
	OP_LDI  = 0x11
	OP_JAL  = 0x12
	OP_JZ   = 0x94
	OP_JNZ  = 0x95
	OP_JALR = 0x98
	OP_JEQR = 0x99
	OP_JNER = 0x9a
	OP_JLTR = 0x9b
	OP_JGER = 0x9c
	OP_JBSR = 0x9d
	OP_JBCR = 0x9e
	OP_NOP  = 0x00
)

// Opcode flags for indirect operands.
const (
	FLAG_TARGET_INDIRECT  = 0x80 // Target register holds an address.
	FLAG_OPERAND_INDIRECT = 0x40 // Second operand register holds an address.
)

// Fixed register locations.
const (
	REG_ZERO      = 0x00 // Always 0
	REG_ONE       = 0x01 // Always 1
	REG_MINUS_ONE = 0x02 // Always -1
)

const (
	BIT_MAX = 15 // Largest bit index of a bit immediate.
)

// Instruction is an entry of the opcode table.
type Instruction struct {
	Family Family
	Opcode uint8
}

var instructionMap = map[string]Instruction{
	"add":  {FAMILY_ALU, OP_ADD},
	"or":   {FAMILY_ALU, OP_OR},
	"and":  {FAMILY_ALU, OP_AND},
	"xor":  {FAMILY_ALU, OP_XOR},
	"srl":  {FAMILY_SHIFT, OP_SRL},
	"setb": {FAMILY_BIT_FLAG, OP_SETB},
	"clrb": {FAMILY_BIT_FLAG, OP_CLRB},
	"ldi":  {FAMILY_IMMEDIATE, OP_LDI},
	"jal":  {FAMILY_IMMEDIATE, OP_JAL},
	"jz":   {FAMILY_IMMEDIATE, OP_JZ},
	"jnz":  {FAMILY_IMMEDIATE, OP_JNZ},
	"jalr": {FAMILY_JUMP, OP_JALR},
	"jeqr": {FAMILY_COMPARE, OP_JEQR},
	"jner": {FAMILY_COMPARE, OP_JNER},
	"jltr": {FAMILY_COMPARE, OP_JLTR},
	"jger": {FAMILY_COMPARE, OP_JGER},
	"jbsr": {FAMILY_BIT_TEST, OP_JBSR},
	"jbcr": {FAMILY_BIT_TEST, OP_JBCR},
	"nop":  {FAMILY_NOP, OP_NOP},
}

// Word is a 32-bit instruction word.
// From most to least significant byte: opcode and flags, target,
// first operand, second operand.
type Word uint32

// MakeWord assembles an instruction word from its four bytes.
func MakeWord(op, target, operand1, operand2 uint8) Word {
	return Word(op)<<24 | Word(target)<<16 | Word(operand1)<<8 | Word(operand2)
}

// MakeWordImmediate assembles an instruction word with a 16-bit immediate.
func MakeWordImmediate(op, target uint8, imm uint16) Word {
	return Word(op)<<24 | Word(target)<<16 | Word(imm)
}

// Opcode returns the opcode byte, including the indirection flags.
func (w Word) Opcode() uint8 {
	return uint8(w >> 24)
}

// Target returns the target register location.
func (w Word) Target() uint8 {
	return uint8(w >> 16)
}

// Operand1 returns the first operand byte.
func (w Word) Operand1() uint8 {
	return uint8(w >> 8)
}

// Operand2 returns the second operand byte.
func (w Word) Operand2() uint8 {
	return uint8(w)
}

// Immediate returns the low 16 bits as an immediate.
func (w Word) Immediate() uint16 {
	return uint16(w)
}

// String returns the word as 8 hex digits.
func (w Word) String() string {
	return fmt.Sprintf("%08x", uint32(w))
}
