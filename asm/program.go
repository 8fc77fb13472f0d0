package asm

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ezrec/avalanche/internal"
)

// Opcode is the code generated by a single source line.
type Opcode struct {
	LineNo  int    // Source line number.
	Address int    // Program address of the first word.
	Words   []Word // Emitted instruction words.
	Text    string // Source text.
}

// Program is the result of a successful assembly.
type Program struct {
	Opcodes      []Opcode
	Data         []uint8  // Data segment, starting at DATA_BASE.
	Registers    []uint16 // Register initial values, by location.
	Starts       []int    // Slot start addresses, grouped by process.
	Sequence     []int    // Schedule of slot start addresses.
	ProcessCount int
	Listing      Listing
}

type Debug struct {
	*Opcode
	Index int
}

// Debug finds the opcode that generated the word at an address.
func (prog *Program) Debug(address int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if address >= op.Address && address < op.Address+len(op.Words) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  address - op.Address,
			}
			break
		}
	}

	return
}

// Words iterates over all instruction words in address order.
func (prog *Program) Words() iter.Seq[Word] {
	seqs := make([]iter.Seq[Word], 0, len(prog.Opcodes))
	for _, op := range prog.Opcodes {
		seqs = append(seqs, slices.Values(op.Words))
	}
	return internal.IterSeqConcat(seqs...)
}

// Codes iterates over all instruction words and their addresses.
func (prog *Program) Codes() iter.Seq2[int, Word] {
	return func(yield func(address int, word Word) bool) {
		for _, op := range prog.Opcodes {
			for n, word := range op.Words {
				if !yield(op.Address+n, word) {
					return
				}
			}
		}
	}
}

// Binary returns the instruction words.
func (prog *Program) Binary() (bins []uint32) {
	for word := range prog.Words() {
		bins = append(bins, uint32(word))
	}
	return
}

func hexLines[T any](values []T, format string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, value := range values {
			if !yield(fmt.Sprintf(format, value)) {
				return
			}
		}
	}
}

// InstructionLines renders each instruction word as 8 hex digits.
func (prog *Program) InstructionLines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for word := range prog.Words() {
			if !yield(word.String()) {
				return
			}
		}
	}
}

// DataLines renders each data byte as 2 hex digits.
func (prog *Program) DataLines() iter.Seq[string] {
	return hexLines(prog.Data, "%02x")
}

// RegisterLines renders each register initial value as 4 hex digits.
func (prog *Program) RegisterLines() iter.Seq[string] {
	return hexLines(prog.Registers, "%04x")
}

// StartLines renders each slot start address as 4 hex digits.
func (prog *Program) StartLines() iter.Seq[string] {
	return hexLines(prog.Starts, "%04x")
}

// SequenceLines renders the schedule as 4 hex digits per entry.
func (prog *Program) SequenceLines() iter.Seq[string] {
	return hexLines(prog.Sequence, "%04x")
}
