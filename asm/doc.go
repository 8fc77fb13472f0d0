// Package asm implements the assembler for the Avalanche multi-process
// processor.
//
// A program is a set of processes, each a block of instructions between
// `process NAME` and `endprocess`. A process may be split into several
// slots by naming them `NAME.SUB`; the hardware sequencer runs the slots
// of a split process in turn. Registers (`.reg`) and data (`.data`) may
// be declared globally or inside a process, constants (`.const`) only
// globally. Labels are only permitted inside a process.
//
// The first pass collects declarations, labels and process start
// addresses. The second pass encodes instructions and expands macros
// into native instructions.
package asm
