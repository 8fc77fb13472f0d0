// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"log"
	"maps"
	"slices"
	"strings"
)

// state is the assembler state of a single pass.
type state struct {
	pass      int    // 1 for declarations and labels, 2 for code.
	lineNo    int    // Current source line number.
	line      string // Current source line.
	progCount int    // Program address of the next word.
	dataCount int    // Data address of the next byte.
	regCount  int    // Location of the next register.
	process   string // Current process name.
	inProcess bool

	addresses []int // Program address at the start of each line, from the first pass.
}

// Assembler is a two pass assembler for the Avalanche multi-process
// processor.
type Assembler struct {
	Verbose   bool            // If set, verbosely logs the assembler actions.
	Symbols   SymbolTable     // Symbols of the last assembly.
	Processes ProcessRegistry // Processes of the last assembly.

	predefine map[string]int
	state
	prog *Program
}

// Predefine defines a global constant, available to every assembly.
func (asm *Assembler) Predefine(name string, value int) {
	if asm.predefine == nil {
		asm.predefine = map[string]int{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// scope is the qualifying prefix of names declared in the current process.
func (asm *Assembler) scope() string {
	if !asm.inProcess {
		return ""
	}
	return asm.process + "."
}

// emit appends words at the current program address, and lists them.
// Macro expansions are inserted into the listing.
func (asm *Assembler) emit(insert bool, words ...Word) {
	asm.prog.Opcodes = append(asm.prog.Opcodes, Opcode{
		LineNo:  asm.lineNo,
		Address: asm.progCount,
		Words:   words,
		Text:    asm.line,
	})

	for n, word := range words {
		text := asm.line
		if n > 0 {
			text = MACRO_MARKER
		}
		if insert {
			asm.prog.Listing.Insert(asm.lineNo, asm.progCount, word.String(), text)
		} else {
			asm.prog.Listing.Log(asm.lineNo, asm.progCount, word.String(), text)
		}
		asm.progCount++
	}
}

// unexpected reports a token that can not start a statement.
func unexpected(tok Token) error {
	if tok.Kind == TOKEN_NONE {
		return &ErrToken{Text: tok.Text, Err: ErrLexical}
	}

	return &ErrUnexpected{
		Found: tok,
		Expected: []TokenKind{
			TOKEN_REGISTER, TOKEN_CONST, TOKEN_DATA,
			TOKEN_PROCESS, TOKEN_ENDPROCESS,
			TOKEN_LABEL, TOKEN_INSTRUCTION, TOKEN_MACRO,
		},
	}
}

// beginProcess handles `process NAME`.
func (asm *Assembler) beginProcess(tokens *Tokens) (err error) {
	if asm.inProcess {
		err = &ErrToken{Text: "process", Err: ErrScope}
		return
	}

	tok, ok := tokens.Next()
	if !ok || (tok.Kind != TOKEN_IDENTIFIER && tok.Kind != TOKEN_NONE) || !processNamePattern.MatchString(tok.Text) {
		err = &ErrUnexpected{Found: tok, Expected: []TokenKind{TOKEN_IDENTIFIER}}
		return
	}

	err = tokens.End()
	if err != nil {
		return
	}

	if asm.pass == 1 {
		err = asm.Processes.Register(tok.Text, asm.progCount)
		if err != nil {
			return
		}
	} else {
		asm.prog.Listing.Log(asm.lineNo, asm.progCount, "", asm.line)
	}

	asm.inProcess = true
	asm.process = tok.Text
	return
}

// endProcess handles `endprocess`.
func (asm *Assembler) endProcess(tokens *Tokens) (err error) {
	if !asm.inProcess {
		err = &ErrToken{Text: "endprocess", Err: ErrScope}
		return
	}

	err = tokens.End()
	if err != nil {
		return
	}

	if asm.pass == 2 {
		asm.prog.Listing.Log(asm.lineNo, -1, "", asm.line)
	}

	asm.inProcess = false
	asm.process = ""
	return
}

// defineLabel records a label at the current program address.
func (asm *Assembler) defineLabel(tok Token) (err error) {
	if !asm.inProcess {
		err = &ErrToken{Text: tok.Text, Err: ErrScope}
		return
	}

	return asm.Symbols.Insert(asm.scope()+tok.Text, Symbol{
		Kind:     SYMBOL_LABEL,
		Value:    asm.progCount,
		Size:     1,
		Location: asm.progCount,
	})
}

// preprocess handles a statement in the first pass.
func (asm *Assembler) preprocess(tok Token, tokens *Tokens) (err error) {
	switch tok.Kind {
	case TOKEN_REGISTER:
		err = asm.declareRegister(tokens)
	case TOKEN_CONST:
		err = asm.declareConst(tokens)
	case TOKEN_DATA:
		err = asm.declareData(tokens)
	case TOKEN_PROCESS:
		err = asm.beginProcess(tokens)
	case TOKEN_ENDPROCESS:
		err = asm.endProcess(tokens)
	case TOKEN_INSTRUCTION:
		asm.progCount++
	case TOKEN_MACRO:
		asm.progCount += macroMap[tok.Text].Length
	case TOKEN_LABEL:
		err = asm.defineLabel(tok)
		if err != nil {
			return
		}
		next, ok := tokens.Next()
		if ok {
			err = asm.preprocess(next, tokens)
		}
	default:
		err = unexpected(tok)
	}

	return
}

// assemble handles a statement in the second pass.
func (asm *Assembler) assemble(tok Token, tokens *Tokens) (err error) {
	switch tok.Kind {
	case TOKEN_REGISTER, TOKEN_CONST, TOKEN_DATA:
		// Declared in the first pass.
	case TOKEN_PROCESS:
		err = asm.beginProcess(tokens)
	case TOKEN_ENDPROCESS:
		err = asm.endProcess(tokens)
	case TOKEN_INSTRUCTION:
		err = asm.encode(tok, tokens)
	case TOKEN_MACRO:
		err = asm.expand(tok, tokens)
	case TOKEN_LABEL:
		next, ok := tokens.Next()
		if ok {
			err = asm.assemble(next, tokens)
		} else {
			asm.prog.Listing.Log(asm.lineNo, asm.progCount, "", asm.line)
		}
	default:
		err = unexpected(tok)
	}

	return
}

// parseLine handles a single source line.
func (asm *Assembler) parseLine(text string) (err error) {
	code, _, _ := strings.Cut(text, ";")
	code = strings.TrimSpace(code)

	if len(code) == 0 {
		if asm.pass == 1 {
			asm.prog.Listing.Log(asm.lineNo, -1, "", text)
		}
		return
	}

	tokens := Tokenize(code)
	tok, _ := tokens.Next()

	if asm.pass == 1 {
		err = asm.preprocess(tok, tokens)
	} else {
		err = asm.assemble(tok, tokens)
	}

	return
}

// reset prepares for a new assembly of a source with the given line count.
func (asm *Assembler) reset(lines int) (err error) {
	asm.Symbols.reset()
	asm.Processes.reset()
	asm.state = state{dataCount: DATA_BASE}
	asm.prog = &Program{}
	asm.prog.Listing.reset(lines)

	for _, name := range slices.Sorted(maps.Keys(asm.predefine)) {
		err = asm.Symbols.Insert(name, Symbol{Kind: SYMBOL_CONST, Value: asm.predefine[name]})
		if err != nil {
			return
		}
	}

	return
}

// Parse assembles a program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var lines []string
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: asm.lineNo, Line: asm.line, Err: err}
			prog = nil
		}
	}()

	err = asm.reset(len(lines))
	if err != nil {
		return
	}

	for pass := 1; pass <= 2; pass++ {
		asm.pass = pass
		asm.progCount = 0
		asm.inProcess = false
		asm.process = ""

		for n, text := range lines {
			asm.lineNo = n + 1
			asm.line = text

			if asm.Verbose {
				log.Printf("%v.%v: %v\n", pass, asm.lineNo, text)
			}

			if pass == 1 {
				asm.addresses = append(asm.addresses, asm.progCount)
			} else if asm.addresses[n] != asm.progCount {
				log.Panicf("line %v: address 0x%04x, first pass had 0x%04x", asm.lineNo, asm.progCount, asm.addresses[n])
			}

			err = asm.parseLine(text)
			if err != nil {
				return
			}
		}

		asm.lineNo = 0
		asm.line = ""

		if pass == 1 {
			count := asm.Processes.Count()
			if count < PROCESS_MIN {
				err = &ErrLimit{Value: count, Limit: PROCESS_MIN, Err: ErrProcessCount}
				return
			}
			asm.Processes.Finalize()
		}
	}

	err = asm.Processes.CheckCapacity()
	if err != nil {
		return
	}

	prog = asm.prog
	prog.Starts = asm.Processes.Starts()
	prog.Sequence = asm.Processes.Sequence()
	prog.ProcessCount = asm.Processes.Count()

	if asm.Verbose {
		log.Printf("processes %v, registers %v, data %v, instructions %v\n",
			prog.ProcessCount, len(prog.Registers), len(prog.Data), asm.progCount)
	}

	return
}
