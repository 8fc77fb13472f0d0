// Package output writes assembled programs as the hex text files loaded
// by the Avalanche hardware build.
package output

import (
	"io"
	"iter"
	"log"

	"github.com/pkg/errors"

	"github.com/ezrec/avalanche/asm"
	"github.com/ezrec/avalanche/translate"
)

// Files names the output files. Empty names are not written.
type Files struct {
	Instructions string // One 8 hex digit word per line.
	Data         string // One 2 hex digit byte per line.
	Registers    string // One 4 hex digit register value per line.
	Processes    string // One 4 hex digit slot start address per line.
	Sequence     string // One 4 hex digit schedule entry per line.
	Config       string // Verilog parameters.
	Listing      string // Assembly listing.
}

// DefaultFiles returns the conventional output names for a source file.
func DefaultFiles(source string) Files {
	return Files{
		Instructions: "inst_data",
		Data:         "dta_data",
		Registers:    "reg_data",
		Processes:    "pc_data",
		Sequence:     "seq_data",
		Config:       "config.v",
		Listing:      source + ".lst",
	}
}

// Summary is the one line report of an assembly.
func Summary(prog *asm.Program) string {
	instructions := 0
	for range prog.Words() {
		instructions++
	}

	return translate.From("processes %d, registers %d, data %d, instructions %d",
		prog.ProcessCount, len(prog.Registers), len(prog.Data), instructions)
}

// Write creates every named output file for the program.
func Write(fsys CreateFS, files Files, prog *asm.Program, verbose bool) (err error) {
	lines := []struct {
		name  string
		lines iter.Seq[string]
	}{
		{files.Instructions, prog.InstructionLines()},
		{files.Data, prog.DataLines()},
		{files.Registers, prog.RegisterLines()},
		{files.Processes, prog.StartLines()},
		{files.Sequence, prog.SequenceLines()},
		{files.Listing, prog.Listing.Lines()},
	}

	for _, entry := range lines {
		if len(entry.name) == 0 {
			continue
		}
		err = create(fsys, entry.name, verbose, func(w io.Writer) error {
			return WriteLines(w, entry.lines)
		})
		if err != nil {
			return
		}
	}

	if len(files.Config) != 0 {
		err = create(fsys, files.Config, verbose, func(w io.Writer) error {
			return Config(w, prog.ProcessCount)
		})
	}

	return
}

// create writes a single file.
func create(fsys CreateFS, name string, verbose bool, fill func(w io.Writer) error) (err error) {
	if verbose {
		log.Printf("output: %v\n", name)
	}

	file, err := fsys.Create(name)
	if err != nil {
		return errors.Wrap(err, name)
	}

	err = fill(file)
	if err != nil {
		file.Close()
		return errors.Wrap(err, name)
	}

	err = file.Close()
	if err != nil {
		return errors.Wrap(err, name)
	}

	return
}
