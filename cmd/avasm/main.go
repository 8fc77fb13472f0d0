// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"

	"github.com/ezrec/avalanche/asm"
	"github.com/ezrec/avalanche/output"
	"github.com/ezrec/avalanche/translate"
)

const version = "1.0.0"

// options are the command line settings.
type options struct {
	files   output.Files
	defines []string
	quiet   bool
	verbose bool
	symbols bool
}

// parseDefine splits a NAME=EXPR predefine. A bare NAME is defined as 1.
func parseDefine(arg string) (name string, expr string, err error) {
	name, expr, ok := strings.Cut(arg, "=")
	if !ok {
		expr = "1"
	}
	name = strings.TrimSpace(name)
	if len(name) == 0 || len(strings.TrimSpace(expr)) == 0 {
		err = translate.Error("-D %v: expected NAME=EXPR", arg)
	}
	return
}

// run assembles the input file and writes the outputs.
func run(input string, opts *options) (err error) {
	assembler := &asm.Assembler{Verbose: opts.verbose}

	for _, arg := range opts.defines {
		name, expr, err := parseDefine(arg)
		if err != nil {
			return err
		}
		err = assembler.PredefineExpr(name, expr)
		if err != nil {
			return err
		}
	}

	inf, err := os.Open(input)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err := assembler.Parse(inf)
	if err != nil {
		return
	}

	if opts.symbols {
		for name, sym := range assembler.Symbols.All() {
			pp.Fprintf(os.Stderr, "%v %v\n", name, sym)
		}
	}

	err = output.Write(output.Dir("."), opts.files, prog, opts.verbose)
	if err != nil {
		return
	}

	if !opts.quiet {
		fmt.Println(output.Summary(prog))
	}

	return
}

func main() {
	opts := &options{}
	var listing string

	rootCmd := &cobra.Command{
		Use:   "avasm sourceFile",
		Short: "Assembler for the Avalanche multi-process processor",
		Long: `Avasm assembles a program for the Avalanche multi-process processor.

The program, data, register, process start and sequence tables are
written as hex text files, one value per line, along with a config.v
file holding the process count and an assembly listing.
`,
		Version: version,
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			input := args[0]
			opts.files.Listing = listing
			if len(listing) == 0 {
				opts.files.Listing = input + ".lst"
			}

			err := run(input, opts)
			if err != nil {
				log.Fatalf("%v: %v", input, err)
			}
		},
	}

	defaults := output.DefaultFiles("")
	flags := rootCmd.Flags()
	flags.StringVarP(&opts.files.Data, "data", "d", defaults.Data, "data table file")
	flags.StringVarP(&opts.files.Instructions, "program", "p", defaults.Instructions, "instruction file")
	flags.StringVarP(&opts.files.Processes, "processes", "l", defaults.Processes, "process start address file")
	flags.StringVarP(&opts.files.Registers, "registers", "r", defaults.Registers, "register file")
	flags.StringVarP(&opts.files.Sequence, "sequence", "s", defaults.Sequence, "sequence table file")
	flags.StringVarP(&opts.files.Config, "config", "c", defaults.Config, "configuration file")
	flags.StringVarP(&listing, "listing", "o", "", "listing file (default sourceFile.lst)")
	flags.StringArrayVarP(&opts.defines, "define", "D", nil, "predefine a constant, as NAME=EXPR")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "do not print the summary")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose mode")
	flags.BoolVar(&opts.symbols, "symbols", false, "dump the symbol table to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
