// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/ezrec/asm374/asm374"
	"github.com/ezrec/asm374/script"
	"github.com/ezrec/asm374/stream"
	"github.com/ezrec/asm374/translate"
	"github.com/ezrec/asm374/vectors"
)

var version = "0.1.0"

var f = translate.From

var ErrVectorsFailed = errors.New(f("test vectors failed"))

// dump shows the decoded fields, not the String() forms.
var dump = spew.ConfigState{Indent: "  ", DisableMethods: true}

// options are the persistent root flags.
type options struct {
	verbose bool
	lang    string
}

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "asm374: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	streamCmd := newStreamCmd(opts, in, out, errOut)

	rootCmd := &cobra.Command{
		Use:   "asm374",
		Short: "asm374 assembles and disassembles W23 ELEC374 CPU instructions",
		Long: `asm374 converts single W23 ELEC374 CPU instructions between assembly
text and 8 hex digit machine words. With no command, it reads lines from
standard input: 8 hex digits are disassembled, anything else is assembled.`,
		Version:       version,
		Args:             cobra.NoArgs,
		SilenceUsage:     true,
		SilenceErrors:    true,
		TraverseChildren: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			if opts.verbose {
				log.SetOutput(errOut)
			}
			if opts.lang != "" {
				err = translate.SetLanguage(opts.lang)
			}
			return
		},
		RunE: streamCmd.RunE,
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose mode")
	rootCmd.PersistentFlags().StringVar(&opts.lang, "lang", os.Getenv("ASM374_LANG"), "Message language (BCP 47), overrides the locale")

	rootCmd.AddCommand(
		streamCmd,
		newAsmCmd(opts, out, errOut),
		newDisCmd(opts, out, errOut),
		newExplainCmd(opts, out, errOut),
		newOpsCmd(out),
		newVectorsCmd(out),
		newScriptCmd(opts, out),
	)

	return rootCmd
}

func newStreamCmd(opts *options, in io.Reader, out, errOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "stream [file...]",
		Short: "Assemble or disassemble each line of the files (or standard input)",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			p := &stream.Processor{Out: out, Err: errOut}
			p.Assembler.Verbose = opts.verbose

			if len(args) == 0 {
				p.Interactive = stream.IsInteractive(in)
				return p.Run(in)
			}

			for _, name := range args {
				err = runFile(p, name)
				if err != nil {
					return
				}
			}
			return
		},
	}
}

func runFile(p *stream.Processor, name string) (err error) {
	inf, err := os.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	return p.Run(inf)
}

func newAsmCmd(opts *options, out, errOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:     "asm instruction...",
		Short:   "Assemble an instruction",
		Example: "  asm374 -v asm ldi r3, -1(r2)",
		Args:    cobra.MinimumNArgs(1),
		// Immediates such as -1 are not flags. Root flags go before "asm".
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			asm := &asm374.Assembler{Verbose: opts.verbose}

			word, err := asm.Assemble(strings.Join(args, " "))
			if err != nil {
				return
			}
			if opts.verbose {
				dump.Fdump(errOut, asm374.Decode(word))
			}

			fmt.Fprintln(out, word)
			return
		},
	}
}

// decodeArg parses the hex word argument of dis and explain.
func decodeArg(opts *options, errOut io.Writer, arg string) (word asm374.Word, err error) {
	word, err = asm374.ParseWord(arg)
	if err != nil {
		return
	}
	if opts.verbose {
		dump.Fdump(errOut, asm374.Decode(word))
	}
	return
}

func newDisCmd(opts *options, out, errOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "dis hex",
		Short: "Disassemble an 8 hex digit instruction word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			word, err := decodeArg(opts, errOut, args[0])
			if err != nil {
				return
			}

			asm := &asm374.Assembler{Verbose: opts.verbose}
			text, err := asm.Disassemble(word)
			fmt.Fprintln(out, text)
			return
		},
	}
}

func newExplainCmd(opts *options, out, errOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "explain hex",
		Short: "Break an 8 hex digit instruction word down into its fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			word, err := decodeArg(opts, errOut, args[0])
			if err != nil {
				return
			}

			asm := &asm374.Assembler{Verbose: opts.verbose}
			text, err := asm.Explain(word)
			fmt.Fprintln(out, text)
			return
		},
	}
}

func newOpsCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the instruction set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for op, spec := range asm374.Specs() {
				fmt.Fprintf(out, "%2d %v %s\n", op, spec.Format, spec.Syntax())
			}
			return nil
		},
	}
}

func newVectorsCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "vectors file.yaml...",
		Short: "Check test vector files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var cases, failed int
			for _, name := range args {
				var file *vectors.File
				file, err = loadVectors(name)
				if err != nil {
					return
				}

				failures := file.Check()
				for _, failure := range failures {
					fmt.Fprintf(out, "%v: %v\n", name, failure)
				}

				cases += len(file.Cases)
				failed += len(failures)
			}

			fmt.Fprintln(out, f("%d cases, %d failed", cases, failed))
			if failed > 0 {
				err = ErrVectorsFailed
			}
			return
		},
	}
}

func loadVectors(name string) (file *vectors.File, err error) {
	inf, err := os.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	file, err = vectors.Load(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", name, err)
	}
	return
}

func newScriptCmd(opts *options, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "script file.star",
		Short: "Run a Starlark script with the asm374 module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s := &script.Script{Out: out}
			s.Assembler.Verbose = opts.verbose

			_, err = s.Run(args[0], nil)
			return
		},
	}
}
