package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const versionString = "ia32asm 1.0.0"

// NewRootCommand builds the root cobra command. The assembler takes no
// positional arguments by default — every path is a flag with a default
// matching the fixed filenames of the original single-pass design, so a
// bare invocation behaves identically to it.
func NewRootCommand() *cobra.Command {
	var (
		inputFlag    string
		hexOutFlag   string
		symbolsFlag  string
		refsFlag     string
		verboseFlag  bool
		configFlag   string
	)

	cmd := &cobra.Command{
		Use:     "ia32asm",
		Short:   "Single-pass assembler for a line-oriented IA-32 subset",
		Version: versionString,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configFlag)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cmd.Flags().Changed("input") {
				cfg.IO.InputFile = inputFlag
			}
			if cmd.Flags().Changed("hex-out") {
				cfg.IO.HexOutputFile = hexOutFlag
			}
			if cmd.Flags().Changed("symbols-out") {
				cfg.IO.SymbolsFile = symbolsFlag
			}
			if cmd.Flags().Changed("refs-out") {
				cfg.IO.ReferencesFile = refsFlag
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Diagnostics.Verbose = verboseFlag
			}
			runAssemble(cfg)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&inputFlag, "input", "programa.asm", "source file to assemble")
	flags.StringVar(&hexOutFlag, "hex-out", "programa.hex", "emitted-bytes output file")
	flags.StringVar(&symbolsFlag, "symbols-out", "simbolos.txt", "symbol-table report file")
	flags.StringVar(&refsFlag, "refs-out", "referencias.txt", "pending-reference report file")
	flags.BoolVar(&verboseFlag, "verbose", false, "print each emitted byte to stderr as it is written")
	flags.StringVar(&configFlag, "config", "", "path to a TOML config file overriding the defaults above")

	return cmd
}

// runAssemble reads cfg.IO.InputFile, assembles it, and writes the three
// report files. It never returns an error: every I/O failure — the input
// file not opening, an output file not creating — is recorded as an
// advisory diagnostic and assembly continues with whatever state it has,
// exactly like a per-line syntax error. The exit code is always 0, matching
// the original's unconditional `return 0` even when its input file failed
// to open.
func runAssemble(cfg *Config) {
	asm := NewAssembler(cfg.Diagnostics.Verbose)

	in, err := os.Open(cfg.IO.InputFile)
	if err != nil {
		asm.Diags.Add(Diagnostic{Severity: SeverityError, Category: CategoryIO, Message: fmt.Sprintf("opening %s: %v", cfg.IO.InputFile, err)})
	} else {
		asm.Assemble(in)
		in.Close()
	}

	for _, d := range asm.Diags.Items() {
		fmt.Fprintln(os.Stderr, d.Render(cfg.Diagnostics.ColorOutput))
	}

	if hexOut, err := os.Create(cfg.IO.HexOutputFile); err != nil {
		reportIOFailure(cfg, cfg.IO.HexOutputFile, err)
	} else {
		if err := WriteHexDump(hexOut, asm.Buf.Bytes(), cfg.Output.BytesPerLine); err != nil {
			reportIOFailure(cfg, cfg.IO.HexOutputFile, err)
		}
		hexOut.Close()
	}

	if symOut, err := os.Create(cfg.IO.SymbolsFile); err != nil {
		reportIOFailure(cfg, cfg.IO.SymbolsFile, err)
	} else {
		if err := WriteSymbolReport(symOut, asm.Symbols); err != nil {
			reportIOFailure(cfg, cfg.IO.SymbolsFile, err)
		}
		symOut.Close()
	}

	if refOut, err := os.Create(cfg.IO.ReferencesFile); err != nil {
		reportIOFailure(cfg, cfg.IO.ReferencesFile, err)
	} else {
		if err := WriteReferenceReport(refOut, asm.Pending); err != nil {
			reportIOFailure(cfg, cfg.IO.ReferencesFile, err)
		}
		refOut.Close()
	}
}

// reportIOFailure prints a single advisory diagnostic for a report-file
// write failure; these happen after the per-line diagnostics have already
// been flushed, so they go straight to stderr rather than back into
// asm.Diags.
func reportIOFailure(cfg *Config, path string, err error) {
	d := Diagnostic{Severity: SeverityError, Category: CategoryIO, Message: fmt.Sprintf("writing %s: %v", path, err)}
	fmt.Fprintln(os.Stderr, d.Render(cfg.Diagnostics.ColorOutput))
}
