package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rfielding/tableau/formula"
	"github.com/rfielding/tableau/internal/config"
	"github.com/rfielding/tableau/parser"
	"github.com/rfielding/tableau/tableau"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively pick a bundled example or type your own formula",
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprintln(out, "=== Analytic Tableau Tautology Prover ===")
	fmt.Fprintln(out)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	examples := formula.Examples()

	for {
		fmt.Fprintln(out, "Options:")
		for i, ex := range examples {
			fmt.Fprintf(out, "%d. %s (%s)\n", i+1, ex.Name, ex.Description)
		}
		fmt.Fprintf(out, "%d. Enter a formula\n", len(examples)+1)
		fmt.Fprintf(out, "%d. Exit\n", len(examples)+2)
		fmt.Fprint(out, "\nSelect option: ")

		line, err := in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		choice := strings.TrimSpace(line)

		n, convErr := strconv.Atoi(choice)
		switch {
		case convErr == nil && n >= 1 && n <= len(examples):
			ex := examples[n-1]
			fmt.Fprintf(out, "\n%s: %s\n", ex.Name, ex.Formula.String())
			runAndReport(out, ex.Formula, cfg)

		case convErr == nil && n == len(examples)+1:
			fmt.Fprint(out, "\nFormula: ")
			text, err := in.ReadString('\n')
			if err != nil && err != io.EOF {
				return err
			}
			f, perr := parser.Parse(strings.TrimSpace(text))
			if perr != nil {
				fmt.Fprintln(out, "parse error:", perr)
				continue
			}
			runAndReport(out, f, cfg)

		case convErr == nil && n == len(examples)+2:
			fmt.Fprintln(out, "Goodbye!")
			return nil

		default:
			fmt.Fprintln(out, "Invalid option")
		}
		fmt.Fprintln(out)
	}
}

func runAndReport(out io.Writer, f formula.Formula, cfg config.Config) {
	sink := tableau.NewWriterSink(out, resolveColor(cfg.Color, out))
	opts := []tableau.Option{tableau.WithSink(sink)}
	if cfg.MaxGammaRounds > 0 {
		opts = append(opts, tableau.WithMaxGammaRounds(cfg.MaxGammaRounds))
	}
	tautology, err := tableau.New(f, opts...).Prove()
	if err != nil {
		fmt.Fprintln(out, "error:", err)
		return
	}
	printVerdict(out, tautology)
}
