package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rfielding/tableau/internal/config"
	"github.com/rfielding/tableau/parser"
	"github.com/rfielding/tableau/tableau"
)

var (
	cfgPath        string
	maxGammaRounds int
	colorFlag      string
	formatFlag     string
	noTrace        bool
)

var rootCmd = &cobra.Command{
	Use:   "tableau [formula]",
	Short: "Decide whether a formula is a tautology via an analytic tableau",
	Long: `tableau builds a signed analytic tableau rooted at F(formula) and
searches for a proof that the formula is a tautology: if every branch
of the tree closes on a complementary literal pair, the input is a
tautology; if a branch saturates while staying open, it is not.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProve,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "tableau.toml", "path to a tableau.toml config file")
	rootCmd.PersistentFlags().IntVar(&maxGammaRounds, "max-gamma-rounds", 0, "override the γ-saturation round ceiling (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "", "auto|always|never (overrides config)")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "text|dot|mermaid (overrides config)")
	rootCmd.Flags().BoolVar(&noTrace, "no-trace", false, "suppress the expansion trace, print only the verdict")
	rootCmd.AddCommand(replCmd)
}

// Execute runs the command tree; its error is the only thing main
// uses to decide the process exit code.
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return config.Config{}, err
	}
	v := viper.New()
	if maxGammaRounds > 0 {
		v.Set("max_gamma_rounds", maxGammaRounds)
	}
	if colorFlag != "" {
		v.Set("color", colorFlag)
	}
	if formatFlag != "" {
		v.Set("trace_format", formatFlag)
	}
	return config.BindOverrides(cfg, v), nil
}

func runProve(cmd *cobra.Command, args []string) error {
	text, err := readFormulaInput(cmd, args)
	if err != nil {
		return err
	}
	f, err := parser.Parse(text)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	sink, rec := buildSink(cfg, out)

	opts := []tableau.Option{tableau.WithSink(sink)}
	if cfg.MaxGammaRounds > 0 {
		opts = append(opts, tableau.WithMaxGammaRounds(cfg.MaxGammaRounds))
	}

	tautology, err := tableau.New(f, opts...).Prove()
	if err != nil {
		return err
	}

	if rec != nil {
		switch cfg.TraceFormat {
		case config.FormatDOT:
			fmt.Fprint(out, rec.ExportDOT())
		case config.FormatMermaid:
			fmt.Fprint(out, rec.ExportMermaid())
		}
	}

	printVerdict(out, tautology)
	return nil
}

func buildSink(cfg config.Config, out io.Writer) (tableau.Sink, *tableau.DiagramRecorder) {
	switch cfg.TraceFormat {
	case config.FormatDOT, config.FormatMermaid:
		rec := tableau.NewDiagramRecorder()
		return rec, rec
	default:
		if noTrace {
			return tableau.NopSink{}, nil
		}
		return tableau.NewWriterSink(out, resolveColor(cfg.Color, out)), nil
	}
}

func resolveColor(c config.Color, out io.Writer) bool {
	switch c {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return tableau.ColorAuto(out)
	}
}

func printVerdict(out io.Writer, tautology bool) {
	if tautology {
		fmt.Fprintln(out, "TAUTOLOGY")
		return
	}
	fmt.Fprintln(out, "NOT A TAUTOLOGY")
}

func readFormulaInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", errors.Wrap(err, "reading formula from stdin")
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", errors.WithStack(&parser.ParseError{Message: "no formula given on the command line or on stdin"})
	}
	return text, nil
}
