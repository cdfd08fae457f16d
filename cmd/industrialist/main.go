package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/industrialist-calc/internal/calculator"
	"github.com/napolitain/industrialist-calc/internal/config"
	"github.com/napolitain/industrialist-calc/internal/loader"
)

// app carries what every subcommand needs once the root command has set it up
type app struct {
	configPath string
	noColor    bool
	verbose    bool

	cfg    *config.Config
	calc   *calculator.Calculator
	logger *log.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "industrialist",
		Short: "Industrialist wiki tools",
		Long: `Tools from the Industrialist wiki.

The mineshaft drill calculator shows how long a drill head lasts, how much
time the drill spends replacing it and what the drill produces for a choice
of drill head, acid, oil and depth.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default: ./industrialist.yaml or ~/.config/industrialist/industrialist.yaml)")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug information to stderr")

	rootCmd.AddCommand(
		newCalcCmd(a),
		newSweepCmd(a),
		newTablesCmd(a),
		newMenuCmd(a),
		newTUICmd(a),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.noColor || !cfg.Output.Color {
		color.NoColor = true
	}

	var logOut io.Writer = io.Discard
	if a.verbose || cfg.Logging.Debug() {
		logOut = cmd.ErrOrStderr()
	}
	a.logger = log.New(logOut, "industrialist: ", log.LstdFlags)

	tables := loader.Default()
	a.calc = calculator.New(tables)
	a.logger.Printf("Loaded %d drill heads, %d acids, %d oils, %d depths",
		len(tables.DrillHeads()), len(tables.Acids()), len(tables.Oils()), len(tables.Depths()))
	return nil
}

// outputFormat is the --output flag if given, else the configured format
func (a *app) outputFormat(flag string) (string, error) {
	f := flag
	if f == "" {
		f = a.cfg.Output.Format
	}
	switch f {
	case formatTable, formatText, formatJSON, formatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (expected table, text, json or yaml)", f)
}
