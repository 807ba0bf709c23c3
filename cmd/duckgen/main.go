// duckgen paints the duck sprite animation and writes each frame as a PNG.
//
// Usage:
//
//	duckgen                  - Write duck_anim_01.png .. duck_anim_11.png
//	duckgen generate         - Same as above
//	duckgen list             - List frames with their phase and file name
//	duckgen preview <n>      - Show frame n in the terminal
//	duckgen browse           - Step through frames interactively
//	duckgen verify           - Check written files against fresh frames
//	duckgen history [run]    - Show recorded generation runs
//
// Global flags:
//
//	--out <dir>        - Output directory (default: working directory)
//	--prefix <name>    - File name prefix (default: duck_anim)
//	--config <path>    - Config file (default: search ~/.duckgen, ./duckgen.yaml)
//	--log-level <lvl>  - debug, info, warn, error
//	--db <path>        - Record runs in a SQLite ledger at path
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/duckgen/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagOut      string
	flagPrefix   string
	flagLogLevel string
	flagDBPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duckgen",
	Short: "duckgen - Paint the duck sprite animation as PNG frames",
	Long: `duckgen paints a 16x16 duck sprite animation (peek, leap, land, run
and a poof of smoke and stars) and writes every frame as an RGBA PNG.

Run without a command to write all frames to the working directory.

Available commands:
  generate  - Write all frames (default)
  list      - Show the frame list
  preview   - Show one frame in the terminal
  browse    - Step through frames interactively
  verify    - Check written frames
  history   - Show recorded runs

Examples:
  duckgen
  duckgen --out ./assets/duck
  duckgen preview 7
  duckgen verify --out ./assets/duck`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagOut, "out", "", "Output directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagPrefix, "prefix", "", "File name prefix (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to ledger database (enables the ledger)")

	// Add subcommands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(historyCmd)
}

// settings is the resolved configuration shared by all commands.
type settings struct {
	cfg    config.Config
	logger *log.Logger
}

// loadSettings loads the config file and applies flag overrides.
// Exits the process when an explicit config file cannot be loaded.
func loadSettings() settings {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagOut != "" {
		cfg.Output.Dir = flagOut
	}
	if flagPrefix != "" {
		cfg.Output.Prefix = flagPrefix
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagDBPath != "" {
		cfg.Ledger.Enabled = true
		cfg.Ledger.Path = flagDBPath
	}

	return settings{cfg: cfg, logger: newLogger(cfg.Log.Level)}
}

// newLogger creates the stderr logger at the given level.
func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "duckgen",
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", level)
		lvl = log.WarnLevel
	}
	logger.SetLevel(lvl)
	return logger
}
