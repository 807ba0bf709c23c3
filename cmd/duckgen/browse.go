package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/duckgen/internal/platform/tui"
	"github.com/vovakirdan/duckgen/internal/sprite"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Step through frames interactively",
	Long: `Open a full-screen browser listing every frame beside a preview of
the selected one. Frames change only when you press a key.

Controls:
  Up/Down, j/k, Left/Right  - Previous/next frame
  Home/g, End/G             - First/last frame
  q/Esc/Ctrl+C              - Quit`,
	Args: cobra.NoArgs,
	Run:  runBrowse,
}

func runBrowse(_ *cobra.Command, _ []string) {
	s := loadSettings()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: browse needs an interactive terminal")
		fmt.Fprintln(os.Stderr, "Use 'duckgen preview <n> --ascii' instead.")
		os.Exit(1)
	}

	if err := tui.RunBrowser(sprite.Frames(), s.cfg.Output.Prefix, true); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
