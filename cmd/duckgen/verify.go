package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duckgen/internal/export"
	"github.com/vovakirdan/duckgen/internal/sprite"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check written frames against freshly painted ones",
	Long: `Decode every frame file in the output directory and compare it pixel
by pixel with a freshly painted frame. Exits with status 1 if any file is
missing, unreadable or different.

Examples:
  duckgen verify
  duckgen verify --out ./assets/duck`,
	Args: cobra.NoArgs,
	Run:  runVerify,
}

func runVerify(_ *cobra.Command, _ []string) {
	s := loadSettings()

	w := export.NewWriter(s.cfg.Output.Dir, s.cfg.Output.Prefix, s.logger)
	checks := w.Verify(sprite.Frames())

	// Print header
	fmt.Printf("  %-2s  %-10s  %s\n", "#", "Status", "File")
	fmt.Printf("  %-2s  %-10s  %s\n", "--", "------", "----")

	for _, c := range checks {
		detail := ""
		switch c.Status {
		case export.StatusMismatch:
			detail = fmt.Sprintf(" (%d pixels differ)", c.Diff)
		case export.StatusUnreadable:
			detail = fmt.Sprintf(" (%v)", c.Err)
		}
		fmt.Printf("  %02d  %-10s  %s%s\n", c.Index, c.Status, c.Path, detail)
	}

	fmt.Println()
	if !export.AllOK(checks) {
		fmt.Println("Some frames do not match. Run 'duckgen generate' to rewrite them.")
		os.Exit(1)
	}
	fmt.Printf("All %d frames match.\n", len(checks))
}
