package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duckgen/internal/export"
	"github.com/vovakirdan/duckgen/internal/sprite"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all frames",
	Long:  `Shows every frame with its file name, animation phase and name.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	s := loadSettings()
	frames := sprite.Frames()

	fmt.Println("Frames:")
	fmt.Println()

	// Calculate column widths
	maxFileLen := 4 // "File" header
	for _, f := range frames {
		if n := len(export.FileName(s.cfg.Output.Prefix, f.Index)); n > maxFileLen {
			maxFileLen = n
		}
	}

	// Print header
	fmt.Printf("  %-2s  %-*s  %-5s  %s\n", "#", maxFileLen, "File", "Phase", "Name")
	fmt.Printf("  %-2s  %-*s  %-5s  %s\n", "--", maxFileLen, "----", "-----", "----")

	// Print frames
	for _, f := range frames {
		fmt.Printf("  %02d  %-*s  %-5s  %s\n", f.Index, maxFileLen, export.FileName(s.cfg.Output.Prefix, f.Index), f.Phase, f.Name)
	}

	fmt.Println()
	fmt.Printf("Intended timing: %v per frame; the run frames %v loop.\n",
		sprite.FrameDuration, sprite.PhaseFrames(sprite.PhaseRun))
}
