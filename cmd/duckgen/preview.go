package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/duckgen/internal/core"
	"github.com/vovakirdan/duckgen/internal/export"
	"github.com/vovakirdan/duckgen/internal/preview"
	"github.com/vovakirdan/duckgen/internal/sprite"
)

var (
	flagASCII       bool
	flagPreviewFile string
)

var previewCmd = &cobra.Command{
	Use:   "preview [frame]",
	Short: "Show a frame in the terminal",
	Long: `Render one frame (1-11) in the terminal. Colors are used when stdout
is a terminal; otherwise each pixel is printed as one palette character.

Examples:
  duckgen preview 3
  duckgen preview 9 --ascii
  duckgen preview --file ./duck_anim_04.png`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPreview,
}

func init() {
	previewCmd.Flags().BoolVar(&flagASCII, "ascii", false, "Force plain ASCII output")
	previewCmd.Flags().StringVar(&flagPreviewFile, "file", "", "Preview a PNG file instead of a painted frame")
}

func runPreview(_ *cobra.Command, args []string) {
	s := loadSettings()

	var (
		canvas *core.Canvas
		title  string
	)

	switch {
	case flagPreviewFile != "":
		c, err := export.ReadFile(flagPreviewFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		canvas, title = c, flagPreviewFile

	case len(args) == 1:
		index, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid frame number %q\n", args[0])
			os.Exit(1)
		}
		f, err := sprite.Render(index)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'duckgen list' to see available frames.")
			os.Exit(1)
		}
		canvas = f.Canvas
		title = fmt.Sprintf("%s (%s, %s)", export.FileName(s.cfg.Output.Prefix, f.Index), f.Phase, f.Name)

	default:
		fmt.Fprintln(os.Stderr, "Error: pass a frame number or --file")
		os.Exit(1)
	}

	color := !flagASCII && term.IsTerminal(int(os.Stdout.Fd()))
	s.logger.Debug("preview", "title", title, "color", color)

	fmt.Println(title)
	fmt.Println()
	fmt.Println(preview.NewRenderer(color).Render(canvas))
	if !color {
		fmt.Println()
		fmt.Println(preview.Legend())
	}
}
