package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duckgen/internal/export"
	"github.com/vovakirdan/duckgen/internal/sprite"
	"github.com/vovakirdan/duckgen/internal/storage"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write every frame as a PNG file",
	Long: `Paint all frames and write them as <prefix>_01.png .. <prefix>_11.png.
Existing files are overwritten. The output is identical on every run.

Examples:
  duckgen generate
  duckgen generate --out ./assets/duck
  duckgen generate --db ~/.duckgen/ledger.db`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func runGenerate(_ *cobra.Command, _ []string) {
	s := loadSettings()

	w := export.NewWriter(s.cfg.Output.Dir, s.cfg.Output.Prefix, s.logger)
	results, err := w.WriteAll(sprite.Frames())
	if err != nil {
		s.logger.Debug("generation aborted", "written", len(results))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if s.cfg.Ledger.Enabled {
		recordRun(s, w, results)
	}

	fmt.Println(export.Summary(results))
}

// recordRun stores the run in the ledger.
// Failures are logged only; the frame files are already written.
func recordRun(s settings, w *export.Writer, results []export.Result) {
	store, err := storage.Open(s.cfg.Ledger.Path)
	if err != nil {
		s.logger.Warn("could not open ledger", "path", s.cfg.Ledger.Path, "error", err)
		return
	}
	defer store.Close()

	records := make([]storage.FrameRecord, len(results))
	for i, r := range results {
		records[i] = storage.FrameRecord{
			Index:  r.Index,
			Path:   r.Path,
			Size:   r.Size,
			Digest: r.Digest,
		}
	}

	runID, err := store.RecordRun(w.Dir(), w.Prefix(), records)
	if err != nil {
		s.logger.Warn("could not record run", "error", err)
		return
	}
	s.logger.Info("recorded run", "run", runID, "frames", len(records))
}
