package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duckgen/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show recorded generation runs",
	Long: `Show the most recent runs recorded in the ledger, or the frames of a
single run. Runs are recorded by 'duckgen generate' when the ledger is
enabled with --db or in the config file.

Examples:
  duckgen history --db ~/.duckgen/ledger.db
  duckgen history 2b1c0e8e-0f7a-4c1e-9d55-8a4f3c2d1b10`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
}

func runHistory(_ *cobra.Command, args []string) {
	s := loadSettings()

	store, err := storage.Open(s.cfg.Ledger.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		showRun(store, args[0])
		return
	}

	runs, err := store.RecentRuns(flagHistoryLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'duckgen generate --db <path>' to record one.")
		return
	}

	// Print header
	fmt.Printf("  %-36s  %-16s  %-6s  %s\n", "Run", "Date", "Frames", "Output")
	fmt.Printf("  %-36s  %-16s  %-6s  %s\n", "---", "----", "------", "------")

	for _, r := range runs {
		fmt.Printf("  %-36s  %-16s  %-6d  %s/%s_*.png\n",
			r.RunID, r.CreatedAt.Format("2006-01-02 15:04"), r.FrameCount, r.OutDir, r.Prefix)
	}

	// Compare the two latest runs
	if len(runs) > 1 {
		same, err := store.SameOutput(runs[0].RunID, runs[1].RunID)
		if err == nil {
			fmt.Println()
			if same {
				fmt.Println("Latest run matches the one before it.")
			} else {
				fmt.Println("Latest run differs from the one before it.")
			}
		}
	}
}

// showRun prints the frames recorded for one run.
func showRun(store *storage.Store, runID string) {
	run, err := store.Run(runID)
	if errors.Is(err, storage.ErrRunNotFound) {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: unknown run %q\n", runID)
		fmt.Fprintln(os.Stderr, "Run 'duckgen history' to see recorded runs.")
		os.Exit(1)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	frames, err := store.RunFrames(runID)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving frames: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run %s - %s\n", run.RunID, run.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Println()

	fmt.Printf("  %-2s  %-8s  %-12s  %s\n", "#", "Bytes", "SHA-256", "Path")
	fmt.Printf("  %-2s  %-8s  %-12s  %s\n", "--", "-----", "-------", "----")
	for _, f := range frames {
		fmt.Printf("  %02d  %-8d  %-12s  %s\n", f.Index, f.Size, shortDigest(f.Digest), f.Path)
	}
}

// shortDigest trims a hex digest for display.
func shortDigest(d string) string {
	if len(d) > 12 {
		return d[:12]
	}
	return d
}
