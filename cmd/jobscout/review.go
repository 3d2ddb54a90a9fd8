package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/treyhall/jobscout/internal/review"
	"github.com/treyhall/jobscout/internal/store"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Browse stored analyses interactively (TUI)",
	Long:  "Launches the split-pane review view over the analysis history, newest first.",
	RunE:  runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	sqlStore, err := store.NewSQLiteStore(cfg.Store.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer sqlStore.Close()

	analyses, err := sqlStore.ListAnalyses()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list analyses: %v\n", err)
		os.Exit(1)
	}

	if len(analyses) == 0 {
		fmt.Println("No analyses stored yet. Run an analysis first.")
		return nil
	}

	return review.Run(analyses, cfg.Watch.MinRating)
}
