package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/treyhall/jobscout/internal/model"
	"github.com/treyhall/jobscout/internal/store"
)

var (
	batchFile    string
	batchWorkers int
	batchDryRun  bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [url...]",
	Short: "Analyze multiple postings and rank them",
	Long:  "Runs the pipeline for every URL (from args and/or --file) concurrently and prints a ranked table, best first.",
	RunE:  runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "file with one posting URL per line (# comments allowed)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "max concurrent analyses (default 4)")
	batchCmd.Flags().BoolVar(&batchDryRun, "dry-run", false, "do not persist the analyses")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	urls := append([]string{}, args...)
	if batchFile != "" {
		fromFile, err := readURLFile(batchFile)
		if err != nil {
			logger.Error("failed to read url file", "path", batchFile, "error", err)
			os.Exit(1)
		}
		urls = append(urls, fromFile...)
	}
	if len(urls) == 0 {
		return fmt.Errorf("no URLs given; pass them as arguments or via --file")
	}

	var (
		companies model.CompanyStore
		analyses  model.AnalysisStore
	)
	if batchDryRun {
		logger.Info("dry-run mode enabled, nothing will be persisted")
		mem := store.NewMemoryStore()
		companies, analyses = mem, mem
	} else {
		sqlStore, err := store.NewSQLiteStore(cfg.Store.Path)
		if err != nil {
			logger.Error("failed to open store", "error", err)
			os.Exit(1)
		}
		defer sqlStore.Close()
		companies, analyses = sqlStore, sqlStore
	}

	a := buildAnalyzer(cfg, companies, analyses, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rankings := a.AnalyzeBatch(ctx, urls, batchWorkers)
	if len(rankings) == 0 {
		logger.Warn("no analyses completed")
		return nil
	}

	fmt.Printf("\n%-4s %-7s %-28s %-32s %s\n", "#", "Rating", "Company", "Title", "Apply")
	fmt.Println(strings.Repeat("─", 96))
	for _, r := range rankings {
		fmt.Printf("%-4d %-7.1f %-28s %-32s %s\n",
			r.Position,
			r.Analysis.OverallRating,
			truncateCell(r.Analysis.Company, 28),
			truncateCell(r.Analysis.Title, 32),
			r.Analysis.OptimalTiming,
		)
	}
	fmt.Printf("\n%d postings analyzed\n", len(rankings))
	return nil
}

// readURLFile reads one URL per line, skipping blanks and # comments.
func readURLFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, scanner.Err()
}

func truncateCell(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
