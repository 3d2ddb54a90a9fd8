package main

import (
	"context"
	"encoding/json"
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
	analyzeDryRun bool
	analyzeJSON   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <url>",
	Short: "Analyze a single job posting",
	Long:  "Runs the full pipeline for one posting URL and prints the scored analysis.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeDryRun, "dry-run", false, "do not persist the analysis")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the analysis as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var (
		companies model.CompanyStore
		analyses  model.AnalysisStore
	)
	if analyzeDryRun {
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

	analysis, err := a.Analyze(ctx, args[0])
	if err != nil && analysis.JobID == "" {
		logger.Error("analysis failed", "error", err)
		os.Exit(1)
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}

	printAnalysis(analysis)
	return nil
}

func printAnalysis(a model.JobAnalysis) {
	fmt.Printf("\n%s — %s\n", a.Company, a.Title)
	fmt.Println(strings.Repeat("─", 60))
	fmt.Printf("%-22s %s\n", "Location:", a.Location)
	if a.SalaryRange != "" {
		fmt.Printf("%-22s %s\n", "Salary:", a.SalaryRange)
	}
	fmt.Printf("%-22s %s / %s / %s\n", "Classification:", a.JobType, a.Industry, a.CompanySize)

	fmt.Println()
	fmt.Printf("%-22s %.1f\n", "Overall rating:", a.OverallRating)
	fmt.Printf("%-22s %.1f\n", "Skill match:", a.SkillMatchScore)
	fmt.Printf("%-22s %.1f\n", "Culture fit:", a.CultureFitScore)
	fmt.Printf("%-22s %.1f\n", "Growth potential:", a.GrowthPotentialScore)
	fmt.Printf("%-22s %.1f%%\n", "Success probability:", a.SuccessProbability)

	fmt.Println()
	fmt.Printf("%-22s %s\n", "Apply:", a.OptimalTiming)
	fmt.Printf("%-22s %s\n", "Strategy:", a.ApplicationStrategy)
	fmt.Printf("%-22s %s\n", "Follow-up:", a.FollowUpStrategy)

	if len(a.CompetitiveAdvantages) > 0 {
		fmt.Println("\nAdvantages:")
		for _, adv := range a.CompetitiveAdvantages {
			fmt.Printf("  • %s\n", adv)
		}
	}
	if len(a.RequiredSkillsMissing) > 0 {
		fmt.Println("\nMissing skills:")
		for _, skill := range a.RequiredSkillsMissing {
			fmt.Printf("  • %s\n", skill)
		}
	}
	fmt.Println()
}
