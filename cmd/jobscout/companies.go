package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/treyhall/jobscout/internal/store"
)

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "List cached company profiles",
	Long:  "Prints a table of every company profile derived so far, with culture and growth classification.",
	RunE:  runCompanies,
}

func init() {
	rootCmd.AddCommand(companiesCmd)
}

func runCompanies(cmd *cobra.Command, args []string) error {
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

	profiles, err := sqlStore.ListCompanies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list companies: %v\n", err)
		os.Exit(1)
	}

	if len(profiles) == 0 {
		fmt.Println("No company profiles cached yet. Run an analysis first.")
		return nil
	}

	fmt.Printf("%-25s %-15s %-12s %-11s %s\n", "Company", "Environment", "Stage", "Innovation", "Values")
	fmt.Println(strings.Repeat("─", 90))
	for _, p := range profiles {
		fmt.Printf("%-25s %-15s %-12s %-11.0f %s\n",
			p.Name,
			p.WorkEnvironment,
			p.GrowthStage,
			p.InnovationScore,
			strings.Join(p.Values, ", "),
		)
	}
	fmt.Printf("\nTotal: %d companies\n", len(profiles))
	return nil
}
