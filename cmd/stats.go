package cmd

import (
	"context"
	"fmt"

	"github.com/placera/placera/pkg/config"
	"github.com/urfave/cli/v3"
)

// StatsCommand creates the stats command
func StatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show catalog statistics",
		Action: func(ctx context.Context, c *cli.Command) error {
			return showStats(c.String("config"))
		},
	}
}

// showStats prints catalog summary statistics.
func showStats(configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening catalog store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Printf("Warning: failed to close store: %v\n", err)
		}
	}()

	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("getting stats: %w", err)
	}

	totalSubjects, _ := stats["total_subjects"].(int)
	totalCities, _ := stats["total_cities"].(int)
	totalTypes, _ := stats["total_types"].(int)

	fmt.Printf("Catalog Statistics\n")
	fmt.Printf("══════════════════\n\n")
	fmt.Printf("Subjects: %s\n", formatNumber(totalSubjects))
	fmt.Printf("Cities:   %d\n", totalCities)
	fmt.Printf("Types:    %d\n", totalTypes)

	if totalSubjects == 0 {
		fmt.Printf("\nThe catalog is empty. Seed it with: placera import --sample\n")
	}

	return nil
}
