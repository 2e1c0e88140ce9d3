package cmd

import (
	"context"
	"fmt"

	"github.com/placera/placera/pkg/config"
	"github.com/placera/placera/pkg/storage"
	"github.com/urfave/cli/v3"
)

// OptimizeCommand creates the optimize command
func OptimizeCommand() *cli.Command {
	return &cli.Command{
		Name:  "optimize",
		Usage: "Database optimization and maintenance commands",
		Commands: []*cli.Command{
			{
				Name:  "check",
				Usage: "Run an integrity check on the catalog database",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withStore(c.String("config"), func(store *storage.Store) error {
						fmt.Print("Checking catalog database... ")
						if err := store.IntegrityCheck(); err != nil {
							fmt.Printf("✗ FAILED - %v\n", err)
							return fmt.Errorf("integrity check failed")
						}
						fmt.Println("✓ OK")
						return nil
					})
				},
			},
			{
				Name:  "analyze",
				Usage: "Run ANALYZE to update query planner statistics",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withStore(c.String("config"), func(store *storage.Store) error {
						fmt.Println("Running ANALYZE...")
						if err := store.Analyze(); err != nil {
							return fmt.Errorf("analyzing: %w", err)
						}
						fmt.Println("✓ ANALYZE completed")
						return nil
					})
				},
			},
			{
				Name:  "vacuum",
				Usage: "Run VACUUM to defragment the database",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withStore(c.String("config"), func(store *storage.Store) error {
						fmt.Println("Running VACUUM...")
						fmt.Println("This may take a while for large catalogs...")
						if err := store.Vacuum(); err != nil {
							return fmt.Errorf("vacuuming: %w", err)
						}
						fmt.Println("✓ VACUUM completed")
						return nil
					})
				},
			},
			{
				Name:  "checkpoint",
				Usage: "Run WAL checkpoint to flush changes",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withStore(c.String("config"), func(store *storage.Store) error {
						fmt.Println("Running WAL checkpoint...")
						if err := store.WALCheckpoint(); err != nil {
							return fmt.Errorf("checkpointing: %w", err)
						}
						fmt.Println("✓ WAL checkpoint completed")
						return nil
					})
				},
			},
			{
				Name:  "all",
				Usage: "Run all optimization operations (optimize, analyze, checkpoint)",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withStore(c.String("config"), func(store *storage.Store) error {
						fmt.Println("Running PRAGMA optimize...")
						if err := store.Optimize(); err != nil {
							return fmt.Errorf("optimizing: %w", err)
						}
						fmt.Println("Running ANALYZE...")
						if err := store.Analyze(); err != nil {
							return fmt.Errorf("analyzing: %w", err)
						}
						fmt.Println("Running WAL checkpoint...")
						if err := store.WALCheckpoint(); err != nil {
							return fmt.Errorf("checkpointing: %w", err)
						}
						fmt.Println("All optimization operations completed successfully")
						return nil
					})
				},
			},
		},
	}
}

// withStore opens the configured store, runs fn against it and closes it.
func withStore(configPath string, fn func(*storage.Store) error) error {
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

	return fn(store)
}
