package cmd

import (
	"context"
	"fmt"

	"github.com/placera/placera/pkg/config"
	"github.com/placera/placera/pkg/search"
	"github.com/urfave/cli/v3"
)

// SearchCommand creates the search command
func SearchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search the place catalog",
		ArgsUsage: "[query]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "type",
				Usage: "Explicit category filter",
			},
			&cli.StringFlag{
				Name:  "city",
				Usage: "Explicit city filter",
			},
			&cli.FloatFlag{
				Name:  "min-rating",
				Usage: "Minimum average rating",
			},
			&cli.IntFlag{
				Name:  "min-reviews",
				Usage: "Minimum review count",
			},
			&cli.IntFlag{
				Name:  "page",
				Usage: "Page number",
				Value: 1,
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of results per page (defaults to the configured page_size)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			params := search.Params{
				Query:      c.Args().First(),
				Type:       c.String("type"),
				City:       c.String("city"),
				RatingMin:  c.Float("min-rating"),
				ReviewsMin: c.Int("min-reviews"),
				Page:       c.Int("page"),
				PageSize:   c.Int("limit"),
			}
			return searchCatalog(ctx, c.String("config"), params)
		},
	}
}

// searchCatalog resolves the query and renders the result page.
func searchCatalog(ctx context.Context, configPath string, params search.Params) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if params.PageSize < 1 {
		params.PageSize = cfg.PageSize
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

	resolver := search.NewResolver(store, buildLexicon(cfg))
	results, err := resolver.Resolve(ctx, params)
	if err != nil {
		return fmt.Errorf("resolving search: %w", err)
	}

	header := fmt.Sprintf("%d results", results.Total)
	if results.Query != "" {
		header = fmt.Sprintf("%d results for %q", results.Total, results.Query)
	}
	fmt.Println(titleStyle.Render(header))

	if len(results.Subjects) == 0 {
		fmt.Println(noResultsStyle.Render("No results found"))
		return nil
	}

	for _, subject := range results.Subjects {
		fmt.Println(formatSubject(subject))
	}

	var filters []string
	if results.Type != "" {
		filters = append(filters, "type: "+results.Type)
	}
	if results.City != "" {
		filters = append(filters, "city: "+results.City)
	}
	summary := fmt.Sprintf("Page %d of %d", results.Page, results.TotalPages)
	for _, f := range filters {
		summary += " · " + f
	}
	fmt.Println(summaryStyle.Render(summary))

	return nil
}
