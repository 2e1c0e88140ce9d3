package cmd

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/placera/placera/pkg/catalog"
	"github.com/placera/placera/pkg/config"
	"github.com/urfave/cli/v3"
)

//go:embed data/subjects.toml
var sampleSubjects []byte

// subjectsFile is the on-disk format of an import file: a list of [[subjects]]
// tables.
type subjectsFile struct {
	Subjects []catalog.Subject `toml:"subjects"`
}

// ImportCommand creates the import command
func ImportCommand() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Load subjects into the catalog from a TOML file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "file",
				Usage: "TOML file with [[subjects]] entries",
			},
			&cli.BoolFlag{
				Name:  "sample",
				Usage: "Import the embedded sample catalog instead of a file",
				Value: false,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return importSubjects(ctx, c.String("config"), c.String("file"), c.Bool("sample"))
		},
	}
}

// importSubjects reads a subjects file and inserts its entries.
func importSubjects(ctx context.Context, configPath, filePath string, useSample bool) error {
	var data []byte
	switch {
	case useSample:
		data = sampleSubjects
	case filePath != "":
		var err error
		data, err = os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("reading subjects file: %w", err)
		}
	default:
		return fmt.Errorf("either --file or --sample is required")
	}

	var file subjectsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("unmarshaling subjects file: %w", err)
	}
	if len(file.Subjects) == 0 {
		return fmt.Errorf("no subjects found in input")
	}

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

	if err := store.ImportSubjects(ctx, file.Subjects); err != nil {
		return fmt.Errorf("importing subjects: %w", err)
	}

	fmt.Printf("Imported %d subjects into %s\n", len(file.Subjects), cfg.DBPath)
	return nil
}
