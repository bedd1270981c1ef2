// Copyright 2025 Mercil
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/mercil/assetrank"
	"github.com/mercil/assetrank/ai"
	"github.com/mercil/assetrank/config"
	"github.com/mercil/assetrank/ingestion"
)

func main() {
	app := &cli.App{
		Name:  "assetrank",
		Usage: "Constraint-gated semantic search over real estate listings",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "Parse, embed and store listings from a CSV export",
				Action: ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "src",
						Aliases:  []string{"s"},
						Usage:    "Path to the listings CSV file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "Path to a TOML scoring configuration overlay",
					},
					&cli.StringFlag{
						Name:  "ai-host",
						Usage: "OpenAI-compatible service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
					&cli.StringFlag{
						Name:  "parser-model",
						Usage: "Intent parser model name",
						Value: "qwen2.5:3b",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Rank stored listings against a free-form query",
				Action:    searchCommand,
				ArgsUsage: "QUERY...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "Path to a TOML scoring configuration overlay",
					},
					&cli.StringFlag{
						Name:  "ai-host",
						Usage: "OpenAI-compatible service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "embeddinggemma",
					},
					&cli.StringFlag{
						Name:  "parser-model",
						Usage: "Intent parser model name",
						Value: "qwen2.5:3b",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func ingestCommand(c *cli.Context) error {
	ctx := context.Background()

	raws, err := readRawAssets(c.String("src"))
	if err != nil {
		return fmt.Errorf("failed to read listings: %w", err)
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	pipeline, err := db.NewIngestionPipeline()
	if err != nil {
		return fmt.Errorf("failed to create ingestion pipeline: %w", err)
	}
	defer pipeline.Release()

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Source: %s (%d rows)\n", c.String("src"), len(raws))
	fmt.Fprintln(os.Stderr)

	stored, err := pipeline.Ingest(ctx, raws)
	if err != nil {
		// Partial failures are reported but do not fail the run
		fmt.Fprintf(os.Stderr, "Some rows were skipped:\n%v\n", err)
	}
	fmt.Fprintf(os.Stderr, "Stored %d of %d listings\n", len(stored), len(raws))

	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return fmt.Errorf("a search query is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	searcher, err := db.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}
	defer searcher.Release()

	response, err := searcher.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	for _, warning := range response.Warnings {
		fmt.Printf("warning: %s\n", warning)
	}

	if len(response.Results) == 0 {
		fmt.Println(response.Message)
		return nil
	}

	fmt.Printf("Found %d hits\n", len(response.Results))
	for i, hit := range response.Results {
		fmt.Printf("%d: %s '%s' [%.3f]\n", i+1, hit.Asset.Ref, hit.Asset.Name, hit.FinalScore)
		fmt.Printf("   intent %.2f | semantic %.3f | lifestyle %.1f\n",
			hit.IntentScore, hit.SemanticScore, hit.LifestyleScore)
		for _, signal := range hit.Scoring.Positive {
			fmt.Printf("   + %s\n", signal.Message)
		}
		for _, signal := range hit.Scoring.Negative {
			fmt.Printf("   - %s\n", signal.Message)
		}
	}

	return nil
}

// openDatabase builds the Database handle from the shared flags.
func openDatabase(c *cli.Context) (*assetrank.Database, error) {
	cfg := config.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
	}

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("ai-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithParserModel(c.String("parser-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	db, err := assetrank.NewDatabase(c.String("db"),
		assetrank.WithConfig(cfg),
		assetrank.WithAIConfig(aiConfig),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// readRawAssets loads a CSV export into raw string records, keyed by the
// header row. Empty cells are omitted so downstream parsing treats them
// as absent rather than zero.
func readRawAssets(path string) ([]ingestion.RawAsset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var raws []ingestion.RawAsset
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row %d: %w", len(raws)+2, err)
		}

		raw := make(ingestion.RawAsset, len(header))
		for i, value := range record {
			if i >= len(header) {
				break
			}
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			raw[header[i]] = value
		}
		raws = append(raws, raw)
	}

	return raws, nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
