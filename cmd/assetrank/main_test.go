package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestReadRawAssets(t *testing.T) {
	t.Run("reads rows keyed by header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "listings.csv")
		csvData := "ref,name,price,bts_station\n" +
			"NPA-2024-000123,Lumpini Place,3500000,450\n" +
			"NPA-2024-000124,Baan Suan,,\n"
		require.NoError(t, os.WriteFile(path, []byte(csvData), 0644))

		raws, err := readRawAssets(path)
		require.NoError(t, err)
		require.Len(t, raws, 2)

		assert.Equal(t, "NPA-2024-000123", raws[0]["ref"])
		assert.Equal(t, "3500000", raws[0]["price"])
		assert.Equal(t, "450", raws[0]["bts_station"])

		// Empty cells are absent, not empty strings
		_, hasPrice := raws[1]["price"]
		assert.False(t, hasPrice)
		_, hasStation := raws[1]["bts_station"]
		assert.False(t, hasStation)
	})

	t.Run("trims whitespace in headers and values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "listings.csv")
		csvData := "ref , name\nNPA-2024-000123 , Lumpini Place \n"
		require.NoError(t, os.WriteFile(path, []byte(csvData), 0644))

		raws, err := readRawAssets(path)
		require.NoError(t, err)
		require.Len(t, raws, 1)
		assert.Equal(t, "Lumpini Place", raws[0]["name"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readRawAssets(filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})

	t.Run("empty file has no header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.csv")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		_, err := readRawAssets(path)
		assert.Error(t, err)
	})
}

func TestIngestCommandFlags(t *testing.T) {
	app := &cli.App{
		Name: "assetrank",
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Action: ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "src",
						Aliases:  []string{"s"},
						Required: true,
					},
					&cli.StringFlag{
						Name:  "ai-host",
						Value: "http://localhost:11434/v1",
					},
				},
			},
		},
	}

	t.Run("db is required", func(t *testing.T) {
		err := app.Run([]string{"assetrank", "ingest", "--src", "/tmp/test.csv"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db")
	})

	t.Run("src is required", func(t *testing.T) {
		err := app.Run([]string{"assetrank", "ingest", "--db", "/tmp/test"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "src")
	})

	t.Run("ai-host has default value", func(t *testing.T) {
		cmd := app.Commands[0]
		var hostFlag *cli.StringFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "ai-host" {
				hostFlag = f
				break
			}
		}
		require.NotNil(t, hostFlag)
		assert.Equal(t, "http://localhost:11434/v1", hostFlag.Value)
	})
}

func TestSetupLogger(t *testing.T) {
	newApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "log-level",
					Aliases: []string{"l"},
					Value:   "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected slog.Level
		}{
			{"debug", slog.LevelDebug},
			{"info", slog.LevelInfo},
			{"warn", slog.LevelWarn},
			{"error", slog.LevelError},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", tc.input})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, tc := range []string{"DEBUG", "Info", "WaRn", "ERROR"} {
			t.Run(tc, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", tc})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "invalid"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("log-level flag has alias -l", func(t *testing.T) {
		err := newApp().Run([]string{"test", "-l", "debug"})
		require.NoError(t, err)
	})
}
