package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dusk-indust/roster/internal/config"
	"github.com/dusk-indust/roster/internal/console"
	"github.com/dusk-indust/roster/internal/logging"
	"github.com/dusk-indust/roster/internal/roster"
)

// CLI flags parsed from command line.
type cliFlags struct {
	File      string
	ConfigDir string
	LogLevel  string
	LogFormat string
	ServeMCP  bool
	Version   bool
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var flags cliFlags

	fs := flag.NewFlagSet("roster", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&flags.File, "file", "", "path to the student records file (default from config, else students.txt)")
	fs.StringVar(&flags.ConfigDir, "config", ".", "directory containing roster.yml")
	fs.StringVar(&flags.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&flags.LogFormat, "log-format", "", "log format: text, json")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as a read-only MCP server on stdio")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: roster [flags] [export|chart]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Version {
		fmt.Fprintln(stdout, version)
		return nil
	}

	cfg, cfgErr := config.Load(flags.ConfigDir)
	if flags.File != "" {
		cfg.DataFile = flags.File
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
	if flags.LogFormat != "" {
		cfg.LogFormat = flags.LogFormat
	}

	logging.Setup(stderr, cfg.LogLevel, cfg.LogFormat)
	if cfgErr != nil {
		slog.Warn("config ignored, using defaults", "dir", flags.ConfigDir, "error", cfgErr)
	}

	store := roster.NewFileStore(cfg.DataFile)

	if flags.ServeMCP {
		return runServeMCP(context.Background(), store)
	}

	switch cmd := fs.Arg(0); cmd {
	case "":
		return runInteractive(stdin, stdout, store)
	case "export":
		return runExport(stdout, store)
	case "chart":
		return runChart(stdout, store)
	default:
		return fmt.Errorf("unknown command %q (want export or chart)", cmd)
	}
}

// runInteractive loads the records and hands them to the menu. Load
// problems are reported and the session starts with whatever was readable.
func runInteractive(stdin io.Reader, stdout io.Writer, store *roster.FileStore) error {
	r, report, err := store.Load()
	if err != nil {
		fmt.Fprintf(stdout, "**Error**: Could not read from file %s: %v\n", store.Path(), err)
	}
	for _, skipped := range report.Skipped {
		fmt.Fprintf(stdout, "**Error**: Corrupt data line %d skipped: %s. Error: %v\n",
			skipped.Line, skipped.Text, skipped.Err)
	}
	slog.Info("roster loaded", "path", store.Path(), "records", r.Len(), "skipped", len(report.Skipped))

	return console.New(stdin, stdout, r, store).Run(context.Background())
}
