// Package main provides csvtool - a delimited-text inspection toolbox.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/csvtool/csvtool/internal/config"
	"github.com/csvtool/csvtool/internal/extract"
	"github.com/csvtool/csvtool/internal/render"
	"github.com/csvtool/csvtool/internal/scanner"
	"github.com/csvtool/csvtool/internal/search"
	"github.com/csvtool/csvtool/internal/stats"
)

// Version information
const (
	Version   = "1.2.0"
	BuildDate = "2026-08-14"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix:          "csvtool",
	ReportTimestamp: false,
})

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Configuration error", "err", err)
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	switch command := os.Args[1]; command {
	case "read":
		runRead(os.Args[2:], cfg)
	case "stats":
		runStats(os.Args[2:], cfg)
	case "find":
		runFind(os.Args[2:], cfg)
	case "extract":
		runExtract(os.Args[2:], cfg)
	case "version":
		fmt.Printf("csvtool v%s (%s)\n", Version, BuildDate)
	case "help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`csvtool - Delimited Text Inspection Toolbox

Usage:
    csvtool <command> [arguments]

Commands:
    read     Print a file row by row with a header and row counter
    stats    Compute descriptive statistics for a file
    find     Search one column for a case-insensitive substring
    extract  Write selected columns to a new file
    version  Show version
    help     Show this help

Use "csvtool <command> --help" for command-specific options.`)
}

// runRead handles the read command
func runRead(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("read", flag.ExitOnError)

	file := fs.String("file", "", "Input CSV file path")
	head := fs.Int("head", 0, "Print only the first N rows (0 = all rows)")
	skipHeader := fs.Bool("skip-header", false, "Suppress header display")
	separator := fs.String("separator", cfg.Separator, "Field separator")
	verbose := fs.Bool("verbose", false, "Enable verbose output")

	_ = fs.Parse(args)
	applyVerbose(*verbose)

	s := mustOpen(*file, *separator, fs)
	defer func() { _ = s.Close() }()

	start := time.Now()
	total, err := render.Tabulate(s, *head, *skipHeader, cfg.TruncateWidth, os.Stdout)
	if err != nil {
		logger.Fatal("Read failed", "err", err)
	}
	logger.Debug("read complete", "rows", total, "elapsed", time.Since(start).Round(time.Millisecond))
}

// runStats handles the stats command
func runStats(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)

	file := fs.String("file", "", "Input CSV file path")
	separator := fs.String("separator", cfg.Separator, "Field separator")
	verbose := fs.Bool("verbose", false, "Enable verbose output")

	_ = fs.Parse(args)
	applyVerbose(*verbose)

	s := mustOpen(*file, *separator, fs)
	defer func() { _ = s.Close() }()

	start := time.Now()
	report, err := stats.Compute(s, *file)
	if err != nil {
		logger.Fatal("Stats failed", "err", err)
	}
	report.Write(os.Stdout)
	logger.Debug("stats complete", "rows", report.RowCount, "elapsed", time.Since(start).Round(time.Millisecond))
}

// runFind handles the find command
func runFind(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("find", flag.ExitOnError)

	file := fs.String("file", "", "Input CSV file path")
	column := fs.String("column", "", "Column to search in (name or zero-based index)")
	term := fs.String("term", "", "Term to search for")
	separator := fs.String("separator", cfg.Separator, "Field separator")
	verbose := fs.Bool("verbose", false, "Enable verbose output")

	_ = fs.Parse(args)
	applyVerbose(*verbose)

	if *column == "" {
		fmt.Fprintln(os.Stderr, "Error: --column is required")
		fs.PrintDefaults()
		os.Exit(1)
	}

	s := mustOpen(*file, *separator, fs)
	defer func() { _ = s.Close() }()

	matches, err := search.Run(s, *column, *term, cfg.TruncateWidth, os.Stdout)
	if err != nil {
		logger.Fatal("Find failed", "err", err)
	}
	logger.Debug("find complete", "matches", matches)
}

// runExtract handles the extract command
func runExtract(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)

	file := fs.String("file", "", "Input CSV file path")
	output := fs.String("output", "", "Output CSV file path")
	columns := fs.String("columns", "", "Comma-separated column names or indices")
	separator := fs.String("separator", cfg.Separator, "Field separator")
	verbose := fs.Bool("verbose", false, "Enable verbose output")

	_ = fs.Parse(args)
	applyVerbose(*verbose)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: --output is required")
		fs.PrintDefaults()
		os.Exit(1)
	}
	if *columns == "" {
		fmt.Fprintln(os.Stderr, "Error: --columns is required")
		fs.PrintDefaults()
		os.Exit(1)
	}

	s := mustOpen(*file, *separator, fs)
	defer func() { _ = s.Close() }()

	result, err := extract.Run(s, *columns, *output, (*separator)[0])
	if err != nil {
		logger.Fatal("Extract failed", "err", err)
	}

	fmt.Printf("Successfully extracted %d columns to %s\n", result.Columns, *output)
	fmt.Printf("   Processed %d rows\n", result.Rows)
}

// mustOpen validates the shared --file/--separator arguments and opens the
// input, exiting non-zero on any failure.
func mustOpen(file, separator string, fs *flag.FlagSet) *scanner.Scanner {
	if file == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		fs.PrintDefaults()
		os.Exit(1)
	}
	if len(separator) != 1 {
		logger.Fatal("Separator must be a single byte", "separator", separator)
	}
	s, err := scanner.Open(file, separator[0])
	if err != nil {
		logger.Fatal("Open failed", "err", err)
	}
	return s
}

func applyVerbose(verbose bool) {
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}
