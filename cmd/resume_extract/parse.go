package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/ingestion"
	"github.com/jonathan/resume-extractor/internal/observability"
	"github.com/jonathan/resume-extractor/internal/parsing"
	"github.com/jonathan/resume-extractor/internal/schemas"
	"github.com/jonathan/resume-extractor/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse resume text into structured candidate JSON",
	Long:  "Parse one resume file, or a directory of resume files, into structured candidate JSON that validates against the candidate schema.",
	RunE:  runParse,
}

var (
	parseInputFile  string
	parseInputDir   string
	parseOutputPath string
	parseConfigPath string
	parseNowFlag    string
	parseMaxWorkers int
	parseVerbose    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to resume file (.txt, .html)")
	parseCmd.Flags().StringVar(&parseInputDir, "in-dir", "", "Directory of resume files to parse in batch")
	parseCmd.Flags().StringVarP(&parseOutputPath, "out", "o", "", "Output JSON file (or directory in batch mode); stdout if omitted")
	parseCmd.Flags().StringVar(&parseConfigPath, "config", "", "Path to JSON config file")
	parseCmd.Flags().StringVar(&parseNowFlag, "now", "", "Reference date for date validation (YYYY-MM-DD, default today)")
	parseCmd.Flags().IntVar(&parseMaxWorkers, "max-workers", 0, "Parallelism for batch parsing (default NumCPU)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print detailed extraction information")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	if parseConfigPath != "" {
		cfg, err := config.LoadConfig(parseConfigPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		flags := config.Config{
			Input:      parseInputFile,
			InDir:      parseInputDir,
			Output:     parseOutputPath,
			Now:        parseNowFlag,
			MaxWorkers: parseMaxWorkers,
		}
		merged := flags.MergeWithDefaults(*cfg)
		parseInputFile = merged.Input
		parseInputDir = merged.InDir
		parseOutputPath = merged.Output
		parseNowFlag = merged.Now
		parseMaxWorkers = merged.MaxWorkers
		parseVerbose = parseVerbose || cfg.Verbose
	}

	if parseInputFile == "" && parseInputDir == "" {
		return fmt.Errorf("must provide --in or --in-dir")
	}
	if parseInputFile != "" && parseInputDir != "" {
		return fmt.Errorf("cannot use --in with --in-dir")
	}

	now, err := parseNow(parseNowFlag)
	if err != nil {
		return err
	}

	if parseInputDir != "" {
		return runParseBatch(now)
	}

	candidate, err := parseFile(parseInputFile, now)
	if err != nil {
		return err
	}

	jsonBytes, err := json.MarshalIndent(candidate, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if parseOutputPath == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
		return nil
	}

	if err := os.WriteFile(parseOutputPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	validateAgainstSchema(parseOutputPath)

	_, _ = fmt.Fprintf(os.Stdout, "Successfully parsed candidate\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", parseOutputPath)
	return nil
}

func parseFile(path string, now time.Time) (*types.Candidate, error) {
	text, meta, err := ingestion.IngestFromFile(path)
	if err != nil {
		return nil, err
	}

	candidate := parsing.ParseCandidate(text, now)
	if err := candidate.Validate(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: extracted contact fields failed validation: %v\n", err)
	}

	if parseVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintCandidate(candidate)
		_, _ = fmt.Fprintf(os.Stderr, "Input: %d chars, %d words, %d lines (sha256 %s)\n",
			meta.Characters, meta.Words, meta.Lines, meta.Hash[:12])
	}

	return candidate, nil
}

// runParseBatch parses every supported file in --in-dir concurrently and
// writes one <name>.json per input into the output directory.
func runParseBatch(now time.Time) error {
	entries, err := os.ReadDir(parseInputDir)
	if err != nil {
		return fmt.Errorf("failed to read input directory: %w", err)
	}

	outDir := parseOutputPath
	if outDir == "" {
		outDir = parseInputDir
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	workers := parseMaxWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var g errgroup.Group
	g.SetLimit(workers)

	var mu sync.Mutex
	parsed := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".html", ".htm":
		default:
			continue
		}

		name := entry.Name()
		g.Go(func() error {
			candidate, err := parseFile(filepath.Join(parseInputDir, name), now)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			jsonBytes, err := json.MarshalIndent(candidate, "", "  ")
			if err != nil {
				return fmt.Errorf("%s: failed to marshal JSON: %w", name, err)
			}

			base := strings.TrimSuffix(name, filepath.Ext(name))
			outPath := filepath.Join(outDir, base+".json")
			if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
				return fmt.Errorf("%s: failed to write output: %w", name, err)
			}

			mu.Lock()
			parsed++
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully parsed %d resumes into %s\n", parsed, outDir)
	return nil
}

// validateAgainstSchema checks the written JSON against the candidate schema
// when the schema file can be located. Failures warn rather than fail the
// command since the JSON has already been written.
func validateAgainstSchema(jsonPath string) {
	schemaPath := schemas.ResolveSchemaPath(schemas.CandidateSchemaPath)
	if schemaPath == "" {
		return
	}

	if err := schemas.ValidateJSON(schemaPath, jsonPath); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: generated JSON does not validate against schema: %v\n", err)
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate output against schema: %v\n", err)
	}
}
