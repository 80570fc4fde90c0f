package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-extractor/internal/dates"
	"github.com/jonathan/resume-extractor/internal/ingestion"
	"github.com/jonathan/resume-extractor/internal/observability"
	"github.com/jonathan/resume-extractor/internal/parsing"
	"github.com/spf13/cobra"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Analyze the career timeline of a resume",
	Long:  "Extract work experiences from a resume and compute total experience, career span, employment gaps and overlapping positions.",
	RunE:  runTimeline,
}

var (
	timelineInputFile  string
	timelineOutputFile string
	timelineNowFlag    string
)

func init() {
	timelineCmd.Flags().StringVarP(&timelineInputFile, "in", "i", "", "Path to resume file (required)")
	timelineCmd.Flags().StringVarP(&timelineOutputFile, "out", "o", "", "Output JSON file; formatted summary on stdout if omitted")
	timelineCmd.Flags().StringVar(&timelineNowFlag, "now", "", "Reference date for ongoing positions (YYYY-MM-DD, default today)")

	rootCmd.AddCommand(timelineCmd)
}

func runTimeline(_ *cobra.Command, _ []string) error {
	if timelineInputFile == "" {
		return fmt.Errorf("must provide --in")
	}

	now, err := parseNow(timelineNowFlag)
	if err != nil {
		return err
	}

	text, _, err := ingestion.IngestFromFile(timelineInputFile)
	if err != nil {
		return err
	}

	candidate := parsing.ParseCandidate(text, now)
	ranges := parsing.CareerRanges(candidate.WorkExperiences)
	analysis := dates.AnalyzeTimeline(ranges, now)

	if timelineOutputFile == "" {
		observability.NewPrinter(os.Stdout).PrintCareerAnalysis(&analysis)
		return nil
	}

	jsonBytes, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(timelineOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully analyzed career timeline\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", timelineOutputFile)
	return nil
}
