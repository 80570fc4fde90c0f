// Package main provides the resume-extractor CLI entry point.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_extract",
	Short: "Rule-based resume parsing and anonymization",
	Long:  "Resume Extractor parses raw resume text into structured candidate data, analyzes career timelines and produces anonymized resume variants, using deterministic rule-based extraction for English and French resumes.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseNow resolves the reference date used for date-range validation.
// An empty value means the current wall clock.
func parseNow(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	now, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --now value %q (want YYYY-MM-DD): %w", value, err)
	}
	return now, nil
}
