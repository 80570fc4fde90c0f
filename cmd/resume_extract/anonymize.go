package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-extractor/internal/anonymize"
	"github.com/jonathan/resume-extractor/internal/ingestion"
	"github.com/jonathan/resume-extractor/internal/observability"
	"github.com/jonathan/resume-extractor/internal/types"
	"github.com/spf13/cobra"
)

var anonymizeCmd = &cobra.Command{
	Use:   "anonymize",
	Short: "Produce an anonymized variant of a resume",
	Long:  "Strip personally identifying information from a resume while preserving its professional content, using either section-aware hybrid anonymization or full identity scrubbing.",
	RunE:  runAnonymize,
}

var (
	anonInputFile  string
	anonOutputFile string
	anonPreset     string
	anonMode       string
	anonVerbose    bool
)

func init() {
	anonymizeCmd.Flags().StringVarP(&anonInputFile, "in", "i", "", "Path to resume file (required)")
	anonymizeCmd.Flags().StringVarP(&anonOutputFile, "out", "o", "", "Output text file; stdout if omitted")
	anonymizeCmd.Flags().StringVar(&anonPreset, "preset", "standard", "Anonymization preset: standard, conservative or aggressive")
	anonymizeCmd.Flags().StringVar(&anonMode, "mode", "hybrid", "Anonymization mode: hybrid (section-aware) or full (scrub everything)")
	anonymizeCmd.Flags().BoolVarP(&anonVerbose, "verbose", "v", false, "Print anonymization statistics")

	rootCmd.AddCommand(anonymizeCmd)
}

func presetConfig(name string) (*types.AnonymizationConfig, error) {
	switch name {
	case "standard":
		return types.StandardConfig(), nil
	case "conservative":
		return types.ConservativeConfig(), nil
	case "aggressive":
		return types.AggressiveConfig(), nil
	default:
		return nil, fmt.Errorf("unknown preset %q (want standard, conservative or aggressive)", name)
	}
}

func runAnonymize(_ *cobra.Command, _ []string) error {
	if anonInputFile == "" {
		return fmt.Errorf("must provide --in")
	}

	text, _, err := ingestion.IngestFromFile(anonInputFile)
	if err != nil {
		return err
	}

	var result string
	switch anonMode {
	case "full":
		result = anonymize.ScrubAll(text)
	case "hybrid":
		cfg, err := presetConfig(anonPreset)
		if err != nil {
			return err
		}

		anonymized, stats, err := anonymize.Anonymize(text, cfg)
		if err != nil {
			return fmt.Errorf("anonymization failed: %w", err)
		}
		result = anonymized

		if anonVerbose {
			observability.NewPrinter(os.Stderr).PrintAnonymizationStats(stats)
		}
	default:
		return fmt.Errorf("unknown mode %q (want hybrid or full)", anonMode)
	}

	if anonOutputFile == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", result)
		return nil
	}

	if err := os.WriteFile(anonOutputFile, []byte(result), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully anonymized resume\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", anonOutputFile)
	return nil
}
