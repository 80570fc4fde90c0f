// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/resume-extractor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5

	dateLayout = "Jan 2006"
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

// PrintCandidate outputs a human-readable summary of the extracted candidate.
func (p *Printer) PrintCandidate(candidate *types.Candidate) {
	if candidate == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", candidate.Name))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", candidate.Email))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", candidate.Phone))
	if candidate.LinkedIn != "" {
		sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", candidate.LinkedIn))
	}
	sb.WriteString("\n")

	if len(candidate.WorkExperiences) > 0 {
		sb.WriteString(fmt.Sprintf("Work Experience (%d):\n", len(candidate.WorkExperiences)))
		count := min(len(candidate.WorkExperiences), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := candidate.WorkExperiences[i]
			sb.WriteString(fmt.Sprintf("  • %s @ %s", exp.JobTitle, exp.Company))
			if exp.StartDate != nil {
				sb.WriteString(fmt.Sprintf(" (%s - ", formatDate(exp.StartDate)))
				if exp.EndDate != nil {
					sb.WriteString(formatDate(exp.EndDate))
				} else {
					sb.WriteString("Present")
				}
				sb.WriteString(")")
			}
			sb.WriteString("\n")
		}
		if len(candidate.WorkExperiences) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(candidate.WorkExperiences)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(candidate.Educations) > 0 {
		sb.WriteString(fmt.Sprintf("Education (%d):\n", len(candidate.Educations)))
		count := min(len(candidate.Educations), 3)
		for i := 0; i < count; i++ {
			edu := candidate.Educations[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s\n", edu.Degree, edu.Institution))
		}
		if len(candidate.Educations) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(candidate.Educations)-3))
		}
		sb.WriteString("\n")
	}

	if candidate.Skills != "" {
		skills := candidate.Skills
		if len(skills) > 50 {
			skills = skills[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills: %s\n", skills))
	}

	p.printBox("EXTRACTED CANDIDATE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCareerAnalysis outputs the computed career timeline summary.
func (p *Printer) PrintCareerAnalysis(analysis *types.CareerAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	years := analysis.TotalExperienceMonths / 12
	months := analysis.TotalExperienceMonths % 12
	sb.WriteString(fmt.Sprintf("Total experience: %dy %dm\n", years, months))

	if analysis.CareerStartDate != nil {
		sb.WriteString(fmt.Sprintf("Career start:     %s\n", formatDate(analysis.CareerStartDate)))
	}
	if analysis.CareerEndDate != nil {
		sb.WriteString(fmt.Sprintf("Career end:       %s\n", formatDate(analysis.CareerEndDate)))
	} else if analysis.CareerStartDate != nil {
		sb.WriteString("Career end:       ongoing\n")
	}

	if analysis.HasGaps {
		sb.WriteString(fmt.Sprintf("\nGaps (%d):\n", len(analysis.Gaps)))
		count := min(len(analysis.Gaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			gap := analysis.Gaps[i]
			sb.WriteString(fmt.Sprintf("  ⚠ %s - %s (%d months)\n",
				gap.Start.Format(dateLayout), gap.End.Format(dateLayout), gap.Months))
		}
		if len(analysis.Gaps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.Gaps)-maxItemsToShow))
		}
	}

	if analysis.HasOverlaps {
		sb.WriteString(fmt.Sprintf("\nOverlaps (%d):\n", len(analysis.Overlaps)))
		count := min(len(analysis.Overlaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			ov := analysis.Overlaps[i]
			sb.WriteString(fmt.Sprintf("  ⚠ %s - %s (%d months)\n",
				ov.Start.Format(dateLayout), ov.End.Format(dateLayout), ov.Months))
		}
		if len(analysis.Overlaps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.Overlaps)-maxItemsToShow))
		}
	}

	if !analysis.HasGaps && !analysis.HasOverlaps {
		sb.WriteString("\nNo gaps or overlaps detected.")
	}

	p.printBox("CAREER TIMELINE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnonymizationStats outputs what the anonymizer kept, removed and scrubbed.
func (p *Printer) PrintAnonymizationStats(stats *types.AnonymizationStats) {
	if stats == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Sections: %d original, %d kept, %d removed\n",
		len(stats.OriginalSections), len(stats.KeptSections), len(stats.RemovedSections)))
	sb.WriteString(fmt.Sprintf("Removal ratio: %.0f%%\n", stats.AnonymizationRatio()*100))
	sb.WriteString(fmt.Sprintf("Characters removed: %d\n", stats.RemovedCharacterCount))

	if len(stats.RemovedSections) > 0 {
		removed := make([]string, 0, len(stats.RemovedSections))
		for name := range stats.RemovedSections {
			removed = append(removed, name)
		}
		sort.Strings(removed)
		sb.WriteString(fmt.Sprintf("\nRemoved: %s\n", strings.Join(removed, ", ")))
	}

	if len(stats.AnonymizedItems) > 0 {
		sb.WriteString(fmt.Sprintf("\nScrubbed items (%d):\n", len(stats.AnonymizedItems)))
		count := min(len(stats.AnonymizedItems), maxItemsToShow)
		for i := 0; i < count; i++ {
			item := stats.AnonymizedItems[i]
			if len(item) > 45 {
				item = item[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", item))
		}
		if len(stats.AnonymizedItems) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(stats.AnonymizedItems)-maxItemsToShow))
		}
	}

	p.printBox("ANONYMIZATION SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
