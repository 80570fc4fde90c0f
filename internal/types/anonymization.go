package types

// AnonymizationConfig controls how the hybrid anonymizer treats summaries,
// leaked contact details, and sections it cannot classify.
type AnonymizationConfig struct {
	IncludeCleanedSummary   bool
	RemoveLeakedEmails      bool
	RemoveLeakedPhones      bool
	RemoveLeakedSocialMedia bool
	KeepUnknownSections     bool
}

// StandardConfig drops the summary and unknown sections and scrubs all
// leaked contact details.
func StandardConfig() *AnonymizationConfig {
	return &AnonymizationConfig{
		RemoveLeakedEmails:      true,
		RemoveLeakedPhones:      true,
		RemoveLeakedSocialMedia: true,
	}
}

// ConservativeConfig keeps a cleaned summary and unclassified sections.
func ConservativeConfig() *AnonymizationConfig {
	cfg := StandardConfig()
	cfg.IncludeCleanedSummary = true
	cfg.KeepUnknownSections = true
	return cfg
}

// AggressiveConfig behaves like StandardConfig but states the summary and
// unknown-section rejections explicitly.
func AggressiveConfig() *AnonymizationConfig {
	cfg := StandardConfig()
	cfg.IncludeCleanedSummary = false
	cfg.KeepUnknownSections = false
	return cfg
}

// AnonymizationStats records what the anonymizer kept, removed and scrubbed.
type AnonymizationStats struct {
	OriginalSections       map[string]bool
	KeptSections           map[string]bool
	RemovedSections        map[string]bool
	AnonymizedItems        []string
	RemovedSummaryElements []string
	RemovedCharacterCount  int
}

// NewAnonymizationStats returns an empty stats record with allocated sets.
func NewAnonymizationStats() *AnonymizationStats {
	return &AnonymizationStats{
		OriginalSections: make(map[string]bool),
		KeptSections:     make(map[string]bool),
		RemovedSections:  make(map[string]bool),
	}
}

// AnonymizationRatio is the fraction of original sections that were removed.
func (s *AnonymizationStats) AnonymizationRatio() float64 {
	if len(s.OriginalSections) == 0 {
		return 0.0
	}
	return float64(len(s.RemovedSections)) / float64(len(s.OriginalSections))
}
