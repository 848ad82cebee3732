package model

import "time"

// Classification is the per-question category assignment across the four
// dimensions. Cardinality bounds: at most 2 regions, at most 2 time periods,
// exactly 1 answer type, at most 3 subject themes.
type Classification struct {
	Regions       []string `json:"regions"`
	TimePeriods   []string `json:"time_periods"`
	AnswerType    string   `json:"answer_type"`
	SubjectThemes []string `json:"subject_themes"`
}

// Clone returns a deep copy. Repair mutates label slices, so callers that
// need the original afterwards should clone first.
func (c Classification) Clone() Classification {
	out := c
	out.Regions = append([]string(nil), c.Regions...)
	out.TimePeriods = append([]string(nil), c.TimePeriods...)
	out.SubjectThemes = append([]string(nil), c.SubjectThemes...)
	return out
}

// HasRegion reports whether the classification carries the given region label.
func (c Classification) HasRegion(label string) bool {
	return containsLabel(c.Regions, label)
}

// HasTimePeriod reports whether the classification carries the given time
// period label.
func (c Classification) HasTimePeriod(label string) bool {
	return containsLabel(c.TimePeriods, label)
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

// Progress tracks how far a classification run has advanced, persisted in the
// metadata store's _progress block so interrupted runs can resume.
type Progress struct {
	LastUpdated    *time.Time `json:"last_updated"`
	TotalQuestions int        `json:"total_questions"`
	Categorized    int        `json:"categorized"`
}

// Metadata is the on-disk metadata document: question id -> classification,
// plus the progress block.
type Metadata struct {
	Progress   Progress                  `json:"_progress"`
	Categories map[string]Classification `json:"categories"`
}

// NewMetadata returns an empty metadata document.
func NewMetadata() *Metadata {
	return &Metadata{Categories: make(map[string]Classification)}
}
