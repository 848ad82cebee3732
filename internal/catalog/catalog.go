// Package catalog holds the static pattern tables that drive question
// classification. A Catalog is built once at startup, compiled eagerly so a
// malformed pattern is a fatal configuration error, and never mutated during
// a run. Tests substitute smaller catalogs through the same constructor path.
package catalog

import (
	"regexp"

	"github.com/rotisserie/eris"
)

// Dimension is one independent axis of classification.
type Dimension string

// The four classification dimensions.
const (
	DimensionRegion       Dimension = "region"
	DimensionTimePeriod   Dimension = "time_period"
	DimensionAnswerType   Dimension = "answer_type"
	DimensionSubjectTheme Dimension = "subject_theme"
)

// Dimensions lists the classification dimensions in pipeline order.
var Dimensions = []Dimension{
	DimensionRegion,
	DimensionTimePeriod,
	DimensionAnswerType,
	DimensionSubjectTheme,
}

// Rule is a single labeled pattern with implicit weight 1.
type Rule struct {
	Label string
	re    *regexp.Regexp
}

// Match reports whether the rule's pattern occurs anywhere in text,
// case-insensitively.
func (r Rule) Match(text string) bool {
	return r.re.MatchString(text)
}

// Policy is the per-dimension selection policy applied after ranking.
type Policy struct {
	// MaxResults bounds the result set size for the dimension.
	MaxResults int
	// DefaultLabel is assigned when no rule in the dimension matched.
	DefaultLabel string
}

type labelEntry struct {
	label string
	rules []Rule
}

type dimensionTable struct {
	entries []labelEntry
	policy  Policy
}

func (t *dimensionTable) find(label string) *labelEntry {
	for i := range t.entries {
		if t.entries[i].label == label {
			return &t.entries[i]
		}
	}
	return nil
}

// Catalog is the full immutable pattern catalog: dimension -> label ->
// ordered rules, plus the indicator families the repairer consults.
type Catalog struct {
	dims map[Dimension]*dimensionTable
	ind  *Indicators
}

// New compiles the built-in pattern tables into a Catalog. A pattern that
// fails to compile is a configuration error and aborts construction, naming
// the offending dimension and label.
func New() (*Catalog, error) {
	c := &Catalog{dims: make(map[Dimension]*dimensionTable)}

	tables := []struct {
		dim    Dimension
		data   []labelPatterns
		policy Policy
	}{
		{DimensionRegion, regionPatterns, Policy{MaxResults: 2, DefaultLabel: RegionGlobal}},
		{DimensionTimePeriod, timePeriodPatterns, Policy{MaxResults: 2, DefaultLabel: PeriodContemporary}},
		{DimensionAnswerType, answerTypePatterns, Policy{MaxResults: 1, DefaultLabel: AnswerPeople}},
		{DimensionSubjectTheme, subjectThemePatterns, Policy{MaxResults: 3, DefaultLabel: ThemePolitical}},
	}

	for _, tbl := range tables {
		dt := &dimensionTable{policy: tbl.policy}
		for _, lp := range tbl.data {
			entry := labelEntry{label: lp.label}
			for _, p := range lp.patterns {
				rule, err := compileRule(lp.label, p)
				if err != nil {
					return nil, eris.Wrapf(err, "catalog: dimension %s label %q", tbl.dim, lp.label)
				}
				entry.rules = append(entry.rules, rule)
			}
			dt.entries = append(dt.entries, entry)
		}
		c.dims[tbl.dim] = dt
	}

	ind, err := newIndicators()
	if err != nil {
		return nil, err
	}
	c.ind = ind

	return c, nil
}

func compileRule(label, pattern string) (Rule, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return Rule{}, eris.Wrapf(err, "compile pattern %q", pattern)
	}
	return Rule{Label: label, re: re}, nil
}

// Labels returns the dimension's labels in declaration order. Declaration
// order is the tie-break for equal scores, so it is part of the contract.
func (c *Catalog) Labels(dim Dimension) []string {
	dt, ok := c.dims[dim]
	if !ok {
		return nil
	}
	labels := make([]string, len(dt.entries))
	for i, e := range dt.entries {
		labels[i] = e.label
	}
	return labels
}

// Rules returns the ordered rule list for one label of one dimension.
func (c *Catalog) Rules(dim Dimension, label string) []Rule {
	dt, ok := c.dims[dim]
	if !ok {
		return nil
	}
	if e := dt.find(label); e != nil {
		return e.rules
	}
	return nil
}

// Policy returns the selection policy for a dimension.
func (c *Catalog) Policy(dim Dimension) Policy {
	dt, ok := c.dims[dim]
	if !ok {
		return Policy{}
	}
	return dt.policy
}

// Indicators returns the secondary-signal families used by constraint repair.
func (c *Catalog) Indicators() *Indicators {
	return c.ind
}

// Extend appends extra patterns to a label, creating the label at the end of
// the dimension's declaration order if it does not exist yet. Used by the
// overlay file; not safe once classification has started.
func (c *Catalog) Extend(dim Dimension, label string, patterns []string) error {
	dt, ok := c.dims[dim]
	if !ok {
		return eris.Errorf("catalog: unknown dimension %q", dim)
	}
	entry := dt.find(label)
	if entry == nil {
		dt.entries = append(dt.entries, labelEntry{label: label})
		entry = &dt.entries[len(dt.entries)-1]
	}
	for _, p := range patterns {
		rule, err := compileRule(label, p)
		if err != nil {
			return eris.Wrapf(err, "catalog: dimension %s label %q", dim, label)
		}
		entry.rules = append(entry.rules, rule)
	}
	return nil
}
