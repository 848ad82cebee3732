package classify

import (
	"sort"

	"github.com/sells-group/quizbee-cli/internal/catalog"
	"github.com/sells-group/quizbee-cli/internal/model"
)

// Classifier assigns category labels across all four dimensions. It is a pure
// function of (text, catalog): no side effects, no randomness, so repeated
// runs over the same corpus produce identical results.
type Classifier struct {
	cat *catalog.Catalog
}

// New returns a Classifier over the given catalog.
func New(cat *catalog.Catalog) *Classifier {
	return &Classifier{cat: cat}
}

// Classify scores the question's combined text against every dimension and
// applies each dimension's selection policy.
func (c *Classifier) Classify(q model.Question) model.Classification {
	combined := q.CombinedText()

	regions := c.ClassifyDimension(catalog.DimensionRegion, combined)
	periods := c.ClassifyDimension(catalog.DimensionTimePeriod, combined)
	periods = c.constrainPeriods(regions, periods)
	answerTypes := c.ClassifyDimension(catalog.DimensionAnswerType, combined)
	themes := c.ClassifyDimension(catalog.DimensionSubjectTheme, combined)

	return model.Classification{
		Regions:       regions,
		TimePeriods:   periods,
		AnswerType:    answerTypes[0],
		SubjectThemes: themes,
	}
}

// ClassifyDimension ranks one dimension's labels by score and selects per the
// dimension's policy: labels with score > 0, descending score, ties broken by
// catalog declaration order, truncated to MaxResults; the policy default when
// nothing matched. Always returns at least one label.
func (c *Classifier) ClassifyDimension(dim catalog.Dimension, text string) []string {
	labels := c.cat.Labels(dim)
	policy := c.cat.Policy(dim)

	type scored struct {
		label string
		score int
	}
	var matched []scored
	for _, label := range labels {
		if s := Score(text, c.cat.Rules(dim, label)); s > 0 {
			matched = append(matched, scored{label, s})
		}
	}

	// Stable sort keeps declaration order for equal scores.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})

	if len(matched) > policy.MaxResults {
		matched = matched[:policy.MaxResults]
	}

	if len(matched) == 0 {
		return []string{policy.DefaultLabel}
	}

	out := make([]string, len(matched))
	for i, m := range matched {
		out[i] = m.label
	}
	return out
}

// constrainPeriods drops time periods that are impossible for the selected
// regions at classification time: the United States and post-colonial Latin
// America cannot be Ancient or Medieval. Pre-Columbian questions are exempt.
// The constraint repairer handles the combinations that survive this filter
// through mis-scoring.
func (c *Classifier) constrainPeriods(regions, periods []string) []string {
	hasUS := containsLabel(regions, catalog.RegionUnitedStates)
	hasLatAm := containsLabel(regions, catalog.RegionLatinAmerica)
	hasPreColumbian := containsLabel(regions, catalog.RegionPreColumbian)

	if hasUS || (hasLatAm && !hasPreColumbian) {
		periods = dropLabels(periods, catalog.PeriodAncient, catalog.PeriodMedieval)
		if len(periods) == 0 {
			periods = []string{catalog.PeriodContemporary}
		}
	}
	return periods
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

func dropLabels(labels []string, drop ...string) []string {
	out := labels[:0]
	for _, l := range labels {
		keep := true
		for _, d := range drop {
			if l == d {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, l)
		}
	}
	return out
}
