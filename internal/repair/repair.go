// Package repair post-processes classifications to eliminate region and time
// period combinations that are historically impossible, rewriting one side of
// each conflict using secondary indicator scores.
package repair

import (
	"fmt"

	"github.com/sells-group/quizbee-cli/internal/catalog"
	"github.com/sells-group/quizbee-cli/internal/classify"
	"github.com/sells-group/quizbee-cli/internal/model"
)

// ForbiddenPair is a (region, time period) combination declared impossible.
type ForbiddenPair struct {
	Region string
	Period string
}

// Name returns the short statistics key for the pair.
func (p ForbiddenPair) Name() string {
	short := map[string]string{
		catalog.RegionUnitedStates: "US",
		catalog.RegionLatinAmerica: "LatAm",
	}
	period := map[string]string{
		catalog.PeriodAncient:  "Ancient",
		catalog.PeriodMedieval: "Medieval",
	}
	r, ok := short[p.Region]
	if !ok {
		r = p.Region
	}
	t, ok := period[p.Period]
	if !ok {
		t = p.Period
	}
	return r + " + " + t
}

// ForbiddenPairs is the declared table, in repair order. Region-side fixes
// run before period-side fixes within each entry, and entries apply
// sequentially to the current (possibly already repaired) label set.
var ForbiddenPairs = []ForbiddenPair{
	{catalog.RegionUnitedStates, catalog.PeriodAncient},
	{catalog.RegionUnitedStates, catalog.PeriodMedieval},
	{catalog.RegionLatinAmerica, catalog.PeriodAncient},
	{catalog.RegionLatinAmerica, catalog.PeriodMedieval},
}

// HasForbiddenPair reports whether the classification violates the table.
func HasForbiddenPair(cls model.Classification) bool {
	for _, p := range ForbiddenPairs {
		if cls.HasRegion(p.Region) && cls.HasTimePeriod(p.Period) {
			return true
		}
	}
	return false
}

// Violations returns the table entries the classification violates, in table
// order.
func Violations(cls model.Classification) []ForbiddenPair {
	var out []ForbiddenPair
	for _, p := range ForbiddenPairs {
		if cls.HasRegion(p.Region) && cls.HasTimePeriod(p.Period) {
			out = append(out, p)
		}
	}
	return out
}

// Repairer rewrites classifications that violate the forbidden-pair table.
type Repairer struct {
	ind *catalog.Indicators
}

// New returns a Repairer backed by the catalog's indicator families.
func New(cat *catalog.Catalog) *Repairer {
	return &Repairer{ind: cat.Indicators()}
}

// Repair returns a classification guaranteed free of forbidden combinations,
// plus a human-readable change line per rewrite for the audit log. The input
// is not mutated. Every decision is deterministic: ambiguous questions fall
// back to documented defaults rather than failing.
func (r *Repairer) Repair(q model.Question, cls model.Classification) (model.Classification, []string) {
	combined := q.CombinedText()
	out := cls.Clone()
	var changes []string

	if out.HasRegion(catalog.RegionUnitedStates) {
		if out.HasTimePeriod(catalog.PeriodAncient) {
			out, changes = r.fixUSAncient(combined, out, changes)
		}
		if out.HasRegion(catalog.RegionUnitedStates) && out.HasTimePeriod(catalog.PeriodMedieval) {
			out, changes = r.fixUSMedieval(combined, out, changes)
		}
	}

	if out.HasRegion(catalog.RegionLatinAmerica) {
		if out.HasTimePeriod(catalog.PeriodAncient) || out.HasTimePeriod(catalog.PeriodMedieval) {
			out, changes = r.fixLatinAmerica(combined, out, changes)
		}
	}

	return out, changes
}

// fixUSAncient resolves United States x Ancient World. Pre-Columbian content
// relabels the region; genuinely ancient content drops the US label and
// substitutes an inferred ancient region; otherwise the period side is wrong
// and is recomputed from literal years.
func (r *Repairer) fixUSAncient(combined string, cls model.Classification, changes []string) (model.Classification, []string) {
	preColumbian := classify.Score(combined, r.ind.PreColumbian)
	ancient := classify.Score(combined, r.ind.Ancient)
	us := classify.Score(combined, r.ind.UnitedStates)

	switch {
	case preColumbian >= 1:
		cls.Regions = replaceLabel(cls.Regions, catalog.RegionUnitedStates, catalog.RegionPreColumbian)
		changes = append(changes, fmt.Sprintf("changed %q to %q", catalog.RegionUnitedStates, catalog.RegionPreColumbian))
	case ancient > us:
		cls.Regions = removeLabel(cls.Regions, catalog.RegionUnitedStates)
		if len(cls.Regions) == 0 {
			cls.Regions = []string{r.ancientRegion(combined)}
		}
		changes = append(changes, fmt.Sprintf("removed %q (ancient content)", catalog.RegionUnitedStates))
	default:
		cls.TimePeriods = removeLabel(cls.TimePeriods, catalog.PeriodAncient)
		if len(cls.TimePeriods) == 0 {
			cls.TimePeriods = []string{r.fallbackPeriod(combined)}
		}
		changes = append(changes, fmt.Sprintf("removed %q (US content)", catalog.PeriodAncient))
	}
	return cls, changes
}

// fixUSMedieval resolves United States x Medieval Era with the same pattern,
// comparing the medieval indicator family against the US family.
func (r *Repairer) fixUSMedieval(combined string, cls model.Classification, changes []string) (model.Classification, []string) {
	medieval := classify.Score(combined, r.ind.Medieval)
	us := classify.Score(combined, r.ind.UnitedStates)

	if medieval > us {
		cls.Regions = removeLabel(cls.Regions, catalog.RegionUnitedStates)
		if len(cls.Regions) == 0 {
			cls.Regions = []string{catalog.RegionEurope}
		}
		changes = append(changes, fmt.Sprintf("removed %q (medieval content)", catalog.RegionUnitedStates))
	} else {
		cls.TimePeriods = removeLabel(cls.TimePeriods, catalog.PeriodMedieval)
		if len(cls.TimePeriods) == 0 {
			cls.TimePeriods = []string{r.fallbackPeriod(combined)}
		}
		changes = append(changes, fmt.Sprintf("removed %q (US content)", catalog.PeriodMedieval))
	}
	return cls, changes
}

// fixLatinAmerica resolves Latin America & Caribbean x Ancient/Medieval.
// Pre-Columbian content relabels the region; everything else drops the
// offending periods and recomputes, even when the indicator families score
// zero, so the postcondition holds for arbitrary stored classifications.
func (r *Repairer) fixLatinAmerica(combined string, cls model.Classification, changes []string) (model.Classification, []string) {
	preColumbian := classify.Score(combined, r.ind.PreColumbian)

	if preColumbian >= 1 {
		cls.Regions = removeLabel(cls.Regions, catalog.RegionLatinAmerica)
		if !containsLabel(cls.Regions, catalog.RegionPreColumbian) {
			cls.Regions = append(cls.Regions, catalog.RegionPreColumbian)
		}
		changes = append(changes, fmt.Sprintf("changed %q to %q", catalog.RegionLatinAmerica, catalog.RegionPreColumbian))
	} else {
		cls.TimePeriods = removeLabel(cls.TimePeriods, catalog.PeriodAncient)
		cls.TimePeriods = removeLabel(cls.TimePeriods, catalog.PeriodMedieval)
		if len(cls.TimePeriods) == 0 {
			cls.TimePeriods = []string{r.fallbackPeriod(combined)}
		}
		changes = append(changes, "removed impossible time period (Latin America content)")
	}
	return cls, changes
}

// ancientRegion infers a substitute region for an ancient-world question from
// the ancient keyword families, falling back to Europe.
func (r *Repairer) ancientRegion(combined string) string {
	for _, family := range r.ind.AncientRegions {
		if classify.Score(combined, family.Rules) > 0 {
			return family.Region
		}
	}
	return catalog.RegionEurope
}

// fallbackPeriod recomputes a time period from literal years in the text,
// defaulting to the Contemporary Era when no years appear.
func (r *Repairer) fallbackPeriod(combined string) string {
	if period := PeriodForText(combined); period != "" {
		return period
	}
	return catalog.PeriodContemporary
}

func containsLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

func removeLabel(labels []string, label string) []string {
	out := labels[:0]
	for _, l := range labels {
		if l != label {
			out = append(out, l)
		}
	}
	return out
}

func replaceLabel(labels []string, old, replacement string) []string {
	out := removeLabel(labels, old)
	if !containsLabel(out, replacement) {
		out = append(out, replacement)
	}
	return out
}
