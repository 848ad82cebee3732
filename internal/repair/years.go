package repair

import (
	"regexp"
	"strconv"

	"github.com/sells-group/quizbee-cli/internal/catalog"
)

var (
	// Explicit 4-digit CE years 1000-2029.
	ceYearRe = regexp.MustCompile(`\b(1[0-9]{3}|20[0-2][0-9])\b`)
	// BCE/BC-suffixed numbers, treated as negative years.
	bceYearRe = regexp.MustCompile(`(?i)\b(\d+)\s*(BCE|B\.C\.E\.|B\.C\.|BC)\b`)
)

// YearsIn extracts every literal year mentioned in the text. BCE years come
// back negative.
func YearsIn(text string) []int {
	var years []int
	for _, m := range ceYearRe.FindAllStringSubmatch(text, -1) {
		if y, err := strconv.Atoi(m[1]); err == nil {
			years = append(years, y)
		}
	}
	for _, m := range bceYearRe.FindAllStringSubmatch(text, -1) {
		if y, err := strconv.Atoi(m[1]); err == nil {
			years = append(years, -y)
		}
	}
	return years
}

// PeriodForYears maps the average of the detected years onto the fixed
// period breakpoints. Returns "" when years is empty.
func PeriodForYears(years []int) string {
	if len(years) == 0 {
		return ""
	}
	sum := 0
	for _, y := range years {
		sum += y
	}
	avg := float64(sum) / float64(len(years))

	switch {
	case avg < 500:
		return catalog.PeriodAncient
	case avg < 1450:
		return catalog.PeriodMedieval
	case avg < 1750:
		return catalog.PeriodEarlyModern
	case avg < 1850:
		return catalog.PeriodRevolutions
	case avg < 1914:
		return catalog.PeriodIndustrial
	case avg < 1945:
		return catalog.PeriodWorldWars
	default:
		return catalog.PeriodContemporary
	}
}

// PeriodForText determines a time period from literal years in the text.
// Returns "" when no years are found; the caller picks the documented
// default. Indicator-based fallbacks for year-less text live in the Repairer,
// which owns the compiled indicator families.
func PeriodForText(text string) string {
	return PeriodForYears(YearsIn(text))
}
