package corpus

import (
	"regexp"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/sells-group/quizbee-cli/internal/model"
)

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// diacriticFold decomposes, strips combining marks, and recomposes, so that
// "Cortés" and "Cortes" dedupe against each other.
var diacriticFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes question text for duplicate comparison: HTML tags
// stripped, diacritics folded, lowercased, whitespace collapsed.
func Normalize(s string) string {
	s = htmlTagRe.ReplaceAllString(s, "")
	if folded, _, err := transform.String(diacriticFold, s); err == nil {
		s = folded
	}
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// DedupeStats reports the outcome of a duplicate scan per tier.
type DedupeStats struct {
	Kept    map[model.Tier]int
	Removed map[model.Tier]int
}

// TotalRemoved sums removals across tiers.
func (s DedupeStats) TotalRemoved() int {
	n := 0
	for _, v := range s.Removed {
		n += v
	}
	return n
}

// Dedupe removes duplicate questions across all tiers, keeping the first
// occurrence in tier order. When dryRun is set the corpus is left untouched
// and only the statistics are computed.
func (c *Corpus) Dedupe(dryRun bool) DedupeStats {
	stats := DedupeStats{
		Kept:    make(map[model.Tier]int),
		Removed: make(map[model.Tier]int),
	}
	seen := make(map[string]struct{})

	for _, tier := range model.Tiers {
		var kept []model.Question
		for _, q := range c.Tiers[tier] {
			key := Normalize(q.Question)
			if _, dup := seen[key]; dup {
				stats.Removed[tier]++
				zap.L().Debug("corpus: duplicate question",
					zap.String("tier", string(tier)),
					zap.String("id", q.ID),
				)
				continue
			}
			seen[key] = struct{}{}
			kept = append(kept, q)
			stats.Kept[tier]++
		}
		if !dryRun {
			c.Tiers[tier] = kept
		}
	}

	return stats
}
