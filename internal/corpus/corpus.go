// Package corpus reads and writes the question corpus file: questions grouped
// by difficulty tier, with per-tier totals.
package corpus

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/quizbee-cli/internal/model"
)

// Totals summarizes per-tier question counts, stored in the corpus file's
// metadata block.
type Totals struct {
	Preliminary   int `json:"total_preliminary"`
	Quarterfinals int `json:"total_quarterfinals"`
	Semifinals    int `json:"total_semifinals"`
	Finals        int `json:"total_finals"`
	Total         int `json:"total"`
}

// Corpus is the in-memory question collection.
type Corpus struct {
	Tiers map[model.Tier][]model.Question
}

// New returns an empty corpus with all tiers present.
func New() *Corpus {
	c := &Corpus{Tiers: make(map[model.Tier][]model.Question)}
	for _, t := range model.Tiers {
		c.Tiers[t] = nil
	}
	return c
}

// Load reads a corpus file. Records that are not JSON objects or carry no id
// are skipped with a warning rather than failing the load; an unreadable or
// unparseable file is fatal.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "corpus: read %s", path)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrapf(err, "corpus: parse %s", path)
	}

	c := New()
	for _, tier := range model.Tiers {
		raw, ok := doc[string(tier)]
		if !ok {
			continue
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, eris.Wrapf(err, "corpus: tier %s is not a list", tier)
		}
		for i, item := range items {
			var q model.Question
			if err := json.Unmarshal(item, &q); err != nil {
				zap.L().Warn("corpus: skipping malformed record",
					zap.String("tier", string(tier)),
					zap.Int("index", i),
					zap.Error(err),
				)
				continue
			}
			if q.ID == "" {
				zap.L().Warn("corpus: skipping record without id",
					zap.String("tier", string(tier)),
					zap.Int("index", i),
				)
				continue
			}
			c.Tiers[tier] = append(c.Tiers[tier], q)
		}
	}

	return c, nil
}

// Save writes the corpus back, refreshing the metadata totals.
func (c *Corpus) Save(path string) error {
	doc := make(map[string]any, len(model.Tiers)+1)
	for _, tier := range model.Tiers {
		doc[string(tier)] = c.Tiers[tier]
	}
	doc["metadata"] = c.Totals()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return eris.Wrap(err, "corpus: marshal")
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return eris.Wrapf(err, "corpus: write %s", tmp)
	}
	if err := os.Rename(tmp, path); err != nil {
		return eris.Wrapf(err, "corpus: rename %s", path)
	}
	return nil
}

// Totals recomputes the per-tier counts.
func (c *Corpus) Totals() Totals {
	t := Totals{
		Preliminary:   len(c.Tiers[model.TierPreliminary]),
		Quarterfinals: len(c.Tiers[model.TierQuarterfinals]),
		Semifinals:    len(c.Tiers[model.TierSemifinals]),
		Finals:        len(c.Tiers[model.TierFinals]),
	}
	t.Total = t.Preliminary + t.Quarterfinals + t.Semifinals + t.Finals
	return t
}

// Count returns the total number of questions across tiers.
func (c *Corpus) Count() int {
	n := 0
	for _, tier := range model.Tiers {
		n += len(c.Tiers[tier])
	}
	return n
}

// Lookup finds a question by id, returning its tier and position.
func (c *Corpus) Lookup(id string) (model.Question, model.Tier, int, bool) {
	for _, tier := range model.Tiers {
		for i, q := range c.Tiers[tier] {
			if q.ID == id {
				return q, tier, i, true
			}
		}
	}
	return model.Question{}, "", 0, false
}

// Replace updates the question with originalID in place, or moves it to the
// end of newTier when the tier changes (renumbering it there). Returns false
// when originalID is not present in originalTier.
func (c *Corpus) Replace(originalID string, originalTier model.Tier, updated model.Question, newTier model.Tier) bool {
	questions := c.Tiers[originalTier]
	for i, q := range questions {
		if q.ID != originalID {
			continue
		}
		if originalTier == newTier {
			updated.Number = q.Number
			questions[i] = updated
			return true
		}
		c.Tiers[originalTier] = append(questions[:i:i], questions[i+1:]...)
		updated.Number = len(c.Tiers[newTier]) + 1
		c.Tiers[newTier] = append(c.Tiers[newTier], updated)
		return true
	}
	return false
}
