package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/quizbee-cli/internal/model"
)

const sampleCorpus = `{
  "preliminary": [
    {"number": 1, "question": "Who led the Continental Army?", "answer": "George Washington", "id": "prelim-1"},
    {"number": 2, "question": "Name the Aztec capital.", "answer": "Tenochtitlan", "id": "prelim-2"}
  ],
  "quarterfinals": [
    {"number": 1, "question": "Who crossed the Rubicon?", "answer": "Julius Caesar", "id": "qf-1"}
  ],
  "semifinals": [],
  "finals": [
    {"number": 1, "question": "Who wrote the Emancipation Proclamation?", "answer": "Abraham Lincoln", "id": "final-1"}
  ],
  "metadata": {"total_preliminary": 2, "total_quarterfinals": 1, "total_semifinals": 0, "total_finals": 1, "total": 4}
}`

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	c, err := Load(writeCorpus(t, sampleCorpus))
	require.NoError(t, err)

	assert.Equal(t, 4, c.Count())
	assert.Len(t, c.Tiers[model.TierPreliminary], 2)
	assert.Len(t, c.Tiers[model.TierQuarterfinals], 1)
	assert.Empty(t, c.Tiers[model.TierSemifinals])
	assert.Equal(t, "George Washington", c.Tiers[model.TierPreliminary][0].Answer)
}

func TestLoad_SkipsRecordsWithoutID(t *testing.T) {
	c, err := Load(writeCorpus(t, `{
  "preliminary": [
    {"number": 1, "question": "kept", "answer": "a", "id": "ok-1"},
    {"number": 2, "question": "no id", "answer": "b"}
  ]
}`))
	require.NoError(t, err)
	require.Len(t, c.Tiers[model.TierPreliminary], 1)
	assert.Equal(t, "ok-1", c.Tiers[model.TierPreliminary][0].ID)
}

func TestLoad_BadFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeCorpus(t, "not json"))
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	c, err := Load(writeCorpus(t, sampleCorpus))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, c.Save(path))

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c.Count(), again.Count())
	assert.Equal(t, c.Tiers[model.TierFinals], again.Tiers[model.TierFinals])
}

func TestTotals(t *testing.T) {
	c, err := Load(writeCorpus(t, sampleCorpus))
	require.NoError(t, err)

	totals := c.Totals()
	assert.Equal(t, 2, totals.Preliminary)
	assert.Equal(t, 1, totals.Quarterfinals)
	assert.Equal(t, 0, totals.Semifinals)
	assert.Equal(t, 1, totals.Finals)
	assert.Equal(t, 4, totals.Total)
}

func TestLookup(t *testing.T) {
	c, err := Load(writeCorpus(t, sampleCorpus))
	require.NoError(t, err)

	q, tier, idx, ok := c.Lookup("qf-1")
	require.True(t, ok)
	assert.Equal(t, model.TierQuarterfinals, tier)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "Julius Caesar", q.Answer)

	_, _, _, ok = c.Lookup("nope")
	assert.False(t, ok)
}

func TestReplace_InPlace(t *testing.T) {
	c, err := Load(writeCorpus(t, sampleCorpus))
	require.NoError(t, err)

	updated := model.Question{Question: "Who led the Continental Army to victory?", Answer: "George Washington", ID: "prelim-1"}
	require.True(t, c.Replace("prelim-1", model.TierPreliminary, updated, model.TierPreliminary))

	q, _, _, ok := c.Lookup("prelim-1")
	require.True(t, ok)
	assert.Equal(t, "Who led the Continental Army to victory?", q.Question)
	// In-place edits keep the original position number.
	assert.Equal(t, 1, q.Number)
}

func TestReplace_MovesTier(t *testing.T) {
	c, err := Load(writeCorpus(t, sampleCorpus))
	require.NoError(t, err)

	updated := model.Question{Question: "Name the Aztec capital.", Answer: "Tenochtitlan", ID: "moved-1"}
	require.True(t, c.Replace("prelim-2", model.TierPreliminary, updated, model.TierFinals))

	assert.Len(t, c.Tiers[model.TierPreliminary], 1)
	require.Len(t, c.Tiers[model.TierFinals], 2)

	moved := c.Tiers[model.TierFinals][1]
	assert.Equal(t, "moved-1", moved.ID)
	// Renumbered at the end of the target tier.
	assert.Equal(t, 2, moved.Number)
}

func TestReplace_NotFound(t *testing.T) {
	c, err := Load(writeCorpus(t, sampleCorpus))
	require.NoError(t, err)

	assert.False(t, c.Replace("nope", model.TierPreliminary, model.Question{ID: "x"}, model.TierPreliminary))
	// Wrong tier also fails.
	assert.False(t, c.Replace("qf-1", model.TierPreliminary, model.Question{ID: "x"}, model.TierPreliminary))
}
