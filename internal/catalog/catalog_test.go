package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CompilesAllDimensions(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	for _, dim := range []Dimension{DimensionRegion, DimensionTimePeriod, DimensionAnswerType, DimensionSubjectTheme} {
		labels := cat.Labels(dim)
		assert.NotEmpty(t, labels, "dimension %s has no labels", dim)
		for _, label := range labels {
			assert.NotEmpty(t, cat.Rules(dim, label), "label %s/%s has no rules", dim, label)
		}
	}
}

func TestNew_LabelOrder(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	regions := cat.Labels(DimensionRegion)
	require.Len(t, regions, 8)
	assert.Equal(t, RegionPreColumbian, regions[0])
	assert.Equal(t, RegionUnitedStates, regions[1])
	assert.Equal(t, RegionLatinAmerica, regions[6])
	assert.Equal(t, RegionGlobal, regions[7])

	// People & Biography is the last answer type so specific categories win
	// ties against it.
	answerTypes := cat.Labels(DimensionAnswerType)
	require.Len(t, answerTypes, 13)
	assert.Equal(t, AnswerPeople, answerTypes[len(answerTypes)-1])
}

func TestPolicy(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	tests := []struct {
		dim          Dimension
		maxResults   int
		defaultLabel string
	}{
		{DimensionRegion, 2, RegionGlobal},
		{DimensionTimePeriod, 2, PeriodContemporary},
		{DimensionAnswerType, 1, AnswerPeople},
		{DimensionSubjectTheme, 3, ThemePolitical},
	}
	for _, tt := range tests {
		p := cat.Policy(tt.dim)
		assert.Equal(t, tt.maxResults, p.MaxResults, "dimension %s", tt.dim)
		assert.Equal(t, tt.defaultLabel, p.DefaultLabel, "dimension %s", tt.dim)
	}
}

func TestRules_CaseInsensitive(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	rules := cat.Rules(DimensionRegion, RegionUnitedStates)
	matched := false
	for _, r := range rules {
		if r.Match("THE AMERICAN CIVIL WAR") {
			matched = true
			break
		}
	}
	assert.True(t, matched, "patterns should match regardless of case")
}

func TestExtend(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	before := len(cat.Rules(DimensionRegion, RegionEurope))
	require.NoError(t, cat.Extend(DimensionRegion, RegionEurope, []string{`\bhanseatic\b`}))
	assert.Len(t, cat.Rules(DimensionRegion, RegionEurope), before+1)

	err = cat.Extend(DimensionRegion, RegionEurope, []string{`[unclosed`})
	assert.Error(t, err)
}

func TestExtend_NewLabelAppends(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	require.NoError(t, cat.Extend(DimensionSubjectTheme, "Maritime History", []string{`\bnaval\b`, `\bfleet\b`}))
	labels := cat.Labels(DimensionSubjectTheme)
	assert.Equal(t, "Maritime History", labels[len(labels)-1])
	assert.Len(t, cat.Rules(DimensionSubjectTheme, "Maritime History"), 2)
}

func TestApplyOverlayFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	overlay := `
region:
  Europe:
    - '\bhabsburg realm\b'
subject_theme:
  Maritime History:
    - '\bnaval\b'
`
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o644))

	cat, err := New()
	require.NoError(t, err)
	require.NoError(t, cat.ApplyOverlayFile(path))

	found := false
	for _, r := range cat.Rules(DimensionRegion, RegionEurope) {
		if r.Match("the Habsburg realm endured") {
			found = true
		}
	}
	assert.True(t, found)
	assert.NotEmpty(t, cat.Rules(DimensionSubjectTheme, "Maritime History"))
}

func TestApplyOverlayFile_Missing(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)
	assert.Error(t, cat.ApplyOverlayFile(filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestIndicators(t *testing.T) {
	cat, err := New()
	require.NoError(t, err)

	ind := cat.Indicators()
	require.NotNil(t, ind)
	assert.NotEmpty(t, ind.PreColumbian)
	assert.NotEmpty(t, ind.Ancient)
	assert.NotEmpty(t, ind.Medieval)
	assert.NotEmpty(t, ind.UnitedStates)
	assert.NotEmpty(t, ind.LatinAmerica)

	// Rome family must come first so Roman questions resolve to Europe.
	require.NotEmpty(t, ind.AncientRegions)
	assert.Equal(t, RegionEurope, ind.AncientRegions[0].Region)
}
