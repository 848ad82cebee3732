package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/quizbee-cli/internal/catalog"
)

func TestScore_CountsDistinctRules(t *testing.T) {
	cat, err := catalog.New()
	require.NoError(t, err)
	rules := cat.Rules(catalog.DimensionRegion, catalog.RegionUnitedStates)

	// Repeating one keyword never raises the score.
	assert.Equal(t, 1, Score("Gettysburg Gettysburg Gettysburg", rules))

	// Separate rules each count once.
	assert.Equal(t, 2, Score("Abraham Lincoln at Gettysburg", rules))
}

func TestScore_NoMatch(t *testing.T) {
	cat, err := catalog.New()
	require.NoError(t, err)
	rules := cat.Rules(catalog.DimensionRegion, catalog.RegionUnitedStates)

	assert.Equal(t, 0, Score("completely unrelated text", rules))
	assert.Equal(t, 0, Score("", rules))
}

func TestScore_CaseInsensitive(t *testing.T) {
	cat, err := catalog.New()
	require.NoError(t, err)
	rules := cat.Rules(catalog.DimensionRegion, catalog.RegionEurope)

	assert.Equal(t, Score("napoleon in france", rules), Score("NAPOLEON IN FRANCE", rules))
}
