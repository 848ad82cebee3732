package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/quizbee-cli/internal/catalog"
	"github.com/sells-group/quizbee-cli/internal/classify"
	"github.com/sells-group/quizbee-cli/internal/corpus"
	"github.com/sells-group/quizbee-cli/internal/model"
	"github.com/sells-group/quizbee-cli/internal/repair"
	"github.com/sells-group/quizbee-cli/internal/store"
)

func testPipeline(t *testing.T, checkpointEvery int) (*Pipeline, *store.JSONStore) {
	t.Helper()
	cat, err := catalog.New()
	require.NoError(t, err)
	st, err := store.OpenJSON(filepath.Join(t.TempDir(), "meta.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return New(classify.New(cat), repair.New(cat), st, checkpointEvery), st
}

func testCorpus() *corpus.Corpus {
	c := corpus.New()
	c.Tiers[model.TierPreliminary] = []model.Question{
		{Number: 1, Question: "This president delivered the Gettysburg Address in 1863.", Answer: "Abraham Lincoln", ID: "p-1"},
		{Number: 2, Question: "Who crossed the Rubicon with his legion?", Answer: "Julius Caesar", ID: "p-2"},
	}
	c.Tiers[model.TierFinals] = []model.Question{
		{Number: 1, Question: "This Aztec emperor met Cortes at Tenochtitlan.", Answer: "Moctezuma II", ID: "f-1"},
	}
	return c
}

func TestRun_ClassifiesEverything(t *testing.T) {
	p, st := testPipeline(t, 0)
	ctx := context.Background()

	stats, err := p.Run(ctx, testCorpus())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 3, stats.Processed)
	assert.Equal(t, 0, stats.AlreadyDone)

	cls, found, err := st.Get(ctx, "p-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{catalog.RegionUnitedStates}, cls.Regions)

	progress, err := st.Progress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, progress.TotalQuestions)
	assert.Equal(t, 3, progress.Categorized)
}

func TestRun_SkipsAlreadyClassified(t *testing.T) {
	p, st := testPipeline(t, 0)
	ctx := context.Background()

	pinned := model.Classification{
		Regions:       []string{catalog.RegionGlobal},
		TimePeriods:   []string{catalog.PeriodContemporary},
		AnswerType:    catalog.AnswerPeople,
		SubjectThemes: []string{catalog.ThemePolitical},
	}
	require.NoError(t, st.Put(ctx, "p-1", pinned))

	stats, err := p.Run(ctx, testCorpus())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Processed)
	assert.Equal(t, 1, stats.AlreadyDone)

	// The stored classification is never recomputed.
	cls, _, err := st.Get(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, pinned, cls)
}

func TestRun_Idempotent(t *testing.T) {
	p, _ := testPipeline(t, 0)
	ctx := context.Background()
	c := testCorpus()

	_, err := p.Run(ctx, c)
	require.NoError(t, err)

	stats, err := p.Run(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Processed)
	assert.Equal(t, 3, stats.AlreadyDone)
}

func TestRun_CancelledContext(t *testing.T) {
	p, st := testPipeline(t, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := p.Run(ctx, testCorpus())
	assert.Error(t, err)
	assert.Equal(t, 0, stats.Processed)

	// The checkpoint on cancellation still records progress.
	progress, perr := st.Progress(context.Background())
	require.NoError(t, perr)
	assert.Equal(t, 3, progress.TotalQuestions)
}

func TestRun_ProducesNoForbiddenPairs(t *testing.T) {
	p, st := testPipeline(t, 1)
	ctx := context.Background()

	_, err := p.Run(ctx, testCorpus())
	require.NoError(t, err)

	all, err := st.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for id, cls := range all {
		assert.False(t, repair.HasForbiddenPair(cls), "question %s", id)
	}
}

func TestClassifyOne(t *testing.T) {
	p, _ := testPipeline(t, 0)

	cls := p.ClassifyOne(model.Question{
		Question: "This Aztec emperor met Cortes at Tenochtitlan.",
		Answer:   "Moctezuma II",
	})
	assert.Equal(t, []string{catalog.RegionPreColumbian, catalog.RegionLatinAmerica}, cls.Regions)
	assert.Equal(t, []string{catalog.PeriodEarlyModern}, cls.TimePeriods)
}

func TestRepairStored(t *testing.T) {
	p, st := testPipeline(t, 0)
	ctx := context.Background()
	c := testCorpus()

	// Seed a stored classification that violates the table.
	bad := model.Classification{
		Regions:       []string{catalog.RegionUnitedStates},
		TimePeriods:   []string{catalog.PeriodAncient},
		AnswerType:    catalog.AnswerPeople,
		SubjectThemes: []string{catalog.ThemePolitical},
	}
	require.NoError(t, st.Put(ctx, "p-2", bad))

	pairCounts, fixed, err := p.RepairStored(ctx, c, false)
	require.NoError(t, err)

	assert.Equal(t, 1, pairCounts["US + Ancient"])
	assert.Equal(t, 1, fixed)

	cls, found, err := st.Get(ctx, "p-2")
	require.NoError(t, err)
	require.True(t, found)
	assert.False(t, repair.HasForbiddenPair(cls))
	// Caesar content resolves to Europe.
	assert.Equal(t, []string{catalog.RegionEurope}, cls.Regions)
}

func TestRepairStored_DryRun(t *testing.T) {
	p, st := testPipeline(t, 0)
	ctx := context.Background()
	c := testCorpus()

	bad := model.Classification{
		Regions:     []string{catalog.RegionUnitedStates},
		TimePeriods: []string{catalog.PeriodAncient},
	}
	require.NoError(t, st.Put(ctx, "p-2", bad))

	pairCounts, fixed, err := p.RepairStored(ctx, c, true)
	require.NoError(t, err)
	assert.Equal(t, 1, pairCounts["US + Ancient"])
	assert.Equal(t, 1, fixed)

	// Nothing was written back.
	cls, _, err := st.Get(ctx, "p-2")
	require.NoError(t, err)
	assert.Equal(t, bad, cls)
}
