package repair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/quizbee-cli/internal/catalog"
	"github.com/sells-group/quizbee-cli/internal/model"
)

func newRepairer(t *testing.T) *Repairer {
	t.Helper()
	cat, err := catalog.New()
	require.NoError(t, err)
	return New(cat)
}

func TestHasForbiddenPair(t *testing.T) {
	tests := []struct {
		name string
		cls  model.Classification
		want bool
	}{
		{
			"us ancient",
			model.Classification{Regions: []string{catalog.RegionUnitedStates}, TimePeriods: []string{catalog.PeriodAncient}},
			true,
		},
		{
			"us medieval",
			model.Classification{Regions: []string{catalog.RegionUnitedStates}, TimePeriods: []string{catalog.PeriodMedieval}},
			true,
		},
		{
			"latam ancient",
			model.Classification{Regions: []string{catalog.RegionLatinAmerica}, TimePeriods: []string{catalog.PeriodAncient}},
			true,
		},
		{
			"us contemporary ok",
			model.Classification{Regions: []string{catalog.RegionUnitedStates}, TimePeriods: []string{catalog.PeriodContemporary}},
			false,
		},
		{
			"europe ancient ok",
			model.Classification{Regions: []string{catalog.RegionEurope}, TimePeriods: []string{catalog.PeriodAncient}},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasForbiddenPair(tt.cls))
		})
	}
}

func TestRepair_AncientContentDropsUS(t *testing.T) {
	r := newRepairer(t)

	cls := model.Classification{
		Regions:       []string{catalog.RegionUnitedStates},
		TimePeriods:   []string{catalog.PeriodAncient},
		AnswerType:    catalog.AnswerPeople,
		SubjectThemes: []string{catalog.ThemePolitical},
	}
	fixed, changes := r.Repair(model.Question{Question: "Who was assassinated on the Ides of March?", Answer: "Julius Caesar"}, cls)

	// Ancient indicators outweigh US indicators, so the region was wrong.
	// The Caesar keywords select Europe as the substitute.
	assert.Equal(t, []string{catalog.RegionEurope}, fixed.Regions)
	assert.Equal(t, []string{catalog.PeriodAncient}, fixed.TimePeriods)
	assert.NotEmpty(t, changes)
	assert.False(t, HasForbiddenPair(fixed))
}

func TestRepair_USContentDropsAncientPeriod(t *testing.T) {
	r := newRepairer(t)

	cls := model.Classification{
		Regions:     []string{catalog.RegionUnitedStates},
		TimePeriods: []string{catalog.PeriodAncient},
	}
	fixed, changes := r.Repair(model.Question{Question: "The U.S. Congress passed the Thirteenth Amendment in 1865.", Answer: ""}, cls)

	// The question is US content; the period side was wrong and is
	// recomputed from the literal year.
	assert.Equal(t, []string{catalog.RegionUnitedStates}, fixed.Regions)
	assert.Equal(t, []string{catalog.PeriodIndustrial}, fixed.TimePeriods)
	assert.NotEmpty(t, changes)
	assert.False(t, HasForbiddenPair(fixed))
}

func TestRepair_PreColumbianRelabelsUS(t *testing.T) {
	r := newRepairer(t)

	cls := model.Classification{
		Regions:     []string{catalog.RegionUnitedStates},
		TimePeriods: []string{catalog.PeriodAncient},
	}
	fixed, _ := r.Repair(model.Question{Question: "The Aztec capital Tenochtitlan stood on a lake.", Answer: ""}, cls)

	assert.Equal(t, []string{catalog.RegionPreColumbian}, fixed.Regions)
	assert.Equal(t, []string{catalog.PeriodAncient}, fixed.TimePeriods)
	assert.False(t, HasForbiddenPair(fixed))
}

func TestRepair_USMedievalWithoutYears(t *testing.T) {
	r := newRepairer(t)

	cls := model.Classification{
		Regions:     []string{catalog.RegionUnitedStates},
		TimePeriods: []string{catalog.PeriodMedieval},
	}
	fixed, _ := r.Repair(model.Question{Question: "The FBI investigated the Watergate break-in.", Answer: ""}, cls)

	// US indicators win; Medieval is dropped and no literal year exists,
	// so the period falls back to Contemporary.
	assert.Equal(t, []string{catalog.RegionUnitedStates}, fixed.Regions)
	assert.Equal(t, []string{catalog.PeriodContemporary}, fixed.TimePeriods)
	assert.False(t, HasForbiddenPair(fixed))
}

func TestRepair_MedievalContentDropsUS(t *testing.T) {
	r := newRepairer(t)

	cls := model.Classification{
		Regions:     []string{catalog.RegionUnitedStates},
		TimePeriods: []string{catalog.PeriodMedieval},
	}
	fixed, _ := r.Repair(model.Question{Question: "Knights of the First Crusade besieged the castle.", Answer: ""}, cls)

	assert.Equal(t, []string{catalog.RegionEurope}, fixed.Regions)
	assert.Equal(t, []string{catalog.PeriodMedieval}, fixed.TimePeriods)
	assert.False(t, HasForbiddenPair(fixed))
}

func TestRepair_LatinAmericaDropsMedieval(t *testing.T) {
	r := newRepairer(t)

	cls := model.Classification{
		Regions:     []string{catalog.RegionLatinAmerica},
		TimePeriods: []string{catalog.PeriodMedieval},
	}
	fixed, _ := r.Repair(model.Question{Question: "The port of Havana in Cuba grew around its harbor.", Answer: ""}, cls)

	assert.Equal(t, []string{catalog.RegionLatinAmerica}, fixed.Regions)
	assert.Equal(t, []string{catalog.PeriodContemporary}, fixed.TimePeriods)
	assert.False(t, HasForbiddenPair(fixed))
}

func TestRepair_LatinAmericaZeroSignalStillDropsPeriod(t *testing.T) {
	r := newRepairer(t)

	// Neither indicator family matches this text, but a stored Latin
	// America + Medieval pair must still be resolved.
	cls := model.Classification{
		Regions:     []string{catalog.RegionLatinAmerica},
		TimePeriods: []string{catalog.PeriodMedieval},
	}
	fixed, changes := r.Repair(model.Question{Question: "The Sandinista fortress stood near Quito.", Answer: ""}, cls)

	assert.Equal(t, []string{catalog.RegionLatinAmerica}, fixed.Regions)
	assert.Equal(t, []string{catalog.PeriodContemporary}, fixed.TimePeriods)
	assert.NotEmpty(t, changes)
	assert.False(t, HasForbiddenPair(fixed))
}

func TestRepair_LatinAmericaPreColumbianRelabel(t *testing.T) {
	r := newRepairer(t)

	cls := model.Classification{
		Regions:     []string{catalog.RegionLatinAmerica},
		TimePeriods: []string{catalog.PeriodAncient},
	}
	fixed, _ := r.Repair(model.Question{Question: "Machu Picchu was built by the Inca.", Answer: ""}, cls)

	assert.Equal(t, []string{catalog.RegionPreColumbian}, fixed.Regions)
	assert.Equal(t, []string{catalog.PeriodAncient}, fixed.TimePeriods)
	assert.False(t, HasForbiddenPair(fixed))
}

func TestRepair_NoViolationUntouched(t *testing.T) {
	r := newRepairer(t)

	cls := model.Classification{
		Regions:       []string{catalog.RegionPreColumbian, catalog.RegionLatinAmerica},
		TimePeriods:   []string{catalog.PeriodEarlyModern},
		AnswerType:    catalog.AnswerPeople,
		SubjectThemes: []string{catalog.ThemePolitical},
	}
	fixed, changes := r.Repair(model.Question{Question: "This Aztec emperor met Cortes at Tenochtitlan.", Answer: "Moctezuma II"}, cls)

	assert.Equal(t, cls, fixed)
	assert.Empty(t, changes)
}

func TestRepair_DoesNotMutateInput(t *testing.T) {
	r := newRepairer(t)

	cls := model.Classification{
		Regions:     []string{catalog.RegionUnitedStates},
		TimePeriods: []string{catalog.PeriodAncient},
	}
	_, _ = r.Repair(model.Question{Question: "Who was assassinated on the Ides of March?", Answer: "Julius Caesar"}, cls)

	assert.Equal(t, []string{catalog.RegionUnitedStates}, cls.Regions)
	assert.Equal(t, []string{catalog.PeriodAncient}, cls.TimePeriods)
}

func TestViolations(t *testing.T) {
	cls := model.Classification{
		Regions:     []string{catalog.RegionUnitedStates, catalog.RegionLatinAmerica},
		TimePeriods: []string{catalog.PeriodAncient},
	}
	vs := Violations(cls)
	require.Len(t, vs, 2)
	assert.Equal(t, "US + Ancient", vs[0].Name())
	assert.Equal(t, "LatAm + Ancient", vs[1].Name())
}
