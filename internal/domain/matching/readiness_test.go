package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var analyst = RoleRef{ID: 1, Title: "Clinical Data Analyst", Domain: "Healthcare"}

func TestComputeReadiness_SingleRequirement(t *testing.T) {
	reqs := []Requirement{{SkillID: 10, SkillName: "Python", RequiredLevel: 4, ImportanceWeight: 2.0}}

	res := ComputeReadiness(map[int64]int{10: 1}, analyst, reqs, nil)

	assert.InDelta(t, 0.25, res.ReadinessScore, 1e-9)
	assert.Equal(t, 1, res.MissingSkillCount)
	require.Len(t, res.Gaps, 1)
	g := res.Gaps[0]
	assert.Equal(t, 3, g.Gap)
	assert.Equal(t, 1, g.CurrentLevel)
	assert.Equal(t, 4, g.RequiredLevel)
	assert.InDelta(t, 6.0, g.WeightedGap, 1e-9)
	assert.Equal(t, "Clinical Data Analyst", res.RoleTitle)
	assert.Equal(t, "Healthcare", res.Domain)
}

func TestComputeReadiness_NoRequirementsIsReady(t *testing.T) {
	res := ComputeReadiness(map[int64]int{}, analyst, nil, nil)
	assert.Equal(t, 1.0, res.ReadinessScore)
	assert.Zero(t, res.MissingSkillCount)
	assert.Empty(t, res.Gaps)
}

func TestComputeReadiness_ZeroWeightIsReady(t *testing.T) {
	reqs := []Requirement{
		{SkillID: 1, SkillName: "SQL", RequiredLevel: 3, ImportanceWeight: 0},
		{SkillID: 2, SkillName: "Python", RequiredLevel: 0, ImportanceWeight: 4},
	}
	res := ComputeReadiness(nil, analyst, reqs, nil)
	assert.Equal(t, 1.0, res.ReadinessScore)
}

func TestComputeReadiness_AllRequirementsMet(t *testing.T) {
	reqs := []Requirement{
		{SkillID: 1, SkillName: "SQL", RequiredLevel: 3, ImportanceWeight: 1.5},
		{SkillID: 2, SkillName: "Python", RequiredLevel: 4, ImportanceWeight: 3},
	}
	res := ComputeReadiness(map[int64]int{1: 3, 2: 5}, analyst, reqs, nil)
	assert.Equal(t, 1.0, res.ReadinessScore)
	assert.Zero(t, res.MissingSkillCount)
	assert.Empty(t, res.Gaps)
}

func TestComputeReadiness_MissingSkillCountsAsZero(t *testing.T) {
	reqs := []Requirement{{SkillID: 7, SkillName: "FHIR", RequiredLevel: 2, ImportanceWeight: 1}}
	res := ComputeReadiness(map[int64]int{99: 5}, analyst, reqs, nil)
	assert.Equal(t, 0.0, res.ReadinessScore)
	require.Len(t, res.Gaps, 1)
	assert.Equal(t, 0, res.Gaps[0].CurrentLevel)
	assert.NotNil(t, res.Gaps[0].Resources)
}

func TestComputeReadiness_BadDataStaysInBounds(t *testing.T) {
	reqs := []Requirement{
		{SkillID: 1, SkillName: "SQL", RequiredLevel: -3, ImportanceWeight: 2},
		{SkillID: 2, SkillName: "Python", RequiredLevel: 3, ImportanceWeight: -1},
		{SkillID: 3, SkillName: "Statistics", RequiredLevel: 2, ImportanceWeight: 1},
	}
	res := ComputeReadiness(map[int64]int{1: -2, 3: -4}, analyst, reqs, nil)
	assert.GreaterOrEqual(t, res.ReadinessScore, 0.0)
	assert.LessOrEqual(t, res.ReadinessScore, 1.0)
	for _, g := range res.Gaps {
		assert.GreaterOrEqual(t, g.Gap, 0)
		assert.GreaterOrEqual(t, g.CurrentLevel, 0)
	}
}

func TestComputeReadiness_GapsOrderedByWeightedGap(t *testing.T) {
	reqs := []Requirement{
		{SkillID: 1, SkillName: "Communication", RequiredLevel: 3, ImportanceWeight: 1},
		{SkillID: 2, SkillName: "Python", RequiredLevel: 4, ImportanceWeight: 3},
		{SkillID: 3, SkillName: "SQL", RequiredLevel: 3, ImportanceWeight: 3},
		{SkillID: 4, SkillName: "Excel", RequiredLevel: 3, ImportanceWeight: 1},
	}
	res := ComputeReadiness(map[int64]int{}, analyst, reqs, nil)

	names := make([]string, 0, len(res.Gaps))
	for _, g := range res.Gaps {
		names = append(names, g.SkillName)
	}
	// Communication and Excel tie at 3.0 and keep requirement order.
	assert.Equal(t, []string{"Python", "SQL", "Communication", "Excel"}, names)
	assert.Equal(t, 4, res.MissingSkillCount)
}

func TestComputeReadiness_ResourcesInFetchOrder(t *testing.T) {
	link := "https://example.com/sql"
	calls := map[int64]int{}
	lookup := func(skillID int64) []Resource {
		calls[skillID]++
		if skillID != 2 {
			return nil
		}
		return []Resource{
			{Title: "SQL Advanced", Type: "Course", Provider: "EdX", DifficultyLevel: 3},
			{Title: "SQL Basics", Type: "Course", Provider: "Coursera", Link: &link, DifficultyLevel: 1},
		}
	}
	reqs := []Requirement{
		{SkillID: 1, SkillName: "Python", RequiredLevel: 2, ImportanceWeight: 1},
		{SkillID: 2, SkillName: "SQL", RequiredLevel: 3, ImportanceWeight: 1},
	}

	res := ComputeReadiness(map[int64]int{1: 2}, analyst, reqs, lookup)

	require.Len(t, res.Gaps, 1)
	require.Len(t, res.Gaps[0].Resources, 2)
	assert.Equal(t, "SQL Advanced", res.Gaps[0].Resources[0].Title)
	assert.Equal(t, "SQL Basics", res.Gaps[0].Resources[1].Title)
	// Met requirements never hit the lookup.
	assert.Equal(t, map[int64]int{2: 1}, calls)
}

func TestComputeReadiness_Idempotent(t *testing.T) {
	reqs := []Requirement{
		{SkillID: 1, SkillName: "Python", RequiredLevel: 4, ImportanceWeight: 2.5},
		{SkillID: 2, SkillName: "SQL", RequiredLevel: 3, ImportanceWeight: 1},
	}
	levels := map[int64]int{1: 2}
	lookup := func(int64) []Resource { return []Resource{{Title: "Intro"}} }

	first := ComputeReadiness(levels, analyst, reqs, lookup)
	second := ComputeReadiness(levels, analyst, reqs, lookup)
	assert.Equal(t, first, second)
	assert.Equal(t, map[int64]int{1: 2}, levels)
}

func TestComputeReadiness_ScoreBoundsAcrossLevels(t *testing.T) {
	reqs := []Requirement{
		{SkillID: 1, SkillName: "Python", RequiredLevel: 5, ImportanceWeight: 5},
		{SkillID: 2, SkillName: "SQL", RequiredLevel: 1, ImportanceWeight: 1},
	}
	for a := 0; a <= 5; a++ {
		for b := 0; b <= 5; b++ {
			res := ComputeReadiness(map[int64]int{1: a, 2: b}, analyst, reqs, nil)
			assert.GreaterOrEqual(t, res.ReadinessScore, 0.0)
			assert.LessOrEqual(t, res.ReadinessScore, 1.0)
		}
	}
}
