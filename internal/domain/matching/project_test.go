package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skills(ids ...int64) []ProjectSkill {
	out := make([]ProjectSkill, 0, len(ids))
	for _, id := range ids {
		out = append(out, ProjectSkill{SkillID: id})
	}
	return out
}

func TestMatchProjects_Eligibility(t *testing.T) {
	const a, b, c, d = 1, 2, 3, 4
	projects := []Project{
		{ID: 1, Title: "ABC", RequiredSkills: skills(a, b, c)},
		{ID: 2, Title: "Empty"},
		{ID: 3, Title: "AB", RequiredSkills: skills(a, b)},
	}

	got := MatchProjects(map[int64]int{a: 2}, projects)
	require.Len(t, got, 2)
	assert.Equal(t, "AB", got[0].Title)
	assert.InDelta(t, 0.5, got[0].RelevanceScore, 1e-9)
	assert.Equal(t, "ABC", got[1].Title)
	assert.Equal(t, 1, got[1].MatchCount)
	assert.InDelta(t, 1.0/3.0, got[1].RelevanceScore, 1e-9)

	none := MatchProjects(map[int64]int{d: 5}, []Project{{ID: 3, Title: "AB", RequiredSkills: skills(a, b)}})
	assert.Empty(t, none)
}

func TestMatchProjects_LevelZeroDoesNotCount(t *testing.T) {
	projects := []Project{{ID: 1, Title: "IoT Farm", RequiredSkills: skills(1, 2)}}
	got := MatchProjects(map[int64]int{1: 0, 2: 0}, projects)
	assert.Empty(t, got)
}

func TestMatchProjects_StableOnTies(t *testing.T) {
	projects := []Project{
		{ID: 1, Title: "first", RequiredSkills: skills(1, 2)},
		{ID: 2, Title: "full", RequiredSkills: skills(1)},
		{ID: 3, Title: "second", RequiredSkills: skills(1, 3)},
	}
	got := MatchProjects(map[int64]int{1: 3}, projects)
	require.Len(t, got, 3)
	assert.Equal(t, []int64{2, 1, 3}, []int64{got[0].ID, got[1].ID, got[2].ID})
}
