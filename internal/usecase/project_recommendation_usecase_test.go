package usecase

import (
	"context"
	"testing"

	"skillmatch/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRecommendation_FiltersAndRanks(t *testing.T) {
	projects := fakeProjects{items: []repository.Project{
		{ID: 1, Title: "Clinic API", RequiredSkills: []repository.ProjectSkill{
			{ProjectID: 1, SkillID: skillSQL, SkillName: "SQL"},
			{ProjectID: 1, SkillID: skillDocker, SkillName: "Docker"},
		}},
		{ID: 2, Title: "Transit Map UI", RequiredSkills: []repository.ProjectSkill{
			{ProjectID: 2, SkillID: skillFigma, SkillName: "Figma"},
		}},
		{ID: 3, Title: "Empty", RequiredSkills: []repository.ProjectSkill{}},
		{ID: 4, Title: "Crop Yield Dashboard", RequiredSkills: []repository.ProjectSkill{
			{ProjectID: 4, SkillID: skillSQL, SkillName: "SQL"},
		}},
	}}
	uc := NewProjectRecommendationUsecase(fixtureUsers(), projects, zerolog.Nop())

	out, err := uc.RecommendProjects(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, int64(4), out[0].ID)
	assert.Equal(t, 1.0, out[0].RelevanceScore)
	assert.Equal(t, int64(1), out[1].ID)
	assert.Equal(t, 0.5, out[1].RelevanceScore)
	assert.Equal(t, 1, out[1].MatchCount)
	assert.Len(t, out[1].RequiredSkills, 2)
}

func TestProjectRecommendation_UnknownUserIsEmpty(t *testing.T) {
	uc := NewProjectRecommendationUsecase(fixtureUsers(), fakeProjects{}, zerolog.Nop())

	out, err := uc.RecommendProjects(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
