package dto

import "skillmatch/internal/domain/matching"

type ProjectSkillResponse struct {
	SkillID   int64  `json:"skill_id"`
	SkillName string `json:"skill_name"`
}

type ProjectMatchResponse struct {
	ID              int64                  `json:"id"`
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	Domain          string                 `json:"domain"`
	DifficultyLevel int                    `json:"difficulty_level"`
	GithubRepoURL   string                 `json:"github_repo_url"`
	RequiredSkills  []ProjectSkillResponse `json:"required_skills"`
	RelevanceScore  float64                `json:"relevance_score"`
	MatchCount      int                    `json:"match_count"`
}

func NewProjectMatchList(items []matching.ProjectMatch) []ProjectMatchResponse {
	out := make([]ProjectMatchResponse, 0, len(items))
	for _, it := range items {
		skills := make([]ProjectSkillResponse, 0, len(it.RequiredSkills))
		for _, s := range it.RequiredSkills {
			skills = append(skills, ProjectSkillResponse{SkillID: s.SkillID, SkillName: s.SkillName})
		}
		out = append(out, ProjectMatchResponse{
			ID:              it.ID,
			Title:           it.Title,
			Description:     it.Description,
			Domain:          it.Domain,
			DifficultyLevel: it.DifficultyLevel,
			GithubRepoURL:   it.GithubRepoURL,
			RequiredSkills:  skills,
			RelevanceScore:  it.RelevanceScore,
			MatchCount:      it.MatchCount,
		})
	}
	return out
}
