package dto

import "skillmatch/internal/domain/matching"

type ResourceResponse struct {
	Title           string  `json:"title"`
	Type            string  `json:"type"`
	Provider        string  `json:"provider"`
	Link            *string `json:"link"`
	DifficultyLevel int     `json:"difficulty_level"`
}

type GapResponse struct {
	SkillID              int64              `json:"skill_id"`
	SkillName            string             `json:"skill_name"`
	CurrentLevel         int                `json:"current_level"`
	RequiredLevel        int                `json:"required_level"`
	Gap                  int                `json:"gap"`
	Importance           float64            `json:"importance"`
	WeightedGap          float64            `json:"weighted_gap"`
	RecommendedResources []ResourceResponse `json:"recommended_resources"`
}

type RoleReadinessResponse struct {
	RoleID            int64         `json:"role_id"`
	RoleTitle         string        `json:"role_title"`
	Domain            string        `json:"domain"`
	ReadinessScore    float64       `json:"readiness_score"`
	MissingSkillCount int           `json:"missing_skill_count"`
	Gaps              []GapResponse `json:"gaps"`
}

func NewRoleReadinessResponse(r matching.RoleReadiness) RoleReadinessResponse {
	gaps := make([]GapResponse, 0, len(r.Gaps))
	for _, g := range r.Gaps {
		res := make([]ResourceResponse, 0, len(g.Resources))
		for _, it := range g.Resources {
			res = append(res, ResourceResponse{
				Title:           it.Title,
				Type:            it.Type,
				Provider:        it.Provider,
				Link:            it.Link,
				DifficultyLevel: it.DifficultyLevel,
			})
		}
		gaps = append(gaps, GapResponse{
			SkillID:              g.SkillID,
			SkillName:            g.SkillName,
			CurrentLevel:         g.CurrentLevel,
			RequiredLevel:        g.RequiredLevel,
			Gap:                  g.Gap,
			Importance:           g.ImportanceWeight,
			WeightedGap:          g.WeightedGap,
			RecommendedResources: res,
		})
	}
	return RoleReadinessResponse{
		RoleID:            r.RoleID,
		RoleTitle:         r.RoleTitle,
		Domain:            r.Domain,
		ReadinessScore:    r.ReadinessScore,
		MissingSkillCount: r.MissingSkillCount,
		Gaps:              gaps,
	}
}

func NewRoleReadinessList(items []matching.RoleReadiness) []RoleReadinessResponse {
	out := make([]RoleReadinessResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewRoleReadinessResponse(it))
	}
	return out
}
