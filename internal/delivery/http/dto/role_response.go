package dto

import "skillmatch/internal/repository"

type SkillResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type RoleSkillResponse struct {
	ID               int64         `json:"id"`
	SkillID          int64         `json:"skill_id"`
	RequiredLevel    int           `json:"required_level"`
	ImportanceWeight float64       `json:"importance_weight"`
	Skill            SkillResponse `json:"skill"`
}

type RoleResponse struct {
	ID             int64               `json:"id"`
	Title          string              `json:"title"`
	Domain         string              `json:"domain"`
	Description    string              `json:"description"`
	RequiredSkills []RoleSkillResponse `json:"required_skills"`
}

func NewRoleResponse(r repository.Role) RoleResponse {
	skills := make([]RoleSkillResponse, 0, len(r.Requirements))
	for _, req := range r.Requirements {
		skills = append(skills, RoleSkillResponse{
			ID:               req.ID,
			SkillID:          req.SkillID,
			RequiredLevel:    req.RequiredLevel,
			ImportanceWeight: req.ImportanceWeight,
			Skill:            SkillResponse{ID: req.SkillID, Name: req.SkillName, Category: req.SkillCategory},
		})
	}
	return RoleResponse{
		ID:             r.ID,
		Title:          r.Title,
		Domain:         r.Domain,
		Description:    r.Description,
		RequiredSkills: skills,
	}
}

func NewSkillResponse(s repository.Skill) SkillResponse {
	return SkillResponse{ID: s.ID, Name: s.Name, Category: s.Category}
}

type LearningResourceResponse struct {
	ID              int64   `json:"id"`
	SkillID         int64   `json:"skill_id"`
	Title           string  `json:"title"`
	Type            string  `json:"type"`
	Provider        string  `json:"provider"`
	Link            *string `json:"link"`
	DifficultyLevel int     `json:"difficulty_level"`
}

func NewLearningResourceResponse(it repository.LearningResource) LearningResourceResponse {
	return LearningResourceResponse{
		ID:              it.ID,
		SkillID:         it.SkillID,
		Title:           it.Title,
		Type:            it.Type,
		Provider:        it.Provider,
		Link:            it.Link,
		DifficultyLevel: it.DifficultyLevel,
	}
}
