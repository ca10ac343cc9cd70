package dto

import "skillmatch/internal/repository"

type UserSkillResponse struct {
	ID               int64         `json:"id"`
	SkillID          int64         `json:"skill_id"`
	ProficiencyLevel int           `json:"proficiency_level"`
	Skill            SkillResponse `json:"skill"`
}

type UserResponse struct {
	ID               int64               `json:"id"`
	FullName         string              `json:"full_name"`
	Email            string              `json:"email"`
	CurrentRoleTitle string              `json:"current_role_title"`
	TargetRoleID     *int64              `json:"target_role_id"`
	Skills           []UserSkillResponse `json:"skills"`
}

type CreateUserRequest struct {
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	CurrentRoleTitle string `json:"current_role_title"`
}

type UpdateUserRequest struct {
	FullName         *string `json:"full_name"`
	CurrentRoleTitle *string `json:"current_role_title"`
	TargetRoleID     *int64  `json:"target_role_id"`
}

type UpsertUserSkillRequest struct {
	SkillID          int64 `json:"skill_id"`
	ProficiencyLevel int   `json:"proficiency_level"`
}

func NewUserSkillResponse(us repository.UserSkill) UserSkillResponse {
	return UserSkillResponse{
		ID:               us.ID,
		SkillID:          us.SkillID,
		ProficiencyLevel: us.ProficiencyLevel,
		Skill:            SkillResponse{ID: us.SkillID, Name: us.SkillName},
	}
}

func NewUserResponse(u repository.User) UserResponse {
	skills := make([]UserSkillResponse, 0, len(u.Skills))
	for _, s := range u.Skills {
		skills = append(skills, NewUserSkillResponse(s))
	}
	return UserResponse{
		ID:               u.ID,
		FullName:         u.FullName,
		Email:            u.Email,
		CurrentRoleTitle: u.CurrentRoleTitle,
		TargetRoleID:     u.TargetRoleID,
		Skills:           skills,
	}
}
