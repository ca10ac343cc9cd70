package dto

type SimulationRequest struct {
	UserID      int64 `json:"user_id"`
	RoleID      int64 `json:"role_id"`
	SkillID     int64 `json:"skill_id"`
	TargetLevel int   `json:"target_level"`
}

type SimulationResponse struct {
	CurrentReadiness float64 `json:"current_readiness"`
	NewReadiness     float64 `json:"new_readiness"`
	Improvement      float64 `json:"improvement"`
	SkillSimulated   string  `json:"skill_simulated"`
}
