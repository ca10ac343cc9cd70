package dto

type ChatRequest struct {
	UserID  int64  `json:"user_id"`
	RoleID  *int64 `json:"role_id"`
	Message string `json:"message"`
}

type ChatResponse struct {
	Response         string   `json:"response"`
	SuggestedActions []string `json:"suggested_actions"`
}
