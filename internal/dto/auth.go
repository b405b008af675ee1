package dto

type TokenRequestDTO struct {
	CallerID    int64  `json:"caller_id" example:"184123765"`
	AdminSecret string `json:"admin_secret,omitempty"`
}

type TokenResponseDTO struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"is_admin" example:"false"`
}
