package dto

type CooldownResponseDTO struct {
	Kind             string  `json:"kind" example:"daily"`
	Claimable        bool    `json:"claimable" example:"false"`
	RemainingSeconds float64 `json:"remaining_seconds,omitempty" example:"50400"`
}

type RewardResponseDTO struct {
	Granted          bool    `json:"granted" example:"true"`
	Amount           int64   `json:"amount,omitempty" example:"120"`
	Balance          int64   `json:"balance,omitempty" example:"620"`
	Streak           int     `json:"streak,omitempty" example:"3"`
	RemainingSeconds float64 `json:"remaining_seconds,omitempty" example:"79251.3"`
}
