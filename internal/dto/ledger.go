package dto

type BalanceResponseDTO struct {
	UserID  int64 `json:"user_id" example:"184123765"`
	Balance int64 `json:"balance" example:"500"`
}

type AdjustRequestDTO struct {
	UserID int64  `json:"user_id" example:"184123765"`
	Delta  int64  `json:"delta" example:"-100"`
	Mode   string `json:"mode" example:"reject" enums:"reject,clamp"`
}

type SetBalanceRequestDTO struct {
	UserID int64 `json:"user_id" example:"184123765"`
	Amount int64 `json:"amount" example:"1000"`
}

type TransferRequestDTO struct {
	Sender   int64 `json:"sender" example:"184123765"`
	Receiver int64 `json:"receiver" example:"974531208"`
	Amount   int64 `json:"amount" example:"100"`
}

type TransferResponseDTO struct {
	Net           int64 `json:"net" example:"98"`
	Fee           int64 `json:"fee" example:"2"`
	SenderBalance int64 `json:"sender_balance" example:"400"`
}

type TopEntryDTO struct {
	UserID  int64 `json:"user_id" example:"184123765"`
	Balance int64 `json:"balance" example:"12500"`
}
