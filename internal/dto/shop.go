package dto

import (
	"encoding/json"
	"time"
)

type ShopItemDTO struct {
	ID          int64           `json:"id" example:"1"`
	Name        string          `json:"name" example:"Premium role"`
	Description string          `json:"description" example:"Access to the VIP channels"`
	Price       int64           `json:"price" example:"10000"`
	Type        string          `json:"type" example:"role" enums:"role,generic"`
	Payload     json.RawMessage `json:"payload,omitempty"`
	IsActive    bool            `json:"is_active" example:"true"`
}

type CreateItemRequestDTO struct {
	Name        string          `json:"name" example:"Premium role"`
	Description string          `json:"description" example:"Access to the VIP channels"`
	Price       int64           `json:"price" example:"10000"`
	Type        string          `json:"type" example:"role" enums:"role,generic"`
	Payload     json.RawMessage `json:"payload,omitempty"`
}

type PurchaseRequestDTO struct {
	UserID int64 `json:"user_id" example:"184123765"`
	ItemID int64 `json:"item_id" example:"1"`
}

type PurchaseResponseDTO struct {
	PurchaseID int64           `json:"purchase_id" example:"7"`
	ItemID     int64           `json:"item_id" example:"1"`
	PricePaid  int64           `json:"price_paid" example:"10000"`
	Balance    int64           `json:"balance" example:"2500"`
	ItemType   string          `json:"item_type" example:"role"`
	Payload    json.RawMessage `json:"payload,omitempty"`
}

type PurchaseRecordDTO struct {
	ItemID      int64     `json:"item_id" example:"1"`
	PricePaid   int64     `json:"price_paid" example:"10000"`
	PurchasedAt time.Time `json:"purchased_at" example:"2024-12-09T16:09:57Z"`
}
