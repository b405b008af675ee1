package domain

import "time"

type Account struct {
	UserID    int64     `db:"user_id"`
	Balance   int64     `db:"balance"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CooldownKind names a rate-limited reward action.
type CooldownKind string

const (
	KindDaily   CooldownKind = "daily"
	KindMessage CooldownKind = "message"
	KindSpin    CooldownKind = "spin"
)

type Cooldown struct {
	UserID       int64        `db:"user_id"`
	Kind         CooldownKind `db:"kind"`
	LastActionAt time.Time    `db:"last_action_at"`
	Streak       int          `db:"streak"`
}

const (
	ItemTypeRole    = "role"
	ItemTypeGeneric = "generic"
)

type ShopItem struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Price       int64     `db:"price"`
	Type        string    `db:"type"`
	Payload     []byte    `db:"payload"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
}

// OneShot reports whether a user may buy the item at most once.
func (i *ShopItem) OneShot() bool {
	return i.Type == ItemTypeRole
}

type Purchase struct {
	ID          int64      `db:"id"`
	UserID      int64      `db:"user_id"`
	ItemID      int64      `db:"item_id"`
	PricePaid   int64      `db:"price_paid"`
	PurchasedAt time.Time  `db:"purchased_at"`
	NotifiedAt  *time.Time `db:"notified_at"`
}

type TransferResult struct {
	Net           int64
	Fee           int64
	SenderBalance int64
}

type RewardResult struct {
	Granted   bool
	Amount    int64
	Balance   int64
	Streak    int
	Remaining time.Duration
}

type PurchaseResult struct {
	Purchase *Purchase
	Item     *ShopItem
	Balance  int64
}
