package models

import (
	"time"

	"github.com/google/uuid"
)

// Order records a buyer's contact/purchase intent for a listing. It is not a
// financial transaction. buyer_id never equals seller_id; the contact flow
// additionally enforces uniqueness over (item_id, buyer_id, seller_id).
type Order struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ItemID    uuid.UUID `gorm:"column:item_id;type:uuid;not null"`
	BuyerID   uuid.UUID `gorm:"column:buyer_id;type:uuid;not null"`
	SellerID  uuid.UUID `gorm:"column:seller_id;type:uuid;not null"`
	Status    string    `gorm:"column:status;not null;default:'pending'"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
