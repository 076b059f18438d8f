package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/campuskart/campuskart-backend/pkg/enums"
)

// Item represents a marketplace listing. Every item has exactly one seller;
// deletion removes the row entirely rather than setting a status.
type Item struct {
	ID          uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Title       string           `gorm:"column:title;not null"`
	Description string           `gorm:"column:description;not null"`
	Price       decimal.Decimal  `gorm:"column:price;type:numeric(10,2);not null;default:0"`
	Category    string           `gorm:"column:category;not null"`
	Mode        enums.ItemMode   `gorm:"column:mode;not null"`
	ImageURL    *string          `gorm:"column:image_url"`
	Phone       string           `gorm:"column:phone;not null"`
	SellerID    uuid.UUID        `gorm:"column:seller_id;type:uuid;not null"`
	Status      enums.ItemStatus `gorm:"column:status;not null;default:'pending'"`
	CreatedAt   time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
