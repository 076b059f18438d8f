package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/campuskart/campuskart-backend/pkg/enums"
)

// ItemFilters narrows the public catalog listing. Category and Mode accept
// "all" (or empty) to mean unfiltered; Search matches title or description
// case-insensitively.
type ItemFilters struct {
	Search   string
	Category string
	Mode     string
}

// ItemView is a listing row joined with its seller's display fields. The
// pending-review query omits the seller phone, so that field is elided from
// JSON when empty.
type ItemView struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price"`
	Category    string           `json:"category"`
	Mode        enums.ItemMode   `json:"mode"`
	ImageURL    *string          `json:"image_url"`
	Phone       string           `json:"phone"`
	SellerID    uuid.UUID        `json:"seller_id"`
	Status      enums.ItemStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	SellerName  string           `json:"seller_name"`
	SellerEmail string           `json:"seller_email"`
	SellerClass string           `json:"seller_class"`
	SellerPhone string           `json:"seller_phone,omitempty"`
}

// OrderView is an order row joined with a live snapshot of the item and the
// seller's display fields. If the item has since been deleted the join drops
// the row entirely.
type OrderView struct {
	ID          uuid.UUID       `json:"id"`
	ItemID      uuid.UUID       `json:"item_id"`
	BuyerID     uuid.UUID       `json:"buyer_id"`
	SellerID    uuid.UUID       `json:"seller_id"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    *string         `json:"image_url"`
	Category    string          `json:"category"`
	Mode        enums.ItemMode  `json:"mode"`
	SellerName  string          `json:"seller_name"`
	SellerEmail string          `json:"seller_email"`
	SellerPhone string          `json:"seller_phone"`
}
