package orders

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campuskart/campuskart-backend/pkg/db/models"
	"github.com/campuskart/campuskart-backend/pkg/enums"
)

// ApprovedItem is a purchasable listing row plus its seller's display fields.
type ApprovedItem struct {
	models.Item
	SellerName  string
	SellerEmail string
}

// Repository exposes the persistence operations behind order creation.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an orders repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindApprovedItem loads the item when it exists in approved status, joined
// with the seller's name and email for the contact flow.
func (r *Repository) FindApprovedItem(ctx context.Context, itemID uuid.UUID) (*ApprovedItem, error) {
	var row ApprovedItem
	err := r.db.WithContext(ctx).
		Table("items").
		Select("items.*, users.name AS seller_name, users.email AS seller_email").
		Joins("JOIN users ON users.id = items.seller_id").
		Where("items.id = ? AND items.status = ?", itemID, enums.ItemStatusApproved).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts an order row. Duplicate (item, buyer, seller) rows are
// permitted here; only the contact flow deduplicates.
func (r *Repository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// CreateIfAbsent inserts an order unless one already exists for the same
// (item, buyer, seller) triple. It reports whether a row was created.
func (r *Repository) CreateIfAbsent(ctx context.Context, order *models.Order) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Order
		err := tx.
			Where("item_id = ? AND buyer_id = ? AND seller_id = ?", order.ItemID, order.BuyerID, order.SellerID).
			First(&existing).Error
		if err == nil {
			*order = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}
