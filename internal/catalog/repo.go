package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campuskart/campuskart-backend/pkg/enums"
)

// Stable ordering: newest first, ties broken by id so result sets are
// reproducible without pagination cursors.
const newestFirst = "items.created_at DESC, items.id DESC"

// Repository runs the role-aware read queries over items and orders.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a catalog repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) itemsWithSeller(ctx context.Context, sellerPhone bool) *gorm.DB {
	cols := `items.id, items.title, items.description, items.price, items.category,
		items.mode, items.image_url, items.phone, items.seller_id, items.status, items.created_at,
		users.name AS seller_name, users.email AS seller_email, users.class AS seller_class`
	if sellerPhone {
		cols += `, users.phone AS seller_phone`
	}
	return r.db.WithContext(ctx).
		Table("items").
		Select(cols).
		Joins("JOIN users ON users.id = items.seller_id")
}

// ApprovedItems returns the public storefront listing, optionally filtered.
func (r *Repository) ApprovedItems(ctx context.Context, filters ItemFilters) ([]ItemView, error) {
	q := r.itemsWithSeller(ctx, true).
		Where("items.status = ?", enums.ItemStatusApproved)

	if search := strings.TrimSpace(filters.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("(LOWER(items.title) LIKE ? OR LOWER(items.description) LIKE ?)", pattern, pattern)
	}
	if filters.Category != "" && filters.Category != enums.FilterAll {
		q = q.Where("items.category = ?", filters.Category)
	}
	if filters.Mode != "" && filters.Mode != enums.FilterAll {
		q = q.Where("items.mode = ?", filters.Mode)
	}

	var views []ItemView
	if err := q.Order(newestFirst).Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

// PendingItems returns every listing awaiting moderation.
func (r *Repository) PendingItems(ctx context.Context) ([]ItemView, error) {
	var views []ItemView
	err := r.itemsWithSeller(ctx, false).
		Where("items.status = ?", enums.ItemStatusPending).
		Order(newestFirst).
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// SellerItems returns every listing owned by the seller, across all statuses.
func (r *Repository) SellerItems(ctx context.Context, sellerID uuid.UUID) ([]ItemView, error) {
	var views []ItemView
	err := r.itemsWithSeller(ctx, true).
		Where("items.seller_id = ?", sellerID).
		Order(newestFirst).
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// BuyerOrders returns the orders placed by the buyer, joined with the current
// item row and the seller's contact fields.
func (r *Repository) BuyerOrders(ctx context.Context, buyerID uuid.UUID) ([]OrderView, error) {
	var views []OrderView
	err := r.db.WithContext(ctx).
		Table("orders").
		Select(`orders.id, orders.item_id, orders.buyer_id, orders.seller_id, orders.status, orders.created_at,
			items.title, items.description, items.price, items.image_url, items.category, items.mode,
			users.name AS seller_name, users.email AS seller_email, users.phone AS seller_phone`).
		Joins("JOIN items ON items.id = orders.item_id").
		Joins("JOIN users ON users.id = orders.seller_id").
		Where("orders.buyer_id = ?", buyerID).
		Order("orders.created_at DESC, orders.id DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}
