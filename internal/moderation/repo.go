package moderation

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campuskart/campuskart-backend/pkg/db/models"
	"github.com/campuskart/campuskart-backend/pkg/enums"
)

// Repository exposes the item write operations used by moderation and
// listing creation.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an item write repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Insert persists a new listing row.
func (r *Repository) Insert(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// SetStatus overwrites the listing's status unconditionally. Transitions are
// last-writer-wins; a missing id is not an error.
func (r *Repository) SetStatus(ctx context.Context, id uuid.UUID, status enums.ItemStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ?", id).
		UpdateColumn("status", status).Error
}

// Delete removes the listing row. Deleting an absent id is a no-op.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Item{}, "id = ?", id).Error
}
