package moderation

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/campuskart/campuskart-backend/pkg/db/models"
	"github.com/campuskart/campuskart-backend/pkg/enums"
	pkgerrors "github.com/campuskart/campuskart-backend/pkg/errors"
	"github.com/campuskart/campuskart-backend/pkg/logger"
	"github.com/campuskart/campuskart-backend/pkg/storage/local"
)

// Service covers listing creation and the admin moderation operations.
type Service interface {
	CreateItem(ctx context.Context, sellerID uuid.UUID, req CreateItemRequest) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, itemID uuid.UUID, status string) (enums.ItemStatus, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
}

type repository interface {
	Insert(ctx context.Context, item *models.Item) error
	SetStatus(ctx context.Context, id uuid.UUID, status enums.ItemStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  repository
	blobs local.BlobStore
	log   *logger.Logger
}

// ServiceParams bundles the dependencies required to build the service.
type ServiceParams struct {
	Repo      repository
	BlobStore local.BlobStore
	Logger    *logger.Logger
}

// NewService constructs a moderation service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "item repository required")
	}
	if params.BlobStore == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "blob store required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "logger required")
	}
	return &service{
		repo:  params.Repo,
		blobs: params.BlobStore,
		log:   params.Logger,
	}, nil
}

// CreateItem stores the optional image, then inserts the listing in pending
// status. The image URL is only set when an upload was provided.
func (s *service) CreateItem(ctx context.Context, sellerID uuid.UUID, req CreateItemRequest) (uuid.UUID, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	category := strings.TrimSpace(req.Category)
	mode := strings.TrimSpace(req.Mode)
	phone := strings.TrimSpace(req.Phone)
	if title == "" || description == "" || category == "" || mode == "" || phone == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "Required fields missing")
	}

	price := decimal.Zero
	if raw := strings.TrimSpace(req.Price); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil || parsed.IsNegative() {
			return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "Invalid price")
		}
		price = parsed
	}

	var imageURL *string
	if req.Image != nil && req.Image.Contents != nil {
		url, err := s.blobs.Save(ctx, req.Image.Filename, req.Image.Contents)
		if err != nil {
			return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store image")
		}
		imageURL = &url
	}

	item := &models.Item{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Price:       price,
		Category:    category,
		Mode:        enums.ItemMode(mode),
		ImageURL:    imageURL,
		Phone:       phone,
		SellerID:    sellerID,
		Status:      enums.ItemStatusPending,
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "insert item")
	}

	s.log.Info(s.log.WithFields(ctx, map[string]any{
		"item_id":   item.ID.String(),
		"seller_id": sellerID.String(),
	}), "item submitted for review")
	return item.ID, nil
}

// UpdateStatus applies an approved/rejected decision. The write is
// unconditional: it neither checks the item exists nor inspects its current
// status, so repeating a decision or flipping it later succeeds quietly.
func (s *service) UpdateStatus(ctx context.Context, itemID uuid.UUID, status string) (enums.ItemStatus, error) {
	target, err := enums.ParseItemStatus(status)
	if err != nil || !target.IsModerationTarget() {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "Invalid status")
	}

	if err := s.repo.SetStatus(ctx, itemID, target); err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update item status")
	}

	s.log.Info(s.log.WithFields(ctx, map[string]any{
		"item_id": itemID.String(),
		"status":  target.String(),
	}), "item status updated")
	return target, nil
}

// DeleteItem hard-deletes the listing. Deleting an already-deleted item
// succeeds, so the endpoint stays idempotent.
func (s *service) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	if err := s.repo.Delete(ctx, itemID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete item")
	}

	s.log.Info(s.log.WithField(ctx, "item_id", itemID.String()), "item deleted")
	return nil
}
