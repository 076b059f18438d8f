package catalog

import (
	"context"

	"github.com/google/uuid"

	pkgerrors "github.com/campuskart/campuskart-backend/pkg/errors"
)

// Service defines the read queries needed by the catalog controllers.
type Service interface {
	PublicItems(ctx context.Context, filters ItemFilters) ([]ItemView, error)
	PendingItems(ctx context.Context) ([]ItemView, error)
	OwnerItems(ctx context.Context, sellerID uuid.UUID) ([]ItemView, error)
	OwnerOrders(ctx context.Context, buyerID uuid.UUID) ([]OrderView, error)
}

type repository interface {
	ApprovedItems(ctx context.Context, filters ItemFilters) ([]ItemView, error)
	PendingItems(ctx context.Context) ([]ItemView, error)
	SellerItems(ctx context.Context, sellerID uuid.UUID) ([]ItemView, error)
	BuyerOrders(ctx context.Context, buyerID uuid.UUID) ([]OrderView, error)
}

type service struct {
	repo repository
}

// NewService constructs a catalog service backed by the provided repo.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) PublicItems(ctx context.Context, filters ItemFilters) ([]ItemView, error) {
	views, err := s.repo.ApprovedItems(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list approved items")
	}
	return views, nil
}

func (s *service) PendingItems(ctx context.Context) ([]ItemView, error) {
	views, err := s.repo.PendingItems(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list pending items")
	}
	return views, nil
}

func (s *service) OwnerItems(ctx context.Context, sellerID uuid.UUID) ([]ItemView, error) {
	views, err := s.repo.SellerItems(ctx, sellerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list seller items")
	}
	return views, nil
}

func (s *service) OwnerOrders(ctx context.Context, buyerID uuid.UUID) ([]OrderView, error) {
	views, err := s.repo.BuyerOrders(ctx, buyerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list buyer orders")
	}
	return views, nil
}
