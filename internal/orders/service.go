package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campuskart/campuskart-backend/pkg/db/models"
	pkgerrors "github.com/campuskart/campuskart-backend/pkg/errors"
	"github.com/campuskart/campuskart-backend/pkg/logger"
	"github.com/campuskart/campuskart-backend/pkg/mailer"
)

const itemNotFoundMessage = "Item not found"

// Service records purchase intents: direct orders and the contact-seller
// flow, which additionally notifies the seller by email.
type Service interface {
	PlaceOrder(ctx context.Context, buyerID uuid.UUID, req PlaceOrderRequest) (uuid.UUID, error)
	ContactSeller(ctx context.Context, buyerID uuid.UUID, req ContactSellerRequest) error
}

type repository interface {
	FindApprovedItem(ctx context.Context, itemID uuid.UUID) (*ApprovedItem, error)
	Create(ctx context.Context, order *models.Order) error
	CreateIfAbsent(ctx context.Context, order *models.Order) (bool, error)
}

type service struct {
	repo repository
	mail mailer.Sender
	log  *logger.Logger
}

// ServiceParams bundles the dependencies required to build an orders service.
type ServiceParams struct {
	Repo   repository
	Mailer mailer.Sender
	Logger *logger.Logger
}

// NewService constructs an orders service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "orders repository required")
	}
	if params.Mailer == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "mailer required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "logger required")
	}
	return &service{
		repo: params.Repo,
		mail: params.Mailer,
		log:  params.Logger,
	}, nil
}

// PlaceOrder records a direct purchase intent. Repeat orders for the same
// item are allowed and create distinct rows.
func (s *service) PlaceOrder(ctx context.Context, buyerID uuid.UUID, req PlaceOrderRequest) (uuid.UUID, error) {
	item, err := s.lookupApprovedItem(ctx, req.ItemID, buyerID)
	if err != nil {
		return uuid.Nil, err
	}

	order := &models.Order{
		ID:       uuid.New(),
		ItemID:   item.ID,
		BuyerID:  buyerID,
		SellerID: item.SellerID,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
	}
	return order.ID, nil
}

// ContactSeller emails the seller with the buyer's details and records the
// intent as an order. A delivery failure does not fail the request, and
// repeating the same contact never creates a second order row.
func (s *service) ContactSeller(ctx context.Context, buyerID uuid.UUID, req ContactSellerRequest) error {
	name := strings.TrimSpace(req.Name)
	college := strings.TrimSpace(req.CollegeName)
	branch := strings.TrimSpace(req.Branch)
	enrollment := strings.TrimSpace(req.EnrollmentNumber)
	phone := strings.TrimSpace(req.Phone)
	email := strings.TrimSpace(req.Email)
	if strings.TrimSpace(req.ItemID) == "" || name == "" || college == "" || branch == "" ||
		enrollment == "" || phone == "" || email == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "All fields required")
	}

	item, err := s.lookupApprovedItem(ctx, req.ItemID, buyerID)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("CampusKart: buyer interested in %q", item.Title)
	body := fmt.Sprintf(
		"Hi %s,\n\nA buyer wants to get in touch about your listing %q.\n\n"+
			"Name: %s\nCollege: %s\nBranch: %s\nEnrollment number: %s\nPhone: %s\nEmail: %s\n",
		item.SellerName, item.Title, name, college, branch, enrollment, phone, email,
	)
	if err := s.mail.Send(ctx, item.SellerEmail, subject, body); err != nil {
		s.log.Warn(s.log.WithField(ctx, "item_id", item.ID.String()), "seller notification failed: "+err.Error())
	}

	order := &models.Order{
		ID:       uuid.New(),
		ItemID:   item.ID,
		BuyerID:  buyerID,
		SellerID: item.SellerID,
	}
	if _, err := s.repo.CreateIfAbsent(ctx, order); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "record contact order")
	}
	return nil
}

func (s *service) lookupApprovedItem(ctx context.Context, rawItemID string, buyerID uuid.UUID) (*ApprovedItem, error) {
	itemID, err := uuid.Parse(strings.TrimSpace(rawItemID))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, itemNotFoundMessage)
	}

	item, err := s.repo.FindApprovedItem(ctx, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, itemNotFoundMessage)
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find approved item")
	}
	if item.SellerID == buyerID {
		return nil, pkgerrors.New(pkgerrors.CodeBusinessRule, "Cannot buy your own item")
	}
	return item, nil
}
