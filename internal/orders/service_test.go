package orders

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campuskart/campuskart-backend/pkg/db/models"
	"github.com/campuskart/campuskart-backend/pkg/enums"
	pkgerrors "github.com/campuskart/campuskart-backend/pkg/errors"
	"github.com/campuskart/campuskart-backend/pkg/logger"
)

type stubOrdersRepo struct {
	items  map[uuid.UUID]*ApprovedItem
	orders []*models.Order
}

func newStubOrdersRepo() *stubOrdersRepo {
	return &stubOrdersRepo{items: map[uuid.UUID]*ApprovedItem{}}
}

func (s *stubOrdersRepo) addApprovedItem(sellerID uuid.UUID) *ApprovedItem {
	item := &ApprovedItem{
		Item: models.Item{
			ID:       uuid.New(),
			Title:    "Scientific Calculator",
			SellerID: sellerID,
			Status:   enums.ItemStatusApproved,
		},
		SellerName:  "Nisha Pillai",
		SellerEmail: "nisha.pillai@example.edu",
	}
	s.items[item.ID] = item
	return item
}

func (s *stubOrdersRepo) FindApprovedItem(_ context.Context, itemID uuid.UUID) (*ApprovedItem, error) {
	item, ok := s.items[itemID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (s *stubOrdersRepo) Create(_ context.Context, order *models.Order) error {
	s.orders = append(s.orders, order)
	return nil
}

func (s *stubOrdersRepo) CreateIfAbsent(_ context.Context, order *models.Order) (bool, error) {
	for _, existing := range s.orders {
		if existing.ItemID == order.ItemID && existing.BuyerID == order.BuyerID && existing.SellerID == order.SellerID {
			*order = *existing
			return false, nil
		}
	}
	s.orders = append(s.orders, order)
	return true, nil
}

type stubMailer struct {
	sent []string
	err  error
}

func (s *stubMailer) Send(_ context.Context, to, subject, _ string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, to+": "+subject)
	return nil
}

func buildOrdersService(t *testing.T, repo repository, mail *stubMailer) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:   repo,
		Mailer: mail,
		Logger: logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
	})
	require.NoError(t, err)
	return svc
}

func validContactRequest(itemID uuid.UUID) ContactSellerRequest {
	return ContactSellerRequest{
		ItemID:           itemID.String(),
		Name:             "Rohit Kumar",
		CollegeName:      "IET Lucknow",
		Branch:           "CSE",
		EnrollmentNumber: "2101640100123",
		Phone:            "9876500004",
		Email:            "rohit.kumar@example.edu",
	}
}

func TestPlaceOrderCreatesRow(t *testing.T) {
	repo := newStubOrdersRepo()
	item := repo.addApprovedItem(uuid.New())
	svc := buildOrdersService(t, repo, &stubMailer{})
	buyerID := uuid.New()

	orderID, err := svc.PlaceOrder(context.Background(), buyerID, PlaceOrderRequest{ItemID: item.ID.String()})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, orderID)
	require.Len(t, repo.orders, 1)
	assert.Equal(t, item.SellerID, repo.orders[0].SellerID)
}

func TestPlaceOrderAllowsRepeatRows(t *testing.T) {
	repo := newStubOrdersRepo()
	item := repo.addApprovedItem(uuid.New())
	svc := buildOrdersService(t, repo, &stubMailer{})
	buyerID := uuid.New()

	for i := 0; i < 2; i++ {
		_, err := svc.PlaceOrder(context.Background(), buyerID, PlaceOrderRequest{ItemID: item.ID.String()})
		require.NoError(t, err)
	}
	assert.Len(t, repo.orders, 2)
}

func TestPlaceOrderUnknownItem(t *testing.T) {
	svc := buildOrdersService(t, newStubOrdersRepo(), &stubMailer{})

	for _, raw := range []string{uuid.NewString(), "not-a-uuid", ""} {
		_, err := svc.PlaceOrder(context.Background(), uuid.New(), PlaceOrderRequest{ItemID: raw})
		typed := pkgerrors.As(err)
		require.NotNil(t, typed, "itemId %q", raw)
		assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
		assert.Equal(t, "Item not found", typed.Message())
	}
}

func TestPlaceOrderRejectsSelfPurchase(t *testing.T) {
	repo := newStubOrdersRepo()
	sellerID := uuid.New()
	item := repo.addApprovedItem(sellerID)
	svc := buildOrdersService(t, repo, &stubMailer{})

	_, err := svc.PlaceOrder(context.Background(), sellerID, PlaceOrderRequest{ItemID: item.ID.String()})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeBusinessRule, typed.Code())
	assert.Equal(t, "Cannot buy your own item", typed.Message())
	assert.Empty(t, repo.orders)
}

func TestContactSellerSendsMailAndRecordsOnce(t *testing.T) {
	repo := newStubOrdersRepo()
	item := repo.addApprovedItem(uuid.New())
	mail := &stubMailer{}
	svc := buildOrdersService(t, repo, mail)
	buyerID := uuid.New()

	req := validContactRequest(item.ID)
	require.NoError(t, svc.ContactSeller(context.Background(), buyerID, req))
	require.NoError(t, svc.ContactSeller(context.Background(), buyerID, req))

	assert.Len(t, repo.orders, 1)
	require.Len(t, mail.sent, 2)
	assert.Contains(t, mail.sent[0], "nisha.pillai@example.edu")
	assert.Contains(t, mail.sent[0], "Scientific Calculator")
}

func TestContactSellerMailFailureIsNonFatal(t *testing.T) {
	repo := newStubOrdersRepo()
	item := repo.addApprovedItem(uuid.New())
	mail := &stubMailer{err: fmt.Errorf("smtp: connection refused")}
	svc := buildOrdersService(t, repo, mail)

	err := svc.ContactSeller(context.Background(), uuid.New(), validContactRequest(item.ID))
	require.NoError(t, err)
	assert.Len(t, repo.orders, 1)
}

func TestContactSellerMissingFields(t *testing.T) {
	repo := newStubOrdersRepo()
	item := repo.addApprovedItem(uuid.New())
	svc := buildOrdersService(t, repo, &stubMailer{})

	req := validContactRequest(item.ID)
	req.EnrollmentNumber = "  "
	err := svc.ContactSeller(context.Background(), uuid.New(), req)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	assert.Equal(t, "All fields required", typed.Message())
}

func TestContactSellerRejectsOwnListing(t *testing.T) {
	repo := newStubOrdersRepo()
	sellerID := uuid.New()
	item := repo.addApprovedItem(sellerID)
	svc := buildOrdersService(t, repo, &stubMailer{})

	err := svc.ContactSeller(context.Background(), sellerID, validContactRequest(item.ID))
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeBusinessRule, typed.Code())
}
