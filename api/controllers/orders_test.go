package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskart/campuskart-backend/internal/orders"
	pkgerrors "github.com/campuskart/campuskart-backend/pkg/errors"
)

type stubOrdersService struct {
	orderID    uuid.UUID
	placeErr   error
	contactErr error

	contacted []orders.ContactSellerRequest
}

func (s *stubOrdersService) PlaceOrder(_ context.Context, _ uuid.UUID, _ orders.PlaceOrderRequest) (uuid.UUID, error) {
	if s.placeErr != nil {
		return uuid.Nil, s.placeErr
	}
	return s.orderID, nil
}

func (s *stubOrdersService) ContactSeller(_ context.Context, _ uuid.UUID, req orders.ContactSellerRequest) error {
	if s.contactErr != nil {
		return s.contactErr
	}
	s.contacted = append(s.contacted, req)
	return nil
}

func TestPlaceOrderSuccess(t *testing.T) {
	svc := &stubOrdersService{orderID: uuid.New()}
	handler := PlaceOrder(svc, nil)

	body := fmt.Sprintf(`{"itemId":%q}`, uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = authedRequest(req, uuid.New())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp orderCreatedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Order created successfully", resp.Message)
	assert.Equal(t, svc.orderID, resp.OrderID)
}

func TestPlaceOrderUnknownItem(t *testing.T) {
	svc := &stubOrdersService{placeErr: pkgerrors.New(pkgerrors.CodeNotFound, "Item not found")}
	handler := PlaceOrder(svc, nil)

	body := fmt.Sprintf(`{"itemId":%q}`, uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req = authedRequest(req, uuid.New())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Item not found")
}

func TestPlaceOrderRequiresAuth(t *testing.T) {
	handler := PlaceOrder(&stubOrdersService{orderID: uuid.New()}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"itemId":"x"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Access token required")
}

func contactBody(itemID uuid.UUID) string {
	return fmt.Sprintf(`{
		"itemId": %q,
		"name": "Ravi Kumar",
		"collegeName": "Govt Engineering College",
		"branch": "Mechanical",
		"enrollmentNumber": "GEC2023045",
		"phone": "9876500002",
		"email": "ravi@campus.edu"
	}`, itemID)
}

func TestContactSellerSuccess(t *testing.T) {
	svc := &stubOrdersService{}
	handler := ContactSeller(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/contact-seller", strings.NewReader(contactBody(uuid.New())))
	req.Header.Set("Content-Type", "application/json")
	req = authedRequest(req, uuid.New())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Message sent to seller successfully")
	require.Len(t, svc.contacted, 1)
	assert.Equal(t, "Ravi Kumar", svc.contacted[0].Name)
}

func TestContactSellerMissingFields(t *testing.T) {
	svc := &stubOrdersService{}
	handler := ContactSeller(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/contact-seller", strings.NewReader(`{"itemId":"abc"}`))
	req = authedRequest(req, uuid.New())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "All fields required")
	assert.Empty(t, svc.contacted)
}

func TestContactSellerSelfPurchase(t *testing.T) {
	svc := &stubOrdersService{contactErr: pkgerrors.New(pkgerrors.CodeBusinessRule, "Cannot buy your own item")}
	handler := ContactSeller(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/contact-seller", strings.NewReader(contactBody(uuid.New())))
	req = authedRequest(req, uuid.New())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cannot buy your own item")
}
