package orders

// PlaceOrderRequest is the direct order payload.
type PlaceOrderRequest struct {
	ItemID string `json:"itemId" validate:"required"`
}

// ContactSellerRequest carries the buyer's contact details, which are relayed
// to the seller by email. Every field is required.
type ContactSellerRequest struct {
	ItemID           string `json:"itemId" validate:"required"`
	Name             string `json:"name" validate:"required"`
	CollegeName      string `json:"collegeName" validate:"required"`
	Branch           string `json:"branch" validate:"required"`
	EnrollmentNumber string `json:"enrollmentNumber" validate:"required"`
	Phone            string `json:"phone" validate:"required"`
	Email            string `json:"email" validate:"required"`
}
