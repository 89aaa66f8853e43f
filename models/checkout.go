package models

// CheckoutItem references a catalog product by id.
type CheckoutItem struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// CheckoutCustomer carries the delivery details submitted once per
// checkout attempt.
type CheckoutCustomer struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required,min=5"`
	Address      string `json:"address" binding:"required,min=5"`
	DeliveryDate string `json:"deliveryDate,omitempty" binding:"omitempty"`
	Message      string `json:"message,omitempty"`
}

// CheckoutRequest is the payload of POST /api/checkout/session.
type CheckoutRequest struct {
	Items      []CheckoutItem   `json:"items" binding:"required,min=1,dive"`
	Customer   CheckoutCustomer `json:"customer" binding:"required"`
	SuccessURL string           `json:"successUrl,omitempty" binding:"omitempty,url"`
	CancelURL  string           `json:"cancelUrl,omitempty" binding:"omitempty,url"`
}

// PaymentSession is the provider-issued handle for one checkout attempt.
// SessionID correlates client, order record and provider state.
type PaymentSession struct {
	SessionID   string `json:"sessionId"`
	RedirectURL string `json:"url"`
}
