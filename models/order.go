package models

import "github.com/google/uuid"

// Order statuses. An order starts pending and is moved to a terminal
// status by provider reconciliation only.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
	OrderStatusFailed    = "failed"
)

// OrderItem is a priced line of an order. UnitPrice is the catalog price
// at checkout time, as a decimal string in major units.
type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

// Order is the server-side record of a checkout attempt, keyed by the
// Stripe checkout-session id.
type Order struct {
	ID              uuid.UUID   `json:"id"`
	StripeSessionID string      `json:"stripeSessionId"`
	CustomerName    string      `json:"customerName"`
	CustomerEmail   string      `json:"customerEmail"`
	CustomerPhone   string      `json:"customerPhone"`
	DeliveryAddress string      `json:"deliveryAddress"`
	Total           string      `json:"total"`
	Status          string      `json:"status"`
	Items           []OrderItem `json:"items"`
}

// CreateOrderInput is the payload for OrderRepository.CreateOrder.
// StripeSessionID and Status are optional; the repository fills defaults.
type CreateOrderInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	DeliveryAddress string
	Total           string
	Status          string
	StripeSessionID string
	Items           []OrderItem
}

// OrderUpdate is a partial update merged into an existing order. Nil
// fields are left unchanged; Items is replaced wholesale when non-nil.
type OrderUpdate struct {
	CustomerName    *string
	CustomerEmail   *string
	CustomerPhone   *string
	DeliveryAddress *string
	Total           *string
	Status          *string
	Items           []OrderItem
}
