// Package repository implements the order record store, a key-value table
// of checkout attempts keyed by Stripe session id.
package repository

import (
	"context"
	"errors"

	"boutique/models"
)

// ErrOrderNotFound is returned when no order exists for a session id.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the order-record operations. Orders are created
// once per checkout attempt, updated only by provider reconciliation, and
// never deleted.
type OrderRepository interface {
	CreateOrder(ctx context.Context, data models.CreateOrderInput) (*models.Order, error)
	UpdateOrderByStripeSession(ctx context.Context, stripeSessionID string, updates models.OrderUpdate) (*models.Order, error)
	GetOrderByStripeSession(ctx context.Context, stripeSessionID string) (*models.Order, error)
}

// applyUpdate merges a partial update into an order. Items is replaced
// wholesale when provided, otherwise left unchanged.
func applyUpdate(order *models.Order, updates models.OrderUpdate) {
	if updates.CustomerName != nil {
		order.CustomerName = *updates.CustomerName
	}
	if updates.CustomerEmail != nil {
		order.CustomerEmail = *updates.CustomerEmail
	}
	if updates.CustomerPhone != nil {
		order.CustomerPhone = *updates.CustomerPhone
	}
	if updates.DeliveryAddress != nil {
		order.DeliveryAddress = *updates.DeliveryAddress
	}
	if updates.Total != nil {
		order.Total = *updates.Total
	}
	if updates.Status != nil {
		order.Status = *updates.Status
	}
	if updates.Items != nil {
		order.Items = updates.Items
	}
}
