package repository

import (
	"context"
	"sync"

	"boutique/models"

	"github.com/google/uuid"
)

// MemoryOrderRepository keeps orders in a process-local map. Last writer
// wins on concurrent updates to the same key; there is no version token.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

// NewMemoryOrderRepository creates an empty in-memory order store.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]models.Order)}
}

// CreateOrder stores a new order under its Stripe session id, falling back
// to the generated internal id when no session id is supplied. An existing
// record under the same key is silently replaced.
func (r *MemoryOrderRepository) CreateOrder(_ context.Context, data models.CreateOrderInput) (*models.Order, error) {
	id := uuid.New()
	sessionID := data.StripeSessionID
	if sessionID == "" {
		sessionID = id.String()
	}
	status := data.Status
	if status == "" {
		status = models.OrderStatusPending
	}
	items := data.Items
	if items == nil {
		items = []models.OrderItem{}
	}

	order := models.Order{
		ID:              id,
		StripeSessionID: sessionID,
		CustomerName:    data.CustomerName,
		CustomerEmail:   data.CustomerEmail,
		CustomerPhone:   data.CustomerPhone,
		DeliveryAddress: data.DeliveryAddress,
		Total:           data.Total,
		Status:          status,
		Items:           items,
	}

	r.mu.Lock()
	r.orders[sessionID] = order
	r.mu.Unlock()

	return &order, nil
}

// UpdateOrderByStripeSession merges updates into the order stored under
// the given session id.
func (r *MemoryOrderRepository) UpdateOrderByStripeSession(_ context.Context, stripeSessionID string, updates models.OrderUpdate) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.orders[stripeSessionID]
	if !ok {
		return nil, ErrOrderNotFound
	}

	applyUpdate(&existing, updates)
	r.orders[stripeSessionID] = existing
	return &existing, nil
}

// GetOrderByStripeSession returns the order stored under the given
// session id.
func (r *MemoryOrderRepository) GetOrderByStripeSession(_ context.Context, stripeSessionID string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[stripeSessionID]
	if !ok {
		return nil, ErrOrderNotFound
	}
	return &order, nil
}
