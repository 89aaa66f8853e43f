// Package client implements the storefront's client-side state: the cart,
// the pending-order snapshot that survives the redirect to the hosted
// payment page, and the success/cancel landing reconciliation.
package client

import (
	"encoding/json"
	"sync"
	"time"

	"boutique/models"
)

// PendingOrderKey is the fixed storage key the snapshot lives under.
const PendingOrderKey = "maison-de-fleurs-pending-order"

// PendingOrder is the snapshot of the last checkout attempt, written
// before the redirect away and read back on the success/cancel landing.
// It only proves a session was initiated, never that payment cleared.
type PendingOrder struct {
	CartItems []models.CartItem       `json:"cartItems"`
	Customer  models.CheckoutCustomer `json:"customer"`
	Total     string                  `json:"total"`
	SessionID string                  `json:"sessionId"`
	CreatedAt time.Time               `json:"createdAt"`
}

// PendingOrderStore is browser-session-scoped storage for the snapshot.
// Implementations must persist across a full page navigation within the
// same session and are injected into whoever needs cross-navigation recall.
type PendingOrderStore interface {
	Load() (*PendingOrder, bool)
	Save(order PendingOrder) error
	Clear()
}

// MemorySessionStore keeps the snapshot as one JSON blob under the fixed
// key, the way sessionStorage holds it in a browser. It lives for the
// session and is lost when the session ends.
type MemorySessionStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemorySessionStore creates an empty session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{values: make(map[string]string)}
}

// Load reads the stored snapshot. A missing or unreadable blob reports
// absence rather than failing, matching the graceful-degradation contract.
func (s *MemorySessionStore) Load() (*PendingOrder, bool) {
	s.mu.Lock()
	raw, ok := s.values[PendingOrderKey]
	s.mu.Unlock()
	if !ok {
		return nil, false
	}

	var order PendingOrder
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return nil, false
	}
	return &order, true
}

// Save serializes the snapshot under the fixed key, replacing any prior
// snapshot.
func (s *MemorySessionStore) Save(order PendingOrder) error {
	data, err := json.Marshal(order)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.values[PendingOrderKey] = string(data)
	s.mu.Unlock()
	return nil
}

// Clear removes the snapshot. Clearing an empty store is a no-op.
func (s *MemorySessionStore) Clear() {
	s.mu.Lock()
	delete(s.values, PendingOrderKey)
	s.mu.Unlock()
}
