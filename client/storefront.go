package client

import (
	"context"
	"errors"
	"strings"
	"time"

	"boutique/models"

	"go.uber.org/zap"
)

// ErrEmptyCart rejects a checkout submission with no items.
var ErrEmptyCart = errors.New("Coșul este gol. Adaugă produse și reîncearcă.")

// ErrNoRedirectURL is returned when the provider issued a session without
// a redirect target.
var ErrNoRedirectURL = errors.New("Nu am putut obține adresa de redirecționare către Stripe.")

// ErrPaymentsDisabled rejects submission while the payment provider is
// unconfigured (null publishable key from /api/config).
var ErrPaymentsDisabled = errors.New("Plățile nu sunt disponibile momentan.")

// Confirmation is what the success landing renders. Found is false when no
// snapshot exists (page refresh after consumption, or direct navigation),
// in which case the page shows a generic confirmation with no line detail.
type Confirmation struct {
	Found        bool
	OrderRef     string
	CustomerName string
	DeliveryDate string
	Items        []models.CartItem
	Total        string
	CreatedAt    time.Time
}

// CancelOutcome is what the cancel landing renders.
type CancelOutcome struct {
	Restored bool
	Notice   string
}

// Storefront drives the client checkout flow across the redirect
// round-trip: it owns the cart, the injected pending-order store and the
// checkout API client.
type Storefront struct {
	cart   *Cart
	store  PendingOrderStore
	api    CheckoutAPI
	logger *zap.Logger

	cartOpen        bool
	paymentsEnabled bool
}

// NewStorefront creates a Storefront with an empty cart. Payments start
// enabled; callers flip them off when /api/config reports a null
// publishable key.
func NewStorefront(store PendingOrderStore, api CheckoutAPI, logger *zap.Logger) *Storefront {
	return &Storefront{
		cart:            NewCart(),
		store:           store,
		api:             api,
		logger:          logger,
		paymentsEnabled: true,
	}
}

// SetPaymentsEnabled toggles checkout submission, mirroring the
// publishable-key availability from the config endpoint.
func (s *Storefront) SetPaymentsEnabled(enabled bool) {
	s.paymentsEnabled = enabled
}

// Cart exposes the active cart.
func (s *Storefront) Cart() *Cart {
	return s.cart
}

// CartOpen reports whether the cart view is open.
func (s *Storefront) CartOpen() bool {
	return s.cartOpen
}

// OpenCart opens the cart view.
func (s *Storefront) OpenCart() {
	s.cartOpen = true
}

// CloseCart closes the cart view.
func (s *Storefront) CloseCart() {
	s.cartOpen = false
}

// SubmitCheckout sends the cart and customer details to the server and
// returns the redirect URL of the hosted payment page. The pending-order
// snapshot is written before anything else can interrupt the flow, since
// the navigation that follows unloads all in-memory state. On success the
// cart is cleared; on failure it is left untouched for a retry.
func (s *Storefront) SubmitCheckout(ctx context.Context, customer models.CheckoutCustomer) (string, error) {
	if !s.paymentsEnabled {
		return "", ErrPaymentsDisabled
	}
	if s.cart.IsEmpty() {
		return "", ErrEmptyCart
	}

	cartItems := s.cart.Items()
	total := s.cart.Total()

	items := make([]models.CheckoutItem, 0, len(cartItems))
	for _, item := range cartItems {
		items = append(items, models.CheckoutItem{ProductID: item.Product.ID, Quantity: item.Quantity})
	}

	session, err := s.api.CreateCheckoutSession(ctx, models.CheckoutRequest{Items: items, Customer: customer})
	if err != nil {
		s.logger.Warn("checkout session request failed", zap.Error(err))
		return "", err
	}

	snapshot := PendingOrder{
		CartItems: cartItems,
		Customer:  customer,
		Total:     total.StringFixed(2),
		SessionID: session.SessionID,
		CreatedAt: time.Now(),
	}
	if err := s.store.Save(snapshot); err != nil {
		s.logger.Error("failed to save pending order snapshot", zap.Error(err))
	}

	s.cart.ClearAll()
	s.cartOpen = false

	if session.RedirectURL == "" {
		return "", ErrNoRedirectURL
	}
	return session.RedirectURL, nil
}

// LandSuccess handles the success-route landing. When a snapshot exists
// it is the authoritative view of what was just ordered: the confirmation
// is rendered from it, the cart is cleared and the snapshot deleted so a
// reload degrades gracefully instead of re-confirming.
func (s *Storefront) LandSuccess() Confirmation {
	s.cartOpen = false
	s.cart.ClearAll()

	snapshot, ok := s.store.Load()
	s.store.Clear()
	if !ok {
		return Confirmation{Found: false}
	}

	ref := snapshot.SessionID
	if len(ref) > 8 {
		ref = ref[len(ref)-8:]
	}

	return Confirmation{
		Found:        true,
		OrderRef:     strings.ToUpper(ref),
		CustomerName: firstName(snapshot.Customer.Name),
		DeliveryDate: snapshot.Customer.DeliveryDate,
		Items:        snapshot.CartItems,
		Total:        snapshot.Total,
		CreatedAt:    snapshot.CreatedAt,
	}
}

// LandCancel handles the cancel-route landing. The snapshot, when present,
// is restored as the active cart so the user can retry without re-entering
// items, and is kept in the store: the retry may land on success next.
func (s *Storefront) LandCancel() CancelOutcome {
	snapshot, ok := s.store.Load()
	if !ok {
		s.cartOpen = false
		return CancelOutcome{Restored: false}
	}

	s.cart.Replace(snapshot.CartItems)
	s.cartOpen = true
	return CancelOutcome{
		Restored: true,
		Notice:   "Plata a fost anulată. Produsele tale au rămas în coș.",
	}
}

// firstName returns the first word of a full name.
func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
