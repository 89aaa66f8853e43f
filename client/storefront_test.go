package client_test

import (
	"context"
	"errors"
	"testing"

	"boutique/client"
	"boutique/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ---- mock checkout API ----

type mockCheckoutAPI struct {
	session *models.PaymentSession
	err     error
	gotReq  *models.CheckoutRequest
	calls   int
}

func (m *mockCheckoutAPI) CreateCheckoutSession(_ context.Context, req models.CheckoutRequest) (*models.PaymentSession, error) {
	m.calls++
	m.gotReq = &req
	if m.err != nil {
		return nil, m.err
	}
	return m.session, nil
}

// ---- helpers ----

func testCustomer() models.CheckoutCustomer {
	return models.CheckoutCustomer{
		Name:         "Ana Maria Popescu",
		Email:        "ana@example.com",
		Phone:        "+40722222222",
		Address:      "Strada Florilor 12, București",
		DeliveryDate: "2026-09-05",
	}
}

func newTestStorefront(api client.CheckoutAPI) (*client.Storefront, *client.MemorySessionStore) {
	logger, _ := zap.NewDevelopment()
	store := client.NewMemorySessionStore()
	return client.NewStorefront(store, api, logger), store
}

// ---- tests ----

func TestSubmitCheckout_WritesSnapshotAndClearsCart(t *testing.T) {
	api := &mockCheckoutAPI{
		session: &models.PaymentSession{SessionID: "cs_sub_1", RedirectURL: "https://stripe.test/pay"},
	}
	sf, store := newTestStorefront(api)

	sf.Cart().AddProduct(scarlet)
	sf.Cart().UpdateQuantity("scarlet-confession", 2)

	redirect, err := sf.SubmitCheckout(context.Background(), testCustomer())
	require.NoError(t, err)
	assert.Equal(t, "https://stripe.test/pay", redirect)

	require.NotNil(t, api.gotReq)
	require.Len(t, api.gotReq.Items, 1)
	assert.Equal(t, "scarlet-confession", api.gotReq.Items[0].ProductID)
	assert.Equal(t, 2, api.gotReq.Items[0].Quantity)

	snapshot, ok := store.Load()
	require.True(t, ok, "snapshot must be written before the navigation away")
	assert.Equal(t, "cs_sub_1", snapshot.SessionID)
	assert.Equal(t, "498.00", snapshot.Total)
	require.Len(t, snapshot.CartItems, 1)
	assert.Equal(t, 2, snapshot.CartItems[0].Quantity)
	assert.False(t, snapshot.CreatedAt.IsZero())

	assert.True(t, sf.Cart().IsEmpty())
	assert.False(t, sf.CartOpen())
}

func TestSubmitCheckout_PaymentsDisabled(t *testing.T) {
	api := &mockCheckoutAPI{}
	sf, _ := newTestStorefront(api)

	sf.Cart().AddProduct(scarlet)
	sf.SetPaymentsEnabled(false)

	_, err := sf.SubmitCheckout(context.Background(), testCustomer())
	assert.ErrorIs(t, err, client.ErrPaymentsDisabled)
	assert.Zero(t, api.calls)
	assert.False(t, sf.Cart().IsEmpty())
}

func TestSubmitCheckout_EmptyCart(t *testing.T) {
	api := &mockCheckoutAPI{}
	sf, store := newTestStorefront(api)

	_, err := sf.SubmitCheckout(context.Background(), testCustomer())
	assert.ErrorIs(t, err, client.ErrEmptyCart)
	assert.Zero(t, api.calls)

	_, ok := store.Load()
	assert.False(t, ok)
}

func TestSubmitCheckout_APIErrorLeavesCartIntact(t *testing.T) {
	api := &mockCheckoutAPI{err: errors.New("Stripe nu este configurat. Setează variabila STRIPE_SECRET_KEY.")}
	sf, store := newTestStorefront(api)

	sf.Cart().AddProduct(scarlet)

	_, err := sf.SubmitCheckout(context.Background(), testCustomer())
	require.Error(t, err)

	assert.False(t, sf.Cart().IsEmpty(), "a failed submission keeps the cart for retry")
	_, ok := store.Load()
	assert.False(t, ok, "no snapshot without a session")
	assert.Equal(t, 1, api.calls, "session creation is never auto-retried")
}

func TestSubmitCheckout_MissingRedirectURL(t *testing.T) {
	api := &mockCheckoutAPI{session: &models.PaymentSession{SessionID: "cs_nourl"}}
	sf, store := newTestStorefront(api)

	sf.Cart().AddProduct(scarlet)

	_, err := sf.SubmitCheckout(context.Background(), testCustomer())
	assert.ErrorIs(t, err, client.ErrNoRedirectURL)

	// the session exists, so the snapshot stays for the landing routes
	_, ok := store.Load()
	assert.True(t, ok)
}

func TestLandSuccess_ConsumesSnapshot(t *testing.T) {
	api := &mockCheckoutAPI{
		session: &models.PaymentSession{SessionID: "cs_success_abc123", RedirectURL: "https://stripe.test/pay"},
	}
	sf, store := newTestStorefront(api)

	sf.Cart().AddProduct(scarlet)
	sf.Cart().UpdateQuantity("scarlet-confession", 2)
	_, err := sf.SubmitCheckout(context.Background(), testCustomer())
	require.NoError(t, err)

	conf := sf.LandSuccess()
	require.True(t, conf.Found)
	assert.Equal(t, "Ana", conf.CustomerName)
	assert.Equal(t, "2026-09-05", conf.DeliveryDate)
	assert.Equal(t, "498.00", conf.Total)
	assert.Equal(t, "S_ABC123", conf.OrderRef)
	require.Len(t, conf.Items, 1)

	assert.True(t, sf.Cart().IsEmpty())
	_, ok := store.Load()
	assert.False(t, ok, "snapshot is deleted once consumed")

	// reload of the success page degrades gracefully
	again := sf.LandSuccess()
	assert.False(t, again.Found)
	assert.Empty(t, again.Items)
}

func TestLandSuccess_WithoutSnapshot(t *testing.T) {
	sf, _ := newTestStorefront(&mockCheckoutAPI{})

	conf := sf.LandSuccess()
	assert.False(t, conf.Found)
}

func TestLandCancel_RestoresCartAndKeepsSnapshot(t *testing.T) {
	api := &mockCheckoutAPI{
		session: &models.PaymentSession{SessionID: "cs_cancel", RedirectURL: "https://stripe.test/pay"},
	}
	sf, store := newTestStorefront(api)

	sf.Cart().AddProduct(scarlet)
	sf.Cart().UpdateQuantity("scarlet-confession", 3)
	sf.Cart().AddProduct(regina)
	wantItems := sf.Cart().Items()

	_, err := sf.SubmitCheckout(context.Background(), testCustomer())
	require.NoError(t, err)
	require.True(t, sf.Cart().IsEmpty())

	outcome := sf.LandCancel()
	require.True(t, outcome.Restored)
	assert.NotEmpty(t, outcome.Notice)
	assert.True(t, sf.CartOpen())
	assert.Equal(t, wantItems, sf.Cart().Items(), "cart restored to exactly the snapshot's items")

	_, ok := store.Load()
	assert.True(t, ok, "snapshot survives a cancel landing")

	// the user retries and lands on success next
	conf := sf.LandSuccess()
	assert.True(t, conf.Found)
}

func TestLandCancel_WithoutSnapshot(t *testing.T) {
	sf, _ := newTestStorefront(&mockCheckoutAPI{})

	outcome := sf.LandCancel()
	assert.False(t, outcome.Restored)
	assert.True(t, sf.Cart().IsEmpty())
	assert.False(t, sf.CartOpen())
}

func TestSecondCheckoutOverwritesSnapshot(t *testing.T) {
	api := &mockCheckoutAPI{
		session: &models.PaymentSession{SessionID: "cs_first", RedirectURL: "https://stripe.test/pay"},
	}
	sf, store := newTestStorefront(api)

	sf.Cart().AddProduct(scarlet)
	_, err := sf.SubmitCheckout(context.Background(), testCustomer())
	require.NoError(t, err)

	api.session = &models.PaymentSession{SessionID: "cs_second", RedirectURL: "https://stripe.test/pay"}
	sf.Cart().AddProduct(regina)
	_, err = sf.SubmitCheckout(context.Background(), testCustomer())
	require.NoError(t, err)

	snapshot, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, "cs_second", snapshot.SessionID)
}
