package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"boutique/client"
	"boutique/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPCheckoutAPI_CreateCheckoutSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/checkout/session", r.URL.Path)

		var req models.CheckoutRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "scarlet-confession", req.Items[0].ProductID)

		json.NewEncoder(w).Encode(models.PaymentSession{SessionID: "cs_http", RedirectURL: "https://stripe.test/pay"}) //nolint:errcheck
	}))
	defer srv.Close()

	api := client.NewHTTPCheckoutAPI(srv.URL)
	session, err := api.CreateCheckoutSession(context.Background(), models.CheckoutRequest{
		Items:    []models.CheckoutItem{{ProductID: "scarlet-confession", Quantity: 1}},
		Customer: testCustomer(),
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_http", session.SessionID)
}

func TestHTTPCheckoutAPI_SurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Produsul cu id-ul x nu a fost găsit."}) //nolint:errcheck
	}))
	defer srv.Close()

	api := client.NewHTTPCheckoutAPI(srv.URL)
	_, err := api.CreateCheckoutSession(context.Background(), models.CheckoutRequest{})
	require.Error(t, err)
	assert.Equal(t, "Produsul cu id-ul x nu a fost găsit.", err.Error())
}

func TestHTTPCheckoutAPI_FetchProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/products", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"products": []models.Product{scarlet, regina}}) //nolint:errcheck
	}))
	defer srv.Close()

	api := client.NewHTTPCheckoutAPI(srv.URL)
	products, err := api.FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "scarlet-confession", products[0].ID)
}

func TestHTTPCheckoutAPI_FetchPublishableKey(t *testing.T) {
	key := "pk_test_abc"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]*string{"publishableKey": &key}) //nolint:errcheck
	}))
	defer srv.Close()

	api := client.NewHTTPCheckoutAPI(srv.URL)
	got, err := api.FetchPublishableKey(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "pk_test_abc", *got)
}

func TestHTTPCheckoutAPI_NullPublishableKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"publishableKey":null}`)) //nolint:errcheck
	}))
	defer srv.Close()

	api := client.NewHTTPCheckoutAPI(srv.URL)
	got, err := api.FetchPublishableKey(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}
