package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"boutique/models"
)

// CheckoutAPI is the server surface the storefront client calls to start
// a payment. There is no cancellation primitive for an in-flight call;
// a user navigating away simply abandons it.
type CheckoutAPI interface {
	CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (*models.PaymentSession, error)
}

// HTTPCheckoutAPI calls the storefront's /api/checkout/session endpoint.
type HTTPCheckoutAPI struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPCheckoutAPI creates a CheckoutAPI against the given base URL.
func NewHTTPCheckoutAPI(baseURL string) *HTTPCheckoutAPI {
	return &HTTPCheckoutAPI{BaseURL: baseURL, Client: http.DefaultClient}
}

// FetchProducts loads the catalog.
func (a *HTTPCheckoutAPI) FetchProducts(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.BaseURL+"/api/products", nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Nu am putut încărca colecția de produse.")
	}

	var body struct {
		Products []models.Product `json:"products"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Products, nil
}

// FetchPublishableKey reads the payment config. A nil key means the
// provider is unconfigured and checkout submission must be disabled.
func (a *HTTPCheckoutAPI) FetchPublishableKey(ctx context.Context) (*string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.BaseURL+"/api/config", nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Nu am putut obține configurația Stripe.")
	}

	var body struct {
		PublishableKey *string `json:"publishableKey"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.PublishableKey, nil
}

// CreateCheckoutSession posts the checkout request and decodes the
// session. Error responses surface the server's localized message.
func (a *HTTPCheckoutAPI) CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (*models.PaymentSession, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+"/api/checkout/session", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.Client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		var errBody struct {
			Message string `json:"message"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Message != "" {
			return nil, fmt.Errorf("%s", errBody.Message)
		}
		return nil, fmt.Errorf("Nu am putut iniția plata. Te rugăm să încerci din nou.")
	}

	var session models.PaymentSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, err
	}
	return &session, nil
}
