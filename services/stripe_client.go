package services

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/stripe/stripe-go/v80/webhook"
)

// PaymentProvider abstracts the hosted-payment-page provider. Configured
// reports whether a secret credential is present; an unconfigured provider
// must never be asked to create a session.
type PaymentProvider interface {
	Configured() bool
	CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	ParseWebhook(r *http.Request) (stripe.Event, error)
}

// StripeService implements PaymentProvider against the Stripe API.
type StripeService struct {
	SecretKey  string
	WebhookKey string
}

// NewStripeService sets the global Stripe key and returns the service. An
// empty secretKey leaves the provider unconfigured but still constructable,
// so catalog browsing keeps working without credentials.
func NewStripeService(secretKey, webhookKey string) *StripeService {
	if secretKey != "" {
		stripe.Key = secretKey
	}
	return &StripeService{SecretKey: secretKey, WebhookKey: webhookKey}
}

// Configured reports whether the secret key is set.
func (s *StripeService) Configured() bool {
	return s.SecretKey != ""
}

// CreateCheckoutSession mints a hosted checkout session. Never retried:
// a duplicate session risks double-charging intent.
func (s *StripeService) CreateCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

// ParseWebhook verifies the Stripe-Signature header and decodes the event.
func (s *StripeService) ParseWebhook(r *http.Request) (stripe.Event, error) {
	var event stripe.Event
	if s.WebhookKey == "" {
		return event, errors.New("stripe webhook secret not configured")
	}

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		return event, err
	}
	r.Body = io.NopCloser(bytes.NewBuffer(payload))

	sigHeader := r.Header.Get("Stripe-Signature")
	return webhook.ConstructEvent(payload, sigHeader, s.WebhookKey)
}
