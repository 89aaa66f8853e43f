// Package services holds the checkout orchestration: pricing a validated
// cart, minting the payment session and recording the pending order.
package services

import (
	"context"
	"fmt"

	"boutique/catalog"
	apperrors "boutique/common/errors"
	"boutique/models"
	"boutique/repository"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
)

const checkoutCurrency = "ron"

var oneHundred = decimal.NewFromInt(100)

// CheckoutService turns a checkout request into a provider session.
type CheckoutService interface {
	CreateSession(ctx context.Context, req *models.CheckoutRequest, origin string) (*models.PaymentSession, *apperrors.Error)
}

type checkoutServiceImpl struct {
	catalog  catalog.Provider
	provider PaymentProvider
	orders   repository.OrderRepository
	logger   *zap.Logger
}

// NewCheckoutService creates a CheckoutService.
func NewCheckoutService(
	cat catalog.Provider,
	provider PaymentProvider,
	orders repository.OrderRepository,
	logger *zap.Logger,
) CheckoutService {
	return &checkoutServiceImpl{
		catalog:  cat,
		provider: provider,
		orders:   orders,
		logger:   logger,
	}
}

// pricedLine is one resolved, priced line of the request.
type pricedLine struct {
	product   models.Product
	quantity  int
	unitMinor int64           // minor currency units (bani), round(price*100)
	unitPrice decimal.Decimal // major units, exact
}

// CreateSession validates the request against the catalog, prices it in
// minor currency units, mints a Stripe checkout session and records a
// pending order keyed by the new session id.
func (s *checkoutServiceImpl) CreateSession(ctx context.Context, req *models.CheckoutRequest, origin string) (*models.PaymentSession, *apperrors.Error) {
	if len(req.Items) == 0 {
		return nil, apperrors.InvalidInput("Datele trimise nu sunt valide.", map[string][]string{
			"items": {"coșul nu poate fi gol"},
		})
	}

	lines := make([]pricedLine, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, apperrors.InvalidInput("Datele trimise nu sunt valide.", map[string][]string{
				"items": {fmt.Sprintf("cantitate invalidă pentru produsul %s", item.ProductID)},
			})
		}

		product, ok := s.catalog.FindProductByID(item.ProductID)
		if !ok {
			return nil, apperrors.NotFound(fmt.Sprintf("Produsul cu id-ul %s nu a fost găsit.", item.ProductID))
		}

		unitPrice, err := decimal.NewFromString(product.Price)
		if err != nil {
			s.logger.Error("invalid catalog price",
				zap.String("product_id", product.ID),
				zap.String("price", product.Price),
				zap.Error(err),
			)
			return nil, apperrors.UpstreamError(fmt.Errorf("preț invalid pentru produsul %s", product.ID))
		}

		lines = append(lines, pricedLine{
			product:   product,
			quantity:  item.Quantity,
			unitMinor: unitPrice.Mul(oneHundred).Round(0).IntPart(),
			unitPrice: unitPrice,
		})
	}

	if !s.provider.Configured() {
		return nil, apperrors.UpstreamUnavailable("Stripe nu este configurat. Setează variabila STRIPE_SECRET_KEY.")
	}

	params := s.buildSessionParams(ctx, req, origin, lines)

	sess, err := s.provider.CreateCheckoutSession(params)
	if err != nil {
		s.logger.Error("stripe session creation failed", zap.Error(err))
		return nil, apperrors.UpstreamError(err)
	}

	s.recordPendingOrder(ctx, req, sess.ID, lines)

	s.logger.Info("checkout session created",
		zap.String("session_id", sess.ID),
		zap.Int("line_count", len(lines)),
	)

	return &models.PaymentSession{SessionID: sess.ID, RedirectURL: sess.URL}, nil
}

func (s *checkoutServiceImpl) buildSessionParams(ctx context.Context, req *models.CheckoutRequest, origin string, lines []pricedLine) *stripe.CheckoutSessionParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(lines))
	for _, line := range lines {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name:        stripe.String(line.product.Name),
			Description: stripe.String(line.product.Description),
		}
		if line.product.Image != "" {
			productData.Images = stripe.StringSlice([]string{origin + line.product.Image})
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(int64(line.quantity)),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(checkoutCurrency),
				UnitAmount:  stripe.Int64(line.unitMinor),
				ProductData: productData,
			},
		})
	}

	successURL := req.SuccessURL
	if successURL == "" {
		successURL = origin + "/checkout/succes?session_id={CHECKOUT_SESSION_ID}"
	}
	cancelURL := req.CancelURL
	if cancelURL == "" {
		cancelURL = origin + "/checkout/anulat"
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:     lineItems,
		CustomerEmail: stripe.String(req.Customer.Email),
		SuccessURL:    stripe.String(successURL),
		CancelURL:     stripe.String(cancelURL),
	}
	params.Context = ctx
	params.AddMetadata("customer_name", req.Customer.Name)
	params.AddMetadata("customer_phone", req.Customer.Phone)
	params.AddMetadata("delivery_address", req.Customer.Address)
	params.AddMetadata("delivery_date", req.Customer.DeliveryDate)
	params.AddMetadata("gift_message", req.Customer.Message)

	return params
}

// recordPendingOrder stores the pending order for later webhook
// reconciliation. The session already exists at this point, so a storage
// failure is logged rather than surfaced to the buyer.
func (s *checkoutServiceImpl) recordPendingOrder(ctx context.Context, req *models.CheckoutRequest, sessionID string, lines []pricedLine) {
	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		total = total.Add(line.unitPrice.Mul(decimal.NewFromInt(int64(line.quantity))))
		items = append(items, models.OrderItem{
			ProductID: line.product.ID,
			Quantity:  line.quantity,
			UnitPrice: line.unitPrice.StringFixed(2),
		})
	}

	_, err := s.orders.CreateOrder(ctx, models.CreateOrderInput{
		CustomerName:    req.Customer.Name,
		CustomerEmail:   req.Customer.Email,
		CustomerPhone:   req.Customer.Phone,
		DeliveryAddress: req.Customer.Address,
		Total:           total.StringFixed(2),
		Status:          models.OrderStatusPending,
		StripeSessionID: sessionID,
		Items:           items,
	})
	if err != nil {
		s.logger.Error("failed to record pending order",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}
}
