package controllers

import (
	"encoding/json"
	"net/http"

	"boutique/models"
	"boutique/repository"
	"boutique/services"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v80"
	"go.uber.org/zap"
)

// terminalStatuses are never overwritten by a later webhook delivery.
var terminalStatuses = map[string]bool{
	models.OrderStatusPaid:      true,
	models.OrderStatusCancelled: true,
	models.OrderStatusFailed:    true,
}

// WebhookController reconciles provider-confirmed payment outcomes into
// the order record store.
type WebhookController struct {
	provider services.PaymentProvider
	orders   repository.OrderRepository
	logger   *zap.Logger
}

// NewWebhookController creates a WebhookController.
func NewWebhookController(provider services.PaymentProvider, orders repository.OrderRepository, logger *zap.Logger) *WebhookController {
	return &WebhookController{provider: provider, orders: orders, logger: logger}
}

// HandleStripeWebhook handles POST /api/checkout/webhook.
func (wc *WebhookController) HandleStripeWebhook(c *gin.Context) {
	event, err := wc.provider.ParseWebhook(c.Request)
	if err != nil {
		wc.logger.Warn("stripe webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		wc.transitionSession(c, event, models.OrderStatusPaid)
	case "checkout.session.expired":
		wc.transitionSession(c, event, models.OrderStatusCancelled)
	case "checkout.session.async_payment_failed":
		wc.transitionSession(c, event, models.OrderStatusFailed)
	default:
		wc.logger.Info("unhandled webhook event type", zap.String("event_type", string(event.Type)))
	}

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}

// transitionSession moves the order for the event's session to status.
// A missing record or a record already in a terminal status is logged and
// acknowledged, so Stripe does not retry the delivery.
func (wc *WebhookController) transitionSession(c *gin.Context, event stripe.Event, status string) {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		wc.logger.Error("failed to unmarshal checkout session event", zap.Error(err))
		return
	}

	ctx := c.Request.Context()

	existing, err := wc.orders.GetOrderByStripeSession(ctx, sess.ID)
	if err != nil {
		wc.logger.Warn("no order record for webhook session",
			zap.String("session_id", sess.ID),
			zap.String("event_type", string(event.Type)),
		)
		return
	}

	if terminalStatuses[existing.Status] {
		wc.logger.Info("skipping duplicate webhook delivery",
			zap.String("session_id", sess.ID),
			zap.String("status", existing.Status),
		)
		return
	}

	if _, err := wc.orders.UpdateOrderByStripeSession(ctx, sess.ID, models.OrderUpdate{Status: &status}); err != nil {
		wc.logger.Error("failed to update order status",
			zap.String("session_id", sess.ID),
			zap.Error(err),
		)
		return
	}

	wc.logger.Info("order status updated",
		zap.String("session_id", sess.ID),
		zap.String("status", status),
	)
}
