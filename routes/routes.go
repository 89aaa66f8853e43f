// Package routes registers the storefront API routes.
package routes

import (
	"boutique/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes sets up all /api routes.
func RegisterAPIRoutes(
	r *gin.Engine,
	pc *controllers.ProductController,
	cc *controllers.CheckoutController,
	oc *controllers.OrderController,
	wc *controllers.WebhookController,
) {
	api := r.Group("/api")

	api.GET("/products", pc.ListProducts)
	api.GET("/config", pc.GetConfig)

	api.POST("/checkout/session", cc.CreateSession)
	api.POST("/checkout/webhook", wc.HandleStripeWebhook)

	api.GET("/orders/:sessionId", oc.GetOrderBySession)
}
