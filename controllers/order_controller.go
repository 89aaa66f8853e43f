package controllers

import (
	"errors"
	"net/http"

	"boutique/repository"

	"github.com/gin-gonic/gin"
)

// OrderController exposes read access to order records.
type OrderController struct {
	orders repository.OrderRepository
}

// NewOrderController creates an OrderController.
func NewOrderController(orders repository.OrderRepository) *OrderController {
	return &OrderController{orders: orders}
}

// GetOrderBySession handles GET /api/orders/:sessionId.
func (oc *OrderController) GetOrderBySession(c *gin.Context) {
	sessionID := c.Param("sessionId")

	order, err := oc.orders.GetOrderByStripeSession(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Comanda nu a fost găsită."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}
