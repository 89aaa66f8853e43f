// Package controllers holds the gin handlers for the storefront API.
package controllers

import (
	"net/http"

	"boutique/catalog"

	"github.com/gin-gonic/gin"
)

// ProductController serves the catalog and the client-side payment config.
type ProductController struct {
	catalog        catalog.Provider
	publishableKey string
}

// NewProductController creates a ProductController. publishableKey may be
// empty; the config endpoint then reports null and the client disables
// checkout submission.
func NewProductController(cat catalog.Provider, publishableKey string) *ProductController {
	return &ProductController{catalog: cat, publishableKey: publishableKey}
}

// ListProducts handles GET /api/products.
func (pc *ProductController) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": pc.catalog.Products()})
}

// GetConfig handles GET /api/config.
func (pc *ProductController) GetConfig(c *gin.Context) {
	var key *string
	if pc.publishableKey != "" {
		key = &pc.publishableKey
	}
	c.JSON(http.StatusOK, gin.H{"publishableKey": key})
}
