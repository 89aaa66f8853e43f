package controllers

import (
	"errors"
	"net/http"
	"strings"

	apperrors "boutique/common/errors"
	"boutique/models"
	"boutique/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CheckoutController handles checkout-session creation.
type CheckoutController struct {
	checkout services.CheckoutService
	baseURL  string
}

// NewCheckoutController creates a CheckoutController. baseURL is the
// fallback used to build absolute URLs when the request carries no Origin
// or Referer header.
func NewCheckoutController(svc services.CheckoutService, baseURL string) *CheckoutController {
	return &CheckoutController{checkout: svc, baseURL: baseURL}
}

// CreateSession handles POST /api/checkout/session.
func (cc *CheckoutController) CreateSession(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.Respond(c, apperrors.InvalidInput("Datele trimise nu sunt valide.", validationFields(err)))
		return
	}

	session, svcErr := cc.checkout.CreateSession(c.Request.Context(), &req, requestOrigin(c, cc.baseURL))
	if svcErr != nil {
		apperrors.Respond(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, session)
}

// requestOrigin derives the absolute-URL base from the Origin or Referer
// header, falling back to the configured base URL.
func requestOrigin(c *gin.Context, fallback string) string {
	origin := c.GetHeader("Origin")
	if origin == "" {
		origin = c.GetHeader("Referer")
	}
	if origin == "" {
		origin = fallback
	}
	return strings.TrimRight(origin, "/")
}

// validationFields flattens validator errors into a field → messages map,
// keyed by the lowercased field path (e.g. "customer.email").
func validationFields(err error) map[string][]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		ns := fe.Namespace()
		if i := strings.Index(ns, "."); i >= 0 {
			ns = ns[i+1:]
		}
		key := strings.ToLower(ns)
		fields[key] = append(fields[key], fe.Tag())
	}
	return fields
}
