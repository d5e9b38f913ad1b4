package handlers

import (
	"log"
	"net/http"

	"distromart/internal/common"
	"distromart/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PublicQuoteHandlers serves the unauthenticated quote surfaces under
// /public/:slug. Buyers submit requests and poll a redacted status view; any
// miss (bad slug, wrong tenant, unknown id) renders the same generic 404 so
// the route leaks nothing about other tenants.
type PublicQuoteHandlers struct {
	quoteService  services.QuoteService
	tenantService services.TenantService
}

func NewPublicQuoteHandlers(quoteService services.QuoteService, tenantService services.TenantService) *PublicQuoteHandlers {
	return &PublicQuoteHandlers{quoteService: quoteService, tenantService: tenantService}
}

func (h *PublicQuoteHandlers) resolveTenant(c echo.Context) (uuid.UUID, bool) {
	tenant, err := h.tenantService.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return uuid.Nil, false
	}
	return tenant.ID, true
}

// SubmitQuoteRequest handles POST /public/:slug/quote-requests
func (h *PublicQuoteHandlers) SubmitQuoteRequest(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := h.resolveTenant(c)
	if !ok {
		return common.SendNotFoundError(c, "Catalog")
	}

	var req struct {
		Contact services.QuoteContact     `json:"contact"`
		Items   []services.QuoteItemInput `json:"items"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	created, err := h.quoteService.Submit(ctx, tenantID, req.Contact, req.Items)
	if err != nil {
		if common.IsValidationError(err) {
			return respondServiceError(c, err, "Quote request")
		}
		log.Printf("QUOTE_SUBMIT: tenant %s: %v", tenantID, err)
		return common.SendServerError(c, "Could not submit quote request")
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"id": created.ID,
	})
}

// GetQuoteStatus handles GET /public/:slug/quote-requests/:id
func (h *PublicQuoteHandlers) GetQuoteStatus(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := h.resolveTenant(c)
	if !ok {
		return common.SendNotFoundError(c, "Quote request")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendNotFoundError(c, "Quote request")
	}

	view, err := h.quoteService.PublicStatus(ctx, tenantID, id)
	if err != nil {
		// Store failures also collapse to 404 here rather than confirming the
		// id exists.
		return common.SendNotFoundError(c, "Quote request")
	}

	return c.JSON(http.StatusOK, view)
}
