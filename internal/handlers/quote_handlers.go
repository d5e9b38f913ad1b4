package handlers

import (
	"log"
	"net/http"

	"distromart/internal/common"
	"distromart/internal/models"
	"distromart/internal/services"

	"github.com/labstack/echo/v4"
)

// QuoteHandlers serves the admin review surface for quote requests.
type QuoteHandlers struct {
	quoteService services.QuoteService
}

func NewQuoteHandlers(quoteService services.QuoteService) *QuoteHandlers {
	return &QuoteHandlers{quoteService: quoteService}
}

// ListQuoteRequests handles GET /v1/b2b/quote-requests?status=&q=
func (h *QuoteHandlers) ListQuoteRequests(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	status := c.QueryParam("status")
	search := c.QueryParam("q")

	requests, err := h.quoteService.List(ctx, tenantID, status, search)
	if err != nil {
		log.Printf("QUOTE_LIST: tenant %s: %v", tenantID, err)
		return respondServiceError(c, err, "Quote requests")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"quote_requests": requests,
		"count":          len(requests),
	})
}

// GetQuoteRequest handles GET /v1/b2b/quote-requests/:id
func (h *QuoteHandlers) GetQuoteRequest(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	id, err := common.ValidateUUID(c.Param("id"), "quote request id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	req, err := h.quoteService.Get(ctx, tenantID, id)
	if err != nil {
		return respondServiceError(c, err, "Quote request")
	}
	return c.JSON(http.StatusOK, req)
}

// UpdateQuoteRequest handles PATCH /v1/b2b/quote-requests/:id. The body may
// carry either field; the response is the canonical updated record so the
// panel replaces its local copy instead of merging.
func (h *QuoteHandlers) UpdateQuoteRequest(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	id, err := common.ValidateUUID(c.Param("id"), "quote request id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req struct {
		Status        *string `json:"status"`
		InternalNotes *string `json:"internal_notes"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	patch := services.QuoteAdminPatch{InternalNotes: req.InternalNotes}
	if req.Status != nil {
		status := models.QuoteStatus(*req.Status)
		patch.Status = &status
	}

	updated, err := h.quoteService.AdminUpdate(ctx, tenantID, id, patch)
	if err != nil {
		return respondServiceError(c, err, "Quote request")
	}

	return c.JSON(http.StatusOK, updated)
}
