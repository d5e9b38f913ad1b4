package handlers

import (
	"log"
	"net/http"

	"distromart/internal/common"
	"distromart/internal/services"

	"github.com/labstack/echo/v4"
)

// CatalogHandlers serves the public product catalog.
type CatalogHandlers struct {
	catalogService services.CatalogService
	tenantService  services.TenantService
}

func NewCatalogHandlers(catalogService services.CatalogService, tenantService services.TenantService) *CatalogHandlers {
	return &CatalogHandlers{catalogService: catalogService, tenantService: tenantService}
}

// GetCatalog handles GET /public/:slug/catalog
func (h *CatalogHandlers) GetCatalog(c echo.Context) error {
	ctx := c.Request().Context()

	tenant, err := h.tenantService.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		return common.SendNotFoundError(c, "Catalog")
	}

	products, err := h.catalogService.ListPublic(ctx, tenant.ID)
	if err != nil {
		log.Printf("CATALOG: tenant %s: %v", tenant.ID, err)
		return common.SendServerError(c, "Could not load catalog")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"tenant":   tenant.Slug,
		"products": products,
	})
}
