package handlers

import (
	"net/http"

	"distromart/internal/common"
	"distromart/internal/services"

	"github.com/labstack/echo/v4"
)

// InventoryHandlers handles the admin stock endpoints.
type InventoryHandlers struct {
	inventoryService services.InventoryService
}

func NewInventoryHandlers(inventoryService services.InventoryService) *InventoryHandlers {
	return &InventoryHandlers{inventoryService: inventoryService}
}

// ListInventory handles GET /v1/inventory
func (h *InventoryHandlers) ListInventory(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	limit, offset := parsePagination(c)
	items, err := h.inventoryService.List(ctx, tenantID, limit, offset)
	if err != nil {
		return respondServiceError(c, err, "Inventory")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"inventory": items,
		"limit":     limit,
		"offset":    offset,
	})
}

// GetProductStock handles GET /v1/inventory/:productId
func (h *InventoryHandlers) GetProductStock(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	productID, err := common.ValidateUUID(c.Param("productId"), "product id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	item, err := h.inventoryService.GetByProduct(ctx, tenantID, productID)
	if err != nil {
		return respondServiceError(c, err, "Inventory record")
	}

	return c.JSON(http.StatusOK, item)
}

// AdjustStock handles POST /v1/inventory/:productId/adjust with body
// {"delta": n}. Positive receives stock, negative issues it.
func (h *InventoryHandlers) AdjustStock(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	productID, err := common.ValidateUUID(c.Param("productId"), "product id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req struct {
		Delta int `json:"delta"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	item, err := h.inventoryService.AdjustStock(ctx, tenantID, productID, req.Delta)
	if err != nil {
		return respondServiceError(c, err, "Inventory record")
	}

	return c.JSON(http.StatusOK, item)
}

// SetMinStock handles PUT /v1/inventory/:productId/min-stock
func (h *InventoryHandlers) SetMinStock(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	productID, err := common.ValidateUUID(c.Param("productId"), "product id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req struct {
		MinStock int `json:"min_stock"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if err := h.inventoryService.SetMinStock(ctx, tenantID, productID, req.MinStock); err != nil {
		return respondServiceError(c, err, "Inventory record")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Minimum stock updated",
	})
}
