package handlers

import (
	"net/http"

	"distromart/internal/common"
	"distromart/internal/services"

	"github.com/labstack/echo/v4"
)

// TenantHandlers handles the ops-side tenant endpoints.
type TenantHandlers struct {
	tenantService services.TenantService
}

func NewTenantHandlers(tenantService services.TenantService) *TenantHandlers {
	return &TenantHandlers{tenantService: tenantService}
}

// CreateTenant handles POST /v1/tenants
func (h *TenantHandlers) CreateTenant(c echo.Context) error {
	ctx := c.Request().Context()

	var req services.CreateTenantRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	tenant, err := h.tenantService.Create(ctx, &req)
	if err != nil {
		return respondServiceError(c, err, "Tenant")
	}

	return c.JSON(http.StatusCreated, tenant)
}

// GetTenant handles GET /v1/tenants/:id
func (h *TenantHandlers) GetTenant(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "tenant id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	tenant, err := h.tenantService.GetByID(ctx, id)
	if err != nil {
		return respondServiceError(c, err, "Tenant")
	}

	return c.JSON(http.StatusOK, tenant)
}

// ListTenants handles GET /v1/tenants
func (h *TenantHandlers) ListTenants(c echo.Context) error {
	ctx := c.Request().Context()

	limit, offset := parsePagination(c)
	tenants, err := h.tenantService.List(ctx, limit, offset)
	if err != nil {
		return respondServiceError(c, err, "Tenants")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"tenants": tenants,
		"limit":   limit,
		"offset":  offset,
	})
}

// UpdateTenant handles PUT /v1/tenants/:id
func (h *TenantHandlers) UpdateTenant(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "tenant id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req services.UpdateTenantRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	req.ID = id

	if err := h.tenantService.Update(ctx, &req); err != nil {
		return respondServiceError(c, err, "Tenant")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Tenant updated successfully",
	})
}

// DeleteTenant handles DELETE /v1/tenants/:id
func (h *TenantHandlers) DeleteTenant(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := common.ValidateUUID(c.Param("id"), "tenant id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.tenantService.Delete(ctx, id); err != nil {
		return respondServiceError(c, err, "Tenant")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Tenant deleted successfully",
	})
}
