package handlers

import (
	"net/http"
	"strings"

	"distromart/internal/common"
	"distromart/internal/models"
	"distromart/internal/services"

	"github.com/labstack/echo/v4"
)

// CustomerHandlers handles the admin customer endpoints.
type CustomerHandlers struct {
	customerService services.CustomerService
}

func NewCustomerHandlers(customerService services.CustomerService) *CustomerHandlers {
	return &CustomerHandlers{customerService: customerService}
}

type customerRequest struct {
	Name    string  `json:"name"`
	Company *string `json:"company"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Notes   *string `json:"notes"`
}

func (r *customerRequest) toModel() *models.Customer {
	return &models.Customer{
		Name:    strings.TrimSpace(r.Name),
		Company: common.TrimmedOrNil(r.Company),
		Email:   common.TrimmedOrNil(r.Email),
		Phone:   common.TrimmedOrNil(r.Phone),
		City:    common.TrimmedOrNil(r.City),
		State:   common.TrimmedOrNil(r.State),
		Notes:   r.Notes,
	}
}

// CreateCustomer handles POST /v1/customers
func (h *CustomerHandlers) CreateCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	customer := req.toModel()
	if err := h.customerService.Create(ctx, tenantID, customer); err != nil {
		return respondServiceError(c, err, "Customer")
	}

	return c.JSON(http.StatusCreated, customer)
}

// ListCustomers handles GET /v1/customers
func (h *CustomerHandlers) ListCustomers(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	limit, offset := parsePagination(c)
	customers, err := h.customerService.List(ctx, tenantID, limit, offset)
	if err != nil {
		return respondServiceError(c, err, "Customers")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"customers": customers,
		"limit":     limit,
		"offset":    offset,
	})
}

// GetCustomer handles GET /v1/customers/:id
func (h *CustomerHandlers) GetCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	id, err := common.ValidateUUID(c.Param("id"), "customer id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	customer, err := h.customerService.GetByID(ctx, tenantID, id)
	if err != nil {
		return respondServiceError(c, err, "Customer")
	}

	return c.JSON(http.StatusOK, customer)
}

// UpdateCustomer handles PUT /v1/customers/:id
func (h *CustomerHandlers) UpdateCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	id, err := common.ValidateUUID(c.Param("id"), "customer id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	customer := req.toModel()
	customer.ID = id
	if err := h.customerService.Update(ctx, tenantID, customer); err != nil {
		return respondServiceError(c, err, "Customer")
	}

	return c.JSON(http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /v1/customers/:id
func (h *CustomerHandlers) DeleteCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	id, err := common.ValidateUUID(c.Param("id"), "customer id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.customerService.Delete(ctx, tenantID, id); err != nil {
		return respondServiceError(c, err, "Customer")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Customer deleted successfully",
	})
}
