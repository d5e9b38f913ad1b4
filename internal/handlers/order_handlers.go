package handlers

import (
	"net/http"
	"time"

	"distromart/internal/common"
	"distromart/internal/models"
	"distromart/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// OrderHandlers handles the admin order endpoints.
type OrderHandlers struct {
	orderService services.OrderService
}

func NewOrderHandlers(orderService services.OrderService) *OrderHandlers {
	return &OrderHandlers{orderService: orderService}
}

type orderRequest struct {
	CustomerID  string  `json:"customer_id"`
	Status      string  `json:"status"`
	TotalAmount float64 `json:"total_amount"`
	Notes       *string `json:"notes"`
	OrderDate   *string `json:"order_date"`
}

func (r *orderRequest) toModel() (*models.Order, error) {
	order := &models.Order{
		Status:      r.Status,
		TotalAmount: r.TotalAmount,
		Notes:       r.Notes,
	}
	if r.CustomerID != "" {
		customerID, err := uuid.Parse(r.CustomerID)
		if err != nil {
			return nil, common.NewValidationError("customer_id has invalid UUID format")
		}
		order.CustomerID = customerID
	}
	if r.OrderDate != nil && *r.OrderDate != "" {
		orderDate, err := time.Parse("2006-01-02", *r.OrderDate)
		if err != nil {
			return nil, common.NewValidationError("order_date must be YYYY-MM-DD")
		}
		order.OrderDate = orderDate
	}
	return order, nil
}

// CreateOrder handles POST /v1/orders
func (h *OrderHandlers) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	order, err := req.toModel()
	if err != nil {
		return respondServiceError(c, err, "Order")
	}

	if err := h.orderService.Create(ctx, tenantID, order); err != nil {
		return respondServiceError(c, err, "Customer")
	}

	return c.JSON(http.StatusCreated, order)
}

// ListOrders handles GET /v1/orders?status=
func (h *OrderHandlers) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	limit, offset := parsePagination(c)
	orders, err := h.orderService.List(ctx, tenantID, c.QueryParam("status"), limit, offset)
	if err != nil {
		return respondServiceError(c, err, "Orders")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"orders": orders,
		"limit":  limit,
		"offset": offset,
	})
}

// GetOrder handles GET /v1/orders/:id
func (h *OrderHandlers) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	id, err := common.ValidateUUID(c.Param("id"), "order id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	order, err := h.orderService.GetByID(ctx, tenantID, id)
	if err != nil {
		return respondServiceError(c, err, "Order")
	}

	return c.JSON(http.StatusOK, order)
}

// UpdateOrder handles PUT /v1/orders/:id
func (h *OrderHandlers) UpdateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	id, err := common.ValidateUUID(c.Param("id"), "order id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	order, err := req.toModel()
	if err != nil {
		return respondServiceError(c, err, "Order")
	}
	order.ID = id

	if err := h.orderService.Update(ctx, tenantID, order); err != nil {
		return respondServiceError(c, err, "Order")
	}

	return c.JSON(http.StatusOK, order)
}

// DeleteOrder handles DELETE /v1/orders/:id
func (h *OrderHandlers) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	id, err := common.ValidateUUID(c.Param("id"), "order id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.orderService.Delete(ctx, tenantID, id); err != nil {
		return respondServiceError(c, err, "Order")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Order deleted successfully",
	})
}
