package handlers

import (
	"errors"
	"strconv"

	"distromart/internal/common"

	"github.com/labstack/echo/v4"
)

// respondServiceError maps service-layer errors onto the standard JSON error
// envelope. Validation reasons go back to the client verbatim; everything else
// stays opaque.
func respondServiceError(c echo.Context, err error, resource string) error {
	var verr *common.ValidationError
	if errors.As(err, &verr) {
		return common.SendClientError(c, verr.Reason)
	}
	if errors.Is(err, common.ErrNotFound) {
		return common.SendNotFoundError(c, resource)
	}
	return common.SendServerError(c, "Internal server error")
}

// parsePagination reads limit/offset query params with the shared defaults.
func parsePagination(c echo.Context) (int, int) {
	limit := 0
	offset := 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}
	return common.ValidatePaginationParams(limit, offset)
}
