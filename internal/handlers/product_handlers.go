package handlers

import (
	"log"
	"net/http"
	"strings"

	"distromart/internal/common"
	"distromart/internal/models"
	"distromart/internal/services"

	"github.com/labstack/echo/v4"
)

// ProductHandlers handles the admin product endpoints: CRUD, CSV import and
// image upload.
type ProductHandlers struct {
	productService services.ProductService
	importService  services.ImportService
}

func NewProductHandlers(productService services.ProductService, importService services.ImportService) *ProductHandlers {
	return &ProductHandlers{
		productService: productService,
		importService:  importService,
	}
}

type productRequest struct {
	Name          string   `json:"name"`
	SKU           *string  `json:"sku"`
	Category      *string  `json:"category"`
	Description   *string  `json:"description"`
	Unit          *string  `json:"unit"`
	Barcode       *string  `json:"barcode"`
	UnitPrice     *float64 `json:"unit_price"`
	PromoPrice    *float64 `json:"promo_price"`
	OfferActive   bool     `json:"offer_is_active"`
	PromoLabel    *string  `json:"promo_label"`
	Active        *bool    `json:"is_active"`
	ShowInCatalog *bool    `json:"show_in_catalog"`
}

func (r *productRequest) toModel() *models.Product {
	product := &models.Product{
		Name:          strings.TrimSpace(r.Name),
		SKU:           common.TrimmedOrNil(r.SKU),
		Category:      common.TrimmedOrNil(r.Category),
		Description:   r.Description,
		Unit:          common.TrimmedOrNil(r.Unit),
		Barcode:       common.TrimmedOrNil(r.Barcode),
		UnitPrice:     r.UnitPrice,
		PromoPrice:    r.PromoPrice,
		OfferActive:   r.OfferActive,
		PromoLabel:    common.TrimmedOrNil(r.PromoLabel),
		Active:        true,
		ShowInCatalog: true,
	}
	if r.Active != nil {
		product.Active = *r.Active
	}
	if r.ShowInCatalog != nil {
		product.ShowInCatalog = *r.ShowInCatalog
	}
	return product
}

// CreateProduct handles POST /v1/products
func (h *ProductHandlers) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	product := req.toModel()
	if err := h.productService.Create(ctx, tenantID, product); err != nil {
		return respondServiceError(c, err, "Product")
	}

	return c.JSON(http.StatusCreated, product)
}

// ListProducts handles GET /v1/products
func (h *ProductHandlers) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	limit, offset := parsePagination(c)
	products, err := h.productService.List(ctx, tenantID, limit, offset)
	if err != nil {
		return respondServiceError(c, err, "Products")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetProduct handles GET /v1/products/:id
func (h *ProductHandlers) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	id, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	product, err := h.productService.GetByID(ctx, tenantID, id)
	if err != nil {
		return respondServiceError(c, err, "Product")
	}

	return c.JSON(http.StatusOK, product)
}

// UpdateProduct handles PUT /v1/products/:id
func (h *ProductHandlers) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	id, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	product := req.toModel()
	product.ID = id
	if err := h.productService.Update(ctx, tenantID, product); err != nil {
		return respondServiceError(c, err, "Product")
	}

	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /v1/products/:id
func (h *ProductHandlers) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	id, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	if err := h.productService.Delete(ctx, tenantID, id); err != nil {
		return respondServiceError(c, err, "Product")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Product deleted successfully",
	})
}

// ImportProducts handles POST /v1/products/import with a multipart "file"
// part containing the CSV.
func (h *ProductHandlers) ImportProducts(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return common.SendClientError(c, "CSV file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return common.SendServerError(c, "Could not read uploaded file")
	}
	defer file.Close()

	result, err := h.importService.ImportCSV(ctx, tenantID, file)
	if err != nil {
		return respondServiceError(c, err, "Import")
	}

	log.Printf("IMPORT: tenant %s imported %d products (%d errors)", tenantID, result.Imported, len(result.Errors))
	return c.JSON(http.StatusOK, result)
}

// UploadProductImage handles POST /v1/products/:id/images with a multipart
// "image" part and an optional "role" field (main | offer).
func (h *ProductHandlers) UploadProductImage(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	productID, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return common.SendClientError(c, "Image file is required")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return common.SendServerError(c, "Could not read uploaded file")
	}
	defer file.Close()

	upload := services.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Role:        c.FormValue("role"),
		Reader:      file,
	}

	url, err := h.productService.UploadImage(ctx, tenantID, productID, upload)
	if err != nil {
		return respondServiceError(c, err, "Product")
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"image_url": url,
	})
}

// ListProductImages handles GET /v1/products/:id/images
func (h *ProductHandlers) ListProductImages(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetTenantIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	productID, err := common.ValidateUUID(c.Param("id"), "product id")
	if err != nil {
		return common.SendClientError(c, err.Error())
	}

	images, err := h.productService.ListImages(ctx, tenantID, productID)
	if err != nil {
		return respondServiceError(c, err, "Product")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"images": images,
	})
}
