package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"distromart/internal/common"
	"distromart/internal/models"
	"distromart/internal/repositories"

	"github.com/google/uuid"
)

// ImportResult summarizes one CSV run: how many rows landed and which lines
// were skipped, 1-based as the spreadsheet shows them.
type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors,omitempty"`
}

type ImportService interface {
	ImportCSV(ctx context.Context, tenantID uuid.UUID, r io.Reader) (*ImportResult, error)
}

type importService struct {
	productRepo repositories.ProductRepository
}

func NewImportService(productRepo repositories.ProductRepository) ImportService {
	return &importService{productRepo: productRepo}
}

// ImportCSV ingests a product spreadsheet. The separator (";" or ",") is
// detected from the header line, "name" is the only required column, and
// numbers/booleans follow pt-BR conventions ("1.234,56", "sim"/"nao") since
// that is what the distributors' ERP exports produce.
func (s *importService) ImportCSV(ctx context.Context, tenantID uuid.UUID, r io.Reader) (*ImportResult, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, common.NewValidationError("could not read CSV file: %v", err)
	}
	if len(lines) < 2 {
		return nil, common.NewValidationError("CSV needs a header plus at least one data line")
	}

	headerLine := lines[0]
	separator := ","
	if strings.Contains(headerLine, ";") {
		separator = ";"
	}
	headers := strings.Split(headerLine, separator)
	for i := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(headers[i]))
	}

	colIndex := func(name string) int {
		for i, h := range headers {
			if h == name {
				return i
			}
		}
		return -1
	}

	idxName := colIndex("name")
	if idxName == -1 {
		return nil, common.NewValidationError("CSV header must contain a 'name' column")
	}

	idxSKU := colIndex("sku")
	idxCategory := colIndex("category")
	idxUnit := colIndex("unit")
	idxDescription := colIndex("description")
	idxUnitPrice := colIndex("unit_price")
	idxPromoPrice := colIndex("promo_price")
	idxOffer := colIndex("offer_is_active")
	idxImage := colIndex("image_url")

	result := &ImportResult{}

	for i := 1; i < len(lines); i++ {
		cols := strings.Split(lines[i], separator)
		get := func(idx int) string {
			if idx >= 0 && idx < len(cols) {
				return strings.TrimSpace(cols[idx])
			}
			return ""
		}

		name := get(idxName)
		if name == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: empty 'name' field, line skipped", i+1))
			continue
		}

		product := &models.Product{
			ID:            uuid.New(),
			TenantID:      tenantID,
			Name:          name,
			SKU:           optionalColumn(get(idxSKU)),
			Category:      optionalColumn(get(idxCategory)),
			Unit:          optionalColumn(get(idxUnit)),
			Description:   optionalColumn(get(idxDescription)),
			UnitPrice:     parseDecimal(get(idxUnitPrice)),
			PromoPrice:    parseDecimal(get(idxPromoPrice)),
			ImageURL:      optionalColumn(get(idxImage)),
			Active:        true,
			ShowInCatalog: true,
		}
		if offer := parseFlag(get(idxOffer)); offer != nil {
			product.OfferActive = *offer
		}

		if err := s.productRepo.Create(ctx, product); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", i+1, err))
			continue
		}
		result.Imported++
	}

	return result, nil
}

func optionalColumn(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// parseDecimal accepts pt-BR formatted numbers: thousands dots and a decimal
// comma.
func parseDecimal(raw string) *float64 {
	if raw == "" {
		return nil
	}
	normalized := strings.ReplaceAll(raw, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	value, err := strconv.ParseFloat(strings.TrimSpace(normalized), 64)
	if err != nil {
		return nil
	}
	return &value
}

func parseFlag(raw string) *bool {
	t := strings.ToLower(strings.TrimSpace(raw))
	switch t {
	case "1", "true", "sim", "yes", "y":
		v := true
		return &v
	case "0", "false", "nao", "não", "no", "n":
		v := false
		return &v
	}
	return nil
}
