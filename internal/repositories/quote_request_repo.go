package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"distromart/internal/common"
	"distromart/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// listCap bounds admin listings; the dashboard shows the most recent requests
// and older ones are reachable by id.
const listCap = 500

type QuoteRequestRepository interface {
	Insert(ctx context.Context, req *models.QuoteRequest) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*models.QuoteRequest, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.QuoteRequest, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, patch models.QuotePatch) error
}

type quoteRequestRepo struct {
	db DBTX
}

func NewQuoteRequestRepo(db DBTX) QuoteRequestRepository {
	return &quoteRequestRepo{db: db}
}

func (r *quoteRequestRepo) Insert(ctx context.Context, req *models.QuoteRequest) error {
	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		return common.NewPersistenceError("encode quote items", err)
	}
	historyJSON, err := json.Marshal(req.StatusHistory)
	if err != nil {
		return common.NewPersistenceError("encode status history", err)
	}

	query := `
		INSERT INTO b2b_quote_requests (id, tenant_id, contact_name, contact_company, contact_email, contact_phone, contact_city, contact_state, contact_notes, items_json, status, status_history, admin_internal_notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err = r.db.Exec(ctx, query,
		req.ID, req.TenantID,
		req.ContactName, req.ContactCompany, req.ContactEmail, req.ContactPhone, req.ContactCity, req.ContactState, req.ContactNotes,
		itemsJSON, req.Status, historyJSON, req.InternalNotes, req.CreatedAt,
	)
	if err != nil {
		return common.NewPersistenceError("insert quote request", err)
	}
	return nil
}

func (r *quoteRequestRepo) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*models.QuoteRequest, error) {
	query := `
		SELECT id, tenant_id, contact_name, contact_company, contact_email, contact_phone, contact_city, contact_state, contact_notes, items_json, status, status_history, admin_internal_notes, created_at
		FROM b2b_quote_requests
		WHERE tenant_id = $1 AND id = $2
	`
	req, err := scanQuoteRequest(r.db.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, common.NewPersistenceError("load quote request", err)
	}
	return req, nil
}

func (r *quoteRequestRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.QuoteRequest, error) {
	query := `
		SELECT id, tenant_id, contact_name, contact_company, contact_email, contact_phone, contact_city, contact_state, contact_notes, items_json, status, status_history, admin_internal_notes, created_at
		FROM b2b_quote_requests
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, tenantID, listCap)
	if err != nil {
		return nil, common.NewPersistenceError("list quote requests", err)
	}
	defer rows.Close()

	var requests []*models.QuoteRequest
	for rows.Next() {
		req, err := scanQuoteRequest(rows)
		if err != nil {
			return nil, common.NewPersistenceError("scan quote request", err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// Update applies a partial update. Both status and its history entry travel in
// the same statement, so a concurrent reader never sees one without the other.
func (r *quoteRequestRepo) Update(ctx context.Context, tenantID, id uuid.UUID, patch models.QuotePatch) error {
	if patch.IsEmpty() {
		return nil
	}

	sets := ""
	args := []any{tenantID, id}
	argPos := 2

	if patch.Status != nil {
		argPos++
		sets += fmt.Sprintf("status = $%d", argPos)
		args = append(args, *patch.Status)
	}
	if patch.StatusHistory != nil {
		historyJSON, err := json.Marshal(patch.StatusHistory)
		if err != nil {
			return common.NewPersistenceError("encode status history", err)
		}
		argPos++
		if sets != "" {
			sets += ", "
		}
		sets += fmt.Sprintf("status_history = $%d", argPos)
		args = append(args, historyJSON)
	}
	if patch.InternalNotes != nil {
		argPos++
		if sets != "" {
			sets += ", "
		}
		sets += fmt.Sprintf("admin_internal_notes = $%d", argPos)
		args = append(args, *patch.InternalNotes)
	}

	query := fmt.Sprintf(`UPDATE b2b_quote_requests SET %s WHERE tenant_id = $1 AND id = $2`, sets)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return common.NewPersistenceError("update quote request", err)
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}

func scanQuoteRequest(row pgx.Row) (*models.QuoteRequest, error) {
	req := &models.QuoteRequest{}
	var itemsJSON, historyJSON []byte
	err := row.Scan(
		&req.ID, &req.TenantID,
		&req.ContactName, &req.ContactCompany, &req.ContactEmail, &req.ContactPhone, &req.ContactCity, &req.ContactState, &req.ContactNotes,
		&itemsJSON, &req.Status, &historyJSON, &req.InternalNotes, &req.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &req.Items); err != nil {
			return nil, err
		}
	}
	if len(historyJSON) > 0 {
		if err := json.Unmarshal(historyJSON, &req.StatusHistory); err != nil {
			return nil, err
		}
	}
	return req, nil
}
