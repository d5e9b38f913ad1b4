package services

import (
	"context"
	"strings"
	"time"

	"distromart/internal/common"
	"distromart/internal/models"
	"distromart/internal/repositories"

	"github.com/google/uuid"
)

// QuoteService owns the quote-request lifecycle. It is the only writer of the
// quote store: buyers create requests through Submit, staff mutate them
// through Transition / SetInternalNotes / AdminUpdate.
type QuoteService interface {
	Submit(ctx context.Context, tenantID uuid.UUID, contact QuoteContact, items []QuoteItemInput) (*models.QuoteRequest, error)
	Transition(ctx context.Context, tenantID, id uuid.UUID, newStatus models.QuoteStatus) (*models.QuoteRequest, error)
	SetInternalNotes(ctx context.Context, tenantID, id uuid.UUID, notes string) (*models.QuoteRequest, error)
	AdminUpdate(ctx context.Context, tenantID, id uuid.UUID, update QuoteAdminPatch) (*models.QuoteRequest, error)
	Get(ctx context.Context, tenantID, id uuid.UUID) (*models.QuoteRequest, error)
	List(ctx context.Context, tenantID uuid.UUID, statusFilter, searchTerm string) ([]*models.QuoteRequest, error)
	PublicStatus(ctx context.Context, tenantID, id uuid.UUID) (*models.QuoteStatusView, error)
}

// QuoteContact carries the buyer's contact block on submission. Only name and
// email are mandatory.
type QuoteContact struct {
	Name    string  `json:"contact_name"`
	Company *string `json:"contact_company"`
	Email   string  `json:"contact_email"`
	Phone   *string `json:"contact_phone"`
	City    *string `json:"contact_city"`
	State   *string `json:"contact_state"`
	Notes   *string `json:"contact_notes"`
}

// QuoteItemInput is one raw line from the buyer's cart, before sanitization.
type QuoteItemInput struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	Quantity  int    `json:"quantity"`
}

// QuoteAdminPatch is the PATCH body the admin panel sends: either field may be
// absent, but not both.
type QuoteAdminPatch struct {
	Status        *models.QuoteStatus
	InternalNotes *string
}

type quoteService struct {
	quoteRepo repositories.QuoteRequestRepository
}

func NewQuoteService(quoteRepo repositories.QuoteRequestRepository) QuoteService {
	return &quoteService{quoteRepo: quoteRepo}
}

// Submit validates the buyer's payload and persists a new pending request with
// a one-entry status timeline.
func (s *quoteService) Submit(ctx context.Context, tenantID uuid.UUID, contact QuoteContact, items []QuoteItemInput) (*models.QuoteRequest, error) {
	name := strings.TrimSpace(contact.Name)
	if name == "" {
		return nil, common.NewValidationError("contact name is required")
	}
	email := strings.TrimSpace(contact.Email)
	if email == "" {
		return nil, common.NewValidationError("contact email is required")
	}

	sanitized := sanitizeItems(items)
	if len(sanitized) == 0 {
		return nil, common.NewValidationError("no valid items in request")
	}

	now := time.Now().UTC()
	req := &models.QuoteRequest{
		ID:             uuid.New(),
		TenantID:       tenantID,
		ContactName:    name,
		ContactCompany: common.TrimmedOrNil(contact.Company),
		ContactEmail:   email,
		ContactPhone:   common.TrimmedOrNil(contact.Phone),
		ContactCity:    common.TrimmedOrNil(contact.City),
		ContactState:   common.TrimmedOrNil(contact.State),
		ContactNotes:   common.TrimmedOrNil(contact.Notes),
		Items:          sanitized,
		Status:         models.QuoteStatusPending,
		StatusHistory:  []models.StatusEvent{{Status: models.QuoteStatusPending, At: now}},
		InternalNotes:  nil,
		CreatedAt:      now,
	}

	if err := s.quoteRepo.Insert(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// sanitizeItems drops lines without a product reference or with a
// non-positive quantity. The request fails only when nothing survives.
func sanitizeItems(items []QuoteItemInput) []models.QuoteItem {
	var out []models.QuoteItem
	for _, item := range items {
		productID := strings.TrimSpace(item.ProductID)
		if productID == "" || item.Quantity <= 0 {
			continue
		}
		out = append(out, models.QuoteItem{
			ProductID: productID,
			Name:      strings.TrimSpace(item.Name),
			Code:      strings.TrimSpace(item.Code),
			Quantity:  item.Quantity,
		})
	}
	return out
}

// Transition appends a timeline entry and moves the status in a single store
// update. Repeating the current status appends again; every attempt is part of
// the audit trail. The canonical updated record is returned so callers replace
// their local copy instead of patching it optimistically.
func (s *quoteService) Transition(ctx context.Context, tenantID, id uuid.UUID, newStatus models.QuoteStatus) (*models.QuoteRequest, error) {
	if !newStatus.Valid() {
		return nil, common.NewValidationError("unknown status %q", string(newStatus))
	}
	return s.applyPatch(ctx, tenantID, id, QuoteAdminPatch{Status: &newStatus})
}

// SetInternalNotes overwrites the admin-only notes. Status and history are
// untouched.
func (s *quoteService) SetInternalNotes(ctx context.Context, tenantID, id uuid.UUID, notes string) (*models.QuoteRequest, error) {
	return s.applyPatch(ctx, tenantID, id, QuoteAdminPatch{InternalNotes: &notes})
}

// AdminUpdate applies whichever of status / internal notes the panel sent.
func (s *quoteService) AdminUpdate(ctx context.Context, tenantID, id uuid.UUID, update QuoteAdminPatch) (*models.QuoteRequest, error) {
	if update.Status == nil && update.InternalNotes == nil {
		return nil, common.NewValidationError("nothing to update")
	}
	if update.Status != nil && !update.Status.Valid() {
		return nil, common.NewValidationError("unknown status %q", string(*update.Status))
	}
	return s.applyPatch(ctx, tenantID, id, update)
}

func (s *quoteService) applyPatch(ctx context.Context, tenantID, id uuid.UUID, update QuoteAdminPatch) (*models.QuoteRequest, error) {
	req, err := s.quoteRepo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	patch := models.QuotePatch{InternalNotes: update.InternalNotes}
	if update.Status != nil {
		// Append to the synthesized timeline so pre-history rows keep their
		// initial entry once the first transition lands.
		history := append(req.Timeline(), models.StatusEvent{Status: *update.Status, At: time.Now().UTC()})
		patch.Status = update.Status
		patch.StatusHistory = history
	}

	if err := s.quoteRepo.Update(ctx, tenantID, id, patch); err != nil {
		return nil, err
	}

	if update.Status != nil {
		req.Status = *update.Status
		req.StatusHistory = patch.StatusHistory
	}
	if update.InternalNotes != nil {
		req.InternalNotes = update.InternalNotes
	}
	return req, nil
}

// Get returns the full admin-side record, timeline synthesized.
func (s *quoteService) Get(ctx context.Context, tenantID, id uuid.UUID) (*models.QuoteRequest, error) {
	req, err := s.quoteRepo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	req.StatusHistory = req.Timeline()
	return req, nil
}

// List returns the tenant's requests newest-first, filtered by status and a
// case-insensitive search over the contact fields.
func (s *quoteService) List(ctx context.Context, tenantID uuid.UUID, statusFilter, searchTerm string) ([]*models.QuoteRequest, error) {
	requests, err := s.quoteRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	statusFilter = strings.ToLower(strings.TrimSpace(statusFilter))
	searchTerm = strings.ToLower(strings.TrimSpace(searchTerm))

	filtered := make([]*models.QuoteRequest, 0, len(requests))
	for _, req := range requests {
		if statusFilter != "" && statusFilter != "all" && strings.ToLower(string(req.Status)) != statusFilter {
			continue
		}
		if searchTerm != "" && !matchesContact(req, searchTerm) {
			continue
		}
		// Old rows predate status_history; always hand a timeline back.
		req.StatusHistory = req.Timeline()
		filtered = append(filtered, req)
	}
	return filtered, nil
}

func matchesContact(req *models.QuoteRequest, term string) bool {
	fields := []string{
		req.ContactName,
		common.SafeString(req.ContactCompany),
		req.ContactEmail,
		common.SafeString(req.ContactPhone),
		common.SafeString(req.ContactCity),
		common.SafeString(req.ContactState),
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// PublicStatus returns the redacted view a buyer tracks a request with. A
// wrong tenant is reported exactly like a missing id.
func (s *quoteService) PublicStatus(ctx context.Context, tenantID, id uuid.UUID) (*models.QuoteStatusView, error) {
	req, err := s.quoteRepo.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	return req.PublicView(), nil
}
