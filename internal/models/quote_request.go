package models

import (
	"time"

	"github.com/google/uuid"
)

// QuoteStatus is the lifecycle state of a B2B quote request. The four values
// below are the ones the admin panel offers; Valid rejects anything else so a
// raw string from the wire cannot reach the store.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusInReview QuoteStatus = "in_review"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
)

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusPending, QuoteStatusInReview, QuoteStatusApproved, QuoteStatusRejected:
		return true
	}
	return false
}

// QuoteItem is one requested line in a quote request.
type QuoteItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Code      string `json:"code,omitempty"`
	Quantity  int    `json:"quantity"`
}

// StatusEvent is one entry in the append-only status timeline. Timestamps are
// always server wall-clock, never client-supplied.
type StatusEvent struct {
	Status QuoteStatus `json:"status"`
	At     time.Time   `json:"at"`
}

type QuoteRequest struct {
	ID             uuid.UUID     `json:"id" db:"id"`
	TenantID       uuid.UUID     `json:"tenant_id" db:"tenant_id"`
	ContactName    string        `json:"contact_name" db:"contact_name"`
	ContactCompany *string       `json:"contact_company" db:"contact_company"`
	ContactEmail   string        `json:"contact_email" db:"contact_email"`
	ContactPhone   *string       `json:"contact_phone" db:"contact_phone"`
	ContactCity    *string       `json:"contact_city" db:"contact_city"`
	ContactState   *string       `json:"contact_state" db:"contact_state"`
	ContactNotes   *string       `json:"contact_notes" db:"contact_notes"`
	Items          []QuoteItem   `json:"items" db:"items_json"`
	Status         QuoteStatus   `json:"status" db:"status"`
	StatusHistory  []StatusEvent `json:"status_history" db:"status_history"`
	InternalNotes  *string       `json:"admin_internal_notes" db:"admin_internal_notes"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
}

// Timeline returns the status history, synthesizing the initial entry from the
// record's status and creation time when no explicit entry was stored. Older
// rows predate the status_history column.
func (q *QuoteRequest) Timeline() []StatusEvent {
	if len(q.StatusHistory) > 0 {
		return q.StatusHistory
	}
	return []StatusEvent{{Status: q.Status, At: q.CreatedAt}}
}

// QuoteStatusView is the projection served to unauthenticated callers tracking
// a request by id. Internal notes are not a field of this type, so they cannot
// leak through serialization.
type QuoteStatusView struct {
	ID             uuid.UUID     `json:"id"`
	TenantID       uuid.UUID     `json:"tenant_id"`
	ContactName    string        `json:"contact_name"`
	ContactCompany *string       `json:"contact_company"`
	ContactEmail   string        `json:"contact_email"`
	ContactPhone   *string       `json:"contact_phone"`
	ContactCity    *string       `json:"contact_city"`
	ContactState   *string       `json:"contact_state"`
	ContactNotes   *string       `json:"contact_notes"`
	Items          []QuoteItem   `json:"items"`
	Status         QuoteStatus   `json:"status"`
	StatusHistory  []StatusEvent `json:"status_history"`
	CreatedAt      time.Time     `json:"created_at"`
}

// PublicView builds the redacted projection of a request.
func (q *QuoteRequest) PublicView() *QuoteStatusView {
	return &QuoteStatusView{
		ID:             q.ID,
		TenantID:       q.TenantID,
		ContactName:    q.ContactName,
		ContactCompany: q.ContactCompany,
		ContactEmail:   q.ContactEmail,
		ContactPhone:   q.ContactPhone,
		ContactCity:    q.ContactCity,
		ContactState:   q.ContactState,
		ContactNotes:   q.ContactNotes,
		Items:          q.Items,
		Status:         q.Status,
		StatusHistory:  q.Timeline(),
		CreatedAt:      q.CreatedAt,
	}
}

// QuotePatch is the partial update the quote store accepts. Only status, the
// status timeline and the admin notes are ever mutated after creation.
type QuotePatch struct {
	Status        *QuoteStatus
	StatusHistory []StatusEvent
	InternalNotes *string
}

// IsEmpty reports whether the patch carries no change at all.
func (p *QuotePatch) IsEmpty() bool {
	return p.Status == nil && p.StatusHistory == nil && p.InternalNotes == nil
}
