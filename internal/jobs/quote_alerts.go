package jobs

import (
	"context"
	"log"
	"time"

	"distromart/internal/models"
	"distromart/internal/repositories"

	"github.com/google/uuid"
)

// QuoteAlertService flags quote requests sitting in pending past a threshold
// so nobody's RFQ rots in the queue.
type QuoteAlertService struct {
	quoteRepo repositories.QuoteRequestRepository
}

type StaleQuoteAlert struct {
	TenantID    uuid.UUID
	QuoteID     uuid.UUID
	ContactName string
	Age         time.Duration
}

func NewQuoteAlertService(quoteRepo repositories.QuoteRequestRepository) *QuoteAlertService {
	return &QuoteAlertService{quoteRepo: quoteRepo}
}

// CheckStalePending returns an alert for every request still pending after
// maxAge. A non-positive maxAge falls back to 48 hours.
func (a *QuoteAlertService) CheckStalePending(ctx context.Context, tenantID uuid.UUID, maxAge time.Duration) ([]StaleQuoteAlert, error) {
	if maxAge <= 0 {
		maxAge = 48 * time.Hour
	}

	requests, err := a.quoteRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		log.Printf("Failed to list quote requests for tenant %s: %v", tenantID.String(), err)
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-maxAge)
	var alerts []StaleQuoteAlert
	for _, req := range requests {
		if req.Status != models.QuoteStatusPending {
			continue
		}
		if req.CreatedAt.After(cutoff) {
			continue
		}
		alerts = append(alerts, StaleQuoteAlert{
			TenantID:    tenantID,
			QuoteID:     req.ID,
			ContactName: req.ContactName,
			Age:         time.Since(req.CreatedAt),
		})
	}

	if len(alerts) > 0 {
		log.Printf("STALE_QUOTES: tenant %s has %d pending requests older than %s", tenantID.String(), len(alerts), maxAge)
	}
	return alerts, nil
}
