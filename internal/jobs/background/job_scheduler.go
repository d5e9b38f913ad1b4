package background

import (
	"context"
	"log"
	"sync"
	"time"

	"distromart/internal/jobs"
	"distromart/internal/repositories"
	"distromart/internal/services"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

const staleQuoteMaxAge = 48 * time.Hour

// JobScheduler runs the periodic maintenance jobs: catalog cache warming and
// the stale pending-quote sweep.
type JobScheduler struct {
	scheduler  gocron.Scheduler
	catalogSvc services.CatalogService
	quoteAlert *jobs.QuoteAlertService
	tenantRepo repositories.TenantRepository
	jobs       map[string]gocron.Job
	mu         sync.RWMutex
}

func NewJobScheduler(catalogSvc services.CatalogService, quoteAlert *jobs.QuoteAlertService,
	tenantRepo repositories.TenantRepository) (*JobScheduler, error) {

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{
		scheduler:  scheduler,
		catalogSvc: catalogSvc,
		quoteAlert: quoteAlert,
		tenantRepo: tenantRepo,
		jobs:       make(map[string]gocron.Job),
	}

	js.registerJobs()

	return js, nil
}

// Start starts the job scheduler
func (js *JobScheduler) Start() {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
}

// Stop stops the job scheduler
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) registerJobs() {
	// Catalog cache warm - every 5 minutes, matching the cache TTL
	catalogJob, err := js.scheduler.NewJob(
		gocron.DurationJob(5*time.Minute),
		gocron.NewTask(js.refreshCatalogs, context.Background()),
		gocron.WithName("catalog-cache-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create catalog refresh job: %v", err)
	} else {
		js.jobs["catalog-refresh"] = catalogJob
	}

	// Stale pending quotes sweep - every 30 minutes
	staleJob, err := js.scheduler.NewJob(
		gocron.DurationJob(30*time.Minute),
		gocron.NewTask(js.checkStaleQuotes, context.Background()),
		gocron.WithName("stale-quote-check"),
	)
	if err != nil {
		log.Printf("Failed to create stale quote job: %v", err)
	} else {
		js.jobs["stale-quotes"] = staleJob
	}

	log.Printf("Registered %d background jobs", len(js.jobs))
}

// refreshCatalogs re-populates the public catalog cache for every active
// tenant so storefront requests stay warm.
func (js *JobScheduler) refreshCatalogs(ctx context.Context) error {
	tenants, err := js.tenantRepo.List(ctx, 1000, 0)
	if err != nil {
		log.Printf("Failed to get tenants for catalog refresh: %v", err)
		return err
	}

	semaphore := make(chan struct{}, 5)
	var wg sync.WaitGroup

	for _, tenant := range tenants {
		if tenant.Status != "active" {
			continue
		}

		wg.Add(1)
		go func(tenantID uuid.UUID) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if err := js.catalogSvc.Refresh(ctx, tenantID); err != nil {
				log.Printf("Failed to refresh catalog for tenant %s: %v", tenantID.String(), err)
			}
		}(tenant.ID)
	}

	wg.Wait()
	return nil
}

// checkStaleQuotes logs pending quote requests older than the threshold per
// active tenant.
func (js *JobScheduler) checkStaleQuotes(ctx context.Context) error {
	tenants, err := js.tenantRepo.List(ctx, 1000, 0)
	if err != nil {
		log.Printf("Failed to get tenants for stale quote check: %v", err)
		return err
	}

	for _, tenant := range tenants {
		if tenant.Status != "active" {
			continue
		}
		if _, err := js.quoteAlert.CheckStalePending(ctx, tenant.ID, staleQuoteMaxAge); err != nil {
			log.Printf("Stale quote check failed for tenant %s: %v", tenant.ID.String(), err)
		}
	}
	return nil
}
