package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"distromart/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockQuoteRequestRepository mocks the QuoteRequestRepository interface for testing
type MockQuoteRequestRepository struct {
	mock.Mock
}

func (m *MockQuoteRequestRepository) Insert(ctx context.Context, req *models.QuoteRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockQuoteRequestRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*models.QuoteRequest, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuoteRequest), args.Error(1)
}

func (m *MockQuoteRequestRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*models.QuoteRequest, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.QuoteRequest), args.Error(1)
}

func (m *MockQuoteRequestRepository) Update(ctx context.Context, tenantID, id uuid.UUID, patch models.QuotePatch) error {
	args := m.Called(ctx, tenantID, id, patch)
	return args.Error(0)
}

type QuoteAlertsTestSuite struct {
	suite.Suite
	mockRepo *MockQuoteRequestRepository
	service  *QuoteAlertService
	tenantID uuid.UUID
	ctx      context.Context
}

func (suite *QuoteAlertsTestSuite) SetupTest() {
	suite.mockRepo = &MockQuoteRequestRepository{}
	suite.service = NewQuoteAlertService(suite.mockRepo)
	suite.tenantID = uuid.New()
	suite.ctx = context.Background()
}

func TestQuoteAlertsTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteAlertsTestSuite))
}

func (suite *QuoteAlertsTestSuite) request(status models.QuoteStatus, age time.Duration) *models.QuoteRequest {
	return &models.QuoteRequest{
		ID:          uuid.New(),
		TenantID:    suite.tenantID,
		ContactName: "Maria Souza",
		Status:      status,
		CreatedAt:   time.Now().UTC().Add(-age),
	}
}

func (suite *QuoteAlertsTestSuite) TestCheckStalePending_FlagsOldPendingOnly() {
	stale := suite.request(models.QuoteStatusPending, 72*time.Hour)
	fresh := suite.request(models.QuoteStatusPending, time.Hour)
	approved := suite.request(models.QuoteStatusApproved, 72*time.Hour)

	suite.mockRepo.On("ListByTenant", suite.ctx, suite.tenantID).
		Return([]*models.QuoteRequest{stale, fresh, approved}, nil)

	alerts, err := suite.service.CheckStalePending(suite.ctx, suite.tenantID, 48*time.Hour)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), alerts, 1)
	assert.Equal(suite.T(), stale.ID, alerts[0].QuoteID)
	assert.Equal(suite.T(), "Maria Souza", alerts[0].ContactName)
	assert.Greater(suite.T(), alerts[0].Age, 48*time.Hour)
}

func (suite *QuoteAlertsTestSuite) TestCheckStalePending_DefaultThreshold() {
	old := suite.request(models.QuoteStatusPending, 50*time.Hour)

	suite.mockRepo.On("ListByTenant", suite.ctx, suite.tenantID).
		Return([]*models.QuoteRequest{old}, nil)

	alerts, err := suite.service.CheckStalePending(suite.ctx, suite.tenantID, 0)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), alerts, 1)
}

func (suite *QuoteAlertsTestSuite) TestCheckStalePending_RepoError() {
	suite.mockRepo.On("ListByTenant", suite.ctx, suite.tenantID).
		Return(nil, errors.New("connection refused"))

	_, err := suite.service.CheckStalePending(suite.ctx, suite.tenantID, 48*time.Hour)

	assert.Error(suite.T(), err)
}

func (suite *QuoteAlertsTestSuite) TestCheckStalePending_NothingStale() {
	fresh := suite.request(models.QuoteStatusPending, time.Hour)

	suite.mockRepo.On("ListByTenant", suite.ctx, suite.tenantID).
		Return([]*models.QuoteRequest{fresh}, nil)

	alerts, err := suite.service.CheckStalePending(suite.ctx, suite.tenantID, 48*time.Hour)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), alerts)
}
