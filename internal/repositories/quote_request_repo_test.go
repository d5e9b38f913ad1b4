package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"distromart/internal/common"
	"distromart/internal/models"

	"github.com/google/uuid"
	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const quoteColumnsPattern = `SELECT id, tenant_id, contact_name, contact_company, contact_email, contact_phone, contact_city, contact_state, contact_notes, items_json, status, status_history, admin_internal_notes, created_at`

type QuoteRequestRepoTestSuite struct {
	suite.Suite
	mock     pgxmock.PgxPoolIface
	repo     QuoteRequestRepository
	tenantID uuid.UUID
	quoteID  uuid.UUID
	context  context.Context
}

func (suite *QuoteRequestRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewQuoteRequestRepo(mock)
	suite.tenantID = uuid.New()
	suite.quoteID = uuid.New()
	suite.context = context.Background()
}

func (suite *QuoteRequestRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestQuoteRequestRepoTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteRequestRepoTestSuite))
}

func (suite *QuoteRequestRepoTestSuite) sampleRequest() *models.QuoteRequest {
	created := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	return &models.QuoteRequest{
		ID:           suite.quoteID,
		TenantID:     suite.tenantID,
		ContactName:  "Maria Souza",
		ContactEmail: "maria@example.com",
		Items: []models.QuoteItem{
			{ProductID: uuid.NewString(), Name: "Arroz 5kg", Quantity: 10},
		},
		Status: models.QuoteStatusPending,
		StatusHistory: []models.StatusEvent{
			{Status: models.QuoteStatusPending, At: created},
		},
		CreatedAt: created,
	}
}

func (suite *QuoteRequestRepoTestSuite) quoteRow(req *models.QuoteRequest) *pgxmock.Rows {
	itemsJSON, err := json.Marshal(req.Items)
	assert.NoError(suite.T(), err)
	historyJSON, err := json.Marshal(req.StatusHistory)
	assert.NoError(suite.T(), err)

	return pgxmock.NewRows([]string{
		"id", "tenant_id", "contact_name", "contact_company", "contact_email", "contact_phone",
		"contact_city", "contact_state", "contact_notes", "items_json", "status", "status_history",
		"admin_internal_notes", "created_at",
	}).AddRow(
		req.ID, req.TenantID, req.ContactName, req.ContactCompany, req.ContactEmail, req.ContactPhone,
		req.ContactCity, req.ContactState, req.ContactNotes, itemsJSON, req.Status, historyJSON,
		req.InternalNotes, req.CreatedAt,
	)
}

func (suite *QuoteRequestRepoTestSuite) TestInsert_Success() {
	req := suite.sampleRequest()

	suite.mock.ExpectExec(`INSERT INTO b2b_quote_requests`).
		WithArgs(
			req.ID, req.TenantID,
			req.ContactName, req.ContactCompany, req.ContactEmail, req.ContactPhone,
			req.ContactCity, req.ContactState, req.ContactNotes,
			pgxmock.AnyArg(), req.Status, pgxmock.AnyArg(), req.InternalNotes, req.CreatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Insert(suite.context, req)
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *QuoteRequestRepoTestSuite) TestInsert_DatabaseError() {
	req := suite.sampleRequest()

	suite.mock.ExpectExec(`INSERT INTO b2b_quote_requests`).
		WithArgs(
			req.ID, req.TenantID,
			req.ContactName, req.ContactCompany, req.ContactEmail, req.ContactPhone,
			req.ContactCity, req.ContactState, req.ContactNotes,
			pgxmock.AnyArg(), req.Status, pgxmock.AnyArg(), req.InternalNotes, req.CreatedAt,
		).
		WillReturnError(errors.New("connection refused"))

	err := suite.repo.Insert(suite.context, req)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "insert quote request")
}

func (suite *QuoteRequestRepoTestSuite) TestFindByID_Success() {
	req := suite.sampleRequest()

	suite.mock.ExpectQuery(quoteColumnsPattern).
		WithArgs(suite.tenantID, suite.quoteID).
		WillReturnRows(suite.quoteRow(req))

	found, err := suite.repo.FindByID(suite.context, suite.tenantID, suite.quoteID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), req.ID, found.ID)
	assert.Equal(suite.T(), models.QuoteStatusPending, found.Status)
	assert.Len(suite.T(), found.Items, 1)
	assert.Len(suite.T(), found.StatusHistory, 1)
}

func (suite *QuoteRequestRepoTestSuite) TestFindByID_NotFound() {
	suite.mock.ExpectQuery(quoteColumnsPattern).
		WithArgs(suite.tenantID, suite.quoteID).
		WillReturnError(pgx.ErrNoRows)

	_, err := suite.repo.FindByID(suite.context, suite.tenantID, suite.quoteID)
	assert.True(suite.T(), errors.Is(err, common.ErrNotFound))
}

func (suite *QuoteRequestRepoTestSuite) TestFindByID_WrongTenantLooksMissing() {
	otherTenant := uuid.New()

	suite.mock.ExpectQuery(quoteColumnsPattern).
		WithArgs(otherTenant, suite.quoteID).
		WillReturnError(pgx.ErrNoRows)

	_, err := suite.repo.FindByID(suite.context, otherTenant, suite.quoteID)
	assert.True(suite.T(), errors.Is(err, common.ErrNotFound))
}

func (suite *QuoteRequestRepoTestSuite) TestListByTenant_AppliesCap() {
	req := suite.sampleRequest()

	suite.mock.ExpectQuery(quoteColumnsPattern).
		WithArgs(suite.tenantID, listCap).
		WillReturnRows(suite.quoteRow(req))

	requests, err := suite.repo.ListByTenant(suite.context, suite.tenantID)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), requests, 1)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *QuoteRequestRepoTestSuite) TestUpdate_StatusAndHistoryTogether() {
	status := models.QuoteStatusApproved
	history := []models.StatusEvent{
		{Status: models.QuoteStatusPending, At: time.Now().UTC().Add(-time.Hour)},
		{Status: models.QuoteStatusApproved, At: time.Now().UTC()},
	}

	suite.mock.ExpectExec(`UPDATE b2b_quote_requests SET status = \$3, status_history = \$4 WHERE tenant_id = \$1 AND id = \$2`).
		WithArgs(suite.tenantID, suite.quoteID, status, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.Update(suite.context, suite.tenantID, suite.quoteID, models.QuotePatch{
		Status:        &status,
		StatusHistory: history,
	})
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *QuoteRequestRepoTestSuite) TestUpdate_NotesOnly() {
	notes := "aguardando retorno do financeiro"

	suite.mock.ExpectExec(`UPDATE b2b_quote_requests SET admin_internal_notes = \$3 WHERE tenant_id = \$1 AND id = \$2`).
		WithArgs(suite.tenantID, suite.quoteID, notes).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.Update(suite.context, suite.tenantID, suite.quoteID, models.QuotePatch{
		InternalNotes: &notes,
	})
	assert.NoError(suite.T(), err)
}

func (suite *QuoteRequestRepoTestSuite) TestUpdate_NoRowMatched() {
	status := models.QuoteStatusRejected

	suite.mock.ExpectExec(`UPDATE b2b_quote_requests`).
		WithArgs(suite.tenantID, suite.quoteID, status, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := suite.repo.Update(suite.context, suite.tenantID, suite.quoteID, models.QuotePatch{
		Status:        &status,
		StatusHistory: []models.StatusEvent{{Status: status, At: time.Now().UTC()}},
	})
	assert.True(suite.T(), errors.Is(err, common.ErrNotFound))
}

func (suite *QuoteRequestRepoTestSuite) TestUpdate_EmptyPatchIsNoop() {
	err := suite.repo.Update(suite.context, suite.tenantID, suite.quoteID, models.QuotePatch{})
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}
