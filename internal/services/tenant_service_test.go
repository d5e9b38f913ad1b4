package services

import (
	"context"
	"errors"
	"testing"

	"distromart/internal/common"
	"distromart/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TenantServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTenantRepository
	service  TenantService
	ctx      context.Context
}

func (suite *TenantServiceTestSuite) SetupTest() {
	suite.mockRepo = &MockTenantRepository{}
	suite.service = NewTenantService(suite.mockRepo)
	suite.ctx = context.Background()
}

func TestTenantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}

func (suite *TenantServiceTestSuite) TestCreate_Success() {
	suite.mockRepo.On("Create", suite.ctx, mock.AnythingOfType("*models.Tenant")).Return(nil)

	tenant, err := suite.service.Create(suite.ctx, &CreateTenantRequest{
		Name: "Distribuidora Aurora",
		Slug: "Aurora",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "aurora", tenant.Slug)
	assert.Equal(suite.T(), "active", tenant.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TenantServiceTestSuite) TestCreate_RejectsSlugWithSpaces() {
	_, err := suite.service.Create(suite.ctx, &CreateTenantRequest{
		Name: "Distribuidora Aurora",
		Slug: "aurora sul",
	})

	assert.Error(suite.T(), err)
	suite.mockRepo.AssertNotCalled(suite.T(), "Create")
}

func (suite *TenantServiceTestSuite) TestCreate_RequiresNameAndSlug() {
	_, err := suite.service.Create(suite.ctx, &CreateTenantRequest{Name: "", Slug: "aurora"})
	assert.Error(suite.T(), err)

	_, err = suite.service.Create(suite.ctx, &CreateTenantRequest{Name: "Aurora", Slug: ""})
	assert.Error(suite.T(), err)
}

func (suite *TenantServiceTestSuite) TestGetBySlug_Lowercases() {
	expected := &models.Tenant{ID: uuid.New(), Name: "Aurora", Slug: "aurora", Status: "active"}
	suite.mockRepo.On("GetBySlug", suite.ctx, "aurora").Return(expected, nil)

	tenant, err := suite.service.GetBySlug(suite.ctx, "AURORA")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), expected.ID, tenant.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TenantServiceTestSuite) TestGetBySlug_NotFound() {
	suite.mockRepo.On("GetBySlug", suite.ctx, "desconhecida").Return(nil, common.ErrNotFound)

	_, err := suite.service.GetBySlug(suite.ctx, "desconhecida")

	assert.True(suite.T(), errors.Is(err, common.ErrNotFound))
}

func (suite *TenantServiceTestSuite) TestUpdate_LoadsExistingFirst() {
	id := uuid.New()
	existing := &models.Tenant{ID: id, Name: "Aurora", Slug: "aurora", Status: "active"}
	suite.mockRepo.On("GetByID", suite.ctx, id).Return(existing, nil)
	suite.mockRepo.On("Update", suite.ctx, mock.MatchedBy(func(t *models.Tenant) bool {
		return t.ID == id && t.Name == "Aurora Sul" && t.Status == "suspended"
	})).Return(nil)

	err := suite.service.Update(suite.ctx, &UpdateTenantRequest{
		ID:     id,
		Name:   "Aurora Sul",
		Slug:   "aurora-sul",
		Status: "suspended",
	})

	assert.NoError(suite.T(), err)
	suite.mockRepo.AssertExpectations(suite.T())
}
