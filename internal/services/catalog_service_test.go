package services

import (
	"context"
	"errors"
	"testing"

	"distromart/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockProductRepository
	mockCache *MockCacheService
	service   CatalogService
	tenantID  uuid.UUID
	ctx       context.Context
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.mockRepo = &MockProductRepository{}
	suite.mockCache = &MockCacheService{}
	suite.service = NewCatalogService(suite.mockRepo, suite.mockCache)
	suite.tenantID = uuid.New()
	suite.ctx = context.Background()
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func (suite *CatalogServiceTestSuite) catalog() []*models.Product {
	return []*models.Product{
		{ID: uuid.New(), TenantID: suite.tenantID, Name: "Arroz", Active: true, ShowInCatalog: true},
		{ID: uuid.New(), TenantID: suite.tenantID, Name: "Feijao", Active: true, ShowInCatalog: true},
	}
}

func (suite *CatalogServiceTestSuite) TestListPublic_CacheHit() {
	products := suite.catalog()
	suite.mockCache.On("GetCatalog", suite.ctx, suite.tenantID).Return(products, nil)

	result, err := suite.service.ListPublic(suite.ctx, suite.tenantID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 2)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListCatalog")
}

func (suite *CatalogServiceTestSuite) TestListPublic_CacheMiss() {
	products := suite.catalog()
	suite.mockCache.On("GetCatalog", suite.ctx, suite.tenantID).Return(nil, nil)
	suite.mockRepo.On("ListCatalog", suite.ctx, suite.tenantID).Return(products, nil)
	suite.mockCache.On("SetCatalog", suite.ctx, suite.tenantID, products, catalogCacheTTL).Return(nil)

	result, err := suite.service.ListPublic(suite.ctx, suite.tenantID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 2)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestListPublic_CacheWriteFailureIsNonFatal() {
	products := suite.catalog()
	suite.mockCache.On("GetCatalog", suite.ctx, suite.tenantID).Return(nil, nil)
	suite.mockRepo.On("ListCatalog", suite.ctx, suite.tenantID).Return(products, nil)
	suite.mockCache.On("SetCatalog", suite.ctx, suite.tenantID, products, catalogCacheTTL).
		Return(errors.New("redis down"))

	result, err := suite.service.ListPublic(suite.ctx, suite.tenantID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 2)
}

func (suite *CatalogServiceTestSuite) TestRefresh_WarmsCache() {
	products := suite.catalog()
	suite.mockRepo.On("ListCatalog", suite.ctx, suite.tenantID).Return(products, nil)
	suite.mockCache.On("SetCatalog", suite.ctx, suite.tenantID, products, catalogCacheTTL).Return(nil)

	err := suite.service.Refresh(suite.ctx, suite.tenantID)

	assert.NoError(suite.T(), err)
	suite.mockCache.AssertExpectations(suite.T())
}
