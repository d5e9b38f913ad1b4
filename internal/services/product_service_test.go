package services

import (
	"context"
	"strings"
	"testing"

	"distromart/internal/common"
	"distromart/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testBucket = "distromart-media-test"

type ProductServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockProductRepository
	mockImageRepo *MockProductImageRepository
	mockStorage   *MockStorageService
	mockCache     *MockCacheService
	service       ProductService
	tenantID      uuid.UUID
	ctx           context.Context
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockRepo = &MockProductRepository{}
	suite.mockImageRepo = &MockProductImageRepository{}
	suite.mockStorage = &MockStorageService{}
	suite.mockCache = &MockCacheService{}
	suite.service = NewProductService(suite.mockRepo, suite.mockImageRepo, suite.mockStorage, suite.mockCache, testBucket)
	suite.tenantID = uuid.New()
	suite.ctx = context.Background()
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}

func (suite *ProductServiceTestSuite) sampleProduct() *models.Product {
	return &models.Product{
		ID:            uuid.New(),
		TenantID:      suite.tenantID,
		Name:          "Arroz Tipo 1 5kg",
		Active:        true,
		ShowInCatalog: true,
	}
}

func (suite *ProductServiceTestSuite) TestCreate_RequiresName() {
	err := suite.service.Create(suite.ctx, suite.tenantID, &models.Product{Name: "  "})

	assert.True(suite.T(), common.IsValidationError(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "Create")
}

func (suite *ProductServiceTestSuite) TestCreate_InvalidatesCatalog() {
	product := suite.sampleProduct()
	suite.mockRepo.On("Create", suite.ctx, product).Return(nil)
	suite.mockCache.On("DeleteCatalog", suite.ctx, suite.tenantID).Return(nil)

	err := suite.service.Create(suite.ctx, suite.tenantID, product)

	assert.NoError(suite.T(), err)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestGetByID_CacheHit() {
	product := suite.sampleProduct()
	suite.mockCache.On("GetProduct", suite.ctx, suite.tenantID, product.ID).Return(product, nil)

	found, err := suite.service.GetByID(suite.ctx, suite.tenantID, product.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), product.ID, found.ID)
	suite.mockRepo.AssertNotCalled(suite.T(), "GetByID")
}

func (suite *ProductServiceTestSuite) TestGetByID_CacheMissFallsThrough() {
	product := suite.sampleProduct()
	suite.mockCache.On("GetProduct", suite.ctx, suite.tenantID, product.ID).Return(nil, nil)
	suite.mockRepo.On("GetByID", suite.ctx, suite.tenantID, product.ID).Return(product, nil)
	suite.mockCache.On("SetProduct", suite.ctx, suite.tenantID, product, productCacheTTL).Return(nil)

	found, err := suite.service.GetByID(suite.ctx, suite.tenantID, product.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), product.ID, found.ID)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestUpdate_PreservesImageURLs() {
	existing := suite.sampleProduct()
	mainURL := "https://cdn.example.com/main.png"
	existing.ImageURL = &mainURL

	edited := &models.Product{ID: existing.ID, Name: "Arroz Tipo 1 5kg Premium"}

	suite.mockRepo.On("GetByID", suite.ctx, suite.tenantID, existing.ID).Return(existing, nil)
	suite.mockRepo.On("Update", suite.ctx, mock.MatchedBy(func(p *models.Product) bool {
		return p.ImageURL != nil && *p.ImageURL == mainURL
	})).Return(nil)
	suite.mockCache.On("DeleteProduct", suite.ctx, suite.tenantID, existing.ID).Return(nil)
	suite.mockCache.On("DeleteCatalog", suite.ctx, suite.tenantID).Return(nil)

	err := suite.service.Update(suite.ctx, suite.tenantID, edited)

	assert.NoError(suite.T(), err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestUploadImage_MainRole() {
	product := suite.sampleProduct()

	suite.mockRepo.On("GetByID", suite.ctx, suite.tenantID, product.ID).Return(product, nil)

	var objectKey string
	suite.mockStorage.On("Upload", suite.ctx, testBucket, mock.AnythingOfType("string"),
		mock.Anything, int64(42), "image/png").
		Run(func(args mock.Arguments) {
			objectKey = args.String(2)
		}).Return(nil)
	suite.mockStorage.On("PublicURL", testBucket, mock.AnythingOfType("string")).
		Return("https://cdn.example.com/object.png")
	suite.mockRepo.On("SetImageURL", suite.ctx, suite.tenantID, product.ID, models.ImageRoleMain,
		"https://cdn.example.com/object.png").Return(nil)
	suite.mockImageRepo.On("Create", suite.ctx, mock.AnythingOfType("*models.ProductImage")).Return(nil)
	suite.mockCache.On("DeleteProduct", suite.ctx, suite.tenantID, product.ID).Return(nil)
	suite.mockCache.On("DeleteCatalog", suite.ctx, suite.tenantID).Return(nil)

	url, err := suite.service.UploadImage(suite.ctx, suite.tenantID, product.ID, ImageUpload{
		Filename:    "foto do produto!.png",
		ContentType: "image/png",
		Size:        42,
		Reader:      strings.NewReader("not really a png"),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "https://cdn.example.com/object.png", url)
	// Key is namespaced by product and carries the sanitized filename.
	assert.True(suite.T(), strings.HasPrefix(objectKey, product.ID.String()+"/"))
	assert.Contains(suite.T(), objectKey, "-main-")
	assert.Contains(suite.T(), objectKey, "foto_do_produto_.png")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestUploadImage_UnknownRoleFallsBackToMain() {
	product := suite.sampleProduct()

	suite.mockRepo.On("GetByID", suite.ctx, suite.tenantID, product.ID).Return(product, nil)
	suite.mockStorage.On("Upload", suite.ctx, testBucket, mock.AnythingOfType("string"),
		mock.Anything, int64(10), "image/jpeg").Return(nil)
	suite.mockStorage.On("PublicURL", testBucket, mock.AnythingOfType("string")).
		Return("https://cdn.example.com/o.jpg")
	suite.mockRepo.On("SetImageURL", suite.ctx, suite.tenantID, product.ID, models.ImageRoleMain,
		"https://cdn.example.com/o.jpg").Return(nil)
	suite.mockImageRepo.On("Create", suite.ctx, mock.AnythingOfType("*models.ProductImage")).Return(nil)
	suite.mockCache.On("DeleteProduct", suite.ctx, suite.tenantID, product.ID).Return(nil)
	suite.mockCache.On("DeleteCatalog", suite.ctx, suite.tenantID).Return(nil)

	_, err := suite.service.UploadImage(suite.ctx, suite.tenantID, product.ID, ImageUpload{
		Filename:    "a.jpg",
		ContentType: "image/jpeg",
		Size:        10,
		Role:        "banner",
		Reader:      strings.NewReader("x"),
	})

	assert.NoError(suite.T(), err)
}

func (suite *ProductServiceTestSuite) TestUploadImage_MissingFile() {
	_, err := suite.service.UploadImage(suite.ctx, suite.tenantID, uuid.New(), ImageUpload{})

	assert.True(suite.T(), common.IsValidationError(err))
	suite.mockStorage.AssertNotCalled(suite.T(), "Upload")
}

func (suite *ProductServiceTestSuite) TestUploadImage_UnknownProduct() {
	productID := uuid.New()
	suite.mockRepo.On("GetByID", suite.ctx, suite.tenantID, productID).Return(nil, common.ErrNotFound)

	_, err := suite.service.UploadImage(suite.ctx, suite.tenantID, productID, ImageUpload{
		Filename: "a.png",
		Size:     5,
		Reader:   strings.NewReader("x"),
	})

	assert.ErrorIs(suite.T(), err, common.ErrNotFound)
	suite.mockStorage.AssertNotCalled(suite.T(), "Upload")
}
