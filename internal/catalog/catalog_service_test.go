package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/ypremchand/Equipment-Management-sub000/pkg/metadata"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/models"
)

type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) GetAssetCategories() ([]models.Asset, error) {
	args := m.Called()
	return args.Get(0).([]models.Asset), args.Error(1)
}

func (m *MockCategoryRepo) GetAssetCategory(id int) (*models.Asset, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Asset), args.Error(1)
}

func (m *MockCategoryRepo) PersistCategory(req models.AssetCategoryRequest) (*models.Asset, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Asset), args.Error(1)
}

type MockUnitCounter struct {
	mock.Mock
}

func (m *MockUnitCounter) CountItems(t metadata.AssetType, assetID int) (int, error) {
	args := m.Called(t, assetID)
	return args.Int(0), args.Error(1)
}

func (m *MockUnitCounter) CountAssigned(t metadata.AssetType, assetID int) (int, error) {
	args := m.Called(t, assetID)
	return args.Int(0), args.Error(1)
}

func (m *MockUnitCounter) CountDamaged(t metadata.AssetType, assetID int) (int, error) {
	args := m.Called(t, assetID)
	return args.Int(0), args.Error(1)
}

func newTestCatalogService() (*CatalogService, *MockCategoryRepo, *MockUnitCounter) {
	repo := new(MockCategoryRepo)
	counter := new(MockUnitCounter)
	service := &CatalogService{
		repo:   repo,
		store:  counter,
		logger: zap.NewNop(),
	}
	return service, repo, counter
}

func TestGetAssetCategoriesDerivesQuantity(t *testing.T) {
	service, repo, counter := newTestCatalogService()

	repo.On("GetAssetCategories").Return([]models.Asset{
		{ID: 1, Name: "Laptops", PreCode: "LAP"},
		{ID: 2, Name: "Coffee machines", PreCode: "COF"},
	}, nil)
	counter.On("CountItems", metadata.TypeLaptop, 1).Return(5, nil)
	counter.On("CountAssigned", metadata.TypeLaptop, 1).Return(2, nil)

	categories, err := service.GetAssetCategories()

	assert.NoError(t, err)
	assert.Equal(t, 3, categories[0].Quantity)
	// unknown-typed categories report zero instead of failing the listing
	assert.Equal(t, 0, categories[1].Quantity)
}

func TestCreateAssetCategoryPersistsThroughRepo(t *testing.T) {
	service, repo, _ := newTestCatalogService()

	req := models.AssetCategoryRequest{Name: "Printers", PreCode: "PRN"}
	repo.On("PersistCategory", req).Return(&models.Asset{ID: 7, Name: "Printers", PreCode: "PRN"}, nil)

	category, err := service.CreateAssetCategory(req)

	assert.NoError(t, err)
	assert.Equal(t, 7, category.ID)
	repo.AssertExpectations(t)
}

func TestGetInventoryReportCountsPerCategory(t *testing.T) {
	service, repo, counter := newTestCatalogService()

	repo.On("GetAssetCategories").Return([]models.Asset{
		{ID: 1, Name: "Tablets", PreCode: "TAB"},
	}, nil)
	counter.On("CountItems", metadata.TypeTablet, 1).Return(10, nil)
	counter.On("CountAssigned", metadata.TypeTablet, 1).Return(4, nil)
	counter.On("CountDamaged", metadata.TypeTablet, 1).Return(1, nil)

	rows, err := service.GetInventoryReport()

	assert.NoError(t, err)
	assert.Equal(t, []models.InventoryReportRow{
		{Name: "Tablets", PreCode: "TAB", Total: 10, Assigned: 4, Damaged: 1, Available: 6},
	}, rows)
}
