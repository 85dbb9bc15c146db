package inventory

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ypremchand/Equipment-Management-sub000/pkg/apperrors"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/metadata"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/models"
)

type MockUnitStore struct {
	mock.Mock
}

func (m *MockUnitStore) InsertItem(t metadata.AssetType, item models.InventoryItem) (int, error) {
	args := m.Called(t, item)
	return args.Int(0), args.Error(1)
}

func (m *MockUnitStore) GetItem(t metadata.AssetType, id int) (*models.InventoryItem, error) {
	args := m.Called(t, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

type MockCategoryEnsurer struct {
	mock.Mock
}

func (m *MockCategoryEnsurer) EnsureCategory(name, preCode string) (*models.Asset, error) {
	args := m.Called(name, preCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Asset), args.Error(1)
}

func newItemTestRouter() (*gin.Engine, *MockUnitStore, *MockCategoryEnsurer) {
	gin.SetMode(gin.TestMode)
	store := new(MockUnitStore)
	categories := new(MockCategoryEnsurer)
	router := gin.New()
	NewItemHandler(store, categories).RegisterRoutes(router)
	return router, store, categories
}

func TestCreateItemEnsuresCategoryAndInserts(t *testing.T) {
	router, store, categories := newItemTestRouter()

	categories.On("EnsureCategory", "Laptops", "LAP").Return(&models.Asset{ID: 3, Name: "Laptops", PreCode: "LAP"}, nil)
	store.On("InsertItem", metadata.TypeLaptop, mock.MatchedBy(func(item models.InventoryItem) bool {
		return item.AssetID == 3 && item.AssetTag == "LAP001" && item.Brand == "Dell"
	})).Return(42, nil)

	body := bytes.NewBufferString(`{"category_name":"Laptops","pre_code":"LAP","asset_tag":"LAP001","brand":"Dell"}`)
	req, _ := http.NewRequest(http.MethodPost, "/inventory/laptop", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "42")
	categories.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestCreateItemRejectsMismatchedCategory(t *testing.T) {
	router, store, _ := newItemTestRouter()

	body := bytes.NewBufferString(`{"category_name":"Printers","pre_code":"PRN","asset_tag":"LAP001"}`)
	req, _ := http.NewRequest(http.MethodPost, "/inventory/laptop", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "InsertItem", mock.Anything, mock.Anything)
}

func TestCreateItemMapsDuplicateTagToConflict(t *testing.T) {
	router, store, categories := newItemTestRouter()

	categories.On("EnsureCategory", "Laptops", "LAP").Return(&models.Asset{ID: 3, Name: "Laptops"}, nil)
	store.On("InsertItem", metadata.TypeLaptop, mock.Anything).
		Return(0, apperrors.WrapDBError(`Duplicate asset tag "LAP001"`, "23505"))

	body := bytes.NewBufferString(`{"category_name":"Laptops","pre_code":"LAP","asset_tag":"LAP001"}`)
	req, _ := http.NewRequest(http.MethodPost, "/inventory/laptop", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetItemMapsNotFound(t *testing.T) {
	router, store, _ := newItemTestRouter()

	store.On("GetItem", metadata.TypeTablet, 9).Return(nil, apperrors.ErrNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/inventory/tablet/9", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetItemReturnsUnit(t *testing.T) {
	router, store, _ := newItemTestRouter()

	store.On("GetItem", metadata.TypeMobile, 5).Return(&models.InventoryItem{ID: 5, AssetTag: "MOB005"}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/inventory/mobile/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "MOB005")
}
