package catalog

import (
	"go.uber.org/zap"

	"github.com/ypremchand/Equipment-Management-sub000/internal/inventory"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/metadata"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/models"
)

type categoryRepo interface {
	GetAssetCategories() ([]models.Asset, error)
	GetAssetCategory(id int) (*models.Asset, error)
	PersistCategory(req models.AssetCategoryRequest) (*models.Asset, error)
}

type unitCounter interface {
	CountItems(t metadata.AssetType, assetID int) (int, error)
	CountAssigned(t metadata.AssetType, assetID int) (int, error)
	CountDamaged(t metadata.AssetType, assetID int) (int, error)
}

// CatalogService decorates raw category rows with their derived quantity.
// Quantity is never stored; it is recomputed from the category's inventory
// table on every read so it cannot drift.
type CatalogService struct {
	repo   categoryRepo
	store  unitCounter
	logger *zap.Logger
}

func NewService(repo *CatalogRepository, store *inventory.ItemStore, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		store:  store,
		logger: logger,
	}
}

func (s *CatalogService) GetAssetCategories() ([]models.Asset, error) {
	categories, err := s.repo.GetAssetCategories()
	if err != nil {
		return nil, err
	}

	for i := range categories {
		categories[i].Quantity = s.quantity(&categories[i])
	}

	return categories, nil
}

func (s *CatalogService) GetAssetCategory(id int) (*models.Asset, error) {
	category, err := s.repo.GetAssetCategory(id)
	if err != nil {
		return nil, err
	}

	category.Quantity = s.quantity(category)
	return category, nil
}

func (s *CatalogService) CreateAssetCategory(req models.AssetCategoryRequest) (*models.Asset, error) {
	return s.repo.PersistCategory(req)
}

// GetInventoryReport builds the per-category stock snapshot used by the
// report export. Categories that do not resolve to a known asset type are
// included with zero counts so the export stays complete.
func (s *CatalogService) GetInventoryReport() ([]models.InventoryReportRow, error) {
	categories, err := s.repo.GetAssetCategories()
	if err != nil {
		return nil, err
	}

	rows := make([]models.InventoryReportRow, 0, len(categories))
	for _, category := range categories {
		row := models.InventoryReportRow{Name: category.Name, PreCode: category.PreCode}

		t, err := metadata.NormalizeAssetType(category.Name)
		if err != nil {
			s.logger.Warn("category has no matching asset type",
				zap.String("category", category.Name))
			rows = append(rows, row)
			continue
		}

		if row.Total, err = s.store.CountItems(t, category.ID); err != nil {
			return nil, err
		}
		if row.Assigned, err = s.store.CountAssigned(t, category.ID); err != nil {
			return nil, err
		}
		if row.Damaged, err = s.store.CountDamaged(t, category.ID); err != nil {
			return nil, err
		}
		if available := row.Total - row.Assigned; available > 0 {
			row.Available = available
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// quantity = total units − assigned units, floored at zero. Categories whose
// name does not resolve to a known type report zero and are logged.
func (s *CatalogService) quantity(category *models.Asset) int {
	t, err := metadata.NormalizeAssetType(category.Name)
	if err != nil {
		s.logger.Warn("category has no matching asset type",
			zap.String("category", category.Name))
		return 0
	}

	return s.quantityForType(t, category.ID)
}

func (s *CatalogService) quantityForType(t metadata.AssetType, assetID int) int {
	total, err := s.store.CountItems(t, assetID)
	if err != nil {
		s.logger.Error("failed to count inventory items", zap.Error(err))
		return 0
	}
	assigned, err := s.store.CountAssigned(t, assetID)
	if err != nil {
		s.logger.Error("failed to count assigned items", zap.Error(err))
		return 0
	}

	if assigned > total {
		return 0
	}
	return total - assigned
}
