package catalog

import (
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/lib/pq"

	"github.com/ypremchand/Equipment-Management-sub000/internal/repository"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/apperrors"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/models"
)

type CatalogRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *CatalogRepository {
	return &CatalogRepository{repository: r}
}

func (r *CatalogRepository) GetAssetCategories() ([]models.Asset, error) {
	var categories []models.Asset
	query := r.repository.GoquDBWrapper.
		From("assets").
		Select("id", "name", "pre_code").
		Order(goqu.C("id").Asc())

	if err := query.Executor().ScanStructs(&categories); err != nil {
		return nil, fmt.Errorf("unable to select asset categories: %w", err)
	}

	return categories, nil
}

func (r *CatalogRepository) GetAssetCategory(id int) (*models.Asset, error) {
	var category models.Asset
	query := r.repository.GoquDBWrapper.
		From("assets").
		Select("id", "name", "pre_code").
		Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&category)
	if err != nil {
		return nil, fmt.Errorf("unable to select asset category %d: %w", id, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: asset category %d", apperrors.ErrNotFound, id)
	}

	return &category, nil
}

// GetAssetNames resolves category names for a set of ids in one query.
func (r *CatalogRepository) GetAssetNames(ids []int) (map[int]string, error) {
	if len(ids) == 0 {
		return map[int]string{}, nil
	}

	var rows []models.Asset
	query := r.repository.GoquDBWrapper.
		From("assets").
		Select("id", "name").
		Where(goqu.C("id").In(ids))

	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, fmt.Errorf("unable to select asset category names: %w", err)
	}

	names := make(map[int]string, len(rows))
	for _, row := range rows {
		names[row.ID] = row.Name
	}

	return names, nil
}

// EnsureCategory returns the category with the given name, creating it on
// first use. Losing an insert race to a concurrent intake is fine; the winner's
// row is returned.
func (r *CatalogRepository) EnsureCategory(name, preCode string) (*models.Asset, error) {
	category, found, err := r.getCategoryByName(name)
	if err != nil {
		return nil, err
	}
	if found {
		return category, nil
	}

	created, err := r.PersistCategory(models.AssetCategoryRequest{Name: name, PreCode: preCode})
	if err != nil {
		var unique *apperrors.UniqueViolationError
		if errors.As(err, &unique) {
			category, found, err = r.getCategoryByName(name)
			if err != nil {
				return nil, err
			}
			if found {
				return category, nil
			}
		}
		return nil, err
	}

	return created, nil
}

func (r *CatalogRepository) getCategoryByName(name string) (*models.Asset, bool, error) {
	var category models.Asset
	query := r.repository.GoquDBWrapper.
		From("assets").
		Select("id", "name", "pre_code").
		Where(goqu.L("LOWER(name) = LOWER(?)", name))

	found, err := query.Executor().ScanStruct(&category)
	if err != nil {
		return nil, false, fmt.Errorf("unable to select asset category %q: %w", name, err)
	}

	return &category, found, nil
}

func (r *CatalogRepository) PersistCategory(req models.AssetCategoryRequest) (*models.Asset, error) {
	category := models.Asset{
		Name:    req.Name,
		PreCode: req.PreCode,
	}

	query := r.repository.GoquDBWrapper.Insert("assets").
		Rows(goqu.Record{
			"name":     req.Name,
			"pre_code": req.PreCode,
		}).
		Returning("id")

	if _, err := query.Executor().ScanVal(&category.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, apperrors.WrapDBError("Duplicate asset category name", string(pqErr.Code))
		}
		return nil, fmt.Errorf("failed to insert asset category: %w", err)
	}

	return &category, nil
}
