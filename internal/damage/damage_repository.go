package damage

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/ypremchand/Equipment-Management-sub000/internal/repository"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/apperrors"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/models"
)

type DamageRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *DamageRepository {
	return &DamageRepository{repository: r}
}

func (r *DamageRepository) InsertDamaged(tx *goqu.TxDatabase, damaged models.DamagedAsset) error {
	query := tx.Insert("damaged_assets").
		Rows(goqu.Record{
			"asset_type":         string(damaged.AssetType),
			"asset_type_item_id": damaged.AssetTypeItemID,
			"asset_tag":          damaged.AssetTag,
			"reason":             damaged.Reason,
			"reported_at":        damaged.ReportedAt,
		})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to insert damaged asset record: %w", err)
	}

	return nil
}

func (r *DamageRepository) GetDamaged(id int) (*models.DamagedAsset, error) {
	var damaged models.DamagedAsset
	query := r.repository.GoquDBWrapper.
		From("damaged_assets").
		Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&damaged)
	if err != nil {
		return nil, fmt.Errorf("unable to select damaged asset %d: %w", id, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: damaged asset %d", apperrors.ErrNotFound, id)
	}

	return &damaged, nil
}

func (r *DamageRepository) ListDamaged() ([]models.DamagedAsset, error) {
	var entries []models.DamagedAsset
	query := r.repository.GoquDBWrapper.
		From("damaged_assets").
		Order(goqu.C("reported_at").Desc())

	if err := query.Executor().ScanStructs(&entries); err != nil {
		return nil, fmt.Errorf("unable to select damaged assets: %w", err)
	}

	return entries, nil
}

func (r *DamageRepository) DeleteDamaged(tx *goqu.TxDatabase, id int) error {
	result, err := tx.Delete("damaged_assets").
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to delete damaged asset %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: damaged asset %d", apperrors.ErrNotFound, id)
	}

	return nil
}

func (r *DamageRepository) InsertRepair(tx *goqu.TxDatabase, repair models.RepairHistory) error {
	query := tx.Insert("repair_histories").
		Rows(goqu.Record{
			"asset_type":  string(repair.AssetType),
			"asset_tag":   repair.AssetTag,
			"repaired_at": repair.RepairedAt,
			"remarks":     repair.Remarks,
		})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to insert repair history record: %w", err)
	}

	return nil
}

func (r *DamageRepository) ListRepairHistories() ([]models.RepairHistory, error) {
	var entries []models.RepairHistory
	query := r.repository.GoquDBWrapper.
		From("repair_histories").
		Order(goqu.C("repaired_at").Desc())

	if err := query.Executor().ScanStructs(&entries); err != nil {
		return nil, fmt.Errorf("unable to select repair histories: %w", err)
	}

	return entries, nil
}
