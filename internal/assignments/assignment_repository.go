package assignments

import (
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/ypremchand/Equipment-Management-sub000/internal/repository"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/apperrors"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/metadata"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/models"
)

// AssignmentRepository persists the binding rows between request items and
// concrete inventory units. Rows are kept after return; history reads rely on
// the returned_date staying set.
type AssignmentRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *AssignmentRepository {
	return &AssignmentRepository{repository: r}
}

// GetByItemIDs returns every binding row, active or returned, for a set of
// request items.
func (r *AssignmentRepository) GetByItemIDs(itemIDs []int) ([]models.AssignedAsset, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}

	var rows []models.AssignedAsset
	query := r.repository.GoquDBWrapper.
		From("assigned_assets").
		Where(goqu.C("asset_request_item_id").In(itemIDs)).
		Order(goqu.C("id").Asc())

	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, fmt.Errorf("unable to select assigned assets: %w", err)
	}

	return rows, nil
}

func (r *AssignmentRepository) GetAssigned(id int) (*models.AssignedAsset, error) {
	var row models.AssignedAsset
	query := r.repository.GoquDBWrapper.
		From("assigned_assets").
		Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&row)
	if err != nil {
		return nil, fmt.Errorf("unable to select assigned asset %d: %w", id, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: assigned asset %d", apperrors.ErrNotFound, id)
	}

	return &row, nil
}

// GetActiveByItem returns the not-yet-returned bindings of one request item.
func (r *AssignmentRepository) GetActiveByItem(tx *goqu.TxDatabase, itemID int) ([]models.AssignedAsset, error) {
	var rows []models.AssignedAsset
	query := tx.From("assigned_assets").
		Where(goqu.Ex{
			"asset_request_item_id": itemID,
			"status":                string(metadata.AssignmentAssigned),
		}).
		Order(goqu.C("id").Asc())

	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, fmt.Errorf("unable to select active assignments of item %d: %w", itemID, err)
	}

	return rows, nil
}

// GetByRequest returns every binding row hanging off any item of one request.
func (r *AssignmentRepository) GetByRequest(tx *goqu.TxDatabase, requestID int) ([]models.AssignedAsset, error) {
	var rows []models.AssignedAsset
	query := tx.From(goqu.T("assigned_assets").As("aa")).
		InnerJoin(
			goqu.T("asset_request_items").As("ari"),
			goqu.On(goqu.Ex{"aa.asset_request_item_id": goqu.I("ari.id")}),
		).
		Select(goqu.I("aa.*")).
		Where(goqu.Ex{"ari.asset_request_id": requestID}).
		Order(goqu.I("aa.id").Asc())

	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, fmt.Errorf("unable to select assignments of request %d: %w", requestID, err)
	}

	return rows, nil
}

func (r *AssignmentRepository) InsertAssigned(tx *goqu.TxDatabase, rows []models.AssignedAsset) error {
	if len(rows) == 0 {
		return nil
	}

	records := make([]goqu.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, goqu.Record{
			"asset_request_item_id": row.AssetRequestItemID,
			"asset_type":            string(row.AssetType),
			"asset_type_item_id":    row.AssetTypeItemID,
			"status":                string(row.Status),
			"assigned_date":         row.AssignedDate,
		})
	}

	if _, err := tx.Insert("assigned_assets").Rows(records).Executor().Exec(); err != nil {
		return fmt.Errorf("failed to insert assigned assets: %w", err)
	}

	return nil
}

func (r *AssignmentRepository) DeleteByIDs(tx *goqu.TxDatabase, ids []int) error {
	if len(ids) == 0 {
		return nil
	}

	if _, err := tx.Delete("assigned_assets").
		Where(goqu.C("id").In(ids)).
		Executor().
		Exec(); err != nil {
		return fmt.Errorf("failed to delete assigned assets: %w", err)
	}

	return nil
}

// MarkReturned closes one binding row. It only touches rows still in the
// Assigned state so a double return cannot overwrite the original return date.
func (r *AssignmentRepository) MarkReturned(tx *goqu.TxDatabase, id int, at time.Time) error {
	result, err := tx.Update("assigned_assets").
		Set(goqu.Record{
			"status":        string(metadata.AssignmentReturned),
			"returned_date": at,
		}).
		Where(goqu.Ex{
			"id":     id,
			"status": string(metadata.AssignmentAssigned),
		}).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to mark assigned asset %d returned: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: assigned asset %d", apperrors.ErrAlreadyReturned, id)
	}

	return nil
}
