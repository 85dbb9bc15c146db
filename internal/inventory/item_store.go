package inventory

import (
	"fmt"
	"sort"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/lib/pq"

	"github.com/ypremchand/Equipment-Management-sub000/internal/repository"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/apperrors"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/metadata"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/models"
)

// ItemStore is the single gateway to the per-type inventory tables. Every
// method dispatches on the metadata.AssetType tag instead of repeating a
// per-type branch at each call site.
type ItemStore struct {
	repository *repository.Repository
}

func NewItemStore(r *repository.Repository) *ItemStore {
	return &ItemStore{repository: r}
}

// TypeRef is a weak reference to one inventory row: discriminator tag plus the
// id inside that type's table.
type TypeRef struct {
	Type metadata.AssetType
	ID   int
}

// availableExpr excludes assigned units and units flagged damaged; a damaged
// unit stays out of availability regardless of its is_assigned flag.
func availableExpr() exp.ExpressionList {
	return goqu.And(
		goqu.C("is_assigned").IsFalse(),
		goqu.Or(
			goqu.C("remarks").IsNull(),
			goqu.C("remarks").Neq(models.RemarksDamaged),
		),
	)
}

// AvailableDataset builds the availability query for one type. Filters are
// exact, case-insensitive matches keyed by column name; keys are applied in
// sorted order so the generated SQL is stable.
func AvailableDataset(db *goqu.Database, t metadata.AssetType, filters map[string]string) *goqu.SelectDataset {
	query := db.From(t.Table()).
		Where(availableExpr())

	columns := make([]string, 0, len(filters))
	for column := range filters {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	for _, column := range columns {
		query = query.Where(goqu.L("LOWER(?) = LOWER(?)", goqu.C(column), filters[column]))
	}

	return query.Order(goqu.C("id").Asc())
}

// ListAvailable returns the assignable units of one type matching the filter
// set, ordered by id ascending.
func (s *ItemStore) ListAvailable(t metadata.AssetType, filters map[string]string) ([]models.InventoryItem, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: unknown asset type %q", apperrors.ErrBadRequest, t)
	}

	var items []models.InventoryItem
	query := AvailableDataset(s.repository.GoquDBWrapper, t, filters)
	if err := query.Executor().ScanStructs(&items); err != nil {
		return nil, fmt.Errorf("unable to select available %s: %w", t.Table(), err)
	}

	return items, nil
}

// LockAvailable locks the given rows FOR UPDATE and returns the ids that are
// still available. Callers compare the result against the requested set; a
// shortfall means another transaction grabbed a unit first.
func (s *ItemStore) LockAvailable(tx *goqu.TxDatabase, t metadata.AssetType, ids []int) ([]int, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var locked []int
	query := tx.From(t.Table()).
		Select("id").
		Where(goqu.C("id").In(ids)).
		Where(availableExpr()).
		ForUpdate(exp.Wait)

	if err := query.Executor().ScanVals(&locked); err != nil {
		return nil, fmt.Errorf("failed to lock %s rows: %w", t.Table(), err)
	}

	return locked, nil
}

// MarkAssigned flips the assignment flag on the given rows. The row count must
// match exactly; anything else means the transaction raced and must abort.
func (s *ItemStore) MarkAssigned(tx *goqu.TxDatabase, t metadata.AssetType, ids []int, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	result, err := tx.Update(t.Table()).
		Set(goqu.Record{
			"is_assigned":   true,
			"assigned_date": at,
		}).
		Where(goqu.C("id").In(ids)).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to mark %s assigned: %w", t.Table(), err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if int(rowsAffected) != len(ids) {
		return fmt.Errorf("expected to assign %d %s rows, updated %d", len(ids), t.Table(), rowsAffected)
	}

	return nil
}

// MarkReleased clears the assignment flag and date on the given rows.
func (s *ItemStore) MarkReleased(tx *goqu.TxDatabase, t metadata.AssetType, ids []int) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := tx.Update(t.Table()).
		Set(goqu.Record{
			"is_assigned":   false,
			"assigned_date": nil,
		}).
		Where(goqu.C("id").In(ids)).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to release %s rows: %w", t.Table(), err)
	}

	return nil
}

// MarkDamaged flags one unit with the legacy "Yes" sentinel.
func (s *ItemStore) MarkDamaged(tx *goqu.TxDatabase, t metadata.AssetType, id int) error {
	return s.setRemarks(tx, t, id, models.RemarksDamaged)
}

// MarkRepaired resets the sentinel back to "No".
func (s *ItemStore) MarkRepaired(tx *goqu.TxDatabase, t metadata.AssetType, id int) error {
	return s.setRemarks(tx, t, id, models.RemarksHealthy)
}

func (s *ItemStore) setRemarks(tx *goqu.TxDatabase, t metadata.AssetType, id int, remarks string) error {
	result, err := tx.Update(t.Table()).
		Set(goqu.Record{"remarks": remarks}).
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to update remarks on %s %d: %w", t.Table(), id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: %s item %d", apperrors.ErrNotFound, t, id)
	}

	return nil
}

// InsertItem adds one unit to its type's table and returns the new row id.
// The asset tag is unique per table.
func (s *ItemStore) InsertItem(t metadata.AssetType, item models.InventoryItem) (int, error) {
	record := goqu.Record{
		"asset_id":           item.AssetID,
		"asset_tag":          item.AssetTag,
		"brand":              item.Brand,
		"model":              item.Model,
		"processor":          item.Processor,
		"ram":                item.Ram,
		"storage":            item.Storage,
		"operating_system":   item.OperatingSystem,
		"network_type":       item.NetworkType,
		"sim_type":           item.SimType,
		"sim_support":        item.SimSupport,
		"printer_type":       item.PrinterType,
		"paper_size":         item.PaperSize,
		"dpi":                item.Dpi,
		"scanner_type":       item.ScannerType,
		"scanner_resolution": item.ScannerResolution,
		"reader_type":        item.ReaderType,
		"technology":         item.Technology,
	}

	var id int
	query := s.repository.GoquDBWrapper.
		Insert(t.Table()).
		Rows(record).
		Returning("id")

	if _, err := query.Executor().ScanVal(&id); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, apperrors.WrapDBError(fmt.Sprintf("Duplicate asset tag %q", item.AssetTag), string(pqErr.Code))
		}
		return 0, fmt.Errorf("failed to insert %s row: %w", t.Table(), err)
	}

	return id, nil
}

// GetItem fetches one unit outside of any transaction.
func (s *ItemStore) GetItem(t metadata.AssetType, id int) (*models.InventoryItem, error) {
	return scanItem(s.repository.GoquDBWrapper.From(t.Table()), t, id)
}

// GetItemTx fetches one unit inside the caller's transaction.
func (s *ItemStore) GetItemTx(tx *goqu.TxDatabase, t metadata.AssetType, id int) (*models.InventoryItem, error) {
	return scanItem(tx.From(t.Table()), t, id)
}

func scanItem(ds *goqu.SelectDataset, t metadata.AssetType, id int) (*models.InventoryItem, error) {
	var item models.InventoryItem
	found, err := ds.Where(goqu.Ex{"id": id}).Executor().ScanStruct(&item)
	if err != nil {
		return nil, fmt.Errorf("unable to select %s item %d: %w", t.Table(), id, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s item %d", apperrors.ErrNotFound, t, id)
	}

	return &item, nil
}

// ResolveDetails resolves display fields for a set of weak references with one
// query per touched table, never one per row.
func (s *ItemStore) ResolveDetails(refs []TypeRef) (map[TypeRef]models.ItemDetail, error) {
	byType := make(map[metadata.AssetType]map[int]struct{})
	for _, ref := range refs {
		if byType[ref.Type] == nil {
			byType[ref.Type] = make(map[int]struct{})
		}
		byType[ref.Type][ref.ID] = struct{}{}
	}

	details := make(map[TypeRef]models.ItemDetail, len(refs))
	for t, idSet := range byType {
		ids := make([]int, 0, len(idSet))
		for id := range idSet {
			ids = append(ids, id)
		}
		sort.Ints(ids)

		var rows []models.ItemDetail
		query := s.repository.GoquDBWrapper.
			From(t.Table()).
			Select("id", "asset_tag", "brand", "model").
			Where(goqu.C("id").In(ids))
		if err := query.Executor().ScanStructs(&rows); err != nil {
			return nil, fmt.Errorf("unable to resolve %s details: %w", t.Table(), err)
		}

		for _, row := range rows {
			details[TypeRef{Type: t, ID: row.ID}] = row
		}
	}

	return details, nil
}

// CountItems returns the total number of units of a category in its table.
func (s *ItemStore) CountItems(t metadata.AssetType, assetID int) (int, error) {
	return s.count(t, goqu.Ex{"asset_id": assetID})
}

// CountAssigned returns the number of handed-out units of a category.
func (s *ItemStore) CountAssigned(t metadata.AssetType, assetID int) (int, error) {
	return s.count(t, goqu.Ex{"asset_id": assetID, "is_assigned": true})
}

// CountDamaged returns the number of units carrying the damage sentinel.
func (s *ItemStore) CountDamaged(t metadata.AssetType, assetID int) (int, error) {
	return s.count(t, goqu.Ex{"asset_id": assetID, "remarks": models.RemarksDamaged})
}

func (s *ItemStore) count(t metadata.AssetType, condition goqu.Ex) (int, error) {
	var count int
	query := s.repository.GoquDBWrapper.
		Select(goqu.COUNT("*")).
		From(t.Table()).
		Where(condition)

	if _, err := query.Executor().ScanVal(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s rows: %w", t.Table(), err)
	}

	return count, nil
}
