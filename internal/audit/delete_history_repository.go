package audit

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/ypremchand/Equipment-Management-sub000/internal/repository"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/models"
)

// DeleteHistoryRepository persists the append-only audit trail. Inserts are
// tx-scoped on purpose: an audit row must land in the same transaction as the
// structural delete it records.
type DeleteHistoryRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *DeleteHistoryRepository {
	return &DeleteHistoryRepository{repository: r}
}

func (r *DeleteHistoryRepository) InsertAdmin(tx *goqu.TxDatabase, entry models.DeleteHistory) error {
	return insertHistory(tx, "admin_delete_histories", entry)
}

func (r *DeleteHistoryRepository) InsertUser(tx *goqu.TxDatabase, entry models.DeleteHistory) error {
	return insertHistory(tx, "user_delete_histories", entry)
}

func insertHistory(tx *goqu.TxDatabase, table string, entry models.DeleteHistory) error {
	query := tx.Insert(table).
		Rows(goqu.Record{
			"deleted_item_name": entry.DeletedItemName,
			"item_type":         entry.ItemType,
			"deleted_by":        entry.DeletedBy,
			"reason":            entry.Reason,
			"deleted_at":        entry.DeletedAt,
		})

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to insert %s entry: %w", table, err)
	}

	return nil
}

func (r *DeleteHistoryRepository) GetAdminHistories() ([]models.DeleteHistory, error) {
	return r.list("admin_delete_histories")
}

func (r *DeleteHistoryRepository) GetUserHistories() ([]models.DeleteHistory, error) {
	return r.list("user_delete_histories")
}

func (r *DeleteHistoryRepository) list(table string) ([]models.DeleteHistory, error) {
	var entries []models.DeleteHistory
	query := r.repository.GoquDBWrapper.
		From(table).
		Order(goqu.C("deleted_at").Desc())

	if err := query.Executor().ScanStructs(&entries); err != nil {
		return nil, fmt.Errorf("unable to select %s: %w", table, err)
	}

	return entries, nil
}
