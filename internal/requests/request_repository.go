package requests

import (
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/ypremchand/Equipment-Management-sub000/internal/repository"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/apperrors"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/metadata"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/models"
)

type RequestRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *RequestRepository {
	return &RequestRepository{repository: r}
}

// requestRow carries the joined display columns that the wire model derives
// rather than stores.
type requestRow struct {
	ID          int       `db:"id"`
	UserID      int       `db:"user_id"`
	LocationID  int       `db:"location_id"`
	RequestDate time.Time `db:"request_date"`
	Status      string    `db:"status"`
	Message     *string   `db:"message"`
	UserName    string    `db:"user_name"`
	UserEmail   string    `db:"user_email"`
	Location    string    `db:"location_name"`
}

func (row requestRow) toModel() models.AssetRequest {
	return models.AssetRequest{
		ID:          row.ID,
		UserID:      row.UserID,
		UserName:    row.UserName,
		UserEmail:   row.UserEmail,
		LocationID:  row.LocationID,
		Location:    row.Location,
		RequestDate: row.RequestDate,
		Status:      metadata.RequestStatus(row.Status),
		Message:     row.Message,
	}
}

func (r *RequestRepository) requestDataset() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.
		From(goqu.T("asset_requests").As("ar")).
		InnerJoin(goqu.T("users").As("u"), goqu.On(goqu.Ex{"ar.user_id": goqu.I("u.id")})).
		InnerJoin(goqu.T("locations").As("l"), goqu.On(goqu.Ex{"ar.location_id": goqu.I("l.id")})).
		Select(
			goqu.I("ar.id").As("id"),
			goqu.I("ar.user_id").As("user_id"),
			goqu.I("ar.location_id").As("location_id"),
			goqu.I("ar.request_date").As("request_date"),
			goqu.I("ar.status").As("status"),
			goqu.I("ar.message").As("message"),
			goqu.I("u.fullname").As("user_name"),
			goqu.I("u.email").As("user_email"),
			goqu.I("l.name").As("location_name"),
		)
}

// CreateRequest inserts the request header and its item lines in one
// transaction and returns the new request id.
func (r *RequestRepository) CreateRequest(request models.AssetRequest, items []models.AssetRequestItem) (int, error) {
	var requestID int

	err := repository.WithTransaction(r.repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		query := tx.Insert("asset_requests").
			Rows(goqu.Record{
				"user_id":      request.UserID,
				"location_id":  request.LocationID,
				"request_date": request.RequestDate,
				"status":       string(request.Status),
				"message":      request.Message,
			}).
			Returning("id")

		if _, err := query.Executor().ScanVal(&requestID); err != nil {
			return fmt.Errorf("failed to insert asset request: %w", err)
		}

		rows := make([]goqu.Record, 0, len(items))
		for _, item := range items {
			rows = append(rows, goqu.Record{
				"asset_request_id":    requestID,
				"asset_id":            item.AssetID,
				"requested_quantity":  item.RequestedQuantity,
				"brand":               item.Brand,
				"processor":           item.Processor,
				"storage":             item.Storage,
				"ram":                 item.Ram,
				"operating_system":    item.OperatingSystem,
				"network_type":        item.NetworkType,
				"sim_type":            item.SimType,
				"sim_support":         item.SimSupport,
				"printer_type":        item.PrinterType,
				"paper_size":          item.PaperSize,
				"dpi":                 item.Dpi,
				"scanner1_type":       item.Scanner1Type,
				"scanner1_resolution": item.Scanner1Resolution,
				"scanner2_type":       item.Scanner2Type,
				"scanner2_resolution": item.Scanner2Resolution,
				"scanner3_type":       item.Scanner3Type,
				"scanner3_resolution": item.Scanner3Resolution,
				"reader_type":         item.ReaderType,
				"technology":          item.Technology,
			})
		}

		if _, err := tx.Insert("asset_request_items").Rows(rows).Executor().Exec(); err != nil {
			return fmt.Errorf("failed to insert asset request items: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return requestID, nil
}

// GetRequests lists request headers newest first; a non-empty email narrows
// the list to one requester.
func (r *RequestRepository) GetRequests(email string) ([]models.AssetRequest, error) {
	query := r.requestDataset().Order(goqu.I("ar.request_date").Desc(), goqu.I("ar.id").Desc())
	if email != "" {
		query = query.Where(goqu.L("LOWER(?) = LOWER(?)", goqu.I("u.email"), email))
	}

	var rows []requestRow
	if err := query.Executor().ScanStructs(&rows); err != nil {
		return nil, fmt.Errorf("unable to select asset requests: %w", err)
	}

	requests := make([]models.AssetRequest, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, row.toModel())
	}

	return requests, nil
}

func (r *RequestRepository) GetRequest(id int) (*models.AssetRequest, error) {
	var row requestRow
	query := r.requestDataset().Where(goqu.Ex{"ar.id": id})

	found, err := query.Executor().ScanStruct(&row)
	if err != nil {
		return nil, fmt.Errorf("unable to select asset request %d: %w", id, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: asset request %d", apperrors.ErrNotFound, id)
	}

	request := row.toModel()
	return &request, nil
}

// GetItems fetches the item lines for a set of requests in one query.
func (r *RequestRepository) GetItems(requestIDs []int) ([]models.AssetRequestItem, error) {
	if len(requestIDs) == 0 {
		return nil, nil
	}

	var items []models.AssetRequestItem
	query := r.repository.GoquDBWrapper.
		From("asset_request_items").
		Where(goqu.C("asset_request_id").In(requestIDs)).
		Order(goqu.C("id").Asc())

	if err := query.Executor().ScanStructs(&items); err != nil {
		return nil, fmt.Errorf("unable to select asset request items: %w", err)
	}

	return items, nil
}

func (r *RequestRepository) UpdateRequestStatus(tx *goqu.TxDatabase, id int, status metadata.RequestStatus) error {
	result, err := tx.Update("asset_requests").
		Set(goqu.Record{"status": string(status)}).
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to update asset request %d status: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: asset request %d", apperrors.ErrNotFound, id)
	}

	return nil
}

// SetItemApproval records the approved unit count and, for shortfalls, the
// partial reason on one item line.
func (r *RequestRepository) SetItemApproval(tx *goqu.TxDatabase, itemID int, approved int, partialReason *string) error {
	result, err := tx.Update("asset_request_items").
		Set(goqu.Record{
			"approved_quantity": approved,
			"partial_reason":    partialReason,
		}).
		Where(goqu.Ex{"id": itemID}).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to update asset request item %d approval: %w", itemID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: asset request item %d", apperrors.ErrNotFound, itemID)
	}

	return nil
}

func (r *RequestRepository) DeleteItems(tx *goqu.TxDatabase, requestID int) error {
	if _, err := tx.Delete("asset_request_items").
		Where(goqu.Ex{"asset_request_id": requestID}).
		Executor().
		Exec(); err != nil {
		return fmt.Errorf("failed to delete items of asset request %d: %w", requestID, err)
	}

	return nil
}

func (r *RequestRepository) DeleteRequest(tx *goqu.TxDatabase, requestID int) error {
	result, err := tx.Delete("asset_requests").
		Where(goqu.Ex{"id": requestID}).
		Executor().
		Exec()
	if err != nil {
		return fmt.Errorf("failed to delete asset request %d: %w", requestID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: asset request %d", apperrors.ErrNotFound, requestID)
	}

	return nil
}
