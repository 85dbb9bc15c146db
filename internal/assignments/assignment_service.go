package assignments

import (
	"fmt"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	"go.uber.org/zap"

	"github.com/ypremchand/Equipment-Management-sub000/internal/repository"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/apperrors"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/metadata"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/models"
)

type requestStore interface {
	GetRequest(id int) (*models.AssetRequest, error)
	GetItems(requestIDs []int) ([]models.AssetRequestItem, error)
	UpdateRequestStatus(tx *goqu.TxDatabase, id int, status metadata.RequestStatus) error
	SetItemApproval(tx *goqu.TxDatabase, itemID int, approved int, partialReason *string) error
	DeleteItems(tx *goqu.TxDatabase, requestID int) error
	DeleteRequest(tx *goqu.TxDatabase, requestID int) error
}

type assignmentStore interface {
	GetAssigned(id int) (*models.AssignedAsset, error)
	GetActiveByItem(tx *goqu.TxDatabase, itemID int) ([]models.AssignedAsset, error)
	GetByRequest(tx *goqu.TxDatabase, requestID int) ([]models.AssignedAsset, error)
	InsertAssigned(tx *goqu.TxDatabase, rows []models.AssignedAsset) error
	DeleteByIDs(tx *goqu.TxDatabase, ids []int) error
	MarkReturned(tx *goqu.TxDatabase, id int, at time.Time) error
}

type inventoryStore interface {
	LockAvailable(tx *goqu.TxDatabase, t metadata.AssetType, ids []int) ([]int, error)
	MarkAssigned(tx *goqu.TxDatabase, t metadata.AssetType, ids []int, at time.Time) error
	MarkReleased(tx *goqu.TxDatabase, t metadata.AssetType, ids []int) error
	MarkDamaged(tx *goqu.TxDatabase, t metadata.AssetType, id int) error
	GetItemTx(tx *goqu.TxDatabase, t metadata.AssetType, id int) (*models.InventoryItem, error)
	ListAvailable(t metadata.AssetType, filters map[string]string) ([]models.InventoryItem, error)
}

type damageStore interface {
	InsertDamaged(tx *goqu.TxDatabase, damaged models.DamagedAsset) error
}

type auditStore interface {
	InsertAdmin(tx *goqu.TxDatabase, entry models.DeleteHistory) error
	InsertUser(tx *goqu.TxDatabase, entry models.DeleteHistory) error
}

type categoryStore interface {
	GetAssetNames(ids []int) (map[int]string, error)
}

type txRunner func(fn func(tx *goqu.TxDatabase) error) error

// AssignmentService is the approval engine. Every state transition that binds
// or releases inventory units runs inside one transaction with the touched
// unit rows locked FOR UPDATE.
type AssignmentService struct {
	requests    requestStore
	assignments assignmentStore
	inventory   inventoryStore
	damage      damageStore
	audit       auditStore
	categories  categoryStore
	runInTx     txRunner
	logger      *zap.Logger
	now         func() time.Time
}

func NewService(
	r *repository.Repository,
	requests requestStore,
	assignments assignmentStore,
	inventory inventoryStore,
	damage damageStore,
	audit auditStore,
	categories categoryStore,
	logger *zap.Logger,
) *AssignmentService {
	return &AssignmentService{
		requests:    requests,
		assignments: assignments,
		inventory:   inventory,
		damage:      damage,
		audit:       audit,
		categories:  categories,
		runInTx: func(fn func(tx *goqu.TxDatabase) error) error {
			return repository.WithTransaction(r.GoquDBWrapper, fn)
		},
		logger: logger,
		now:    time.Now,
	}
}

// plannedAssignment is one validated approval line: a request item, its
// resolved inventory type and the concrete unit ids to bind.
type plannedAssignment struct {
	item          models.AssetRequestItem
	assetType     metadata.AssetType
	unitIDs       []int
	partialReason *string
}

// ConfirmApprove validates and applies one approval action. The whole action
// is atomic: either every assignment line binds its units and the request
// flips to Approved, or nothing changes. Approving an already-approved request
// is a correction: each item's previous unit selection is released and
// replaced in the same transaction.
func (s *AssignmentService) ConfirmApprove(requestID int, payload models.ConfirmApprovePayload) error {
	if _, err := s.requests.GetRequest(requestID); err != nil {
		return err
	}

	planned, err := s.planAssignments(requestID, payload.Assignments)
	if err != nil {
		return err
	}

	at := s.now()
	err = s.runInTx(func(tx *goqu.TxDatabase) error {
		for _, plan := range planned {
			if err := s.releaseActiveBindings(tx, plan.item.ID); err != nil {
				return err
			}

			locked, err := s.inventory.LockAvailable(tx, plan.assetType, plan.unitIDs)
			if err != nil {
				return err
			}
			if len(locked) != len(plan.unitIDs) {
				return fmt.Errorf("%w: %d of %d requested %s units are no longer available",
					apperrors.ErrConcurrentModification,
					len(plan.unitIDs)-len(locked), len(plan.unitIDs), plan.assetType)
			}

			rows := make([]models.AssignedAsset, 0, len(plan.unitIDs))
			for _, unitID := range plan.unitIDs {
				rows = append(rows, models.AssignedAsset{
					AssetRequestItemID: plan.item.ID,
					AssetType:          plan.assetType,
					AssetTypeItemID:    unitID,
					Status:             metadata.AssignmentAssigned,
					AssignedDate:       at,
				})
			}
			if err := s.assignments.InsertAssigned(tx, rows); err != nil {
				return err
			}
			if err := s.inventory.MarkAssigned(tx, plan.assetType, plan.unitIDs, at); err != nil {
				return err
			}
			if err := s.requests.SetItemApproval(tx, plan.item.ID, len(plan.unitIDs), plan.partialReason); err != nil {
				return err
			}
		}

		return s.requests.UpdateRequestStatus(tx, requestID, metadata.RequestApproved)
	})
	if err != nil {
		return err
	}

	s.logger.Info("asset request approved",
		zap.Int("request_id", requestID),
		zap.String("admin", payload.AdminName),
		zap.Int("assignments", len(planned)))

	return nil
}

// planAssignments validates the payload against the request's item lines
// before any transaction starts.
func (s *AssignmentService) planAssignments(requestID int, payload []models.AssignmentPayload) ([]plannedAssignment, error) {
	items, err := s.requests.GetItems([]int{requestID})
	if err != nil {
		return nil, err
	}
	itemsByID := make(map[int]models.AssetRequestItem, len(items))
	for _, item := range items {
		itemsByID[item.ID] = item
	}

	planned := make([]plannedAssignment, 0, len(payload))
	for _, assignment := range payload {
		item, ok := itemsByID[assignment.ItemID]
		if !ok {
			return nil, fmt.Errorf("%w: item %d does not belong to request %d",
				apperrors.ErrBadRequest, assignment.ItemID, requestID)
		}

		t, err := metadata.NewAssetType(assignment.AssetType)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrBadRequest, err)
		}

		if len(assignment.AssetTypeItemIDs) == 0 {
			return nil, fmt.Errorf("%w: item %d has no units to assign", apperrors.ErrBadRequest, assignment.ItemID)
		}
		if len(assignment.AssetTypeItemIDs) > item.RequestedQuantity {
			return nil, fmt.Errorf("%w: item %d allows at most %d units, got %d",
				apperrors.ErrBadRequest, assignment.ItemID, item.RequestedQuantity, len(assignment.AssetTypeItemIDs))
		}

		seen := make(map[int]struct{}, len(assignment.AssetTypeItemIDs))
		for _, unitID := range assignment.AssetTypeItemIDs {
			if _, dup := seen[unitID]; dup {
				return nil, fmt.Errorf("%w: duplicate unit %d for item %d",
					apperrors.ErrBadRequest, unitID, assignment.ItemID)
			}
			seen[unitID] = struct{}{}
		}

		var partialReason *string
		if len(assignment.AssetTypeItemIDs) < item.RequestedQuantity && assignment.PartialReason != "" {
			reason := assignment.PartialReason
			partialReason = &reason
		}

		planned = append(planned, plannedAssignment{
			item:          item,
			assetType:     t,
			unitIDs:       assignment.AssetTypeItemIDs,
			partialReason: partialReason,
		})
	}

	return planned, nil
}

// releaseActiveBindings drops the active binding rows of one item and puts
// their units back into availability. Re-approving an item replaces its
// previous unit selection.
func (s *AssignmentService) releaseActiveBindings(tx *goqu.TxDatabase, itemID int) error {
	active, err := s.assignments.GetActiveByItem(tx, itemID)
	if err != nil {
		return err
	}
	if len(active) == 0 {
		return nil
	}

	return s.releaseRows(tx, active)
}

// releaseRows clears inventory flags (grouped per type table) and deletes the
// binding rows.
func (s *AssignmentService) releaseRows(tx *goqu.TxDatabase, rows []models.AssignedAsset) error {
	unitsByType := make(map[metadata.AssetType][]int)
	rowIDs := make([]int, 0, len(rows))
	for _, row := range rows {
		rowIDs = append(rowIDs, row.ID)
		if row.Status.Is(metadata.AssignmentAssigned) {
			unitsByType[row.AssetType] = append(unitsByType[row.AssetType], row.AssetTypeItemID)
		}
	}

	for t, unitIDs := range unitsByType {
		if err := s.inventory.MarkReleased(tx, t, unitIDs); err != nil {
			return err
		}
	}

	return s.assignments.DeleteByIDs(tx, rowIDs)
}

// Reject flips a Pending request to Rejected and releases anything that was
// bound to it.
func (s *AssignmentService) Reject(requestID int) error {
	request, err := s.requests.GetRequest(requestID)
	if err != nil {
		return err
	}
	if !request.Status.Is(metadata.RequestPending) {
		return fmt.Errorf("%w: request %d is %s, only Pending requests can be rejected",
			apperrors.ErrInvalidStateTransition, requestID, request.Status)
	}

	err = s.runInTx(func(tx *goqu.TxDatabase) error {
		rows, err := s.assignments.GetByRequest(tx, requestID)
		if err != nil {
			return err
		}
		if len(rows) > 0 {
			if err := s.releaseRows(tx, rows); err != nil {
				return err
			}
		}

		return s.requests.UpdateRequestStatus(tx, requestID, metadata.RequestRejected)
	})
	if err != nil {
		return err
	}

	s.logger.Info("asset request rejected", zap.Int("request_id", requestID))
	return nil
}

// ReturnItem closes one binding and releases its unit. A damaged return
// additionally flags the unit and opens a damage report, atomically with the
// return itself.
func (s *AssignmentService) ReturnItem(assignedID int, payload models.ReturnItemPayload) error {
	row, err := s.assignments.GetAssigned(assignedID)
	if err != nil {
		return err
	}
	if row.Status.Is(metadata.AssignmentReturned) {
		return fmt.Errorf("%w: assigned asset %d", apperrors.ErrAlreadyReturned, assignedID)
	}
	if payload.IsDamaged && strings.TrimSpace(payload.DamageReason) == "" {
		return fmt.Errorf("%w: assigned asset %d", apperrors.ErrDamageReasonRequired, assignedID)
	}

	at := s.now()
	err = s.runInTx(func(tx *goqu.TxDatabase) error {
		if err := s.assignments.MarkReturned(tx, assignedID, at); err != nil {
			return err
		}
		if err := s.inventory.MarkReleased(tx, row.AssetType, []int{row.AssetTypeItemID}); err != nil {
			return err
		}

		if !payload.IsDamaged {
			return nil
		}

		item, err := s.inventory.GetItemTx(tx, row.AssetType, row.AssetTypeItemID)
		if err != nil {
			return err
		}
		if err := s.inventory.MarkDamaged(tx, row.AssetType, row.AssetTypeItemID); err != nil {
			return err
		}

		return s.damage.InsertDamaged(tx, models.DamagedAsset{
			AssetType:       row.AssetType,
			AssetTypeItemID: row.AssetTypeItemID,
			AssetTag:        item.AssetTag,
			Reason:          payload.DamageReason,
			ReportedAt:      at,
		})
	})
	if err != nil {
		return err
	}

	s.logger.Info("assigned asset returned",
		zap.Int("assigned_asset_id", assignedID),
		zap.Bool("damaged", payload.IsDamaged))

	return nil
}

// DeleteRequest removes a request with its items and bindings, releasing any
// still-assigned units, and records who deleted it and why.
func (s *AssignmentService) DeleteRequest(requestID int, payload models.DeleteRequestPayload) error {
	if _, err := s.requests.GetRequest(requestID); err != nil {
		return err
	}

	at := s.now()
	err := s.runInTx(func(tx *goqu.TxDatabase) error {
		entry := models.DeleteHistory{
			DeletedItemName: fmt.Sprintf("Request #%d", requestID),
			ItemType:        "AssetRequest",
			DeletedBy:       payload.AdminName,
			Reason:          payload.Reason,
			DeletedAt:       at,
		}
		if err := s.audit.InsertAdmin(tx, entry); err != nil {
			return err
		}

		rows, err := s.assignments.GetByRequest(tx, requestID)
		if err != nil {
			return err
		}
		if len(rows) > 0 {
			if err := s.releaseRows(tx, rows); err != nil {
				return err
			}
		}

		if err := s.requests.DeleteItems(tx, requestID); err != nil {
			return err
		}
		return s.requests.DeleteRequest(tx, requestID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("asset request deleted",
		zap.Int("request_id", requestID),
		zap.String("deleted_by", payload.AdminName))

	return nil
}

// CancelRequest lets a requester withdraw their own request before it has
// been actioned. The deletion lands in the user-side delete history instead of
// the admin one.
func (s *AssignmentService) CancelRequest(requestID int, payload models.CancelRequestPayload) error {
	request, err := s.requests.GetRequest(requestID)
	if err != nil {
		return err
	}
	if !request.Status.Is(metadata.RequestPending) {
		return fmt.Errorf("%w: request %d is %s, only Pending requests can be cancelled",
			apperrors.ErrInvalidStateTransition, requestID, request.Status)
	}

	at := s.now()
	err = s.runInTx(func(tx *goqu.TxDatabase) error {
		entry := models.DeleteHistory{
			DeletedItemName: fmt.Sprintf("Request #%d", requestID),
			ItemType:        "AssetRequest",
			DeletedBy:       payload.UserName,
			Reason:          payload.Reason,
			DeletedAt:       at,
		}
		if err := s.audit.InsertUser(tx, entry); err != nil {
			return err
		}

		rows, err := s.assignments.GetByRequest(tx, requestID)
		if err != nil {
			return err
		}
		if len(rows) > 0 {
			if err := s.releaseRows(tx, rows); err != nil {
				return err
			}
		}

		if err := s.requests.DeleteItems(tx, requestID); err != nil {
			return err
		}
		return s.requests.DeleteRequest(tx, requestID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("asset request cancelled",
		zap.Int("request_id", requestID),
		zap.String("cancelled_by", payload.UserName))

	return nil
}

// ListAvailableForItem returns the units an admin can pick for one request
// item: available, undamaged units of the item's category matching its
// requested specification.
func (s *AssignmentService) ListAvailableForItem(requestID, itemID int) (metadata.AssetType, []models.InventoryItem, error) {
	if _, err := s.requests.GetRequest(requestID); err != nil {
		return "", nil, err
	}

	items, err := s.requests.GetItems([]int{requestID})
	if err != nil {
		return "", nil, err
	}

	var item *models.AssetRequestItem
	for i := range items {
		if items[i].ID == itemID {
			item = &items[i]
			break
		}
	}
	if item == nil {
		return "", nil, fmt.Errorf("%w: item %d does not belong to request %d",
			apperrors.ErrBadRequest, itemID, requestID)
	}

	names, err := s.categories.GetAssetNames([]int{item.AssetID})
	if err != nil {
		return "", nil, err
	}
	name, ok := names[item.AssetID]
	if !ok {
		return "", nil, fmt.Errorf("%w: asset category %d", apperrors.ErrNotFound, item.AssetID)
	}

	t, err := metadata.NormalizeAssetType(name)
	if err != nil {
		return "", nil, fmt.Errorf("%w: category %q has no inventory type", apperrors.ErrBadRequest, name)
	}

	units, err := s.inventory.ListAvailable(t, item.SpecFilters(t))
	if err != nil {
		return "", nil, err
	}

	return t, units, nil
}
