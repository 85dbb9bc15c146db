package assignments

import (
	"testing"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/ypremchand/Equipment-Management-sub000/pkg/apperrors"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/metadata"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/models"
)

type MockRequestStore struct {
	mock.Mock
}

func (m *MockRequestStore) GetRequest(id int) (*models.AssetRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssetRequest), args.Error(1)
}

func (m *MockRequestStore) GetItems(requestIDs []int) ([]models.AssetRequestItem, error) {
	args := m.Called(requestIDs)
	return args.Get(0).([]models.AssetRequestItem), args.Error(1)
}

func (m *MockRequestStore) UpdateRequestStatus(tx *goqu.TxDatabase, id int, status metadata.RequestStatus) error {
	args := m.Called(tx, id, status)
	return args.Error(0)
}

func (m *MockRequestStore) SetItemApproval(tx *goqu.TxDatabase, itemID int, approved int, partialReason *string) error {
	args := m.Called(tx, itemID, approved, partialReason)
	return args.Error(0)
}

func (m *MockRequestStore) DeleteItems(tx *goqu.TxDatabase, requestID int) error {
	args := m.Called(tx, requestID)
	return args.Error(0)
}

func (m *MockRequestStore) DeleteRequest(tx *goqu.TxDatabase, requestID int) error {
	args := m.Called(tx, requestID)
	return args.Error(0)
}

type MockAssignmentStore struct {
	mock.Mock
}

func (m *MockAssignmentStore) GetAssigned(id int) (*models.AssignedAsset, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AssignedAsset), args.Error(1)
}

func (m *MockAssignmentStore) GetActiveByItem(tx *goqu.TxDatabase, itemID int) ([]models.AssignedAsset, error) {
	args := m.Called(tx, itemID)
	return args.Get(0).([]models.AssignedAsset), args.Error(1)
}

func (m *MockAssignmentStore) GetByRequest(tx *goqu.TxDatabase, requestID int) ([]models.AssignedAsset, error) {
	args := m.Called(tx, requestID)
	return args.Get(0).([]models.AssignedAsset), args.Error(1)
}

func (m *MockAssignmentStore) InsertAssigned(tx *goqu.TxDatabase, rows []models.AssignedAsset) error {
	args := m.Called(tx, rows)
	return args.Error(0)
}

func (m *MockAssignmentStore) DeleteByIDs(tx *goqu.TxDatabase, ids []int) error {
	args := m.Called(tx, ids)
	return args.Error(0)
}

func (m *MockAssignmentStore) MarkReturned(tx *goqu.TxDatabase, id int, at time.Time) error {
	args := m.Called(tx, id, at)
	return args.Error(0)
}

type MockInventoryStore struct {
	mock.Mock
}

func (m *MockInventoryStore) LockAvailable(tx *goqu.TxDatabase, t metadata.AssetType, ids []int) ([]int, error) {
	args := m.Called(tx, t, ids)
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockInventoryStore) MarkAssigned(tx *goqu.TxDatabase, t metadata.AssetType, ids []int, at time.Time) error {
	args := m.Called(tx, t, ids, at)
	return args.Error(0)
}

func (m *MockInventoryStore) MarkReleased(tx *goqu.TxDatabase, t metadata.AssetType, ids []int) error {
	args := m.Called(tx, t, ids)
	return args.Error(0)
}

func (m *MockInventoryStore) MarkDamaged(tx *goqu.TxDatabase, t metadata.AssetType, id int) error {
	args := m.Called(tx, t, id)
	return args.Error(0)
}

func (m *MockInventoryStore) GetItemTx(tx *goqu.TxDatabase, t metadata.AssetType, id int) (*models.InventoryItem, error) {
	args := m.Called(tx, t, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InventoryItem), args.Error(1)
}

func (m *MockInventoryStore) ListAvailable(t metadata.AssetType, filters map[string]string) ([]models.InventoryItem, error) {
	args := m.Called(t, filters)
	return args.Get(0).([]models.InventoryItem), args.Error(1)
}

type MockDamageStore struct {
	mock.Mock
}

func (m *MockDamageStore) InsertDamaged(tx *goqu.TxDatabase, damaged models.DamagedAsset) error {
	args := m.Called(tx, damaged)
	return args.Error(0)
}

type MockAuditStore struct {
	mock.Mock
}

func (m *MockAuditStore) InsertAdmin(tx *goqu.TxDatabase, entry models.DeleteHistory) error {
	args := m.Called(tx, entry)
	return args.Error(0)
}

func (m *MockAuditStore) InsertUser(tx *goqu.TxDatabase, entry models.DeleteHistory) error {
	args := m.Called(tx, entry)
	return args.Error(0)
}

type MockCategoryStore struct {
	mock.Mock
}

func (m *MockCategoryStore) GetAssetNames(ids []int) (map[int]string, error) {
	args := m.Called(ids)
	return args.Get(0).(map[int]string), args.Error(1)
}

type serviceMocks struct {
	requests    *MockRequestStore
	assignments *MockAssignmentStore
	inventory   *MockInventoryStore
	damage      *MockDamageStore
	audit       *MockAuditStore
	categories  *MockCategoryStore
}

var testTime = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func newTestService() (*AssignmentService, *serviceMocks) {
	m := &serviceMocks{
		requests:    new(MockRequestStore),
		assignments: new(MockAssignmentStore),
		inventory:   new(MockInventoryStore),
		damage:      new(MockDamageStore),
		audit:       new(MockAuditStore),
		categories:  new(MockCategoryStore),
	}

	service := &AssignmentService{
		requests:    m.requests,
		assignments: m.assignments,
		inventory:   m.inventory,
		damage:      m.damage,
		audit:       m.audit,
		categories:  m.categories,
		runInTx: func(fn func(tx *goqu.TxDatabase) error) error {
			return fn(nil)
		},
		logger: zap.NewNop(),
		now:    func() time.Time { return testTime },
	}

	return service, m
}

func pendingRequest(id int) *models.AssetRequest {
	return &models.AssetRequest{ID: id, Status: metadata.RequestPending}
}

func TestConfirmApproveAssignsRequestedUnits(t *testing.T) {
	service, m := newTestService()

	m.requests.On("GetRequest", 10).Return(pendingRequest(10), nil)
	m.requests.On("GetItems", []int{10}).Return([]models.AssetRequestItem{
		{ID: 100, AssetRequestID: 10, AssetID: 1, RequestedQuantity: 2, Brand: "Dell"},
	}, nil)
	m.assignments.On("GetActiveByItem", mock.Anything, 100).Return([]models.AssignedAsset{}, nil)
	m.inventory.On("LockAvailable", mock.Anything, metadata.TypeLaptop, []int{11, 12}).Return([]int{11, 12}, nil)
	m.assignments.On("InsertAssigned", mock.Anything, mock.MatchedBy(func(rows []models.AssignedAsset) bool {
		return len(rows) == 2 &&
			rows[0].AssetTypeItemID == 11 && rows[1].AssetTypeItemID == 12 &&
			rows[0].Status == metadata.AssignmentAssigned &&
			rows[0].AssignedDate.Equal(testTime)
	})).Return(nil)
	m.inventory.On("MarkAssigned", mock.Anything, metadata.TypeLaptop, []int{11, 12}, testTime).Return(nil)
	m.requests.On("SetItemApproval", mock.Anything, 100, 2, (*string)(nil)).Return(nil)
	m.requests.On("UpdateRequestStatus", mock.Anything, 10, metadata.RequestApproved).Return(nil)

	err := service.ConfirmApprove(10, models.ConfirmApprovePayload{
		AdminName: "admin",
		Assignments: []models.AssignmentPayload{
			{ItemID: 100, AssetType: "laptop", AssetTypeItemIDs: []int{11, 12}},
		},
	})

	assert.NoError(t, err)
	m.requests.AssertExpectations(t)
	m.assignments.AssertExpectations(t)
	m.inventory.AssertExpectations(t)
}

func TestConfirmApproveAcceptsRejectedRequest(t *testing.T) {
	service, m := newTestService()

	m.requests.On("GetRequest", 10).Return(&models.AssetRequest{ID: 10, Status: metadata.RequestRejected}, nil)
	m.requests.On("GetItems", []int{10}).Return([]models.AssetRequestItem{
		{ID: 100, AssetRequestID: 10, AssetID: 1, RequestedQuantity: 1},
	}, nil)
	m.assignments.On("GetActiveByItem", mock.Anything, 100).Return([]models.AssignedAsset{}, nil)
	m.inventory.On("LockAvailable", mock.Anything, metadata.TypeLaptop, []int{11}).Return([]int{11}, nil)
	m.assignments.On("InsertAssigned", mock.Anything, mock.Anything).Return(nil)
	m.inventory.On("MarkAssigned", mock.Anything, metadata.TypeLaptop, []int{11}, testTime).Return(nil)
	m.requests.On("SetItemApproval", mock.Anything, 100, 1, (*string)(nil)).Return(nil)
	m.requests.On("UpdateRequestStatus", mock.Anything, 10, metadata.RequestApproved).Return(nil)

	err := service.ConfirmApprove(10, models.ConfirmApprovePayload{
		AdminName: "admin",
		Assignments: []models.AssignmentPayload{
			{ItemID: 100, AssetType: "laptop", AssetTypeItemIDs: []int{11}},
		},
	})

	assert.NoError(t, err)
	m.requests.AssertCalled(t, "UpdateRequestStatus", mock.Anything, 10, metadata.RequestApproved)
}

func TestConfirmApproveRejectsForeignItem(t *testing.T) {
	service, m := newTestService()

	m.requests.On("GetRequest", 10).Return(pendingRequest(10), nil)
	m.requests.On("GetItems", []int{10}).Return([]models.AssetRequestItem{
		{ID: 100, AssetRequestID: 10, AssetID: 1, RequestedQuantity: 2},
	}, nil)

	err := service.ConfirmApprove(10, models.ConfirmApprovePayload{
		AdminName: "admin",
		Assignments: []models.AssignmentPayload{
			{ItemID: 999, AssetType: "laptop", AssetTypeItemIDs: []int{11}},
		},
	})

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.Contains(t, err.Error(), "999")
}

func TestConfirmApproveRejectsOverAssignment(t *testing.T) {
	service, m := newTestService()

	m.requests.On("GetRequest", 10).Return(pendingRequest(10), nil)
	m.requests.On("GetItems", []int{10}).Return([]models.AssetRequestItem{
		{ID: 100, AssetRequestID: 10, AssetID: 1, RequestedQuantity: 2},
	}, nil)

	err := service.ConfirmApprove(10, models.ConfirmApprovePayload{
		AdminName: "admin",
		Assignments: []models.AssignmentPayload{
			{ItemID: 100, AssetType: "laptop", AssetTypeItemIDs: []int{11, 12, 13}},
		},
	})

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestConfirmApproveRejectsDuplicateUnits(t *testing.T) {
	service, m := newTestService()

	m.requests.On("GetRequest", 10).Return(pendingRequest(10), nil)
	m.requests.On("GetItems", []int{10}).Return([]models.AssetRequestItem{
		{ID: 100, AssetRequestID: 10, AssetID: 1, RequestedQuantity: 2},
	}, nil)

	err := service.ConfirmApprove(10, models.ConfirmApprovePayload{
		AdminName: "admin",
		Assignments: []models.AssignmentPayload{
			{ItemID: 100, AssetType: "laptop", AssetTypeItemIDs: []int{11, 11}},
		},
	})

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestConfirmApproveFailsWhenUnitsRaceAway(t *testing.T) {
	service, m := newTestService()

	m.requests.On("GetRequest", 10).Return(pendingRequest(10), nil)
	m.requests.On("GetItems", []int{10}).Return([]models.AssetRequestItem{
		{ID: 100, AssetRequestID: 10, AssetID: 1, RequestedQuantity: 2},
	}, nil)
	m.assignments.On("GetActiveByItem", mock.Anything, 100).Return([]models.AssignedAsset{}, nil)
	m.inventory.On("LockAvailable", mock.Anything, metadata.TypeLaptop, []int{11, 12}).Return([]int{11}, nil)

	err := service.ConfirmApprove(10, models.ConfirmApprovePayload{
		AdminName: "admin",
		Assignments: []models.AssignmentPayload{
			{ItemID: 100, AssetType: "laptop", AssetTypeItemIDs: []int{11, 12}},
		},
	})

	assert.ErrorIs(t, err, apperrors.ErrConcurrentModification)
	m.assignments.AssertNotCalled(t, "InsertAssigned", mock.Anything, mock.Anything)
	m.requests.AssertNotCalled(t, "UpdateRequestStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmApproveRecordsPartialReason(t *testing.T) {
	service, m := newTestService()

	m.requests.On("GetRequest", 10).Return(pendingRequest(10), nil)
	m.requests.On("GetItems", []int{10}).Return([]models.AssetRequestItem{
		{ID: 100, AssetRequestID: 10, AssetID: 1, RequestedQuantity: 3},
	}, nil)
	m.assignments.On("GetActiveByItem", mock.Anything, 100).Return([]models.AssignedAsset{}, nil)
	m.inventory.On("LockAvailable", mock.Anything, metadata.TypeLaptop, []int{11}).Return([]int{11}, nil)
	m.assignments.On("InsertAssigned", mock.Anything, mock.Anything).Return(nil)
	m.inventory.On("MarkAssigned", mock.Anything, metadata.TypeLaptop, []int{11}, testTime).Return(nil)
	m.requests.On("SetItemApproval", mock.Anything, 100, 1, mock.MatchedBy(func(reason *string) bool {
		return reason != nil && *reason == "only one unit in stock"
	})).Return(nil)
	m.requests.On("UpdateRequestStatus", mock.Anything, 10, metadata.RequestApproved).Return(nil)

	err := service.ConfirmApprove(10, models.ConfirmApprovePayload{
		AdminName: "admin",
		Assignments: []models.AssignmentPayload{
			{ItemID: 100, AssetType: "laptop", AssetTypeItemIDs: []int{11}, PartialReason: "only one unit in stock"},
		},
	})

	assert.NoError(t, err)
	m.requests.AssertExpectations(t)
}

func TestConfirmApproveCorrectsApprovedRequest(t *testing.T) {
	service, m := newTestService()

	m.requests.On("GetRequest", 10).Return(&models.AssetRequest{ID: 10, Status: metadata.RequestApproved}, nil)
	m.requests.On("GetItems", []int{10}).Return([]models.AssetRequestItem{
		{ID: 100, AssetRequestID: 10, AssetID: 1, RequestedQuantity: 1},
	}, nil)
	m.assignments.On("GetActiveByItem", mock.Anything, 100).Return([]models.AssignedAsset{
		{ID: 500, AssetRequestItemID: 100, AssetType: metadata.TypeLaptop, AssetTypeItemID: 11, Status: metadata.AssignmentAssigned},
	}, nil)
	m.inventory.On("MarkReleased", mock.Anything, metadata.TypeLaptop, []int{11}).Return(nil)
	m.assignments.On("DeleteByIDs", mock.Anything, []int{500}).Return(nil)
	m.inventory.On("LockAvailable", mock.Anything, metadata.TypeLaptop, []int{12}).Return([]int{12}, nil)
	m.assignments.On("InsertAssigned", mock.Anything, mock.Anything).Return(nil)
	m.inventory.On("MarkAssigned", mock.Anything, metadata.TypeLaptop, []int{12}, testTime).Return(nil)
	m.requests.On("SetItemApproval", mock.Anything, 100, 1, (*string)(nil)).Return(nil)
	m.requests.On("UpdateRequestStatus", mock.Anything, 10, metadata.RequestApproved).Return(nil)

	err := service.ConfirmApprove(10, models.ConfirmApprovePayload{
		AdminName: "admin",
		Assignments: []models.AssignmentPayload{
			{ItemID: 100, AssetType: "laptop", AssetTypeItemIDs: []int{12}},
		},
	})

	assert.NoError(t, err)
	m.inventory.AssertCalled(t, "MarkReleased", mock.Anything, metadata.TypeLaptop, []int{11})
	m.assignments.AssertCalled(t, "DeleteByIDs", mock.Anything, []int{500})
}

func TestRejectReleasesBindingsAndFlipsStatus(t *testing.T) {
	service, m := newTestService()

	m.requests.On("GetRequest", 10).Return(pendingRequest(10), nil)
	m.assignments.On("GetByRequest", mock.Anything, 10).Return([]models.AssignedAsset{
		{ID: 500, AssetRequestItemID: 100, AssetType: metadata.TypeMobile, AssetTypeItemID: 7, Status: metadata.AssignmentAssigned},
	}, nil)
	m.inventory.On("MarkReleased", mock.Anything, metadata.TypeMobile, []int{7}).Return(nil)
	m.assignments.On("DeleteByIDs", mock.Anything, []int{500}).Return(nil)
	m.requests.On("UpdateRequestStatus", mock.Anything, 10, metadata.RequestRejected).Return(nil)

	err := service.Reject(10)

	assert.NoError(t, err)
	m.requests.AssertExpectations(t)
	m.inventory.AssertExpectations(t)
}

func TestRejectRequiresPendingStatus(t *testing.T) {
	service, m := newTestService()

	m.requests.On("GetRequest", 10).Return(&models.AssetRequest{ID: 10, Status: metadata.RequestRejected}, nil)

	err := service.Reject(10)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)
}

func TestReturnItemReleasesUnit(t *testing.T) {
	service, m := newTestService()

	m.assignments.On("GetAssigned", 500).Return(&models.AssignedAsset{
		ID: 500, AssetType: metadata.TypeLaptop, AssetTypeItemID: 11, Status: metadata.AssignmentAssigned,
	}, nil)
	m.assignments.On("MarkReturned", mock.Anything, 500, testTime).Return(nil)
	m.inventory.On("MarkReleased", mock.Anything, metadata.TypeLaptop, []int{11}).Return(nil)

	err := service.ReturnItem(500, models.ReturnItemPayload{})

	assert.NoError(t, err)
	m.damage.AssertNotCalled(t, "InsertDamaged", mock.Anything, mock.Anything)
}

func TestReturnItemRejectsDoubleReturn(t *testing.T) {
	service, m := newTestService()

	m.assignments.On("GetAssigned", 500).Return(&models.AssignedAsset{
		ID: 500, AssetType: metadata.TypeLaptop, AssetTypeItemID: 11, Status: metadata.AssignmentReturned,
	}, nil)

	err := service.ReturnItem(500, models.ReturnItemPayload{})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyReturned)
}

func TestReturnItemDamagedRequiresReason(t *testing.T) {
	service, m := newTestService()

	m.assignments.On("GetAssigned", 500).Return(&models.AssignedAsset{
		ID: 500, AssetType: metadata.TypeLaptop, AssetTypeItemID: 11, Status: metadata.AssignmentAssigned,
	}, nil)

	err := service.ReturnItem(500, models.ReturnItemPayload{IsDamaged: true, DamageReason: "   "})
	assert.ErrorIs(t, err, apperrors.ErrDamageReasonRequired)
}

func TestReturnItemDamagedOpensDamageReport(t *testing.T) {
	service, m := newTestService()

	m.assignments.On("GetAssigned", 500).Return(&models.AssignedAsset{
		ID: 500, AssetType: metadata.TypeLaptop, AssetTypeItemID: 11, Status: metadata.AssignmentAssigned,
	}, nil)
	m.assignments.On("MarkReturned", mock.Anything, 500, testTime).Return(nil)
	m.inventory.On("MarkReleased", mock.Anything, metadata.TypeLaptop, []int{11}).Return(nil)
	m.inventory.On("GetItemTx", mock.Anything, metadata.TypeLaptop, 11).Return(&models.InventoryItem{ID: 11, AssetTag: "LAP011"}, nil)
	m.inventory.On("MarkDamaged", mock.Anything, metadata.TypeLaptop, 11).Return(nil)
	m.damage.On("InsertDamaged", mock.Anything, mock.MatchedBy(func(damaged models.DamagedAsset) bool {
		return damaged.AssetTag == "LAP011" && damaged.Reason == "screen cracked" && damaged.ReportedAt.Equal(testTime)
	})).Return(nil)

	err := service.ReturnItem(500, models.ReturnItemPayload{IsDamaged: true, DamageReason: "screen cracked"})

	assert.NoError(t, err)
	m.damage.AssertExpectations(t)
	m.inventory.AssertExpectations(t)
}

func TestDeleteRequestAuditsAndReleases(t *testing.T) {
	service, m := newTestService()

	m.requests.On("GetRequest", 10).Return(pendingRequest(10), nil)
	m.audit.On("InsertAdmin", mock.Anything, mock.MatchedBy(func(entry models.DeleteHistory) bool {
		return entry.DeletedItemName == "Request #10" &&
			entry.ItemType == "AssetRequest" &&
			entry.DeletedBy == "admin" &&
			entry.Reason == "duplicate submission"
	})).Return(nil)
	m.assignments.On("GetByRequest", mock.Anything, 10).Return([]models.AssignedAsset{
		{ID: 500, AssetType: metadata.TypeTablet, AssetTypeItemID: 3, Status: metadata.AssignmentAssigned},
		{ID: 501, AssetType: metadata.TypeTablet, AssetTypeItemID: 4, Status: metadata.AssignmentReturned},
	}, nil)
	m.inventory.On("MarkReleased", mock.Anything, metadata.TypeTablet, []int{3}).Return(nil)
	m.assignments.On("DeleteByIDs", mock.Anything, []int{500, 501}).Return(nil)
	m.requests.On("DeleteItems", mock.Anything, 10).Return(nil)
	m.requests.On("DeleteRequest", mock.Anything, 10).Return(nil)

	err := service.DeleteRequest(10, models.DeleteRequestPayload{AdminName: "admin", Reason: "duplicate submission"})

	assert.NoError(t, err)
	m.audit.AssertExpectations(t)
	m.inventory.AssertCalled(t, "MarkReleased", mock.Anything, metadata.TypeTablet, []int{3})
}

func TestCancelRequestWritesUserHistory(t *testing.T) {
	service, m := newTestService()

	m.requests.On("GetRequest", 10).Return(pendingRequest(10), nil)
	m.audit.On("InsertUser", mock.Anything, mock.MatchedBy(func(entry models.DeleteHistory) bool {
		return entry.DeletedItemName == "Request #10" &&
			entry.ItemType == "AssetRequest" &&
			entry.DeletedBy == "jsmith" &&
			entry.DeletedAt.Equal(testTime)
	})).Return(nil)
	m.assignments.On("GetByRequest", mock.Anything, 10).Return([]models.AssignedAsset{}, nil)
	m.requests.On("DeleteItems", mock.Anything, 10).Return(nil)
	m.requests.On("DeleteRequest", mock.Anything, 10).Return(nil)

	err := service.CancelRequest(10, models.CancelRequestPayload{UserName: "jsmith", Reason: "ordered by mistake"})

	assert.NoError(t, err)
	m.audit.AssertExpectations(t)
	m.audit.AssertNotCalled(t, "InsertAdmin", mock.Anything, mock.Anything)
	m.requests.AssertExpectations(t)
}

func TestCancelRequestRequiresPendingStatus(t *testing.T) {
	service, m := newTestService()

	m.requests.On("GetRequest", 10).Return(&models.AssetRequest{ID: 10, Status: metadata.RequestApproved}, nil)

	err := service.CancelRequest(10, models.CancelRequestPayload{UserName: "jsmith"})

	assert.ErrorIs(t, err, apperrors.ErrInvalidStateTransition)
	m.requests.AssertNotCalled(t, "DeleteRequest", mock.Anything, mock.Anything)
}

func TestListAvailableForItemAppliesSpecFilters(t *testing.T) {
	service, m := newTestService()

	m.requests.On("GetRequest", 10).Return(pendingRequest(10), nil)
	m.requests.On("GetItems", []int{10}).Return([]models.AssetRequestItem{
		{ID: 100, AssetRequestID: 10, AssetID: 1, RequestedQuantity: 2, Brand: "Dell", Ram: "16GB"},
	}, nil)
	m.categories.On("GetAssetNames", []int{1}).Return(map[int]string{1: "Laptops"}, nil)
	m.inventory.On("ListAvailable", metadata.TypeLaptop, map[string]string{"brand": "Dell", "ram": "16GB"}).Return([]models.InventoryItem{
		{ID: 11, AssetTag: "LAP011", Brand: "Dell"},
	}, nil)

	assetType, units, err := service.ListAvailableForItem(10, 100)

	assert.NoError(t, err)
	assert.Equal(t, metadata.TypeLaptop, assetType)
	assert.Len(t, units, 1)
	m.inventory.AssertExpectations(t)
}

func TestListAvailableForItemRejectsForeignItem(t *testing.T) {
	service, m := newTestService()

	m.requests.On("GetRequest", 10).Return(pendingRequest(10), nil)
	m.requests.On("GetItems", []int{10}).Return([]models.AssetRequestItem{
		{ID: 100, AssetRequestID: 10, AssetID: 1, RequestedQuantity: 2},
	}, nil)

	_, _, err := service.ListAvailableForItem(10, 999)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}
