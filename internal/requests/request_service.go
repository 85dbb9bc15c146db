package requests

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ypremchand/Equipment-Management-sub000/internal/inventory"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/apperrors"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/metadata"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/models"
)

type requestStore interface {
	CreateRequest(request models.AssetRequest, items []models.AssetRequestItem) (int, error)
	GetRequests(email string) ([]models.AssetRequest, error)
	GetRequest(id int) (*models.AssetRequest, error)
	GetItems(requestIDs []int) ([]models.AssetRequestItem, error)
}

type categoryStore interface {
	GetAssetNames(ids []int) (map[int]string, error)
}

type userStore interface {
	GetUserByEmail(email string) (*models.User, error)
}

type assignmentLister interface {
	GetByItemIDs(itemIDs []int) ([]models.AssignedAsset, error)
}

type detailResolver interface {
	ResolveDetails(refs []inventory.TypeRef) (map[inventory.TypeRef]models.ItemDetail, error)
}

// RequestService owns submission and read-back of asset requests. Approval,
// rejection and returns live in the assignments service.
type RequestService struct {
	store       requestStore
	categories  categoryStore
	users       userStore
	assignments assignmentLister
	details     detailResolver
	logger      *zap.Logger
	now         func() time.Time
}

func NewService(
	store requestStore,
	categories categoryStore,
	users userStore,
	assignments assignmentLister,
	details detailResolver,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		store:       store,
		categories:  categories,
		users:       users,
		assignments: assignments,
		details:     details,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateRequest validates the submission and persists it as Pending. Every
// item line must name an existing category whose name resolves to a known
// inventory type.
func (s *RequestService) CreateRequest(payload models.CreateRequestPayload) (int, error) {
	userID := payload.UserID
	if payload.UserEmail != "" {
		user, err := s.users.GetUserByEmail(payload.UserEmail)
		if err != nil {
			return 0, err
		}
		userID = user.ID
	}
	if userID == 0 {
		return 0, fmt.Errorf("%w: user_id or user_email is required", apperrors.ErrBadRequest)
	}

	assetIDs := make([]int, 0, len(payload.Items))
	for _, item := range payload.Items {
		assetIDs = append(assetIDs, item.AssetID)
	}

	names, err := s.categories.GetAssetNames(assetIDs)
	if err != nil {
		return 0, err
	}

	items := make([]models.AssetRequestItem, 0, len(payload.Items))
	for _, item := range payload.Items {
		name, ok := names[item.AssetID]
		if !ok {
			return 0, fmt.Errorf("%w: unknown asset category %d", apperrors.ErrBadRequest, item.AssetID)
		}
		if _, err := metadata.NormalizeAssetType(name); err != nil {
			return 0, fmt.Errorf("%w: category %q has no inventory type", apperrors.ErrBadRequest, name)
		}

		items = append(items, models.AssetRequestItem{
			AssetID:            item.AssetID,
			RequestedQuantity:  item.RequestedQuantity,
			Brand:              item.Brand,
			Processor:          item.Processor,
			Storage:            item.Storage,
			Ram:                item.Ram,
			OperatingSystem:    item.OperatingSystem,
			NetworkType:        item.NetworkType,
			SimType:            item.SimType,
			SimSupport:         item.SimSupport,
			PrinterType:        item.PrinterType,
			PaperSize:          item.PaperSize,
			Dpi:                item.Dpi,
			Scanner1Type:       item.Scanner1Type,
			Scanner1Resolution: item.Scanner1Resolution,
			Scanner2Type:       item.Scanner2Type,
			Scanner2Resolution: item.Scanner2Resolution,
			Scanner3Type:       item.Scanner3Type,
			Scanner3Resolution: item.Scanner3Resolution,
			ReaderType:         item.ReaderType,
			Technology:         item.Technology,
		})
	}

	request := models.AssetRequest{
		UserID:      userID,
		LocationID:  payload.LocationID,
		RequestDate: s.now(),
		Status:      metadata.RequestPending,
		Message:     payload.Message,
	}

	requestID, err := s.store.CreateRequest(request, items)
	if err != nil {
		return 0, err
	}

	s.logger.Info("asset request created",
		zap.Int("request_id", requestID),
		zap.Int("user_id", userID),
		zap.Int("items", len(items)))

	return requestID, nil
}

// GetRequests lists requests with their items and assignments fully resolved.
// An empty email lists everything.
func (s *RequestService) GetRequests(email string) ([]models.AssetRequest, error) {
	requests, err := s.store.GetRequests(email)
	if err != nil {
		return nil, err
	}

	if err := s.decorate(requests); err != nil {
		return nil, err
	}

	return requests, nil
}

func (s *RequestService) GetRequest(id int) (*models.AssetRequest, error) {
	request, err := s.store.GetRequest(id)
	if err != nil {
		return nil, err
	}

	single := []models.AssetRequest{*request}
	if err := s.decorate(single); err != nil {
		return nil, err
	}

	return &single[0], nil
}

// decorate attaches item lines, category names, assignment rows and their unit
// details to the given requests with a fixed number of queries regardless of
// the result size.
func (s *RequestService) decorate(requests []models.AssetRequest) error {
	if len(requests) == 0 {
		return nil
	}

	requestIDs := make([]int, 0, len(requests))
	for _, request := range requests {
		requestIDs = append(requestIDs, request.ID)
	}

	items, err := s.store.GetItems(requestIDs)
	if err != nil {
		return err
	}

	assetIDs := make([]int, 0, len(items))
	itemIDs := make([]int, 0, len(items))
	for _, item := range items {
		assetIDs = append(assetIDs, item.AssetID)
		itemIDs = append(itemIDs, item.ID)
	}

	names, err := s.categories.GetAssetNames(assetIDs)
	if err != nil {
		return err
	}

	assignments, err := s.assignments.GetByItemIDs(itemIDs)
	if err != nil {
		return err
	}

	refs := make([]inventory.TypeRef, 0, len(assignments))
	for _, assignment := range assignments {
		refs = append(refs, inventory.TypeRef{Type: assignment.AssetType, ID: assignment.AssetTypeItemID})
	}
	details, err := s.details.ResolveDetails(refs)
	if err != nil {
		return err
	}

	assignmentsByItem := make(map[int][]models.AssignedAsset, len(items))
	for _, assignment := range assignments {
		if detail, ok := details[inventory.TypeRef{Type: assignment.AssetType, ID: assignment.AssetTypeItemID}]; ok {
			d := detail
			assignment.Detail = &d
		}
		assignmentsByItem[assignment.AssetRequestItemID] = append(assignmentsByItem[assignment.AssetRequestItemID], assignment)
	}

	itemsByRequest := make(map[int][]models.AssetRequestItem, len(requests))
	for _, item := range items {
		item.AssetName = names[item.AssetID]
		item.Assignments = assignmentsByItem[item.ID]
		itemsByRequest[item.AssetRequestID] = append(itemsByRequest[item.AssetRequestID], item)
	}

	for i := range requests {
		requests[i].Items = itemsByRequest[requests[i].ID]
	}

	return nil
}
