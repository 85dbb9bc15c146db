package damage

import (
	"time"

	"github.com/doug-martin/goqu/v9"
	"go.uber.org/zap"

	"github.com/ypremchand/Equipment-Management-sub000/internal/repository"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/metadata"
	"github.com/ypremchand/Equipment-Management-sub000/pkg/models"
)

const repairRemarks = "Repaired successfully"

type damageStore interface {
	GetDamaged(id int) (*models.DamagedAsset, error)
	ListDamaged() ([]models.DamagedAsset, error)
	DeleteDamaged(tx *goqu.TxDatabase, id int) error
	InsertRepair(tx *goqu.TxDatabase, repair models.RepairHistory) error
	ListRepairHistories() ([]models.RepairHistory, error)
}

type itemRepairer interface {
	MarkRepaired(tx *goqu.TxDatabase, t metadata.AssetType, id int) error
}

type txRunner func(fn func(tx *goqu.TxDatabase) error) error

// DamageService owns the damage report lifecycle. A repair converts the open
// report into a history entry and puts the unit back into availability, all in
// one transaction.
type DamageService struct {
	store   damageStore
	items   itemRepairer
	runInTx txRunner
	logger  *zap.Logger
	now     func() time.Time
}

func NewService(r *repository.Repository, store *DamageRepository, items itemRepairer, logger *zap.Logger) *DamageService {
	return &DamageService{
		store: store,
		items: items,
		runInTx: func(fn func(tx *goqu.TxDatabase) error) error {
			return repository.WithTransaction(r.GoquDBWrapper, fn)
		},
		logger: logger,
		now:    time.Now,
	}
}

func (s *DamageService) ListDamagedAssets() ([]models.DamagedAsset, error) {
	return s.store.ListDamaged()
}

func (s *DamageService) ListRepairHistories() ([]models.RepairHistory, error) {
	return s.store.ListRepairHistories()
}

func (s *DamageService) RepairDamagedAsset(id int) error {
	damaged, err := s.store.GetDamaged(id)
	if err != nil {
		return err
	}

	err = s.runInTx(func(tx *goqu.TxDatabase) error {
		repair := models.RepairHistory{
			AssetType:  damaged.AssetType,
			AssetTag:   damaged.AssetTag,
			RepairedAt: s.now(),
			Remarks:    repairRemarks,
		}
		if err := s.store.InsertRepair(tx, repair); err != nil {
			return err
		}
		if err := s.items.MarkRepaired(tx, damaged.AssetType, damaged.AssetTypeItemID); err != nil {
			return err
		}
		return s.store.DeleteDamaged(tx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("damaged asset repaired",
		zap.Int("damaged_asset_id", id),
		zap.String("asset_type", string(damaged.AssetType)),
		zap.String("asset_tag", damaged.AssetTag))

	return nil
}
