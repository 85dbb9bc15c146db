package models

import (
	"time"

	"github.com/ypremchand/Equipment-Management-sub000/pkg/metadata"
)

// DamagedAsset is one open damage report. The row lives until the unit is
// repaired, at which point it is converted into a RepairHistory entry.
type DamagedAsset struct {
	ID              int                `json:"id" db:"id"`
	AssetType       metadata.AssetType `json:"asset_type" db:"asset_type"`
	AssetTypeItemID int                `json:"asset_type_item_id" db:"asset_type_item_id"`
	AssetTag        string             `json:"asset_tag" db:"asset_tag"`
	Reason          string             `json:"reason" db:"reason"`
	ReportedAt      time.Time          `json:"reported_at" db:"reported_at"`
}

// RepairHistory is append-only.
type RepairHistory struct {
	ID         int                `json:"id" db:"id"`
	AssetType  metadata.AssetType `json:"asset_type" db:"asset_type"`
	AssetTag   string             `json:"asset_tag" db:"asset_tag"`
	RepairedAt time.Time          `json:"repaired_at" db:"repaired_at"`
	Remarks    string             `json:"remarks" db:"remarks"`
}
