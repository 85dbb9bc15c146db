package models

import (
	"time"

	"github.com/ypremchand/Equipment-Management-sub000/pkg/metadata"
)

// AssignedAsset binds one request item to one concrete inventory unit. The
// (AssetType, AssetTypeItemID) pair is a weak reference into the per-type
// tables, resolved through the metadata registry, never a DB foreign key.
type AssignedAsset struct {
	ID                 int                       `json:"id" db:"id"`
	AssetRequestItemID int                       `json:"asset_request_item_id" db:"asset_request_item_id"`
	AssetType          metadata.AssetType        `json:"asset_type" db:"asset_type"`
	AssetTypeItemID    int                       `json:"asset_type_item_id" db:"asset_type_item_id"`
	Status             metadata.AssignmentStatus `json:"status" db:"status"`
	AssignedDate       time.Time                 `json:"assigned_date" db:"assigned_date"`
	ReturnedDate       *time.Time                `json:"returned_date,omitempty" db:"returned_date"`

	Detail *ItemDetail `json:"detail,omitempty" db:"-"`
}

// ConfirmApprovePayload carries one admin approval action; assignments may
// re-assign items that already hold active bindings.
type ConfirmApprovePayload struct {
	AdminName   string              `json:"admin_name" binding:"required"`
	Assignments []AssignmentPayload `json:"assignments" binding:"required,min=1,dive"`
}

type AssignmentPayload struct {
	ItemID           int    `json:"item_id" binding:"required"`
	AssetType        string `json:"asset_type" binding:"required"`
	AssetTypeItemIDs []int  `json:"asset_type_item_ids" binding:"required"`
	PartialReason    string `json:"partial_reason"`
}

type ReturnItemPayload struct {
	IsDamaged    bool   `json:"is_damaged"`
	DamageReason string `json:"damage_reason"`
}

type DeleteRequestPayload struct {
	AdminName string `json:"admin_name" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

// CancelRequestPayload carries a requester withdrawing their own request.
type CancelRequestPayload struct {
	UserName string `json:"user_name" binding:"required"`
	Reason   string `json:"reason"`
}
