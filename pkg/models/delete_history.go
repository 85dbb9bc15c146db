package models

import "time"

// DeleteHistory is one append-only audit row. Written in the same transaction
// as the structural delete it records; never mutated afterwards.
type DeleteHistory struct {
	ID              int       `json:"id" db:"id"`
	DeletedItemName string    `json:"deleted_item_name" db:"deleted_item_name"`
	ItemType        string    `json:"item_type" db:"item_type"`
	DeletedBy       string    `json:"deleted_by" db:"deleted_by"`
	Reason          string    `json:"reason" db:"reason"`
	DeletedAt       time.Time `json:"deleted_at" db:"deleted_at"`
}
