package models

import "time"

// Remarks sentinel values carried over from the legacy schema; "Yes" marks a
// damaged unit that must never appear in availability listings.
const (
	RemarksDamaged = "Yes"
	RemarksHealthy = "No"
)

// InventoryItem is one physical unit. The nine per-type tables share a uniform
// column superset, so a single struct serves every table; fields irrelevant to
// a given type stay empty.
type InventoryItem struct {
	ID                int        `json:"id" db:"id"`
	AssetID           int        `json:"asset_id" db:"asset_id"`
	AssetTag          string     `json:"asset_tag" db:"asset_tag"`
	Brand             string     `json:"brand,omitempty" db:"brand"`
	Model             string     `json:"model,omitempty" db:"model"`
	Processor         string     `json:"processor,omitempty" db:"processor"`
	Ram               string     `json:"ram,omitempty" db:"ram"`
	Storage           string     `json:"storage,omitempty" db:"storage"`
	OperatingSystem   string     `json:"operating_system,omitempty" db:"operating_system"`
	NetworkType       string     `json:"network_type,omitempty" db:"network_type"`
	SimType           string     `json:"sim_type,omitempty" db:"sim_type"`
	SimSupport        string     `json:"sim_support,omitempty" db:"sim_support"`
	PrinterType       string     `json:"printer_type,omitempty" db:"printer_type"`
	PaperSize         string     `json:"paper_size,omitempty" db:"paper_size"`
	Dpi               string     `json:"dpi,omitempty" db:"dpi"`
	ScannerType       string     `json:"scanner_type,omitempty" db:"scanner_type"`
	ScannerResolution string     `json:"scanner_resolution,omitempty" db:"scanner_resolution"`
	ReaderType        string     `json:"reader_type,omitempty" db:"reader_type"`
	Technology        string     `json:"technology,omitempty" db:"technology"`
	IsAssigned        bool       `json:"is_assigned" db:"is_assigned"`
	AssignedDate      *time.Time `json:"assigned_date,omitempty" db:"assigned_date"`
	Remarks           *string    `json:"remarks,omitempty" db:"remarks"`
}

// IsDamaged reports the legacy Remarks="Yes" sentinel.
func (i *InventoryItem) IsDamaged() bool {
	return i.Remarks != nil && *i.Remarks == RemarksDamaged
}

// CreateInventoryItemPayload is the intake form for one physical unit. The
// named category is created on first use.
type CreateInventoryItemPayload struct {
	CategoryName      string `json:"category_name" binding:"required"`
	PreCode           string `json:"pre_code" binding:"required,alphanum,min=2,max=5"`
	AssetTag          string `json:"asset_tag" binding:"required"`
	Brand             string `json:"brand"`
	Model             string `json:"model"`
	Processor         string `json:"processor"`
	Ram               string `json:"ram"`
	Storage           string `json:"storage"`
	OperatingSystem   string `json:"operating_system"`
	NetworkType       string `json:"network_type"`
	SimType           string `json:"sim_type"`
	SimSupport        string `json:"sim_support"`
	PrinterType       string `json:"printer_type"`
	PaperSize         string `json:"paper_size"`
	Dpi               string `json:"dpi"`
	ScannerType       string `json:"scanner_type"`
	ScannerResolution string `json:"scanner_resolution"`
	ReaderType        string `json:"reader_type"`
	Technology        string `json:"technology"`
}

// ItemDetail is the display projection resolved for assigned units.
type ItemDetail struct {
	ID       int    `json:"id" db:"id"`
	AssetTag string `json:"asset_tag" db:"asset_tag"`
	Brand    string `json:"brand" db:"brand"`
	Model    string `json:"model" db:"model"`
}
