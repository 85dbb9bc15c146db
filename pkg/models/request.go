package models

import (
	"time"

	"github.com/ypremchand/Equipment-Management-sub000/pkg/metadata"
)

// AssetRequest aggregates one user submission. Items are owned children and
// are only reachable through the parent; assignment rows hang off each item.
type AssetRequest struct {
	ID          int                    `json:"id" db:"id"`
	UserID      int                    `json:"user_id" db:"user_id"`
	UserName    string                 `json:"user_name,omitempty" db:"-"`
	UserEmail   string                 `json:"user_email,omitempty" db:"-"`
	LocationID  int                    `json:"location_id" db:"location_id"`
	Location    string                 `json:"location,omitempty" db:"-"`
	RequestDate time.Time              `json:"request_date" db:"request_date"`
	Status      metadata.RequestStatus `json:"status" db:"status"`
	Message     *string                `json:"message,omitempty" db:"message"`
	Items       []AssetRequestItem     `json:"items" db:"-"`
}

// AssetRequestItem is one category line. RequestedQuantity is immutable after
// creation; ApprovedQuantity is set once at approval time to the count of
// units actually handed out.
type AssetRequestItem struct {
	ID                int     `json:"id" db:"id"`
	AssetRequestID    int     `json:"asset_request_id" db:"asset_request_id"`
	AssetID           int     `json:"asset_id" db:"asset_id"`
	AssetName         string  `json:"asset_name,omitempty" db:"-"`
	RequestedQuantity int     `json:"requested_quantity" db:"requested_quantity"`
	ApprovedQuantity  *int    `json:"approved_quantity,omitempty" db:"approved_quantity"`
	PartialReason     *string `json:"partial_reason,omitempty" db:"partial_reason"`

	Brand              string `json:"brand,omitempty" db:"brand"`
	Processor          string `json:"processor,omitempty" db:"processor"`
	Storage            string `json:"storage,omitempty" db:"storage"`
	Ram                string `json:"ram,omitempty" db:"ram"`
	OperatingSystem    string `json:"operating_system,omitempty" db:"operating_system"`
	NetworkType        string `json:"network_type,omitempty" db:"network_type"`
	SimType            string `json:"sim_type,omitempty" db:"sim_type"`
	SimSupport         string `json:"sim_support,omitempty" db:"sim_support"`
	PrinterType        string `json:"printer_type,omitempty" db:"printer_type"`
	PaperSize          string `json:"paper_size,omitempty" db:"paper_size"`
	Dpi                string `json:"dpi,omitempty" db:"dpi"`
	Scanner1Type       string `json:"scanner1_type,omitempty" db:"scanner1_type"`
	Scanner1Resolution string `json:"scanner1_resolution,omitempty" db:"scanner1_resolution"`
	Scanner2Type       string `json:"scanner2_type,omitempty" db:"scanner2_type"`
	Scanner2Resolution string `json:"scanner2_resolution,omitempty" db:"scanner2_resolution"`
	Scanner3Type       string `json:"scanner3_type,omitempty" db:"scanner3_type"`
	Scanner3Resolution string `json:"scanner3_resolution,omitempty" db:"scanner3_resolution"`
	ReaderType         string `json:"reader_type,omitempty" db:"reader_type"`
	Technology         string `json:"technology,omitempty" db:"technology"`

	Assignments []AssignedAsset `json:"assignments,omitempty" db:"-"`
}

// SpecFilters returns the inventory columns this item constrains for the given
// type, keyed by column name. Only the fields relevant to the type apply, and
// only when non-empty; matching downstream is exact and case-insensitive.
func (i *AssetRequestItem) SpecFilters(t metadata.AssetType) map[string]string {
	filters := make(map[string]string)
	put := func(column, value string) {
		if value != "" {
			filters[column] = value
		}
	}

	switch t {
	case metadata.TypeLaptop, metadata.TypeDesktop:
		put("brand", i.Brand)
		put("processor", i.Processor)
		put("storage", i.Storage)
		put("ram", i.Ram)
		put("operating_system", i.OperatingSystem)
	case metadata.TypeMobile:
		put("brand", i.Brand)
		put("processor", i.Processor)
		put("storage", i.Storage)
		put("ram", i.Ram)
		put("network_type", i.NetworkType)
		put("sim_type", i.SimType)
	case metadata.TypeTablet:
		put("brand", i.Brand)
		put("processor", i.Processor)
		put("storage", i.Storage)
		put("ram", i.Ram)
		put("network_type", i.NetworkType)
		put("sim_type", i.SimType)
		put("sim_support", i.SimSupport)
	case metadata.TypePrinter:
		put("printer_type", i.PrinterType)
		put("paper_size", i.PaperSize)
		put("dpi", i.Dpi)
	case metadata.TypeScanner1:
		put("scanner_type", i.Scanner1Type)
		put("scanner_resolution", i.Scanner1Resolution)
	case metadata.TypeScanner2:
		put("scanner_type", i.Scanner2Type)
		put("scanner_resolution", i.Scanner2Resolution)
	case metadata.TypeScanner3:
		put("scanner_type", i.Scanner3Type)
		put("scanner_resolution", i.Scanner3Resolution)
	case metadata.TypeBarcode:
		put("reader_type", i.ReaderType)
		put("technology", i.Technology)
	}

	return filters
}

// CreateRequestPayload is the user submission body.
type CreateRequestPayload struct {
	UserID     int                  `json:"user_id"`
	UserEmail  string               `json:"user_email"`
	LocationID int                  `json:"location_id" binding:"required"`
	Message    *string              `json:"message"`
	Items      []RequestItemPayload `json:"items" binding:"required,min=1,dive"`
}

type RequestItemPayload struct {
	AssetID            int    `json:"asset_id" binding:"required"`
	RequestedQuantity  int    `json:"requested_quantity" binding:"required,min=1"`
	Brand              string `json:"brand"`
	Processor          string `json:"processor"`
	Storage            string `json:"storage"`
	Ram                string `json:"ram"`
	OperatingSystem    string `json:"operating_system"`
	NetworkType        string `json:"network_type"`
	SimType            string `json:"sim_type"`
	SimSupport         string `json:"sim_support"`
	PrinterType        string `json:"printer_type"`
	PaperSize          string `json:"paper_size"`
	Dpi                string `json:"dpi"`
	Scanner1Type       string `json:"scanner1_type"`
	Scanner1Resolution string `json:"scanner1_resolution"`
	Scanner2Type       string `json:"scanner2_type"`
	Scanner2Resolution string `json:"scanner2_resolution"`
	Scanner3Type       string `json:"scanner3_type"`
	Scanner3Resolution string `json:"scanner3_resolution"`
	ReaderType         string `json:"reader_type"`
	Technology         string `json:"technology"`
}
