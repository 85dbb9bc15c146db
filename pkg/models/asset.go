package models

// Asset is a logical catalog category ("Laptops", "Printers"). Quantity is
// derived on every read from the category's inventory table and never stored.
type Asset struct {
	ID       int    `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	PreCode  string `json:"pre_code" db:"pre_code"`
	Quantity int    `json:"quantity" db:"-"`
}

type AssetCategoryRequest struct {
	Name    string `json:"name" binding:"required"`
	PreCode string `json:"pre_code" binding:"required,alphanum,min=2,max=5"`
}

// InventoryReportRow is one category line of the exported stock snapshot.
type InventoryReportRow struct {
	Name      string `json:"name"`
	PreCode   string `json:"pre_code"`
	Total     int    `json:"total"`
	Assigned  int    `json:"assigned"`
	Damaged   int    `json:"damaged"`
	Available int    `json:"available"`
}
