package metadata

import (
	"fmt"
	"strings"
)

// AssetType is the closed set of discriminator tags used to resolve the
// physical inventory table an item lives in.
type AssetType string

const (
	TypeLaptop   AssetType = "laptop"
	TypeMobile   AssetType = "mobile"
	TypeTablet   AssetType = "tablet"
	TypeDesktop  AssetType = "desktop"
	TypePrinter  AssetType = "printer"
	TypeScanner1 AssetType = "scanner1"
	TypeScanner2 AssetType = "scanner2"
	TypeScanner3 AssetType = "scanner3"
	TypeBarcode  AssetType = "barcode"
)

var assetTypeTables = map[AssetType]string{
	TypeLaptop:   "laptops",
	TypeMobile:   "mobiles",
	TypeTablet:   "tablets",
	TypeDesktop:  "desktops",
	TypePrinter:  "printers",
	TypeScanner1: "scanner1_units",
	TypeScanner2: "scanner2_units",
	TypeScanner3: "scanner3_units",
	TypeBarcode:  "barcode_scanners",
}

// normalizeOrder is matched front to back; "barcode" must win over the
// generic "scanner" substring, and the numbered scanners over each other.
var normalizeOrder = []struct {
	needle string
	tag    AssetType
}{
	{"barcode", TypeBarcode},
	{"scanner1", TypeScanner1},
	{"scanner 1", TypeScanner1},
	{"scanner2", TypeScanner2},
	{"scanner 2", TypeScanner2},
	{"scanner3", TypeScanner3},
	{"scanner 3", TypeScanner3},
	{"laptop", TypeLaptop},
	{"mobile", TypeMobile},
	{"tablet", TypeTablet},
	{"desktop", TypeDesktop},
	{"printer", TypePrinter},
}

// NewAssetType validates a raw discriminator tag coming from a client payload
// or an assigned_assets row.
func NewAssetType(value string) (AssetType, error) {
	t := AssetType(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := assetTypeTables[t]; !ok {
		return "", fmt.Errorf("invalid asset type: %s", value)
	}
	return t, nil
}

// NormalizeAssetType maps a free-text catalog category name ("Barcode
// Scanners", "Scanner3(OMR Scanner)") onto its discriminator tag.
func NormalizeAssetType(categoryName string) (AssetType, error) {
	name := strings.ToLower(categoryName)
	for _, candidate := range normalizeOrder {
		if strings.Contains(name, candidate.needle) {
			return candidate.tag, nil
		}
	}
	return "", fmt.Errorf("no asset type matches category %q", categoryName)
}

// Table returns the inventory table backing the type.
func (t AssetType) Table() string {
	return assetTypeTables[t]
}

func (t AssetType) IsValid() bool {
	_, ok := assetTypeTables[t]
	return ok
}

func AllAssetTypes() []AssetType {
	return []AssetType{
		TypeLaptop, TypeMobile, TypeTablet, TypeDesktop, TypePrinter,
		TypeScanner1, TypeScanner2, TypeScanner3, TypeBarcode,
	}
}
