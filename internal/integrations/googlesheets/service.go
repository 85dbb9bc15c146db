package googlesheets

import (
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/sheets/v4"

	"github.com/ypremchand/Equipment-Management-sub000/pkg/models"
)

// InventoryReportService pushes a stock snapshot into a Google Sheet. The
// integration is optional; an unconfigured service rejects exports instead of
// failing at startup.
type InventoryReportService struct {
	sheetsService *sheets.Service
	spreadsheetID string
	logger        *zap.Logger
}

func NewInventoryReportService(sheetsService *sheets.Service, spreadsheetID string, logger *zap.Logger) *InventoryReportService {
	return &InventoryReportService{
		sheetsService: sheetsService,
		spreadsheetID: spreadsheetID,
		logger:        logger,
	}
}

func (s *InventoryReportService) Configured() bool {
	return s.sheetsService != nil && s.spreadsheetID != ""
}

// ExportInventoryReport overwrites the Inventory sheet with the current
// per-category stock snapshot.
func (s *InventoryReportService) ExportInventoryReport(rows []models.InventoryReportRow) error {
	if !s.Configured() {
		return fmt.Errorf("google sheets export is not configured")
	}

	values := [][]interface{}{
		{"Category", "Pre-code", "Total", "Assigned", "Damaged", "Available", "Exported at"},
	}
	exportedAt := time.Now().Format(time.RFC3339)
	for _, row := range rows {
		values = append(values, []interface{}{
			row.Name,
			row.PreCode,
			strconv.Itoa(row.Total),
			strconv.Itoa(row.Assigned),
			strconv.Itoa(row.Damaged),
			strconv.Itoa(row.Available),
			exportedAt,
		})
	}

	valueRange := &sheets.ValueRange{Values: values}
	_, err := s.sheetsService.Spreadsheets.Values.
		Update(s.spreadsheetID, "Inventory!A1", valueRange).
		ValueInputOption("RAW").
		Do()
	if err != nil {
		return fmt.Errorf("unable to write inventory report: %w", err)
	}

	s.logger.Info("inventory report exported",
		zap.String("spreadsheet_id", s.spreadsheetID),
		zap.Int("categories", len(rows)))

	return nil
}
