package httpapi

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"ejsis-server/internal/models"
	"ejsis-server/internal/repository"
)

// recordExportHeader is the admin export column order.
var recordExportHeader = []string{
	"Record ID",
	"JSIS Type",
	"Technician",
	"Technician Email",
	"Company",
	"Homeowner",
	"Service Date",
	"Status",
	"Submitted At",
}

// ExportHandler produces the admin XLSX listing of submitted records.
type ExportHandler struct {
	repo   repository.RecordsRepo
	logger *zap.Logger
}

func NewExportHandler(repo repository.RecordsRepo, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{repo: repo, logger: logger}
}

// Export handles GET /api/v1/jsis/records/export.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.repo.List(r.Context(), 1000, 0)
	if err != nil {
		h.logger.Error("Record export query failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}

	data, err := generateRecordsExcel(summaries)
	if err != nil {
		h.logger.Error("Record export failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Export failed")
		return
	}

	filename := "jsis_records_" + time.Now().Format("20060102") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(data)
}

func generateRecordsExcel(summaries []models.RecordSummary) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo needs the file open, so no deferred Close on success.

	sheetName := "JSIS Records"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#FFE6E6"},
			Pattern: 1,
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range recordExportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, header)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for row, s := range summaries {
		values := []any{
			s.RecordID, s.JSISType, s.TechName, s.TechEmail, s.CompanyName,
			s.HomeownerName, s.ServiceDate, s.Status, s.SubmittedAt,
		}
		cell, _ := excelize.CoordinatesToCellName(1, row+2)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	f.Close()
	return buf.Bytes(), nil
}
