package httpapi

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"ejsis-server/internal/models"
	"ejsis-server/internal/repository"
)

func TestExportProducesWorkbook(t *testing.T) {
	repo := repository.NewMemoryRecordsRepo()
	ctx := context.Background()
	_, err := repo.Insert(ctx, map[string]any{
		"jsis_type":      "ac",
		"tech_name":      "Jane Doe",
		"tech_email":     "jane@example.com",
		"company_name":   "Acme HVAC",
		"homeowner_name": "B. Smith",
		"service_date":   "2025-03-14",
		"status":         "emailed",
	})
	require.NoError(t, err)
	_, err = repo.Insert(ctx, map[string]any{"jsis_type": "heatpump", "status": "submitted"})
	require.NoError(t, err)

	h := NewExportHandler(repo, zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/jsis/records/export", nil)
	rr := httptest.NewRecorder()
	h.Export(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "jsis_records_")

	wb, err := excelize.OpenReader(bytes.NewReader(rr.Body.Bytes()))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("JSIS Records")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two records")
	assert.Equal(t, recordExportHeader, rows[0])
	// Newest record first.
	assert.Equal(t, "2", rows[1][0])
	assert.Equal(t, "heatpump", rows[1][1])
	assert.Equal(t, "Jane Doe", rows[2][2])
	assert.Equal(t, "emailed", rows[2][7])
}

type failingRepo struct{}

func (failingRepo) Insert(context.Context, map[string]any) (int64, error) {
	return 0, errors.New("unavailable")
}
func (failingRepo) Get(context.Context, int64) (models.Record, error) {
	return nil, errors.New("unavailable")
}
func (failingRepo) List(context.Context, int, int) ([]models.RecordSummary, error) {
	return nil, errors.New("unavailable")
}

func TestExportSurfacesQueryFailure(t *testing.T) {
	h := NewExportHandler(failingRepo{}, zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/jsis/records/export", nil)
	rr := httptest.NewRecorder()
	h.Export(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Database error")
}
