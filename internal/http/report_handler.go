package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"ejsis-server/internal/mailer"
	"ejsis-server/internal/models"
	"ejsis-server/internal/repository"
	"ejsis-server/internal/store"
)

// ReportGenerator renders one record into a PDF artifact.
type ReportGenerator interface {
	Generate(rec models.Record, recordID int64) (string, error)
}

// ReportMailer delivers a finished artifact and disposes of it after
// successful transmission.
type ReportMailer interface {
	SendReport(in mailer.SendReportInput) error
	Cleanup(path string) bool
}

// RecordsHandler drives the per-record report pipeline:
// fetch → generate → email, plus the status lookup.
type RecordsHandler struct {
	repo      repository.RecordsRepo
	generator ReportGenerator
	sender    ReportMailer
	status    *store.StatusStore
	logger    *zap.Logger
}

func NewRecordsHandler(repo repository.RecordsRepo, generator ReportGenerator, sender ReportMailer, status *store.StatusStore, logger *zap.Logger) *RecordsHandler {
	return &RecordsHandler{repo: repo, generator: generator, sender: sender, status: status, logger: logger}
}

const recordsPrefix = "/api/v1/jsis/records/"

// ServeHTTP routes /api/v1/jsis/records/{id}/send and
// /api/v1/jsis/records/{id}/status.
func (h *RecordsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, recordsPrefix)

	switch {
	case strings.HasSuffix(rest, "/send"):
		if r.Method != http.MethodPost {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		if id, ok := parseRecordID(w, strings.TrimSuffix(rest, "/send")); ok {
			h.SendReport(w, r, id)
		}
	case strings.HasSuffix(rest, "/status"):
		if r.Method != http.MethodGet {
			respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		if id, ok := parseRecordID(w, strings.TrimSuffix(rest, "/status")); ok {
			h.Status(w, r, id)
		}
	default:
		respondError(w, http.StatusNotFound, "Not found")
	}
}

func parseRecordID(w http.ResponseWriter, s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid record id")
		return 0, false
	}
	return id, true
}

// SendReport generates the PDF and emails it to the technician with
// the support copy. Generation failure and transmission failure are
// reported separately: after a transmission failure the artifact is
// kept so transmission can be retried without regenerating.
func (h *RecordsHandler) SendReport(w http.ResponseWriter, r *http.Request, recordID int64) {
	ctx := r.Context()

	rec, err := h.repo.Get(ctx, recordID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			respondError(w, http.StatusNotFound, "Record not found")
			return
		}
		h.logger.Error("Record fetch failed", zap.Int64("record_id", recordID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}

	pdfPath, err := h.generator.Generate(rec, recordID)
	if err != nil {
		h.logger.Error("Report generation failed", zap.Int64("record_id", recordID), zap.Error(err))
		_ = h.status.Set(ctx, recordID, store.StatusFailed)
		respondError(w, http.StatusInternalServerError, "Report generation failed")
		return
	}
	_ = h.status.Set(ctx, recordID, store.StatusGenerated)

	err = h.sender.SendReport(mailer.SendReportInput{
		TechEmail:     rec.Str("tech_email"),
		TechName:      rec.Str("tech_name"),
		PDFPath:       pdfPath,
		RecordID:      recordID,
		JSISType:      rec.Str("jsis_type"),
		HomeownerName: rec.Str("homeowner_name"),
	})
	if err != nil {
		h.logger.Error("Report email failed", zap.Int64("record_id", recordID), zap.Error(err))
		respondError(w, http.StatusBadGateway, "Report generated but email failed: "+err.Error())
		return
	}
	_ = h.status.Set(ctx, recordID, store.StatusEmailed)
	h.sender.Cleanup(pdfPath)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"record_id": recordID,
		"message":   "Report emailed successfully",
	})
}

// Status reports the record's latest pipeline state, falling back to
// the persisted row status when the tracker has no entry.
func (h *RecordsHandler) Status(w http.ResponseWriter, r *http.Request, recordID int64) {
	ctx := r.Context()

	status, err := h.status.Get(ctx, recordID)
	if err != nil {
		if !errors.Is(err, store.ErrMiss) {
			h.logger.Warn("Status lookup failed", zap.Int64("record_id", recordID), zap.Error(err))
		}
		rec, err := h.repo.Get(ctx, recordID)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				respondError(w, http.StatusNotFound, "Record not found")
				return
			}
			respondError(w, http.StatusInternalServerError, "Database error")
			return
		}
		status = rec.Str("status")
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"record_id": recordID,
		"status":    status,
	})
}
