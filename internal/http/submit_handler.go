package httpapi

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"ejsis-server/internal/repository"
	"ejsis-server/internal/store"
)

// SubmitHandler accepts the sectioned JSON form payload and persists
// one jsis_records row.
type SubmitHandler struct {
	repo   repository.RecordsRepo
	status *store.StatusStore
	logger *zap.Logger
}

func NewSubmitHandler(repo repository.RecordsRepo, status *store.StatusStore, logger *zap.Logger) *SubmitHandler {
	return &SubmitHandler{repo: repo, status: status, logger: logger}
}

// Submit handles POST /api/v1/jsis/submit.
func (h *SubmitHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload map[string]map[string]any
	if err := readBodyJSON(r, 1<<20, &payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	fields := flattenSubmission(payload)
	fields["status"] = "submitted"
	fields["submitted_at"] = time.Now().Format("2006-01-02 15:04:05")

	if v, ok := fields["jsis_type"]; !ok || v == nil || v == "" {
		respondError(w, http.StatusBadRequest, "JSIS type is required")
		return
	}

	recordID, err := h.repo.Insert(ctx, fields)
	if err != nil {
		h.logger.Error("JSIS submit failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := h.status.Set(ctx, recordID, store.StatusSubmitted); err != nil {
		h.logger.Warn("Failed to track submission status", zap.Int64("record_id", recordID), zap.Error(err))
	}

	h.logger.Info("Stored JSIS submission", zap.Int64("record_id", recordID))
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"record_id": recordID,
		"message":   "JSIS record saved successfully",
	})
}

// flattenSubmission walks the section whitelist and maps kebab-case
// field ids onto snake_case columns. Checkbox booleans become 1/0 and
// empty strings become NULL, preserving the presence semantics the
// renderer relies on (a stored "0" stays a reading, a blank stays
// absent).
func flattenSubmission(payload map[string]map[string]any) map[string]any {
	fields := make(map[string]any)
	for _, section := range repository.FormSections {
		sectionData, ok := payload[section.Key]
		if !ok {
			continue
		}
		for _, fieldID := range section.Fields {
			value, ok := sectionData[fieldID]
			if !ok {
				continue
			}
			if b, isBool := value.(bool); isBool {
				if b {
					value = 1
				} else {
					value = 0
				}
			}
			if value == "" {
				value = nil
			}
			fields[repository.ColumnFor(fieldID)] = value
		}
	}
	return fields
}
