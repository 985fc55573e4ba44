package repository

import (
	"context"
	"sort"
	"sync"

	"ejsis-server/internal/models"
)

// MemoryRecordsRepo keeps submissions in memory. Used when the
// database is disabled (local dev) and by handler tests.
type MemoryRecordsRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]models.Record
}

func NewMemoryRecordsRepo() *MemoryRecordsRepo {
	return &MemoryRecordsRepo{nextID: 1, rows: make(map[int64]models.Record)}
}

var _ RecordsRepo = (*MemoryRecordsRepo)(nil)

func (r *MemoryRecordsRepo) Insert(_ context.Context, fields map[string]any) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++

	rec := make(models.Record, len(fields)+1)
	for k, v := range fields {
		rec[k] = v
	}
	rec["record_id"] = id
	r.rows[id] = rec
	return id, nil
}

func (r *MemoryRecordsRepo) Get(_ context.Context, recordID int64) (models.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.rows[recordID]
	if !ok {
		return nil, ErrRecordNotFound
	}
	// Snapshot copy: callers must never observe later mutations.
	snapshot := make(models.Record, len(rec))
	for k, v := range rec {
		snapshot[k] = v
	}
	return snapshot, nil
}

func (r *MemoryRecordsRepo) List(_ context.Context, limit, offset int) ([]models.RecordSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 {
		limit = 100
	}

	ids := make([]int64, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, id)
	}
	// Newest first, matching the postgres ordering.
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	var summaries []models.RecordSummary
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(summaries) >= limit {
			break
		}
		rec := r.rows[id]
		summaries = append(summaries, models.RecordSummary{
			RecordID:      id,
			JSISType:      rec.Str("jsis_type"),
			TechName:      rec.Str("tech_name"),
			TechEmail:     rec.Str("tech_email"),
			CompanyName:   rec.Str("company_name"),
			HomeownerName: rec.Str("homeowner_name"),
			ServiceDate:   rec.Str("service_date"),
			Status:        rec.Str("status"),
			SubmittedAt:   rec.Str("submitted_at"),
		})
	}
	return summaries, nil
}
