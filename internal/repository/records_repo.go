package repository

import (
	"context"
	"errors"

	"ejsis-server/internal/models"
)

var ErrRecordNotFound = errors.New("record not found")

// RecordsRepo persists and fetches jsis_records rows. Records are
// write-once: the renderer only ever sees immutable snapshots.
type RecordsRepo interface {
	Insert(ctx context.Context, fields map[string]any) (int64, error)
	Get(ctx context.Context, recordID int64) (models.Record, error)
	List(ctx context.Context, limit, offset int) ([]models.RecordSummary, error)
}
