package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"ejsis-server/internal/models"
)

// PostgresRecordsRepo stores JSIS submissions in the jsis_records
// table. Inserts build the column list from the whitelisted submission
// fields, so the table can grow columns without code changes here.
type PostgresRecordsRepo struct {
	db *sql.DB
}

func NewPostgresRecordsRepo(db *sql.DB) *PostgresRecordsRepo {
	return &PostgresRecordsRepo{db: db}
}

var _ RecordsRepo = (*PostgresRecordsRepo)(nil)

func (r *PostgresRecordsRepo) Insert(ctx context.Context, fields map[string]any) (int64, error) {
	if len(fields) == 0 {
		return 0, fmt.Errorf("no fields to insert")
	}

	// Sorted column order keeps the statement deterministic.
	columns := make([]string, 0, len(fields))
	for col := range fields {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	placeholders := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = fields[col]
	}

	query := fmt.Sprintf(
		"INSERT INTO jsis_records (%s) VALUES (%s) RETURNING record_id",
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)

	var recordID int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&recordID); err != nil {
		return 0, fmt.Errorf("failed to insert jsis record: %w", err)
	}
	return recordID, nil
}

// Get fetches the full row as a flat field → value snapshot. Column
// set is whatever the table has; []byte values are normalized to
// strings so the renderer sees plain text.
func (r *PostgresRecordsRepo) Get(ctx context.Context, recordID int64) (models.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT * FROM jsis_records WHERE record_id = $1", recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get jsis record: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to get jsis record: %w", err)
		}
		return nil, ErrRecordNotFound
	}

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read record columns: %w", err)
	}
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, fmt.Errorf("failed to scan jsis record: %w", err)
	}

	rec := make(models.Record, len(columns))
	for i, col := range columns {
		if b, ok := values[i].([]byte); ok {
			rec[col] = string(b)
			continue
		}
		rec[col] = values[i]
	}
	return rec, nil
}

func (r *PostgresRecordsRepo) List(ctx context.Context, limit, offset int) ([]models.RecordSummary, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT
			record_id,
			COALESCE(jsis_type, '') AS jsis_type,
			COALESCE(tech_name, '') AS tech_name,
			COALESCE(tech_email, '') AS tech_email,
			COALESCE(company_name, '') AS company_name,
			COALESCE(homeowner_name, '') AS homeowner_name,
			COALESCE(service_date, '') AS service_date,
			COALESCE(status, '') AS status,
			COALESCE(submitted_at::text, '') AS submitted_at
		FROM jsis_records
		ORDER BY record_id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list jsis records: %w", err)
	}
	defer rows.Close()

	var summaries []models.RecordSummary
	for rows.Next() {
		var s models.RecordSummary
		if err := rows.Scan(
			&s.RecordID, &s.JSISType, &s.TechName, &s.TechEmail, &s.CompanyName,
			&s.HomeownerName, &s.ServiceDate, &s.Status, &s.SubmittedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan jsis record summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list jsis records: %w", err)
	}
	return summaries, nil
}
