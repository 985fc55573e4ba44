package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*PostgresRecordsRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRecordsRepo(db), mock
}

func TestPostgresInsertBuildsSortedColumnList(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO jsis_records (jsis_type, status, tech_name) VALUES ($1, $2, $3) RETURNING record_id",
	)).
		WithArgs("ac", "submitted", "Jane Doe").
		WillReturnRows(sqlmock.NewRows([]string{"record_id"}).AddRow(int64(17)))

	id, err := repo.Insert(context.Background(), map[string]any{
		"tech_name": "Jane Doe",
		"jsis_type": "ac",
		"status":    "submitted",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(17), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresInsertRejectsEmptyFields(t *testing.T) {
	repo, _ := newMockRepo(t)
	_, err := repo.Insert(context.Background(), map[string]any{})
	assert.Error(t, err)
}

func TestPostgresInsertWrapsDriverError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO jsis_records").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.Insert(context.Background(), map[string]any{"jsis_type": "ac"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert jsis record")
}

func TestPostgresGetNormalizesBytes(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"record_id", "jsis_type", "tech_name", "superheat"}).
		AddRow(int64(5), []byte("heatpump"), []byte("Jane Doe"), 12.5)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM jsis_records WHERE record_id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	rec, err := repo.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "heatpump", rec["jsis_type"], "byte columns come back as strings")
	assert.Equal(t, "Jane Doe", rec["tech_name"])
	assert.Equal(t, 12.5, rec["superheat"])
	assert.Equal(t, int64(5), rec["record_id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM jsis_records WHERE record_id = $1")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"record_id"}))

	_, err := repo.Get(context.Background(), 99)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestPostgresListScansSummaries(t *testing.T) {
	repo, mock := newMockRepo(t)

	cols := []string{
		"record_id", "jsis_type", "tech_name", "tech_email", "company_name",
		"homeowner_name", "service_date", "status", "submitted_at",
	}
	rows := sqlmock.NewRows(cols).
		AddRow(int64(2), "heatpump", "Jane Doe", "jane@example.com", "Acme HVAC",
			"B. Smith", "2025-03-14", "emailed", "2025-03-14 09:30:00").
		AddRow(int64(1), "ac", "", "", "", "", "", "submitted", "")
	mock.ExpectQuery("SELECT(.|\n)+FROM jsis_records(.|\n)+ORDER BY record_id DESC").
		WithArgs(50, 0).
		WillReturnRows(rows)

	summaries, err := repo.List(context.Background(), 50, 0)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, int64(2), summaries[0].RecordID)
	assert.Equal(t, "Jane Doe", summaries[0].TechName)
	assert.Equal(t, "emailed", summaries[0].Status)
	assert.Equal(t, int64(1), summaries[1].RecordID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListClampsPaging(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT(.|\n)+FROM jsis_records").
		WithArgs(100, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"record_id", "jsis_type", "tech_name", "tech_email", "company_name",
			"homeowner_name", "service_date", "status", "submitted_at",
		}))

	summaries, err := repo.List(context.Background(), 0, -5)
	require.NoError(t, err)
	assert.Empty(t, summaries)
	assert.NoError(t, mock.ExpectationsWereMet())
}
