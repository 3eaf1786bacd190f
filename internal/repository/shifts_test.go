package repository

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ocscribes/shift-sync/backend/internal/config"

	_ "modernc.org/sqlite"
)

// The duplicate-cleanup and reset statements are plain SQL (window
// function plus DELETE), so they run unchanged against an in-memory
// sqlite database. The upsert is exercised at the engine level instead;
// its ON CONFLICT clause needs postgres.
func newShiftTestRepository(t *testing.T) *Repository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// every pool connection would get its own empty :memory: database
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`
		CREATE TABLE shift_records (
			id INTEGER PRIMARY KEY,
			date TEXT NOT NULL,
			zone TEXT NOT NULL,
			start_time TEXT NOT NULL,
			end_time TEXT NOT NULL,
			site TEXT NOT NULL,
			scribe_id INTEGER,
			provider_id INTEGER,
			created_at TEXT NOT NULL
		)
	`)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Database.QueryTimeout = 5
	return NewRepository(cfg, db)
}

func insertShiftRow(t *testing.T, r *Repository, id int64, zone string, scribeID, providerID any, createdAt string) {
	t.Helper()

	_, err := r.dbpool.Exec(`
		INSERT INTO shift_records (id, date, zone, start_time, end_time, site, scribe_id, provider_id, created_at)
		VALUES (?, '2024-01-15', ?, '0600', '1400', 'St Joseph Scribe', ?, ?, ?)
	`, id, zone, scribeID, providerID, createdAt)
	require.NoError(t, err)
}

func remainingShiftIDs(t *testing.T, r *Repository) []int64 {
	t.Helper()

	rows, err := r.dbpool.Query(`SELECT id FROM shift_records ORDER BY id`)
	require.NoError(t, err)
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	return ids
}

func TestCleanDuplicateShiftsKeepsOldest(t *testing.T) {
	repo := newShiftTestRepository(t)

	// three rows sharing the full tuple, distinct created_at
	insertShiftRow(t, repo, 1, "A", 10, nil, "2024-01-16T08:00:00Z")
	insertShiftRow(t, repo, 2, "A", 10, nil, "2024-01-16T09:00:00Z")
	insertShiftRow(t, repo, 3, "A", 10, nil, "2024-01-16T10:00:00Z")

	// same key except provider: a distinct group, must survive
	insertShiftRow(t, repo, 4, "A", 10, 7, "2024-01-16T11:00:00Z")

	// provider-only duplicate pair (scribe_id NULL groups together)
	insertShiftRow(t, repo, 5, "MD", nil, 7, "2024-01-16T08:30:00Z")
	insertShiftRow(t, repo, 6, "MD", nil, 7, "2024-01-16T09:30:00Z")

	removed, err := repo.CleanDuplicateShifts()
	require.NoError(t, err)
	require.Equal(t, int64(3), removed)

	// the oldest row of each duplicated group survives
	require.Equal(t, []int64{1, 4, 5}, remainingShiftIDs(t, repo))
}

func TestCleanDuplicateShiftsBreaksCreatedAtTiesByID(t *testing.T) {
	repo := newShiftTestRepository(t)

	insertShiftRow(t, repo, 2, "B", 11, nil, "2024-01-16T08:00:00Z")
	insertShiftRow(t, repo, 1, "B", 11, nil, "2024-01-16T08:00:00Z")

	removed, err := repo.CleanDuplicateShifts()
	require.NoError(t, err)
	require.Equal(t, int64(1), removed)
	require.Equal(t, []int64{1}, remainingShiftIDs(t, repo))
}

func TestCleanDuplicateShiftsNoDuplicates(t *testing.T) {
	repo := newShiftTestRepository(t)

	insertShiftRow(t, repo, 1, "A", 10, nil, "2024-01-16T08:00:00Z")
	insertShiftRow(t, repo, 2, "B", 10, nil, "2024-01-16T08:00:00Z")

	removed, err := repo.CleanDuplicateShifts()
	require.NoError(t, err)
	require.Zero(t, removed)
	require.Equal(t, []int64{1, 2}, remainingShiftIDs(t, repo))
}

func TestResetShiftRecords(t *testing.T) {
	repo := newShiftTestRepository(t)

	insertShiftRow(t, repo, 1, "A", 10, nil, "2024-01-16T08:00:00Z")
	insertShiftRow(t, repo, 2, "B", nil, 7, "2024-01-16T09:00:00Z")

	removed, err := repo.ResetShiftRecords()
	require.NoError(t, err)
	require.Equal(t, int64(2), removed)
	require.Empty(t, remainingShiftIDs(t, repo))
}
