package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/ocscribes/shift-sync/backend/internal/domain"
)

// UpsertShiftRecord writes one shift keyed by (date, zone, start_time,
// scribe_id). The table carries a UNIQUE NULLS NOT DISTINCT index on that
// key so provider-only rows (scribe_id NULL) collapse onto each other
// instead of duplicating. The xmax trick distinguishes a fresh insert
// from an overwrite in one round trip.
func (r *Repository) UpsertShiftRecord(record *domain.ShiftRecord) (created bool, err error) {
	query := `
		INSERT INTO shift_records (date, zone, start_time, end_time, site, scribe_id, provider_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (date, zone, start_time, scribe_id) DO UPDATE SET
			end_time = EXCLUDED.end_time,
			site = EXCLUDED.site,
			provider_id = EXCLUDED.provider_id
		RETURNING id, created_at, (xmax = 0) AS inserted
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{record.Date, record.Zone, record.StartTime, record.EndTime, record.Site, record.ScribeID, record.ProviderID}
	dst := []any{&record.ID, &record.CreatedAt, &created}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return false, err
	}

	return created, nil
}

// CleanDuplicateShifts removes rows that predate the natural-key index,
// keeping the oldest row of each fully identical group.
func (r *Repository) CleanDuplicateShifts() (int64, error) {
	query := `
		DELETE FROM shift_records WHERE id IN (
			SELECT id FROM (
				SELECT id, ROW_NUMBER() OVER (
					PARTITION BY date, zone, start_time, scribe_id, provider_id
					ORDER BY created_at, id
				) AS rn
				FROM shift_records
			) ranked
			WHERE ranked.rn > 1
		)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	res, err := r.dbpool.ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (r *Repository) ResetShiftRecords() (int64, error) {
	query := `
		DELETE FROM shift_records
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	res, err := r.dbpool.ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

const shiftDetailColumns = `
	sr.id, sr.date, sr.zone, sr.start_time, sr.end_time, sr.site,
	sr.scribe_id, sr.provider_id, sr.created_at,
	s.standardized_name, p.name
`

func (r *Repository) GetShiftsForDate(date time.Time) ([]*domain.ShiftRecordDetail, error) {
	query := `
		SELECT ` + shiftDetailColumns + `
		FROM shift_records sr
		LEFT JOIN scribes s ON s.id = sr.scribe_id
		LEFT JOIN providers p ON p.id = sr.provider_id
		WHERE sr.date = $1
		ORDER BY sr.start_time, sr.zone
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShiftDetails(rows)
}

func (r *Repository) GetShiftsInRange(start, end time.Time) ([]*domain.ShiftRecordDetail, error) {
	query := `
		SELECT ` + shiftDetailColumns + `
		FROM shift_records sr
		LEFT JOIN scribes s ON s.id = sr.scribe_id
		LEFT JOIN providers p ON p.id = sr.provider_id
		WHERE sr.date BETWEEN $1 AND $2
		ORDER BY sr.date, sr.start_time, sr.zone
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShiftDetails(rows)
}

// GetCurrentShifts returns the shifts covering the given wall-clock
// moment. Overnight shifts (end_time < start_time) are matched on both
// the starting and the following day.
func (r *Repository) GetCurrentShifts(now time.Time) ([]*domain.ShiftRecordDetail, error) {
	query := `
		SELECT ` + shiftDetailColumns + `
		FROM shift_records sr
		LEFT JOIN scribes s ON s.id = sr.scribe_id
		LEFT JOIN providers p ON p.id = sr.provider_id
		WHERE
			(sr.date = $1 AND sr.start_time <= $2 AND (sr.end_time > $2 OR sr.end_time < sr.start_time))
			OR (sr.date = $3 AND sr.end_time < sr.start_time AND sr.end_time > $2)
		ORDER BY sr.start_time, sr.zone
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	hhmm := now.Format("1504")

	rows, err := r.dbpool.QueryContext(ctx, query, today, hhmm, today.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShiftDetails(rows)
}

func scanShiftDetails(rows *sql.Rows) ([]*domain.ShiftRecordDetail, error) {
	details := make([]*domain.ShiftRecordDetail, 0)
	for rows.Next() {
		detail := &domain.ShiftRecordDetail{}
		dst := []any{
			&detail.ID, &detail.Date, &detail.Zone, &detail.StartTime, &detail.EndTime, &detail.Site,
			&detail.ScribeID, &detail.ProviderID, &detail.CreatedAt,
			&detail.ScribeName, &detail.ProviderName,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		details = append(details, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}
