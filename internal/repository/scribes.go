package repository

import (
	"context"
	"time"

	"github.com/ocscribes/shift-sync/backend/internal/domain"
)

// FindOrCreateScribe resolves a raw calendar name to a scribes row,
// inserting it on first sight. The conflict clause keeps the stored
// standardized name in step with the current derivation.
func (r *Repository) FindOrCreateScribe(name, standardizedName string) (*domain.Scribe, error) {
	query := `
		INSERT INTO scribes (name, standardized_name)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET standardized_name = EXCLUDED.standardized_name
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	scribe := &domain.Scribe{
		Name:             name,
		StandardizedName: standardizedName,
	}

	dst := []any{&scribe.ID, &scribe.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, name, standardizedName).Scan(dst...); err != nil {
		return nil, err
	}

	return scribe, nil
}

func (r *Repository) GetAllScribes() ([]*domain.Scribe, error) {
	query := `
		SELECT id, name, standardized_name, created_at FROM scribes ORDER BY name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	scribes := make([]*domain.Scribe, 0)
	for rows.Next() {
		scribe := &domain.Scribe{}
		dst := []any{&scribe.ID, &scribe.Name, &scribe.StandardizedName, &scribe.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		scribes = append(scribes, scribe)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return scribes, nil
}
