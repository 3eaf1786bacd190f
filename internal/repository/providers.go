package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/ocscribes/shift-sync/backend/internal/domain"
)

// FindProviderExact looks up a provider by case-insensitive full name.
// A miss returns (nil, nil) so callers can fall through to fuzzier
// matching without unwrapping sql.ErrNoRows themselves.
func (r *Repository) FindProviderExact(name string) (*domain.Provider, error) {
	query := `
		SELECT id, name, slug FROM providers WHERE LOWER(name) = LOWER($1)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	provider := &domain.Provider{}
	dst := []any{&provider.ID, &provider.Name, &provider.Slug}
	if err := r.dbpool.QueryRowContext(ctx, query, name).Scan(dst...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return provider, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLikePattern neutralizes LIKE metacharacters in a scraped name so
// a literal %, _ or \ matches itself instead of acting as a wildcard.
func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}

// FindProviderMatching is the substring fallback for names the portal
// abbreviates. Results are ordered by name length so the tightest match
// wins when several rows contain the fragment.
func (r *Repository) FindProviderMatching(fragment string) (*domain.Provider, error) {
	query := `
		SELECT id, name, slug FROM providers
		WHERE name ILIKE '%' || $1 || '%' ESCAPE '\'
		ORDER BY LENGTH(name) LIMIT 1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	provider := &domain.Provider{}
	dst := []any{&provider.ID, &provider.Name, &provider.Slug}
	if err := r.dbpool.QueryRowContext(ctx, query, escapeLikePattern(fragment)).Scan(dst...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return provider, nil
}

func (r *Repository) CreateProvider(provider *domain.Provider) error {
	query := `
		INSERT INTO providers (name, slug)
		VALUES ($1, $2)
		ON CONFLICT (slug) DO NOTHING
		RETURNING id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, provider.Name, provider.Slug).Scan(&provider.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Already seeded; leave the existing row untouched.
			return nil
		}
		return err
	}

	return nil
}

func (r *Repository) GetAllProviders() ([]*domain.Provider, error) {
	query := `
		SELECT id, name, slug FROM providers ORDER BY name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	providers := make([]*domain.Provider, 0)
	for rows.Next() {
		provider := &domain.Provider{}
		dst := []any{&provider.ID, &provider.Name, &provider.Slug}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return providers, nil
}
