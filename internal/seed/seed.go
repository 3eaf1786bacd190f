package seed

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/ocscribes/shift-sync/backend/internal/domain"
	"github.com/ocscribes/shift-sync/backend/internal/names"
	"github.com/ocscribes/shift-sync/backend/internal/repository"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the stable provider slug from a display name:
// lowercase, honorifics and credentials dropped, word runs joined with
// hyphens. "Dr. John Smith" and "John Smith, MD" share a slug.
func Slugify(name string) string {
	lower := strings.ToLower(name)
	lower = strings.TrimPrefix(lower, "dr. ")
	lower = strings.TrimPrefix(lower, "dr ")
	if idx := strings.Index(lower, ","); idx >= 0 {
		lower = lower[:idx]
	}
	return strings.Trim(nonSlugChars.ReplaceAllString(lower, "-"), "-")
}

// SeedProviders inserts every provider named in the built-in legend.
// Existing rows are left untouched, so reseeding an initialized database
// is a no-op.
func SeedProviders(repo *repository.Repository) {
	legend := names.DefaultLegend()

	inserted := 0
	for _, table := range []map[string]string{legend.Physicians, legend.MLPs} {
		for _, name := range table {
			provider := &domain.Provider{
				Name: name,
				Slug: Slugify(name),
			}

			if err := repo.CreateProvider(provider); err != nil {
				slog.Error("failed to seed provider", "name", name, "error", err)
				continue
			}

			inserted++
		}
	}

	slog.Info("provider seeding finished", "providers", inserted)
}
