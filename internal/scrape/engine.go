package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/ocscribes/shift-sync/backend/internal/domain"
	"github.com/ocscribes/shift-sync/backend/internal/names"
	"github.com/ocscribes/shift-sync/backend/internal/parser"
	"github.com/ocscribes/shift-sync/backend/internal/validators"
)

// Engine runs one full scrape-and-sync pass: log in, walk every
// configured site, parse each published schedule, and upsert the
// resulting shift records. Runs are idempotent; repeating a run against
// an unchanged portal updates every record in place and creates none.
type Engine struct {
	sites        []domain.Site
	portal       Portal
	store        Store
	standardizer *names.Standardizer
}

func NewEngine(sites []domain.Site, p Portal, store Store, standardizer *names.Standardizer) *Engine {
	return &Engine{
		sites:        sites,
		portal:       p,
		store:        store,
		standardizer: standardizer,
	}
}

var (
	honorificPrefix = regexp.MustCompile(`(?i)^dr\.?\s+`)
	credentialTail  = regexp.MustCompile(`(?i),\s*(PA-C|NP|PA|MD|DO)\s*$`)
)

// Run executes one pass and always returns a result, even on fatal
// failure. Success is false only when authentication failed; all other
// errors are recorded per-record and the run keeps going.
func (e *Engine) Run(ctx context.Context) domain.ScrapeResult {
	result := domain.ScrapeResult{
		Success:   true,
		Errors:    []string{},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := e.standardizer.LoadLegend(); err != nil {
		// the standardizer falls back to its built-in defaults
		slog.Warn("failed to load name legend", "error", err)
	}

	ok, err := e.portal.Login(ctx)
	if err != nil || !ok {
		if err != nil {
			slog.Error("portal login failed", "error", err)
		}
		result.Success = false
		result.Errors = append(result.Errors, "Authentication failed")
		return result
	}

	collector := names.NewCollector()

	for _, site := range e.sites {
		if !e.portal.ChangeSite(ctx, site.ID, site.Name) {
			result.Errors = append(result.Errors, "Failed to change to site: "+site.Name)
			continue
		}

		schedules := e.portal.FetchSchedules(ctx)
		slog.Info("fetched schedule listing", "site", site.Name, "schedules", len(schedules))

		for _, schedule := range schedules {
			document, ok := e.portal.GetPrintableSchedule(ctx, schedule.ID)
			if !ok {
				result.Errors = append(result.Errors, fmt.Sprintf("Failed to fetch schedule %s (%s)", schedule.Title, site.Name))
				continue
			}

			records, err := parser.ParseCalendar(document, site.Name)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("Failed to parse schedule %s: %v", schedule.Title, err))
				continue
			}

			for _, raw := range records {
				result.ShiftsScraped++
				e.syncRecord(raw, collector, &result)
			}
		}
	}

	if err := e.standardizer.SaveUpdates(collector); err != nil {
		slog.Warn("failed to persist legend updates", "error", err)
	}

	slog.Info("scrape run finished",
		"scraped", result.ShiftsScraped,
		"created", result.ShiftsCreated,
		"updated", result.ShiftsUpdated,
		"errors", len(result.Errors),
	)
	return result
}

// syncRecord writes one raw record through standardization into the
// store. Failures append to the result's error list and leave the
// remaining records untouched.
func (e *Engine) syncRecord(raw domain.RawShiftRecord, collector *names.Collector, result *domain.ScrapeResult) {
	raw = validators.SanitizeShiftData(raw)

	// bare "TIME: Person" entries carry no zone label
	if raw.Zone == "" {
		raw.Zone = "Unknown"
	}

	start, end, err := validators.ParseTimeRange(raw.Time)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid time range %q for %s on %s", raw.Time, raw.Person, raw.Date))
		return
	}

	date, err := time.Parse("2006-01-02", raw.Date)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid date %q for %s", raw.Date, raw.Person))
		return
	}

	record := &domain.ShiftRecord{
		Date:      date,
		Zone:      raw.Zone,
		StartTime: start,
		EndTime:   end,
		Site:      raw.Site,
	}

	standardized := e.standardizer.Standardize(raw.Person, raw.Role, collector)

	switch raw.Role {
	case domain.RoleScribe:
		scribe, err := e.store.FindOrCreateScribe(raw.Person, standardized.Name)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to resolve scribe %s: %v", raw.Person, err))
			return
		}
		record.ScribeID = &scribe.ID
	default:
		provider, err := e.findProvider(standardized.Name)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to look up provider %s: %v", standardized.Name, err))
			return
		}
		if provider == nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Provider not found: %s (%s)", standardized.Name, raw.Role))
			return
		}
		record.ProviderID = &provider.ID
	}

	created, err := e.store.UpsertShiftRecord(record)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to save shift for %s on %s: %v", raw.Person, raw.Date, err))
		return
	}

	if created {
		result.ShiftsCreated++
	} else {
		result.ShiftsUpdated++
	}
}

// findProvider resolves a standardized name against the provider table:
// exact match first, then a substring match on the honorific-stripped
// name, then on its last token (the bare surname).
func (e *Engine) findProvider(name string) (*domain.Provider, error) {
	provider, err := e.store.FindProviderExact(name)
	if err != nil || provider != nil {
		return provider, err
	}

	stripped := credentialTail.ReplaceAllString(honorificPrefix.ReplaceAllString(name, ""), "")
	stripped = strings.TrimSpace(stripped)
	if stripped == "" {
		return nil, nil
	}

	provider, err = e.store.FindProviderMatching(stripped)
	if err != nil || provider != nil {
		return provider, err
	}

	tokens := strings.Fields(stripped)
	last := tokens[len(tokens)-1]
	if last == stripped {
		return nil, nil
	}

	return e.store.FindProviderMatching(last)
}
