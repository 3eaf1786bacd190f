package scrape

import (
	"context"

	"github.com/ocscribes/shift-sync/backend/internal/domain"
	"github.com/ocscribes/shift-sync/backend/internal/portal"
)

// Store is the durable-state surface the engine needs. *repository.Repository
// satisfies it; tests substitute an in-memory fake.
type Store interface {
	FindOrCreateScribe(name, standardizedName string) (*domain.Scribe, error)
	FindProviderExact(name string) (*domain.Provider, error)
	FindProviderMatching(fragment string) (*domain.Provider, error)
	UpsertShiftRecord(record *domain.ShiftRecord) (created bool, err error)
}

// Portal is the navigation surface the engine drives. *portal.Navigator
// satisfies it.
type Portal interface {
	Login(ctx context.Context) (bool, error)
	ChangeSite(ctx context.Context, siteID, siteName string) bool
	FetchSchedules(ctx context.Context) []portal.ScheduleInfo
	GetPrintableSchedule(ctx context.Context, scheduleID string) (string, bool)
}
