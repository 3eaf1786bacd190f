package domain

import (
	"time"
)

type Role string

const (
	RoleScribe    Role = "Scribe"
	RolePhysician Role = "Physician"
	RoleMLP       Role = "MLP"
	RoleUnknown   Role = "Unknown"
)

// RawShiftRecord is one entry extracted from a printable schedule document.
// It lives only for the duration of a run; the sync engine consumes it
// immediately and never stores it as-is.
type RawShiftRecord struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Zone   string `json:"zone"`
	Time   string `json:"time"` // raw "HHMM-HHMM"-like text
	Person string `json:"person"`
	Role   Role   `json:"role"`
	Site   string `json:"site"`
}

type Scribe struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	StandardizedName string    `json:"standardizedName"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Provider rows are owned by the provider-management surface; the sync
// engine only reads them and never creates one on its own.
type Provider struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ShiftRecord struct {
	ID         int64     `json:"id"`
	Date       time.Time `json:"date"`
	Zone       string    `json:"zone"`
	StartTime  string    `json:"startTime"` // HHMM
	EndTime    string    `json:"endTime"`   // HHMM
	Site       string    `json:"site"`
	ScribeID   *int64    `json:"scribeId"`
	ProviderID *int64    `json:"providerId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ShiftRecordDetail joins the names used by the read API.
type ShiftRecordDetail struct {
	ShiftRecord
	ScribeName   *string `json:"scribeName"`
	ProviderName *string `json:"providerName"`
}

// ScrapeResult is the summary returned from one full scrape-and-sync run.
// Success is false only when the run aborted on a fatal error; a true
// Success with a non-empty Errors list is a partial success.
type ScrapeResult struct {
	Success       bool     `json:"success"`
	ShiftsScraped int      `json:"shiftsScraped"`
	ShiftsCreated int      `json:"shiftsCreated"`
	ShiftsUpdated int      `json:"shiftsUpdated"`
	Errors        []string `json:"errors"`
	Timestamp     string   `json:"timestamp"` // ISO-8601
}
