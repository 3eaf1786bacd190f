package validators

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ocscribes/shift-sync/backend/internal/domain"
)

type ValidationResult struct {
	Valid  bool
	Errors []string
}

func invalid(msgs ...string) ValidationResult {
	return ValidationResult{Valid: false, Errors: msgs}
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDateString checks the strict YYYY-MM-DD shape and rejects dates
// whose components do not survive reconstruction (e.g. 2023-02-30, which
// time.Date would silently normalize to March 2).
func ValidateDateString(dateStr string) ValidationResult {
	if !datePattern.MatchString(dateStr) {
		return invalid("date must be in YYYY-MM-DD format")
	}

	year, _ := strconv.Atoi(dateStr[0:4])
	month, _ := strconv.Atoi(dateStr[5:7])
	day, _ := strconv.Atoi(dateStr[8:10])

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return invalid("invalid date")
	}

	return ValidationResult{Valid: true, Errors: []string{}}
}

var timePattern = regexp.MustCompile(`^\d{4}-\d{4}$`)

// ValidateTimeString accepts HHMM-HHMM or HH:MM-HH:MM. Both halves are
// range-checked independently; start >= end is allowed since overnight
// shifts are representable upstream.
func ValidateTimeString(timeStr string) ValidationResult {
	cleanTime := strings.ReplaceAll(timeStr, ":", "")

	if !timePattern.MatchString(cleanTime) {
		return invalid("time must be in HHMM-HHMM or HH:MM-HH:MM format")
	}

	startStr, endStr, _ := strings.Cut(cleanTime, "-")
	startHour, _ := strconv.Atoi(startStr[0:2])
	startMin, _ := strconv.Atoi(startStr[2:4])
	endHour, _ := strconv.Atoi(endStr[0:2])
	endMin, _ := strconv.Atoi(endStr[2:4])

	errs := []string{}
	if startHour > 23 {
		errs = append(errs, "start hour must be between 00 and 23")
	}
	if endHour > 23 {
		errs = append(errs, "end hour must be between 00 and 23")
	}
	if startMin > 59 {
		errs = append(errs, "start minute must be between 00 and 59")
	}
	if endMin > 59 {
		errs = append(errs, "end minute must be between 00 and 59")
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

type ShiftQueryParams struct {
	Date      string
	StartDate string
	EndDate   string
}

const maxQueryRangeDays = 90

// ValidateShiftQueryParams checks the inbound read-API parameters: each
// provided date must be well formed, startDate must not follow endDate,
// and a range query is capped at 90 days.
func ValidateShiftQueryParams(params ShiftQueryParams) ValidationResult {
	errs := []string{}

	hasRange := params.StartDate != "" || params.EndDate != ""
	switch {
	case params.Date == "" && !hasRange:
		errs = append(errs, "either date or startDate and endDate are required")
	case params.Date != "" && hasRange:
		errs = append(errs, "date cannot be combined with startDate/endDate")
	case hasRange && (params.StartDate == "" || params.EndDate == ""):
		errs = append(errs, "startDate and endDate must be given together")
	}

	if params.Date != "" && !ValidateDateString(params.Date).Valid {
		errs = append(errs, "invalid date format, expected YYYY-MM-DD")
	}
	if params.StartDate != "" && !ValidateDateString(params.StartDate).Valid {
		errs = append(errs, "invalid startDate format, expected YYYY-MM-DD")
	}
	if params.EndDate != "" && !ValidateDateString(params.EndDate).Valid {
		errs = append(errs, "invalid endDate format, expected YYYY-MM-DD")
	}

	if len(errs) == 0 && params.StartDate != "" && params.EndDate != "" {
		start, _ := time.Parse("2006-01-02", params.StartDate)
		end, _ := time.Parse("2006-01-02", params.EndDate)
		if start.After(end) {
			errs = append(errs, "startDate must not be after endDate")
		} else if end.Sub(start) > maxQueryRangeDays*24*time.Hour {
			errs = append(errs, fmt.Sprintf("date range cannot exceed %d days", maxQueryRangeDays))
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// SanitizeShiftData trims every string field, upper-cases the zone label
// and strips colon separators from the raw time range so downstream
// parsing always sees HHMM-HHMM shaped text.
func SanitizeShiftData(rec domain.RawShiftRecord) domain.RawShiftRecord {
	return domain.RawShiftRecord{
		Date:   strings.TrimSpace(rec.Date),
		Zone:   strings.ToUpper(strings.TrimSpace(rec.Zone)),
		Time:   strings.TrimSpace(strings.ReplaceAll(rec.Time, ":", "")),
		Person: strings.TrimSpace(rec.Person),
		Role:   rec.Role,
		Site:   strings.TrimSpace(rec.Site),
	}
}

// ParseTimeRange splits a raw time range on "-" and zero-pads each half to
// four digits. It never swaps the halves, even when the numeric start
// exceeds the end.
func ParseTimeRange(timeRange string) (start string, end string, err error) {
	start, end, ok := strings.Cut(timeRange, "-")
	if !ok || start == "" || end == "" {
		return "", "", fmt.Errorf("invalid time range: %q", timeRange)
	}

	return padTime(start), padTime(end), nil
}

func padTime(t string) string {
	for len(t) < 4 {
		t = "0" + t
	}
	return t
}
