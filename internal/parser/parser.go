package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/ocscribes/shift-sync/backend/internal/domain"
)

var (
	monthYearPattern = regexp.MustCompile(`([A-Za-z]+\s+\d{4})`)
	dateRangePattern = regexp.MustCompile(`\((\d{2}/\d{2}/\d{4})`)
	dayNumberPattern = regexp.MustCompile(`^\d+$`)
)

// RoleFromSite derives the role for every entry of a document from the
// source site's name. The portal publishes one site per role, so the role
// is per-site, never per-entry.
func RoleFromSite(siteName string) domain.Role {
	lower := strings.ToLower(siteName)
	switch {
	case strings.Contains(lower, "scribe"):
		return domain.RoleScribe
	case strings.Contains(lower, "physician"):
		return domain.RolePhysician
	case strings.Contains(lower, "mlp"):
		return domain.RoleMLP
	default:
		return domain.RoleUnknown
	}
}

// ParseCalendar turns one printable schedule document into the ordered
// sequence of raw shift records it contains. It is a pure transformation:
// same document in, same records out. A nil slice with a nil error means
// the month/year header could not be located, which is the only
// total-failure case; individually malformed entries degrade through the
// rule cascade instead.
func ParseCalendar(htmlContent string, siteName string) ([]domain.RawShiftRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	month, year, ok := extractMonthYear(doc)
	if !ok {
		return nil, nil
	}

	role := RoleFromSite(siteName)

	var records []domain.RawShiftRecord
	doc.Find(`td[style*="vertical-align:text-top"]`).Each(func(_ int, dayCell *goquery.Selection) {
		dayDiv := dayCell.Find(`div[style*="font-size:12px"]`).First()
		if dayDiv.Length() == 0 {
			return
		}

		dayNum := strings.TrimSpace(dayDiv.Text())
		if !dayNumberPattern.MatchString(dayNum) {
			return
		}

		day, _ := strconv.Atoi(dayNum)
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if date.Day() != day || date.Month() != month {
			// day number outside the header month, e.g. 32
			return
		}
		dateStr := date.Format("2006-01-02")

		// shift entries live in spans; notes in <pre> blocks are ignored
		dayCell.Find("span").Each(func(_ int, span *goquery.Selection) {
			shiftText := strings.TrimSpace(span.Text())
			if shiftText == "" {
				return
			}

			entry := parseShiftText(shiftText)
			person := normalizePerson(entry.Person)
			if person == emptySentinel {
				return
			}

			records = append(records, domain.RawShiftRecord{
				Date:   dateStr,
				Zone:   strings.TrimSpace(entry.Label),
				Time:   strings.TrimSpace(entry.Time),
				Person: person,
				Role:   role,
				Site:   siteName,
			})
		})
	})

	return records, nil
}

// extractMonthYear locates the document's month/year header. Strategy one
// is a direct "Month YYYY" match in the bold header region; strategy two
// falls back to the MM/DD/YYYY token of the date-range caption.
func extractMonthYear(doc *goquery.Document) (time.Month, int, bool) {
	header := doc.Find(`div[style*="font-weight:bold"][style*="font-size:16px"]`).First()
	if header.Length() == 0 {
		return 0, 0, false
	}

	headerText := strings.TrimSpace(header.Text())

	if m := monthYearPattern.FindStringSubmatch(headerText); m != nil {
		if t, err := time.Parse("January 2006", m[1]); err == nil {
			return t.Month(), t.Year(), true
		}
	}

	if m := dateRangePattern.FindStringSubmatch(headerText); m != nil {
		if t, err := time.Parse("01/02/2006", m[1]); err == nil {
			return t.Month(), t.Year(), true
		}
	}

	return 0, 0, false
}
