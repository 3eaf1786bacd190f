package parser

import (
	"regexp"
	"strings"
)

// shiftEntry is the structured form of one shift-text span.
type shiftEntry struct {
	Label  string
	Time   string
	Person string
}

// entryRule pairs a matcher with its extractor. Rules are evaluated in
// priority order and the first match wins, so site-specific formats must
// come before the generic ones.
type entryRule struct {
	name    string
	pattern *regexp.Regexp
	extract func(m []string) shiftEntry
}

var entryRules = []entryRule{
	{
		// site-prefixed physician format, e.g. "SJH A 0530-1400: MERJANIAN"
		name:    "site-prefixed",
		pattern: regexp.MustCompile(`(?i)^SJH\s+([A-Za-z0-9\- ]+?)\s+(\d{3,4}-\d{3,4}):\s*(.+)$`),
		extract: func(m []string) shiftEntry {
			return shiftEntry{Label: strings.TrimSpace(m[1]), Time: m[2], Person: strings.TrimSpace(m[3])}
		},
	},
	{
		// directional zones, e.g. "North 0530-1400: SHIEH"
		name:    "directional",
		pattern: regexp.MustCompile(`(?i)^(North|South|East|West|RED)\s+(\d{3,4}-\d{3,4}):\s*(.+)$`),
		extract: func(m []string) shiftEntry {
			return shiftEntry{Label: strings.TrimSpace(m[1]), Time: m[2], Person: strings.TrimSpace(m[3])}
		},
	},
	{
		// CHOC MLP entries are normalized to the fixed "PA" zone regardless
		// of the label in the text
		name:    "choc-mlp",
		pattern: regexp.MustCompile(`(?i)^CHOC\s+(?:MLP|PA|[A-Za-z0-9\- ]+?)\s+(\d{3,4}-\d{3,4}):\s*(.+)$`),
		extract: func(m []string) shiftEntry {
			return shiftEntry{Label: "PA", Time: m[1], Person: strings.TrimSpace(m[2])}
		},
	},
	{
		// generic "Label TIME: Person"
		name:    "labeled",
		pattern: regexp.MustCompile(`^([A-Za-z0-9\- ]{1,30}?)\s+(\d{3,4}-\d{3,4}):\s*(.+)$`),
		extract: func(m []string) shiftEntry {
			return shiftEntry{Label: strings.TrimSpace(m[1]), Time: m[2], Person: strings.TrimSpace(m[3])}
		},
	},
	{
		// "TIME ROLE: Person", e.g. "1000-1830 PA: Molly"
		name:    "time-role",
		pattern: regexp.MustCompile(`(?i)^(\d{3,4}-\d{3,4})\s*(PA|MD|NP|RN):\s*(.+)$`),
		extract: func(m []string) shiftEntry {
			return shiftEntry{Label: strings.ToUpper(m[2]), Time: m[1], Person: strings.TrimSpace(m[3])}
		},
	},
	{
		// "TIME (Location): Person", e.g. "1000-1800 (RED): Ahilin"
		name:    "time-location",
		pattern: regexp.MustCompile(`^(\d{3,4}-\d{3,4})\s*\(([^)]+)\):\s*(.+)$`),
		extract: func(m []string) shiftEntry {
			return shiftEntry{Label: strings.TrimSpace(m[2]), Time: m[1], Person: strings.TrimSpace(m[3])}
		},
	},
	{
		// bare "TIME: Person"
		name:    "bare-time",
		pattern: regexp.MustCompile(`^(\d{3,4}-\d{3,4}):\s*(.+)$`),
		extract: func(m []string) shiftEntry {
			return shiftEntry{Time: m[1], Person: strings.TrimSpace(m[2])}
		},
	},
}

var (
	nbspReplacer   = strings.NewReplacer(" ", " ", "​", "", "\r", " ", "\n", " ", "\t", " ")
	multiSpace     = regexp.MustCompile(`\s+`)
	colonSpacing   = regexp.MustCompile(`\s*:\s*`)
	timeRangeShape = regexp.MustCompile(`\d{3,4}-\d{3,4}`)
	siteTokens     = regexp.MustCompile(`(?i)\b(SJH|CHOC)\b`)
)

// normalizeShiftText collapses the inconsistent whitespace the portal
// emits: non-breaking and zero-width characters, CR/LF/tab, repeated
// spaces, and uneven spacing around colons.
func normalizeShiftText(s string) string {
	s = nbspReplacer.Replace(strings.TrimSpace(s))
	s = multiSpace.ReplaceAllString(s, " ")
	s = colonSpacing.ReplaceAllString(s, ": ")
	return strings.TrimSpace(s)
}

// parseShiftText runs the normalized text through the rule cascade. A
// malformed entry never fails outright: it degrades to the colon fallback
// and finally to treating the whole text as a person name.
func parseShiftText(shiftText string) shiftEntry {
	if shiftText == "" {
		return shiftEntry{}
	}

	s := normalizeShiftText(shiftText)

	for _, rule := range entryRules {
		if m := rule.pattern.FindStringSubmatch(s); m != nil {
			return rule.extract(m)
		}
	}

	// fallback: a time-range-shaped substring anywhere left of the first
	// colon; the rest of the left side (minus known site tokens) is the label
	if left, right, ok := strings.Cut(s, ":"); ok {
		left = strings.TrimSpace(left)
		if timeRange := timeRangeShape.FindString(left); timeRange != "" {
			labelPart := left[:strings.Index(left, timeRange)]
			label := strings.TrimSpace(siteTokens.ReplaceAllString(labelPart, ""))
			return shiftEntry{Label: label, Time: timeRange, Person: strings.TrimSpace(right)}
		}
	}

	// total fallback: the entire text is the person
	return shiftEntry{Person: s}
}

const emptySentinel = "EMPTY"

// normalizePerson collapses every variant of the portal's "EMPTY"
// placeholder (with or without surrounding markers) to a single sentinel.
func normalizePerson(person string) string {
	person = strings.TrimSpace(person)
	if strings.Contains(strings.ToUpper(person), emptySentinel) {
		return emptySentinel
	}
	return person
}
