package validators

import (
	"testing"

	"github.com/ocscribes/shift-sync/backend/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestValidateDateString(t *testing.T) {
	testCases := []struct {
		input string
		valid bool
	}{
		{"2024-02-29", true},
		{"2023-02-30", false},
		{"2023-13-01", false},
		{"2023-00-10", false},
		{"2023-06-00", false},
		{"2023-6-1", false},
		{"20230601", false},
		{"garbage", false},
		{"2023-06-15", true},
	}

	for _, tc := range testCases {
		result := ValidateDateString(tc.input)
		require.Equal(t, tc.valid, result.Valid, "input %q", tc.input)
	}
}

func TestValidateTimeString(t *testing.T) {
	testCases := []struct {
		input string
		valid bool
	}{
		{"0800-1600", true},
		{"08:00-16:00", true},
		{"2200-0600", true}, // overnight, deliberately not rejected
		{"2400-1600", false},
		{"0860-1600", false},
		{"0800-2460", false},
		{"800-1600", false},
		{"0800/1600", false},
		{"", false},
	}

	for _, tc := range testCases {
		result := ValidateTimeString(tc.input)
		require.Equal(t, tc.valid, result.Valid, "input %q", tc.input)
	}
}

func TestValidateShiftQueryParams(t *testing.T) {
	ok := ValidateShiftQueryParams(ShiftQueryParams{Date: "2024-01-15"})
	require.True(t, ok.Valid)

	ok = ValidateShiftQueryParams(ShiftQueryParams{StartDate: "2024-01-01", EndDate: "2024-02-01"})
	require.True(t, ok.Valid)

	reversed := ValidateShiftQueryParams(ShiftQueryParams{StartDate: "2024-02-01", EndDate: "2024-01-01"})
	require.False(t, reversed.Valid)

	tooWide := ValidateShiftQueryParams(ShiftQueryParams{StartDate: "2024-01-01", EndDate: "2024-06-01"})
	require.False(t, tooWide.Valid)

	badDate := ValidateShiftQueryParams(ShiftQueryParams{Date: "2023-02-30"})
	require.False(t, badDate.Valid)

	empty := ValidateShiftQueryParams(ShiftQueryParams{})
	require.False(t, empty.Valid)

	mixed := ValidateShiftQueryParams(ShiftQueryParams{Date: "2024-01-15", StartDate: "2024-01-01", EndDate: "2024-02-01"})
	require.False(t, mixed.Valid)

	halfRange := ValidateShiftQueryParams(ShiftQueryParams{StartDate: "2024-01-01"})
	require.False(t, halfRange.Valid)
}

func TestParseTimeRange(t *testing.T) {
	testCases := []struct {
		input string
		start string
		end   string
	}{
		{"0530-1400", "0530", "1400"},
		{"530-1400", "0530", "1400"},
		{"800-930", "0800", "0930"},
		{"2200-0600", "2200", "0600"}, // never swapped
	}

	for _, tc := range testCases {
		start, end, err := ParseTimeRange(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		require.Equal(t, tc.start, start)
		require.Equal(t, tc.end, end)
	}

	_, _, err := ParseTimeRange("0800")
	require.Error(t, err)
	_, _, err = ParseTimeRange("")
	require.Error(t, err)
}

func TestSanitizeShiftData(t *testing.T) {
	in := domain.RawShiftRecord{
		Date:   " 2024-01-15 ",
		Zone:   " a ",
		Time:   "05:30-14:00",
		Person: " MERJANIAN ",
		Role:   domain.RolePhysician,
		Site:   " St Joseph/CHOC Physician ",
	}

	out := SanitizeShiftData(in)
	require.Equal(t, "2024-01-15", out.Date)
	require.Equal(t, "A", out.Zone)
	require.Equal(t, "0530-1400", out.Time)
	require.Equal(t, "MERJANIAN", out.Person)
	require.Equal(t, "St Joseph/CHOC Physician", out.Site)
}
