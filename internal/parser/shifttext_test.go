package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseShiftText(t *testing.T) {
	testCases := []struct {
		input  string
		label  string
		time   string
		person string
	}{
		{"SJH A 0530-1400: MERJANIAN", "A", "0530-1400", "MERJANIAN"},
		{"SJH B 900-1730: GOLD", "B", "900-1730", "GOLD"},
		{"North 0530-1400: SHIEH", "North", "0530-1400", "SHIEH"},
		{"RED 1100-1900: AYALIN", "RED", "1100-1900", "AYALIN"},
		{"CHOC MLP 1000-1800: GYORE", "PA", "1000-1800", "GYORE"},
		{"CHOC PA 1000-2000: REID", "PA", "1000-2000", "REID"},
		{"FT 0900-1700: Jordan", "FT", "0900-1700", "Jordan"},
		{"1000-1830 PA: Molly", "PA", "1000-1830", "Molly"},
		{"1000-1830 pa: Molly", "PA", "1000-1830", "Molly"},
		{"1000-1800 (RED): Ahilin", "RED", "1000-1800", "Ahilin"},
		{"0800-1600: Casey", "", "0800-1600", "Casey"},
		// colon fallback: time anywhere left of the colon, site tokens stripped
		{"SJH swing 2 0530-1400 extra: MURPHY", "swing 2", "0530-1400", "MURPHY"},
		// total fallback: no time range at all
		{"on call tonight", "", "", "on call tonight"},
	}

	for _, tc := range testCases {
		entry := parseShiftText(tc.input)
		require.Equal(t, tc.label, entry.Label, "label for %q", tc.input)
		require.Equal(t, tc.time, entry.Time, "time for %q", tc.input)
		require.Equal(t, tc.person, entry.Person, "person for %q", tc.input)
	}
}

func TestParseShiftTextNormalizesWhitespace(t *testing.T) {
	entry := parseShiftText("A\u00a0 0800-1600\t:\n WRIGHT")
	require.Equal(t, "A", entry.Label)
	require.Equal(t, "0800-1600", entry.Time)
	require.Equal(t, "WRIGHT", entry.Person)

	entry = parseShiftText("B \u200b0900-1700 :  LEE")
	require.Equal(t, "B", entry.Label)
	require.Equal(t, "0900-1700", entry.Time)
	require.Equal(t, "LEE", entry.Person)
}

func TestParseShiftTextEmptyInput(t *testing.T) {
	entry := parseShiftText("")
	require.Equal(t, shiftEntry{}, entry)
}

func TestNormalizePerson(t *testing.T) {
	require.Equal(t, "EMPTY", normalizePerson("EMPTY"))
	require.Equal(t, "EMPTY", normalizePerson("empty"))
	require.Equal(t, "EMPTY", normalizePerson("*EMPTY*"))
	require.Equal(t, "EMPTY", normalizePerson(" <Empty> "))
	require.Equal(t, "MERJANIAN", normalizePerson(" MERJANIAN "))
}
