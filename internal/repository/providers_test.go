package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscapeLikePattern(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"Smith", "Smith"},
		{"100%", `100\%`},
		{"J_Smith", `J\_Smith`},
		{`back\slash`, `back\\slash`},
		{"%_", `\%\_`},
		{"", ""},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, escapeLikePattern(tc.input), "input %q", tc.input)
	}
}
