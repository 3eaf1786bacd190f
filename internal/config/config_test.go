package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ocscribes/shift-sync/backend/internal/domain"
)

func TestParseSites(t *testing.T) {
	cfg := &Config{}
	cfg.Portal.Sites = "82=St Joseph Scribe;80=St Joseph/CHOC Physician;84=St Joseph/CHOC MLP"

	require.Equal(t, []domain.Site{
		{ID: "82", Name: "St Joseph Scribe"},
		{ID: "80", Name: "St Joseph/CHOC Physician"},
		{ID: "84", Name: "St Joseph/CHOC MLP"},
	}, cfg.ParseSites())
}

func TestParseSitesSkipsMalformedPairs(t *testing.T) {
	cfg := &Config{}
	cfg.Portal.Sites = "82=St Joseph Scribe; ;80;=Unnamed;84=St Joseph/CHOC MLP"

	require.Equal(t, []domain.Site{
		{ID: "82", Name: "St Joseph Scribe"},
		{ID: "84", Name: "St Joseph/CHOC MLP"},
	}, cfg.ParseSites())
}
