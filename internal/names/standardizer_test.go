package names

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ocscribes/shift-sync/backend/internal/domain"
	"github.com/stretchr/testify/require"
)

func emptyLegendFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "legend.json")
	content, err := json.Marshal(domain.NameLegend{
		Physicians: map[string]string{},
		MLPs:       map[string]string{},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestStandardizeScribe(t *testing.T) {
	s := NewStandardizer(emptyLegendFile(t))
	require.NoError(t, s.LoadLegend())
	c := NewCollector()

	res := s.Standardize("JANE DOE", domain.RoleScribe, c)
	require.Equal(t, "Jane Doe", res.Name)
	require.False(t, res.New)
	require.True(t, c.Empty())

	res = s.Standardize("mary-ann lee", domain.RoleScribe, c)
	require.Equal(t, "Mary Ann Lee", res.Name)
}

func TestStandardizePhysicianMiss(t *testing.T) {
	s := NewStandardizer(emptyLegendFile(t))
	require.NoError(t, s.LoadLegend())
	c := NewCollector()

	res := s.Standardize("SMITH", domain.RolePhysician, c)
	require.Equal(t, "Dr. Smith", res.Name)
	require.True(t, res.New)
	require.Equal(t, 1, c.Size())

	// repeated sightings within one run are recorded once
	res = s.Standardize("Smith", domain.RolePhysician, c)
	require.Equal(t, "Dr. Smith", res.Name)
	require.Equal(t, 1, c.Size())
}

func TestStandardizeMLPMiss(t *testing.T) {
	s := NewStandardizer(emptyLegendFile(t))
	require.NoError(t, s.LoadLegend())
	c := NewCollector()

	res := s.Standardize("GYORE", domain.RoleMLP, c)
	require.Equal(t, "Gyore, PA-C", res.Name)
	require.True(t, res.New)
}

func TestStandardizeLegendHit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legend.json")
	content, err := json.Marshal(domain.NameLegend{
		Physicians: map[string]string{"MERJANIAN": "Dr. Merjanian"},
		MLPs:       map[string]string{"REID": "Craig Reid"},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	s := NewStandardizer(path)
	require.NoError(t, s.LoadLegend())
	c := NewCollector()

	res := s.Standardize(" merjanian ", domain.RolePhysician, c)
	require.Equal(t, "Dr. Merjanian", res.Name)
	require.False(t, res.New)

	res = s.Standardize("REID", domain.RoleMLP, c)
	require.Equal(t, "Craig Reid", res.Name)
	require.False(t, res.New)
	require.True(t, c.Empty())
}

func TestSaveUpdatesPromotesDiscoveries(t *testing.T) {
	path := emptyLegendFile(t)

	s := NewStandardizer(path)
	require.NoError(t, s.LoadLegend())
	c := NewCollector()

	first := s.Standardize("SMITH", domain.RolePhysician, c)
	require.True(t, first.New)
	require.NoError(t, s.SaveUpdates(c))

	// a fresh load sees the promoted entry and no longer marks it new
	reloaded := NewStandardizer(path)
	require.NoError(t, reloaded.LoadLegend())
	c2 := NewCollector()

	second := reloaded.Standardize("SMITH", domain.RolePhysician, c2)
	require.Equal(t, first.Name, second.Name)
	require.False(t, second.New)
	require.True(t, c2.Empty())
}

func TestLoadLegendSeedsDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "legend.json")

	s := NewStandardizer(path)
	require.NoError(t, s.LoadLegend())

	c := NewCollector()
	res := s.Standardize("MERJANIAN", domain.RolePhysician, c)
	require.Equal(t, "Dr. Merjanian", res.Name)
	require.False(t, res.New)

	// the default table was written back for operators to curate
	_, err := os.Stat(path)
	require.NoError(t, err)
}
