// Package names maps the free-text names scraped from the portal to
// canonical display names, backed by a persisted legend file. Unknown
// names degrade to a synthesized provisional name within a run and are
// promoted to legend entries on the next SaveUpdates, so nothing ever
// blocks on an unrecognized name.
package names

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ocscribes/shift-sync/backend/internal/domain"
)

type Standardizer struct {
	legendPath string
	physicians map[string]string
	mlps       map[string]string
}

func NewStandardizer(legendPath string) *Standardizer {
	return &Standardizer{
		legendPath: legendPath,
		physicians: map[string]string{},
		mlps:       map[string]string{},
	}
}

// LoadLegend reads the legend file into the lookup maps. A missing or
// unreadable file seeds the built-in default table and attempts a
// best-effort write-back; the in-memory defaults remain usable even when
// that write fails.
func (s *Standardizer) LoadLegend() error {
	content, err := os.ReadFile(s.legendPath)
	if err != nil {
		slog.Warn("legend file unreadable, seeding defaults", "path", s.legendPath, "error", err)
		return s.seedDefaults()
	}

	legend := domain.NameLegend{}
	if err := json.Unmarshal(content, &legend); err != nil {
		slog.Warn("legend file malformed, seeding defaults", "path", s.legendPath, "error", err)
		return s.seedDefaults()
	}

	s.physicians = upperKeyed(legend.Physicians)
	s.mlps = upperKeyed(legend.MLPs)

	slog.Info("loaded name legend", "physicians", len(s.physicians), "mlps", len(s.mlps))
	return nil
}

func (s *Standardizer) seedDefaults() error {
	legend := defaultLegend()
	s.physicians = legend.Physicians
	s.mlps = legend.MLPs

	if err := s.writeLegend(); err != nil {
		slog.Warn("could not write default legend", "path", s.legendPath, "error", err)
	}
	return nil
}

// Result carries the canonical name plus an explicit newly-discovered
// marker, so callers own the discovery state instead of the standardizer
// accumulating it across runs.
type Result struct {
	Name string
	Key  string
	New  bool
}

// Standardize maps a raw scraped name to its canonical display form.
// Scribes are title-cased without a legend lookup. Physicians and MLPs go
// through their legend map; a miss synthesizes a provisional name and is
// recorded in the collector.
func (s *Standardizer) Standardize(rawName string, role domain.Role, c *Collector) Result {
	rawName = strings.TrimSpace(rawName)
	if rawName == "" {
		return Result{}
	}

	key := strings.ToUpper(rawName)

	switch role {
	case domain.RolePhysician:
		if canonical, ok := s.physicians[key]; ok {
			return Result{Name: canonical, Key: key}
		}
		name := "Dr. " + titleCase(rawName)
		c.add(domain.RolePhysician, key, name)
		return Result{Name: name, Key: key, New: true}
	case domain.RoleMLP:
		if canonical, ok := s.mlps[key]; ok {
			return Result{Name: canonical, Key: key}
		}
		name := titleCase(rawName) + ", PA-C"
		c.add(domain.RoleMLP, key, name)
		return Result{Name: name, Key: key, New: true}
	default:
		return Result{Name: titleCase(rawName), Key: key}
	}
}

// SaveUpdates merges every discovery into the legend maps and writes the
// legend back. Map keys are emitted alphabetically, so the persisted file
// stays sorted.
func (s *Standardizer) SaveUpdates(c *Collector) error {
	if c.Empty() {
		return nil
	}

	for key, name := range c.physicians {
		s.physicians[key] = name
	}
	for key, name := range c.mlps {
		s.mlps[key] = name
	}

	if err := s.writeLegend(); err != nil {
		return fmt.Errorf("save legend updates: %w", err)
	}

	slog.Info("legend updated", "new_physicians", len(c.physicians), "new_mlps", len(c.mlps))
	return nil
}

func (s *Standardizer) writeLegend() error {
	legend := domain.NameLegend{Physicians: s.physicians, MLPs: s.mlps}

	content, err := json.MarshalIndent(legend, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.legendPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return os.WriteFile(s.legendPath, content, 0o644)
}

// Collector gathers the names a run discovers for the first time. One
// collector belongs to exactly one run; repeated sightings of the same key
// within a run are recorded once.
type Collector struct {
	physicians map[string]string
	mlps       map[string]string
}

func NewCollector() *Collector {
	return &Collector{
		physicians: map[string]string{},
		mlps:       map[string]string{},
	}
}

func (c *Collector) add(role domain.Role, key, name string) {
	switch role {
	case domain.RolePhysician:
		c.physicians[key] = name
	case domain.RoleMLP:
		c.mlps[key] = name
	}
}

func (c *Collector) Empty() bool {
	return len(c.physicians) == 0 && len(c.mlps) == 0
}

func (c *Collector) Size() int {
	return len(c.physicians) + len(c.mlps)
}

func upperKeyed(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for key, value := range m {
		out[strings.ToUpper(strings.TrimSpace(key))] = value
	}
	return out
}

var nameSeparators = regexp.MustCompile(`[\s-]+`)

func titleCase(s string) string {
	words := nameSeparators.Split(strings.ToLower(s), -1)
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
