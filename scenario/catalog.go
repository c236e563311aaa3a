package scenario

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the optional YAML catalog file. Entries either add new scenario
// instances or replace a built-in by reusing its id.
//
//	scenarios:
//	  - id: orbit-heavy
//	    kind: orbit
//	    title: Orbit (5k particles)
//	    params:
//	      count: 5000
type Manifest struct {
	Scenarios []ManifestEntry `yaml:"scenarios"`
}

type ManifestEntry struct {
	ID     string `yaml:"id"`
	Kind   string `yaml:"kind"`
	Title  string `yaml:"title"`
	Params Params `yaml:"params"`
}

// Catalog holds the scenario instances the harness can preview, in a stable
// display order.
type Catalog struct {
	opts     Options
	logger   *slog.Logger
	builders map[string]func(id, title string, p Params) Scenario
	order    []string
	byID     map[string]Scenario
}

// NewCatalog builds a catalog seeded with one instance of every built-in
// kind.
func NewCatalog(opts Options, logger *slog.Logger) *Catalog {
	c := &Catalog{opts: opts, logger: logger, byID: map[string]Scenario{}}
	c.builders = map[string]func(id, title string, p Params) Scenario{
		"bounce": func(id, title string, p Params) Scenario { return newBounce(id, title, opts, p) },
		"wave":   func(id, title string, p Params) Scenario { return newWave(id, title, opts, p) },
		"orbit":  func(id, title string, p Params) Scenario { return newOrbit(id, title, opts, p) },
		"plasma": func(id, title string, p Params) Scenario { return newPlasma(id, title, opts, p) },
		"mirror": func(id, title string, _ Params) Scenario { return newMirror(id, title, opts, logger) },
	}
	c.add(newBounce("bounce", "Bouncing ball", opts, nil))
	c.add(newWave("wave", "Gradient wave", opts, nil))
	c.add(newOrbit("orbit", "Orbit field", opts, nil))
	c.add(newPlasma("plasma", "Plasma", opts, nil))
	c.add(newMirror("mirror", "Screen mirror", opts, logger))
	return c
}

func (c *Catalog) add(s Scenario) {
	if _, exists := c.byID[s.ID()]; !exists {
		c.order = append(c.order, s.ID())
	}
	c.byID[s.ID()] = s
}

// LoadManifest merges a YAML manifest into the catalog. A missing file is not
// an error; a malformed file or an unknown kind is.
func (c *Catalog) LoadManifest(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read scenario manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("parse scenario manifest %s: %w", path, err)
	}
	for _, e := range m.Scenarios {
		build, ok := c.builders[e.Kind]
		if !ok {
			return fmt.Errorf("scenario manifest %s: unknown kind %q", path, e.Kind)
		}
		if e.ID == "" {
			return fmt.Errorf("scenario manifest %s: entry of kind %q missing id", path, e.Kind)
		}
		title := e.Title
		if title == "" {
			title = e.ID
		}
		c.add(build(e.ID, title, e.Params))
		if c.logger != nil {
			c.logger.Debug("scenario.manifest", "id", e.ID, "kind", e.Kind)
		}
	}
	return nil
}

// Get returns the scenario with the given id.
func (c *Catalog) Get(id string) (Scenario, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// ByTitle resolves the display title back to a scenario (combobox selection).
func (c *Catalog) ByTitle(title string) (Scenario, bool) {
	for _, id := range c.order {
		if c.byID[id].Title() == title {
			return c.byID[id], true
		}
	}
	return nil, false
}

// Titles lists display titles in catalog order.
func (c *Catalog) Titles() []string {
	out := make([]string, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id].Title())
	}
	return out
}

// First returns the default scenario (catalog order) or nil when empty.
func (c *Catalog) First() Scenario {
	if len(c.order) == 0 {
		return nil
	}
	return c.byID[c.order[0]]
}
