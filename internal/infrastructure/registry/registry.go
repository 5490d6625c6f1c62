// Package registry loads the immutable reference data the simulator plans
// against: ports, routes, ship templates, cargo categories and encounter
// tables. A default data set is embedded in the binary; a directory of YAML
// files with the same names overrides it wholesale.
package registry

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/brinevale/voyager-go/internal/domain/encounter"
	"github.com/brinevale/voyager-go/internal/domain/ship"
	"github.com/brinevale/voyager-go/internal/domain/world"
)

//go:embed data/*.yaml
var embeddedData embed.FS

// Registry is the loaded reference data. It is immutable after Load and safe
// for concurrent readers.
type Registry struct {
	ports      map[string]*world.Port
	routes     map[string]*world.Route
	templates  map[string]*ship.Template
	categories []world.CargoCategory
	table      encounter.Table
}

type encounterFile struct {
	Tables map[string]map[string][]encounter.Entry `yaml:"tables"`
}

// Load builds a registry from the embedded data, or from dir when given.
func Load(dir string) (*Registry, error) {
	read := func(name string) ([]byte, error) {
		if dir != "" {
			return os.ReadFile(filepath.Join(dir, name))
		}
		return fs.ReadFile(embeddedData, "data/"+name)
	}

	r := &Registry{
		ports:     make(map[string]*world.Port),
		routes:    make(map[string]*world.Route),
		templates: make(map[string]*ship.Template),
		table:     make(encounter.Table),
	}

	var ports []*world.Port
	if err := loadYAML(read, "ports.yaml", &ports); err != nil {
		return nil, err
	}
	for _, p := range ports {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("ports.yaml: %w", err)
		}
		if _, dup := r.ports[p.ID]; dup {
			return nil, fmt.Errorf("ports.yaml: duplicate port id %s", p.ID)
		}
		r.ports[p.ID] = p
	}

	var routes []*world.Route
	if err := loadYAML(read, "routes.yaml", &routes); err != nil {
		return nil, err
	}
	for _, route := range routes {
		if err := route.Validate(); err != nil {
			return nil, fmt.Errorf("routes.yaml: %w", err)
		}
		for _, portID := range route.Ports {
			if _, ok := r.ports[portID]; !ok {
				return nil, fmt.Errorf("routes.yaml: route %s references unknown port %s", route.ID, portID)
			}
		}
		r.routes[route.ID] = route
	}

	var templates []*ship.Template
	if err := loadYAML(read, "ships.yaml", &templates); err != nil {
		return nil, err
	}
	for _, t := range templates {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("ships.yaml: %w", err)
		}
		r.templates[t.ID] = t
	}

	if err := loadYAML(read, "cargo.yaml", &r.categories); err != nil {
		return nil, err
	}
	for i := range r.categories {
		if err := r.categories[i].Validate(); err != nil {
			return nil, fmt.Errorf("cargo.yaml: %w", err)
		}
	}
	sort.Slice(r.categories, func(i, j int) bool {
		return r.categories[i].RollMin < r.categories[j].RollMin
	})

	var encounters encounterFile
	if err := loadYAML(read, "encounters.yaml", &encounters); err != nil {
		return nil, err
	}
	for waterName, byClass := range encounters.Tables {
		water, err := world.ParseWaterType(waterName)
		if err != nil {
			return nil, fmt.Errorf("encounters.yaml: %w", err)
		}
		r.table[water] = make(map[encounter.FrequencyClass][]encounter.Entry)
		for className, entries := range byClass {
			r.table[water][encounter.FrequencyClass(className)] = entries
		}
	}

	return r, nil
}

func loadYAML(read func(string) ([]byte, error), name string, out interface{}) error {
	raw, err := read(name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// Port looks up a port by id.
func (r *Registry) Port(id string) (*world.Port, bool) {
	p, ok := r.ports[id]
	return p, ok
}

// Route looks up a route by id.
func (r *Registry) Route(id string) (*world.Route, bool) {
	route, ok := r.routes[id]
	return route, ok
}

// ShipTemplate looks up a ship template by id.
func (r *Registry) ShipTemplate(id string) (*ship.Template, bool) {
	t, ok := r.templates[id]
	return t, ok
}

// CargoCategories returns the cargo categories ordered by determination roll.
func (r *Registry) CargoCategories() []world.CargoCategory {
	return r.categories
}

// EncounterTable returns the loaded encounter table.
func (r *Registry) EncounterTable() encounter.Table {
	return r.table
}

// Ports returns every port sorted by id, for the listing commands.
func (r *Registry) Ports() []*world.Port {
	out := make([]*world.Port, 0, len(r.ports))
	for _, p := range r.ports {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Routes returns every route sorted by id.
func (r *Registry) Routes() []*world.Route {
	out := make([]*world.Route, 0, len(r.routes))
	for _, route := range r.routes {
		out = append(out, route)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ShipTemplates returns every template sorted by id.
func (r *Registry) ShipTemplates() []*ship.Template {
	out := make([]*ship.Template, 0, len(r.templates))
	for _, t := range r.templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
