package target

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed profiles/targets.yaml
var targetsYAML []byte

// DefaultID is the chipset assumed when none is given.
const DefaultID = "8660"

// Catalog holds every known target profile.
type Catalog struct {
	// Platform is shared by every profile in the catalog
	Platform *Platform

	profiles map[string]*Profile
}

// catalogContainer is for YAML unmarshaling
type catalogContainer struct {
	Targets  map[string]*Profile `yaml:"targets"`
	Platform *Platform           `yaml:"platform"`
}

var (
	builtinCatalog     *Catalog
	builtinCatalogOnce sync.Once
	builtinCatalogErr  error
)

// Builtin returns the embedded catalog. It is parsed once; later calls
// return the same instance.
func Builtin() (*Catalog, error) {
	builtinCatalogOnce.Do(func() {
		builtinCatalog, builtinCatalogErr = Parse(targetsYAML)
		if builtinCatalogErr != nil {
			builtinCatalogErr = fmt.Errorf("failed to parse embedded targets.yaml: %w", builtinCatalogErr)
		}
	})
	return builtinCatalog, builtinCatalogErr
}

// Parse builds a catalog from YAML in the targets.yaml schema.
func Parse(data []byte) (*Catalog, error) {
	var container catalogContainer
	if err := yaml.Unmarshal(data, &container); err != nil {
		return nil, err
	}

	c := &Catalog{
		Platform: container.Platform,
		profiles: make(map[string]*Profile, len(container.Targets)),
	}
	for id, p := range container.Targets {
		if p == nil {
			return nil, fmt.Errorf("target %q has no tables", id)
		}
		p.ID = id
		p.Platform = c.Platform
		c.profiles[id] = p
	}

	return c, nil
}

// LoadFile reads and parses a catalog file from fs.
func LoadFile(fs afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read target profiles: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse target profiles %s: %w", path, err)
	}
	return c, nil
}

// With returns a new catalog holding c's profiles overlaid by other's.
// A profile in other replaces the one with the same id. The platform tables
// of other are used when it defines any.
func (c *Catalog) With(other *Catalog) *Catalog {
	if other == nil {
		return c
	}

	merged := &Catalog{
		Platform: c.Platform,
		profiles: make(map[string]*Profile, len(c.profiles)+len(other.profiles)),
	}
	if other.Platform != nil {
		merged.Platform = other.Platform
	}

	for id, p := range c.profiles {
		merged.profiles[id] = p.withPlatform(merged.Platform)
	}
	for id, p := range other.profiles {
		merged.profiles[id] = p.withPlatform(merged.Platform)
	}
	return merged
}

// Get returns the profile for a chipset id.
func (c *Catalog) Get(id string) (*Profile, error) {
	p, ok := c.profiles[id]
	if !ok {
		return nil, &UnknownTargetError{ID: id, Available: c.IDs()}
	}
	return p, nil
}

// IDs returns the known chipset ids in sorted order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.profiles))
	for id := range c.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Profiles returns every profile, ordered by id.
func (c *Catalog) Profiles() []*Profile {
	ids := c.IDs()
	profiles := make([]*Profile, len(ids))
	for i, id := range ids {
		profiles[i] = c.profiles[id]
	}
	return profiles
}

// Count returns the number of profiles in the catalog.
func (c *Catalog) Count() int {
	return len(c.profiles)
}

func (p *Profile) withPlatform(platform *Platform) *Profile {
	cp := *p
	cp.Platform = platform
	return &cp
}
