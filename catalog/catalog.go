package catalog

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/igorlesik/rustamath-mks/errors"
	"github.com/igorlesik/rustamath-mks/quantity"
	"github.com/igorlesik/rustamath-mks/unit"
)

// File is the on-disk YAML layout of a constant catalog.
type File struct {
	// Name identifies the catalog, e.g. "astro".
	Name string `yaml:"name"`
	// Constants are the declared constants.
	Constants []ConstantSpec `yaml:"constants"`
}

// ConstantSpec declares one named constant. The unit is a sparse map from
// base-dimension symbol to exponent; dimensions not named have exponent
// zero:
//
//	name: earth_surface_gravity
//	value: 9.7803
//	unit: {m: 1, s: -2}
//	description: Standard gravity at the equator
type ConstantSpec struct {
	Name        string         `yaml:"name"`
	Value       float64        `yaml:"value"`
	Unit        map[string]int `yaml:"unit"`
	Description string         `yaml:"description"`
}

// Entry is one validated catalog constant.
type Entry struct {
	Quantity    quantity.Quantity
	Description string
}

// Catalog is a validated, read-only set of user-defined constants.
type Catalog struct {
	name    string
	entries map[string]Entry
}

// Load reads and validates a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Catalog", "Load", "read file")
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "Catalog", "Load", fmt.Sprintf("parse %q", path))
	}
	return c, nil
}

// Parse decodes and validates a catalog from YAML bytes.
// Validation failures are reported as errors.ErrInvalidCatalog: empty or
// duplicate constant names, and unit maps naming unknown dimension symbols.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "Catalog", "Parse", "decode yaml")
	}
	return build(f)
}

func build(f File) (*Catalog, error) {
	c := &Catalog{
		name:    f.Name,
		entries: make(map[string]Entry, len(f.Constants)),
	}
	for i, spec := range f.Constants {
		if spec.Name == "" {
			return nil, fmt.Errorf("constant #%d: empty name: %w", i, errors.ErrInvalidCatalog)
		}
		if _, dup := c.entries[spec.Name]; dup {
			return nil, fmt.Errorf("constant %q: duplicate name: %w", spec.Name, errors.ErrInvalidCatalog)
		}

		exps := make(map[unit.Dim]int, len(spec.Unit))
		for symbol, e := range spec.Unit {
			d, ok := unit.ParseDim(symbol)
			if !ok {
				return nil, fmt.Errorf("constant %q: unknown dimension symbol %q: %w",
					spec.Name, symbol, errors.ErrInvalidCatalog)
			}
			exps[d] = e
		}

		c.entries[spec.Name] = Entry{
			Quantity:    quantity.New(spec.Value, unit.FromExponents(exps)),
			Description: spec.Description,
		}
	}
	return c, nil
}

// Name returns the catalog's declared name.
func (c *Catalog) Name() string { return c.name }

// Len returns the number of constants in the catalog.
func (c *Catalog) Len() int { return len(c.entries) }

// Lookup returns the quantity of a named constant. The second return value
// reports whether the name exists.
func (c *Catalog) Lookup(name string) (quantity.Quantity, bool) {
	e, ok := c.entries[name]
	return e.Quantity, ok
}

// Entry returns the full entry of a named constant.
func (c *Catalog) Entry(name string) (Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Names returns all constant names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
