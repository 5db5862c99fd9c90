package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default-catalog.yaml
var defaultCatalogYAML []byte

// ParameterSpec describes one input of an initiative. Min, Max and Step are
// UI hints; they are only enforced by a store created with range validation.
type ParameterSpec struct {
	Name    string   `yaml:"name" json:"name"`
	Label   string   `yaml:"label" json:"label"`
	Default float64  `yaml:"default" json:"default"`
	Min     *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max     *float64 `yaml:"max,omitempty" json:"max,omitempty"`
	Step    float64  `yaml:"step,omitempty" json:"step,omitempty"`
	Percent bool     `yaml:"percent,omitempty" json:"percent,omitempty"` // Whole-number percentage (18 = 18%)
}

// InitiativeDefinition is an immutable initiative template
type InitiativeDefinition struct {
	Key            string          `yaml:"key" json:"key"`
	Kind           InitiativeKind  `yaml:"kind" json:"kind"`
	Name           string          `yaml:"name" json:"name"`
	Description    string          `yaml:"description" json:"description"`
	TypicalROI     string          `yaml:"typical_roi" json:"typical_roi"` // Display text only
	DefaultVariant FormulaVariant  `yaml:"default_variant,omitempty" json:"default_variant,omitempty"`
	Parameters     []ParameterSpec `yaml:"parameters" json:"parameters"`
}

// Defaults returns a fresh ParameterSet seeded from the template
func (d InitiativeDefinition) Defaults() ParameterSet {
	params := make(ParameterSet, len(d.Parameters))
	for _, spec := range d.Parameters {
		params[spec.Name] = spec.Default
	}
	return params
}

// clone returns a copy that shares no slices or pointers with d
func (d InitiativeDefinition) clone() InitiativeDefinition {
	d.Parameters = append([]ParameterSpec(nil), d.Parameters...)
	for i := range d.Parameters {
		spec := &d.Parameters[i]
		if spec.Min != nil {
			min := *spec.Min
			spec.Min = &min
		}
		if spec.Max != nil {
			max := *spec.Max
			spec.Max = &max
		}
	}
	return d
}

// Spec returns the parameter spec with the given name
func (d InitiativeDefinition) Spec(name string) (ParameterSpec, bool) {
	for _, spec := range d.Parameters {
		if spec.Name == name {
			return spec, true
		}
	}
	return ParameterSpec{}, false
}

// Variant returns the formula variant to use when none is chosen
func (d InitiativeDefinition) Variant() FormulaVariant {
	if d.DefaultVariant != "" {
		return d.DefaultVariant
	}
	return DefaultVariant(d.Kind)
}

// Catalog is the read-only registry of initiative templates
type Catalog struct {
	definitions []InitiativeDefinition
	index       map[string]int
}

type catalogFile struct {
	Initiatives []InitiativeDefinition `yaml:"initiatives"`
}

// LoadDefaultCatalog loads the catalog compiled into the binary
func LoadDefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogYAML)
}

// LoadCatalog loads a catalog from a YAML file
func LoadCatalog(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(data)
}

// ParseCatalog parses and validates catalog YAML
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return NewCatalog(file.Initiatives)
}

// NewCatalog builds a catalog from definitions, rejecting duplicate keys and
// default variants that have no registered calculator
func NewCatalog(definitions []InitiativeDefinition) (*Catalog, error) {
	c := &Catalog{
		definitions: make([]InitiativeDefinition, 0, len(definitions)),
		index:       make(map[string]int, len(definitions)),
	}
	for _, def := range definitions {
		if def.Key == "" {
			return nil, fmt.Errorf("catalog entry %q has no key", def.Name)
		}
		if _, dup := c.index[def.Key]; dup {
			return nil, fmt.Errorf("duplicate initiative key %q", def.Key)
		}
		if _, err := lookupCalculator(def.Kind, def.Variant()); err != nil {
			return nil, fmt.Errorf("initiative %q: %w", def.Key, err)
		}
		seen := make(map[string]bool, len(def.Parameters))
		for _, spec := range def.Parameters {
			if seen[spec.Name] {
				return nil, fmt.Errorf("initiative %q: duplicate parameter %q", def.Key, spec.Name)
			}
			seen[spec.Name] = true
		}
		c.index[def.Key] = len(c.definitions)
		c.definitions = append(c.definitions, def)
	}
	return c, nil
}

// List returns every definition in catalog order
func (c *Catalog) List() []InitiativeDefinition {
	out := make([]InitiativeDefinition, len(c.definitions))
	for i, def := range c.definitions {
		out[i] = def.clone()
	}
	return out
}

// Get returns the definition for key
func (c *Catalog) Get(key string) (InitiativeDefinition, error) {
	i, ok := c.index[key]
	if !ok {
		return InitiativeDefinition{}, fmt.Errorf("%w: %q", ErrInitiativeNotFound, key)
	}
	return c.definitions[i].clone(), nil
}
