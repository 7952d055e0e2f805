// Package catalog serves the read-only component template library:
// exemplar input/output pairs and guideline bullets per component
// category, used for reference display and as generation exemplars.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/ohjihoon05/ipswriter/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var templatesYAML []byte

type catalogFile struct {
	Templates []domain.ComponentTemplate `yaml:"templates"`
}

// Catalog holds the loaded template entries. Loaded once, never mutated.
type Catalog struct {
	templates []domain.ComponentTemplate
	byID      map[string]*domain.ComponentTemplate
}

// Load parses the embedded catalog. It fails only on a corrupted build
// (the catalog is a compile-time asset), so callers treat an error here
// as fatal.
func Load() (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(templatesYAML, &file); err != nil {
		return nil, fmt.Errorf("parse template catalog: %w", err)
	}
	if len(file.Templates) == 0 {
		return nil, fmt.Errorf("template catalog is empty")
	}

	c := &Catalog{
		templates: file.Templates,
		byID:      make(map[string]*domain.ComponentTemplate, len(file.Templates)),
	}
	for i := range c.templates {
		tpl := &c.templates[i]
		if tpl.ID == "" {
			return nil, fmt.Errorf("template catalog: entry %d has no id", i)
		}
		if !tpl.Category.IsValid() {
			return nil, fmt.Errorf("template catalog: entry %q has invalid category %q", tpl.ID, tpl.Category)
		}
		c.byID[tpl.ID] = tpl
	}
	return c, nil
}

// All returns every catalog entry in declaration order.
func (c *Catalog) All() []domain.ComponentTemplate {
	return c.templates
}

// ByID returns the entry with the given id, or nil.
func (c *Catalog) ByID(id string) *domain.ComponentTemplate {
	return c.byID[id]
}

// ByCategory returns all entries for one component category.
func (c *Catalog) ByCategory(category domain.ComponentCategory) []domain.ComponentTemplate {
	var out []domain.ComponentTemplate
	for _, tpl := range c.templates {
		if tpl.Category == category {
			out = append(out, tpl)
		}
	}
	return out
}
