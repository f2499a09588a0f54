// Package style models the rendered document: the colour theme applied to its
// root plus any inline variable overrides layered on top.
package style

import (
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/customizer/internal/domain/customization"
	"github.com/alexisbeaulieu97/customizer/internal/domain/palette"
	"github.com/alexisbeaulieu97/customizer/internal/ports"
)

// Document resolves visual variables the way a browser resolves custom
// properties on the body: inline overrides first, then the applied theme.
type Document struct {
	mu        sync.RWMutex
	catalog   *Catalog
	applied   string
	base      map[string]string
	overrides map[string]string
}

// NewDocument creates a document with no theme applied.
func NewDocument(catalog *Catalog) *Document {
	return &Document{
		catalog:   catalog,
		overrides: make(map[string]string),
	}
}

// Catalog returns the theme catalog backing the document.
func (d *Document) Catalog() *Catalog {
	return d.catalog
}

// Apply switches the root to themeID and drops inline overrides.
func (d *Document) Apply(themeID string) error {
	def, ok := d.catalog.Lookup(themeID)
	if !ok {
		return customization.NewDomainError(customization.ErrCodeNotFound, fmt.Sprintf("unknown colour theme %q", themeID), nil, map[string]interface{}{
			"theme_id": themeID,
		})
	}

	base := make(map[string]string, len(def.Colors))
	for key, value := range def.Colors {
		base[key] = value
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.applied = themeID
	d.base = base
	d.overrides = make(map[string]string)
	return nil
}

// Applied returns the id of the applied theme, or "" before the first Apply.
func (d *Document) Applied() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.applied
}

// SetProperty sets an inline override.
func (d *Document) SetProperty(key, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.overrides[key] = value
}

// RemoveProperty drops the inline override for key.
func (d *Document) RemoveProperty(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.overrides, key)
}

// ResetOverrides drops every inline override, leaving the theme's defaults.
func (d *Document) ResetOverrides() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.overrides = make(map[string]string)
}

// Overrides returns a copy of the inline overrides.
func (d *Document) Overrides() map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[string]string, len(d.overrides))
	for key, value := range d.overrides {
		out[key] = value
	}
	return out
}

// Restore re-applies a saved palette as inline overrides. Entries equal to
// the theme's default are not turned into overrides.
func (d *Document) Restore(saved customization.Palette) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, entry := range saved {
		if d.base[entry.Key] == entry.Value {
			continue
		}
		d.overrides[entry.Key] = entry.Value
	}
}

// DefaultValue returns the applied theme's own value for key.
func (d *Document) DefaultValue(key string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.base[key]
}

// PropertyValue resolves key against overrides then the applied theme.
func (d *Document) PropertyValue(key string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if value, ok := d.overrides[key]; ok {
		return value
	}
	return d.base[key]
}

// ComputedStyle implements ports.StyleResolver. No style is available until
// a theme has been applied.
func (d *Document) ComputedStyle() (palette.StyleSource, bool) {
	if d == nil || d.Applied() == "" {
		return nil, false
	}
	return d, true
}

var _ ports.StyleResolver = (*Document)(nil)
