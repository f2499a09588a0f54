package style

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed themes.yaml
var builtinThemes []byte

// Definition holds the base value of every variable a theme sets.
type Definition struct {
	ID     string            `yaml:"id"`
	Label  string            `yaml:"label"`
	Colors map[string]string `yaml:"colors"`
}

// Catalog is the set of colour themes the document can apply.
type Catalog struct {
	Themes []Definition `yaml:"themes"`
}

// BuiltinCatalog returns the themes shipped with the binary.
func BuiltinCatalog() (*Catalog, error) {
	return parseCatalog(builtinThemes, "builtin")
}

// LoadCatalog reads theme definitions from path and layers them over the
// builtin catalog: a definition with a known id replaces it, new ids are
// appended.
func LoadCatalog(path string) (*Catalog, error) {
	base, err := BuiltinCatalog()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme definitions: %w", err)
	}
	extra, err := parseCatalog(data, path)
	if err != nil {
		return nil, err
	}

	for _, def := range extra.Themes {
		replaced := false
		for i := range base.Themes {
			if base.Themes[i].ID == def.ID {
				base.Themes[i] = def
				replaced = true
				break
			}
		}
		if !replaced {
			base.Themes = append(base.Themes, def)
		}
	}
	return base, nil
}

func parseCatalog(data []byte, source string) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse theme definitions %s: %w", source, err)
	}
	seen := make(map[string]struct{}, len(catalog.Themes))
	for i, def := range catalog.Themes {
		if def.ID == "" {
			return nil, fmt.Errorf("theme definitions %s: themes[%d] has no id", source, i)
		}
		if _, dup := seen[def.ID]; dup {
			return nil, fmt.Errorf("theme definitions %s: duplicate theme id %q", source, def.ID)
		}
		seen[def.ID] = struct{}{}
	}
	return &catalog, nil
}

// Lookup returns the definition registered under id.
func (c *Catalog) Lookup(id string) (Definition, bool) {
	if c == nil {
		return Definition{}, false
	}
	for _, def := range c.Themes {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}

// IDs lists theme ids in catalog order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.Themes))
	for _, def := range c.Themes {
		ids = append(ids, def.ID)
	}
	return ids
}

// Keys returns the sorted variable names a definition sets.
func (d Definition) Keys() []string {
	keys := make([]string, 0, len(d.Colors))
	for key := range d.Colors {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
