package customization

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ThemeColorsKey is the record key holding per-theme palettes.
const ThemeColorsKey = "theme_colors"

// ThemeColorEntry is one visual variable name and the value it resolved to at
// capture time. Values are not checked for CSS well-formedness.
type ThemeColorEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Palette is an ordered set of captured visual variables.
type Palette []ThemeColorEntry

// Clone returns an independent copy of the palette.
func (p Palette) Clone() Palette {
	if p == nil {
		return nil
	}
	out := make(Palette, len(p))
	copy(out, p)
	return out
}

// Lookup returns the value stored for key.
func (p Palette) Lookup(key string) (string, bool) {
	for _, entry := range p {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return "", false
}

// Record is a customization record. The persisted record and the draft the
// user is editing share this shape: ThemeColors is keyed by theme id and every
// other category (fonts, spacing, images...) lives in Fields as an opaque
// value owned by its sub-panel.
type Record struct {
	ThemeColors map[string]Palette
	Fields      map[string]any
}

// Clone returns a shallow copy: both maps are copied, their values are shared.
func (r Record) Clone() Record {
	out := Record{}
	if r.ThemeColors != nil {
		out.ThemeColors = make(map[string]Palette, len(r.ThemeColors))
		for id, palette := range r.ThemeColors {
			out.ThemeColors[id] = palette
		}
	}
	if r.Fields != nil {
		out.Fields = make(map[string]any, len(r.Fields))
		for key, value := range r.Fields {
			out.Fields[key] = value
		}
	}
	return out
}

// Get returns the opaque value stored for key.
func (r Record) Get(key string) (any, bool) {
	if r.Fields == nil {
		return nil, false
	}
	v, ok := r.Fields[key]
	return v, ok
}

// With returns a copy of r with key set to value. Every other key survives
// untouched. The theme_colors key is only written through MergePalette.
func (r Record) With(key string, value any) (Record, error) {
	if strings.TrimSpace(key) == "" {
		return Record{}, newValidationError("customization key is required", nil)
	}
	if key == ThemeColorsKey {
		return Record{}, newReservedKeyError(key)
	}
	out := r.Clone()
	if out.Fields == nil {
		out.Fields = make(map[string]any, 1)
	}
	out.Fields[key] = value
	return out, nil
}

// IsEmpty reports whether the record carries no data at all.
func (r Record) IsEmpty() bool {
	return len(r.ThemeColors) == 0 && len(r.Fields) == 0
}

// MarshalJSON flattens the record into a single JSON object.
func (r Record) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(r.Fields)+1)
	for key, value := range r.Fields {
		if key == ThemeColorsKey {
			continue
		}
		flat[key] = value
	}
	if r.ThemeColors != nil {
		flat[ThemeColorsKey] = r.ThemeColors
	}
	return json.Marshal(flat)
}

// UnmarshalJSON splits a flat JSON object into typed theme colours and
// opaque fields. Opaque numbers decode as json.Number.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	next := Record{}
	for key, value := range raw {
		if key == ThemeColorsKey {
			var colors map[string]Palette
			if err := json.Unmarshal(value, &colors); err != nil {
				return err
			}
			next.ThemeColors = colors
			continue
		}
		// Numbers stay json.Number so large integers survive a round trip.
		var decoded any
		dec := json.NewDecoder(bytes.NewReader(value))
		dec.UseNumber()
		if err := dec.Decode(&decoded); err != nil {
			return err
		}
		if next.Fields == nil {
			next.Fields = make(map[string]any, len(raw))
		}
		next.Fields[key] = decoded
	}

	*r = next
	return nil
}
