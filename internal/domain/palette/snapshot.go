// Package palette captures the visual variables currently applied to the
// rendered document.
package palette

import "github.com/alexisbeaulieu97/customizer/internal/domain/customization"

// StyleSource resolves the computed value of a visual variable on the
// document root. An unset variable resolves to "".
type StyleSource interface {
	PropertyValue(key string) string
}

// Capture reads every known key from src once, in order. Keys that resolve to
// an empty value are left out. A nil source yields an empty palette.
func Capture(src StyleSource, knownKeys []string) customization.Palette {
	captured := customization.Palette{}
	if src == nil {
		return captured
	}
	for _, key := range knownKeys {
		value := src.PropertyValue(key)
		if value == "" {
			continue
		}
		captured = append(captured, customization.ThemeColorEntry{Key: key, Value: value})
	}
	return captured
}
