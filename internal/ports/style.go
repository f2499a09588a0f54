package ports

import "github.com/alexisbeaulieu97/customizer/internal/domain/palette"

// StyleResolver hands out the computed style of the rendered document root.
// ok is false when no computed style is available at all.
type StyleResolver interface {
	ComputedStyle() (style palette.StyleSource, ok bool)
}

// Translator resolves a message id into display text.
type Translator interface {
	Translate(id string) string
}

// TranslateFunc adapts a plain function to Translator.
type TranslateFunc func(id string) string

// Translate implements Translator.
func (f TranslateFunc) Translate(id string) string { return f(id) }
