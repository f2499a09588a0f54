package customization

// MergePalette folds a freshly captured palette into rec under themeID.
//
// The palette fully replaces whatever was stored for themeID; entries for
// other themes and every non-colour key are carried over. Neither rec nor p
// is modified.
func MergePalette(rec Record, themeID string, p Palette) Record {
	out := rec.Clone()
	if out.ThemeColors == nil {
		out.ThemeColors = make(map[string]Palette, 1)
	}
	captured := p.Clone()
	if captured == nil {
		captured = Palette{}
	}
	out.ThemeColors[themeID] = captured
	return out
}
