package tui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestViewShowsTabsAndActions(t *testing.T) {
	f := newFixture(t)
	out := f.model.View()

	for _, want := range []string{
		"page.body.customization.tabs.themes",
		"page.body.customization.tabs.images",
		"page.body.customization.actionButtons.reset",
		"page.body.customization.actionButtons.save",
		"--main-background-color",
		"#1a1f29",
	} {
		require.Contains(t, out, want)
	}
}

func TestViewOffSettingsRoute(t *testing.T) {
	f := newFixture(t)
	m := press(t, f.model, "g")
	out := m.View()
	require.Contains(t, out, "page.body.customization.unavailable")
	require.NotContains(t, out, "page.body.customization.tabs.themes")
}

func TestViewCollapsed(t *testing.T) {
	f := newFixture(t)
	m := press(t, f.model, "o")
	require.Contains(t, m.View(), "page.body.customization.collapsed")
}

func TestViewOtherTabsShowPlaceholder(t *testing.T) {
	f := newFixture(t)
	m := press(t, f.model, "2")
	out := m.View()
	require.Contains(t, out, "page.body.customization.fonts.placeholder")
	require.NotContains(t, out, "--main-background-color")
}

func TestReadableOn(t *testing.T) {
	require.Equal(t, "#000000", readableOn("#ffffff"))
	require.Equal(t, "#ffffff", readableOn("#101010"))
	require.Equal(t, "#ffffff", readableOn("not-a-colour"))
}

func TestSwatchLeavesNonColoursPlain(t *testing.T) {
	require.Equal(t, "rgba(0,0,0,0.5)", swatch("rgba(0,0,0,0.5)"))
}

func TestVisibleWindow(t *testing.T) {
	start, end := visibleWindow(0, 5, 10)
	require.Equal(t, 0, start)
	require.Equal(t, 5, end)

	start, end = visibleWindow(25, 26, 10)
	require.Equal(t, 16, start)
	require.Equal(t, 26, end)
}
