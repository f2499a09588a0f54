package tui

import (
	"context"
	"encoding/json"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/customizer/internal/domain/customization"
)

func TestUpdate_WindowSizeMsg(t *testing.T) {
	f := newFixture(t)
	updated, _ := f.model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m := updated.(Model)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestUpdate_TabNavigation(t *testing.T) {
	f := newFixture(t)

	press(t, f.model, "tab")
	require.Equal(t, 1, f.panel.State().CurrentTabIndex)

	press(t, f.model, "shift+tab", "shift+tab")
	require.Equal(t, 3, f.panel.State().CurrentTabIndex)

	press(t, f.model, "3")
	require.Equal(t, 2, f.panel.State().CurrentTabIndex)
}

func TestUpdate_ToggleOpenCollapsesPanel(t *testing.T) {
	f := newFixture(t)

	press(t, f.model, "o")
	require.False(t, f.panel.State().IsOpen)

	// Collapsed panels ignore everything but the open toggle.
	press(t, f.model, "tab")
	require.Equal(t, 0, f.panel.State().CurrentTabIndex)

	press(t, f.model, "o")
	require.True(t, f.panel.State().IsOpen)
}

func TestUpdate_RouteGate(t *testing.T) {
	f := newFixture(t)

	m := press(t, f.model, "g")
	require.Equal(t, TradingRoute, m.Route())

	press(t, m, "tab", "o")
	require.Equal(t, 0, f.panel.State().CurrentTabIndex, "panel is not rendered off the settings route")
	require.True(t, f.panel.State().IsOpen)

	m = press(t, m, "g")
	require.Equal(t, SettingsRoute, m.Route())
}

func TestUpdate_SelectThemeTriggersRebuild(t *testing.T) {
	f := newFixture(t)

	m := press(t, f.model, "down", "enter")
	require.Equal(t, "light", f.store.CurrentColorTheme())
	require.Equal(t, "light", f.doc.Applied())
	require.True(t, f.store.ChartRebuild())

	updated, cmd := m.Update(chartRebuiltMsg{})
	require.Equal(t, 1, updated.(Model).RebuildCount())
	require.NotNil(t, cmd)
}

func TestUpdate_EditColourAndSave(t *testing.T) {
	f := newFixture(t)

	m := press(t, f.model, "right", "e")
	require.Equal(t, modeEditColor, m.mode)
	require.Equal(t, "--main-background-color", m.editing)

	m.input.SetValue("")
	m = typeText(t, m, "#101010")
	m = press(t, m, "enter")
	require.Equal(t, modeBrowse, m.mode)
	require.Equal(t, "#101010", f.doc.PropertyValue("--main-background-color"))

	m = press(t, m, "s")
	require.Empty(t, m.Err())
	require.Equal(t, "page.body.customization.saved", m.Status())

	saved := f.store.CustomizationData().ThemeColors["dark"]
	value, ok := saved.Lookup("--main-background-color")
	require.True(t, ok)
	require.Equal(t, "#101010", value)
	require.Len(t, f.memory.History(), 1)
}

func TestUpdate_EditColourBackToDefaultDropsOverride(t *testing.T) {
	f := newFixture(t)
	f.doc.SetProperty("--main-background-color", "#101010")

	m := press(t, f.model, "right", "e")
	m.input.SetValue("#1a1f29")
	press(t, m, "enter")
	require.Empty(t, f.doc.Overrides())
}

func TestUpdate_EscCancelsEdit(t *testing.T) {
	f := newFixture(t)
	m := press(t, f.model, "right", "e")
	m.input.SetValue("#ffffff")
	m = press(t, m, "esc")
	require.Equal(t, modeBrowse, m.mode)
	require.Empty(t, f.doc.Overrides())
}

func TestUpdate_ResetClearsOverrides(t *testing.T) {
	f := newFixture(t)
	f.doc.SetProperty("--icons", "#000000")

	m := press(t, f.model, "r")
	require.True(t, f.panel.State().ResetToDefault)
	require.Empty(t, f.doc.Overrides())
	require.True(t, f.store.ChartRebuild())
	require.Equal(t, "page.body.customization.themes.resetPending", m.Status())

	press(t, m, "r")
	require.False(t, f.panel.State().ResetToDefault)
}

func TestUpdate_EditDraftField(t *testing.T) {
	f := newFixture(t)

	m := press(t, f.model, ":")
	require.Equal(t, modeEditField, m.mode)
	m = typeText(t, m, "spacing={\"gap\":4}")
	m = press(t, m, "enter")
	require.Empty(t, m.Err())

	draft := f.store.CurrentCustomization()
	require.Equal(t, map[string]any{"gap": json.Number("4")}, draft.Fields["spacing"])

	m = press(t, m, ":")
	m = typeText(t, m, "font=mono")
	m = press(t, m, "enter")
	require.Equal(t, "mono", f.store.CurrentCustomization().Fields["font"])
}

func TestUpdate_EditReservedFieldIsRejected(t *testing.T) {
	f := newFixture(t)

	m := press(t, f.model, ":")
	m = typeText(t, m, "theme_colors=[]")
	m = press(t, m, "enter")
	require.NotEmpty(t, m.Err())
	require.True(t, f.store.CurrentCustomization().IsEmpty())
}

func TestUpdate_EditFieldNeedsEquals(t *testing.T) {
	f := newFixture(t)
	m := press(t, f.model, ":")
	m = typeText(t, m, "nonsense")
	m = press(t, m, "enter")
	require.Contains(t, m.Err(), "expected key=value")
}

func TestUpdate_SaveKeepsDraftFields(t *testing.T) {
	f := newFixture(t)
	f.store.UpdateCurrentCustomization(context.Background(), customization.Record{Fields: map[string]any{"font": "mono"}})

	press(t, f.model, "s")
	require.Equal(t, "mono", f.store.CustomizationData().Fields["font"])
}

func TestUpdate_QuitAndHelp(t *testing.T) {
	f := newFixture(t)

	m := press(t, f.model, "?")
	require.True(t, m.help.ShowAll)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	require.True(t, isQuit)
}

func TestWrap(t *testing.T) {
	require.Equal(t, 2, wrap(-1, 3))
	require.Equal(t, 0, wrap(3, 3))
	require.Equal(t, 0, wrap(5, 0))
}
