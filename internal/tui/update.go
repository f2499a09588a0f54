package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/customizer/internal/application/panel"
	"github.com/alexisbeaulieu97/customizer/internal/domain/customization"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case chartRebuiltMsg:
		m.rebuildCount++
		return m, waitForRebuild(m.rebuilds.ch)

	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.handleInputKeys(msg)
		}
		return m.handleBrowseKeys(msg)
	}

	return m, nil
}

func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Route):
		if m.route == SettingsRoute {
			m.route = TradingRoute
		} else {
			m.route = SettingsRoute
		}
		return m, nil
	}

	// Everything below needs a rendered panel.
	view := m.panel.Render(m.ctx, m.route)
	if view == nil {
		return m, nil
	}

	if key.Matches(msg, m.keys.Open) {
		m.panel.ToggleOpen()
		return m, nil
	}
	if view.Hidden {
		return m, nil
	}

	state := m.panel.State()
	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.selectTab((state.CurrentTabIndex + 1) % len(view.Tabs))
	case key.Matches(msg, m.keys.PrevTab):
		m.selectTab((state.CurrentTabIndex + len(view.Tabs) - 1) % len(view.Tabs))
	case key.Matches(msg, m.keys.Tab):
		m.selectTab(int(msg.String()[0] - '1'))

	case key.Matches(msg, m.keys.Reset):
		m.toggleReset()
	case key.Matches(msg, m.keys.Save):
		m.save()

	case key.Matches(msg, m.keys.EditField):
		m.mode = modeEditField
		m.input.Placeholder = "key=value"
		m.input.SetValue("")
		return m, m.input.Focus()

	default:
		if content, ok := m.themesContent(); ok {
			return m.handleThemesKeys(msg, content)
		}
	}
	return m, nil
}

// handleThemesKeys drives the themes sub-panel. Writes go through the
// content's callbacks, and through the document for live colour edits.
func (m Model) handleThemesKeys(msg tea.KeyMsg, content panel.ThemesContent) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusThemes {
			m.focus = focusColors
		} else {
			m.focus = focusThemes
		}

	case key.Matches(msg, m.keys.Up):
		if m.focus == focusThemes {
			m.themeCursor = wrap(m.themeCursor-1, len(m.themeIDs()))
		} else {
			m.colorCursor = wrap(m.colorCursor-1, len(m.panel.ColorKeys()))
		}

	case key.Matches(msg, m.keys.Down):
		if m.focus == focusThemes {
			m.themeCursor = wrap(m.themeCursor+1, len(m.themeIDs()))
		} else {
			m.colorCursor = wrap(m.colorCursor+1, len(m.panel.ColorKeys()))
		}

	case key.Matches(msg, m.keys.Select):
		ids := m.themeIDs()
		if m.focus != focusThemes || m.themeCursor >= len(ids) {
			return m, nil
		}
		m.errMsg = ""
		content.Callbacks.HandleSetCurrentColorTheme(ids[m.themeCursor])
		content.Callbacks.HandleTriggerChartRebuild()

	case key.Matches(msg, m.keys.EditColor):
		keys := m.panel.ColorKeys()
		if m.doc == nil || m.colorCursor >= len(keys) {
			return m, nil
		}
		m.focus = focusColors
		m.mode = modeEditColor
		m.editing = keys[m.colorCursor]
		m.input.Placeholder = m.doc.DefaultValue(m.editing)
		m.input.SetValue(m.doc.PropertyValue(m.editing))
		return m, m.input.Focus()
	}
	return m, nil
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.leaveInput()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		if m.mode == modeEditColor {
			m.commitColor(value)
		} else {
			m.commitField(value)
		}
		m.leaveInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) leaveInput() {
	m.mode = modeBrowse
	m.editing = ""
	m.input.Blur()
	m.input.SetValue("")
}

func (m *Model) selectTab(index int) {
	if index < 0 || index >= panel.TabCount {
		return
	}
	m.panel.SelectTab(index)
}

// toggleReset flips the reset flag. The themes sub-panel reacts to the flag
// turning on by dropping live overrides and redrawing the chart.
func (m *Model) toggleReset() {
	m.panel.ToggleResetToDefault()
	content, ok := m.themesContent()
	if !ok || !content.ResetToDefault {
		return
	}
	if m.doc != nil {
		m.doc.ResetOverrides()
	}
	content.Callbacks.HandleTriggerChartRebuild()
	m.status = content.Translate("page.body.customization.themes.resetPending")
}

func (m *Model) save() {
	if err := m.panel.Save(m.ctx); err != nil {
		m.errMsg = err.Error()
		m.status = ""
		return
	}
	m.errMsg = ""
	m.status = m.panel.Translate("page.body.customization.saved")
}

func (m *Model) commitColor(value string) {
	content, ok := m.themesContent()
	if !ok || m.doc == nil || m.editing == "" {
		return
	}
	if value == "" || value == m.doc.DefaultValue(m.editing) {
		m.doc.RemoveProperty(m.editing)
	} else {
		m.doc.SetProperty(m.editing, value)
	}
	content.Callbacks.HandleTriggerChartRebuild()
}

func (m *Model) commitField(input string) {
	name, raw, ok := strings.Cut(input, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		m.errMsg = fmt.Sprintf("expected key=value, got %q", input)
		return
	}
	if err := m.panel.EditField(m.ctx, name, customization.ParseValue(strings.TrimSpace(raw))); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return (i%n + n) % n
}
