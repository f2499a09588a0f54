package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/customizer/internal/application/panel"
)

// chartSeries drives the mock preview chart: each value is a candle close
// relative to the previous one.
var chartSeries = []int{3, 5, 4, 6, 8, 7, 5, 6, 9, 8, 10, 9, 7, 8, 11, 10}

// View renders the trading preview with the customization overlay on top.
func (m Model) View() string {
	styles := stylesFrom(m.lookup)

	var sections []string
	sections = append(sections, styles.title.Render(fmt.Sprintf("customizer  %s", m.route)))
	sections = append(sections, m.renderChart(styles))

	view := m.panel.Render(m.ctx, m.route)
	switch {
	case view == nil:
		sections = append(sections, mutedStyle.Render(m.panel.Translate("page.body.customization.unavailable")))
	case view.Hidden:
		sections = append(sections, mutedStyle.Render(m.panel.Translate("page.body.customization.collapsed")))
	default:
		sections = append(sections, styles.frame.Render(m.renderPanel(view, styles)))
	}

	if m.mode != modeBrowse {
		label := m.panel.Translate("page.body.customization.draft")
		if m.mode == modeEditColor {
			label = m.editing
		}
		sections = append(sections, fmt.Sprintf("%s %s", label, m.input.View()))
	}
	if m.errMsg != "" {
		sections = append(sections, errorStyle.Render(m.errMsg))
	} else if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) lookup(key string) string {
	if m.doc == nil {
		return ""
	}
	return m.doc.PropertyValue(key)
}

func (m Model) renderPanel(view *panel.View, styles liveStyles) string {
	var b strings.Builder

	labels := make([]string, 0, len(view.Tabs))
	for i, tab := range view.Tabs {
		if i == view.CurrentTabIndex {
			labels = append(labels, activeTabStyle.Render(tab.Label))
		} else {
			labels = append(labels, tabStyle.Render(tab.Label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labels...))
	b.WriteString("\n\n")

	if view.CurrentTabIndex >= 0 && view.CurrentTabIndex < len(view.Tabs) {
		b.WriteString(m.renderContent(view.Tabs[view.CurrentTabIndex].Content))
	}
	b.WriteString("\n")
	b.WriteString(m.renderDraft())
	b.WriteString("\n")

	buttons := make([]string, 0, len(view.Actions))
	for _, action := range view.Actions {
		buttons = append(buttons, styles.button.Render(action.Label))
	}
	b.WriteString(strings.Join(buttons, " "))
	return b.String()
}

func (m Model) renderContent(content panel.Content) string {
	switch c := content.(type) {
	case panel.ThemesContent:
		return m.renderThemes(c)
	case panel.FontsContent:
		return mutedStyle.Render(c.Translate("page.body.customization.fonts.placeholder")) + "\n"
	case panel.SpacingContent:
		return mutedStyle.Render(c.Translate("page.body.customization.spacing.placeholder")) + "\n"
	case panel.ImagesContent:
		return mutedStyle.Render(c.Translate("page.body.customization.images.placeholder")) + "\n"
	default:
		return ""
	}
}

func (m Model) renderThemes(c panel.ThemesContent) string {
	var themes strings.Builder
	themes.WriteString(c.Translate("page.body.customization.themes.title"))
	themes.WriteString("\n")
	if m.doc != nil {
		for i, id := range m.themeIDs() {
			def, _ := m.doc.Catalog().Lookup(id)
			label := c.Translate(def.Label)
			if label == def.Label || label == "" {
				label = id
			}
			marker := "  "
			if id == c.ColorTheme {
				marker = "● "
			}
			line := marker + label
			if m.focus == focusThemes && i == m.themeCursor {
				line = cursorStyle.Render("> " + line)
			} else {
				line = "  " + line
			}
			themes.WriteString(line + "\n")
		}
	}

	var colors strings.Builder
	colors.WriteString(c.Translate("page.body.customization.themes.colors"))
	saved := len(c.Customization.ThemeColors[c.ColorTheme])
	if saved > 0 {
		colors.WriteString(mutedStyle.Render(fmt.Sprintf(" (%d saved)", saved)))
	}
	colors.WriteString("\n")

	overrides := map[string]string{}
	if m.doc != nil {
		overrides = m.doc.Overrides()
	}
	keys := m.panel.ColorKeys()
	start, end := visibleWindow(m.colorCursor, len(keys), 10)
	for i := start; i < end; i++ {
		name := keys[i]
		value := m.lookup(name)
		flag := " "
		if _, ok := overrides[name]; ok {
			flag = "*"
		}
		line := fmt.Sprintf("%s %-32s %s", flag, name, swatch(value))
		if m.focus == focusColors && i == m.colorCursor {
			line = cursorStyle.Render(">") + line
		} else {
			line = " " + line
		}
		colors.WriteString(line + "\n")
	}

	out := lipgloss.JoinHorizontal(lipgloss.Top, themes.String(), "    ", colors.String())
	if c.ResetToDefault {
		out += "\n" + mutedStyle.Render(c.Translate("page.body.customization.themes.resetPending"))
	}
	return out + "\n"
}

func (m Model) renderDraft() string {
	if m.store == nil {
		return ""
	}
	draft := m.store.CurrentCustomization()
	if len(draft.Fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(draft.Fields))
	for k := range draft.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, draft.Fields[k]))
	}
	return mutedStyle.Render(m.panel.Translate("page.body.customization.draft")+": "+strings.Join(parts, " ")) + "\n"
}

// renderChart draws the preview chart in the document's bid/ask colours.
func (m Model) renderChart(styles liveStyles) string {
	const height = 6
	maxValue := 0
	for _, v := range chartSeries {
		if v > maxValue {
			maxValue = v
		}
	}

	rows := make([]string, height)
	for row := 0; row < height; row++ {
		threshold := maxValue - (row * maxValue / height)
		var line strings.Builder
		for i, v := range chartSeries {
			cell := "  "
			if v >= threshold {
				rising := i == 0 || v >= chartSeries[i-1]
				if rising {
					cell = styles.up.Render("█ ")
				} else {
					cell = styles.down.Render("█ ")
				}
			}
			line.WriteString(cell)
		}
		rows[row] = line.String()
	}
	caption := mutedStyle.Render(fmt.Sprintf("%s · %d", m.panel.Translate("page.body.customization.preview"), m.rebuildCount))
	return strings.Join(rows, "\n") + "\n" + caption
}

func visibleWindow(cursor, total, size int) (int, int) {
	if total <= size {
		return 0, total
	}
	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	if start+size > total {
		start = total - size
	}
	return start, start + size
}
