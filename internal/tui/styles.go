package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	mutedColor  = lipgloss.Color("245")
	accentColor = lipgloss.Color("212")
	errorColor  = lipgloss.Color("196")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			PaddingLeft(1).
			PaddingRight(1)

	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(mutedColor)

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Underline(true).
			Foreground(accentColor)

	cursorStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().Foreground(errorColor).Bold(true)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	frameStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// liveStyles is the set of styles derived from the live document. It is rebuilt
// on every render so edits show up immediately.
type liveStyles struct {
	frame  lipgloss.Style
	title  lipgloss.Style
	button lipgloss.Style
	up     lipgloss.Style
	down   lipgloss.Style
}

func stylesFrom(lookup func(key string) string) liveStyles {
	bg := lookup("--main-background-color")
	text := lookup("--primary-text-color")
	divider := lookup("--divider-color-level-1")
	cta := lookup("--primary-cta-color")
	ctaText := lookup("--contrast-cta-color")

	p := liveStyles{
		frame:  frameStyle,
		title:  titleStyle,
		button: lipgloss.NewStyle().Padding(0, 2).Bold(true),
		up:     lipgloss.NewStyle(),
		down:   lipgloss.NewStyle(),
	}
	if isColor(divider) {
		p.frame = p.frame.BorderForeground(lipgloss.Color(divider))
	}
	if isColor(bg) && isColor(text) {
		p.title = p.title.Background(lipgloss.Color(bg)).Foreground(lipgloss.Color(text))
	}
	if isColor(cta) {
		fg := ctaText
		if !isColor(fg) {
			fg = readableOn(cta)
		}
		p.button = p.button.Background(lipgloss.Color(cta)).Foreground(lipgloss.Color(fg))
	}
	if bids := lookup("--bids"); isColor(bids) {
		p.up = p.up.Foreground(lipgloss.Color(bids))
	}
	if asks := lookup("--asks"); isColor(asks) {
		p.down = p.down.Foreground(lipgloss.Color(asks))
	}
	return p
}

// swatch renders value on a background of itself with a readable
// foreground. Values that are not hex colours are shown plain.
func swatch(value string) string {
	if !isColor(value) {
		return value
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(value)).
		Foreground(lipgloss.Color(readableOn(value))).
		Render(" " + value + " ")
}

func isColor(value string) bool {
	if value == "" {
		return false
	}
	_, err := colorful.Hex(value)
	return err == nil
}

// readableOn picks black or white text for the given background.
func readableOn(background string) string {
	c, err := colorful.Hex(background)
	if err != nil {
		return "#ffffff"
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}
