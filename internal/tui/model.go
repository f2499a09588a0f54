// Package tui renders the customization panel as an interactive terminal
// overlay on a mock trading chart.
package tui

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/customizer/internal/application/panel"
	"github.com/alexisbeaulieu97/customizer/internal/infrastructure/style"
	"github.com/alexisbeaulieu97/customizer/internal/ports"
)

// Routes the g key switches between.
const (
	SettingsRoute = "#settings"
	TradingRoute  = "#trading"
)

type inputMode int

const (
	modeBrowse inputMode = iota
	modeEditColor
	modeEditField
)

type focusArea int

const (
	focusThemes focusArea = iota
	focusColors
)

// chartRebuiltMsg is delivered once per chart.rebuild event.
type chartRebuiltMsg struct{}

// Options wires the model.
type Options struct {
	Context  context.Context
	Panel    *panel.Panel
	Document *style.Document
	Store    ports.StoreReader
	Events   ports.EventPublisher
	Route    string
}

// Model is the bubbletea state of the customization overlay.
type Model struct {
	ctx   context.Context
	panel *panel.Panel
	doc   *style.Document
	store ports.StoreReader

	route   string
	keys    keyMap
	help    help.Model
	input   textinput.Model
	mode    inputMode
	focus   focusArea
	editing string

	themeCursor int
	colorCursor int

	rebuilds     *rebuildSignal
	subscription ports.Subscription
	rebuildCount int

	status string
	errMsg string

	width  int
	height int
}

// NewModel builds the overlay model and subscribes it to chart rebuilds.
func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	route := opts.Route
	if route == "" {
		route = SettingsRoute
	}

	input := textinput.New()
	input.CharLimit = 256

	m := Model{
		ctx:      ctx,
		panel:    opts.Panel,
		doc:      opts.Document,
		store:    opts.Store,
		route:    route,
		keys:     defaultKeyMap(),
		help:     help.New(),
		input:    input,
		rebuilds: newRebuildSignal(),
		width:    80,
		height:   24,
	}

	if opts.Events != nil {
		rebuilds := m.rebuilds
		sub, err := opts.Events.Subscribe(ports.EventChartRebuild, func(context.Context, ports.DomainEvent) error {
			rebuilds.notify()
			return nil
		})
		if err == nil {
			m.subscription = sub
		}
	}

	if m.doc != nil {
		for i, id := range m.doc.Catalog().IDs() {
			if id == m.currentTheme() {
				m.themeCursor = i
			}
		}
	}

	return m
}

// Init starts listening for chart rebuilds.
func (m Model) Init() tea.Cmd {
	return waitForRebuild(m.rebuilds.ch)
}

// Close releases the chart rebuild subscription and ends the pending wait
// for the next rebuild. It is safe to call more than once.
func (m Model) Close() {
	if m.subscription != nil {
		m.subscription.Unsubscribe()
	}
	if m.rebuilds != nil {
		m.rebuilds.close()
	}
}

// Route returns the location hash the panel is evaluated against.
func (m Model) Route() string {
	return m.route
}

// RebuildCount reports how many times the preview chart was redrawn.
func (m Model) RebuildCount() int {
	return m.rebuildCount
}

// Status returns the last informational message.
func (m Model) Status() string {
	return m.status
}

// Err returns the last error message.
func (m Model) Err() string {
	return m.errMsg
}

// rebuildSignal coalesces chart.rebuild events into at most one pending
// wake-up. Events delivered after close are dropped.
type rebuildSignal struct {
	mu     sync.Mutex
	ch     chan struct{}
	closed bool
}

func newRebuildSignal() *rebuildSignal {
	return &rebuildSignal{ch: make(chan struct{}, 1)}
}

func (s *rebuildSignal) notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

func (s *rebuildSignal) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}

func waitForRebuild(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return chartRebuiltMsg{}
	}
}

func (m Model) currentTheme() string {
	if m.store != nil {
		return m.store.CurrentColorTheme()
	}
	if m.doc != nil {
		return m.doc.Applied()
	}
	return ""
}

func (m Model) themeIDs() []string {
	if m.doc == nil {
		return nil
	}
	return m.doc.Catalog().IDs()
}

// themesContent returns the themes sub-panel's inputs when that tab is the
// active one.
func (m Model) themesContent() (panel.ThemesContent, bool) {
	content, ok := m.panel.RenderFor(m.ctx, int(panel.TabThemes)).(panel.ThemesContent)
	return content, ok
}
