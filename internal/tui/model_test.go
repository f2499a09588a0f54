package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/customizer/internal/application/panel"
	"github.com/alexisbeaulieu97/customizer/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/customizer/internal/infrastructure/store"
	"github.com/alexisbeaulieu97/customizer/internal/infrastructure/style"
)

type fixture struct {
	store  *store.Store
	memory *store.MemoryPersister
	doc    *style.Document
	panel  *panel.Panel
	model  Model
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	pub := events.NewLoggingPublisher(nil)
	memory := store.NewMemoryPersister()
	st := store.New(store.Options{Persister: memory, Events: pub, DefaultTheme: "dark", UserLoggedIn: true})

	catalog, err := style.BuiltinCatalog()
	require.NoError(t, err)
	doc := style.NewDocument(catalog)
	binding, err := style.Bind(doc, st, pub, nil)
	require.NoError(t, err)
	t.Cleanup(binding.Close)
	require.NoError(t, binding.Sync(ctx))

	p, err := panel.New(panel.Options{Store: st, Styles: doc, Events: pub})
	require.NoError(t, err)

	m := NewModel(Options{Context: ctx, Panel: p, Document: doc, Store: st, Events: pub})
	t.Cleanup(m.Close)

	return &fixture{store: st, memory: memory, doc: doc, panel: p, model: m}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		next, ok := updated.(Model)
		require.True(t, ok)
		m = next
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

func TestNewModelDefaults(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, SettingsRoute, f.model.Route())
	require.Equal(t, 0, f.model.RebuildCount())
	require.NotNil(t, f.model.Init())
}

func TestNewModelPlacesCursorOnCurrentTheme(t *testing.T) {
	f := newFixture(t)
	f.store.ChangeColorTheme(context.Background(), "light")
	m := NewModel(Options{Panel: f.panel, Document: f.doc, Store: f.store})
	require.Equal(t, 1, m.themeCursor)
}

func TestCloseEndsPendingRebuildWait(t *testing.T) {
	f := newFixture(t)
	wait := f.model.Init()

	done := make(chan tea.Msg, 1)
	go func() { done <- wait() }()

	f.model.Close()
	f.model.Close()

	select {
	case msg := <-done:
		require.Nil(t, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("rebuild wait still blocked after Close")
	}

	// Rebuilds after Close are dropped instead of panicking on the closed channel.
	f.panel.TriggerChartRebuild(context.Background())
	f.model.rebuilds.notify()
}
