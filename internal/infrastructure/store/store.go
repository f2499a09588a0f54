// Package store implements the central customization store and the
// persistence backends it commits records through.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/customizer/internal/domain/customization"
	"github.com/alexisbeaulieu97/customizer/internal/ports"
)

// Options configures a Store.
type Options struct {
	Persister    ports.Persister
	Events       ports.EventPublisher
	Logger       ports.Logger
	DefaultTheme string
	UserLoggedIn bool
}

// Store holds the session's customization state. Every write replaces one
// whole field under the lock and is announced on the event publisher after
// the lock is released.
type Store struct {
	mu           sync.RWMutex
	colorTheme   string
	current      customization.Record
	data         customization.Record
	loggedIn     bool
	chartRebuild bool

	persister ports.Persister
	events    ports.EventPublisher
	logger    ports.Logger
}

// New creates a store. Without a persister records are kept in memory only.
func New(opts Options) *Store {
	persister := opts.Persister
	if persister == nil {
		persister = NewMemoryPersister()
	}
	logger := opts.Logger
	if logger != nil {
		logger = logger.With("component", "store")
	}
	return &Store{
		colorTheme: opts.DefaultTheme,
		loggedIn:   opts.UserLoggedIn,
		persister:  persister,
		events:     opts.Events,
		logger:     logger,
	}
}

// Load restores the last committed snapshot and seeds the draft from it.
func (s *Store) Load(ctx context.Context) error {
	snapshot, err := s.persister.Load(ctx)
	if err != nil {
		return customization.NewPersistenceError(s.persister.Name(), err)
	}
	rec, err := customization.Decode(snapshot.Settings)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if snapshot.ColorTheme != "" {
		s.colorTheme = snapshot.ColorTheme
	}
	s.data = rec
	s.current = rec.Clone()
	theme := s.colorTheme
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info(ctx, "customization loaded", "backend", s.persister.Name(), "theme_id", theme, "themes_saved", len(rec.ThemeColors))
	}
	s.publish(ctx, ports.EventThemeChanged, map[string]interface{}{"theme_id": theme})
	return nil
}

// CurrentColorTheme implements ports.StoreReader.
func (s *Store) CurrentColorTheme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.colorTheme
}

// CurrentCustomization implements ports.StoreReader.
func (s *Store) CurrentCustomization() customization.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// CustomizationData implements ports.StoreReader.
func (s *Store) CustomizationData() customization.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// UserLoggedIn implements ports.StoreReader.
func (s *Store) UserLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

// ChartRebuild reports the current state of the rebuild toggle.
func (s *Store) ChartRebuild() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.chartRebuild
}

// SetUserLoggedIn records the session's authentication state.
func (s *Store) SetUserLoggedIn(loggedIn bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = loggedIn
}

// ChangeColorTheme implements ports.StoreWriter.
func (s *Store) ChangeColorTheme(ctx context.Context, themeID string) {
	s.mu.Lock()
	s.colorTheme = themeID
	s.mu.Unlock()
	s.publish(ctx, ports.EventThemeChanged, map[string]interface{}{"theme_id": themeID})
}

// UpdateCustomization implements ports.StoreWriter. The settings string is
// decoded, committed through the persister and only then replaces the
// persisted record.
func (s *Store) UpdateCustomization(ctx context.Context, payload ports.UpdatePayload) error {
	rec, err := customization.Decode(payload.Settings)
	if err != nil {
		return err
	}

	theme := s.CurrentColorTheme()
	if err := s.persister.Save(ctx, ports.Snapshot{ColorTheme: theme, Settings: payload.Settings}); err != nil {
		return customization.NewPersistenceError(s.persister.Name(), err)
	}

	s.mu.Lock()
	s.data = rec
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info(ctx, "customization persisted", "backend", s.persister.Name(), "theme_id", theme, "bytes", len(payload.Settings))
	}
	s.publish(ctx, ports.EventPersisted, map[string]interface{}{
		"theme_id": theme,
		"backend":  s.persister.Name(),
	})
	return nil
}

// UpdateCurrentCustomization implements ports.StoreWriter.
func (s *Store) UpdateCurrentCustomization(ctx context.Context, draft customization.Record) {
	s.mu.Lock()
	s.current = draft.Clone()
	s.mu.Unlock()
	s.publish(ctx, ports.EventDraftUpdated, map[string]interface{}{"keys": fieldKeys(draft)})
}

// ToggleChartRebuild implements ports.StoreWriter.
func (s *Store) ToggleChartRebuild(ctx context.Context) {
	s.mu.Lock()
	s.chartRebuild = !s.chartRebuild
	value := s.chartRebuild
	s.mu.Unlock()
	s.publish(ctx, ports.EventChartRebuild, map[string]interface{}{"rebuild": value})
}

func (s *Store) publish(ctx context.Context, eventType string, payload map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, ports.Event{Type: eventType, Data: payload}); err != nil && s.logger != nil {
		s.logger.Warn(ctx, "failed to publish store event", "event_type", eventType, "error", err)
	}
}

func fieldKeys(rec customization.Record) []string {
	keys := make([]string, 0, len(rec.Fields))
	for key := range rec.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

var _ ports.Store = (*Store)(nil)
