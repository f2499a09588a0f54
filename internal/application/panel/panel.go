// Package panel implements the customization panel: its transient UI state,
// the transitions between states, and the save flow that snapshots the live
// palette into the persisted record.
package panel

import (
	"context"
	"errors"

	"github.com/alexisbeaulieu97/customizer/internal/domain/customization"
	"github.com/alexisbeaulieu97/customizer/internal/domain/palette"
	"github.com/alexisbeaulieu97/customizer/internal/ports"
)

// Options wires a Panel to its collaborators. Store is required; everything
// else degrades gracefully when nil.
type Options struct {
	Store      ports.Store
	Styles     ports.StyleResolver
	Translator ports.Translator
	Titles     []palette.ColorTitle
	Logger     ports.Logger
	Events     ports.EventPublisher
}

// Panel owns the UI state of one mounted customization panel.
type Panel struct {
	state      UIState
	store      ports.Store
	styles     ports.StyleResolver
	translator ports.Translator
	keys       []string
	logger     ports.Logger
	events     ports.EventPublisher
}

// New mounts a panel in its initial state.
func New(opts Options) (*Panel, error) {
	if opts.Store == nil {
		return nil, errors.New("panel: store is required")
	}
	titles := opts.Titles
	if titles == nil {
		titles = palette.AvailableColorTitles
	}
	logger := opts.Logger
	if logger != nil {
		logger = logger.With("component", "panel", "layer", "application")
	}
	return &Panel{
		state:      NewUIState(),
		store:      opts.Store,
		styles:     opts.Styles,
		translator: opts.Translator,
		keys:       palette.Keys(titles),
		logger:     logger,
		events:     opts.Events,
	}, nil
}

// State returns a copy of the current UI state.
func (p *Panel) State() UIState {
	return p.state
}

// ColorKeys returns the visual variables captured on save, in order.
func (p *Panel) ColorKeys() []string {
	return append([]string(nil), p.keys...)
}

// SelectTab activates the tab at i. i must index a rendered tab.
func (p *Panel) SelectTab(i int) {
	p.state.CurrentTabIndex = i
}

// ToggleOpen flips the panel between shown and collapsed.
func (p *Panel) ToggleOpen() bool {
	p.state.IsOpen = !p.state.IsOpen
	return p.state.IsOpen
}

// ToggleResetToDefault flips the flag the themes sub-panel reads to discard
// live edits and show default values.
func (p *Panel) ToggleResetToDefault() bool {
	p.state.ResetToDefault = !p.state.ResetToDefault
	return p.state.ResetToDefault
}

// SetColorTheme forwards a theme switch to the store.
func (p *Panel) SetColorTheme(ctx context.Context, themeID string) {
	p.debug(ctx, "changing colour theme", "theme_id", themeID)
	p.store.ChangeColorTheme(ctx, themeID)
}

// EditField merges {key: value} into the draft and hands the whole merged
// draft back to the store. Nothing is buffered locally.
func (p *Panel) EditField(ctx context.Context, key string, value any) error {
	draft, err := p.store.CurrentCustomization().With(key, value)
	if err != nil {
		if p.logger != nil {
			p.logger.Warn(ctx, "rejected customization edit", "key", key, "error", err)
		}
		return err
	}
	p.debug(ctx, "updating draft customization", "key", key)
	p.store.UpdateCurrentCustomization(ctx, draft)
	return nil
}

// TriggerChartRebuild asks dependent consumers to redraw with new colours.
func (p *Panel) TriggerChartRebuild(ctx context.Context) {
	p.store.ToggleChartRebuild(ctx)
}

// Pending returns the record a Save would persist right now: the draft with
// the live palette folded in for the active theme.
func (p *Panel) Pending(ctx context.Context) customization.Record {
	record, _ := p.pending(ctx)
	return record
}

func (p *Panel) pending(ctx context.Context) (customization.Record, customization.Palette) {
	themeID := p.store.CurrentColorTheme()
	draft := p.store.CurrentCustomization()

	var source palette.StyleSource
	if p.styles != nil {
		if style, ok := p.styles.ComputedStyle(); ok {
			source = style
		}
	}
	if source == nil && p.logger != nil {
		p.logger.Warn(ctx, "no computed style available, saving empty palette", "theme_id", themeID)
	}
	captured := palette.Capture(source, p.keys)
	return customization.MergePalette(draft, themeID, captured), captured
}

// Save snapshots the live palette for the active theme, folds it into the
// draft and dispatches a single persist update.
func (p *Panel) Save(ctx context.Context) error {
	themeID := p.store.CurrentColorTheme()
	updated, captured := p.pending(ctx)

	settings, err := customization.Encode(updated)
	if err != nil {
		if p.logger != nil {
			p.logger.Error(ctx, "failed to encode customization", "theme_id", themeID, "error", err)
		}
		return err
	}

	if err := p.store.UpdateCustomization(ctx, ports.UpdatePayload{Settings: settings}); err != nil {
		if p.logger != nil {
			p.logger.Error(ctx, "failed to persist customization", "theme_id", themeID, "error", err)
		}
		return err
	}

	if p.logger != nil {
		p.logger.Info(ctx, "customization saved", "theme_id", themeID, "colors", len(captured))
	}
	publishEvent(ctx, p.events, p.logger, ports.EventSaved, map[string]interface{}{
		"theme_id": themeID,
		"colors":   len(captured),
	})
	return nil
}

// Translate resolves id through the injected translator, falling back to the
// id itself.
func (p *Panel) Translate(id string) string {
	if p.translator == nil {
		return id
	}
	return p.translator.Translate(id)
}

// RenderFor builds the content of the tab at index, or nil when index is not
// the active tab. Only the active tab's content is ever constructed.
func (p *Panel) RenderFor(ctx context.Context, index int) Content {
	if index != p.state.CurrentTabIndex {
		return nil
	}
	switch TabKind(index) {
	case TabThemes:
		return ThemesContent{
			ColorTheme:           p.store.CurrentColorTheme(),
			CurrentCustomization: p.store.CurrentCustomization(),
			Customization:        p.store.CustomizationData(),
			ResetToDefault:       p.state.ResetToDefault,
			Callbacks:            p.callbacks(ctx),
			Translate:            p.Translate,
		}
	case TabFonts:
		return FontsContent{Translate: p.Translate}
	case TabSpacing:
		return SpacingContent{Translate: p.Translate}
	case TabImages:
		return ImagesContent{Translate: p.Translate}
	default:
		return nil
	}
}

// Tabs returns every tab with its translated label; only the active tab
// carries content.
func (p *Panel) Tabs(ctx context.Context) []Tab {
	tabs := make([]Tab, 0, TabCount)
	for index, labelID := range tabLabelIDs {
		tabs = append(tabs, Tab{
			Label:   p.Translate(labelID),
			Content: p.RenderFor(ctx, index),
		})
	}
	return tabs
}

// Render returns the panel chrome, or nil when the visibility gate is
// closed. The gate is checked on every call.
func (p *Panel) Render(ctx context.Context, locationHash string) *View {
	if !ShouldRender(p.store.UserLoggedIn(), locationHash) {
		return nil
	}
	return &View{
		Hidden:          !p.state.IsOpen,
		CurrentTabIndex: p.state.CurrentTabIndex,
		Tabs:            p.Tabs(ctx),
		Actions: []ActionButton{
			{Label: p.Translate(ResetLabelID), Action: func() error {
				p.ToggleResetToDefault()
				return nil
			}},
			{Label: p.Translate(SaveLabelID), Action: func() error { return p.Save(ctx) }},
		},
	}
}

func (p *Panel) callbacks(ctx context.Context) Callbacks {
	return Callbacks{
		HandleSetCurrentColorTheme: func(themeID string) {
			p.SetColorTheme(ctx, themeID)
		},
		HandleSetCurrentCustomization: func(key string, value any) error {
			return p.EditField(ctx, key, value)
		},
		HandleTriggerChartRebuild: func() {
			p.TriggerChartRebuild(ctx)
		},
	}
}

func (p *Panel) debug(ctx context.Context, msg string, fields ...interface{}) {
	if p.logger != nil {
		p.logger.Debug(ctx, msg, fields...)
	}
}
