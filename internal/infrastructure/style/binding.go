package style

import (
	"context"

	"github.com/alexisbeaulieu97/customizer/internal/ports"
)

// Binding keeps a Document in step with the store: whenever the active theme
// changes the theme is applied and its saved colours are restored on top.
type Binding struct {
	doc    *Document
	store  ports.StoreReader
	logger ports.Logger
	sub    ports.Subscription
}

// Bind subscribes doc to theme changes announced on events.
func Bind(doc *Document, store ports.StoreReader, events ports.EventPublisher, logger ports.Logger) (*Binding, error) {
	if logger != nil {
		logger = logger.With("component", "style")
	}
	b := &Binding{doc: doc, store: store, logger: logger}
	if events != nil {
		sub, err := events.Subscribe(ports.EventThemeChanged, b.onThemeChanged)
		if err != nil {
			return nil, err
		}
		b.sub = sub
	}
	return b, nil
}

// Sync applies the store's current theme immediately.
func (b *Binding) Sync(ctx context.Context) error {
	return b.apply(ctx, b.store.CurrentColorTheme())
}

// Close stops following theme changes.
func (b *Binding) Close() {
	if b.sub != nil {
		b.sub.Unsubscribe()
		b.sub = nil
	}
}

func (b *Binding) onThemeChanged(ctx context.Context, event ports.DomainEvent) error {
	themeID := b.store.CurrentColorTheme()
	if data, ok := event.Payload().(map[string]interface{}); ok {
		if id, ok := data["theme_id"].(string); ok && id != "" {
			themeID = id
		}
	}
	return b.apply(ctx, themeID)
}

func (b *Binding) apply(ctx context.Context, themeID string) error {
	if err := b.doc.Apply(themeID); err != nil {
		return err
	}
	saved := b.store.CustomizationData().ThemeColors[themeID]
	b.doc.Restore(saved)
	if b.logger != nil {
		b.logger.Debug(ctx, "theme applied", "theme_id", themeID, "restored", len(b.doc.Overrides()))
	}
	return nil
}
