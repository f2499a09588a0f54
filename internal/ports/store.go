package ports

import (
	"context"

	"github.com/alexisbeaulieu97/customizer/internal/domain/customization"
)

// UpdatePayload carries a serialised customization record to persist.
type UpdatePayload struct {
	Settings string
}

// StoreReader exposes the slices of central state the panel reads. Reads
// never fail: missing data degrades to empty records or "not logged in".
type StoreReader interface {
	CurrentColorTheme() string
	CurrentCustomization() customization.Record
	CustomizationData() customization.Record
	UserLoggedIn() bool
}

// StoreWriter accepts update intents. Each call replaces one whole field or
// record, so callers never patch a privately cached copy.
type StoreWriter interface {
	ChangeColorTheme(ctx context.Context, themeID string)
	UpdateCustomization(ctx context.Context, payload UpdatePayload) error
	UpdateCurrentCustomization(ctx context.Context, draft customization.Record)
	ToggleChartRebuild(ctx context.Context)
}

// Store is the full read/write port consumed by the customization panel.
type Store interface {
	StoreReader
	StoreWriter
}

// Snapshot is the unit persisted by a Persister.
type Snapshot struct {
	ColorTheme string
	Settings   string
}

// Persister stores and restores the committed customization snapshot.
// Load returns a zero Snapshot and no error when nothing was saved yet.
type Persister interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snapshot Snapshot) error
	Name() string
}
