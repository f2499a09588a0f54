package ports

import "context"

const (
	// EventThemeChanged is emitted when the active colour theme is replaced.
	EventThemeChanged = "theme.changed"
	// EventDraftUpdated is emitted whenever the draft record is replaced.
	EventDraftUpdated = "customization.draft_updated"
	// EventPersisted is emitted after the persisted record has been stored.
	EventPersisted = "customization.persisted"
	// EventSaved is emitted by the panel once a save dispatch succeeded.
	EventSaved = "customization.saved"
	// EventChartRebuild asks dependent visual consumers to redraw.
	EventChartRebuild = "chart.rebuild"
)

// DomainEvent represents a significant occurrence within the domain or
// application layer.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish returns once every handler ran. Implementations must
// be thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures are surfaced
// via the returned error so publishers can log and keep delivering.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler.
type Subscription interface {
	Unsubscribe()
}

// Event is a plain DomainEvent value.
type Event struct {
	Type string
	Data map[string]interface{}
}

// EventType implements DomainEvent.
func (e Event) EventType() string { return e.Type }

// Payload implements DomainEvent.
func (e Event) Payload() interface{} { return e.Data }
