package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	logginginfra "github.com/alexisbeaulieu97/customizer/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/customizer/internal/ports"
)

func TestLoggingPublisherIncludesCorrelationID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger, err := logginginfra.New(logginginfra.Options{Writer: buf, Level: "debug"})
	require.NoError(t, err)

	publisher := NewLoggingPublisher(logger)

	ctx := logginginfra.WithCorrelationID(context.Background(), "abc-123")
	err = publisher.Publish(ctx, ports.Event{
		Type: ports.EventThemeChanged,
		Data: map[string]interface{}{"theme_id": "dark"},
	})
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "domain event", entry["message"])
	require.Equal(t, ports.EventThemeChanged, entry["event_type"])
	require.Equal(t, "abc-123", entry["correlation_id"])
	require.Equal(t, "events", entry["component"])
	require.Equal(t, "dark", entry["theme_id"])
}

func TestLoggingPublisherInvokesSubscribersUntilUnsubscribed(t *testing.T) {
	t.Parallel()

	publisher := NewLoggingPublisher(nil)

	var calls int
	sub, err := publisher.Subscribe(ports.EventChartRebuild, func(context.Context, ports.DomainEvent) error {
		calls++
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, publisher.Publish(context.Background(), ports.Event{Type: ports.EventChartRebuild}))
	require.NoError(t, publisher.Publish(context.Background(), ports.Event{Type: ports.EventSaved}))
	require.Equal(t, 1, calls)

	sub.Unsubscribe()
	require.NoError(t, publisher.Publish(context.Background(), ports.Event{Type: ports.EventChartRebuild}))
	require.Equal(t, 1, calls)
}

func TestLoggingPublisherContinuesAfterHandlerFailure(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger, err := logginginfra.New(logginginfra.Options{Writer: buf, Level: "warn"})
	require.NoError(t, err)
	publisher := NewLoggingPublisher(logger)

	var second bool
	_, _ = publisher.Subscribe(ports.EventPersisted, func(context.Context, ports.DomainEvent) error {
		return errors.New("boom")
	})
	_, _ = publisher.Subscribe(ports.EventPersisted, func(context.Context, ports.DomainEvent) error {
		second = true
		return nil
	})

	require.NoError(t, publisher.Publish(context.Background(), ports.Event{Type: ports.EventPersisted}))
	require.True(t, second)
	require.True(t, strings.Contains(buf.String(), "event handler failed"))
}
