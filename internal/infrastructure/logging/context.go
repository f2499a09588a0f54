package logging

import (
	"context"

	"github.com/alexisbeaulieu97/customizer/internal/ports"
)

// WithCorrelationID stores the provided correlation identifier inside the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return ports.WithCorrelationID(ctx, id)
}

// NewCommandContext derives a context carrying a fresh correlation identifier.
func NewCommandContext(parent context.Context) (context.Context, string) {
	if parent == nil {
		parent = context.Background()
	}
	id := ports.GenerateCorrelationID()
	return ports.WithCorrelationID(parent, id), id
}
