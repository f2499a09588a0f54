package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("config.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "config.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "config.yaml")
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("store.backend", "unknown backend", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "store.backend", validationErr.Field)
	require.Contains(t, validationErr.Message, "unknown backend")
}

func TestPersistenceErrorIncludesBackend(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("database is locked")
	err := NewPersistenceError("sqlite", "open", underlying)

	var persistenceErr *PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	require.Equal(t, "sqlite", persistenceErr.Backend)
	require.Equal(t, "open", persistenceErr.Op)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "persistence error [sqlite] open: database is locked", err.Error())
}
