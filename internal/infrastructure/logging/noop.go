package logging

import (
	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/customizer/internal/ports"
)

// NewNoOpLogger returns an adapter over zerolog's disabled logger. Entries,
// including those from derived loggers, are dropped before any field is
// formatted.
func NewNoOpLogger() ports.Logger {
	return &Logger{base: zerolog.Nop(), layer: "infrastructure"}
}
