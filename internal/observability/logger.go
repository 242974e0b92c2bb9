package observability

import (
	"log/slog"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"

	"github.com/couchcryptid/element-phase-service/internal/config"
)

// NewLogger builds the service logger from LOG_LEVEL and LOG_FORMAT and installs
// it as the slog default. Every record carries the service name.
func NewLogger(cfg *config.Config) *slog.Logger {
	return sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat).With("service", "element-phase-service")
}
