package bootstrap

import (
	"log/slog"

	"rental-booking/internal/handler/middleware"
	"rental-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as the slog default so package-level
// slog calls share its handler.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := middleware.NewLogger(cfg).GetSlogLogger()
	slog.SetDefault(logger)
	return logger
}
