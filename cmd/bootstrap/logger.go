package bootstrap

import (
	"log/slog"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/handler/middleware"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewSlogLogger,
	),
)

// NewLogger also installs the logger as the slog default.
func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewSlogLogger(l *middleware.Logger) *slog.Logger {
	return l.GetSlogLogger()
}
