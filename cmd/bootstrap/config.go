package bootstrap

import (
	"time"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
	),
)

// NewLocation is the zone calendar days are interpreted in.
func NewLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.DB.TimeZone)
}
