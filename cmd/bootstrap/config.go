package bootstrap

import (
	"time"

	"temple-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
	),
)

// NewLocation resolves the time zone that decides "today" for booking rules.
func NewLocation(cfg config.Config) (*time.Location, error) {
	return cfg.App.Location()
}
