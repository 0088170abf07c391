package bootstrap

import (
	"rental-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigSections,
)

// ConfigSections publishes each section of config.Config on its own, so a
// constructor names only the settings it reads. Anything that provides a
// config.Config (the e2e graph supplies one directly) can include it.
var ConfigSections = fx.Provide(splitConfig)

type configSections struct {
	fx.Out

	DB      config.DBConfig
	Redis   config.RedisConfig
	Log     config.LogConfig
	JWT     config.JWTConfig
	Worker  config.WorkerConfig
	Booking config.BookingConfig
}

func splitConfig(cfg config.Config) configSections {
	return configSections{
		DB:      cfg.DB,
		Redis:   cfg.Redis,
		Log:     cfg.Log,
		JWT:     cfg.JWT,
		Worker:  cfg.Worker,
		Booking: cfg.Booking,
	}
}
