package bootstrap

import (
	"rental-booking/internal/pkg/config"
	"rental-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.JWTConfig) *jwt.Service {
	return jwt.NewService(cfg.Secret, cfg.Duration)
}
