package config_fx

import (
	"go.uber.org/fx"

	"oncocare/internal/config"
	"oncocare/pkg/utils"
)

var Module = fx.Provide(config.Load, provideTokenManager)

func provideTokenManager(cfg *config.Config) *utils.TokenManager {
	return utils.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL)
}
