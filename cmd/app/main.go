package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"oncocare/cmd/fx/account_fx"
	"oncocare/cmd/fx/care_fx"
	"oncocare/cmd/fx/config_fx"
	"oncocare/cmd/fx/controllers_fx"
	"oncocare/cmd/fx/dashboard_fx"
	"oncocare/cmd/fx/memcache_fx"
	"oncocare/cmd/fx/prompt_fx"
	"oncocare/internal/api"
	"oncocare/internal/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		prompt_fx.Module,
		memcache_fx.Module,
		care_fx.Module,
		account_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(api.NewRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.JWTSecret == config.DevJWTSecret {
				log.Println("[INFO] JWT_SECRET not set, using the development secret")
			}
			go func() {
				log.Printf("[INFO] Starting HTTP server at :%s", cfg.Port)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("[INFO] Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
