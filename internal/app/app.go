// Package app arma el proceso a partir de la config: logger, métricas, sesión
// contra el store y router. Lo usan cmd/api y cmd/lambda.
package app

import (
	"context"

	"pet-clinic-rowstore/internal/adapters/storage"
	"pet-clinic-rowstore/internal/platform/config"
	"pet-clinic-rowstore/internal/platform/logger"
	"pet-clinic-rowstore/internal/platform/metrics"
	"pet-clinic-rowstore/internal/ports/rowstore"
	"pet-clinic-rowstore/internal/router"

	"github.com/go-chi/chi/v5"
)

type App struct {
	Config  config.Config
	Logger  logger.Logger
	Metrics *metrics.Collector
	Session rowstore.Session
	Router  *chi.Mux
}

// New abre la sesión una sola vez. Si falla devuelve el ConnectionError y el
// proceso no debe servir.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	var m *metrics.Collector
	if cfg.Server.EnableMetrics {
		m = metrics.NewCollector("petclinic")
	}

	sess, err := storage.Open(ctx, cfg.Store, log, m)
	if err != nil {
		return nil, err
	}

	r := router.NewRouter(router.Options{
		Session:       sess,
		Logger:        log,
		Metrics:       m,
		EnableCORS:    cfg.Server.EnableCORS,
		EnableSwagger: cfg.Server.EnableSwagger,
	})

	return &App{
		Config:  cfg,
		Logger:  log,
		Metrics: m,
		Session: sess,
		Router:  r,
	}, nil
}

// Close cierra la sesión y vacía el logger.
func (a *App) Close() error {
	err := a.Session.Close()
	if z, ok := a.Logger.(interface{ Sync() error }); ok {
		_ = z.Sync()
	}
	return err
}
