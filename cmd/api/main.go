package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-clinic-rowstore/internal/app"
	"pet-clinic-rowstore/internal/platform/config"

	"github.com/joho/godotenv"
)

// @title Pet Clinic Rowstore API
// @version 1.0
// @description Dueños, mascotas, visitas y veterinarios sobre un store de filas anchas desnormalizado.
// @BasePath /petclinic/api
func main() {
	// .env es opcional (solo dev)
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}
	defer a.Close()

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      a.Router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	a.Logger.Info("starting server", map[string]any{"addr": cfg.Server.Address, "backend": cfg.Store.Backend})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.Logger.Error("server error", map[string]any{"err": err})
		os.Exit(1)
	}
	a.Logger.Info("server stopped", nil)
}
