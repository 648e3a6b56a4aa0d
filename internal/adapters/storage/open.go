// Package storage construye la sesión única contra el store configurado.
package storage

import (
	"context"
	"fmt"

	"pet-clinic-rowstore/internal/adapters/storage/ddb"
	"pet-clinic-rowstore/internal/adapters/storage/memory"
	pg "pet-clinic-rowstore/internal/adapters/storage/postgres"
	"pet-clinic-rowstore/internal/platform/apperrors"
	"pet-clinic-rowstore/internal/platform/config"
	"pet-clinic-rowstore/internal/platform/logger"
	"pet-clinic-rowstore/internal/platform/metrics"
	"pet-clinic-rowstore/internal/ports/rowstore"
)

// Open conecta al backend, prepara el keyspace según schema_action y devuelve
// la sesión instrumentada. Cualquier fallo acá es ConnectionError: el proceso
// no debe empezar a servir.
func Open(ctx context.Context, cfg config.StoreConfig, log logger.Logger, m *metrics.Collector) (rowstore.Session, error) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(map[string]any{"component": "storage", "backend": cfg.Backend})

	consistency, ok := rowstore.ParseConsistency(cfg.Consistency)
	if !ok {
		return nil, apperrors.NewConnectionError(cfg.Backend, fmt.Errorf("unknown consistency %q", cfg.Consistency))
	}
	create := cfg.SchemaAction == config.SchemaActionCreateIfNot

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	var (
		sess rowstore.Session
		err  error
	)
	switch cfg.Backend {
	case config.BackendMemory, "":
		sess = memory.NewSession()
	case config.BackendDynamoDB:
		sess, err = openDynamo(connectCtx, cfg, consistency, create)
	case config.BackendPostgres:
		sess, err = openPostgres(connectCtx, cfg, create)
	default:
		err = fmt.Errorf("unknown backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, apperrors.NewConnectionError(cfg.Backend, err)
	}

	log.Info("storage session ready", map[string]any{
		"keyspace":      cfg.Keyspace,
		"consistency":   string(consistency),
		"schema_action": cfg.SchemaAction,
	})
	return Instrument(sess, cfg.RequestTimeout, log, m), nil
}

func openDynamo(ctx context.Context, cfg config.StoreConfig, c rowstore.Consistency, create bool) (rowstore.Session, error) {
	client, err := ddb.NewClient(ctx, ddb.ClientConfig{
		Region:          cfg.LocalDatacenter,
		Endpoint:        ddb.EndpointFromContactPoints(cfg.ContactPoints, cfg.Port),
		StaticCreds:     cfg.Auth.Mode == config.AuthAWSStatic,
		AccessKeyID:     cfg.Auth.Username,
		SecretAccessKey: cfg.Auth.Password,
	})
	if err != nil {
		return nil, err
	}
	return ddb.Open(ctx, client, ddb.Options{
		Table:           cfg.Keyspace,
		Consistency:     c,
		CreateIfMissing: create,
	})
}

func openPostgres(ctx context.Context, cfg config.StoreConfig, create bool) (rowstore.Session, error) {
	dsn := cfg.DSN
	if dsn == "" {
		var err error
		dsn, err = pg.BuildDSN(pg.DSNParams{
			ContactPoints: cfg.ContactPoints,
			Port:          cfg.Port,
			Database:      cfg.Database,
			Username:      cfg.Auth.Username,
			Password:      cfg.Auth.Password,
			SSLMode:       cfg.SSLMode,
		})
		if err != nil {
			return nil, err
		}
	}

	db, err := pg.Open(ctx, dsn, cfg.ConnectTimeout)
	if err != nil {
		return nil, err
	}
	sess, err := pg.NewSession(ctx, db, cfg.Keyspace, create)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return sess, nil
}
