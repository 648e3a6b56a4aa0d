package storage

import (
	"context"
	"iter"
	"time"

	"pet-clinic-rowstore/internal/platform/apperrors"
	"pet-clinic-rowstore/internal/platform/logger"
	"pet-clinic-rowstore/internal/platform/metrics"
	"pet-clinic-rowstore/internal/ports/rowstore"
)

// instrumented aplica a cada llamada el timeout fijo, métricas, log debug y
// clasificación de errores. No reintenta.
type instrumented struct {
	next    rowstore.Session
	timeout time.Duration
	log     logger.Logger
	metrics *metrics.Collector
	now     func() time.Time
}

// Instrument envuelve una sesión. timeout <= 0 desactiva el deadline por llamada.
func Instrument(next rowstore.Session, timeout time.Duration, log logger.Logger, m *metrics.Collector) rowstore.Session {
	if log == nil {
		log = logger.Nop()
	}
	return &instrumented{
		next:    next,
		timeout: timeout,
		log:     log,
		metrics: m,
		now:     time.Now,
	}
}

func (s *instrumented) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *instrumented) observe(op, table string, start time.Time, err error) error {
	err = apperrors.Storage(op, table, err)

	status := "ok"
	if err != nil {
		status = string(apperrors.KindOf(err))
	}
	d := s.now().Sub(start)
	s.metrics.ObserveDB(op, table, status, d)

	if err != nil {
		s.log.Warn("storage call failed", map[string]any{"op": op, "table": table, "duration": d, "err": err})
	} else {
		s.log.Debug("storage call", map[string]any{"op": op, "table": table, "duration": d})
	}
	return err
}

func (s *instrumented) Get(ctx context.Context, key rowstore.Key) (rowstore.Row, bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := s.now()
	row, ok, err := s.next.Get(ctx, key)
	return row, ok, s.observe("get", key.Table, start, err)
}

func (s *instrumented) Put(ctx context.Context, row rowstore.Row) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := s.now()
	return s.observe("put", row.Key.Table, start, s.next.Put(ctx, row))
}

func (s *instrumented) Delete(ctx context.Context, key rowstore.Key) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := s.now()
	return s.observe("delete", key.Table, start, s.next.Delete(ctx, key))
}

func (s *instrumented) Scan(ctx context.Context, table, partition string) iter.Seq2[rowstore.Row, error] {
	return s.scan(ctx, "scan", table, func(ctx context.Context) iter.Seq2[rowstore.Row, error] {
		return s.next.Scan(ctx, table, partition)
	})
}

func (s *instrumented) ScanTable(ctx context.Context, table string) iter.Seq2[rowstore.Row, error] {
	return s.scan(ctx, "scan_table", table, func(ctx context.Context) iter.Seq2[rowstore.Row, error] {
		return s.next.ScanTable(ctx, table)
	})
}

// scan: el timeout cubre todo el recorrido de la partición, desde el primer
// pedido hasta que el consumidor corta o se agotan las filas.
func (s *instrumented) scan(ctx context.Context, op, table string, open func(context.Context) iter.Seq2[rowstore.Row, error]) iter.Seq2[rowstore.Row, error] {
	return func(yield func(rowstore.Row, error) bool) {
		ctx, cancel := s.withTimeout(ctx)
		defer cancel()

		start := s.now()
		for row, err := range open(ctx) {
			if err != nil {
				yield(rowstore.Row{}, s.observe(op, table, start, err))
				return
			}
			if !yield(row, nil) {
				break
			}
		}
		_ = s.observe(op, table, start, nil)
	}
}

func (s *instrumented) Close() error {
	return s.next.Close()
}
