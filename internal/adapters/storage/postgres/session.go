package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"strings"

	"pet-clinic-rowstore/internal/platform/apperrors"
	"pet-clinic-rowstore/internal/ports/rowstore"

	"github.com/jackc/pgx/v5/pgconn"
)

// Session guarda todas las tablas lógicas en <keyspace>.rows, una fila física
// por (tbl, pk, ck) con las columnas en jsonb.
type Session struct {
	db       *sql.DB
	keyspace string

	qGet, qPut, qDelete, qScan, qScanTable string
}

var _ rowstore.Session = (*Session)(nil)

// NewSession prepara el keyspace. keyspace ya viene validado como identificador.
func NewSession(ctx context.Context, db *sql.DB, keyspace string, createIfMissing bool) (*Session, error) {
	keyspace = schemaName(keyspace)
	if err := ensureSchema(ctx, db, keyspace, createIfMissing); err != nil {
		return nil, err
	}

	t := keyspace + ".rows"
	return &Session{
		db:         db,
		keyspace:   keyspace,
		qGet:       `SELECT cols FROM ` + t + ` WHERE tbl = $1 AND pk = $2 AND ck = $3`,
		qPut:       `INSERT INTO ` + t + ` (tbl, pk, ck, cols) VALUES ($1, $2, $3, $4) ON CONFLICT (tbl, pk, ck) DO UPDATE SET cols = EXCLUDED.cols`,
		qDelete:    `DELETE FROM ` + t + ` WHERE tbl = $1 AND pk = $2 AND ck = $3`,
		qScan:      `SELECT pk, ck, cols FROM ` + t + ` WHERE tbl = $1 AND pk = $2 ORDER BY ck`,
		qScanTable: `SELECT pk, ck, cols FROM ` + t + ` WHERE tbl = $1 ORDER BY pk, ck`,
	}, nil
}

// schemaName pasa el keyspace a minúsculas: Postgres pliega así los
// identificadores sin comillas y information_schema los guarda plegados.
func schemaName(keyspace string) string {
	return strings.ToLower(strings.TrimSpace(keyspace))
}

func ensureSchema(ctx context.Context, db *sql.DB, keyspace string, createIfMissing bool) error {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = $1 AND table_name = 'rows')`,
		keyspace,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if !createIfMissing {
		return fmt.Errorf("keyspace %s not found and schema action is NONE", keyspace)
	}

	stmts := []string{
		`CREATE SCHEMA IF NOT EXISTS ` + keyspace,
		`CREATE TABLE IF NOT EXISTS ` + keyspace + `.rows (
			tbl  TEXT  NOT NULL,
			pk   TEXT  NOT NULL,
			ck   TEXT  NOT NULL DEFAULT '',
			cols JSONB NOT NULL,
			PRIMARY KEY (tbl, pk, ck)
		)`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) Get(ctx context.Context, key rowstore.Key) (rowstore.Row, bool, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, s.qGet, key.Table, key.Partition, key.Clustering).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return rowstore.Row{}, false, nil
	}
	if err != nil {
		return rowstore.Row{}, false, wrap("get", key.Table, err)
	}

	cols, err := decodeColumns(key.Table, raw)
	if err != nil {
		return rowstore.Row{}, false, err
	}
	return rowstore.Row{Key: key, Columns: cols}, true, nil
}

func (s *Session) Put(ctx context.Context, row rowstore.Row) error {
	cols := row.Columns
	if cols == nil {
		cols = map[string]any{}
	}
	raw, err := json.Marshal(cols)
	if err != nil {
		return wrap("put", row.Key.Table, err)
	}

	if _, err := s.db.ExecContext(ctx, s.qPut, row.Key.Table, row.Key.Partition, row.Key.Clustering, raw); err != nil {
		return wrap("put", row.Key.Table, err)
	}
	return nil
}

func (s *Session) Delete(ctx context.Context, key rowstore.Key) error {
	if _, err := s.db.ExecContext(ctx, s.qDelete, key.Table, key.Partition, key.Clustering); err != nil {
		return wrap("delete", key.Table, err)
	}
	return nil
}

func (s *Session) Scan(ctx context.Context, table, partition string) iter.Seq2[rowstore.Row, error] {
	return s.query(ctx, "scan", table, s.qScan, table, partition)
}

func (s *Session) ScanTable(ctx context.Context, table string) iter.Seq2[rowstore.Row, error] {
	return s.query(ctx, "scan_table", table, s.qScanTable, table)
}

// query emite filas a medida que el driver las entrega; cortar el range cierra el cursor.
func (s *Session) query(ctx context.Context, op, table, q string, args ...any) iter.Seq2[rowstore.Row, error] {
	return func(yield func(rowstore.Row, error) bool) {
		rows, err := s.db.QueryContext(ctx, q, args...)
		if err != nil {
			yield(rowstore.Row{}, wrap(op, table, err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var (
				pk, ck string
				raw    []byte
			)
			if err := rows.Scan(&pk, &ck, &raw); err != nil {
				yield(rowstore.Row{}, wrap(op, table, err))
				return
			}
			cols, err := decodeColumns(table, raw)
			if err != nil {
				yield(rowstore.Row{}, err)
				return
			}
			row := rowstore.Row{
				Key:     rowstore.Key{Table: table, Partition: pk, Clustering: ck},
				Columns: cols,
			}
			if !yield(row, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(rowstore.Row{}, wrap(op, table, err))
		}
	}
}

func (s *Session) Close() error {
	return s.db.Close()
}

func decodeColumns(table string, raw []byte) (map[string]any, error) {
	cols := map[string]any{}
	if len(raw) == 0 {
		return cols, nil
	}
	if err := json.Unmarshal(raw, &cols); err != nil {
		return nil, apperrors.NewMappingError(table, "cols", err.Error())
	}
	return cols, nil
}

func wrap(op, table string, err error) error {
	se := &apperrors.StorageError{
		Op:      op,
		Table:   table,
		Timeout: errors.Is(err, context.DeadlineExceeded),
		Err:     err,
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		se.Code = pgErr.Code
	}
	return se
}
