// Package rowstore define el contrato de la sesión contra el store de filas anchas.
//
// Una fila se identifica por (tabla, partición, clustering). Las lecturas de
// varias filas solo existen como scan de una partición; no hay transacciones
// entre filas, cada Put/Delete es atómico solo sobre su fila.
package rowstore

import (
	"context"
	"iter"
	"strings"
)

type Key struct {
	Table      string
	Partition  string
	Clustering string // vacío en tablas de una fila por partición
}

func (k Key) String() string {
	if k.Clustering == "" {
		return k.Table + "/" + k.Partition
	}
	return k.Table + "/" + k.Partition + "/" + k.Clustering
}

// Row guarda columnas string o []string, nada más.
type Row struct {
	Key     Key
	Columns map[string]any
}

func NewRow(key Key) Row {
	return Row{Key: key, Columns: map[string]any{}}
}

func (r Row) Set(col string, v string) Row {
	r.Columns[col] = v
	return r
}

func (r Row) SetList(col string, v []string) Row {
	cp := make([]string, len(v))
	copy(cp, v)
	r.Columns[col] = cp
	return r
}

// String devuelve la columna y si estaba presente con tipo string.
func (r Row) String(col string) (string, bool) {
	v, ok := r.Columns[col]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Strings acepta []string y []any (lo que devuelven los decoders genéricos).
func (r Row) Strings(col string) ([]string, bool) {
	v, ok := r.Columns[col]
	if !ok || v == nil {
		return nil, false
	}
	switch t := v.(type) {
	case []string:
		return t, true
	case []any:
		out := make([]string, 0, len(t))
		for _, x := range t {
			s, ok := x.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// Session es el handle de conexión compartido por todos los DAOs.
// Se construye una vez al arrancar y es seguro para uso concurrente.
type Session interface {
	Get(ctx context.Context, key Key) (Row, bool, error)
	Put(ctx context.Context, row Row) error
	Delete(ctx context.Context, key Key) error

	// Scan recorre una partición en orden de clustering. La secuencia es
	// perezosa y de un solo uso.
	Scan(ctx context.Context, table, partition string) iter.Seq2[Row, error]

	// ScanTable recorre toda la tabla. Solo para tablas chicas (vets).
	ScanTable(ctx context.Context, table string) iter.Seq2[Row, error]

	Close() error
}

type Consistency string

const (
	One         Consistency = "ONE"
	LocalOne    Consistency = "LOCAL_ONE"
	LocalQuorum Consistency = "LOCAL_QUORUM"
	Quorum      Consistency = "QUORUM"
	All         Consistency = "ALL"
)

func ParseConsistency(s string) (Consistency, bool) {
	c := Consistency(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case One, LocalOne, LocalQuorum, Quorum, All:
		return c, true
	case "":
		return LocalQuorum, true
	default:
		return "", false
	}
}

// Strong indica si las lecturas deben ver la última escritura confirmada.
func (c Consistency) Strong() bool {
	switch c {
	case One, LocalOne:
		return false
	default:
		return true
	}
}
