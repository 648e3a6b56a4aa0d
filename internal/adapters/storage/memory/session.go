package memory

import (
	"context"
	"iter"
	"sort"
	"strings"
	"sync"

	"pet-clinic-rowstore/internal/ports/rowstore"
)

// Op identifica la operación sobre la que se inyecta un fallo.
type Op string

const (
	OpGet    Op = "get"
	OpPut    Op = "put"
	OpDelete Op = "delete"
	OpScan   Op = "scan"
)

type faultKey struct {
	op    Op
	table string
}

// Session es una sesión in-memory: tabla -> partición -> clustering -> columnas.
// Sirve para modo dev y como fake en tests (FailOn, Writes).
type Session struct {
	mu     sync.RWMutex
	tables map[string]map[string]map[string]map[string]any
	faults map[faultKey]error
	writes int
}

func NewSession() *Session {
	return &Session{
		tables: make(map[string]map[string]map[string]map[string]any),
		faults: make(map[faultKey]error),
	}
}

var _ rowstore.Session = (*Session)(nil)

// FailOn hace que toda llamada op sobre table devuelva err hasta Heal.
func (s *Session) FailOn(op Op, table string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[faultKey{op: op, table: table}] = err
}

// Heal limpia todos los fallos inyectados.
func (s *Session) Heal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults = make(map[faultKey]error)
}

// Writes cuenta Put + Delete exitosos desde la creación.
func (s *Session) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Len devuelve la cantidad de filas físicas de una tabla.
func (s *Session) Len(table string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, p := range s.tables[table] {
		n += len(p)
	}
	return n
}

func (s *Session) fault(op Op, table string) error {
	return s.faults[faultKey{op: op, table: table}]
}

func (s *Session) Get(ctx context.Context, key rowstore.Key) (rowstore.Row, bool, error) {
	if err := ctx.Err(); err != nil {
		return rowstore.Row{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.fault(OpGet, key.Table); err != nil {
		return rowstore.Row{}, false, err
	}

	cols, ok := s.tables[key.Table][key.Partition][key.Clustering]
	if !ok {
		return rowstore.Row{}, false, nil
	}
	return rowstore.Row{Key: key, Columns: cloneColumns(cols)}, true, nil
}

func (s *Session) Put(ctx context.Context, row rowstore.Row) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fault(OpPut, row.Key.Table); err != nil {
		return err
	}

	t, ok := s.tables[row.Key.Table]
	if !ok {
		t = make(map[string]map[string]map[string]any)
		s.tables[row.Key.Table] = t
	}
	p, ok := t[row.Key.Partition]
	if !ok {
		p = make(map[string]map[string]any)
		t[row.Key.Partition] = p
	}
	p[row.Key.Clustering] = cloneColumns(row.Columns)
	s.writes++
	return nil
}

func (s *Session) Delete(ctx context.Context, key rowstore.Key) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fault(OpDelete, key.Table); err != nil {
		return err
	}

	if p, ok := s.tables[key.Table][key.Partition]; ok {
		delete(p, key.Clustering)
		if len(p) == 0 {
			delete(s.tables[key.Table], key.Partition)
		}
	}
	s.writes++
	return nil
}

func (s *Session) Scan(ctx context.Context, table, partition string) iter.Seq2[rowstore.Row, error] {
	return func(yield func(rowstore.Row, error) bool) {
		rows, err := s.snapshot(ctx, table, func(p string) bool { return p == partition })
		if err != nil {
			yield(rowstore.Row{}, err)
			return
		}
		for _, r := range rows {
			if !yield(r, nil) {
				return
			}
		}
	}
}

func (s *Session) ScanTable(ctx context.Context, table string) iter.Seq2[rowstore.Row, error] {
	return func(yield func(rowstore.Row, error) bool) {
		rows, err := s.snapshot(ctx, table, func(string) bool { return true })
		if err != nil {
			yield(rowstore.Row{}, err)
			return
		}
		for _, r := range rows {
			if !yield(r, nil) {
				return
			}
		}
	}
}

// snapshot copia las filas bajo lock para poder emitirlas sin retenerlo.
func (s *Session) snapshot(ctx context.Context, table string, match func(string) bool) ([]rowstore.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.fault(OpScan, table); err != nil {
		return nil, err
	}

	out := make([]rowstore.Row, 0)
	for pk, p := range s.tables[table] {
		if !match(pk) {
			continue
		}
		for ck, cols := range p {
			out = append(out, rowstore.Row{
				Key:     rowstore.Key{Table: table, Partition: pk, Clustering: ck},
				Columns: cloneColumns(cols),
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if c := strings.Compare(out[i].Key.Partition, out[j].Key.Partition); c != 0 {
			return c < 0
		}
		return out[i].Key.Clustering < out[j].Key.Clustering
	})
	return out, nil
}

func (s *Session) Close() error { return nil }

func cloneColumns(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		if l, ok := v.([]string); ok {
			cp := make([]string, len(l))
			copy(cp, l)
			out[k] = cp
			continue
		}
		out[k] = v
	}
	return out
}
