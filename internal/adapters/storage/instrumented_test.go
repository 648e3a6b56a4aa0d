package storage

import (
	"context"
	"errors"
	"iter"
	"testing"
	"time"

	"pet-clinic-rowstore/internal/adapters/storage/memory"
	"pet-clinic-rowstore/internal/platform/apperrors"
	"pet-clinic-rowstore/internal/platform/config"
	"pet-clinic-rowstore/internal/platform/metrics"
	"pet-clinic-rowstore/internal/ports/rowstore"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowSession bloquea hasta que el contexto vence.
type slowSession struct {
	rowstore.Session
}

func (slowSession) Get(ctx context.Context, _ rowstore.Key) (rowstore.Row, bool, error) {
	<-ctx.Done()
	return rowstore.Row{}, false, ctx.Err()
}

func (slowSession) Scan(ctx context.Context, _, _ string) iter.Seq2[rowstore.Row, error] {
	return func(yield func(rowstore.Row, error) bool) {
		<-ctx.Done()
		yield(rowstore.Row{}, ctx.Err())
	}
}

func TestInstrument_TimeoutBecomesStorageError(t *testing.T) {
	sess := Instrument(slowSession{}, 10*time.Millisecond, nil, nil)

	_, _, err := sess.Get(context.Background(), rowstore.Key{Table: "owner", Partition: "o1"})

	require.Error(t, err)
	var se *apperrors.StorageError
	require.ErrorAs(t, err, &se)
	assert.True(t, se.Timeout)
	assert.Equal(t, "owner", se.Table)
	assert.Equal(t, apperrors.KindStorage, apperrors.KindOf(err))
}

func TestInstrument_ScanTimeout(t *testing.T) {
	sess := Instrument(slowSession{}, 10*time.Millisecond, nil, nil)

	var got error
	for _, err := range sess.Scan(context.Background(), "pet_by_owner", "o1") {
		got = err
	}
	assert.True(t, errors.Is(got, apperrors.ErrStorage))
}

func TestInstrument_RawErrorsClassifiedAndCounted(t *testing.T) {
	mem := memory.NewSession()
	m := metrics.NewCollector("test")
	sess := Instrument(mem, time.Second, nil, m)

	mem.FailOn(memory.OpPut, "owner", errors.New("node down"))
	err := sess.Put(context.Background(), rowstore.NewRow(rowstore.Key{Table: "owner", Partition: "o1"}))
	assert.True(t, errors.Is(err, apperrors.ErrStorage))

	mem.Heal()
	require.NoError(t, sess.Put(context.Background(), rowstore.NewRow(rowstore.Key{Table: "owner", Partition: "o1"})))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBOperations.WithLabelValues("put", "owner", "storage")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBOperations.WithLabelValues("put", "owner", "ok")))
}

func TestInstrument_MappingErrorPassesThrough(t *testing.T) {
	mem := memory.NewSession()
	sess := Instrument(mem, time.Second, nil, nil)

	mem.FailOn(memory.OpGet, "pet", apperrors.NewMappingError("pet", "pet_type", "unknown"))
	_, _, err := sess.Get(context.Background(), rowstore.Key{Table: "pet", Partition: "p1"})

	assert.Equal(t, apperrors.KindMapping, apperrors.KindOf(err))
}

func TestOpen_MemoryBackend(t *testing.T) {
	cfg := config.Default().Store

	sess, err := Open(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	defer sess.Close()

	key := rowstore.Key{Table: "owner", Partition: "o1"}
	require.NoError(t, sess.Put(context.Background(), rowstore.NewRow(key).Set("first_name", "George")))
	_, ok, err := sess.Get(context.Background(), key)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOpen_UnknownBackendIsConnectionError(t *testing.T) {
	cfg := config.Default().Store
	cfg.Backend = "cassandra"

	_, err := Open(context.Background(), cfg, nil, nil)
	assert.True(t, errors.Is(err, apperrors.ErrConnection))
}

func TestOpen_UnreachablePostgresIsConnectionError(t *testing.T) {
	cfg := config.Default().Store
	cfg.Backend = config.BackendPostgres
	cfg.ContactPoints = []string{"127.0.0.1"}
	cfg.Port = 1
	cfg.ConnectTimeout = 500 * time.Millisecond

	_, err := Open(context.Background(), cfg, nil, nil)
	assert.True(t, errors.Is(err, apperrors.ErrConnection))
}
