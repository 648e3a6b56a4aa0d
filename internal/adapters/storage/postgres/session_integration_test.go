//go:build integration

package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-clinic-rowstore/internal/platform/apperrors"
	"pet-clinic-rowstore/internal/ports/rowstore"
)

// Corre con: PETCLINIC_PG_DSN=postgres://... go test -tags integration ./internal/adapters/storage/postgres/
func openTestSession(t *testing.T, keyspace string, create bool) *Session {
	t.Helper()
	dsn := os.Getenv("PETCLINIC_PG_DSN")
	if dsn == "" {
		t.Skip("PETCLINIC_PG_DSN not set")
	}
	ctx := context.Background()
	db, err := Open(ctx, dsn, 5*time.Second)
	require.NoError(t, err)

	s, err := NewSession(ctx, db, keyspace, create)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSession_RoundTrip(t *testing.T) {
	const ks = "PetClinicIT"
	s := openTestSession(t, ks, true)
	ctx := context.Background()
	_, err := s.db.ExecContext(ctx, `TRUNCATE `+s.keyspace+`.rows`)
	require.NoError(t, err)

	// Con el schema ya creado, NONE lo encuentra aunque el keyspace venga con mayúsculas.
	openTestSession(t, ks, false)

	k := rowstore.Key{Table: "vet", Partition: "v1"}
	require.NoError(t, s.Put(ctx, rowstore.NewRow(k).Set("first_name", "Helen").SetList("specialties", []string{"radiology"})))
	require.NoError(t, s.Put(ctx, rowstore.NewRow(k).Set("first_name", "Helen").SetList("specialties", []string{"surgery"})))

	row, ok, err := s.Get(ctx, k)
	require.NoError(t, err)
	require.True(t, ok)
	specs, ok := row.Strings("specialties")
	require.True(t, ok)
	assert.Equal(t, []string{"surgery"}, specs)

	for _, ck := range []string{"p2", "p1", "p3"} {
		require.NoError(t, s.Put(ctx, rowstore.NewRow(rowstore.Key{Table: "pet_by_owner", Partition: "o1", Clustering: ck})))
	}
	require.NoError(t, s.Put(ctx, rowstore.NewRow(rowstore.Key{Table: "pet_by_owner", Partition: "o2", Clustering: "p9"})))

	var got []string
	for r, err := range s.Scan(ctx, "pet_by_owner", "o1") {
		require.NoError(t, err)
		got = append(got, r.Key.Clustering)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"p1", "p2"}, got)

	all, err := rowstore.Collect(s.ScanTable(ctx, "pet_by_owner"))
	require.NoError(t, err)
	assert.Len(t, all, 4)

	require.NoError(t, s.Delete(ctx, k))
	_, ok, err = s.Get(ctx, k)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSession_CanceledScanIsStorageError(t *testing.T) {
	s := openTestSession(t, "petclinic_it", true)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rowstore.Collect(s.ScanTable(ctx, "owner"))
	var se *apperrors.StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "scan_table", se.Op)
	assert.Equal(t, "owner", se.Table)
}
