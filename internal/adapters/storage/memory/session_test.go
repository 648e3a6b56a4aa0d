package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-clinic-rowstore/internal/ports/rowstore"
)

func key(table, part, clust string) rowstore.Key {
	return rowstore.Key{Table: table, Partition: part, Clustering: clust}
}

func TestPutGetDelete(t *testing.T) {
	s := NewSession()
	ctx := context.Background()
	k := key("owner", "o1", "")

	require.NoError(t, s.Put(ctx, rowstore.NewRow(k).Set("first_name", "George")))

	row, ok, err := s.Get(ctx, k)
	require.NoError(t, err)
	require.True(t, ok)
	name, _ := row.String("first_name")
	assert.Equal(t, "George", name)

	require.NoError(t, s.Delete(ctx, k))
	_, ok, err = s.Get(ctx, k)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2, s.Writes())
	assert.Equal(t, 0, s.Len("owner"))
}

func TestPut_CopiesLists(t *testing.T) {
	s := NewSession()
	ctx := context.Background()
	k := key("vet", "v1", "")
	specs := []string{"radiology"}

	require.NoError(t, s.Put(ctx, rowstore.NewRow(k).SetList("specialties", specs)))
	specs[0] = "surgery"

	row, _, err := s.Get(ctx, k)
	require.NoError(t, err)
	got, _ := row.Strings("specialties")
	assert.Equal(t, []string{"radiology"}, got)
}

func TestScan_PartitionOrdered(t *testing.T) {
	s := NewSession()
	ctx := context.Background()
	for _, k := range []rowstore.Key{
		key("pet_by_owner", "o1", "p2"),
		key("pet_by_owner", "o1", "p1"),
		key("pet_by_owner", "o2", "p3"),
	} {
		require.NoError(t, s.Put(ctx, rowstore.NewRow(k)))
	}

	var got []string
	for row, err := range s.Scan(ctx, "pet_by_owner", "o1") {
		require.NoError(t, err)
		got = append(got, row.Key.Clustering)
	}
	assert.Equal(t, []string{"p1", "p2"}, got)

	all, err := rowstore.Collect(s.ScanTable(ctx, "pet_by_owner"))
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestFailOnAndHeal(t *testing.T) {
	s := NewSession()
	ctx := context.Background()
	boom := errors.New("boom")
	k := key("visit", "x1", "")

	s.FailOn(OpPut, "visit", boom)
	assert.ErrorIs(t, s.Put(ctx, rowstore.NewRow(k)), boom)
	assert.Equal(t, 0, s.Writes())

	s.FailOn(OpScan, "visit", boom)
	_, err := rowstore.Collect(s.ScanTable(ctx, "visit"))
	assert.ErrorIs(t, err, boom)

	s.Heal()
	require.NoError(t, s.Put(ctx, rowstore.NewRow(k)))
	assert.Equal(t, 1, s.Len("visit"))
}

func TestCanceledContext(t *testing.T) {
	s := NewSession()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Put(ctx, rowstore.NewRow(key("owner", "o1", ""))), context.Canceled)
	_, err := rowstore.Collect(s.Scan(ctx, "owner", "o1"))
	assert.ErrorIs(t, err, context.Canceled)
}
