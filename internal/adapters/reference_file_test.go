package adapters

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nitingoyal0996/gbif-sub000/internal/types"
	"github.com/nitingoyal0996/gbif-sub000/tests/testutil"
)

func TestReferenceFileRoundTrip(t *testing.T) {
	path := testutil.WriteReferenceFixture(t, t.TempDir(), testutil.GADMDataset())
	store, err := NewReferenceFileAdapter().Open(context.Background(), path, 1)
	require.NoError(t, err)
	defer store.Close()

	layers, err := store.Layers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{testutil.GADMLayer}, layers)

	row, found, err := store.FindFirst(context.Background(), types.LayerQuery{
		Layer:  testutil.GADMLayer,
		Name:   types.Predicate{Kind: types.PredicateAnyFold, Columns: []string{"NAME_1", "VARNAME_1"}, Value: "tx"},
		Parent: types.Predicate{Kind: types.PredicateEqual, Columns: []string{"GID_0"}, Value: "USA"},
	})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "USA.44_1", row["GID_1"])
}

func TestMemoryStoreInfersColumns(t *testing.T) {
	file := types.ReferenceFile{Layers: []types.ReferenceLayer{{
		Name: "countries",
		Rows: []map[string]*string{
			{"NAME_0": strPtr("France"), "GID_0": strPtr("FRA")},
			{"NAME_0": strPtr("Unknown"), "GID_0": nil},
		},
	}}}
	store := NewMemoryReferenceStore(file)

	columns, err := store.Columns(context.Background(), "countries")
	require.NoError(t, err)
	assert.Equal(t, []string{"GID_0", "NAME_0"}, columns)

	row, found, err := store.FindFirst(context.Background(), types.LayerQuery{
		Layer:  "countries",
		Name:   types.Predicate{Kind: types.PredicateAnyFold, Columns: []string{"NAME_0"}, Value: "unknown"},
		Parent: types.AlwaysPredicate(),
	})
	require.NoError(t, err)
	require.True(t, found)
	_, ok := row.Value("GID_0")
	assert.False(t, ok)

	row["NAME_0"] = "mutated"
	again, _, err := store.FindFirst(context.Background(), types.LayerQuery{
		Layer:  "countries",
		Name:   types.Predicate{Kind: types.PredicateAnyFold, Columns: []string{"NAME_0"}, Value: "unknown"},
		Parent: types.AlwaysPredicate(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Unknown", again["NAME_0"])
}

func TestMemoryStoreUnknownLayer(t *testing.T) {
	store := NewMemoryReferenceStore(types.ReferenceFile{})
	_, _, err := store.FindFirst(context.Background(), types.LayerQuery{Layer: "nope", Name: types.AlwaysPredicate(), Parent: types.AlwaysPredicate()})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
}

func TestReferenceFileErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := NewReferenceFileAdapter().Open(context.Background(), filepath.Join(dir, "missing.yaml"), 1)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("layers: {oops"), 0644))
	_, err = NewReferenceFileAdapter().Open(context.Background(), bad, 1)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestDatasetOpenerRoutesByExtension(t *testing.T) {
	dir := t.TempDir()
	opener := NewDatasetOpenerAdapter()

	fixture := testutil.WriteReferenceFixture(t, dir, testutil.GADMDataset())
	store, err := opener.Open(context.Background(), fixture, 1)
	require.NoError(t, err)
	_, isMemory := store.(*MemoryReferenceStore)
	assert.True(t, isMemory)
	require.NoError(t, store.Close())

	gpkg := testutil.WriteGeoPackage(t, dir, testutil.GADMDataset())
	store, err = opener.Open(context.Background(), gpkg, 1)
	require.NoError(t, err)
	_, isSQLite := store.(*GeoPackageStore)
	assert.True(t, isSQLite)
	require.NoError(t, store.Close())
}

func strPtr(value string) *string {
	return &value
}
