package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

func TestExtractHierarchy(t *testing.T) {
	row := types.Row{
		"GID_0": "USA", "NAME_0": "United States",
		"GID_1": "USA.10_1", "NAME_1": "Florida",
		"GID_2": "USA.10.1_1", "NAME_2": "Alachua",
		"GID_3": "USA.10.1.3_1", "NAME_3": "Gainesville",
	}
	got := ExtractHierarchy(row, types.LevelCounty, types.DefaultColumnConvention())
	want := types.Hierarchy{
		{Level: types.LevelCountry, Name: "United States", GID: "USA"},
		{Level: types.LevelState, Name: "Florida", GID: "USA.10_1"},
		{Level: types.LevelCounty, Name: "Alachua", GID: "USA.10.1_1"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected hierarchy (-want +got):\n%s", diff)
	}
	deepest, ok := got.Deepest()
	assert.True(t, ok)
	assert.Equal(t, "USA.10.1_1", deepest.GID)
}

func TestExtractHierarchyStopsAtMissingIdentifier(t *testing.T) {
	row := types.Row{
		"GID_0": "USA", "NAME_0": "United States",
		"NAME_1": "Florida",
		"GID_2": "USA.10.1_1", "NAME_2": "Alachua",
	}
	got := ExtractHierarchy(row, types.LevelCounty, types.DefaultColumnConvention())
	assert.Equal(t, types.Hierarchy{{Level: types.LevelCountry, Name: "United States", GID: "USA"}}, got)
}

func TestExtractHierarchyWithoutMatch(t *testing.T) {
	assert.Nil(t, ExtractHierarchy(nil, types.LevelCountry, types.DefaultColumnConvention()))
	assert.Nil(t, ExtractHierarchy(types.Row{"GID_0": "USA"}, types.LevelContinent, types.DefaultColumnConvention()))
}
