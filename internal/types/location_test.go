package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestPlaceHierarchyEntries(t *testing.T) {
	place := PlaceHierarchy{Continent: "North America", Country: " USA ", County: "Alachua", ProtectedArea: "Paynes Prairie"}
	want := []LevelEntry{
		{Level: LevelCounty, Name: "Alachua"},
		{Level: LevelCountry, Name: "USA"},
		{Level: LevelContinent, Name: "North America"},
	}
	if diff := cmp.Diff(want, place.Entries()); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
	most, ok := place.MostSpecific()
	assert.True(t, ok)
	assert.Equal(t, LevelCounty, most.Level)
	assert.Equal(t, "Alachua, Paynes Prairie, USA, North America", place.String())
}

func TestPlaceHierarchyEmpty(t *testing.T) {
	place := PlaceHierarchy{Country: "   "}
	assert.True(t, place.IsEmpty())
	assert.Empty(t, place.Entries())
	_, ok := place.MostSpecific()
	assert.False(t, ok)
	assert.Equal(t, "Empty Location", place.String())
}

func TestLevelLabels(t *testing.T) {
	assert.Equal(t, "continent", LevelContinent.Label())
	assert.Equal(t, "locality", LevelLocality.Label())
	assert.False(t, LevelContinent.Matchable())
	assert.True(t, LevelCountry.Matchable())
	assert.False(t, AdministrativeLevel(4).Matchable())
}

func TestLayerQueryStatement(t *testing.T) {
	query := LayerQuery{
		Layer:  `odd"name`,
		Name:   Predicate{Kind: PredicateAnyFold, Columns: []string{"NAME_1", "VARNAME_1"}, Value: "Florida"},
		Parent: Predicate{Kind: PredicateEqual, Columns: []string{"GID_0"}, Value: "USA"},
	}
	statement, args := query.Statement()
	assert.Equal(t, `SELECT * FROM "odd""name" WHERE (UPPER("NAME_1") = UPPER(?) OR UPPER("VARNAME_1") = UPPER(?)) AND "GID_0" = ? LIMIT 1`, statement)
	assert.Equal(t, []any{"Florida", "Florida", "USA"}, args)
	assert.False(t, query.Impossible())

	query.Parent = ImpossiblePredicate()
	assert.True(t, query.Impossible())
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		value string
		want  OutputFormat
		ok    bool
	}{
		{value: "", want: OutputFormatYAML, ok: true},
		{value: "YML", want: OutputFormatYAML, ok: true},
		{value: " json ", want: OutputFormatJSON, ok: true},
		{value: "csv", ok: false},
	}
	for _, tt := range tests {
		got, ok := ParseOutputFormat(tt.value)
		assert.Equal(t, tt.ok, ok, tt.value)
		assert.Equal(t, tt.want, got, tt.value)
	}
}

func TestRowValueTreatsEmptyAsAbsent(t *testing.T) {
	row := Row{"GID_0": "USA", "GID_1": ""}
	value, ok := row.Value("GID_0")
	assert.True(t, ok)
	assert.Equal(t, "USA", value)
	_, ok = row.Value("GID_1")
	assert.False(t, ok)
	_, ok = row.Value("GID_2")
	assert.False(t, ok)
}
