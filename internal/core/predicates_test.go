package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

func TestNameMatch(t *testing.T) {
	capability := BuildCapability("gadm", gadmColumns, types.DefaultColumnConvention())
	tests := []struct {
		name  string
		level types.AdministrativeLevel
		want  types.Predicate
	}{
		{
			name:  "all name columns present",
			level: types.LevelState,
			want: types.Predicate{
				Kind:    types.PredicateAnyFold,
				Columns: []string{"NAME_1", "VARNAME_1", "NL_NAME_1"},
				Value:   "Florida",
			},
		},
		{
			name:  "primary name only",
			level: types.LevelCounty,
			want: types.Predicate{
				Kind:    types.PredicateAnyFold,
				Columns: []string{"NAME_2"},
				Value:   "Florida",
			},
		},
		{
			name:  "level absent from layer",
			level: types.AdministrativeLevel(4),
			want:  types.ImpossiblePredicate(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NameMatch(tt.level, "Florida", capability)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected predicate (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParentConstraint(t *testing.T) {
	capability := BuildCapability("gadm", gadmColumns, types.DefaultColumnConvention())
	countryOnly := BuildCapability("countries", []string{"GID_0", "NAME_0", "NAME_1"}, types.DefaultColumnConvention())
	tests := []struct {
		name       string
		level      types.AdministrativeLevel
		parentID   string
		capability types.LayerCapability
		want       types.Predicate
	}{
		{
			name:       "country is never constrained",
			level:      types.LevelCountry,
			parentID:   "USA",
			capability: capability,
			want:       types.AlwaysPredicate(),
		},
		{
			name:       "missing parent identifier searches unconstrained",
			level:      types.LevelState,
			parentID:   " ",
			capability: capability,
			want:       types.AlwaysPredicate(),
		},
		{
			name:       "parent column equality",
			level:      types.LevelCounty,
			parentID:   "USA.10_1",
			capability: capability,
			want: types.Predicate{
				Kind:    types.PredicateEqual,
				Columns: []string{"GID_1"},
				Value:   "USA.10_1",
			},
		},
		{
			name:       "layer without parent column cannot match",
			level:      types.LevelCounty,
			parentID:   "USA.10_1",
			capability: countryOnly,
			want:       types.ImpossiblePredicate(),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParentConstraint(tt.level, tt.parentID, tt.capability)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected predicate (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPredicateMatchesFoldsASCIIOnly(t *testing.T) {
	predicate := types.Predicate{Kind: types.PredicateAnyFold, Columns: []string{"NAME_0", "VARNAME_0"}, Value: "usa"}
	if !predicate.Matches(types.Row{"NAME_0": "United States", "VARNAME_0": "USA"}) {
		t.Fatalf("expected case-insensitive match on alternate column")
	}
	if predicate.Matches(types.Row{"NAME_0": "United States"}) {
		t.Fatalf("absent column must not match")
	}
	accented := types.Predicate{Kind: types.PredicateAnyFold, Columns: []string{"NAME_0"}, Value: "méxico"}
	if accented.Matches(types.Row{"NAME_0": "MÉXICO"}) {
		t.Fatalf("non-ASCII letters must not fold")
	}
	if !accented.Matches(types.Row{"NAME_0": "MéxicO"}) {
		t.Fatalf("ASCII letters must fold around non-ASCII ones")
	}
}
