package core

import (
	"context"
	"errors"
	"strings"

	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

var errStoreDown = errors.New("store unavailable")

type fakeLayer struct {
	name    string
	columns []string
	rows    []types.Row
}

// fakeStore serves rows with the predicate semantics of the SQL store and
// records every executed query.
type fakeStore struct {
	layers  []fakeLayer
	failOn  string
	queries []types.LayerQuery
}

func (s *fakeStore) Layers(context.Context) ([]string, error) {
	names := make([]string, 0, len(s.layers))
	for _, layer := range s.layers {
		names = append(names, layer.name)
	}
	return names, nil
}

func (s *fakeStore) Columns(_ context.Context, name string) ([]string, error) {
	for _, layer := range s.layers {
		if layer.name == name {
			return layer.columns, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) FindFirst(_ context.Context, query types.LayerQuery) (types.Row, bool, error) {
	s.queries = append(s.queries, query)
	if s.failOn != "" && strings.EqualFold(query.Name.Value, s.failOn) {
		return nil, false, errStoreDown
	}
	for _, layer := range s.layers {
		if layer.name != query.Layer {
			continue
		}
		for _, row := range layer.rows {
			if query.Name.Matches(row) && query.Parent.Matches(row) {
				return row, true, nil
			}
		}
	}
	return nil, false, nil
}

func (s *fakeStore) Close() error { return nil }

var gadmColumns = []string{
	"GID_0", "NAME_0", "VARNAME_0",
	"GID_1", "NAME_1", "VARNAME_1", "NL_NAME_1",
	"GID_2", "NAME_2",
	"GID_3", "NAME_3",
}

func gadmStore() *fakeStore {
	return &fakeStore{layers: []fakeLayer{{
		name:    "gadm",
		columns: gadmColumns,
		rows: []types.Row{
			{"GID_0": "USA", "NAME_0": "United States", "VARNAME_0": "USA",
				"GID_1": "USA.10_1", "NAME_1": "Florida", "VARNAME_1": "FL",
				"GID_2": "USA.10.1_1", "NAME_2": "Alachua",
				"GID_3": "USA.10.1.3_1", "NAME_3": "Gainesville"},
			{"GID_0": "USA", "NAME_0": "United States", "VARNAME_0": "USA",
				"GID_1": "USA.10_1", "NAME_1": "Florida",
				"GID_2": "USA.10.48_1", "NAME_2": "Orange"},
			{"GID_0": "USA", "NAME_0": "United States", "VARNAME_0": "USA",
				"GID_1": "USA.44_1", "NAME_1": "Texas",
				"GID_2": "USA.44.181_1", "NAME_2": "Orange"},
		},
	}}}
}

func catalogFor(store *fakeStore) types.Catalog {
	convention := types.DefaultColumnConvention()
	catalog := types.Catalog{Convention: convention}
	for _, layer := range store.layers {
		catalog.Layers = append(catalog.Layers, BuildCapability(layer.name, layer.columns, convention))
	}
	return catalog
}
