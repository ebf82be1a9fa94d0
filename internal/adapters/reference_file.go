package adapters

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"github.com/nitingoyal0996/gbif-sub000/internal/ports"
	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

// ReferenceFileAdapter serves a YAML reference fixture from memory.
type ReferenceFileAdapter struct{}

func NewReferenceFileAdapter() ReferenceFileAdapter {
	return ReferenceFileAdapter{}
}

func (a ReferenceFileAdapter) Open(_ context.Context, path string, _ int) (ports.ReferenceStorePort, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("reference dataset path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("reference dataset not found: " + path).
			WithCause(err)
	}
	var file types.ReferenceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid reference dataset format: " + path).
			WithCause(err)
	}
	return NewMemoryReferenceStore(file), nil
}

type memoryLayer struct {
	name    string
	columns []string
	rows    []types.Row
}

// MemoryReferenceStore is immutable after construction and safe for
// concurrent use.
type MemoryReferenceStore struct {
	layers []memoryLayer
}

func NewMemoryReferenceStore(file types.ReferenceFile) *MemoryReferenceStore {
	store := &MemoryReferenceStore{}
	for _, layer := range file.Layers {
		entry := memoryLayer{name: layer.Name}
		seen := map[string]struct{}{}
		for _, raw := range layer.Rows {
			row := types.Row{}
			for column, value := range raw {
				seen[column] = struct{}{}
				if value != nil {
					row[column] = *value
				}
			}
			entry.rows = append(entry.rows, row)
		}
		if len(layer.Columns) > 0 {
			entry.columns = append([]string(nil), layer.Columns...)
		} else {
			for column := range seen {
				entry.columns = append(entry.columns, column)
			}
			sort.Strings(entry.columns)
		}
		store.layers = append(store.layers, entry)
	}
	return store
}

func (s *MemoryReferenceStore) Layers(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(s.layers))
	for _, layer := range s.layers {
		names = append(names, layer.name)
	}
	return names, nil
}

func (s *MemoryReferenceStore) Columns(_ context.Context, layer string) ([]string, error) {
	entry, ok := s.layer(layer)
	if !ok {
		return nil, nil
	}
	return append([]string(nil), entry.columns...), nil
}

func (s *MemoryReferenceStore) FindFirst(_ context.Context, query types.LayerQuery) (types.Row, bool, error) {
	entry, ok := s.layer(query.Layer)
	if !ok {
		return nil, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("no such layer: " + query.Layer)
	}
	for _, row := range entry.rows {
		if query.Name.Matches(row) && query.Parent.Matches(row) {
			out := make(types.Row, len(row))
			for column, value := range row {
				out[column] = value
			}
			return out, true, nil
		}
	}
	return nil, false, nil
}

func (s *MemoryReferenceStore) Close() error {
	return nil
}

func (s *MemoryReferenceStore) layer(name string) (memoryLayer, bool) {
	for _, layer := range s.layers {
		if layer.name == name {
			return layer, true
		}
	}
	return memoryLayer{}, false
}

var _ ports.ReferenceOpenerPort = ReferenceFileAdapter{}
var _ ports.ReferenceStorePort = (*MemoryReferenceStore)(nil)
