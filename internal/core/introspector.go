package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/nitingoyal0996/gbif-sub000/internal/ports"
	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

// SchemaIntrospector discovers the layers of a reference dataset and which
// name and identifier columns each one offers per level.
type SchemaIntrospector struct {
	Store      ports.ReferenceStorePort
	Convention types.ColumnConvention
	Policy     ports.LayerPolicyPort
}

func NewSchemaIntrospector(store ports.ReferenceStorePort, convention types.ColumnConvention) SchemaIntrospector {
	return SchemaIntrospector{Store: store, Convention: convention}
}

func (i SchemaIntrospector) WithPolicy(policy ports.LayerPolicyPort) SchemaIntrospector {
	i.Policy = policy
	return i
}

// Introspect builds the capability table once so that resolutions never
// query schema metadata again.
func (i SchemaIntrospector) Introspect(ctx context.Context) (types.Catalog, error) {
	if i.Store == nil {
		return types.Catalog{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("schema introspection requires a reference store")
	}
	convention := normalizeConvention(i.Convention)
	layers, err := i.Store.Layers(ctx)
	if err != nil {
		return types.Catalog{}, err
	}
	if i.Policy != nil {
		layers = i.Policy.SelectLayers(layers)
	}
	catalog := types.Catalog{Convention: convention}
	for _, layer := range layers {
		assert.NotEmpty(ctx, layer, "layer name must be set")
		columns, err := i.Store.Columns(ctx, layer)
		if err != nil {
			return types.Catalog{}, err
		}
		catalog.Layers = append(catalog.Layers, BuildCapability(layer, columns, convention))
	}
	log.Ctx(ctx).Debug().Int("layers", len(catalog.Layers)).Msg("reference schema introspected")
	return catalog, nil
}

// BuildCapability maps a layer's raw column list onto the convention.
// Column names are compared exactly, as the dataset defines them.
func BuildCapability(layer string, columns []string, convention types.ColumnConvention) types.LayerCapability {
	available := make(map[string]struct{}, len(columns))
	for _, column := range columns {
		available[column] = struct{}{}
	}
	has := func(column string) bool {
		_, ok := available[column]
		return ok
	}
	capability := types.LayerCapability{
		Name:   layer,
		Levels: map[types.AdministrativeLevel]types.LevelColumns{},
	}
	for level := types.LevelCountry; level <= types.MaxLevel; level++ {
		var cols types.LevelColumns
		for _, template := range convention.NameColumns {
			if name := convention.Expand(template, level); has(name) {
				cols.NameColumns = append(cols.NameColumns, name)
			}
		}
		if id := convention.IDColumnFor(level); has(id) {
			cols.IDColumn = id
		}
		if level > types.LevelCountry {
			if parent := convention.IDColumnFor(level - 1); has(parent) {
				cols.ParentIDColumn = parent
			}
		}
		if len(cols.NameColumns) == 0 && cols.IDColumn == "" && cols.ParentIDColumn == "" {
			continue
		}
		capability.Levels[level] = cols
	}
	return capability
}

func normalizeConvention(convention types.ColumnConvention) types.ColumnConvention {
	defaults := types.DefaultColumnConvention()
	if len(convention.NameColumns) == 0 {
		convention.NameColumns = defaults.NameColumns
	}
	if convention.IDColumn == "" {
		convention.IDColumn = defaults.IDColumn
	}
	return convention
}
