package types

import (
	"strconv"
	"strings"
)

// LevelPlaceholder is substituted with the level number in column templates.
const LevelPlaceholder = "{level}"

// ColumnConvention names the columns a reference layer uses per level.
// Templates contain LevelPlaceholder, e.g. "NAME_{level}".
type ColumnConvention struct {
	// NameColumns lists the primary name column first, followed by any
	// alternate or localized name columns.
	NameColumns []string `yaml:"name" mapstructure:"name"`

	// IDColumn is the identifier (GID) column template.
	IDColumn string `yaml:"id" mapstructure:"id"`
}

// DefaultColumnConvention matches the GADM GeoPackage schema.
func DefaultColumnConvention() ColumnConvention {
	return ColumnConvention{
		NameColumns: []string{"NAME_{level}", "VARNAME_{level}", "NL_NAME_{level}"},
		IDColumn:    "GID_{level}",
	}
}

// Expand substitutes the level into a column template.
func (c ColumnConvention) Expand(template string, level AdministrativeLevel) string {
	return strings.ReplaceAll(template, LevelPlaceholder, strconv.Itoa(int(level)))
}

// PrimaryNameColumn returns the canonical name column for a level.
func (c ColumnConvention) PrimaryNameColumn(level AdministrativeLevel) string {
	if len(c.NameColumns) == 0 {
		return ""
	}
	return c.Expand(c.NameColumns[0], level)
}

func (c ColumnConvention) IDColumnFor(level AdministrativeLevel) string {
	return c.Expand(c.IDColumn, level)
}

// LevelColumns is what one layer offers for one level. Empty fields mean the
// layer does not expose that column.
type LevelColumns struct {
	NameColumns    []string `yaml:"name_columns,omitempty" json:"name_columns,omitempty"`
	IDColumn       string   `yaml:"id_column,omitempty" json:"id_column,omitempty"`
	ParentIDColumn string   `yaml:"parent_id_column,omitempty" json:"parent_id_column,omitempty"`
}

// LayerCapability is the introspected column map of one layer.
type LayerCapability struct {
	Name   string                               `yaml:"name" json:"name"`
	Levels map[AdministrativeLevel]LevelColumns `yaml:"levels" json:"levels"`
}

func (c LayerCapability) Level(level AdministrativeLevel) LevelColumns {
	if c.Levels == nil {
		return LevelColumns{}
	}
	return c.Levels[level]
}

// Catalog is the capability table of a whole dataset, in layer enumeration
// order.
type Catalog struct {
	Convention ColumnConvention  `yaml:"convention" json:"convention"`
	Layers     []LayerCapability `yaml:"layers" json:"layers"`
}

// Row is one dataset row. NULL columns are absent from the map.
type Row map[string]string

// Value returns the non-empty value of a column.
func (r Row) Value(column string) (string, bool) {
	if column == "" {
		return "", false
	}
	value, ok := r[column]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}
