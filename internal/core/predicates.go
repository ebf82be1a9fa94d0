package core

import (
	"strings"

	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

// NameMatch builds the case-insensitive equality over every name column the
// layer has for the level. A layer without such columns yields the
// impossible predicate.
func NameMatch(level types.AdministrativeLevel, placeName string, capability types.LayerCapability) types.Predicate {
	columns := capability.Level(level).NameColumns
	if len(columns) == 0 {
		return types.ImpossiblePredicate()
	}
	return types.Predicate{
		Kind:    types.PredicateAnyFold,
		Columns: append([]string(nil), columns...),
		Value:   placeName,
	}
}

// ParentConstraint restricts a level to children of the previously matched
// unit. Without a parent identifier the level is searched unconstrained.
func ParentConstraint(level types.AdministrativeLevel, parentID string, capability types.LayerCapability) types.Predicate {
	if level <= types.LevelCountry || strings.TrimSpace(parentID) == "" {
		return types.AlwaysPredicate()
	}
	column := capability.Level(level).ParentIDColumn
	if column == "" {
		return types.ImpossiblePredicate()
	}
	return types.Predicate{
		Kind:    types.PredicateEqual,
		Columns: []string{column},
		Value:   parentID,
	}
}
