package core

import "github.com/nitingoyal0996/gbif-sub000/internal/types"

// ExtractHierarchy reads levels 0..deepest from a matched row. It stops at
// the first level the row has no identifier for so the result stays
// contiguous.
func ExtractHierarchy(row types.Row, deepest types.AdministrativeLevel, convention types.ColumnConvention) types.Hierarchy {
	if row == nil || deepest < types.LevelCountry {
		return nil
	}
	if deepest > types.MaxLevel {
		deepest = types.MaxLevel
	}
	hierarchy := make(types.Hierarchy, 0, int(deepest)+1)
	for level := types.LevelCountry; level <= deepest; level++ {
		gid, ok := row.Value(convention.IDColumnFor(level))
		if !ok {
			break
		}
		name, _ := row.Value(convention.PrimaryNameColumn(level))
		hierarchy = append(hierarchy, types.MatchedLevel{Level: level, Name: name, GID: gid})
	}
	return hierarchy
}
