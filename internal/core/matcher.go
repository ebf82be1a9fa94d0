package core

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/nitingoyal0996/gbif-sub000/internal/ports"
	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

// MatcherCore resolves place hierarchies against one reference store using
// a precomputed capability table.
type MatcherCore struct {
	Store   ports.ReferenceStorePort
	Catalog types.Catalog
}

func NewMatcherCore(store ports.ReferenceStorePort, catalog types.Catalog) MatcherCore {
	return MatcherCore{Store: store, Catalog: catalog}
}

type walkState int

const (
	walkSearching walkState = iota
	walkStopped
)

// narrowingWalk is the carried state of the level-by-level search. Once
// stopped it never resumes.
type narrowingWalk struct {
	state    walkState
	achieved bool
	level    types.AdministrativeLevel
	parentID string
	row      types.Row
}

func newNarrowingWalk() narrowingWalk {
	return narrowingWalk{state: walkSearching, level: types.LevelContinent}
}

// next applies the outcome of searching one level.
func (w narrowingWalk) next(level types.AdministrativeLevel, hit layerHit, found bool) narrowingWalk {
	if w.state == walkStopped {
		return w
	}
	if !found {
		w.state = walkStopped
		return w
	}
	w.achieved = true
	w.level = level
	w.parentID = hit.GID
	w.row = hit.Row
	return w
}

func classify(expected types.AdministrativeLevel, walk narrowingWalk) types.MatchType {
	switch {
	case !walk.achieved:
		return types.MatchNone
	case walk.level == expected:
		return types.MatchComplete
	default:
		return types.MatchPartial
	}
}

// Resolve narrows the hierarchy from country towards the most specific
// level the caller supplied, stopping at the first level that cannot be
// confirmed under its parent.
func (m MatcherCore) Resolve(ctx context.Context, place types.PlaceHierarchy) (types.MatchResult, error) {
	if m.Store == nil {
		return types.MatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("matcher requires a reference store")
	}
	trace := &Trace{}
	entries := place.Entries()
	if len(entries) == 0 {
		return types.MatchResult{MatchType: types.MatchNone, QueryTrace: trace.Lines()}, nil
	}
	expected := entries[0].Level

	walk := newNarrowingWalk()
	for idx := len(entries) - 1; idx >= 0 && walk.state == walkSearching; idx-- {
		entry := entries[idx]
		if !entry.Level.Matchable() {
			continue
		}
		hit, found, err := findAcrossLayers(ctx, m.Store, m.Catalog.Layers, entry.Level, entry.Name, walk.parentID, trace)
		if err != nil {
			return types.MatchResult{MatchType: types.MatchNone, QueryTrace: trace.Lines()}, err
		}
		log.Ctx(ctx).Debug().
			Str("level", entry.Level.Label()).
			Str("name", entry.Name).
			Bool("found", found).
			Str("layer", hit.Layer).
			Msg("narrowing step")
		walk = walk.next(entry.Level, hit, found)
	}

	result := types.MatchResult{
		MatchType:  classify(expected, walk),
		QueryTrace: trace.Lines(),
	}
	if walk.achieved {
		result.Hierarchy = ExtractHierarchy(walk.row, walk.level, normalizeConvention(m.Catalog.Convention))
	}
	return result, nil
}
