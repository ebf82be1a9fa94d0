package core

import (
	"context"

	"github.com/nitingoyal0996/gbif-sub000/internal/ports"
	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

// layerHit is a validated row: it carries a non-empty identifier for the
// searched level.
type layerHit struct {
	Layer string
	Row   types.Row
	GID   string
}

func findInLayer(
	ctx context.Context,
	store ports.ReferenceStorePort,
	capability types.LayerCapability,
	level types.AdministrativeLevel,
	placeName string,
	parentID string,
	trace *Trace,
) (layerHit, bool, error) {
	query := types.LayerQuery{
		Layer:  capability.Name,
		Name:   NameMatch(level, placeName, capability),
		Parent: ParentConstraint(level, parentID, capability),
		Limit:  1,
	}
	if query.Impossible() {
		return layerHit{}, false, nil
	}
	if trace != nil {
		statement, args := query.Statement()
		trace.Record(statement, args)
	}
	row, found, err := store.FindFirst(ctx, query)
	if err != nil || !found {
		return layerHit{}, false, err
	}
	gid, ok := row.Value(capability.Level(level).IDColumn)
	if !ok {
		return layerHit{}, false, nil
	}
	return layerHit{Layer: capability.Name, Row: row, GID: gid}, true, nil
}

// findAcrossLayers returns the first layer hit in catalog order.
func findAcrossLayers(
	ctx context.Context,
	store ports.ReferenceStorePort,
	layers []types.LayerCapability,
	level types.AdministrativeLevel,
	placeName string,
	parentID string,
	trace *Trace,
) (layerHit, bool, error) {
	for _, capability := range layers {
		hit, found, err := findInLayer(ctx, store, capability, level, placeName, parentID, trace)
		if err != nil {
			return layerHit{}, false, err
		}
		if found {
			return hit, true, nil
		}
	}
	return layerHit{}, false, nil
}
