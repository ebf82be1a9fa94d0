package ports

import (
	"context"

	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

// ReferenceStorePort is a read-only handle on an administrative-boundary
// dataset. Implementations must be safe for concurrent reads.
type ReferenceStorePort interface {
	// Layers lists the feature collections in enumeration order.
	Layers(ctx context.Context) ([]string, error)

	// Columns lists the columns a layer exposes.
	Columns(ctx context.Context, layer string) ([]string, error)

	// FindFirst executes a bounded lookup. It returns (row, true, nil) on a
	// hit and (nil, false, nil) when nothing matches.
	FindFirst(ctx context.Context, query types.LayerQuery) (types.Row, bool, error)

	Close() error
}

// ReferenceOpenerPort acquires a store for one resolution or batch.
type ReferenceOpenerPort interface {
	Open(ctx context.Context, path string, maxConns int) (ReferenceStorePort, error)
}
