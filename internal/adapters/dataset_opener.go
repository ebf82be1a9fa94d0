package adapters

import (
	"context"

	"github.com/nitingoyal0996/gbif-sub000/internal/ports"
	"github.com/nitingoyal0996/gbif-sub000/internal/shared"
)

// DatasetOpenerAdapter picks the store implementation from the dataset file
// extension: YAML fixtures are served from memory, anything else is opened
// as a GeoPackage.
type DatasetOpenerAdapter struct {
	GeoPackage ports.ReferenceOpenerPort
	Fixture    ports.ReferenceOpenerPort
}

func NewDatasetOpenerAdapter() DatasetOpenerAdapter {
	return DatasetOpenerAdapter{
		GeoPackage: NewGeoPackageAdapter(),
		Fixture:    NewReferenceFileAdapter(),
	}
}

func (a DatasetOpenerAdapter) Open(ctx context.Context, path string, maxConns int) (ports.ReferenceStorePort, error) {
	switch shared.ExtensionOf(path) {
	case "yaml", "yml":
		return a.Fixture.Open(ctx, path, maxConns)
	default:
		return a.GeoPackage.Open(ctx, path, maxConns)
	}
}

var _ ports.ReferenceOpenerPort = DatasetOpenerAdapter{}
