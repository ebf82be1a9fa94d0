package app

import (
	"github.com/nitingoyal0996/gbif-sub000/internal/adapters"
	"github.com/nitingoyal0996/gbif-sub000/internal/ports"
	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

type Service struct {
	Opener     ports.ReferenceOpenerPort
	Places     ports.PlaceSourcePort
	Reader     ports.ResolutionReaderPort
	NewOutput  func(dir string, format types.OutputFormat) ports.ResolutionOutputPort
	Metrics    ports.ResolutionMetricsPort
	Convention types.ColumnConvention
	Policy     ports.LayerPolicyPort

	catalogs *catalogCache
}

func NewService() Service {
	return Service{
		Opener: adapters.NewDatasetOpenerAdapter(),
		Places: adapters.NewPlaceFileAdapter(),
		Reader: adapters.NewResolutionReaderAdapter(),
		NewOutput: func(dir string, format types.OutputFormat) ports.ResolutionOutputPort {
			return adapters.NewResolutionFileAdapter(dir, format)
		},
		Convention: types.DefaultColumnConvention(),
		catalogs:   newCatalogCache(),
	}
}

// WithConvention returns a copy using a different column convention. The
// catalog cache is reset since cached tables depend on it.
func (s Service) WithConvention(convention types.ColumnConvention) Service {
	s.Convention = convention
	s.catalogs = newCatalogCache()
	return s
}

func (s Service) WithPolicy(policy ports.LayerPolicyPort) Service {
	s.Policy = policy
	s.catalogs = newCatalogCache()
	return s
}

func (s Service) WithMetrics(metrics ports.ResolutionMetricsPort) Service {
	s.Metrics = metrics
	return s
}
