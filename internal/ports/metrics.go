package ports

import "github.com/nitingoyal0996/gbif-sub000/internal/types"

// ResolutionMetricsPort records the outcome of each resolved place.
type ResolutionMetricsPort interface {
	ObserveResolution(matchType types.MatchType, queries int)
	ObserveFailure()
}

// MetricsExportPort writes gathered metrics to a node_exporter textfile.
type MetricsExportPort interface {
	WriteTextfile(path string) error
}
