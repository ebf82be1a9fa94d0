package app

import "github.com/nitingoyal0996/gbif-sub000/internal/types"

type ResolveRequest struct {
	Dataset string
	Place   types.PlaceHierarchy
}

type ResolveResult struct {
	Place types.ResolvedPlace
}

type BatchRequest struct {
	Dataset         string
	InputPath       string
	OutputDir       string
	Format          types.OutputFormat
	Workers         int
	MetricsTextfile string
}

type BatchResult struct {
	OutputPath string
	Summary    MatchSummary
}

// MatchSummary counts resolved places per classification. Failed counts the
// places downgraded to none because their resolution raised an error.
type MatchSummary struct {
	Total    int
	Complete int
	Partial  int
	None     int
	Failed   int
}

type LayersRequest struct {
	Dataset string
}

type LayersResult struct {
	Catalog types.Catalog
}

type InspectRequest struct {
	OutputDir string
	Format    types.OutputFormat
}

type InspectResult struct {
	Dataset    string
	Summary    MatchSummary
	Unresolved []types.ResolvedPlace
}

type ValidateRequest struct {
	InputPath string
}

type ValidateResult struct {
	Total        int
	EmptyIndexes []int
}
