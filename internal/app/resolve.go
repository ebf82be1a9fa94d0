package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/nitingoyal0996/gbif-sub000/internal/core"
	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

const (
	noteExact           = "exact match"
	notePartial         = "partial match"
	noteNotFound        = "not found in GADM database"
	noteValidationError = "validation error: "
)

func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	store, catalog, err := s.openDataset(ctx, req.Dataset, 1)
	if err != nil {
		return ResolveResult{}, err
	}
	defer closeDataset(store, req.Dataset)

	matcher := core.NewMatcherCore(store, catalog)
	result, err := matcher.Resolve(ctx, req.Place)
	if err != nil {
		s.observeFailure()
		return ResolveResult{}, err
	}
	s.observe(result)
	return ResolveResult{Place: resolvedPlace(req.Place, result)}, nil
}

// ResolveAll resolves every place against one dataset handle. The output
// matches the input one-to-one and in order. A failure on one place is
// logged and reported as a none match for that place only; only dataset
// acquisition errors abort the call.
func (s Service) ResolveAll(ctx context.Context, dataset string, places []types.PlaceHierarchy, workers int) ([]types.ResolvedPlace, error) {
	workers = normalizeWorkers(workers, len(places))
	store, catalog, err := s.openDataset(ctx, dataset, workers)
	if err != nil {
		return nil, err
	}
	defer closeDataset(store, dataset)

	matcher := core.NewMatcherCore(store, catalog)
	resolved := make([]types.ResolvedPlace, len(places))
	if workers <= 1 {
		for idx, place := range places {
			resolved[idx] = s.resolveIsolated(ctx, matcher, idx, place)
		}
		return resolved, nil
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for idx, place := range places {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			resolved[idx] = s.resolveIsolated(ctx, matcher, idx, place)
		}()
	}
	wg.Wait()
	return resolved, nil
}

func (s Service) resolveIsolated(ctx context.Context, matcher core.MatcherCore, idx int, place types.PlaceHierarchy) types.ResolvedPlace {
	result, err := matcher.Resolve(ctx, place)
	if err != nil {
		log.Error().
			Err(err).
			Int("index", idx).
			Str("place", place.String()).
			Msg("place resolution failed")
		s.observeFailure()
		failed := types.ResolvedPlace{
			PlaceHierarchy: place,
			MatchResult: types.MatchResult{
				MatchType:  types.MatchNone,
				QueryTrace: result.QueryTrace,
			},
			Note: noteValidationError + err.Error(),
		}
		if failed.QueryTrace == nil {
			failed.QueryTrace = []string{}
		}
		s.observe(failed.MatchResult)
		return failed
	}
	s.observe(result)
	return resolvedPlace(place, result)
}

func resolvedPlace(place types.PlaceHierarchy, result types.MatchResult) types.ResolvedPlace {
	return types.ResolvedPlace{
		PlaceHierarchy: place,
		MatchResult:    result,
		Note:           noteFor(result.MatchType),
	}
}

func noteFor(matchType types.MatchType) string {
	switch matchType {
	case types.MatchComplete:
		return noteExact
	case types.MatchPartial:
		return notePartial
	default:
		return noteNotFound
	}
}

func (s Service) observe(result types.MatchResult) {
	if s.Metrics == nil {
		return
	}
	s.Metrics.ObserveResolution(result.MatchType, len(result.QueryTrace))
}

func (s Service) observeFailure() {
	if s.Metrics == nil {
		return
	}
	s.Metrics.ObserveFailure()
}

func normalizeWorkers(workers int, items int) int {
	if workers > items {
		workers = items
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
