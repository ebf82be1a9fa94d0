package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/nitingoyal0996/gbif-sub000/internal/ports"
	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

func (s Service) Batch(ctx context.Context, req BatchRequest) (BatchResult, error) {
	inputPath := strings.TrimSpace(req.InputPath)
	if inputPath == "" {
		return BatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("place input file is required")
	}
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return BatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	format, ok := types.ParseOutputFormat(string(req.Format))
	if !ok {
		return BatchResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported output format: " + string(req.Format))
	}

	places, err := s.Places.LoadPlaces(inputPath)
	if err != nil {
		return BatchResult{}, err
	}
	resolved, err := s.ResolveAll(ctx, req.Dataset, places, req.Workers)
	if err != nil {
		return BatchResult{}, err
	}

	output := s.NewOutput(outputDir, format)
	path, err := output.WriteResolution(types.ResolutionFile{
		Dataset: strings.TrimSpace(req.Dataset),
		Places:  resolved,
	})
	if err != nil {
		return BatchResult{}, err
	}
	if err := s.exportMetrics(req.MetricsTextfile); err != nil {
		return BatchResult{}, err
	}
	summary := summarize(resolved)
	log.Info().
		Int("total", summary.Total).
		Int("complete", summary.Complete).
		Int("partial", summary.Partial).
		Int("none", summary.None).
		Int("failed", summary.Failed).
		Str("output", path).
		Msg("batch resolved")
	return BatchResult{OutputPath: path, Summary: summary}, nil
}

func (s Service) exportMetrics(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	exporter, ok := s.Metrics.(ports.MetricsExportPort)
	if !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("metrics textfile requested but no exporting collector is configured")
	}
	if err := exporter.WriteTextfile(path); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write metrics textfile").
			WithCause(err)
	}
	return nil
}

func summarize(places []types.ResolvedPlace) MatchSummary {
	summary := MatchSummary{Total: len(places)}
	for _, place := range places {
		switch place.MatchType {
		case types.MatchComplete:
			summary.Complete++
		case types.MatchPartial:
			summary.Partial++
		default:
			summary.None++
		}
		if strings.HasPrefix(place.Note, noteValidationError) {
			summary.Failed++
		}
	}
	return summary
}
