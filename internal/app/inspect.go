package app

import (
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/nitingoyal0996/gbif-sub000/internal/adapters"
	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	format, ok := types.ParseOutputFormat(string(req.Format))
	if !ok {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported output format: " + string(req.Format))
	}
	file, err := s.Reader.ReadResolution(filepath.Join(outputDir, adapters.ResolutionFileName(format)))
	if err != nil {
		return InspectResult{}, err
	}
	var unresolved []types.ResolvedPlace
	for _, place := range file.Places {
		if place.MatchType != types.MatchComplete {
			unresolved = append(unresolved, place)
		}
	}
	return InspectResult{
		Dataset:    file.Dataset,
		Summary:    summarize(file.Places),
		Unresolved: unresolved,
	}, nil
}
