package app

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Validate checks that a place file parses and reports entries that carry no
// level at all.
func (s Service) Validate(req ValidateRequest) (ValidateResult, error) {
	inputPath := strings.TrimSpace(req.InputPath)
	if inputPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("place input file is required")
	}
	places, err := s.Places.LoadPlaces(inputPath)
	if err != nil {
		return ValidateResult{}, err
	}
	result := ValidateResult{Total: len(places)}
	for idx, place := range places {
		if place.IsEmpty() {
			result.EmptyIndexes = append(result.EmptyIndexes, idx)
		}
	}
	return result, nil
}
