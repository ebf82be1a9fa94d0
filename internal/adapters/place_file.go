package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"github.com/nitingoyal0996/gbif-sub000/internal/ports"
	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

// PlaceFileAdapter loads place hierarchies from YAML or JSON. The document
// is either a list of places or a mapping with a "places" list.
type PlaceFileAdapter struct{}

func NewPlaceFileAdapter() PlaceFileAdapter {
	return PlaceFileAdapter{}
}

type placeDocument struct {
	Places []types.PlaceHierarchy `yaml:"places"`
}

func (a PlaceFileAdapter) LoadPlaces(path string) ([]types.PlaceHierarchy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("places file not found").
			WithCause(err)
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse places file").
			WithCause(err)
	}
	if len(root.Content) == 0 {
		return []types.PlaceHierarchy{}, nil
	}
	node := root.Content[0]
	switch node.Kind {
	case yaml.SequenceNode:
		var places []types.PlaceHierarchy
		if err := node.Decode(&places); err != nil {
			return nil, invalidPlaces(err)
		}
		return places, nil
	case yaml.MappingNode:
		var doc placeDocument
		if err := node.Decode(&doc); err != nil {
			return nil, invalidPlaces(err)
		}
		if doc.Places == nil {
			return []types.PlaceHierarchy{}, nil
		}
		return doc.Places, nil
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("places file must contain a list of places")
	}
}

func invalidPlaces(err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("invalid place entry").
		WithCause(err)
}

var _ ports.PlaceSourcePort = PlaceFileAdapter{}
