package ports

import "github.com/nitingoyal0996/gbif-sub000/internal/types"

type PlaceSourcePort interface {
	LoadPlaces(path string) ([]types.PlaceHierarchy, error)
}

type ResolutionOutputPort interface {
	WriteResolution(file types.ResolutionFile) (string, error)
}

type ResolutionReaderPort interface {
	ReadResolution(path string) (types.ResolutionFile, error)
}
