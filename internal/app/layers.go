package app

import "context"

// Layers reports the capability table the matcher would use for a dataset.
func (s Service) Layers(ctx context.Context, req LayersRequest) (LayersResult, error) {
	store, catalog, err := s.openDataset(ctx, req.Dataset, 1)
	if err != nil {
		return LayersResult{}, err
	}
	defer closeDataset(store, req.Dataset)
	return LayersResult{Catalog: catalog}, nil
}
