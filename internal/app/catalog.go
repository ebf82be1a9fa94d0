package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"github.com/nitingoyal0996/gbif-sub000/internal/core"
	"github.com/nitingoyal0996/gbif-sub000/internal/ports"
	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

type catalogKey struct {
	path    string
	size    int64
	modTime time.Time
}

// catalogCache keeps capability tables per dataset file version so repeated
// resolutions against the same file skip schema introspection.
type catalogCache struct {
	mu      sync.Mutex
	entries map[catalogKey]types.Catalog
}

func newCatalogCache() *catalogCache {
	return &catalogCache{entries: map[catalogKey]types.Catalog{}}
}

func (c *catalogCache) get(key catalogKey) (types.Catalog, bool) {
	if c == nil {
		return types.Catalog{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	catalog, ok := c.entries[key]
	return catalog, ok
}

func (c *catalogCache) put(key catalogKey, catalog types.Catalog) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = catalog
}

func datasetKey(path string) (catalogKey, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return catalogKey{}, false
	}
	info, err := os.Stat(abs)
	if err != nil {
		return catalogKey{}, false
	}
	return catalogKey{path: abs, size: info.Size(), modTime: info.ModTime()}, true
}

// openDataset acquires a store and its capability table. The caller owns the
// returned store and must close it.
func (s Service) openDataset(ctx context.Context, dataset string, maxConns int) (ports.ReferenceStorePort, types.Catalog, error) {
	dataset = strings.TrimSpace(dataset)
	if dataset == "" {
		return nil, types.Catalog{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("reference dataset path is required")
	}
	if s.Opener == nil {
		return nil, types.Catalog{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("service has no dataset opener")
	}
	store, err := s.Opener.Open(ctx, dataset, maxConns)
	if err != nil {
		return nil, types.Catalog{}, err
	}
	key, cacheable := datasetKey(dataset)
	if cacheable {
		if catalog, ok := s.catalogs.get(key); ok {
			return store, catalog, nil
		}
	}
	introspector := core.NewSchemaIntrospector(store, s.Convention)
	if s.Policy != nil {
		introspector = introspector.WithPolicy(s.Policy)
	}
	catalog, err := introspector.Introspect(ctx)
	if err != nil {
		if closeErr := store.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Str("dataset", dataset).Msg("failed to close reference dataset")
		}
		return nil, types.Catalog{}, err
	}
	if len(catalog.Layers) == 0 {
		log.Warn().Str("dataset", dataset).Msg("reference dataset exposes no usable layers")
	}
	if cacheable {
		s.catalogs.put(key, catalog)
	}
	return store, catalog, nil
}

func closeDataset(store ports.ReferenceStorePort, dataset string) {
	if err := store.Close(); err != nil {
		log.Warn().Err(err).Str("dataset", dataset).Msg("failed to close reference dataset")
	}
}
