package app

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/nitingoyal0996/gbif-sub000/internal/adapters"
	"github.com/nitingoyal0996/gbif-sub000/internal/ports"
	"github.com/nitingoyal0996/gbif-sub000/internal/types"
	"github.com/nitingoyal0996/gbif-sub000/tests/testutil"
)

var errInjected = errors.New("injected store failure")

// faultyStore fails any lookup whose name value matches failOn.
type faultyStore struct {
	ports.ReferenceStorePort
	failOn string
	closed *atomic.Int32
}

func (s faultyStore) FindFirst(ctx context.Context, query types.LayerQuery) (types.Row, bool, error) {
	if s.failOn != "" && strings.EqualFold(query.Name.Value, s.failOn) {
		return nil, false, errInjected
	}
	return s.ReferenceStorePort.FindFirst(ctx, query)
}

func (s faultyStore) Close() error {
	s.closed.Add(1)
	return s.ReferenceStorePort.Close()
}

type fakeOpener struct {
	dataset types.ReferenceFile
	failOn  string
	openErr error

	mu       sync.Mutex
	opens    int
	maxConns []int
	closed   atomic.Int32
}

func newFakeOpener(failOn string) *fakeOpener {
	return &fakeOpener{dataset: testutil.GADMDataset(), failOn: failOn}
}

func (o *fakeOpener) Open(_ context.Context, _ string, maxConns int) (ports.ReferenceStorePort, error) {
	o.mu.Lock()
	o.opens++
	o.maxConns = append(o.maxConns, maxConns)
	o.mu.Unlock()
	if o.openErr != nil {
		return nil, o.openErr
	}
	return faultyStore{
		ReferenceStorePort: adapters.NewMemoryReferenceStore(o.dataset),
		failOn:             o.failOn,
		closed:             &o.closed,
	}, nil
}

type recordingMetrics struct {
	mu       sync.Mutex
	outcomes map[types.MatchType]int
	queries  int
	failures int
}

func (m *recordingMetrics) ObserveResolution(matchType types.MatchType, queries int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.outcomes == nil {
		m.outcomes = map[types.MatchType]int{}
	}
	m.outcomes[matchType]++
	m.queries += queries
}

func (m *recordingMetrics) ObserveFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures++
}

func testService(opener ports.ReferenceOpenerPort) Service {
	service := NewService()
	service.Opener = opener
	return service
}
