package worker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsboard/internal/config"
)

type recordingSyncer struct {
	mu    sync.Mutex
	calls []string
	fail  map[string]bool
}

func (s *recordingSyncer) SyncSource(ctx context.Context, src config.Source) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, src.Location)
	if s.fail[src.Location] {
		return errors.New("sync failed")
	}
	return nil
}

func (s *recordingSyncer) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWorker_SyncAll(t *testing.T) {
	syncer := &recordingSyncer{fail: map[string]bool{"b.yaml": true}}
	sources := []config.Source{{Location: "a.yaml"}, {Location: "b.yaml"}, {Location: "c.yaml"}}
	w := New(syncer, sources, time.Minute, discardLogger())

	ok, failed := w.SyncAll(context.Background())

	assert.Equal(t, 2, ok)
	assert.Equal(t, 1, failed)
	assert.ElementsMatch(t, []string{"a.yaml", "b.yaml", "c.yaml"}, syncer.calls)
}

func TestWorker_SyncAll_CancelledContext(t *testing.T) {
	syncer := &recordingSyncer{}
	w := New(syncer, []config.Source{{Location: "a.yaml"}}, time.Minute, discardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, failed := w.SyncAll(ctx)

	assert.Zero(t, ok)
	assert.Zero(t, failed)
	assert.Zero(t, syncer.count())
}

func TestWorker_StartRunsImmediatelyAndStops(t *testing.T) {
	syncer := &recordingSyncer{}
	w := New(syncer, []config.Source{{Location: "a.yaml"}}, time.Hour, discardLogger())

	w.Start()
	require.Eventually(t, func() bool { return syncer.count() == 1 }, time.Second, 10*time.Millisecond)
	w.Stop()
	w.Stop()

	assert.Equal(t, 1, syncer.count())
	assert.Equal(t, time.Hour, w.Interval())
	assert.Len(t, w.Sources(), 1)
}

type slowSyncer struct {
	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func (s *slowSyncer) SyncSource(ctx context.Context, src config.Source) error {
	n := s.inFlight.Add(1)
	defer s.inFlight.Add(-1)
	for {
		cur := s.maxInFlight.Load()
		if n <= cur || s.maxInFlight.CompareAndSwap(cur, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)
	return nil
}

func TestWorker_SyncAll_LimitsConcurrency(t *testing.T) {
	syncer := &slowSyncer{}
	sources := make([]config.Source, 3*maxConcurrentSyncs)
	for i := range sources {
		sources[i] = config.Source{Location: fmt.Sprintf("source-%d.yaml", i)}
	}
	w := New(syncer, sources, time.Minute, discardLogger())

	ok, failed := w.SyncAll(context.Background())

	assert.Equal(t, len(sources), ok)
	assert.Zero(t, failed)
	assert.LessOrEqual(t, syncer.maxInFlight.Load(), int32(maxConcurrentSyncs))
	assert.Positive(t, syncer.maxInFlight.Load())
}
