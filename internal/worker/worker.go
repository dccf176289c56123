package worker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"newsboard/internal/config"
)

const (
	syncTimeout = 30 * time.Second
	// maxConcurrentSyncs ограничивает число одновременно синхронизируемых источников.
	maxConcurrentSyncs = 8
)

// SourceSyncer синхронизирует один источник новостей с хранилищем.
type SourceSyncer interface {
	SyncSource(ctx context.Context, src config.Source) error
}

// Worker периодически синхронизирует все настроенные источники.
// Первый цикл выполняется сразу после запуска.
type Worker struct {
	syncer   SourceSyncer
	sources  []config.Source
	interval time.Duration
	log      *slog.Logger
	cancel   context.CancelFunc
	done     chan struct{}
	once     sync.Once
}

func New(syncer SourceSyncer, sources []config.Source, interval time.Duration, log *slog.Logger) *Worker {
	return &Worker{
		syncer:   syncer,
		sources:  sources,
		interval: interval,
		log:      log.With(slog.String("component", "worker")),
		done:     make(chan struct{}),
	}
}

// Start запускает воркер в отдельной горутине.
func (w *Worker) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	go w.run(ctx)
}

// Stop отменяет текущий цикл и дожидается завершения воркера.
func (w *Worker) Stop() {
	w.once.Do(func() {
		if w.cancel != nil {
			w.cancel()
			<-w.done
		}
	})
}

func (w *Worker) run(ctx context.Context) {
	defer close(w.done)
	w.log.Info("Section sync worker started",
		slog.String("interval", w.interval.String()),
		slog.Int("source_count", len(w.sources)),
	)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	w.SyncAll(ctx)
	for {
		select {
		case <-ticker.C:
			w.SyncAll(ctx)
		case <-ctx.Done():
			w.log.Info("Worker stopping")
			return
		}
	}
}

// SyncAll синхронизирует все источники параллельно и возвращает
// количество успешных и неудачных синхронизаций. Ошибка одного
// источника не прерывает остальные; одновременно выполняется
// не больше maxConcurrentSyncs синхронизаций.
func (w *Worker) SyncAll(ctx context.Context) (succeeded, failed int) {
	start := time.Now()
	w.log.Info("Section sync cycle started", slog.Int("sources_to_sync", len(w.sources)))
	var successCount, errorCount int64
	var g errgroup.Group
	g.SetLimit(maxConcurrentSyncs)
	for _, src := range w.sources {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			opCtx, opCancel := context.WithTimeout(ctx, syncTimeout)
			defer opCancel()
			if err := w.syncer.SyncSource(opCtx, src); err != nil {
				atomic.AddInt64(&errorCount, 1)
				w.log.Error("Section sync failed",
					slog.String("source_url", src.Location),
					slog.Any("error", err),
				)
				return nil
			}
			atomic.AddInt64(&successCount, 1)
			return nil
		})
	}
	g.Wait()
	w.log.Info("Section sync cycle completed",
		slog.Int("successful", int(successCount)),
		slog.Int("errors", int(errorCount)),
		slog.Int("total", len(w.sources)),
		slog.Duration("duration", time.Since(start)),
	)
	return int(successCount), int(errorCount)
}

// Sources возвращает список источников, которые обрабатывает воркер.
func (w *Worker) Sources() []config.Source { return w.sources }

// Interval возвращает интервал синхронизации.
func (w *Worker) Interval() time.Duration { return w.interval }
