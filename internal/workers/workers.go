package workers

import (
	"context"

	"github.com/MKhiriev/cpoint/internal/logger"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Run starts every worker in its own goroutine and waits for all of them.
// The first worker to fail cancels the context of the others; its error is
// returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for i, worker := range w.workers {
		g.Go(func() error {
			if err := worker.Run(ctx); err != nil {
				w.logger.Error().Err(err).Int("worker", i).Msg("worker failed")
				return err
			}
			return nil
		})
	}

	return g.Wait()
}
