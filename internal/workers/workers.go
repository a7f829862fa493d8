package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and returns once all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}

// Periodic calls job once at start and then every interval until the
// context is cancelled.
type Periodic struct {
	name     string
	interval time.Duration
	job      func(ctx context.Context)

	logger *logger.Logger
}

func NewPeriodic(name string, interval time.Duration, job func(ctx context.Context), logger *logger.Logger) *Periodic {
	return &Periodic{name: name, interval: interval, job: job, logger: logger}
}

func (p *Periodic) Run(ctx context.Context) {
	p.logger.Debug().Str("worker", p.name).Dur("interval", p.interval).Msg("worker started")
	defer p.logger.Debug().Str("worker", p.name).Msg("worker stopped")

	p.job(ctx)
	if p.interval <= 0 {
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.job(ctx)
		}
	}
}
