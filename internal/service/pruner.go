package service

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultPruneInterval is how often the pruner sweeps the visit log.
const DefaultPruneInterval = 6 * time.Hour

// Pruner runs AnalyticsService.Prune in the background: once at Start and
// then every interval until Stop.
type Pruner struct {
	analytics *AnalyticsService
	interval  time.Duration
	timeout   time.Duration
	logger    *slog.Logger
	done      chan struct{}
	wg        sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewPruner creates a stopped pruner. A non-positive interval means
// DefaultPruneInterval.
func NewPruner(analytics *AnalyticsService, interval time.Duration, logger *slog.Logger) *Pruner {
	if interval <= 0 {
		interval = DefaultPruneInterval
	}
	return &Pruner{
		analytics: analytics,
		interval:  interval,
		timeout:   30 * time.Second,
		logger:    logger,
		done:      make(chan struct{}),
	}
}

// Start launches the background loop. Calling it again is a no-op.
func (p *Pruner) Start() {
	p.startOnce.Do(func() {
		p.logger.Info("starting visit retention pruner", slog.Duration("interval", p.interval))
		p.wg.Add(1)
		go p.loop()
	})
}

// Stop signals the loop and waits for it to exit. Safe to call more than
// once, and before Start.
func (p *Pruner) Stop() {
	p.stopOnce.Do(func() {
		close(p.done)
	})
	p.wg.Wait()
}

func (p *Pruner) loop() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.sweep()
	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			p.sweep()
		}
	}
}

func (p *Pruner) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if _, err := p.analytics.Prune(ctx); err != nil {
		p.logger.Error("visit retention sweep failed", slog.String("error", err.Error()))
	}
}
