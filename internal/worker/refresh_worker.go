package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/ShayaanRahim/GeoPoli-Invest/internal/usecase"
)

const (
	cycleTimeout   = 60 * time.Second
	initialBackoff = 30 * time.Second
	maxBackoff     = 15 * time.Minute
)

// RefreshWorker periodically pulls fresh articles through the refresh
// usecase. A failing cycle backs off exponentially; a successful one
// restores the configured interval.
type RefreshWorker struct {
	refreshUsecase usecase.RefreshNewsUsecase
	interval       time.Duration
	fetchLimit     int
	logger         *slog.Logger
	stopChan       chan struct{}
	backoff        time.Duration
}

func NewRefreshWorker(
	refreshUsecase usecase.RefreshNewsUsecase,
	interval time.Duration,
	fetchLimit int,
	logger *slog.Logger,
) *RefreshWorker {
	return &RefreshWorker{
		refreshUsecase: refreshUsecase,
		interval:       interval,
		fetchLimit:     fetchLimit,
		logger:         logger,
		stopChan:       make(chan struct{}),
	}
}

func (w *RefreshWorker) Start() {
	w.logger.Info("Starting RefreshWorker", "interval", w.interval.String())
	go w.run()
}

func (w *RefreshWorker) Stop() {
	w.logger.Info("Stopping RefreshWorker")
	close(w.stopChan)
}

func (w *RefreshWorker) run() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ticker.C:
			w.runCycle()
			if w.backoff > 0 {
				ticker.Reset(w.backoff)
			} else {
				ticker.Reset(w.interval)
			}
		}
	}
}

func (w *RefreshWorker) runCycle() {
	ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
	defer cancel()

	result, err := w.refreshUsecase.Refresh(ctx, w.fetchLimit)
	if err != nil {
		w.backoff = w.nextBackoff(w.backoff)
		w.logger.Warn("Refresh cycle failed, backing off", "backoff", w.backoff, "error", err)
		return
	}

	w.backoff = 0
	w.logger.Info("Refresh cycle finished",
		"fetched", result.Fetched,
		"kept", result.Kept,
		"stored", result.Ingest.Stored)
}

func (w *RefreshWorker) nextBackoff(current time.Duration) time.Duration {
	if current == 0 {
		return initialBackoff
	}
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}
