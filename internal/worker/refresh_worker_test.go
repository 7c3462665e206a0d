package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/ShayaanRahim/GeoPoli-Invest/internal/usecase"

	"github.com/stretchr/testify/assert"
)

type stubRefreshUsecase struct {
	mu          sync.Mutex
	capturedCtx context.Context
	gotLimit    int
	returnErr   error
}

func (s *stubRefreshUsecase) Refresh(ctx context.Context, limit int) (*usecase.RefreshResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.capturedCtx = ctx
	s.gotLimit = limit
	if s.returnErr != nil {
		return nil, s.returnErr
	}
	return &usecase.RefreshResult{
		Fetched: 3,
		Kept:    2,
		Ingest:  &usecase.IngestResult{Received: 2, Stored: 2},
	}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestRunCycle_ContextHasTimeout(t *testing.T) {
	uc := &stubRefreshUsecase{}
	w := NewRefreshWorker(uc, time.Minute, 20, testLogger())

	w.runCycle()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	assert.NotNil(t, uc.capturedCtx, "Refresh should have been called")
	deadline, ok := uc.capturedCtx.Deadline()
	assert.True(t, ok, "context passed to Refresh must have a deadline")
	assert.WithinDuration(t, time.Now().Add(cycleTimeout), deadline, 5*time.Second)
	assert.Equal(t, 20, uc.gotLimit)
}

func TestRefreshWorker_BacksOffOnConsecutiveFailures(t *testing.T) {
	uc := &stubRefreshUsecase{returnErr: errors.New("news endpoint unreachable")}
	w := NewRefreshWorker(uc, time.Minute, 20, testLogger())

	w.runCycle()
	assert.Equal(t, initialBackoff, w.backoff)

	w.runCycle()
	assert.Equal(t, 2*initialBackoff, w.backoff)
}

func TestRefreshWorker_BackoffResetsOnSuccess(t *testing.T) {
	uc := &stubRefreshUsecase{returnErr: errors.New("fail")}
	w := NewRefreshWorker(uc, time.Minute, 20, testLogger())

	w.runCycle()
	assert.Equal(t, initialBackoff, w.backoff)

	uc.mu.Lock()
	uc.returnErr = nil
	uc.mu.Unlock()

	w.runCycle()
	assert.Equal(t, time.Duration(0), w.backoff, "backoff should reset on success")
}

func TestRefreshWorker_BackoffCapsAtMax(t *testing.T) {
	w := NewRefreshWorker(nil, time.Minute, 20, testLogger())

	bo := time.Duration(0)
	for i := 0; i < 20; i++ {
		bo = w.nextBackoff(bo)
	}
	assert.Equal(t, maxBackoff, bo, "backoff must cap at maxBackoff")
}

func TestRefreshWorker_StartStop(t *testing.T) {
	uc := &stubRefreshUsecase{}
	w := NewRefreshWorker(uc, time.Hour, 20, testLogger())

	w.Start()
	w.Stop()
}
