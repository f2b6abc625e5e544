package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"walletwave.backend/pkg/logger"
)

type mirrorStore interface {
	PendingPastExpiry(ctx context.Context, now time.Time) ([]string, error)
	Invalidate(ctx context.Context, paymentID string) error
	RemoveFromPendingIndex(ctx context.Context, paymentIDs ...string) error
}

// MirrorRefreshJob sweeps mirrored pending payments whose expiry has passed
// and drops them from the mirror, so the next read re-derives their display
// status from the chain and the clock.
type MirrorRefreshJob struct {
	store    mirrorStore
	interval time.Duration
	stop     chan struct{}
}

func NewMirrorRefreshJob(store mirrorStore, interval time.Duration) *MirrorRefreshJob {
	return &MirrorRefreshJob{
		store:    store,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *MirrorRefreshJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting mirror refresh job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "mirror refresh job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "mirror refresh job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx, time.Now())
		}
	}
}

func (j *MirrorRefreshJob) Stop() {
	close(j.stop)
}

func (j *MirrorRefreshJob) sweep(ctx context.Context, now time.Time) {
	due, err := j.store.PendingPastExpiry(ctx, now)
	if err != nil {
		logger.Error(ctx, "mirror sweep failed to list due payments", zap.Error(err))
		return
	}
	if len(due) == 0 {
		return
	}

	for _, id := range due {
		if err := j.store.Invalidate(ctx, id); err != nil {
			logger.Error(ctx, "mirror sweep failed to invalidate payment",
				zap.String("payment_id", id), zap.Error(err))
			return
		}
	}
	if err := j.store.RemoveFromPendingIndex(ctx, due...); err != nil {
		logger.Error(ctx, "mirror sweep failed to trim pending index", zap.Error(err))
		return
	}

	logger.Info(ctx, "mirror sweep invalidated due payments", zap.Int("count", len(due)))
}
