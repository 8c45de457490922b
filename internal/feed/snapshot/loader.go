package snapshot

import (
	"context"
	"time"

	"alphafeed/internal/feed/viewstore"
	"alphafeed/pkg/alphasuite"

	"go.uber.org/zap"
)

// StatsLoader reconciles the local counters against the backend's
// authoritative stats endpoint.
type StatsLoader struct {
	Client   *alphasuite.RESTClient
	Counters *viewstore.CounterStore
	Timeout  time.Duration
	Logger   *zap.Logger
}

// LoadOnce fetches the snapshot and overwrites the matching counters.
// A failed or slow fetch degrades silently: the optimistic values stand and
// no retry is scheduled here.
func (l *StatsLoader) LoadOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, l.Timeout)
	defer cancel()

	stats, err := l.Client.GetStats(ctx)
	if err != nil {
		l.Logger.Warn("counters snapshot fetch failed, keeping optimistic values", zap.Error(err))
		return err
	}

	l.Counters.Resync(stats)
	l.Logger.Info("counters resynced from snapshot", zap.Int("keys", len(stats)))
	return nil
}
