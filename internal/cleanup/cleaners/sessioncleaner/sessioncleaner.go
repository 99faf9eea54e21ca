package sessioncleaner

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/cleanup"
	"github.com/sergeii/enigma/internal/core/usecases/cleansessions"
	"github.com/sergeii/enigma/internal/metrics"
)

type Opts struct {
	TTL time.Duration
}

type SessionCleaner struct {
	opts    Opts
	uc      cleansessions.UseCase
	clock   clockwork.Clock
	metrics *metrics.Collector
	logger  *zerolog.Logger
}

func New(
	manager *cleanup.Manager,
	opts Opts,
	uc cleansessions.UseCase,
	clock clockwork.Clock,
	metrics *metrics.Collector,
	logger *zerolog.Logger,
) SessionCleaner {
	cleaner := SessionCleaner{
		opts:    opts,
		uc:      uc,
		clock:   clock,
		metrics: metrics,
		logger:  logger,
	}
	manager.AddCleaner(&cleaner)
	return cleaner
}

func (c SessionCleaner) Clean(ctx context.Context) {
	cleanUntil := c.clock.Now().Add(-c.opts.TTL)

	resp, err := c.uc.Execute(ctx, cleanUntil)
	if err != nil {
		c.metrics.ReaperErrors.Inc()
		c.logger.Error().Err(err).Stringer("until", cleanUntil).Msg("Failed to clean idle sessions")
		return
	}

	c.metrics.ReaperRemovals.Add(float64(resp.Count))
	c.metrics.ReaperErrors.Add(float64(resp.Errors))
}
