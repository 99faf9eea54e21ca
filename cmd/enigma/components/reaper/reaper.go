package reaper

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/enigma/internal/cleanup"
	"github.com/sergeii/enigma/internal/cleanup/cleaners/sessioncleaner"
	"github.com/sergeii/enigma/internal/settings"
)

type Config struct {
	ReapInterval time.Duration
}

type Component struct{}

func run(
	stop chan struct{},
	stopped chan struct{},
	clock clockwork.Clock,
	logger *zerolog.Logger,
	manager *cleanup.Manager,
	cfg Config,
) {
	ticker := clock.NewTicker(cfg.ReapInterval)
	tickerCh := ticker.Chan()
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info().Dur("interval", cfg.ReapInterval).Msg("Starting session reaper")

	for {
		select {
		case <-stop:
			close(stopped)
			return
		case <-tickerCh:
			manager.Clean(ctx)
		}
	}
}

func New(
	lc fx.Lifecycle,
	cfg Config,
	clock clockwork.Clock,
	manager *cleanup.Manager,
	logger *zerolog.Logger,
) *Component {
	stopped := make(chan struct{})
	stop := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go run(stop, stopped, clock, logger, manager, cfg) // nolint: contextcheck
			return nil
		},
		OnStop: func(context.Context) error {
			close(stop)
			<-stopped
			logger.Info().Msg("Session reaper stopped")
			return nil
		},
	})

	return &Component{}
}

func provideCleanerOpts(settings settings.Settings) sessioncleaner.Opts {
	return sessioncleaner.Opts{
		TTL: settings.SessionTTL,
	}
}

var Module = fx.Module("reaper",
	fx.Provide(cleanup.NewManager),
	fx.Provide(fx.Private, provideCleanerOpts),
	fx.Invoke(sessioncleaner.New),
	fx.Provide(New),
)
