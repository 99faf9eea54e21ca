package api

import (
	"context"
	"net"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/build"
	"github.com/sergeii/enigma/cmd/enigma/commander"
	"github.com/sergeii/enigma/cmd/enigma/components/observer"
	"github.com/sergeii/enigma/cmd/enigma/components/reaper"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/internal/rest"
	"github.com/sergeii/enigma/internal/rest/api"
	"github.com/sergeii/enigma/pkg/http/httpserver"
	"github.com/sergeii/enigma/pkg/http/ratelimit"
)

type Config struct {
	HTTPListenAddr      string
	HTTPReadTimeout     time.Duration
	HTTPWriteTimeout    time.Duration
	HTTPShutdownTimeout time.Duration
	RateLimitRPS        float64
	RateLimitBurst      int
}

type Component struct {
	addr net.Addr
}

func (c *Component) Addr() net.Addr {
	return c.addr
}

func New(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	router *gin.Engine,
	cfg Config,
	logger *zerolog.Logger,
) (*Component, error) {
	component := &Component{}
	ready := make(chan struct{})

	svr, err := httpserver.New(
		cfg.HTTPListenAddr,
		httpserver.WithShutdownTimeout(cfg.HTTPShutdownTimeout),
		httpserver.WithReadTimeout(cfg.HTTPReadTimeout),
		httpserver.WithWriteTimeout(cfg.HTTPWriteTimeout),
		httpserver.WithHandler(router),
		httpserver.WithReadySignal(func(addr net.Addr) {
			component.addr = addr
			logger.Info().Stringer("addr", addr).Msg("API server is ready to accept connections")
			close(ready)
		}),
	)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to set up API server")
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if serveErr := svr.ListenAndServe(); serveErr != nil {
					logger.Warn().Err(serveErr).Msg("API server exited prematurely")
					if shutErr := shutdowner.Shutdown(); shutErr != nil {
						logger.Error().Err(shutErr).Msg("Failed to handle premature API server shutdown")
					}
				}
			}()
			<-ready
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			if stopErr := svr.Stop(stopCtx); stopErr != nil {
				logger.Error().Err(stopErr).Msg("Failed to stop API server gracefully")
				return stopErr
			}
			logger.Info().Msg("API server stopped")
			return nil
		},
	})

	return component, nil
}

func provideLimiter(
	cfg Config,
	clock clockwork.Clock,
	collector *metrics.Collector,
	logger *zerolog.Logger,
) *ratelimit.Limiter {
	return ratelimit.New(
		cfg.RateLimitRPS,
		cfg.RateLimitBurst,
		ratelimit.WithClock(clock),
		ratelimit.WithOnLimit(func(c *gin.Context) {
			collector.APIRateLimited.Inc()
			logger.Debug().Str("client", c.ClientIP()).Str("path", c.FullPath()).Msg("Request rate limited")
		}),
	)
}

type command struct {
	HTTPListenAddress   string        `default:":8000" help:"Sets the address where the API server listens for incoming http requests"`         // nolint:lll
	HTTPReadTimeout     time.Duration `default:"5s"    help:"Sets the maximum duration to read the request body before timing out"`             // nolint:lll
	HTTPWriteTimeout    time.Duration `default:"5s"    help:"Sets the maximum duration to write a response after reading the request body"`     // nolint:lll
	HTTPShutdownTimeout time.Duration `default:"10s"   help:"Defines how long the server waits to gracefully close connections before exiting"` // nolint:lll

	RateLimitRPS   float64 `default:"20" help:"Sets how many API requests per second a single client may make (0 disables limiting)"` // nolint:lll
	RateLimitBurst int     `default:"40" help:"Sets how many API requests a single client may make in a burst"`

	SessionReapInterval   time.Duration `default:"1m" help:"Sets how often idle sessions are looked for and removed"`
	MetricObserveInterval time.Duration `default:"5s" help:"Sets how often metrics are collected"`
}

func (c *command) Run(_ *commander.Globals, builder *application.Builder) error {
	app := builder.
		Add(
			fx.Supply(
				Config{
					HTTPListenAddr:      c.HTTPListenAddress,
					HTTPReadTimeout:     c.HTTPReadTimeout,
					HTTPWriteTimeout:    c.HTTPWriteTimeout,
					HTTPShutdownTimeout: c.HTTPShutdownTimeout,
					RateLimitRPS:        c.RateLimitRPS,
					RateLimitBurst:      c.RateLimitBurst,
				},
				reaper.Config{
					ReapInterval: c.SessionReapInterval,
				},
				observer.Config{
					ObserveInterval: c.MetricObserveInterval,
				},
			),
			Module,
			// sessions live in memory, so the reaper and the observer
			// have to share the process with the API server
			reaper.Module,
			observer.Module,
			fx.Invoke(func(logger *zerolog.Logger, _ *Component, _ *reaper.Component, _ *observer.Component) {
				logger.Info().
					Str("version", build.Version).
					Str("commit", build.Commit).
					Str("built", build.Time).
					Str("address", c.HTTPListenAddress).
					Msg("Starting API server")
			}),
		).
		WithExporter().
		Build()
	app.Run()
	return nil
}

type CLI struct {
	API command `cmd:"" help:"Start API server"`
}

// RouterModule builds the http handler without binding it to a listener.
var RouterModule = fx.Module("router",
	fx.Provide(fx.Private, api.New),
	fx.Provide(fx.Private, provideLimiter),
	fx.Provide(rest.NewRouter),
)

var Module = fx.Module("api",
	RouterModule,
	fx.Provide(New),
)
