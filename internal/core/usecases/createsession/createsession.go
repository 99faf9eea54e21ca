package createsession

import (
	"context"
	"errors"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/core/entities/session"
	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/internal/settings"
)

var (
	ErrTooManySessions       = errors.New("session limit reached")
	ErrUnableToCreateSession = errors.New("unable to create session")
)

type UseCase struct {
	sessionRepo repositories.SessionRepository
	settings    settings.Settings
	metrics     *metrics.Collector
	clock       clockwork.Clock
	logger      *zerolog.Logger
}

func New(
	sessionRepo repositories.SessionRepository,
	settings settings.Settings,
	metrics *metrics.Collector,
	clock clockwork.Clock,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		sessionRepo: sessionRepo,
		settings:    settings,
		metrics:     metrics,
		clock:       clock,
		logger:      logger,
	}
}

func (uc UseCase) Execute(ctx context.Context, label string) (*session.Session, error) {
	if uc.settings.MaxSessions > 0 {
		count, err := uc.sessionRepo.Count(ctx)
		if err != nil {
			uc.logger.Error().Err(err).Msg("Unable to count sessions")
			return nil, ErrUnableToCreateSession
		}
		// the limit is soft, concurrent requests may overshoot it slightly
		if count >= uc.settings.MaxSessions {
			uc.logger.Warn().
				Int("count", count).Int("max", uc.settings.MaxSessions).
				Msg("Refusing to create session over the limit")
			return nil, ErrTooManySessions
		}
	}

	s := session.New(label, uc.clock.Now())
	if err := uc.sessionRepo.Add(ctx, s); err != nil {
		uc.logger.Error().Err(err).Stringer("session", s).Msg("Unable to add session")
		return nil, ErrUnableToCreateSession
	}

	uc.metrics.SessionsCreated.Inc()
	uc.logger.Info().Stringer("session", s).Msg("Created new session")

	return s, nil
}
