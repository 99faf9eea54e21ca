package removesession

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/metrics"
)

var (
	ErrSessionNotFound       = errors.New("session not found")
	ErrUnableToRemoveSession = errors.New("unable to remove session")
)

type UseCase struct {
	sessionRepo repositories.SessionRepository
	metrics     *metrics.Collector
	logger      *zerolog.Logger
}

func New(
	sessionRepo repositories.SessionRepository,
	metrics *metrics.Collector,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		sessionRepo: sessionRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

func (uc UseCase) Execute(ctx context.Context, id string) error {
	if err := uc.sessionRepo.Remove(ctx, id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSessionNotFound):
			return ErrSessionNotFound
		default:
			uc.logger.Error().Err(err).Str("session", id).Msg("Unable to remove session")
			return ErrUnableToRemoveSession
		}
	}

	uc.metrics.SessionsRemoved.WithLabelValues("api").Inc()
	uc.logger.Info().Str("session", id).Msg("Removed session")

	return nil
}
