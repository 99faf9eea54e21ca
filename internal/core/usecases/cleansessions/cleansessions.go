package cleansessions

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/metrics"
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

type Response struct {
	Count  int
	Errors int
}

var NoResponse = Response{}

func (uc UseCase) Execute(ctx context.Context, until time.Time) (Response, error) {
	var before, after, removed, errs int
	var err error

	if before, err = uc.sessionRepo.Count(ctx); err != nil {
		return NoResponse, err
	}

	uc.logger.Debug().
		Stringer("until", until).Int("sessions", before).
		Msg("Starting to clean idle sessions")

	idleSessions, err := uc.sessionRepo.AccessedBefore(ctx, until)
	if err != nil {
		uc.logger.Error().Err(err).Msg("Unable to obtain sessions for cleanup")
		return NoResponse, err
	}

	for _, s := range idleSessions {
		// the session could have been used since it was picked up
		if !s.AccessedAt().Before(until) {
			uc.logger.Debug().Stringer("session", s).Msg("Idle session is in use again")
			continue
		}
		if err = uc.sessionRepo.Remove(ctx, s.ID); err != nil {
			if errors.Is(err, repositories.ErrSessionNotFound) {
				continue
			}
			uc.logger.Error().
				Err(err).
				Stringer("until", until).Stringer("session", s).
				Msg("Failed to remove idle session")
			errs++
			continue
		}
		uc.metrics.SessionsRemoved.WithLabelValues("idle").Inc()
		removed++
	}

	if after, err = uc.sessionRepo.Count(ctx); err != nil {
		return NoResponse, err
	}

	uc.logger.Info().
		Stringer("until", until).
		Int("removed", removed).Int("errors", errs).
		Int("before", before).Int("after", after).
		Msg("Finished cleaning idle sessions")

	return Response{Count: removed, Errors: errs}, nil
}
