package removeplugboardpair

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/core/usecases/getsession"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/pkg/enigma"
)

type UseCase struct {
	getSessionUC getsession.UseCase
	metrics      *metrics.Collector
	logger       *zerolog.Logger
}

func New(
	getSessionUC getsession.UseCase,
	metrics *metrics.Collector,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		getSessionUC: getSessionUC,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute disconnects the given letter together with its partner.
func (uc UseCase) Execute(ctx context.Context, id string, letter rune) (enigma.Settings, error) {
	s, err := uc.getSessionUC.Execute(ctx, id)
	if err != nil {
		return enigma.Settings{}, err
	}

	settings, err := s.RemovePlugboardPair(letter)
	if err != nil {
		uc.metrics.PlugboardChanges.WithLabelValues("remove", "error").Inc()
		uc.logger.Debug().
			Err(err).Stringer("session", s).Str("letter", string(letter)).
			Msg("Unable to disconnect plugboard pair")
		return enigma.Settings{}, err
	}

	uc.metrics.PlugboardChanges.WithLabelValues("remove", "ok").Inc()
	uc.logger.Debug().Stringer("session", s).Str("letter", string(letter)).Msg("Disconnected plugboard pair")

	return settings, nil
}
