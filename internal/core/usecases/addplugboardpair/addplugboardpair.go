package addplugboardpair

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

func (uc UseCase) Execute(ctx context.Context, id string, pair enigma.Pair) (enigma.Settings, error) {
	s, err := uc.getSessionUC.Execute(ctx, id)
	if err != nil {
		return enigma.Settings{}, err
	}

	settings, err := s.AddPlugboardPair(pair.A, pair.B)
	if err != nil {
		uc.metrics.PlugboardChanges.WithLabelValues("add", "error").Inc()
		uc.logger.Debug().
			Err(err).Stringer("session", s).Stringer("pair", pair).
			Msg("Unable to connect plugboard pair")
		return enigma.Settings{}, err
	}

	uc.metrics.PlugboardChanges.WithLabelValues("add", "ok").Inc()
	uc.logger.Debug().Stringer("session", s).Stringer("pair", pair).Msg("Connected plugboard pair")

	return settings, nil
}
