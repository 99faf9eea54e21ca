package configuremachine

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/core/usecases/getsession"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/pkg/enigma"
)

type Request struct {
	Rotors    []enigma.RotorSpec
	Reflector enigma.ReflectorName
	Plugboard []enigma.Pair
}

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

// Execute sets up the session machine from scratch.
// The previous configuration stays intact if any part of the new one is rejected.
func (uc UseCase) Execute(ctx context.Context, id string, req Request) (enigma.Settings, error) {
	s, err := uc.getSessionUC.Execute(ctx, id)
	if err != nil {
		return enigma.Settings{}, err
	}

	cfg := enigma.Config{
		Rotors:    req.Rotors,
		Reflector: req.Reflector,
	}
	if err := s.Configure(cfg, req.Plugboard); err != nil {
		uc.metrics.MachineConfigurations.WithLabelValues("error").Inc()
		uc.logger.Debug().Err(err).Stringer("session", s).Msg("Rejected machine configuration")
		return enigma.Settings{}, err
	}

	uc.metrics.MachineConfigurations.WithLabelValues("ok").Inc()
	uc.logger.Info().Stringer("session", s).Msg("Configured machine")

	return s.Settings(), nil
}
