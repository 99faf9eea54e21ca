package generatesettings

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/core/usecases/getsession"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/pkg/enigma"
	"github.com/sergeii/enigma/pkg/random"
	"github.com/sergeii/enigma/pkg/slice"
)

// only the reflectors that saw wide service are picked for a random key
var reflectorChoices = []enigma.ReflectorName{ // nolint: gochecknoglobals
	enigma.ReflectorB,
	enigma.ReflectorC,
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

func (uc UseCase) Execute(ctx context.Context, id string) (enigma.Settings, error) {
	s, err := uc.getSessionUC.Execute(ctx, id)
	if err != nil {
		return enigma.Settings{}, err
	}

	cfg, pairs := Generate()
	if err := s.Configure(cfg, pairs); err != nil {
		uc.metrics.MachineConfigurations.WithLabelValues("error").Inc()
		uc.logger.Error().Err(err).Stringer("session", s).Msg("Failed to apply generated settings")
		return enigma.Settings{}, err
	}

	uc.metrics.MachineConfigurations.WithLabelValues("ok").Inc()
	uc.logger.Info().Stringer("session", s).Msg("Configured machine with generated settings")

	return s.Settings(), nil
}

// Generate makes a random daily key: three distinct rotors,
// random positions and ring settings, and a fully populated plugboard.
func Generate() (enigma.Config, []enigma.Pair) {
	names := enigma.RotorNames()
	order := slice.TruncateSafe(random.Perm(len(names)), enigma.RotorCount)

	rotors := slice.Map(order, func(idx int) enigma.RotorSpec {
		return enigma.RotorSpec{
			Name:        names[idx],
			Position:    random.RandInt(0, 26),
			RingSetting: random.RandInt(0, 26),
		}
	})

	letters := slice.TruncateSafe(random.Perm(26), enigma.MaxPlugboardPairs*2)
	pairs := make([]enigma.Pair, 0, enigma.MaxPlugboardPairs)
	for i := 0; i+1 < len(letters); i += 2 {
		pairs = append(pairs, enigma.Pair{
			A: rune('A' + letters[i]),
			B: rune('A' + letters[i+1]),
		})
	}

	cfg := enigma.Config{
		Rotors:    rotors,
		Reflector: slice.RandomChoice(reflectorChoices),
	}

	return cfg, pairs
}
