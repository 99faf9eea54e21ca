package resetmachine

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/core/usecases/getsession"
)

type UseCase struct {
	getSessionUC getsession.UseCase
	logger       *zerolog.Logger
}

func New(
	getSessionUC getsession.UseCase,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		getSessionUC: getSessionUC,
		logger:       logger,
	}
}

func (uc UseCase) Execute(ctx context.Context, id string) error {
	s, err := uc.getSessionUC.Execute(ctx, id)
	if err != nil {
		return err
	}

	s.Reset()
	uc.logger.Info().Stringer("session", s).Msg("Reset machine")

	return nil
}
