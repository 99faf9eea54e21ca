package encryptmessage

import (
	"context"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/core/usecases/getsession"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/internal/settings"
	"github.com/sergeii/enigma/pkg/enigma"
	"github.com/sergeii/enigma/pkg/textutils"
)

type Request struct {
	Text string
	// strip diacritics before encryption, so that É is typed as E
	Fold bool
}

type Response struct {
	Encrypted string
	Settings  enigma.Settings
}

var NoResponse = Response{}

type UseCase struct {
	getSessionUC getsession.UseCase
	settings     settings.Settings
	metrics      *metrics.Collector
	clock        clockwork.Clock
	logger       *zerolog.Logger
}

func New(
	getSessionUC getsession.UseCase,
	settings settings.Settings,
	metrics *metrics.Collector,
	clock clockwork.Clock,
	logger *zerolog.Logger,
) UseCase {
	return UseCase{
		getSessionUC: getSessionUC,
		settings:     settings,
		metrics:      metrics,
		clock:        clock,
		logger:       logger,
	}
}

func (uc UseCase) Execute(ctx context.Context, id string, req Request) (Response, error) {
	s, err := uc.getSessionUC.Execute(ctx, id)
	if err != nil {
		return NoResponse, err
	}

	text := req.Text
	if req.Fold || uc.settings.FoldText {
		text = textutils.Fold(text)
	}

	started := uc.clock.Now()
	encrypted, settings, err := s.Encrypt(text)
	if err != nil {
		uc.logger.Debug().Err(err).Stringer("session", s).Msg("Unable to encrypt message")
		return NoResponse, err
	}
	uc.metrics.EncryptionDurations.Observe(uc.clock.Since(started).Seconds())

	uc.metrics.EncryptedMessages.Inc()
	uc.metrics.EncryptedCharacters.Add(float64(utf8.RuneCountInString(text)))

	uc.logger.Debug().
		Stringer("session", s).Int("length", len(text)).
		Msg("Encrypted message")

	return Response{Encrypted: encrypted, Settings: settings}, nil
}
