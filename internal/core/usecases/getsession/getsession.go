package getsession

import (
	"context"
	"errors"

	"github.com/jonboulle/clockwork"

	"github.com/sergeii/enigma/internal/core/entities/session"
	"github.com/sergeii/enigma/internal/core/repositories"
)

var (
	ErrSessionNotFound       = errors.New("session not found")
	ErrUnableToObtainSession = errors.New("unable to obtain session from repository")
)

type UseCase struct {
	sessionRepo repositories.SessionRepository
	clock       clockwork.Clock
}

func New(
	sessionRepo repositories.SessionRepository,
	clock clockwork.Clock,
) UseCase {
	return UseCase{
		sessionRepo: sessionRepo,
		clock:       clock,
	}
}

// Execute looks up a session and marks it as recently used,
// so that the reaper leaves it alone.
func (uc UseCase) Execute(ctx context.Context, id string) (*session.Session, error) {
	s, err := uc.sessionRepo.Get(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrSessionNotFound):
			return nil, ErrSessionNotFound
		default:
			return nil, ErrUnableToObtainSession
		}
	}

	s.Touch(uc.clock.Now())

	return s, nil
}
