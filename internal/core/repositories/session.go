package repositories

import (
	"context"
	"time"

	"github.com/sergeii/enigma/internal/core/entities/session"
)

type SessionRepository interface {
	Add(context.Context, *session.Session) error
	Get(context.Context, string) (*session.Session, error)
	Remove(context.Context, string) error
	AccessedBefore(context.Context, time.Time) ([]*session.Session, error)
	Count(context.Context) (int, error)
}
