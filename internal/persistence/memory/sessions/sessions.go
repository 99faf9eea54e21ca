package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/sergeii/enigma/internal/core/entities/session"
	"github.com/sergeii/enigma/internal/core/repositories"
)

type Repository struct {
	sessions map[string]*session.Session
	mutex    sync.RWMutex
}

func New() *Repository {
	return &Repository{
		sessions: make(map[string]*session.Session),
	}
}

func (r *Repository) Add(_ context.Context, s *session.Session) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, exists := r.sessions[s.ID]; exists {
		return repositories.ErrSessionExists
	}
	r.sessions[s.ID] = s
	return nil
}

func (r *Repository) Get(_ context.Context, id string) (*session.Session, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	s, exists := r.sessions[id]
	if !exists {
		return nil, repositories.ErrSessionNotFound
	}
	return s, nil
}

func (r *Repository) Remove(_ context.Context, id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, exists := r.sessions[id]; !exists {
		return repositories.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *Repository) AccessedBefore(_ context.Context, until time.Time) ([]*session.Session, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	idle := make([]*session.Session, 0)
	for _, s := range r.sessions {
		if s.AccessedAt().Before(until) {
			idle = append(idle, s)
		}
	}
	return idle, nil
}

func (r *Repository) Count(_ context.Context) (int, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.sessions), nil
}
