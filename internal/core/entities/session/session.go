package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/sergeii/enigma/pkg/enigma"
)

var ErrNotConfigured = errors.New("machine is not configured")

// Session owns a single enigma machine on behalf of one caller.
// Every access to the machine is serialised by the session lock,
// so key presses of concurrent requests never interleave.
type Session struct {
	ID        string
	Label     string
	Slug      string
	CreatedAt time.Time

	mutex      sync.Mutex
	accessedAt time.Time
	machine    *enigma.Machine
}

func New(label string, now time.Time) *Session {
	return &Session{
		ID:         uuid.NewString(),
		Label:      label,
		Slug:       slug.Make(label),
		CreatedAt:  now,
		accessedAt: now,
	}
}

func (s *Session) String() string {
	if s.Slug == "" {
		return s.ID
	}
	return fmt.Sprintf("%s (%s)", s.ID, s.Slug)
}

func (s *Session) Touch(now time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if now.After(s.accessedAt) {
		s.accessedAt = now
	}
}

func (s *Session) AccessedAt() time.Time {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.accessedAt
}

func (s *Session) IsConfigured() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.machine != nil
}

// Configure builds a new machine including its plugboard
// and puts it in place of the current one only if every step succeeded.
func (s *Session) Configure(cfg enigma.Config, pairs []enigma.Pair) error {
	machine, err := enigma.New(cfg)
	if err != nil {
		return err
	}
	for _, pair := range pairs {
		if err := machine.AddPlugboardPair(pair.A, pair.B); err != nil {
			return err
		}
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.machine = machine
	return nil
}

func (s *Session) Reset() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.machine = nil
}

func (s *Session) Encrypt(text string) (string, enigma.Settings, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.machine == nil {
		return "", enigma.Settings{}, ErrNotConfigured
	}
	encrypted := s.machine.EncryptMessage(text)
	return encrypted, s.machine.Settings(), nil
}

func (s *Session) AddPlugboardPair(a, b rune) (enigma.Settings, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.machine == nil {
		return enigma.Settings{}, ErrNotConfigured
	}
	if err := s.machine.AddPlugboardPair(a, b); err != nil {
		return enigma.Settings{}, err
	}
	return s.machine.Settings(), nil
}

func (s *Session) RemovePlugboardPair(a rune) (enigma.Settings, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.machine == nil {
		return enigma.Settings{}, ErrNotConfigured
	}
	if err := s.machine.RemovePlugboardPair(a); err != nil {
		return enigma.Settings{}, err
	}
	return s.machine.Settings(), nil
}

// Settings returns a blank snapshot for an unconfigured session.
func (s *Session) Settings() enigma.Settings {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.machine == nil {
		return enigma.Settings{}
	}
	return s.machine.Settings()
}
