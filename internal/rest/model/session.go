package model

import (
	"time"

	"github.com/sergeii/enigma/internal/core/entities/session"
)

type NewSession struct {
	Label string `binding:"max=128" example:"Daily key 1941-05-09" json:"label"`
}

type Session struct {
	ID         string    `json:"id"`
	Label      string    `json:"label"`
	Slug       string    `json:"slug"`
	CreatedAt  time.Time `json:"created_at"`
	AccessedAt time.Time `json:"accessed_at"`
	Configured bool      `json:"configured"`
	Settings   Settings  `json:"settings"`
}

func NewSessionFromDomain(s *session.Session) Session {
	return Session{
		ID:         s.ID,
		Label:      s.Label,
		Slug:       s.Slug,
		CreatedAt:  s.CreatedAt,
		AccessedAt: s.AccessedAt(),
		Configured: s.IsConfigured(),
		Settings:   NewSettingsFromDomain(s.Settings()),
	}
}
