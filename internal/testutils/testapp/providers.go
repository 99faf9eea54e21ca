package testapp

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/internal/settings"
)

func NoLogging() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func ProvideSettings() settings.Settings {
	return settings.Settings{
		SessionTTL:  time.Hour,
		MaxSessions: 100,
	}
}
