package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/sergeii/enigma/cmd/enigma/container"
	"github.com/sergeii/enigma/internal/core/entities/session"
	"github.com/sergeii/enigma/internal/core/usecases/createsession"
	"github.com/sergeii/enigma/internal/core/usecases/getsession"
	"github.com/sergeii/enigma/internal/core/usecases/removesession"
	"github.com/sergeii/enigma/internal/settings"
	"github.com/sergeii/enigma/pkg/enigma"
)

type API struct {
	settings  settings.Settings
	container container.Container
	logger    *zerolog.Logger
}

type Error struct {
	Error string `json:"error"`
}

func New(
	settings settings.Settings,
	logger *zerolog.Logger,
	container container.Container,
) *API {
	return &API{
		container: container,
		settings:  settings,
		logger:    logger,
	}
}

func (a *API) respondWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, getsession.ErrSessionNotFound), errors.Is(err, removesession.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, Error{"Session not found"})
	case errors.Is(err, session.ErrNotConfigured):
		c.JSON(http.StatusConflict, Error{"Machine is not configured"})
	case errors.Is(err, enigma.ErrConfiguration), errors.Is(err, enigma.ErrPlugboard):
		c.JSON(http.StatusBadRequest, Error{err.Error()})
	case errors.Is(err, createsession.ErrTooManySessions):
		c.JSON(http.StatusServiceUnavailable, Error{"Too many sessions"})
	default:
		a.logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unable to serve request")
		c.JSON(http.StatusInternalServerError, Error{"Internal server error"})
	}
}

func (a *API) respondWithBindError(c *gin.Context, err error) {
	a.logger.Debug().Err(err).Str("path", c.FullPath()).Msg("Invalid request body")
	c.JSON(http.StatusBadRequest, Error{err.Error()})
}
