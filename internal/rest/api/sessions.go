package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigma/internal/rest/model"
)

// CreateSession godoc
// @Summary      Create session
// @Description  Create a new session holding an unconfigured machine
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        session body      model.NewSession  false  "Session label"
// @Success      201     {object}  model.Session
// @Failure      400     {object}  api.Error
// @Failure      503     {object}  api.Error
// @Router       /sessions [post]
func (a *API) CreateSession(c *gin.Context) {
	var body model.NewSession
	// the body is optional
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		a.respondWithBindError(c, err)
		return
	}

	s, err := a.container.CreateSession.Execute(c, body.Label)
	if err != nil {
		a.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.NewSessionFromDomain(s))
}

// ViewSession godoc
// @Summary      View session
// @Description  Return the session along with the current machine settings
// @Tags         sessions
// @Produce      json
// @Param        id  path      string  true  "Session ID"
// @Success      200 {object}  model.Session
// @Failure      404 {object}  api.Error
// @Router       /sessions/{id} [get]
func (a *API) ViewSession(c *gin.Context) {
	s, err := a.container.GetSession.Execute(c, c.Param("id"))
	if err != nil {
		a.respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSessionFromDomain(s))
}

// RemoveSession godoc
// @Summary      Remove session
// @Tags         sessions
// @Param        id  path  string  true  "Session ID"
// @Success      204
// @Failure      404 {object}  api.Error
// @Router       /sessions/{id} [delete]
func (a *API) RemoveSession(c *gin.Context) {
	if err := a.container.RemoveSession.Execute(c, c.Param("id")); err != nil {
		a.respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
