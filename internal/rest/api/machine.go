package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigma/internal/core/usecases/encryptmessage"
	"github.com/sergeii/enigma/internal/rest/model"
	"github.com/sergeii/enigma/pkg/enigma"
)

// ConfigureMachine godoc
// @Summary      Configure machine
// @Description  Replace rotors, reflector and plugboard of the session machine at once
// @Tags         machine
// @Accept       json
// @Produce      json
// @Param        id        path      string                 true  "Session ID"
// @Param        settings  body      model.MachineSettings  true  "Machine settings"
// @Success      200       {object}  model.Settings
// @Failure      400       {object}  api.Error
// @Failure      404       {object}  api.Error
// @Router       /sessions/{id}/settings [put]
func (a *API) ConfigureMachine(c *gin.Context) {
	var body model.MachineSettings
	if err := c.ShouldBindJSON(&body); err != nil {
		a.respondWithBindError(c, err)
		return
	}

	settings, err := a.container.ConfigureMachine.Execute(c, c.Param("id"), body.ToRequest())
	if err != nil {
		a.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSettingsFromDomain(settings))
}

// ResetMachine godoc
// @Summary      Reset machine
// @Description  Remove the machine configuration, leaving the session unconfigured
// @Tags         machine
// @Param        id  path  string  true  "Session ID"
// @Success      204
// @Failure      404 {object}  api.Error
// @Router       /sessions/{id}/settings [delete]
func (a *API) ResetMachine(c *gin.Context) {
	if err := a.container.ResetMachine.Execute(c, c.Param("id")); err != nil {
		a.respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GenerateSettings godoc
// @Summary      Generate random settings
// @Description  Configure the machine with a random daily key
// @Tags         machine
// @Produce      json
// @Param        id  path      string  true  "Session ID"
// @Success      200 {object}  model.Settings
// @Failure      404 {object}  api.Error
// @Router       /sessions/{id}/settings/random [post]
func (a *API) GenerateSettings(c *gin.Context) {
	settings, err := a.container.GenerateSettings.Execute(c, c.Param("id"))
	if err != nil {
		a.respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSettingsFromDomain(settings))
}

// AddPlugboardPair godoc
// @Summary      Connect plugboard pair
// @Tags         machine
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Session ID"
// @Param        pair  body      model.PlugboardPair  true  "Letters to connect"
// @Success      200   {object}  model.Settings
// @Failure      400   {object}  api.Error
// @Failure      404   {object}  api.Error
// @Failure      409   {object}  api.Error
// @Router       /sessions/{id}/plugboard [post]
func (a *API) AddPlugboardPair(c *gin.Context) {
	var body model.PlugboardPair
	if err := c.ShouldBindJSON(&body); err != nil {
		a.respondWithBindError(c, err)
		return
	}

	settings, err := a.container.AddPlugboardPair.Execute(c, c.Param("id"), body.ToDomain())
	if err != nil {
		a.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSettingsFromDomain(settings))
}

// RemovePlugboardPair godoc
// @Summary      Disconnect plugboard pair
// @Description  Disconnect the given letter together with its partner
// @Tags         machine
// @Produce      json
// @Param        id      path      string  true  "Session ID"
// @Param        letter  path      string  true  "Either letter of the pair"
// @Success      200     {object}  model.Settings
// @Failure      400     {object}  api.Error
// @Failure      404     {object}  api.Error
// @Failure      409     {object}  api.Error
// @Router       /sessions/{id}/plugboard/{letter} [delete]
func (a *API) RemovePlugboardPair(c *gin.Context) {
	letter, ok := enigma.ParseLetter(c.Param("letter"))
	if !ok {
		c.JSON(http.StatusBadRequest, Error{"Invalid letter"})
		return
	}

	settings, err := a.container.RemovePlugboardPair.Execute(c, c.Param("id"), letter)
	if err != nil {
		a.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewSettingsFromDomain(settings))
}

// EncryptMessage godoc
// @Summary      Encrypt message
// @Description  Encrypt (or decrypt) text starting from the configured rotor positions
// @Tags         machine
// @Accept       json
// @Produce      json
// @Param        id       path      string         true  "Session ID"
// @Param        message  body      model.Message  true  "Text to encrypt"
// @Success      200      {object}  model.EncryptedMessage
// @Failure      400      {object}  api.Error
// @Failure      404      {object}  api.Error
// @Failure      409      {object}  api.Error
// @Router       /sessions/{id}/encrypt [post]
func (a *API) EncryptMessage(c *gin.Context) {
	var body model.Message
	if err := c.ShouldBindJSON(&body); err != nil {
		a.respondWithBindError(c, err)
		return
	}

	resp, err := a.container.EncryptMessage.Execute(c, c.Param("id"), encryptmessage.Request{
		Text: body.Text,
		Fold: body.Fold,
	})
	if err != nil {
		a.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.EncryptedMessage{
		Encrypted: resp.Encrypted,
		Settings:  model.NewSettingsFromDomain(resp.Settings),
	})
}
