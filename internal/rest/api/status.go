package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergeii/enigma/cmd/enigma/build"
	"github.com/sergeii/enigma/internal/rest/model"
)

func (a *API) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Enigma Machine API"})
}

func (a *API) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (a *API) Status(c *gin.Context) {
	status := map[string]string{
		"BuildTime":    build.Time,
		"BuildCommit":  build.Commit,
		"BuildVersion": build.Version,
	}
	c.JSON(http.StatusOK, status)
}

// Catalog godoc
// @Summary      List machine parts
// @Description  Return the names of rotors and reflectors a machine can be assembled from
// @Tags         machine
// @Produce      json
// @Success      200 {object} model.Catalog
// @Router       /catalog [get]
func (a *API) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, model.NewCatalog())
}
