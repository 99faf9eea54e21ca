package rest

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sergeii/enigma/api/docs" // nolint: revive
	"github.com/sergeii/enigma/internal/rest/api"
	"github.com/sergeii/enigma/internal/validation"
	"github.com/sergeii/enigma/pkg/http/ratelimit"
)

var ErrUnsupportedValidator = errors.New("rest: unsupported binding validator")

func NewRouter(a *api.API, limiter *ratelimit.Limiter) (*gin.Engine, error) {
	validate, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, ErrUnsupportedValidator
	}
	if err := validation.Register(validate); err != nil {
		return nil, err
	}

	router := gin.Default()
	router.GET("/", a.Welcome)
	router.GET("/ping", a.Ping)
	router.GET("/status", a.Status)
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	group := router.Group("/api", limiter.Middleware())
	group.GET("/catalog", a.Catalog)
	group.POST("/sessions", a.CreateSession)
	group.GET("/sessions/:id", a.ViewSession)
	group.DELETE("/sessions/:id", a.RemoveSession)
	group.PUT("/sessions/:id/settings", a.ConfigureMachine)
	group.DELETE("/sessions/:id/settings", a.ResetMachine)
	group.POST("/sessions/:id/settings/random", a.GenerateSettings)
	group.POST("/sessions/:id/plugboard", a.AddPlugboardPair)
	group.DELETE("/sessions/:id/plugboard/:letter", a.RemovePlugboardPair)
	group.POST("/sessions/:id/encrypt", a.EncryptMessage)

	return router, nil
}
