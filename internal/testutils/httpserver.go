package testutils

import (
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/sergeii/enigma/cmd/enigma/application"
	"github.com/sergeii/enigma/cmd/enigma/components/api"
	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/testutils/testapp"
)

// PrepareTestServer wires the API router the same way the api command does
// and serves it from an httptest server. Extra options may decorate
// settings, the clock, or populate dependencies.
func PrepareTestServer(tb fxtest.TB, extra ...fx.Option) (*httptest.Server, func()) {
	gin.SetMode(gin.ReleaseMode) // prevent gin from overwriting middlewares

	var router *gin.Engine
	fxopts := []fx.Option{
		fx.Provide(testapp.NoLogging),
		fx.Provide(testapp.ProvideSettings),
		fx.Supply(api.Config{}),
		application.Module,
		api.RouterModule,
		fx.NopLogger,
		fx.Populate(&router),
	}
	fxopts = append(fxopts, extra...)

	app := fxtest.New(tb, fxopts...)
	app.RequireStart()

	ts := httptest.NewServer(router)

	return ts, func() {
		defer app.RequireStop() // nolint: errcheck
		defer ts.Close()
	}
}

func PrepareTestServerWithRepo(
	tb fxtest.TB,
	extra ...fx.Option,
) (*httptest.Server, repositories.SessionRepository, func()) {
	var repo repositories.SessionRepository
	extra = append(extra, fx.Populate(&repo))
	ts, cleanup := PrepareTestServer(tb, extra...)
	return ts, repo, cleanup
}
