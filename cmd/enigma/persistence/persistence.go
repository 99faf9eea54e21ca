package persistence

import (
	"go.uber.org/fx"

	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/persistence/memory"
)

type Result struct {
	fx.Out

	Sessions repositories.SessionRepository
}

// Provide exposes the in-memory repositories to the application graph.
// Sessions only live as long as the process does.
func Provide() Result {
	repos := memory.New()
	return Result{
		Sessions: repos.Sessions,
	}
}
