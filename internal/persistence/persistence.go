package persistence

import (
	"github.com/sergeii/enigma/internal/core/repositories"
)

type Repositories struct {
	Sessions repositories.SessionRepository
}
