package memory

import (
	"github.com/sergeii/enigma/internal/persistence"
	"github.com/sergeii/enigma/internal/persistence/memory/sessions"
)

func New() persistence.Repositories {
	return persistence.Repositories{
		Sessions: sessions.New(),
	}
}
