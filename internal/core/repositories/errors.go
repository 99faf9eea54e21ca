package repositories

import (
	"errors"
)

var (
	ErrSessionNotFound = errors.New("the requested session was not found")
	ErrSessionExists   = errors.New("session already exists")
)
