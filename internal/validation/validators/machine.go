package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/sergeii/enigma/pkg/enigma"
)

func ValidateLetter(fl validator.FieldLevel) bool {
	_, ok := enigma.ParseLetter(fl.Field().String())
	return ok
}

func ValidateRotor(fl validator.FieldLevel) bool {
	return enigma.IsKnownRotor(enigma.RotorName(fl.Field().String()))
}

func ValidateReflector(fl validator.FieldLevel) bool {
	return enigma.IsKnownReflector(enigma.ReflectorName(fl.Field().String()))
}
