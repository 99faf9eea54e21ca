package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/sergeii/enigma/internal/validation/validators"
)

func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := Register(validate); err != nil {
		return nil, err
	}
	return validate, nil
}

// Register adds the machine specific tags to an existing validator,
// such as the one gin uses for request binding.
func Register(validate *validator.Validate) error {
	tags := map[string]validator.Func{
		"letter":    validators.ValidateLetter,
		"rotor":     validators.ValidateRotor,
		"reflector": validators.ValidateReflector,
	}
	for tag, fn := range tags {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
