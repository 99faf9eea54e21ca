package enigma

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration = errors.New("invalid configuration")
	ErrPlugboard     = errors.New("invalid plugboard operation")
)

var (
	ErrWrongRotorCount    = fmt.Errorf("%w: exactly %d rotors are required", ErrConfiguration, RotorCount)
	ErrUnknownRotor       = fmt.Errorf("%w: unknown rotor", ErrConfiguration)
	ErrUnknownReflector   = fmt.Errorf("%w: unknown reflector", ErrConfiguration)
	ErrInvalidPosition    = fmt.Errorf("%w: rotor position out of range", ErrConfiguration)
	ErrInvalidRingSetting = fmt.Errorf("%w: ring setting out of range", ErrConfiguration)
)

var (
	ErrInvalidLetter      = fmt.Errorf("%w: not a letter", ErrPlugboard)
	ErrSameLetter         = fmt.Errorf("%w: letter cannot be paired with itself", ErrPlugboard)
	ErrLetterConnected    = fmt.Errorf("%w: letter is already connected", ErrPlugboard)
	ErrTooManyPairs       = fmt.Errorf("%w: no more than %d pairs allowed", ErrPlugboard, MaxPlugboardPairs)
	ErrLetterNotConnected = fmt.Errorf("%w: letter is not connected", ErrPlugboard)
)
