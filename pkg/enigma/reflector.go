package enigma

import (
	"fmt"
)

type Reflector struct {
	name   ReflectorName
	wiring [alphabetSize]int
}

func NewReflector(name ReflectorName) (*Reflector, error) {
	table, ok := reflectorTables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReflector, name)
	}
	reflector := &Reflector{name: name}
	for i, letter := range table {
		reflector.wiring[i] = int(letter - 'A')
	}
	return reflector, nil
}

func (r *Reflector) Name() ReflectorName {
	return r.name
}

func (r *Reflector) Reflect(letter rune) rune {
	idx, ok := letterIndex(letter)
	if !ok {
		return letter
	}
	return indexLetter(r.wiring[idx])
}
