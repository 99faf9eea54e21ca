package enigma

import (
	"fmt"
)

type Rotor struct {
	name     RotorName
	wiring   [alphabetSize]int
	inverse  [alphabetSize]int
	notches  [alphabetSize]bool
	position int
	ring     int
}

func NewRotor(name RotorName, position, ring int) (*Rotor, error) {
	table, ok := rotorTables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRotor, name)
	}
	if position < 0 || position >= alphabetSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPosition, position)
	}
	if ring < 0 || ring >= alphabetSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRingSetting, ring)
	}
	rotor := &Rotor{
		name:     name,
		position: position,
		ring:     ring,
	}
	for i, letter := range table.wiring {
		out := int(letter - 'A')
		rotor.wiring[i] = out
		rotor.inverse[out] = i
	}
	for _, notch := range table.notches {
		rotor.notches[notch] = true
	}
	return rotor, nil
}

func (r *Rotor) Name() RotorName {
	return r.name
}

func (r *Rotor) Position() int {
	return r.position
}

func (r *Rotor) RingSetting() int {
	return r.ring
}

func (r *Rotor) AtNotch() bool {
	return r.notches[r.position]
}

// EncryptForward passes a signal from the entry side through the wiring.
// The contact under the input is shifted by the rotation and the ring setting,
// and the shift is undone on the way out.
func (r *Rotor) EncryptForward(letter rune) rune {
	idx, ok := letterIndex(letter)
	if !ok {
		return letter
	}
	contact := mod(idx + r.position - r.ring)
	return indexLetter(r.wiring[contact] - r.position + r.ring)
}

// EncryptBackward is the inverse of EncryptForward at the same position.
func (r *Rotor) EncryptBackward(letter rune) rune {
	idx, ok := letterIndex(letter)
	if !ok {
		return letter
	}
	contact := mod(idx + r.position - r.ring)
	return indexLetter(r.inverse[contact] - r.position + r.ring)
}

// Rotate advances the rotor by one step.
// It reports whether the rotor was sitting on a notch before it moved.
func (r *Rotor) Rotate() bool {
	atNotch := r.notches[r.position]
	r.position = mod(r.position + 1)
	return atNotch
}

func (r *Rotor) String() string {
	return fmt.Sprintf("%s@%c/%c", r.name, indexLetter(r.position), indexLetter(r.ring))
}
