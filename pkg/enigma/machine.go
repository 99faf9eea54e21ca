package enigma

import (
	"fmt"
	"strings"
)

const RotorCount = 3

type RotorSpec struct {
	Name        RotorName
	Position    int
	RingSetting int
}

type Config struct {
	Rotors    []RotorSpec
	Reflector ReflectorName
}

type RotorSettings struct {
	Name        RotorName
	Position    int
	RingSetting int
}

type Settings struct {
	Rotors    []RotorSettings
	Reflector ReflectorName
	Plugboard []Pair
}

// Machine is a three rotor Enigma.
// The rotor positions change with every key press, so a Machine
// must not be shared between goroutines without external locking.
type Machine struct {
	rotors    [RotorCount]*Rotor
	reflector *Reflector
	plugboard *Plugboard
	initial   [RotorCount]int
}

func New(cfg Config) (*Machine, error) {
	m := &Machine{}
	if err := m.Configure(cfg); err != nil {
		return nil, err
	}
	return m, nil
}

// Configure replaces the rotors, the reflector and the plugboard.
// Nothing is changed unless the whole configuration is valid.
func (m *Machine) Configure(cfg Config) error {
	if len(cfg.Rotors) != RotorCount {
		return fmt.Errorf("%w: got %d", ErrWrongRotorCount, len(cfg.Rotors))
	}

	var rotors [RotorCount]*Rotor
	var initial [RotorCount]int
	for i, spec := range cfg.Rotors {
		rotor, err := NewRotor(spec.Name, spec.Position, spec.RingSetting)
		if err != nil {
			return fmt.Errorf("rotor %d: %w", i+1, err)
		}
		rotors[i] = rotor
		initial[i] = spec.Position
	}

	reflector, err := NewReflector(cfg.Reflector)
	if err != nil {
		return err
	}

	m.rotors = rotors
	m.initial = initial
	m.reflector = reflector
	m.plugboard = NewPlugboard()

	return nil
}

func (m *Machine) AddPlugboardPair(a, b rune) error {
	return m.plugboard.AddConnection(a, b)
}

func (m *Machine) RemovePlugboardPair(a rune) error {
	return m.plugboard.RemoveConnection(a)
}

// step moves the rotors before a key is encrypted.
// The middle rotor sitting on its notch moves itself together with the left rotor,
// which makes it advance on two consecutive key presses (the double step).
func (m *Machine) step() {
	left, middle, right := m.rotors[0], m.rotors[1], m.rotors[2]
	// both notches are checked before anything moves
	middleAtNotch := middle.AtNotch()
	rightAtNotch := right.AtNotch()

	switch {
	case middleAtNotch:
		left.Rotate()
		middle.Rotate()
		right.Rotate()
	case rightAtNotch:
		middle.Rotate()
		right.Rotate()
	default:
		right.Rotate()
	}
}

// EncryptChar presses a single key.
// The rotors always step, even when the key is not a letter,
// in which case the key is returned as is.
func (m *Machine) EncryptChar(letter rune) rune {
	m.step()

	if !IsLetter(letter) {
		return letter
	}

	letter = m.plugboard.Encrypt(letter)
	for _, rotor := range m.rotors {
		letter = rotor.EncryptForward(letter)
	}
	letter = m.reflector.Reflect(letter)
	for i := len(m.rotors) - 1; i >= 0; i-- {
		letter = m.rotors[i].EncryptBackward(letter)
	}
	return m.plugboard.Encrypt(letter)
}

// EncryptMessage returns the rotors to their configured start positions
// and encrypts the text key by key.
// Encryption and decryption are the same operation.
func (m *Machine) EncryptMessage(text string) string {
	m.resetPositions()
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		b.WriteRune(m.EncryptChar(r))
	}
	return b.String()
}

func (m *Machine) resetPositions() {
	for i, rotor := range m.rotors {
		rotor.position = m.initial[i]
	}
}

func (m *Machine) Positions() [RotorCount]int {
	var positions [RotorCount]int
	for i, rotor := range m.rotors {
		positions[i] = rotor.Position()
	}
	return positions
}

func (m *Machine) Settings() Settings {
	rotors := make([]RotorSettings, 0, RotorCount)
	for _, rotor := range m.rotors {
		rotors = append(rotors, RotorSettings{
			Name:        rotor.Name(),
			Position:    rotor.Position(),
			RingSetting: rotor.RingSetting(),
		})
	}
	return Settings{
		Rotors:    rotors,
		Reflector: m.reflector.Name(),
		Plugboard: m.plugboard.Pairs(),
	}
}
