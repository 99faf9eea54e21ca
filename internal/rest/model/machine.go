package model

import (
	"slices"
	"strings"

	"github.com/sergeii/enigma/internal/core/usecases/configuremachine"
	"github.com/sergeii/enigma/pkg/enigma"
)

type Rotor struct {
	Name        string `binding:"required,rotor"  example:"I" json:"name"`
	Position    int    `binding:"gte=0,lte=25"    example:"0" json:"position"`
	RingSetting int    `binding:"gte=0,lte=25"    example:"0" json:"ring_setting"`
}

type MachineSettings struct {
	Rotors    []Rotor           `binding:"required,len=3,dive"                 json:"rotors"`
	Reflector string            `binding:"required,reflector"  example:"B"     json:"reflector"`
	Plugboard map[string]string `binding:"dive,keys,letter,endkeys,letter"     json:"plugboard"`
}

// ToRequest expects the settings to have passed the binding validation.
func (ms MachineSettings) ToRequest() configuremachine.Request {
	rotors := make([]enigma.RotorSpec, 0, len(ms.Rotors))
	for _, r := range ms.Rotors {
		rotors = append(rotors, enigma.RotorSpec{
			Name:        enigma.RotorName(r.Name),
			Position:    r.Position,
			RingSetting: r.RingSetting,
		})
	}
	pairs := make([]enigma.Pair, 0, len(ms.Plugboard))
	for left, right := range ms.Plugboard {
		a, _ := enigma.ParseLetter(left)
		b, _ := enigma.ParseLetter(right)
		// a pair may be listed both ways, as it is in responses
		if back, ok := ms.Plugboard[right]; ok && strings.EqualFold(back, left) && a > b {
			continue
		}
		pairs = append(pairs, enigma.Pair{A: a, B: b})
	}
	slices.SortFunc(pairs, func(x, y enigma.Pair) int {
		return int(x.A) - int(y.A)
	})
	return configuremachine.Request{
		Rotors:    rotors,
		Reflector: enigma.ReflectorName(ms.Reflector),
		Plugboard: pairs,
	}
}

type Settings struct {
	Rotors    []Rotor           `json:"rotors"`
	Reflector *string           `json:"reflector"`
	Plugboard map[string]string `json:"plugboard"`
}

// NewSettingsFromDomain lists every plugged letter in the plugboard map,
// so that a pair AB appears both as A:B and B:A.
func NewSettingsFromDomain(s enigma.Settings) Settings {
	rotors := make([]Rotor, 0, len(s.Rotors))
	for _, r := range s.Rotors {
		rotors = append(rotors, Rotor{
			Name:        string(r.Name),
			Position:    r.Position,
			RingSetting: r.RingSetting,
		})
	}
	plugboard := make(map[string]string, len(s.Plugboard)*2)
	for _, pair := range s.Plugboard {
		plugboard[string(pair.A)] = string(pair.B)
		plugboard[string(pair.B)] = string(pair.A)
	}
	var reflector *string
	if s.Reflector != "" {
		name := string(s.Reflector)
		reflector = &name
	}
	return Settings{
		Rotors:    rotors,
		Reflector: reflector,
		Plugboard: plugboard,
	}
}

type PlugboardPair struct {
	A string `binding:"required,letter" example:"A" json:"a"`
	B string `binding:"required,letter" example:"B" json:"b"`
}

func (p PlugboardPair) ToDomain() enigma.Pair {
	a, _ := enigma.ParseLetter(p.A)
	b, _ := enigma.ParseLetter(p.B)
	return enigma.Pair{A: a, B: b}
}

type Message struct {
	Text string `binding:"max=65536" example:"HELLO WORLD" json:"text"`
	Fold bool   `json:"fold"`
}

type EncryptedMessage struct {
	Encrypted string   `example:"ILBDA AMTAZ" json:"encrypted"`
	Settings  Settings `json:"settings"`
}

type Catalog struct {
	Rotors     []string `json:"rotors"`
	Reflectors []string `json:"reflectors"`
}

func NewCatalog() Catalog {
	rotors := make([]string, 0)
	for _, name := range enigma.RotorNames() {
		rotors = append(rotors, string(name))
	}
	reflectors := make([]string, 0)
	for _, name := range enigma.ReflectorNames() {
		reflectors = append(reflectors, string(name))
	}
	return Catalog{
		Rotors:     rotors,
		Reflectors: reflectors,
	}
}
