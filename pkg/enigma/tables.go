package enigma

type RotorName string

const (
	RotorI   RotorName = "I"
	RotorII  RotorName = "II"
	RotorIII RotorName = "III"
	RotorIV  RotorName = "IV"
	RotorV   RotorName = "V"
)

type ReflectorName string

const (
	ReflectorA ReflectorName = "A"
	ReflectorB ReflectorName = "B"
	ReflectorC ReflectorName = "C"
)

type rotorTable struct {
	wiring  string
	notches []int
}

// historical Wehrmacht rotor wirings, notch offsets are the letter
// shown in the window at the moment the next rotor is kicked
var rotorTables = map[RotorName]rotorTable{ // nolint: gochecknoglobals
	RotorI:   {"EKMFLGDQVZNTOWYHXUSPAIBRCJ", []int{16}}, // Q
	RotorII:  {"AJDKSIRUXBLHWTMCQGZNPYFVOE", []int{4}},  // E
	RotorIII: {"BDFHJLCPRTXVZNYEIWGAKMUSQO", []int{21}}, // V
	RotorIV:  {"ESOVPZJAYQUIRHXLNFTGKDCMWB", []int{9}},  // J
	RotorV:   {"VZBRGITYUPSDNHLXAWMJQOFECK", []int{25}}, // Z
}

var reflectorTables = map[ReflectorName]string{ // nolint: gochecknoglobals
	ReflectorA: "EJMZALYXVBWFCRQUONTSPIKHGD",
	ReflectorB: "YRUHQSLDPXNGOKMIEBFZCWVJAT",
	ReflectorC: "FVPJIAOYEDRZXWGCTKUQSBNMHL",
}

func RotorNames() []RotorName {
	return []RotorName{RotorI, RotorII, RotorIII, RotorIV, RotorV}
}

func ReflectorNames() []ReflectorName {
	return []ReflectorName{ReflectorA, ReflectorB, ReflectorC}
}

func IsKnownRotor(name RotorName) bool {
	_, ok := rotorTables[name]
	return ok
}

func IsKnownReflector(name ReflectorName) bool {
	_, ok := reflectorTables[name]
	return ok
}
