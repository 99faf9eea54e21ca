package enigma_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/pkg/enigma"
)

func makeConfig(names [3]enigma.RotorName, positions, rings [3]int, reflector enigma.ReflectorName) enigma.Config {
	rotors := make([]enigma.RotorSpec, 0, 3)
	for i := range names {
		rotors = append(rotors, enigma.RotorSpec{Name: names[i], Position: positions[i], RingSetting: rings[i]})
	}
	return enigma.Config{Rotors: rotors, Reflector: reflector}
}

func defaultConfig() enigma.Config {
	return makeConfig(
		[3]enigma.RotorName{enigma.RotorI, enigma.RotorII, enigma.RotorIII},
		[3]int{0, 0, 0},
		[3]int{0, 0, 0},
		enigma.ReflectorB,
	)
}

func mustMachine(t *testing.T, cfg enigma.Config, pairs ...string) *enigma.Machine {
	m, err := enigma.New(cfg)
	require.NoError(t, err)
	for _, pair := range pairs {
		require.NoError(t, m.AddPlugboardPair(rune(pair[0]), rune(pair[1])))
	}
	return m
}

func TestMachine_EncryptMessage_KnownCiphertext(t *testing.T) {
	tests := []struct {
		name  string
		cfg   enigma.Config
		pairs []string
		plain string
		want  string
	}{
		{
			"default rotors with plugboard",
			defaultConfig(),
			[]string{"AB", "CD"},
			"HELLO",
			"WSCUQ",
		},
		{
			"default rotors no plugboard",
			defaultConfig(),
			nil,
			"HELLOWORLD",
			"WSDUQMNYIA",
		},
		{
			"non letters step the rotors",
			defaultConfig(),
			[]string{"AB", "CD"},
			"Hello, World!",
			"WSCUQ, OWWHY!",
		},
		{
			"ring settings",
			makeConfig(
				[3]enigma.RotorName{enigma.RotorI, enigma.RotorII, enigma.RotorIII},
				[3]int{0, 0, 0},
				[3]int{1, 1, 1},
				enigma.ReflectorB,
			),
			nil,
			"AAAAA",
			"DLTLH",
		},
		{
			"middle rotor starts on its notch",
			makeConfig(
				[3]enigma.RotorName{enigma.RotorII, enigma.RotorIV, enigma.RotorV},
				[3]int{1, 9, 25},
				[3]int{3, 7, 11},
				enigma.ReflectorC,
			),
			[]string{"QW", "ER"},
			"ENIGMA",
			"ZENRYS",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustMachine(t, tt.cfg, tt.pairs...)
			got := m.EncryptMessage(tt.plain)
			assert.Equal(t, tt.want, got)

			// decrypting with a freshly configured machine restores the text
			other := mustMachine(t, tt.cfg, tt.pairs...)
			assert.Equal(t, strings.ToUpper(tt.plain), other.EncryptMessage(got))
		})
	}
}

func TestMachine_EncryptMessage_RoundTripFoldsCase(t *testing.T) {
	m := mustMachine(t, defaultConfig(), "AB", "CD")

	encrypted := m.EncryptMessage("Hello, World!")
	assert.Equal(t, "HELLO, WORLD!", m.EncryptMessage(encrypted))
}

func TestMachine_EncryptMessage_IsRepeatable(t *testing.T) {
	m := mustMachine(t, defaultConfig(), "AB")

	first := m.EncryptMessage("ATTACK AT DAWN")
	second := m.EncryptMessage("ATTACK AT DAWN")
	assert.Equal(t, first, second)
	assert.Equal(t, "ATTACK AT DAWN", m.EncryptMessage(first))
}

func TestMachine_EncryptChar_Stepping(t *testing.T) {
	m := mustMachine(t, defaultConfig())

	m.EncryptChar('A')
	assert.Equal(t, [3]int{0, 0, 1}, m.Positions())

	m.EncryptChar(' ')
	assert.Equal(t, [3]int{0, 0, 2}, m.Positions())
}

func TestMachine_EncryptChar_DoubleStep(t *testing.T) {
	// rotor II has its notch at E
	cfg := makeConfig(
		[3]enigma.RotorName{enigma.RotorI, enigma.RotorII, enigma.RotorIII},
		[3]int{0, 4, 1},
		[3]int{0, 0, 0},
		enigma.ReflectorB,
	)
	m := mustMachine(t, cfg)

	assert.Equal(t, 'H', m.EncryptChar('A'))
	assert.Equal(t, [3]int{1, 5, 2}, m.Positions())
}

func TestMachine_EncryptChar_RightRotorKicksMiddle(t *testing.T) {
	// rotor III kicks at V, then rotor II reaches its notch and double steps
	cfg := makeConfig(
		[3]enigma.RotorName{enigma.RotorI, enigma.RotorII, enigma.RotorIII},
		[3]int{0, 3, 21},
		[3]int{0, 0, 0},
		enigma.ReflectorB,
	)
	m := mustMachine(t, cfg)

	m.EncryptChar('A')
	assert.Equal(t, [3]int{0, 4, 22}, m.Positions())
	m.EncryptChar('A')
	assert.Equal(t, [3]int{1, 5, 23}, m.Positions())
	m.EncryptChar('A')
	assert.Equal(t, [3]int{1, 5, 24}, m.Positions())

	assert.Equal(t, "TSZ", m.EncryptMessage("AAA"))
}

func TestMachine_EncryptMessage_ResetsPositions(t *testing.T) {
	m := mustMachine(t, defaultConfig())

	m.EncryptMessage("ABCDEFG")
	assert.Equal(t, [3]int{0, 0, 7}, m.Positions())

	m.EncryptMessage("XY")
	assert.Equal(t, [3]int{0, 0, 2}, m.Positions())
}

func TestMachine_Settings(t *testing.T) {
	m := mustMachine(t, makeConfig(
		[3]enigma.RotorName{enigma.RotorV, enigma.RotorI, enigma.RotorIV},
		[3]int{3, 2, 1},
		[3]int{4, 5, 6},
		enigma.ReflectorA,
	), "QZ", "ea")

	m.EncryptMessage("AB")

	settings := m.Settings()
	assert.Equal(t, enigma.ReflectorA, settings.Reflector)
	assert.Equal(t, []enigma.RotorSettings{
		{Name: enigma.RotorV, Position: 3, RingSetting: 4},
		{Name: enigma.RotorI, Position: 2, RingSetting: 5},
		{Name: enigma.RotorIV, Position: 3, RingSetting: 6},
	}, settings.Rotors)
	assert.Equal(t, []enigma.Pair{{'A', 'E'}, {'Q', 'Z'}}, settings.Plugboard)
}

func TestMachine_Configure_Errors(t *testing.T) {
	valid := defaultConfig()
	tests := []struct {
		name    string
		cfg     enigma.Config
		wantErr error
	}{
		{
			"two rotors",
			enigma.Config{Rotors: valid.Rotors[:2], Reflector: enigma.ReflectorB},
			enigma.ErrWrongRotorCount,
		},
		{
			"four rotors",
			enigma.Config{Rotors: append(append([]enigma.RotorSpec{}, valid.Rotors...), valid.Rotors[0]), Reflector: enigma.ReflectorB},
			enigma.ErrWrongRotorCount,
		},
		{
			"no rotors",
			enigma.Config{Reflector: enigma.ReflectorB},
			enigma.ErrWrongRotorCount,
		},
		{
			"unknown rotor",
			makeConfig([3]enigma.RotorName{"I", "II", "VIII"}, [3]int{}, [3]int{}, enigma.ReflectorB),
			enigma.ErrUnknownRotor,
		},
		{
			"unknown reflector",
			makeConfig([3]enigma.RotorName{"I", "II", "III"}, [3]int{}, [3]int{}, "X"),
			enigma.ErrUnknownReflector,
		},
		{
			"position out of range",
			makeConfig([3]enigma.RotorName{"I", "II", "III"}, [3]int{0, 26, 0}, [3]int{}, enigma.ReflectorB),
			enigma.ErrInvalidPosition,
		},
		{
			"ring out of range",
			makeConfig([3]enigma.RotorName{"I", "II", "III"}, [3]int{}, [3]int{0, 0, -3}, enigma.ReflectorB),
			enigma.ErrInvalidRingSetting,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			previous := makeConfig(
				[3]enigma.RotorName{enigma.RotorV, enigma.RotorIV, enigma.RotorIII},
				[3]int{7, 8, 9},
				[3]int{1, 2, 3},
				enigma.ReflectorC,
			)
			m := mustMachine(t, previous, "AB", "CD")
			before := m.Settings()
			encrypted := m.EncryptMessage("STABLE")

			err := m.Configure(tt.cfg)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, enigma.ErrConfiguration)

			// the previous configuration is intact
			assert.Equal(t, "STABLE", m.EncryptMessage(encrypted))
			m.EncryptMessage("")
			assert.Equal(t, before.Rotors, m.Settings().Rotors)
			assert.Equal(t, before.Reflector, m.Settings().Reflector)
			assert.Equal(t, before.Plugboard, m.Settings().Plugboard)

			_, err = enigma.New(tt.cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMachine_Configure_ReplacesPlugboard(t *testing.T) {
	m := mustMachine(t, defaultConfig(), "AB", "CD")
	require.Len(t, m.Settings().Plugboard, 2)

	require.NoError(t, m.Configure(defaultConfig()))
	assert.Empty(t, m.Settings().Plugboard)
	assert.Equal(t, "WSDUQMNYIA", m.EncryptMessage("HELLOWORLD"))
}

func TestMachine_PlugboardPairs(t *testing.T) {
	m := mustMachine(t, defaultConfig())

	require.NoError(t, m.AddPlugboardPair('A', 'B'))
	assert.ErrorIs(t, m.AddPlugboardPair('B', 'C'), enigma.ErrLetterConnected)
	require.NoError(t, m.RemovePlugboardPair('B'))
	assert.ErrorIs(t, m.RemovePlugboardPair('A'), enigma.ErrLetterNotConnected)
	assert.Empty(t, m.Settings().Plugboard)
}
