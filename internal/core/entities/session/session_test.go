package session_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/internal/core/entities/session"
	"github.com/sergeii/enigma/pkg/enigma"
)

func validConfig() enigma.Config {
	return enigma.Config{
		Rotors: []enigma.RotorSpec{
			{Name: enigma.RotorI},
			{Name: enigma.RotorII},
			{Name: enigma.RotorIII},
		},
		Reflector: enigma.ReflectorB,
	}
}

func TestNew(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	s := session.New("Operation Sea Lion", now)
	assert.Len(t, s.ID, 36)
	assert.Equal(t, "Operation Sea Lion", s.Label)
	assert.Equal(t, "operation-sea-lion", s.Slug)
	assert.Equal(t, now, s.CreatedAt)
	assert.Equal(t, now, s.AccessedAt())
	assert.False(t, s.IsConfigured())
	assert.Equal(t, s.ID+" (operation-sea-lion)", s.String())

	other := session.New("", now)
	assert.NotEqual(t, s.ID, other.ID)
	assert.Equal(t, "", other.Slug)
	assert.Equal(t, other.ID, other.String())
}

func TestSession_Touch(t *testing.T) {
	now := time.Now()
	s := session.New("", now)

	s.Touch(now.Add(time.Minute))
	assert.Equal(t, now.Add(time.Minute), s.AccessedAt())

	// time never goes backwards
	s.Touch(now)
	assert.Equal(t, now.Add(time.Minute), s.AccessedAt())
}

func TestSession_NotConfigured(t *testing.T) {
	s := session.New("", time.Now())

	_, _, err := s.Encrypt("HELLO")
	assert.ErrorIs(t, err, session.ErrNotConfigured)
	_, err = s.AddPlugboardPair('A', 'B')
	assert.ErrorIs(t, err, session.ErrNotConfigured)
	_, err = s.RemovePlugboardPair('A')
	assert.ErrorIs(t, err, session.ErrNotConfigured)

	settings := s.Settings()
	assert.Empty(t, settings.Rotors)
	assert.Equal(t, enigma.ReflectorName(""), settings.Reflector)
	assert.Empty(t, settings.Plugboard)
}

func TestSession_ConfigureAndEncrypt(t *testing.T) {
	s := session.New("", time.Now())

	err := s.Configure(validConfig(), []enigma.Pair{{A: 'A', B: 'B'}, {A: 'C', B: 'D'}})
	require.NoError(t, err)
	assert.True(t, s.IsConfigured())

	encrypted, settings, err := s.Encrypt("HELLO")
	require.NoError(t, err)
	assert.Equal(t, "WSCUQ", encrypted)
	assert.Equal(t, 5, settings.Rotors[2].Position)

	decrypted, _, err := s.Encrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "HELLO", decrypted)
}

func TestSession_Configure_IsAtomic(t *testing.T) {
	tests := []struct {
		name    string
		cfg     enigma.Config
		pairs   []enigma.Pair
		wantErr error
	}{
		{
			"two rotors",
			enigma.Config{Rotors: validConfig().Rotors[:2], Reflector: enigma.ReflectorB},
			nil,
			enigma.ErrWrongRotorCount,
		},
		{
			"unknown reflector",
			enigma.Config{Rotors: validConfig().Rotors, Reflector: "Z"},
			nil,
			enigma.ErrUnknownReflector,
		},
		{
			"clashing plugboard pairs",
			validConfig(),
			[]enigma.Pair{{A: 'Q', B: 'W'}, {A: 'W', B: 'E'}},
			enigma.ErrLetterConnected,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := session.New("", time.Now())
			require.NoError(t, s.Configure(validConfig(), []enigma.Pair{{A: 'A', B: 'B'}}))
			before := s.Settings()

			err := s.Configure(tt.cfg, tt.pairs)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, s.Settings())
		})
	}
}

func TestSession_PlugboardPairs(t *testing.T) {
	s := session.New("", time.Now())
	require.NoError(t, s.Configure(validConfig(), nil))

	settings, err := s.AddPlugboardPair('x', 'Y')
	require.NoError(t, err)
	assert.Equal(t, []enigma.Pair{{A: 'X', B: 'Y'}}, settings.Plugboard)

	_, err = s.AddPlugboardPair('Y', 'Z')
	assert.ErrorIs(t, err, enigma.ErrLetterConnected)

	settings, err = s.RemovePlugboardPair('Y')
	require.NoError(t, err)
	assert.Empty(t, settings.Plugboard)

	_, err = s.RemovePlugboardPair('Y')
	assert.ErrorIs(t, err, enigma.ErrLetterNotConnected)
}

func TestSession_Reset(t *testing.T) {
	s := session.New("", time.Now())
	require.NoError(t, s.Configure(validConfig(), nil))

	s.Reset()
	assert.False(t, s.IsConfigured())
	_, _, err := s.Encrypt("A")
	assert.ErrorIs(t, err, session.ErrNotConfigured)
}

func TestSession_ConcurrentEncryption(t *testing.T) {
	s := session.New("", time.Now())
	require.NoError(t, s.Configure(validConfig(), []enigma.Pair{{A: 'A', B: 'B'}, {A: 'C', B: 'D'}}))

	var wg sync.WaitGroup
	results := make([]string, 50)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			encrypted, _, err := s.Encrypt("HELLO")
			if err == nil {
				results[i] = encrypted
			}
		}(i)
	}
	wg.Wait()

	for _, result := range results {
		assert.Equal(t, "WSCUQ", result)
	}
}
