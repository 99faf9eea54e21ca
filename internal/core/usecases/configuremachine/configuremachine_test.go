package configuremachine_test

import (
	"context"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/internal/core/entities/session"
	"github.com/sergeii/enigma/internal/core/usecases/configuremachine"
	"github.com/sergeii/enigma/internal/core/usecases/getsession"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/internal/persistence/memory/sessions"
	"github.com/sergeii/enigma/pkg/enigma"
)

func makeRequest() configuremachine.Request {
	return configuremachine.Request{
		Rotors: []enigma.RotorSpec{
			{Name: enigma.RotorI},
			{Name: enigma.RotorII},
			{Name: enigma.RotorIII},
		},
		Reflector: enigma.ReflectorB,
		Plugboard: []enigma.Pair{{A: 'A', B: 'B'}, {A: 'C', B: 'D'}},
	}
}

func TestConfigureMachineUseCase_Success(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()
	collector := metrics.New()
	clock := clockwork.NewFakeClock()

	repo := sessions.New()
	s := session.New("", clock.Now())
	require.NoError(t, repo.Add(ctx, s))

	uc := configuremachine.New(getsession.New(repo, clock), collector, &logger)
	settings, err := uc.Execute(ctx, s.ID, makeRequest())

	require.NoError(t, err)
	assert.Equal(t, enigma.ReflectorB, settings.Reflector)
	assert.Equal(t, []enigma.Pair{{A: 'A', B: 'B'}, {A: 'C', B: 'D'}}, settings.Plugboard)
	assert.Len(t, settings.Rotors, 3)
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.MachineConfigurations.WithLabelValues("ok")))

	encrypted, _, err := s.Encrypt("HELLO")
	require.NoError(t, err)
	assert.Equal(t, "WSCUQ", encrypted)
}

func TestConfigureMachineUseCase_InvalidConfigurationKeepsPrevious(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*configuremachine.Request)
		wantErr error
	}{
		{
			"unknown rotor",
			func(r *configuremachine.Request) {
				r.Rotors[1].Name = "VI"
			},
			enigma.ErrUnknownRotor,
		},
		{
			"too few rotors",
			func(r *configuremachine.Request) {
				r.Rotors = r.Rotors[:2]
			},
			enigma.ErrWrongRotorCount,
		},
		{
			"unknown reflector",
			func(r *configuremachine.Request) {
				r.Reflector = "D"
			},
			enigma.ErrUnknownReflector,
		},
		{
			"position out of range",
			func(r *configuremachine.Request) {
				r.Rotors[0].Position = 26
			},
			enigma.ErrInvalidPosition,
		},
		{
			"conflicting plugboard pairs",
			func(r *configuremachine.Request) {
				r.Plugboard = append(r.Plugboard, enigma.Pair{A: 'B', B: 'Z'})
			},
			enigma.ErrLetterConnected,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.TODO()
			logger := zerolog.Nop()
			collector := metrics.New()
			clock := clockwork.NewFakeClock()

			repo := sessions.New()
			s := session.New("", clock.Now())
			require.NoError(t, repo.Add(ctx, s))

			uc := configuremachine.New(getsession.New(repo, clock), collector, &logger)
			before, err := uc.Execute(ctx, s.ID, makeRequest())
			require.NoError(t, err)

			req := makeRequest()
			tt.modify(&req)
			_, err = uc.Execute(ctx, s.ID, req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, s.Settings())
			assert.Equal(t, float64(1), testutil.ToFloat64(collector.MachineConfigurations.WithLabelValues("error")))
		})
	}
}

func TestConfigureMachineUseCase_SessionNotFound(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()
	collector := metrics.New()
	clock := clockwork.NewFakeClock()

	uc := configuremachine.New(getsession.New(sessions.New(), clock), collector, &logger)
	_, err := uc.Execute(ctx, "unknown", makeRequest())

	assert.ErrorIs(t, err, getsession.ErrSessionNotFound)
	assert.Equal(t, 0, testutil.CollectAndCount(collector.MachineConfigurations))
}
