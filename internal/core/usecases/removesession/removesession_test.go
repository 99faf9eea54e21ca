package removesession_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/core/usecases/removesession"
	"github.com/sergeii/enigma/internal/metrics"
)

type MockSessionRepository struct {
	mock.Mock
	repositories.SessionRepository
}

func (m *MockSessionRepository) Remove(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestRemoveSessionUseCase(t *testing.T) {
	tests := []struct {
		name        string
		repoErr     error
		wantErr     error
		wantRemoved float64
	}{
		{
			"removed",
			nil,
			nil,
			1,
		},
		{
			"not found",
			repositories.ErrSessionNotFound,
			removesession.ErrSessionNotFound,
			0,
		},
		{
			"repository failure",
			errors.New("repo failure"),
			removesession.ErrUnableToRemoveSession,
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.TODO()
			logger := zerolog.Nop()
			collector := metrics.New()

			sessionRepo := new(MockSessionRepository)
			sessionRepo.On("Remove", ctx, "some-id").Return(tt.repoErr).Once()

			uc := removesession.New(sessionRepo, collector, &logger)
			err := uc.Execute(ctx, "some-id")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantRemoved, testutil.ToFloat64(collector.SessionsRemoved.WithLabelValues("api")))

			sessionRepo.AssertExpectations(t)
		})
	}
}
