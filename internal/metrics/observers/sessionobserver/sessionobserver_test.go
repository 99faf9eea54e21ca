package sessionobserver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sergeii/enigma/internal/core/repositories"
	"github.com/sergeii/enigma/internal/metrics"
	"github.com/sergeii/enigma/internal/metrics/observers/sessionobserver"
)

type MockSessionRepository struct {
	mock.Mock
	repositories.SessionRepository
}

func (m *MockSessionRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Get(0).(int), args.Error(1) // nolint: forcetypeassert
}

func TestSessionObserver_Observe_OK(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()

	collector := metrics.New()

	sessionRepo := new(MockSessionRepository)
	sessionRepo.On("Count", ctx).Return(17, nil)

	observer := sessionobserver.New(collector, sessionRepo, &logger)
	observer.Observe(ctx, collector)

	assert.Equal(t, float64(17), testutil.ToFloat64(collector.SessionRepositorySize))

	sessionRepo.AssertExpectations(t)
}

func TestSessionObserver_Observe_RepoFailure(t *testing.T) {
	ctx := context.TODO()
	logger := zerolog.Nop()

	collector := metrics.New()
	collector.SessionRepositorySize.Set(3)

	sessionRepo := new(MockSessionRepository)
	sessionRepo.On("Count", ctx).Return(0, errors.New("repo failure"))

	observer := sessionobserver.New(collector, sessionRepo, &logger)
	observer.Observe(ctx, collector)

	// the previous value is kept
	assert.Equal(t, float64(3), testutil.ToFloat64(collector.SessionRepositorySize))

	sessionRepo.AssertExpectations(t)
}
