package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"leetcode-relay/internal/domain/model"
	"leetcode-relay/internal/usecase"
)

func TestUpstreamProbe_StartsUnknown(t *testing.T) {
	probe := usecase.NewUpstreamProbe(&mockProblemProvider{}, &recordingMetrics{}, discardLogger(), usecase.UpstreamProbeConfig{})

	status := probe.Status()
	assert.Equal(t, model.ProbeUnknown, status.State)
	assert.True(t, status.CheckedAt.IsZero())
}

func TestUpstreamProbe_Transitions(t *testing.T) {
	provider := &mockProblemProvider{}
	provider.On("GetDailyChallenge", mock.Anything).Return(&model.Problem{Title: "Daily"}, nil).Once()
	provider.On("GetDailyChallenge", mock.Anything).
		Return(nil, fmt.Errorf("%w: unexpected status 502", model.ErrUpstreamUnavailable)).Once()
	provider.On("GetDailyChallenge", mock.Anything).Return(&model.Problem{Title: "Daily"}, nil).Once()
	metrics := &recordingMetrics{}
	probe := usecase.NewUpstreamProbe(provider, metrics, discardLogger(), usecase.UpstreamProbeConfig{Timeout: time.Second})

	require.NoError(t, probe.Run(context.Background()))
	assert.Equal(t, model.ProbeHealthy, probe.Status().State)
	assert.False(t, probe.Status().CheckedAt.IsZero())

	err := probe.Run(context.Background())
	require.ErrorIs(t, err, model.ErrUpstreamUnavailable)
	status := probe.Status()
	assert.Equal(t, model.ProbeUnhealthy, status.State)
	assert.Contains(t, status.Err, "unexpected status 502")

	require.NoError(t, probe.Run(context.Background()))
	assert.Equal(t, model.ProbeHealthy, probe.Status().State)
	assert.Empty(t, probe.Status().Err)

	assert.Equal(t, []bool{true, false, true}, metrics.up)
	provider.AssertExpectations(t)
}

func TestUpstreamProbe_AppliesTimeout(t *testing.T) {
	provider := &mockProblemProvider{}
	provider.On("GetDailyChallenge", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})).Return(&model.Problem{}, nil)
	probe := usecase.NewUpstreamProbe(provider, &recordingMetrics{}, discardLogger(), usecase.UpstreamProbeConfig{Timeout: time.Minute})

	require.NoError(t, probe.Run(context.Background()))
	provider.AssertExpectations(t)
}
