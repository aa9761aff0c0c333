package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"leetcode-relay/internal/domain/model"
	"leetcode-relay/internal/usecase"
)

func newLookup(provider *mockProblemProvider, metrics *recordingMetrics) *usecase.ProblemLookup {
	return usecase.NewProblemLookup(provider, prefixConverter{}, metrics, discardLogger())
}

func TestDescribe_Success(t *testing.T) {
	provider := &mockProblemProvider{}
	provider.On("GetProblem", mock.Anything, "two-sum").
		Return(&model.Problem{Title: "Two Sum", Slug: "two-sum", Content: "<p>Given an array...</p>"}, nil)
	metrics := &recordingMetrics{}

	desc, err := newLookup(provider, metrics).Describe(context.Background(), "https://leetcode.com/problems/two-sum/")
	require.NoError(t, err)

	assert.Equal(t, "Two Sum", desc.Title)
	assert.Equal(t, "converted:<p>Given an array...</p>", desc.Description)
	assert.Equal(t, []lookupRecord{{usecase.OperationProblem, usecase.OutcomeOK}}, metrics.lookups)
	provider.AssertExpectations(t)
}

func TestDescribe_InvalidURLSkipsUpstream(t *testing.T) {
	provider := &mockProblemProvider{}
	metrics := &recordingMetrics{}

	_, err := newLookup(provider, metrics).Describe(context.Background(), "https://example.com/problems/two-sum/")

	assert.ErrorIs(t, err, model.ErrInvalidURL)
	provider.AssertNotCalled(t, "GetProblem", mock.Anything, mock.Anything)
	assert.Equal(t, []lookupRecord{{usecase.OperationProblem, usecase.OutcomeInvalidURL}}, metrics.lookups)
}

func TestDescribe_PropagatesProviderErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		outcome string
	}{
		{"not found", fmt.Errorf("question %q: %w", "x", model.ErrProblemNotFound), usecase.OutcomeNotFound},
		{"upstream", fmt.Errorf("%w: unexpected status 503", model.ErrUpstreamUnavailable), usecase.OutcomeUpstreamUnavailable},
		{"unclassified", errors.New("boom"), usecase.OutcomeError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockProblemProvider{}
			provider.On("GetProblem", mock.Anything, "two-sum").Return(nil, tt.err)
			metrics := &recordingMetrics{}

			desc, err := newLookup(provider, metrics).Describe(context.Background(), "https://leetcode.com/problems/two-sum")

			assert.Nil(t, desc)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, []lookupRecord{{usecase.OperationProblem, tt.outcome}}, metrics.lookups)
		})
	}
}

func TestDescribeDaily(t *testing.T) {
	provider := &mockProblemProvider{}
	provider.On("GetDailyChallenge", mock.Anything).
		Return(&model.Problem{Title: "Climbing Stairs", Content: "<p>climb</p>"}, nil).Once()
	provider.On("GetDailyChallenge", mock.Anything).
		Return(nil, fmt.Errorf("empty: %w", model.ErrProblemNotFound)).Once()
	metrics := &recordingMetrics{}
	lookup := newLookup(provider, metrics)

	desc, err := lookup.DescribeDaily(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Climbing Stairs", desc.Title)
	assert.Equal(t, "converted:<p>climb</p>", desc.Description)

	desc, err = lookup.DescribeDaily(context.Background())
	assert.Nil(t, desc)
	assert.ErrorIs(t, err, model.ErrProblemNotFound)

	assert.Equal(t, []lookupRecord{
		{usecase.OperationDaily, usecase.OutcomeOK},
		{usecase.OperationDaily, usecase.OutcomeNotFound},
	}, metrics.lookups)
}

func TestOutcome_Wrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", fmt.Errorf("%w: perform request: %w", model.ErrUpstreamUnavailable, context.DeadlineExceeded))
	assert.Equal(t, usecase.OutcomeUpstreamUnavailable, usecase.Outcome(err))
	assert.Equal(t, usecase.OutcomeOK, usecase.Outcome(nil))
}
