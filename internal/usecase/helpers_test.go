package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"leetcode-relay/internal/adapter/logging"
	"leetcode-relay/internal/domain/model"
)

type mockProblemProvider struct {
	mock.Mock
}

func (m *mockProblemProvider) GetProblem(ctx context.Context, slug string) (*model.Problem, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Problem), args.Error(1)
}

func (m *mockProblemProvider) GetDailyChallenge(ctx context.Context) (*model.Problem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Problem), args.Error(1)
}

type lookupRecord struct {
	operation string
	outcome   string
}

type recordingMetrics struct {
	mu      sync.Mutex
	lookups []lookupRecord
	up      []bool
}

func (r *recordingMetrics) ObserveLookup(operation, outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups = append(r.lookups, lookupRecord{operation: operation, outcome: outcome})
}

func (r *recordingMetrics) SetUpstreamUp(up bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.up = append(r.up, up)
}

type prefixConverter struct{}

func (prefixConverter) Convert(html string) string {
	return "converted:" + html
}

func discardLogger() *logging.SLogger {
	return logging.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
