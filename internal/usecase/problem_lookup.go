package usecase

import (
	"context"
	"errors"
	"time"

	"leetcode-relay/internal/domain/model"
	"leetcode-relay/internal/domain/ports"
)

// Operation labels reported to metrics.
const (
	OperationProblem = "problem"
	OperationDaily   = "daily"
)

// Outcome labels reported to metrics.
const (
	OutcomeOK                  = "ok"
	OutcomeInvalidURL          = "invalid_url"
	OutcomeUpstreamUnavailable = "upstream_unavailable"
	OutcomeNotFound            = "not_found"
	OutcomeError               = "error"
)

// ProblemLookup resolves problem URLs into plain-text descriptions.
type ProblemLookup struct {
	problems  ports.ProblemProvider
	converter ports.TextConverter
	metrics   ports.Metrics
	logger    ports.Logger
}

// NewProblemLookup constructs a ProblemLookup use case.
func NewProblemLookup(
	problems ports.ProblemProvider,
	converter ports.TextConverter,
	metrics ports.Metrics,
	logger ports.Logger,
) *ProblemLookup {
	return &ProblemLookup{
		problems:  problems,
		converter: converter,
		metrics:   metrics,
		logger:    logger,
	}
}

// Describe validates rawURL, fetches the problem and renders its statement.
func (l *ProblemLookup) Describe(ctx context.Context, rawURL string) (*model.Description, error) {
	start := time.Now()

	desc, err := l.describe(ctx, rawURL)
	l.metrics.ObserveLookup(OperationProblem, Outcome(err), time.Since(start))
	return desc, err
}

func (l *ProblemLookup) describe(ctx context.Context, rawURL string) (*model.Description, error) {
	slug, err := ParseSlug(rawURL)
	if err != nil {
		return nil, err
	}

	problem, err := l.problems.GetProblem(ctx, slug)
	if err != nil {
		return nil, err
	}

	l.logger.Debug(ctx, "problem fetched", "slug", slug, "difficulty", problem.Difficulty)
	return l.render(problem), nil
}

// DescribeDaily renders today's daily coding challenge.
func (l *ProblemLookup) DescribeDaily(ctx context.Context) (*model.Description, error) {
	start := time.Now()

	var desc *model.Description
	problem, err := l.problems.GetDailyChallenge(ctx)
	if err == nil {
		desc = l.render(problem)
	}

	l.metrics.ObserveLookup(OperationDaily, Outcome(err), time.Since(start))
	return desc, err
}

func (l *ProblemLookup) render(problem *model.Problem) *model.Description {
	return &model.Description{
		Title:       problem.Title,
		Description: l.converter.Convert(problem.Content),
	}
}

// Outcome classifies a lookup error into a metrics label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, model.ErrInvalidURL):
		return OutcomeInvalidURL
	case errors.Is(err, model.ErrProblemNotFound):
		return OutcomeNotFound
	case errors.Is(err, model.ErrUpstreamUnavailable):
		return OutcomeUpstreamUnavailable
	default:
		return OutcomeError
	}
}
