package ports

import (
	"context"

	"leetcode-relay/internal/domain/model"
)

// ProblemProvider defines access to LeetCode problems.
type ProblemProvider interface {
	GetProblem(ctx context.Context, slug string) (*model.Problem, error)
	GetDailyChallenge(ctx context.Context) (*model.Problem, error)
}
