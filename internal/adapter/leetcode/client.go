package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"leetcode-relay/internal/domain/model"
	"leetcode-relay/internal/domain/ports"
)

const (
	// DefaultEndpoint is LeetCode's public GraphQL API.
	DefaultEndpoint = "https://leetcode.com/graphql"
	siteURL         = "https://leetcode.com"
)

const questionDetailQuery = `
query getQuestionDetail($titleSlug: String!) {
  question(titleSlug: $titleSlug) {
    title
    content
    difficulty
    likes
    dislikes
    exampleTestcases
  }
}`

const questionOfTodayQuery = `query questionOfToday { activeDailyCodingChallengeQuestion { link question { title titleSlug content difficulty likes dislikes exampleTestcases } } }`

// Client implements ProblemProvider using LeetCode's GraphQL endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	logger     ports.Logger
}

var _ ports.ProblemProvider = (*Client)(nil)

// New creates a new LeetCode client. An empty endpoint means DefaultEndpoint.
func New(endpoint string, timeout time.Duration, logger ports.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		logger:     logger,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type question struct {
	Title            string `json:"title"`
	TitleSlug        string `json:"titleSlug"`
	Content          string `json:"content"`
	Difficulty       string `json:"difficulty"`
	Likes            int    `json:"likes"`
	Dislikes         int    `json:"dislikes"`
	ExampleTestcases string `json:"exampleTestcases"`
}

func (q *question) toProblem(slug, link string) *model.Problem {
	if q.TitleSlug != "" {
		slug = q.TitleSlug
	}
	return &model.Problem{
		Title:            q.Title,
		Slug:             slug,
		Difficulty:       q.Difficulty,
		Likes:            q.Likes,
		Dislikes:         q.Dislikes,
		ExampleTestcases: q.ExampleTestcases,
		Link:             resolveLink(slug, link),
		Content:          q.Content,
	}
}

// GetProblem retrieves a single problem by its title slug.
func (c *Client) GetProblem(ctx context.Context, slug string) (*model.Problem, error) {
	var gqlResp struct {
		Data struct {
			Question *question `json:"question"`
		} `json:"data"`
	}

	if err := c.do(ctx, "getQuestionDetail", questionDetailQuery, map[string]any{"titleSlug": slug}, &gqlResp); err != nil {
		return nil, err
	}

	if gqlResp.Data.Question == nil {
		return nil, fmt.Errorf("question %q: %w", slug, model.ErrProblemNotFound)
	}

	return gqlResp.Data.Question.toProblem(slug, ""), nil
}

// GetDailyChallenge retrieves the daily LeetCode challenge.
func (c *Client) GetDailyChallenge(ctx context.Context) (*model.Problem, error) {
	var gqlResp struct {
		Data struct {
			ActiveDailyCodingChallengeQuestion *struct {
				Link     string    `json:"link"`
				Question *question `json:"question"`
			} `json:"activeDailyCodingChallengeQuestion"`
		} `json:"data"`
	}

	if err := c.do(ctx, "questionOfToday", questionOfTodayQuery, nil, &gqlResp); err != nil {
		return nil, err
	}

	daily := gqlResp.Data.ActiveDailyCodingChallengeQuestion
	if daily == nil || daily.Question == nil || daily.Question.TitleSlug == "" {
		return nil, fmt.Errorf("empty daily challenge data: %w", model.ErrProblemNotFound)
	}

	return daily.Question.toProblem("", daily.Link), nil
}

// do posts a GraphQL document and decodes the envelope into out.
// Transport, status and decoding failures are all reported as ErrUpstreamUnavailable.
func (c *Client) do(ctx context.Context, operation, document string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: document, Variables: variables})
	if err != nil {
		return fmt.Errorf("marshal graphql payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", siteURL)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: perform request: %w", model.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "leetcode graphql response",
		"operation", operation,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: unexpected status %d: %s", model.ErrUpstreamUnavailable, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %w", model.ErrUpstreamUnavailable, err)
	}

	return nil
}

func resolveLink(slug, fallback string) string {
	if fallback != "" {
		return siteURL + fallback
	}
	return fmt.Sprintf("%s/problems/%s/", siteURL, slug)
}
