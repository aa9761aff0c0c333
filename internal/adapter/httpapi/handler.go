package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"leetcode-relay/internal/domain/model"
	"leetcode-relay/internal/domain/ports"
)

// ProblemDescriber turns problem URLs into plain-text descriptions.
type ProblemDescriber interface {
	Describe(ctx context.Context, rawURL string) (*model.Description, error)
	DescribeDaily(ctx context.Context) (*model.Description, error)
}

// HealthReporter exposes the last upstream probe result.
type HealthReporter interface {
	Status() model.ProbeStatus
}

// Handler serves the relay's HTTP endpoints.
type Handler struct {
	problems ProblemDescriber
	health   HealthReporter
	logger   ports.Logger
}

// NewHandler constructs a Handler.
func NewHandler(problems ProblemDescriber, health HealthReporter, logger ports.Logger) *Handler {
	return &Handler{
		problems: problems,
		health:   health,
		logger:   logger,
	}
}

type describeRequest struct {
	URL string `json:"url"`
}

type describeResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status    model.ProbeState `json:"status"`
	CheckedAt *time.Time       `json:"checked_at,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// DescribeProblem handles POST /api/leetcode.
func (h *Handler) DescribeProblem(c *gin.Context) {
	var req describeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !malformedURLField(err) {
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, errorResponse{Error: MsgInvalidBody})
		return
	}

	desc, err := h.problems.Describe(c.Request.Context(), req.URL)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, describeResponse{Title: desc.Title, Description: desc.Description})
}

// DescribeDaily handles GET /api/leetcode/daily.
func (h *Handler) DescribeDaily(c *gin.Context) {
	desc, err := h.problems.DescribeDaily(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, describeResponse{Title: desc.Title, Description: desc.Description})
}

// Health reports the last upstream probe; 503 once the probe has failed.
func (h *Handler) Health(c *gin.Context) {
	status := h.health.Status()

	resp := healthResponse{Status: status.State, Error: status.Err}
	if !status.CheckedAt.IsZero() {
		checkedAt := status.CheckedAt
		resp.CheckedAt = &checkedAt
	}

	code := http.StatusOK
	if status.State == model.ProbeUnhealthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, resp)
}

// Live always answers 200 while the process is serving.
func (h *Handler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// fail is the single point where lookup errors become responses.
// Every failure is a 500 carrying a human-readable message.
func (h *Handler) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, errorResponse{Error: userMessage(err)})
}

// malformedURLField reports bind errors that leave the body readable but the
// url unusable: an empty body or a url of the wrong JSON type. Those fall
// through to URL validation instead of being rejected as a bad body.
func malformedURLField(err error) bool {
	var typeErr *json.UnmarshalTypeError
	return errors.Is(err, io.EOF) || errors.As(err, &typeErr)
}
