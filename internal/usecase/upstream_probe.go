package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"leetcode-relay/internal/domain/model"
	"leetcode-relay/internal/domain/ports"
)

// UpstreamProbeConfig controls the probe.
type UpstreamProbeConfig struct {
	Timeout time.Duration
}

// UpstreamProbe checks that the upstream API answers and remembers the result.
// It never stores problem data.
type UpstreamProbe struct {
	problems ports.ProblemProvider
	metrics  ports.Metrics
	logger   ports.Logger
	timeout  time.Duration
	status   atomic.Pointer[model.ProbeStatus]
	now      func() time.Time
}

// NewUpstreamProbe constructs an UpstreamProbe in the unknown state.
func NewUpstreamProbe(
	problems ports.ProblemProvider,
	metrics ports.Metrics,
	logger ports.Logger,
	cfg UpstreamProbeConfig,
) *UpstreamProbe {
	p := &UpstreamProbe{
		problems: problems,
		metrics:  metrics,
		logger:   logger,
		timeout:  cfg.Timeout,
		now:      time.Now,
	}
	p.status.Store(&model.ProbeStatus{State: model.ProbeUnknown})
	return p
}

// Run queries the daily challenge once and records whether it succeeded.
func (p *UpstreamProbe) Run(ctx context.Context) error {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	_, err := p.problems.GetDailyChallenge(ctx)

	status := &model.ProbeStatus{State: model.ProbeHealthy, CheckedAt: p.now().UTC()}
	if err != nil {
		status.State = model.ProbeUnhealthy
		status.Err = err.Error()
		p.logger.Error(ctx, "upstream probe failed", "error", err)
	} else {
		p.logger.Debug(ctx, "upstream probe succeeded")
	}

	p.status.Store(status)
	p.metrics.SetUpstreamUp(err == nil)
	return err
}

// Status returns the result of the most recent probe.
func (p *UpstreamProbe) Status() model.ProbeStatus {
	return *p.status.Load()
}
