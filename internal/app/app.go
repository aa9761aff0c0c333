package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"

	"leetcode-relay/internal/domain/ports"
	"leetcode-relay/internal/usecase"
)

const cronStopTimeout = 5 * time.Second

// Settings controls the server and probe lifecycle.
type Settings struct {
	Addr            string
	ProbeSchedule   string
	ShutdownTimeout time.Duration
}

// App owns the HTTP server and the upstream probe scheduler.
type App struct {
	server          *http.Server
	cron            *cron.Cron
	probe           *usecase.UpstreamProbe
	logger          ports.Logger
	schedule        string
	shutdownTimeout time.Duration
}

// New constructs an App instance.
func New(handler http.Handler, probe *usecase.UpstreamProbe, logger ports.Logger, settings Settings) *App {
	return &App{
		server: &http.Server{
			Addr:              settings.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		cron:            cron.New(),
		probe:           probe,
		logger:          logger,
		schedule:        settings.ProbeSchedule,
		shutdownTimeout: settings.ShutdownTimeout,
	}
}

// Run serves HTTP until ctx is cancelled or the listener fails, then shuts
// down gracefully. When a probe schedule is set, the probe runs once
// immediately and then on the schedule.
func (a *App) Run(ctx context.Context) error {
	if a.schedule != "" {
		if err := a.scheduleProbe(); err != nil {
			return fmt.Errorf("schedule upstream probe: %w", err)
		}
		a.logger.Info(ctx, "starting upstream probe", "cron", a.schedule)
		a.cron.Start()
		go a.runProbe()
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info(ctx, "server running", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var runErr error
	select {
	case err := <-errCh:
		runErr = err
	case <-ctx.Done():
		a.logger.Info(context.Background(), "shutdown requested")
	}

	if err := a.shutdown(); err != nil && runErr == nil {
		runErr = err
	}

	if runErr != nil {
		return fmt.Errorf("http server: %w", runErr)
	}
	return nil
}

func (a *App) scheduleProbe() error {
	_, err := a.cron.AddFunc(a.schedule, a.runProbe)
	if err != nil {
		return err
	}
	return nil
}

func (a *App) runProbe() {
	// failures are logged and recorded by the probe itself
	_ = a.probe.Run(context.Background())
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	err := a.server.Shutdown(ctx)

	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(cronStopTimeout):
	}

	a.logger.Info(context.Background(), "server stopped")
	return err
}
