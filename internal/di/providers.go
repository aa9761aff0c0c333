package di

import (
	"os"

	"github.com/gin-gonic/gin"

	"leetcode-relay/internal/adapter/httpapi"
	"leetcode-relay/internal/adapter/leetcode"
	"leetcode-relay/internal/adapter/logging"
	"leetcode-relay/internal/adapter/metrics"
	"leetcode-relay/internal/app"
	"leetcode-relay/internal/config"
	"leetcode-relay/internal/domain/ports"
	"leetcode-relay/internal/usecase"
)

func provideLogger(cfg *config.Config) *logging.SLogger {
	return logging.NewJSON(os.Stdout, cfg.SlogLevel())
}

func provideProblemProvider(cfg *config.Config, logger ports.Logger) ports.ProblemProvider {
	return leetcode.New(cfg.GraphQLEndpoint, cfg.RequestTimeout, logger)
}

func provideProbeConfig(cfg *config.Config) usecase.UpstreamProbeConfig {
	return usecase.UpstreamProbeConfig{
		Timeout: cfg.ProbeTimeout,
	}
}

func provideRouter(cfg *config.Config, handler *httpapi.Handler, collector *metrics.Collector, logger ports.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	return httpapi.NewRouter(handler, collector, logger)
}

func provideAppSettings(cfg *config.Config) app.Settings {
	return app.Settings{
		Addr:            cfg.Addr(),
		ProbeSchedule:   cfg.ProbeCron,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}
}
