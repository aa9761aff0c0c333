//go:build wireinject

package di

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	"leetcode-relay/internal/adapter/htmltext"
	"leetcode-relay/internal/adapter/httpapi"
	"leetcode-relay/internal/adapter/logging"
	"leetcode-relay/internal/adapter/metrics"
	"leetcode-relay/internal/app"
	"leetcode-relay/internal/config"
	"leetcode-relay/internal/domain/ports"
	"leetcode-relay/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp() (*app.App, error) {
	wire.Build(
		config.Load,
		provideLogger,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		metrics.NewRegistry,
		metrics.New,
		wire.Bind(new(ports.Metrics), new(*metrics.Collector)),
		provideProblemProvider,
		htmltext.New,
		wire.Bind(new(ports.TextConverter), new(*htmltext.Converter)),
		usecase.NewProblemLookup,
		provideProbeConfig,
		usecase.NewUpstreamProbe,
		wire.Bind(new(httpapi.ProblemDescriber), new(*usecase.ProblemLookup)),
		wire.Bind(new(httpapi.HealthReporter), new(*usecase.UpstreamProbe)),
		httpapi.NewHandler,
		provideRouter,
		wire.Bind(new(http.Handler), new(*gin.Engine)),
		provideAppSettings,
		app.New,
	)
	return nil, nil
}
