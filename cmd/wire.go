package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ThisCore/treinopago/internal/adapters/prefs"
	"github.com/ThisCore/treinopago/internal/adapters/render/overview"
	"github.com/ThisCore/treinopago/internal/adapters/rest"
	"github.com/ThisCore/treinopago/internal/observability"
	"github.com/ThisCore/treinopago/internal/ports"
)

type app struct {
	api        ports.API
	prefs      ports.PreferenceStore
	logger     *zap.Logger
	clock      ports.Clock
	renderView func(overview.View, overview.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	logger := observability.NewLogger(envOrDefault("TP_LOG_LEVEL", "warn"))

	store, err := prefs.NewStore(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire preference store: %w", err)
	}

	api := rest.NewClient(
		&http.Client{Timeout: 15 * time.Second},
		envOrDefault("TP_API_URL", "http://localhost:3000"),
		rest.NewCircuitBreaker("treinopago-api"),
		logger,
	)

	return &app{
		api:        api,
		prefs:      store,
		logger:     logger,
		clock:      ports.SystemClock{},
		renderView: overview.Render,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
