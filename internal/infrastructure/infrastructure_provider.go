package infrastructure

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/dropflyai/video-gateway/internal/config"
	"github.com/dropflyai/video-gateway/internal/domain/engine"
	"github.com/dropflyai/video-gateway/internal/infrastructure/logger"
	"github.com/dropflyai/video-gateway/internal/infrastructure/videogen"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideLogger builds the application logger from config
func ProvideLogger(cfg *config.Config) (zerolog.Logger, error) {
	return logger.New(cfg.LogLevel, cfg.LogFormat)
}

// ProvideRegistry provides the built-in engine catalog
func ProvideRegistry() *engine.Registry {
	return engine.Default()
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Logger
	ProvideLogger,

	// Engine catalog
	ProvideRegistry,

	// Provider adapters
	videogen.AdapterProvider,
)
