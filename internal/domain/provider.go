package domain

import (
	"github.com/google/wire"

	"github.com/dropflyai/video-gateway/internal/domain/generation"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	generation.NewService,
)
