package videogen

import (
	"github.com/google/wire"

	"github.com/dropflyai/video-gateway/internal/domain/generation"
)

// NewAdapters collects every provider adapter for registration with the
// generation service.
func NewAdapters(fal *FalClient, replicate *ReplicateClient) []generation.Adapter {
	return []generation.Adapter{fal, replicate}
}

// AdapterProvider provides the provider adapters and their clients.
var AdapterProvider = wire.NewSet(
	NewFalClient,
	NewReplicateClient,
	NewAdapters,
)
