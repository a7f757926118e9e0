package generation

import (
	"context"

	"github.com/dropflyai/video-gateway/internal/domain/engine"
)

// Adapter translates the gateway's uniform contract into one upstream
// provider's wire protocol. Implementations are stateless and safe for
// unsynchronized concurrent reuse.
//
// Generate never returns a Go error: every failure mode, including the
// adapter's own internal errors, is folded into a failure Response. When the
// adapter's credential is unset, Generate performs no network I/O and
// returns a synthesized success with Metadata["mock"] = true.
type Adapter interface {
	// Client returns the routing key this adapter serves.
	Client() engine.ClientKey

	// Generate produces one video for the descriptor's provider model.
	Generate(ctx context.Context, desc engine.Descriptor, req Request) Response

	// CheckAvailability probes the upstream API. Diagnostic only; never
	// called on the generation hot path. False when no credential is set.
	CheckAvailability(ctx context.Context) bool
}
