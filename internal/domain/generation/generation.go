package generation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dropflyai/video-gateway/internal/domain/engine"
)

// ErrorCode is the fixed failure taxonomy returned to callers.
type ErrorCode string

const (
	// ErrCodeUnknownEngine - the engine id is not in the registry.
	ErrCodeUnknownEngine ErrorCode = "UNKNOWN_ENGINE"
	// ErrCodeEngineNotAvailable - the caller's tier is below the engine's minimum.
	ErrCodeEngineNotAvailable ErrorCode = "ENGINE_NOT_AVAILABLE"
	// ErrCodeEngineWaitlist - the engine's upstream API is waitlist-only.
	ErrCodeEngineWaitlist ErrorCode = "ENGINE_WAITLIST"
	// ErrCodeEngineNotSupported - the owning adapter has no model key for the engine.
	ErrCodeEngineNotSupported ErrorCode = "ENGINE_NOT_SUPPORTED"
	// ErrCodeClientNotFound - no adapter owns the engine's client key. This is
	// a catalog inconsistency, not a caller error.
	ErrCodeClientNotFound ErrorCode = "CLIENT_NOT_FOUND"
	// ErrCodeGenerationError - any adapter-level failure: transport errors,
	// non-2xx upstream responses, and polling timeouts.
	ErrCodeGenerationError ErrorCode = "GENERATION_ERROR"
)

// Request is the uniform generation request accepted by the gateway.
// Engine is a concrete engine id or the "auto" sentinel.
type Request struct {
	Prompt          string `json:"prompt"`
	DurationSeconds int    `json:"duration_seconds"`
	AspectRatio     string `json:"aspect_ratio"`
	Resolution      string `json:"resolution"`
	IncludeAudio    bool   `json:"include_audio"`
	Engine          string `json:"engine"`
}

// Response is the provider-agnostic generation result. Exactly one of the
// success and failure shapes holds: Success implies a non-empty VideoURL and
// no error code; failure implies an empty VideoURL and a code from the
// taxonomy. Provider-specific fields live only in Metadata.
type Response struct {
	Success         bool           `json:"success"`
	VideoURL        string         `json:"video_url"`
	ThumbnailURL    string         `json:"thumbnail_url"`
	DurationSeconds int            `json:"duration_seconds"`
	Engine          string         `json:"engine"`
	EngineName      string         `json:"engine_name"`
	Cost            float64        `json:"cost"`
	CreditsUsed     int            `json:"credits_used"`
	Metadata        map[string]any `json:"metadata"`
	Error           string         `json:"error,omitempty"`
	ErrorCode       ErrorCode      `json:"error_code,omitempty"`
}

// Cost computes the dollar cost of a generation: duration times the
// engine's per-second price. Decimal math keeps the result exact.
func Cost(d engine.Descriptor, durationSeconds int) float64 {
	return d.PricePerSecond.Mul(decimal.NewFromInt(int64(durationSeconds))).InexactFloat64()
}

// BaseMetadata builds the metadata common to every response shape.
func BaseMetadata(req Request) map[string]any {
	return map[string]any{
		"resolution":   req.Resolution,
		"aspect_ratio": req.AspectRatio,
		"has_audio":    false,
		"generated_at": time.Now().UTC().Format(time.RFC3339),
	}
}

// Failure builds a well-formed failure response for the given engine.
func Failure(engineID, engineName string, code ErrorCode, message string, req Request) Response {
	return Response{
		Success:    false,
		Engine:     engineID,
		EngineName: engineName,
		Metadata:   BaseMetadata(req),
		Error:      message,
		ErrorCode:  code,
	}
}
