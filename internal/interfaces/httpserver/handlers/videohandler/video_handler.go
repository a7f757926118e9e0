package videohandler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/dropflyai/video-gateway/internal/config"
	"github.com/dropflyai/video-gateway/internal/domain/engine"
	"github.com/dropflyai/video-gateway/internal/domain/generation"
	"github.com/dropflyai/video-gateway/internal/infrastructure/metrics"
	"github.com/dropflyai/video-gateway/internal/infrastructure/observability"
	videorequest "github.com/dropflyai/video-gateway/internal/interfaces/httpserver/requests/video"
	videoresponse "github.com/dropflyai/video-gateway/internal/interfaces/httpserver/responses/video"
)

// VideoHandler handles video generation requests.
type VideoHandler struct {
	cfg     *config.Config
	service *generation.Service
}

// NewVideoHandler creates a new VideoHandler instance.
func NewVideoHandler(cfg *config.Config, service *generation.Service) *VideoHandler {
	return &VideoHandler{
		cfg:     cfg,
		service: service,
	}
}

// GenerateVideo runs a generation request through the gateway service.
// Generation failures come back as a structured response, not an error;
// the error return is reserved for transport-level problems.
func (h *VideoHandler) GenerateVideo(
	ctx context.Context,
	reqCtx *gin.Context,
	request videorequest.GenerateVideoRequest,
) (*videoresponse.VideoGenerationResponse, error) {
	ctx, span := observability.StartSpan(ctx, h.cfg.ServiceName, "VideoHandler.GenerateVideo")
	defer span.End()

	startTime := time.Now()
	tier := engine.ParseTier(request.Tier)

	observability.AddSpanAttributes(ctx,
		attribute.String("engine", request.Engine),
		attribute.String("tier", string(tier)),
		attribute.Int("duration_seconds", request.DurationSeconds),
	)

	log.Info().
		Str("engine", request.Engine).
		Str("tier", string(tier)).
		Int("duration", request.DurationSeconds).
		Str("aspect_ratio", request.AspectRatio).
		Str("prompt", truncatePrompt(request.Prompt, 100)).
		Msg("[VideoHandler] Processing video generation request")

	result := h.service.Generate(ctx, generation.Request{
		Prompt:          request.Prompt,
		DurationSeconds: request.DurationSeconds,
		AspectRatio:     request.AspectRatio,
		Resolution:      request.Resolution,
		IncludeAudio:    request.IncludeAudio,
		Engine:          request.Engine,
	}, tier)

	duration := time.Since(startTime)
	if result.Success {
		metrics.RecordGeneration(result.Engine, h.clientFor(result.Engine), "success", duration.Seconds(), result.Cost)
		log.Info().
			Str("engine", result.Engine).
			Float64("cost", result.Cost).
			Dur("duration", duration).
			Msg("[VideoHandler] Video generation completed")
	} else {
		metrics.RecordGeneration(result.Engine, h.clientFor(result.Engine), "failure", duration.Seconds(), 0)
		metrics.RecordGenerationError(result.Engine, string(result.ErrorCode))
		log.Warn().
			Str("engine", result.Engine).
			Str("error_code", string(result.ErrorCode)).
			Str("error", result.Error).
			Msg("[VideoHandler] Video generation failed")
	}

	return videoresponse.FromGeneration(result), nil
}

// ListEngines returns the engines usable by the given tier.
func (h *VideoHandler) ListEngines(tier engine.Tier) *videoresponse.EngineListResponse {
	descriptors := h.service.AvailableEngines(tier)
	engines := make([]videoresponse.EngineInfo, 0, len(descriptors))
	for _, d := range descriptors {
		engines = append(engines, videoresponse.FromDescriptor(d))
	}
	return &videoresponse.EngineListResponse{
		Tier:    string(tier),
		Default: h.service.ResolveAuto(tier),
		Engines: engines,
	}
}

// ProvidersHealth probes each registered provider adapter.
func (h *VideoHandler) ProvidersHealth(ctx context.Context) *videoresponse.ProviderHealthResponse {
	health := h.service.ProviderHealth(ctx)
	for provider, healthy := range health {
		metrics.SetProviderHealth(provider, healthy)
	}
	return &videoresponse.ProviderHealthResponse{Providers: health}
}

func (h *VideoHandler) clientFor(engineID string) string {
	if desc, ok := h.service.Registry().Lookup(engineID); ok {
		return string(desc.Client)
	}
	return "unknown"
}

func truncatePrompt(prompt string, max int) string {
	if len(prompt) <= max {
		return prompt
	}
	return prompt[:max] + "..."
}
