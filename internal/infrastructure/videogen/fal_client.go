package videogen

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"resty.dev/v3"

	"github.com/dropflyai/video-gateway/internal/config"
	"github.com/dropflyai/video-gateway/internal/domain/engine"
	"github.com/dropflyai/video-gateway/internal/domain/generation"
	"github.com/dropflyai/video-gateway/internal/utils/httpclients"
	"github.com/dropflyai/video-gateway/internal/utils/platformerrors"
)

const (
	// fal's video models accept a frame count, not a duration.
	falFrameRate      = 24
	falInferenceSteps = 30
)

// FalClient is the single-call provider adapter: one HTTP POST produces the
// finished artifact. Stateless and safe for concurrent reuse.
type FalClient struct {
	apiKey string
	client *resty.Client
}

// NewFalClient builds the fal adapter. An empty FAL_API_KEY is not an
// error: the adapter runs in mock mode and never touches the network.
func NewFalClient(cfg *config.Config) *FalClient {
	if cfg.FalAPIKey == "" {
		log.Warn().Msg("FAL_API_KEY not set - fal generations will use mock responses")
	}

	client := httpclients.NewClient("FalClient")
	client.SetBaseURL(cfg.FalBaseURL)
	client.SetTimeout(cfg.GenerationTimeout)
	if cfg.FalAPIKey != "" {
		client.SetHeader("Authorization", fmt.Sprintf("Key %s", cfg.FalAPIKey))
	}

	return &FalClient{
		apiKey: cfg.FalAPIKey,
		client: client,
	}
}

// falRequest is the provider wire format for a generation call.
type falRequest struct {
	Prompt         string `json:"prompt"`
	FrameCount     int    `json:"frame_count"`
	AspectRatio    string `json:"aspect_ratio"`
	InferenceSteps int    `json:"inference_steps"`
	EnableAudio    bool   `json:"enable_audio"`
}

// falResponse is the provider wire format for a finished generation.
type falResponse struct {
	Video struct {
		URL      string `json:"url"`
		Width    int    `json:"width"`
		Height   int    `json:"height"`
		FileSize int64  `json:"file_size"`
	} `json:"video"`
	Audio *struct {
		URL string `json:"url"`
	} `json:"audio,omitempty"`
	Timings struct {
		Inference float64 `json:"inference"`
	} `json:"timings"`
}

// Client implements generation.Adapter.
func (c *FalClient) Client() engine.ClientKey {
	return engine.ClientFal
}

// Generate implements generation.Adapter. Every failure mode is folded into
// a GENERATION_ERROR response; non-2xx bodies are surfaced verbatim.
func (c *FalClient) Generate(ctx context.Context, desc engine.Descriptor, req generation.Request) generation.Response {
	if desc.ProviderModel == "" {
		return generation.Failure(desc.ID, desc.DisplayName, generation.ErrCodeEngineNotSupported,
			fmt.Sprintf("engine %s not supported by fal", desc.ID), req)
	}

	if c.apiKey == "" {
		return mockResponse("fal", desc, req)
	}

	start := time.Now()

	result, err := c.callProvider(ctx, desc.ProviderModel, &falRequest{
		Prompt:         req.Prompt,
		FrameCount:     req.DurationSeconds * falFrameRate,
		AspectRatio:    req.AspectRatio,
		InferenceSteps: falInferenceSteps,
		EnableAudio:    req.IncludeAudio,
	})
	if err != nil {
		log.Error().Err(err).Str("engine", desc.ID).Msg("[FalClient] generation failed")
		return generation.Failure(desc.ID, desc.DisplayName, generation.ErrCodeGenerationError,
			errorMessage(err), req)
	}

	md := generation.BaseMetadata(req)
	md["provider"] = "fal"
	md["resolution"] = fmt.Sprintf("%dx%d", result.Video.Width, result.Video.Height)
	md["has_audio"] = result.Audio != nil
	md["file_size"] = result.Video.FileSize
	md["inference_seconds"] = result.Timings.Inference
	md["processing_time_ms"] = time.Since(start).Milliseconds()

	return generation.Response{
		Success:         true,
		VideoURL:        result.Video.URL,
		ThumbnailURL:    fmt.Sprintf("%s?frame=0", result.Video.URL),
		DurationSeconds: req.DurationSeconds,
		Engine:          desc.ID,
		EngineName:      desc.DisplayName,
		Cost:            generation.Cost(desc, req.DurationSeconds),
		CreditsUsed:     1,
		Metadata:        md,
	}
}

func (c *FalClient) callProvider(ctx context.Context, model string, body *falRequest) (*falResponse, error) {
	var result falResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post("/" + model)
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("fal api error: %v", err),
			err, "fal-transport-error")
	}
	if resp.IsError() {
		// Raw body verbatim; fal error schemas are not parsed.
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("fal api error: %s", resp.String()),
			nil, "fal-http-error")
	}
	if result.Video.URL == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			"fal response missing video url",
			nil, "fal-empty-response")
	}
	return &result, nil
}

// CheckAvailability implements generation.Adapter. Diagnostic probe only.
func (c *FalClient) CheckAvailability(ctx context.Context) bool {
	if c.apiKey == "" {
		return false
	}
	resp, err := c.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		log.Error().Err(err).Msg("[FalClient] health check failed")
		return false
	}
	return !resp.IsError()
}

var _ generation.Adapter = (*FalClient)(nil)
