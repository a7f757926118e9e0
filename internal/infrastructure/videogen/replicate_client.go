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
	replicateFrameRate     = 8
	replicateGuidanceScale = 7.5
	replicateSteps         = 50
)

// ReplicateClient is the async provider adapter: a generation is a job that
// is created, then polled until it reaches a terminal status.
type ReplicateClient struct {
	apiToken string
	client   *resty.Client
	poll     PollPolicy
}

// NewReplicateClient builds the replicate adapter. An empty
// REPLICATE_API_TOKEN puts the adapter in mock mode.
func NewReplicateClient(cfg *config.Config) *ReplicateClient {
	if cfg.ReplicateAPIToken == "" {
		log.Warn().Msg("REPLICATE_API_TOKEN not set - replicate generations will use mock responses")
	}

	client := httpclients.NewClient("ReplicateClient")
	client.SetBaseURL(cfg.ReplicateBaseURL)
	client.SetTimeout(cfg.GenerationTimeout)
	if cfg.ReplicateAPIToken != "" {
		client.SetHeader("Authorization", fmt.Sprintf("Token %s", cfg.ReplicateAPIToken))
	}

	return &ReplicateClient{
		apiToken: cfg.ReplicateAPIToken,
		client:   client,
		poll: PollPolicy{
			Interval:    cfg.PollInterval,
			MaxAttempts: cfg.PollMaxAttempts,
		}.normalized(),
	}
}

// SetPollPolicy overrides the polling behavior. Intended for tests that
// need deterministic, zero-delay polling.
func (c *ReplicateClient) SetPollPolicy(p PollPolicy) {
	c.poll = p.normalized()
}

type replicateModel struct {
	LatestVersion struct {
		ID string `json:"id"`
	} `json:"latest_version"`
}

type replicateInput struct {
	Prompt            string  `json:"prompt"`
	NumFrames         int     `json:"num_frames"`
	GuidanceScale     float64 `json:"guidance_scale"`
	NumInferenceSteps int     `json:"num_inference_steps"`
}

type replicateCreateRequest struct {
	Version string         `json:"version"`
	Input   replicateInput `json:"input"`
}

// replicatePrediction is the job record returned by create and poll calls.
// Output is string-or-array depending on the model, hence the raw decode.
type replicatePrediction struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Output  any    `json:"output"`
	Error   string `json:"error"`
	Metrics struct {
		PredictTime float64 `json:"predict_time"`
	} `json:"metrics"`
}

const (
	predictionStarting   = "starting"
	predictionProcessing = "processing"
	predictionSucceeded  = "succeeded"
	predictionFailed     = "failed"
	predictionCanceled   = "canceled"
)

func (p *replicatePrediction) terminal() bool {
	switch p.Status {
	case predictionSucceeded, predictionFailed, predictionCanceled:
		return true
	}
	return false
}

// outputURL extracts the artifact URL from the model-dependent output shape.
func (p *replicatePrediction) outputURL() string {
	switch out := p.Output.(type) {
	case string:
		return out
	case []any:
		if len(out) > 0 {
			if s, ok := out[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

// Client implements generation.Adapter.
func (c *ReplicateClient) Client() engine.ClientKey {
	return engine.ClientReplicate
}

// Generate implements generation.Adapter. Runs the full job lifecycle:
// resolve model version, create prediction, poll to a terminal status.
func (c *ReplicateClient) Generate(ctx context.Context, desc engine.Descriptor, req generation.Request) generation.Response {
	if desc.ProviderModel == "" {
		return generation.Failure(desc.ID, desc.DisplayName, generation.ErrCodeEngineNotSupported,
			fmt.Sprintf("engine %s not supported by replicate", desc.ID), req)
	}

	if c.apiToken == "" {
		return mockResponse("replicate", desc, req)
	}

	start := time.Now()

	version, err := c.resolveVersion(ctx, desc.ProviderModel)
	if err != nil {
		log.Error().Err(err).Str("engine", desc.ID).Msg("[ReplicateClient] version lookup failed")
		return generation.Failure(desc.ID, desc.DisplayName, generation.ErrCodeGenerationError,
			errorMessage(err), req)
	}

	pred, err := c.createPrediction(ctx, version, replicateInput{
		Prompt:            req.Prompt,
		NumFrames:         req.DurationSeconds * replicateFrameRate,
		GuidanceScale:     replicateGuidanceScale,
		NumInferenceSteps: replicateSteps,
	})
	if err != nil {
		log.Error().Err(err).Str("engine", desc.ID).Msg("[ReplicateClient] prediction create failed")
		return generation.Failure(desc.ID, desc.DisplayName, generation.ErrCodeGenerationError,
			errorMessage(err), req)
	}

	pred, err = c.waitForPrediction(ctx, pred)
	if err != nil {
		log.Error().Err(err).Str("engine", desc.ID).Str("prediction_id", pred.ID).
			Msg("[ReplicateClient] prediction did not complete")
		return generation.Failure(desc.ID, desc.DisplayName, generation.ErrCodeGenerationError,
			errorMessage(err), req)
	}

	if pred.Status != predictionSucceeded {
		msg := pred.Error
		if msg == "" {
			msg = fmt.Sprintf("prediction ended with status %s", pred.Status)
		}
		return generation.Failure(desc.ID, desc.DisplayName, generation.ErrCodeGenerationError, msg, req)
	}

	videoURL := pred.outputURL()
	if videoURL == "" {
		return generation.Failure(desc.ID, desc.DisplayName, generation.ErrCodeGenerationError,
			"prediction succeeded but produced no output", req)
	}

	md := generation.BaseMetadata(req)
	md["provider"] = "replicate"
	md["prediction_id"] = pred.ID
	md["predict_time_seconds"] = pred.Metrics.PredictTime
	md["processing_time_ms"] = time.Since(start).Milliseconds()

	return generation.Response{
		Success:         true,
		VideoURL:        videoURL,
		ThumbnailURL:    fmt.Sprintf("%s?frame=0", videoURL),
		DurationSeconds: req.DurationSeconds,
		Engine:          desc.ID,
		EngineName:      desc.DisplayName,
		Cost:            generation.Cost(desc, req.DurationSeconds),
		CreditsUsed:     1,
		Metadata:        md,
	}
}

func (c *ReplicateClient) resolveVersion(ctx context.Context, model string) (string, error) {
	var result replicateModel
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/models/" + model)
	if err != nil {
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("replicate api error: %v", err),
			err, "replicate-transport-error")
	}
	if resp.IsError() {
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("replicate model lookup failed: %s", resp.String()),
			nil, "replicate-model-error")
	}
	if result.LatestVersion.ID == "" {
		return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("replicate model %s has no published version", model),
			nil, "replicate-no-version")
	}
	return result.LatestVersion.ID, nil
}

func (c *ReplicateClient) createPrediction(ctx context.Context, version string, input replicateInput) (*replicatePrediction, error) {
	var result replicatePrediction
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(&replicateCreateRequest{Version: version, Input: input}).
		SetResult(&result).
		Post("/predictions")
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("replicate api error: %v", err),
			err, "replicate-transport-error")
	}
	if resp.IsError() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("replicate prediction create failed: %s", resp.String()),
			nil, "replicate-create-error")
	}
	return &result, nil
}

// waitForPrediction polls the job until it is terminal or the poll budget
// runs out. ctx cancellation aborts the wait between polls.
func (c *ReplicateClient) waitForPrediction(ctx context.Context, pred *replicatePrediction) (*replicatePrediction, error) {
	for attempt := 1; attempt <= c.poll.MaxAttempts; attempt++ {
		if pred.terminal() {
			return pred, nil
		}
		if err := c.poll.Sleep(ctx, c.poll.Interval); err != nil {
			return pred, platformerrors.AsError(ctx, platformerrors.LayerInfrastructure,
				err, "generation canceled while waiting for prediction")
		}

		next, err := c.getPrediction(ctx, pred.ID)
		if err != nil {
			return pred, err
		}
		pred = next
	}
	if pred.terminal() {
		return pred, nil
	}
	return pred, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
		platformerrors.ErrorTypeTimeout,
		fmt.Sprintf("video generation timed out after %d polls", c.poll.MaxAttempts),
		nil, "replicate-poll-timeout")
}

func (c *ReplicateClient) getPrediction(ctx context.Context, id string) (*replicatePrediction, error) {
	var result replicatePrediction
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/predictions/" + id)
	if err != nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("replicate api error: %v", err),
			err, "replicate-transport-error")
	}
	if resp.IsError() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			fmt.Sprintf("replicate prediction poll failed: %s", resp.String()),
			nil, "replicate-poll-error")
	}
	return &result, nil
}

// CheckAvailability implements generation.Adapter. Diagnostic probe only.
func (c *ReplicateClient) CheckAvailability(ctx context.Context) bool {
	if c.apiToken == "" {
		return false
	}
	resp, err := c.client.R().SetContext(ctx).Get("/models")
	if err != nil {
		log.Error().Err(err).Msg("[ReplicateClient] availability check failed")
		return false
	}
	return !resp.IsError()
}

var _ generation.Adapter = (*ReplicateClient)(nil)
