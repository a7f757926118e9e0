package video

import (
	"github.com/dropflyai/video-gateway/internal/domain/engine"
	"github.com/dropflyai/video-gateway/internal/domain/generation"
)

// VideoGenerationResponse represents the outcome of a generation request.
// Failures carry Error and ErrorCode instead of artifact URLs.
// @Description Video generation response
type VideoGenerationResponse struct {
	Success         bool           `json:"success"`
	VideoURL        string         `json:"video_url,omitempty"`
	ThumbnailURL    string         `json:"thumbnail_url,omitempty"`
	DurationSeconds int            `json:"duration,omitempty"`
	Engine          string         `json:"engine,omitempty"`
	EngineName      string         `json:"engine_name,omitempty"`
	Cost            float64        `json:"cost,omitempty"`
	CreditsUsed     int            `json:"credits_used,omitempty"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	Error           string         `json:"error,omitempty"`
	ErrorCode       string         `json:"error_code,omitempty"`
}

// FromGeneration converts a domain generation result to the HTTP response.
func FromGeneration(res generation.Response) *VideoGenerationResponse {
	return &VideoGenerationResponse{
		Success:         res.Success,
		VideoURL:        res.VideoURL,
		ThumbnailURL:    res.ThumbnailURL,
		DurationSeconds: res.DurationSeconds,
		Engine:          res.Engine,
		EngineName:      res.EngineName,
		Cost:            res.Cost,
		CreditsUsed:     res.CreditsUsed,
		Metadata:        res.Metadata,
		Error:           res.Error,
		ErrorCode:       string(res.ErrorCode),
	}
}

// EngineInfo describes one engine in the catalog listing.
type EngineInfo struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	MinimumTier    string  `json:"minimum_tier"`
	Status         string  `json:"status"`
	PricePerSecond float64 `json:"price_per_second"`
	Provider       string  `json:"provider"`
}

// EngineListResponse lists the engines usable by a tier.
type EngineListResponse struct {
	Tier    string       `json:"tier"`
	Default string       `json:"default_engine"`
	Engines []EngineInfo `json:"engines"`
}

// FromDescriptor converts a catalog descriptor to the listing entry.
func FromDescriptor(d engine.Descriptor) EngineInfo {
	return EngineInfo{
		ID:             d.ID,
		Name:           d.DisplayName,
		MinimumTier:    string(d.MinimumTier),
		Status:         string(d.APIStatus),
		PricePerSecond: d.PricePerSecond.InexactFloat64(),
		Provider:       string(d.Client),
	}
}

// ProviderHealthResponse reports reachability per provider adapter.
type ProviderHealthResponse struct {
	Providers map[string]bool `json:"providers"`
}
