package video

// Defaults applied when the caller omits optional fields.
const (
	DefaultDurationSeconds = 5
	DefaultAspectRatio     = "16:9"
	DefaultResolution      = "1080p"
	DefaultEngine          = "auto"
)

// GenerateVideoRequest represents a video generation request.
// @Description Video generation request
type GenerateVideoRequest struct {
	// Prompt is the text description of the video to generate.
	Prompt string `json:"prompt"`

	// DurationSeconds is the requested clip length. Defaults to 5.
	DurationSeconds int `json:"duration,omitempty"`

	// AspectRatio of the output, e.g. "16:9", "9:16", "1:1". Defaults to "16:9".
	AspectRatio string `json:"aspect_ratio,omitempty"`

	// Resolution label recorded in response metadata. Defaults to "1080p".
	Resolution string `json:"resolution,omitempty"`

	// IncludeAudio asks the provider for an audio track where supported.
	IncludeAudio bool `json:"include_audio,omitempty"`

	// Engine selects a specific engine, or "auto" to pick the best
	// engine for the caller's tier.
	Engine string `json:"engine,omitempty"`

	// Tier is the caller's subscription tier: free, starter, pro or
	// enterprise. Unknown values fall back to free.
	Tier string `json:"tier,omitempty"`
}

// ApplyDefaults fills zero-valued optional fields.
func (r *GenerateVideoRequest) ApplyDefaults() {
	if r.DurationSeconds <= 0 {
		r.DurationSeconds = DefaultDurationSeconds
	}
	if r.AspectRatio == "" {
		r.AspectRatio = DefaultAspectRatio
	}
	if r.Resolution == "" {
		r.Resolution = DefaultResolution
	}
	if r.Engine == "" {
		r.Engine = DefaultEngine
	}
}
