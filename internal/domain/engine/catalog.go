package engine

import "github.com/shopspring/decimal"

// AutoEngine is the selector sentinel that resolves to the caller tier's
// default engine.
const AutoEngine = "auto"

// FallbackEngineID is used when a tier has no default engine configured.
const FallbackEngineID = "hailuo-02"

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// defaultCatalog is loaded once at process start and never mutated.
// Prices are USD per generated second as charged by the upstream provider.
var defaultCatalog = []Descriptor{
	{ID: "hailuo-02", DisplayName: "Hailuo 02", MinimumTier: TierFree, APIStatus: StatusAvailable, PricePerSecond: price("0.028"), Client: ClientFal, ProviderModel: "fal-ai/minimax-video"},
	{ID: "minimax-video", DisplayName: "Minimax Video 01", MinimumTier: TierFree, APIStatus: StatusAvailable, PricePerSecond: price("0.03"), Client: ClientFal, ProviderModel: "fal-ai/minimax/video-01"},
	{ID: "wan-2.2", DisplayName: "Wan 2.2", MinimumTier: TierFree, APIStatus: StatusAvailable, PricePerSecond: price("0.04"), Client: ClientFal, ProviderModel: "fal-ai/wan/v2.2-a14b"},
	{ID: "pika-2.2", DisplayName: "Pika 2.2", MinimumTier: TierStarter, APIStatus: StatusAvailable, PricePerSecond: price("0.08"), Client: ClientFal, ProviderModel: "fal-ai/pika"},
	{ID: "luma-ray3", DisplayName: "Luma Ray 3", MinimumTier: TierStarter, APIStatus: StatusAvailable, PricePerSecond: price("0.12"), Client: ClientFal, ProviderModel: "fal-ai/luma-ray"},
	{ID: "luma-dream", DisplayName: "Luma Dream Machine", MinimumTier: TierStarter, APIStatus: StatusAvailable, PricePerSecond: price("0.14"), Client: ClientFal, ProviderModel: "fal-ai/luma-dream-machine"},
	{ID: "seedance-1.0", DisplayName: "Seedance 1.0", MinimumTier: TierStarter, APIStatus: StatusAvailable, PricePerSecond: price("0.06"), Client: ClientFal, ProviderModel: "fal-ai/bytedance/seedance"},
	{ID: "kling-2.1", DisplayName: "Kling 2.1", MinimumTier: TierStarter, APIStatus: StatusAvailable, PricePerSecond: price("0.19"), Client: ClientFal, ProviderModel: "fal-ai/kling-video"},
	{ID: "kling-2.1-pro", DisplayName: "Kling 2.1 Pro", MinimumTier: TierPro, APIStatus: StatusAvailable, PricePerSecond: price("0.26"), Client: ClientFal, ProviderModel: "fal-ai/kling-video/pro"},
	{ID: "runway-gen4-turbo", DisplayName: "Runway Gen-4 Turbo", MinimumTier: TierPro, APIStatus: StatusAvailable, PricePerSecond: price("0.05"), Client: ClientFal, ProviderModel: "fal-ai/runway-gen3"},
	{ID: "runway-gen4-aleph", DisplayName: "Runway Gen-4 Aleph", MinimumTier: TierPro, APIStatus: StatusAvailable, PricePerSecond: price("0.15"), Client: ClientFal, ProviderModel: "fal-ai/runway-aleph"},
	{ID: "veo-3.1", DisplayName: "Google Veo 3.1", MinimumTier: TierPro, APIStatus: StatusAvailable, PricePerSecond: price("0.40"), Client: ClientFal, ProviderModel: "fal-ai/veo3"},
	{ID: "veo-3.1-fast", DisplayName: "Google Veo 3.1 Fast", MinimumTier: TierPro, APIStatus: StatusAvailable, PricePerSecond: price("0.15"), Client: ClientFal, ProviderModel: "fal-ai/veo3/fast"},
	// Sora is waitlist-only upstream; no model key has been assigned yet.
	{ID: "sora-2", DisplayName: "OpenAI Sora 2", MinimumTier: TierPro, APIStatus: StatusWaitlist, PricePerSecond: price("0.30"), Client: ClientFal},
	{ID: "sora-2-pro", DisplayName: "OpenAI Sora 2 Pro", MinimumTier: TierEnterprise, APIStatus: StatusWaitlist, PricePerSecond: price("0.50"), Client: ClientFal},
	{ID: "cogvideox-5b", DisplayName: "CogVideoX 5B", MinimumTier: TierFree, APIStatus: StatusAvailable, PricePerSecond: price("0.02"), Client: ClientReplicate, ProviderModel: "zai-org/cogvideox-5b"},
	{ID: "cogvideox-i2v", DisplayName: "CogVideoX Image-to-Video", MinimumTier: TierStarter, APIStatus: StatusAvailable, PricePerSecond: price("0.025"), Client: ClientReplicate, ProviderModel: "thudm/cogvideox-i2v"},
	{ID: "ltx-video", DisplayName: "LTX Video", MinimumTier: TierFree, APIStatus: StatusAvailable, PricePerSecond: price("0.02"), Client: ClientReplicate, ProviderModel: "lightricks/ltx-video"},
	{ID: "hunyuan-video", DisplayName: "Hunyuan Video", MinimumTier: TierStarter, APIStatus: StatusAvailable, PricePerSecond: price("0.045"), Client: ClientReplicate, ProviderModel: "tencent/hunyuan-video"},
	{ID: "mochi-1", DisplayName: "Mochi 1", MinimumTier: TierFree, APIStatus: StatusAvailable, PricePerSecond: price("0.03"), Client: ClientReplicate, ProviderModel: "genmoai/mochi-1"},
	{ID: "svd-xt", DisplayName: "Stable Video Diffusion XT", MinimumTier: TierFree, APIStatus: StatusDeprecated, PricePerSecond: price("0.01"), Client: ClientReplicate, ProviderModel: "stability-ai/stable-video-diffusion"},
}

// defaultByTier maps each tier to its auto-selected engine.
var defaultByTier = map[Tier]string{
	TierFree:       "hailuo-02",
	TierStarter:    "kling-2.1",
	TierPro:        "runway-gen4-turbo",
	TierEnterprise: "veo-3.1",
}
