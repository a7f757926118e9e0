package engine

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Tier is a caller's subscription level. Tiers are ordered; an engine is
// accessible when the caller's tier is at or above the engine's minimum.
type Tier string

const (
	TierFree       Tier = "free"
	TierStarter    Tier = "starter"
	TierPro        Tier = "pro"
	TierEnterprise Tier = "enterprise"
)

// tierRank defines the fixed tier ordering. Unknown tiers rank lowest.
var tierRank = map[Tier]int{
	TierFree:       0,
	TierStarter:    1,
	TierPro:        2,
	TierEnterprise: 3,
}

// ParseTier normalizes an externally supplied tier string. Unrecognized
// values fall back to the free tier rather than failing the request.
func ParseTier(s string) Tier {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := tierRank[t]; ok {
		return t
	}
	return TierFree
}

// AtLeast reports whether t is at or above min in the tier ordering.
func (t Tier) AtLeast(min Tier) bool {
	return tierRank[t] >= tierRank[min]
}

// APIStatus describes upstream availability of an engine.
type APIStatus string

const (
	StatusAvailable  APIStatus = "available"
	StatusWaitlist   APIStatus = "waitlist"
	StatusDeprecated APIStatus = "deprecated"
)

// ClientKey identifies the provider adapter that owns an engine.
type ClientKey string

const (
	ClientFal       ClientKey = "fal"
	ClientReplicate ClientKey = "replicate"
)

// Descriptor is the single source of truth for one engine: identity,
// access gating, pricing, and the owning adapter together with its
// provider-specific model key.
type Descriptor struct {
	ID             string          `json:"id"`
	DisplayName    string          `json:"display_name"`
	MinimumTier    Tier            `json:"minimum_tier"`
	APIStatus      APIStatus       `json:"api_status"`
	PricePerSecond decimal.Decimal `json:"price_per_second"`
	Client         ClientKey       `json:"client"`
	ProviderModel  string          `json:"provider_model,omitempty"`
}
