package generation

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dropflyai/video-gateway/internal/domain/engine"
)

// Service is the gateway entry point. It resolves engine selection, enforces
// tier access, routes to the owning adapter, and normalizes every outcome
// into a single Response. It holds no mutable state between calls.
type Service struct {
	registry *engine.Registry
	adapters map[engine.ClientKey]Adapter
	log      zerolog.Logger
}

// NewService wires the registry and the adapter set.
func NewService(registry *engine.Registry, adapters []Adapter, log zerolog.Logger) *Service {
	byClient := make(map[engine.ClientKey]Adapter, len(adapters))
	for _, a := range adapters {
		byClient[a.Client()] = a
	}
	return &Service{
		registry: registry,
		adapters: byClient,
		log:      log,
	}
}

// Generate runs one generation request for a caller tier. The local gates
// run in a fixed order - unknown engine, tier access, waitlist status,
// adapter routing - and all of them resolve before any network activity.
// Adapter failures never escape: the result is always a well-formed Response.
func (s *Service) Generate(ctx context.Context, req Request, tier engine.Tier) Response {
	engineID := req.Engine
	if engineID == "" || engineID == engine.AutoEngine {
		engineID = s.registry.ResolveAuto(tier)
	}

	desc, ok := s.registry.Lookup(engineID)
	if !ok {
		return Failure(engineID, "Unknown", ErrCodeUnknownEngine,
			fmt.Sprintf("unknown engine: %s", engineID), req)
	}

	if !s.registry.CheckAccess(tier, engineID) {
		return Failure(engineID, desc.DisplayName, ErrCodeEngineNotAvailable,
			fmt.Sprintf("your %s plan does not include %s; upgrade to access this engine", tier, desc.DisplayName), req)
	}

	if desc.APIStatus == engine.StatusWaitlist {
		return Failure(engineID, desc.DisplayName, ErrCodeEngineWaitlist,
			fmt.Sprintf("%s is currently on waitlist", desc.DisplayName), req)
	}

	adapter, ok := s.adapters[desc.Client]
	if !ok {
		s.log.Error().
			Str("engine", engineID).
			Str("client", string(desc.Client)).
			Msg("engine routed to unregistered client")
		return Failure(engineID, desc.DisplayName, ErrCodeClientNotFound,
			fmt.Sprintf("no client registered for %s", desc.DisplayName), req)
	}

	resp := s.dispatch(ctx, adapter, desc, req)
	if resp.Success {
		resp.Cost = Cost(desc, req.DurationSeconds)
		resp.CreditsUsed = 1
	}
	return resp
}

// dispatch invokes the adapter inside an error boundary: a panicking adapter
// still yields a well-formed GENERATION_ERROR response.
func (s *Service) dispatch(ctx context.Context, adapter Adapter, desc engine.Descriptor, req Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().
				Str("engine", desc.ID).
				Str("client", string(desc.Client)).
				Interface("panic", r).
				Msg("adapter panicked")
			resp = Failure(desc.ID, desc.DisplayName, ErrCodeGenerationError,
				fmt.Sprintf("video generation failed: %v", r), req)
		}
	}()
	return adapter.Generate(ctx, desc, req)
}

// Registry exposes the engine catalog backing this service.
func (s *Service) Registry() *engine.Registry {
	return s.registry
}

// AvailableEngines lists engines the tier can invoke right now.
func (s *Service) AvailableEngines(tier engine.Tier) []engine.Descriptor {
	return s.registry.AvailableForTier(tier)
}

// ResolveAuto returns the tier's auto-selected engine id.
func (s *Service) ResolveAuto(tier engine.Tier) string {
	return s.registry.ResolveAuto(tier)
}

// EstimateCost returns the dollar cost of generating durationSeconds on an
// engine, or false for an unknown id.
func (s *Service) EstimateCost(engineID string, durationSeconds int) (float64, bool) {
	desc, ok := s.registry.Lookup(engineID)
	if !ok {
		return 0, false
	}
	return Cost(desc, durationSeconds), true
}

// ProviderHealth probes every registered adapter. Diagnostic only.
func (s *Service) ProviderHealth(ctx context.Context) map[string]bool {
	out := make(map[string]bool, len(s.adapters))
	for key, adapter := range s.adapters {
		out[string(key)] = adapter.CheckAvailability(ctx)
	}
	return out
}
