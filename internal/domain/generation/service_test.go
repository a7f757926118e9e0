package generation

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dropflyai/video-gateway/internal/domain/engine"
)

// spyAdapter records dispatch calls and returns a canned response.
type spyAdapter struct {
	key       engine.ClientKey
	calls     int
	lastDesc  engine.Descriptor
	lastReq   Request
	response  Response
	panicWith any
}

func (s *spyAdapter) Client() engine.ClientKey { return s.key }

func (s *spyAdapter) Generate(_ context.Context, desc engine.Descriptor, req Request) Response {
	s.calls++
	s.lastDesc = desc
	s.lastReq = req
	if s.panicWith != nil {
		panic(s.panicWith)
	}
	resp := s.response
	if resp.Engine == "" {
		resp.Engine = desc.ID
		resp.EngineName = desc.DisplayName
	}
	return resp
}

func (s *spyAdapter) CheckAvailability(context.Context) bool { return true }

func testRegistry() *engine.Registry {
	descriptors := []engine.Descriptor{
		{
			ID:             "budget",
			DisplayName:    "Budget Engine",
			MinimumTier:    engine.TierFree,
			APIStatus:      engine.StatusAvailable,
			PricePerSecond: decimal.RequireFromString("0.028"),
			Client:         engine.ClientFal,
			ProviderModel:  "vendor/budget",
		},
		{
			ID:             "premium",
			DisplayName:    "Premium Engine",
			MinimumTier:    engine.TierPro,
			APIStatus:      engine.StatusAvailable,
			PricePerSecond: decimal.RequireFromString("0.19"),
			Client:         engine.ClientFal,
			ProviderModel:  "vendor/premium",
		},
		{
			ID:             "gated",
			DisplayName:    "Gated Engine",
			MinimumTier:    engine.TierFree,
			APIStatus:      engine.StatusWaitlist,
			PricePerSecond: decimal.RequireFromString("0.50"),
			Client:         engine.ClientFal,
		},
		{
			ID:             "orphan",
			DisplayName:    "Orphan Engine",
			MinimumTier:    engine.TierFree,
			APIStatus:      engine.StatusAvailable,
			PricePerSecond: decimal.RequireFromString("0.01"),
			Client:         engine.ClientKey("nobody"),
			ProviderModel:  "vendor/orphan",
		},
	}
	defaults := map[engine.Tier]string{
		engine.TierFree: "budget",
		engine.TierPro:  "premium",
	}
	return engine.NewRegistry(descriptors, defaults)
}

func successResponse() Response {
	return Response{
		Success:         true,
		VideoURL:        "https://cdn.example.com/video.mp4",
		ThumbnailURL:    "https://cdn.example.com/video.mp4?frame=0",
		DurationSeconds: 5,
		Metadata:        map[string]any{},
	}
}

func newTestService(adapters ...Adapter) *Service {
	return NewService(testRegistry(), adapters, zerolog.Nop())
}

func TestGenerateSuccess(t *testing.T) {
	spy := &spyAdapter{key: engine.ClientFal, response: successResponse()}
	svc := newTestService(spy)

	resp := svc.Generate(context.Background(), Request{
		Prompt:          "a red fox in the snow",
		DurationSeconds: 5,
		Engine:          "budget",
	}, engine.TierFree)

	if !resp.Success {
		t.Fatalf("expected success, got error %q (%s)", resp.Error, resp.ErrorCode)
	}
	if spy.calls != 1 {
		t.Fatalf("adapter called %d times, want 1", spy.calls)
	}
	if spy.lastDesc.ID != "budget" {
		t.Errorf("adapter received engine %s, want budget", spy.lastDesc.ID)
	}
	if resp.CreditsUsed != 1 {
		t.Errorf("credits used = %d, want 1", resp.CreditsUsed)
	}
}

func TestGenerateCostIsExact(t *testing.T) {
	spy := &spyAdapter{key: engine.ClientFal, response: successResponse()}
	svc := newTestService(spy)

	resp := svc.Generate(context.Background(), Request{
		Prompt:          "timelapse of a city",
		DurationSeconds: 10,
		Engine:          "premium",
	}, engine.TierPro)

	if !resp.Success {
		t.Fatalf("expected success, got %s", resp.ErrorCode)
	}
	if resp.Cost != 1.9 {
		t.Fatalf("cost = %v, want exactly 1.9", resp.Cost)
	}
}

func TestGenerateAutoResolvesPerTier(t *testing.T) {
	for _, engineField := range []string{"", "auto"} {
		spy := &spyAdapter{key: engine.ClientFal, response: successResponse()}
		svc := newTestService(spy)

		resp := svc.Generate(context.Background(), Request{
			Prompt:          "ocean waves",
			DurationSeconds: 5,
			Engine:          engineField,
		}, engine.TierPro)

		if !resp.Success {
			t.Fatalf("engine=%q: expected success, got %s", engineField, resp.ErrorCode)
		}
		if spy.lastDesc.ID != "premium" {
			t.Errorf("engine=%q: auto resolved to %s, want premium", engineField, spy.lastDesc.ID)
		}
	}
}

func TestGenerateFailureGates(t *testing.T) {
	cases := []struct {
		name     string
		engineID string
		tier     engine.Tier
		wantCode ErrorCode
	}{
		{"unknown engine", "no-such-engine", engine.TierEnterprise, ErrCodeUnknownEngine},
		{"tier below minimum", "premium", engine.TierFree, ErrCodeEngineNotAvailable},
		{"waitlist engine", "gated", engine.TierEnterprise, ErrCodeEngineWaitlist},
		{"unregistered client", "orphan", engine.TierFree, ErrCodeClientNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spy := &spyAdapter{key: engine.ClientFal, response: successResponse()}
			svc := newTestService(spy)

			resp := svc.Generate(context.Background(), Request{
				Prompt:          "any prompt",
				DurationSeconds: 5,
				Engine:          tc.engineID,
			}, tc.tier)

			if resp.Success {
				t.Fatal("expected failure response")
			}
			if resp.ErrorCode != tc.wantCode {
				t.Fatalf("error code = %s, want %s", resp.ErrorCode, tc.wantCode)
			}
			if resp.Error == "" {
				t.Error("failure response missing message")
			}
			if resp.VideoURL != "" {
				t.Error("failure response carries a video url")
			}
			if spy.calls != 0 {
				t.Fatalf("adapter called %d times before dispatch gate", spy.calls)
			}
		})
	}
}

func TestGenerateTierGateBeforeWaitlistGate(t *testing.T) {
	// An engine both gated by tier and waitlisted reports the tier error.
	descriptors := []engine.Descriptor{{
		ID:             "locked",
		DisplayName:    "Locked Engine",
		MinimumTier:    engine.TierEnterprise,
		APIStatus:      engine.StatusWaitlist,
		PricePerSecond: decimal.RequireFromString("1"),
		Client:         engine.ClientFal,
	}}
	svc := NewService(engine.NewRegistry(descriptors, nil), nil, zerolog.Nop())

	resp := svc.Generate(context.Background(), Request{Prompt: "p", Engine: "locked"}, engine.TierFree)
	if resp.ErrorCode != ErrCodeEngineNotAvailable {
		t.Fatalf("error code = %s, want %s", resp.ErrorCode, ErrCodeEngineNotAvailable)
	}
}

func TestGenerateDeprecatedEngineStillDispatches(t *testing.T) {
	descriptors := []engine.Descriptor{{
		ID:             "old",
		DisplayName:    "Old Engine",
		MinimumTier:    engine.TierFree,
		APIStatus:      engine.StatusDeprecated,
		PricePerSecond: decimal.RequireFromString("0.02"),
		Client:         engine.ClientFal,
		ProviderModel:  "vendor/old",
	}}
	spy := &spyAdapter{key: engine.ClientFal, response: successResponse()}
	svc := NewService(engine.NewRegistry(descriptors, nil), []Adapter{spy}, zerolog.Nop())

	resp := svc.Generate(context.Background(), Request{Prompt: "p", DurationSeconds: 5, Engine: "old"}, engine.TierFree)
	if !resp.Success {
		t.Fatalf("deprecated engine should dispatch, got %s", resp.ErrorCode)
	}
	if spy.calls != 1 {
		t.Fatalf("adapter called %d times, want 1", spy.calls)
	}
}

func TestGenerateAdapterPanicBecomesGenerationError(t *testing.T) {
	spy := &spyAdapter{key: engine.ClientFal, panicWith: "provider sdk exploded"}
	svc := newTestService(spy)

	resp := svc.Generate(context.Background(), Request{
		Prompt:          "p",
		DurationSeconds: 5,
		Engine:          "budget",
	}, engine.TierFree)

	if resp.Success {
		t.Fatal("expected failure response")
	}
	if resp.ErrorCode != ErrCodeGenerationError {
		t.Fatalf("error code = %s, want %s", resp.ErrorCode, ErrCodeGenerationError)
	}
	if !strings.Contains(resp.Error, "provider sdk exploded") {
		t.Errorf("error message %q does not mention the panic value", resp.Error)
	}
}

func TestGenerateAdapterFailurePassesThrough(t *testing.T) {
	spy := &spyAdapter{key: engine.ClientFal, response: Response{
		Success:   false,
		Error:     "upstream says no",
		ErrorCode: ErrCodeGenerationError,
	}}
	svc := newTestService(spy)

	resp := svc.Generate(context.Background(), Request{
		Prompt:          "p",
		DurationSeconds: 5,
		Engine:          "budget",
	}, engine.TierFree)

	if resp.Success {
		t.Fatal("expected failure response")
	}
	if resp.Cost != 0 || resp.CreditsUsed != 0 {
		t.Errorf("failed generation should not bill: cost=%v credits=%d", resp.Cost, resp.CreditsUsed)
	}
}

func TestEstimateCost(t *testing.T) {
	svc := newTestService(&spyAdapter{key: engine.ClientFal})

	cost, ok := svc.EstimateCost("premium", 10)
	if !ok {
		t.Fatal("expected estimate for known engine")
	}
	if cost != 1.9 {
		t.Fatalf("estimate = %v, want 1.9", cost)
	}

	if _, ok := svc.EstimateCost("no-such-engine", 10); ok {
		t.Fatal("expected no estimate for unknown engine")
	}
}

func TestProviderHealth(t *testing.T) {
	spy := &spyAdapter{key: engine.ClientFal}
	svc := newTestService(spy)

	health := svc.ProviderHealth(context.Background())
	if len(health) != 1 {
		t.Fatalf("health map has %d entries, want 1", len(health))
	}
	if !health["fal"] {
		t.Error("expected fal adapter to report healthy")
	}
}
