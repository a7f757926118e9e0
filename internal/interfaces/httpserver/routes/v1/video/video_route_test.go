package video_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/dropflyai/video-gateway/internal/config"
	"github.com/dropflyai/video-gateway/internal/domain/engine"
	"github.com/dropflyai/video-gateway/internal/domain/generation"
	"github.com/dropflyai/video-gateway/internal/infrastructure/videogen"
	"github.com/dropflyai/video-gateway/internal/interfaces/httpserver/handlers/videohandler"
	"github.com/dropflyai/video-gateway/internal/interfaces/httpserver/routes/v1/video"
)

// testRouter builds the video routes on top of mock-mode adapters, so no
// request leaves the process.
func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		FalBaseURL:        "https://fal.run",
		ReplicateBaseURL:  "https://api.replicate.com/v1",
		GenerationTimeout: time.Second,
		PollInterval:      time.Millisecond,
		PollMaxAttempts:   1,
		ServiceName:       "video-gateway",
	}
	adapters := videogen.NewAdapters(videogen.NewFalClient(cfg), videogen.NewReplicateClient(cfg))
	service := generation.NewService(engine.Default(), adapters, zerolog.Nop())
	handler := videohandler.NewVideoHandler(cfg, service)

	router := gin.New()
	video.NewVideoRoute(handler).RegisterRouter(router.Group("/v1"))
	return router
}

func postGeneration(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/videos/generations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPostGenerationMockMode(t *testing.T) {
	router := testRouter(t)
	w := postGeneration(t, router, `{"prompt":"a sunrise over mountains","tier":"free"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success  bool           `json:"success"`
		VideoURL string         `json:"video_url"`
		Engine   string         `json:"engine"`
		Metadata map[string]any `json:"metadata"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success, body = %s", w.Body.String())
	}
	if resp.Engine != "hailuo-02" {
		t.Errorf("auto-resolved engine = %s, want hailuo-02", resp.Engine)
	}
	if resp.Metadata["mock"] != true {
		t.Error("expected mock marker without credentials")
	}
	if resp.VideoURL == "" {
		t.Error("expected a mock video url")
	}
}

func TestPostGenerationAutoProTier(t *testing.T) {
	router := testRouter(t)
	w := postGeneration(t, router, `{"prompt":"drone shot of a canyon","engine":"auto","tier":"pro"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Success  bool           `json:"success"`
		Engine   string         `json:"engine"`
		Cost     float64        `json:"cost"`
		Metadata map[string]any `json:"metadata"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatal("expected mock-mode success")
	}
	if resp.Engine != "runway-gen4-turbo" {
		t.Errorf("pro auto engine = %s, want runway-gen4-turbo", resp.Engine)
	}
	if resp.Metadata["mock"] != true {
		t.Error("expected mock marker")
	}
	// default 5s at the pro default engine's 0.05/s rate
	if resp.Cost != 0.25 {
		t.Errorf("cost = %v, want 0.25", resp.Cost)
	}
}

func TestPostGenerationTierGate(t *testing.T) {
	router := testRouter(t)
	w := postGeneration(t, router, `{"prompt":"city lights","engine":"veo-3.1","tier":"free"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Success   bool   `json:"success"`
		ErrorCode string `json:"error_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success {
		t.Fatal("free tier should not reach veo-3.1")
	}
	if resp.ErrorCode != "ENGINE_NOT_AVAILABLE" {
		t.Errorf("error_code = %s", resp.ErrorCode)
	}
}

func TestPostGenerationUnknownEngine(t *testing.T) {
	router := testRouter(t)
	w := postGeneration(t, router, `{"prompt":"anything","engine":"imaginary-engine"}`)

	var resp struct {
		ErrorCode string `json:"error_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ErrorCode != "UNKNOWN_ENGINE" {
		t.Errorf("error_code = %s", resp.ErrorCode)
	}
}

func TestPostGenerationMissingPrompt(t *testing.T) {
	router := testRouter(t)
	w := postGeneration(t, router, `{"engine":"auto"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestPostGenerationNegativeDuration(t *testing.T) {
	router := testRouter(t)
	w := postGeneration(t, router, `{"prompt":"a waterfall","duration":-2}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestPostGenerationMalformedBody(t *testing.T) {
	router := testRouter(t)
	w := postGeneration(t, router, `{"prompt": `)

	if w.Code == http.StatusOK {
		t.Fatal("malformed body should not succeed")
	}
}

func TestGetEngines(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/videos/engines?tier=pro", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Tier    string `json:"tier"`
		Default string `json:"default_engine"`
		Engines []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"engines"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Tier != "pro" {
		t.Errorf("tier = %s", resp.Tier)
	}
	if resp.Default != "runway-gen4-turbo" {
		t.Errorf("default engine = %s", resp.Default)
	}
	if len(resp.Engines) == 0 {
		t.Fatal("expected at least one engine")
	}
	for _, e := range resp.Engines {
		if e.Status != "available" {
			t.Errorf("engine %s has status %s in listing", e.ID, e.Status)
		}
	}
}

func TestGetProvidersHealth(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/videos/providers/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Providers map[string]bool `json:"providers"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// Without credentials both adapters report unhealthy.
	if resp.Providers["fal"] || resp.Providers["replicate"] {
		t.Errorf("mock-mode providers should be unhealthy: %v", resp.Providers)
	}
}
