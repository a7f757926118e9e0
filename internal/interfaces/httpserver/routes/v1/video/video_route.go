package video

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dropflyai/video-gateway/internal/domain/engine"
	"github.com/dropflyai/video-gateway/internal/interfaces/httpserver/handlers/videohandler"
	videorequest "github.com/dropflyai/video-gateway/internal/interfaces/httpserver/requests/video"
	"github.com/dropflyai/video-gateway/internal/interfaces/httpserver/responses"
	"github.com/dropflyai/video-gateway/internal/utils/platformerrors"
)

// VideoRoute handles video generation routes.
type VideoRoute struct {
	videoHandler *videohandler.VideoHandler
}

// NewVideoRoute creates a new VideoRoute instance.
func NewVideoRoute(videoHandler *videohandler.VideoHandler) *VideoRoute {
	return &VideoRoute{
		videoHandler: videoHandler,
	}
}

// RegisterRouter registers the video routes.
func (r *VideoRoute) RegisterRouter(router gin.IRouter) {
	videos := router.Group("/videos")
	{
		videos.POST("/generations", r.PostGeneration)
		videos.GET("/engines", r.GetEngines)
		videos.GET("/providers/health", r.GetProvidersHealth)
	}
}

// PostGeneration
// @Summary Create video generation
// @Description Generates a video from a text prompt. The engine field selects a
// @Description specific engine, or "auto" to pick the best engine for the tier.
// @Description Generation failures are reported in the response body with an
// @Description error code rather than an HTTP error status.
// @Tags Videos API
// @Accept json
// @Produce json
// @Param request body videorequest.GenerateVideoRequest true "Video generation request"
// @Success 200 {object} videoresponse.VideoGenerationResponse "Generation outcome"
// @Failure 400 {object} responses.ErrorResponse "Invalid request payload or validation error"
// @Router /v1/videos/generations [post]
func (r *VideoRoute) PostGeneration(reqCtx *gin.Context) {
	var request videorequest.GenerateVideoRequest
	if err := reqCtx.ShouldBindJSON(&request); err != nil {
		responses.HandleError(reqCtx, err, "Invalid request body")
		return
	}

	if request.Prompt == "" {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "prompt is required", "video-validation-001")
		return
	}
	if request.DurationSeconds < 0 {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "duration must be positive", "video-validation-002")
		return
	}
	request.ApplyDefaults()

	result, err := r.videoHandler.GenerateVideo(reqCtx.Request.Context(), reqCtx, request)
	if err != nil {
		responses.HandleError(reqCtx, err, "Video generation failed")
		return
	}

	reqCtx.JSON(http.StatusOK, result)
}

// GetEngines
// @Summary List available engines
// @Description Lists the engines the given tier can invoke, plus the engine the
// @Description auto selector would pick for that tier.
// @Tags Videos API
// @Produce json
// @Param tier query string false "Subscription tier (free, starter, pro, enterprise)" default(free)
// @Success 200 {object} videoresponse.EngineListResponse "Engine listing"
// @Router /v1/videos/engines [get]
func (r *VideoRoute) GetEngines(reqCtx *gin.Context) {
	tier := engine.ParseTier(reqCtx.Query("tier"))
	reqCtx.JSON(http.StatusOK, r.videoHandler.ListEngines(tier))
}

// GetProvidersHealth
// @Summary Check provider health
// @Description Probes each configured provider adapter. Adapters without
// @Description credentials report unhealthy.
// @Tags Videos API
// @Produce json
// @Success 200 {object} videoresponse.ProviderHealthResponse "Provider health map"
// @Router /v1/videos/providers/health [get]
func (r *VideoRoute) GetProvidersHealth(reqCtx *gin.Context) {
	reqCtx.JSON(http.StatusOK, r.videoHandler.ProvidersHealth(reqCtx.Request.Context()))
}
