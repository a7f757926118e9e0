package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/dropflyai/video-gateway/internal/interfaces/httpserver/routes/v1/video"
)

type V1Route struct {
	video *video.VideoRoute
}

func NewV1Route(video *video.VideoRoute) *V1Route {
	return &V1Route{
		video,
	}
}

// RegisterRouter registers all v1 routes under /v1.
func (r *V1Route) RegisterRouter(router gin.IRouter) {
	v1 := router.Group("/v1")
	r.video.RegisterRouter(v1)
}
