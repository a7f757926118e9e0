package routes

import (
	"github.com/google/wire"

	"github.com/dropflyai/video-gateway/internal/interfaces/httpserver/handlers/videohandler"
	v1 "github.com/dropflyai/video-gateway/internal/interfaces/httpserver/routes/v1"
	"github.com/dropflyai/video-gateway/internal/interfaces/httpserver/routes/v1/video"
)

var RouteProvider = wire.NewSet(
	// Handlers
	videohandler.NewVideoHandler,

	// Routes
	v1.NewV1Route,
	video.NewVideoRoute,
)
