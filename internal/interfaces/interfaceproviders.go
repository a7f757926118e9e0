package interfaces

import (
	"github.com/google/wire"

	"github.com/dropflyai/video-gateway/internal/interfaces/httpserver"
)

var InterfacesProvider = wire.NewSet(
	httpserver.NewHTTPServer,
)
