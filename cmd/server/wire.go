//go:build wireinject

package main

import (
	"github.com/dropflyai/video-gateway/internal/domain"
	"github.com/dropflyai/video-gateway/internal/infrastructure"
	"github.com/dropflyai/video-gateway/internal/interfaces"
	"github.com/dropflyai/video-gateway/internal/interfaces/httpserver/routes"

	"github.com/google/wire"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.InfrastructureProvider,
		routes.RouteProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
