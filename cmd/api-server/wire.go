//go:build wireinject
// +build wireinject

package main

import (
	"Crewly/config"
	"Crewly/dao"
	"Crewly/handler"
	"Crewly/pkg/client"
	"Crewly/pkg/database"
	"Crewly/server"
	"Crewly/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		client.NewRedisClient,
		database.NewDB,
		server.NewGinEngine,

		wire.Struct(new(handler.PointsHandler), "*"),
		wire.Struct(new(handler.StreakHandler), "*"),
		wire.Struct(new(handler.BadgeHandler), "*"),
		wire.Struct(new(handler.BoardHandler), "*"),
		wire.Struct(new(handler.HealthHandler), "*"),
		wire.Struct(new(handler.HallOfFameHandler), "*"),
		wire.Struct(new(handler.StatsHandler), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil
}
