package server

import (
	"Crewly/handler"
)

type Handlers struct {
	Points     *handler.PointsHandler
	Streaks    *handler.StreakHandler
	Badges     *handler.BadgeHandler
	Board      *handler.BoardHandler
	Health     *handler.HealthHandler
	HallOfFame *handler.HallOfFameHandler
	Stats      *handler.StatsHandler
}
