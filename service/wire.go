package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(PointsService), "*"),
	wire.Bind(new(IPointsService), new(*PointsService)),

	wire.Struct(new(StreakService), "*"),
	wire.Bind(new(IStreakService), new(*StreakService)),

	wire.Struct(new(BadgeService), "*"),
	wire.Bind(new(IBadgeService), new(*BadgeService)),

	wire.Struct(new(CrewScoreService), "*"),
	wire.Bind(new(ICrewScoreService), new(*CrewScoreService)),

	wire.Struct(new(BoardService), "*"),
	wire.Bind(new(IBoardService), new(*BoardService)),

	wire.Struct(new(HealthService), "*"),
	wire.Bind(new(IHealthService), new(*HealthService)),

	wire.Struct(new(HallOfFameService), "*"),
	wire.Bind(new(IHallOfFameService), new(*HallOfFameService)),

	wire.Struct(new(MyStatsService), "*"),
	wire.Bind(new(IMyStatsService), new(*MyStatsService)),

	wire.Struct(new(RedisNotifier), "*"),
	wire.Bind(new(Notifier), new(*RedisNotifier)),
	wire.Bind(new(ChatPoster), new(*RedisNotifier)),
)
