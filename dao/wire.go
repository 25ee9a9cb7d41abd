package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewPointsLog,
	NewMemberStats,
	NewBadge,
	NewBadgeAward,
	NewEvent,
	NewEventRSVP,
	NewGroup,
	NewGroupMember,
	NewGroupHealth,
	NewUsers,
)
