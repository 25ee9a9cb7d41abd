package service

import (
	"Crewly/config"
	"Crewly/dao"
	"Crewly/models"
	"Crewly/types"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Pillar maxima. Loyalty 40%, Spirit 30%, Adventure 15%, Legacy 15%.
const (
	loyaltyMax   = 400.0
	spiritMax    = 300.0
	adventureMax = 150.0
	legacyMax    = 150.0
	crewScoreMax = 1000.0
)

type ICrewScoreService interface {
	CalculateMemberCrewScore(ctx context.Context, memberID, groupID int64) (*types.CrewScore, error)
}

type CrewScoreService struct {
	Config  *config.Config
	Stats   *dao.MemberStats
	Groups  *dao.Group
	Members *dao.GroupMember
}

var _ ICrewScoreService = (*CrewScoreService)(nil)

// ratio clamps have/want into [0,1]; saturating, so every pillar component
// is monotonic non-decreasing and bounded.
func ratio(have, want float64) float64 {
	if want <= 0 || have <= 0 {
		return 0
	}
	if have >= want {
		return 1
	}
	return have / want
}

// loyaltyScore: attendance consistency first, raw volume second.
func loyaltyScore(attendanceRate float64, eventsAttended int) float64 {
	return ratio(attendanceRate, 1)*250 + ratio(float64(eventsAttended), 50)*150
}

// spiritScore: cumulative spirit points plus message activity.
func spiritScore(spiritTotal, messagesSent int) float64 {
	return ratio(float64(spiritTotal), 1000)*200 + ratio(float64(messagesSent), 200)*100
}

// adventureScore: the best streak ever held plus event count.
func adventureScore(bestStreak, eventsAttended int) float64 {
	return ratio(float64(bestStreak), 10)*100 + ratio(float64(eventsAttended), 30)*50
}

// legacyScore: tenure plus guests turned members. Two years of tenure and
// five conversions saturate it.
func legacyScore(tenureDays, guestConverts int) float64 {
	return ratio(float64(tenureDays), 730)*100 + ratio(float64(guestConverts), 5)*50
}

// computePillars is the pure core: stats snapshot in, pillar breakdown out.
func computePillars(stats *models.MemberStats, tenureDays int) types.Pillars {
	return types.Pillars{
		Loyalty:   min(loyaltyScore(stats.AttendanceRate, stats.EventsAttended), loyaltyMax),
		Spirit:    min(spiritScore(stats.SpiritTotal, stats.MessagesSent), spiritMax),
		Adventure: min(adventureScore(stats.BestStreak, stats.EventsAttended), adventureMax),
		Legacy:    min(legacyScore(tenureDays, stats.GuestConverts), legacyMax),
	}
}

func pillarsTotal(p types.Pillars) float64 {
	return min(p.Loyalty+p.Spirit+p.Adventure+p.Legacy, crewScoreMax)
}

func (c *CrewScoreService) CalculateMemberCrewScore(ctx context.Context, memberID, groupID int64) (*types.CrewScore, error) {
	stats, err := c.Stats.Find(ctx, memberID, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			stats = &models.MemberStats{MemberID: memberID, GroupID: groupID}
		} else {
			return nil, fmt.Errorf("load stats: %w", err)
		}
	}
	member, err := c.Members.Find(ctx, groupID, memberID)
	if err != nil {
		return nil, fmt.Errorf("load membership: %w", err)
	}
	group, err := c.Groups.Find(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("load group: %w", err)
	}

	tenureDays := int(time.Now().UTC().Sub(member.JoinedAt).Hours() / 24)
	pillars := computePillars(stats, tenureDays)
	total := pillarsTotal(pillars)

	return &types.CrewScore{
		Pillars: pillars,
		Total:   total,
		Tier:    ResolveTier(total, ThemeNames(group, c.Config.Scoring.DefaultTierTheme)),
	}, nil
}
