package service

import (
	"Crewly/dao"
	"Crewly/models"
	"Crewly/types"
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type IMyStatsService interface {
	GetMemberStats(ctx context.Context, memberID, groupID int64) (*types.MemberDashboard, error)
}

// MyStatsService is pure composition: every value on the dashboard comes
// from one of the scoring components, nothing is computed here.
type MyStatsService struct {
	Crew   ICrewScoreService
	Board  IBoardService
	Badges IBadgeService
	Points IPointsService
	Stats  *dao.MemberStats
	Events *dao.Event
}

var _ IMyStatsService = (*MyStatsService)(nil)

func (m *MyStatsService) GetMemberStats(ctx context.Context, memberID, groupID int64) (*types.MemberDashboard, error) {
	dash := &types.MemberDashboard{MemberID: memberID, GroupID: groupID}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		score, err := m.Crew.CalculateMemberCrewScore(gctx, memberID, groupID)
		if err != nil {
			return fmt.Errorf("crew score: %w", err)
		}
		dash.Score = *score
		return nil
	})
	g.Go(func() error {
		board, err := m.Board.GetMonthlyBoardData(gctx, groupID, memberID)
		if err != nil {
			return fmt.Errorf("board standing: %w", err)
		}
		dash.Board = board.Viewer
		return nil
	})
	g.Go(func() error {
		badges, err := m.Badges.ListMemberBadges(gctx, memberID, groupID)
		if err != nil {
			return fmt.Errorf("badges: %w", err)
		}
		dash.Badges = badges
		return nil
	})
	g.Go(func() error {
		milestone, err := m.Badges.NextMilestone(gctx, memberID, groupID)
		if err != nil {
			return fmt.Errorf("milestone: %w", err)
		}
		dash.NextMilestone = milestone
		return nil
	})
	g.Go(func() error {
		breakdown, err := m.Points.MonthlyBreakdown(gctx, memberID, groupID)
		if err != nil {
			return fmt.Errorf("month points: %w", err)
		}
		dash.MonthPoints = *breakdown
		return nil
	})
	g.Go(func() error {
		stats, err := m.Stats.Find(gctx, memberID, groupID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // brand-new member, streak stays zero
			}
			return fmt.Errorf("streak: %w", err)
		}
		dash.Streak = types.StreakInfo{Current: stats.CurrentStreak, Best: stats.BestStreak}
		return nil
	})
	g.Go(func() error {
		next, err := m.Events.NextUpcoming(gctx, groupID, time.Now().UTC())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // no upcoming event is a normal state
			}
			return fmt.Errorf("next event: %w", err)
		}
		dash.NextEvent = eventView(next)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dash, nil
}

func eventView(ev *models.Event) *types.UpcomingEvent {
	return &types.UpcomingEvent{EventID: ev.Id, Title: ev.Title, StartAt: ev.StartAt}
}
