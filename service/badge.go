package service

import (
	"Crewly/dao"
	"Crewly/models"
	"Crewly/pkg/log"
	"Crewly/pkg/snowflake"
	"Crewly/types"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// foundingWindow is how long after group creation a join still counts as
// founding.
const foundingWindow = 30 * 24 * time.Hour

type IBadgeService interface {
	CheckAndAwardBadges(ctx context.Context, memberID, groupID int64) ([]types.NewBadge, error)
	ListMemberBadges(ctx context.Context, memberID, groupID int64) ([]types.BadgeView, error)
	NextMilestone(ctx context.Context, memberID, groupID int64) (*types.Milestone, error)
}

type BadgeService struct {
	Badges    *dao.Badge
	Awards    *dao.BadgeAward
	Stats     *dao.MemberStats
	Groups    *dao.Group
	Members   *dao.GroupMember
	PointsLog *dao.PointsLog
	Notifier  Notifier
	Chat      ChatPoster
}

var _ IBadgeService = (*BadgeService)(nil)

// badgeInput is everything a criteria evaluation may look at, fetched once
// per pass.
type badgeInput struct {
	EventsAttended int
	AttendanceRate float64
	MessagesSent   int
	ReactionsGiven int
	GuestConverts  int
	BestStreak     int
	TenureDays     int
	Founding       bool
	ActionCounts   map[models.SpiritAction]int
}

// criteriaMet maps each criteria variant to one comparison against the
// prefetched aggregates. Streaks compare against the best streak so a later
// reset cannot revoke an earned badge.
func criteriaMet(c *models.BadgeCriteria, in badgeInput) bool {
	switch c.Type {
	case models.CriteriaEventsAttended:
		return in.EventsAttended >= c.Threshold
	case models.CriteriaAttendanceRate:
		return in.EventsAttended >= c.MinEvents && in.AttendanceRate >= c.Rate
	case models.CriteriaMessagesSent:
		return in.MessagesSent >= c.Threshold
	case models.CriteriaReactionsGiven:
		return in.ReactionsGiven >= c.Threshold
	case models.CriteriaGuestConverts:
		return in.GuestConverts >= c.Threshold
	case models.CriteriaStreak:
		return in.BestStreak >= c.Threshold
	case models.CriteriaTenureDays:
		return in.TenureDays >= c.Threshold
	case models.CriteriaFoundingMember:
		return in.Founding
	case models.CriteriaSpiritLog:
		return in.ActionCounts[c.Action] >= c.Count
	default:
		return false
	}
}

// criteriaProgress is the fraction of the way toward a criteria, for the
// "next milestone" view. Met criteria report 1.
func criteriaProgress(c *models.BadgeCriteria, in badgeInput) float64 {
	frac := func(have, want float64) float64 {
		if want <= 0 {
			return 1
		}
		if have >= want {
			return 1
		}
		if have < 0 {
			return 0
		}
		return have / want
	}
	switch c.Type {
	case models.CriteriaEventsAttended:
		return frac(float64(in.EventsAttended), float64(c.Threshold))
	case models.CriteriaAttendanceRate:
		p := frac(float64(in.EventsAttended), float64(c.MinEvents))
		return p * frac(in.AttendanceRate, c.Rate)
	case models.CriteriaMessagesSent:
		return frac(float64(in.MessagesSent), float64(c.Threshold))
	case models.CriteriaReactionsGiven:
		return frac(float64(in.ReactionsGiven), float64(c.Threshold))
	case models.CriteriaGuestConverts:
		return frac(float64(in.GuestConverts), float64(c.Threshold))
	case models.CriteriaStreak:
		return frac(float64(in.BestStreak), float64(c.Threshold))
	case models.CriteriaTenureDays:
		return frac(float64(in.TenureDays), float64(c.Threshold))
	case models.CriteriaFoundingMember:
		if in.Founding {
			return 1
		}
		return 0
	case models.CriteriaSpiritLog:
		return frac(float64(in.ActionCounts[c.Action]), float64(c.Count))
	default:
		return 0
	}
}

// CheckAndAwardBadges evaluates every unawarded badge for the member in one
// pass and awards the ones that newly hold. The composite unique index on
// badge_awards makes concurrent passes collapse to a single award per badge.
func (b *BadgeService) CheckAndAwardBadges(ctx context.Context, memberID, groupID int64) ([]types.NewBadge, error) {
	stats, err := b.Stats.Find(ctx, memberID, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // nothing recorded yet, nothing to evaluate
		}
		return nil, fmt.Errorf("load stats: %w", err)
	}

	var (
		catalog []models.Badge
		awarded map[int64]struct{}
		member  *models.GroupMember
		group   *models.Group
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		catalog, err = b.Badges.Catalog(gctx)
		return err
	})
	g.Go(func() (err error) {
		awarded, err = b.Awards.AwardedBadgeIDs(gctx, memberID, groupID)
		return err
	})
	g.Go(func() (err error) {
		member, err = b.Members.Find(gctx, groupID, memberID)
		return err
	})
	g.Go(func() (err error) {
		group, err = b.Groups.Find(gctx, groupID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load badge context: %w", err)
	}

	// decode criteria of the badges still in play and batch the named-action
	// counts only for the actions those badges actually reference
	type pending struct {
		badge    models.Badge
		criteria *models.BadgeCriteria
	}
	var pendings []pending
	actionSet := map[models.SpiritAction]struct{}{}
	for _, badge := range catalog {
		if _, done := awarded[badge.ID]; done {
			continue
		}
		criteria, err := badge.DecodeCriteria()
		if err != nil {
			log.L.Warn("badge has malformed criteria",
				zap.String("slug", badge.Slug), zap.Error(err))
			continue
		}
		if criteria.Type == models.CriteriaSpiritLog {
			actionSet[criteria.Action] = struct{}{}
		}
		pendings = append(pendings, pending{badge: badge, criteria: criteria})
	}
	if len(pendings) == 0 {
		return nil, nil
	}

	actions := make([]models.SpiritAction, 0, len(actionSet))
	for a := range actionSet {
		actions = append(actions, a)
	}
	counts, err := b.PointsLog.CountByActions(ctx, memberID, groupID, actions)
	if err != nil {
		return nil, fmt.Errorf("count spirit-log actions: %w", err)
	}

	now := time.Now().UTC()
	in := badgeInput{
		EventsAttended: stats.EventsAttended,
		AttendanceRate: stats.AttendanceRate,
		MessagesSent:   stats.MessagesSent,
		ReactionsGiven: stats.ReactionsGiven,
		GuestConverts:  stats.GuestConverts,
		BestStreak:     stats.BestStreak,
		TenureDays:     int(now.Sub(member.JoinedAt).Hours() / 24),
		Founding:       member.JoinedAt.Sub(group.CreatedAt) <= foundingWindow,
		ActionCounts:   counts,
	}

	var toAward []models.BadgeAward
	byBadgeID := make(map[int64]models.Badge)
	for _, p := range pendings {
		if !criteriaMet(p.criteria, in) {
			continue
		}
		byBadgeID[p.badge.ID] = p.badge
		toAward = append(toAward, models.BadgeAward{
			ID:        snowflake.GenID(),
			MemberID:  memberID,
			GroupID:   groupID,
			BadgeID:   p.badge.ID,
			AwardedAt: now,
		})
	}
	if len(toAward) == 0 {
		return nil, nil
	}

	inserted, err := b.Awards.InsertAwards(ctx, toAward)
	if err != nil {
		return nil, fmt.Errorf("insert awards: %w", err)
	}

	newBadges := make([]types.NewBadge, 0, len(inserted))
	for _, award := range inserted {
		badge := byBadgeID[award.BadgeID]
		newBadges = append(newBadges, types.NewBadge{
			BadgeID:     badge.ID,
			Slug:        badge.Slug,
			Name:        badge.Name,
			Emoji:       badge.Emoji,
			Description: badge.Description,
		})
		badgesAwardedTotal.Inc()
		b.celebrate(award, badge, group)
	}
	return newBadges, nil
}

// celebrate fires the per-award side effects, each independent of the others.
func (b *BadgeService) celebrate(award models.BadgeAward, badge models.Badge, group *models.Group) {
	memberID := award.MemberID

	fireAndForget("badge push", func(ctx context.Context) error {
		return b.Notifier.SendToMember(ctx, memberID, NotificationPayload{
			Title: fmt.Sprintf("Badge unlocked: %s %s", badge.Emoji, badge.Name),
			Body:  badge.Description,
		}, NotifyCategoryBadge)
	})

	if group.BadgeAnnouncements && group.AnnounceChannelID != 0 {
		awardID := award.ID
		fireAndForget("badge announcement", func(ctx context.Context) error {
			content := fmt.Sprintf("%s Member %d just earned the %q badge!",
				badge.Emoji, memberID, badge.Name)
			if err := b.Chat.PostSystemMessage(ctx, group.AnnounceChannelID, content); err != nil {
				return err
			}
			return b.Awards.MarkAnnounced(ctx, awardID)
		})
	}
}

func (b *BadgeService) ListMemberBadges(ctx context.Context, memberID, groupID int64) ([]types.BadgeView, error) {
	catalog, err := b.Badges.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	awards, err := b.Awards.ByMember(ctx, memberID, groupID)
	if err != nil {
		return nil, err
	}
	awardedAt := make(map[int64]time.Time, len(awards))
	for _, a := range awards {
		awardedAt[a.BadgeID] = a.AwardedAt
	}

	views := make([]types.BadgeView, 0, len(catalog))
	for _, badge := range catalog {
		view := types.BadgeView{
			BadgeID:     badge.ID,
			Slug:        badge.Slug,
			Name:        badge.Name,
			Emoji:       badge.Emoji,
			Description: badge.Description,
			Category:    badge.Category,
		}
		if at, ok := awardedAt[badge.ID]; ok {
			view.Earned = true
			view.AwardedAt = &at
		}
		views = append(views, view)
	}
	return views, nil
}

// NextMilestone picks the unearned badge the member is closest to.
func (b *BadgeService) NextMilestone(ctx context.Context, memberID, groupID int64) (*types.Milestone, error) {
	stats, err := b.Stats.Find(ctx, memberID, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	catalog, err := b.Badges.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	awarded, err := b.Awards.AwardedBadgeIDs(ctx, memberID, groupID)
	if err != nil {
		return nil, err
	}
	member, err := b.Members.Find(ctx, groupID, memberID)
	if err != nil {
		return nil, err
	}
	group, err := b.Groups.Find(ctx, groupID)
	if err != nil {
		return nil, err
	}

	actionSet := map[models.SpiritAction]struct{}{}
	for _, badge := range catalog {
		if _, done := awarded[badge.ID]; done {
			continue
		}
		if c, err := badge.DecodeCriteria(); err == nil && c.Type == models.CriteriaSpiritLog {
			actionSet[c.Action] = struct{}{}
		}
	}
	actions := make([]models.SpiritAction, 0, len(actionSet))
	for a := range actionSet {
		actions = append(actions, a)
	}
	counts, err := b.PointsLog.CountByActions(ctx, memberID, groupID, actions)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	in := badgeInput{
		EventsAttended: stats.EventsAttended,
		AttendanceRate: stats.AttendanceRate,
		MessagesSent:   stats.MessagesSent,
		ReactionsGiven: stats.ReactionsGiven,
		GuestConverts:  stats.GuestConverts,
		BestStreak:     stats.BestStreak,
		TenureDays:     int(now.Sub(member.JoinedAt).Hours() / 24),
		Founding:       member.JoinedAt.Sub(group.CreatedAt) <= foundingWindow,
		ActionCounts:   counts,
	}

	var best *types.Milestone
	for _, badge := range catalog {
		if _, done := awarded[badge.ID]; done {
			continue
		}
		criteria, err := badge.DecodeCriteria()
		if err != nil {
			continue
		}
		progress := criteriaProgress(criteria, in)
		if progress >= 1 {
			continue // met but not yet awarded, the next check pass gets it
		}
		if best == nil || progress > best.Progress {
			best = &types.Milestone{
				Slug:     badge.Slug,
				Name:     badge.Name,
				Emoji:    badge.Emoji,
				Progress: progress,
			}
		}
	}
	return best, nil
}
