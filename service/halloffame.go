package service

import (
	"Crewly/config"
	"Crewly/dao"
	"Crewly/models"
	"Crewly/types"
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	fameMonthWindow = 2 * 365 * 24 * time.Hour
	fameFounderPool = 10
)

type IHallOfFameService interface {
	GetHallOfFameRecords(ctx context.Context, groupID int64) ([]types.HallOfFameRecord, error)
}

type HallOfFameService struct {
	Config  *config.Config
	Stats   *dao.MemberStats
	RSVPs   *dao.EventRSVP
	Members *dao.GroupMember
	Users   *dao.Users
}

var _ IHallOfFameService = (*HallOfFameService)(nil)

// fameCandidate is one member's shot at one record.
type fameCandidate struct {
	memberID   int64
	value      float64
	detail     string
	achievedAt time.Time
}

// pickRecord selects the maximum value; ties resolve by earliest achievement,
// then lowest member id, so reruns are deterministic.
func pickRecord(cands []fameCandidate) *fameCandidate {
	var best *fameCandidate
	for i := range cands {
		c := &cands[i]
		if c.value <= 0 {
			continue
		}
		if best == nil ||
			c.value > best.value ||
			(c.value == best.value && c.achievedAt.Before(best.achievedAt)) ||
			(c.value == best.value && c.achievedAt.Equal(best.achievedAt) && c.memberID < best.memberID) {
			best = c
		}
	}
	return best
}

func (f *HallOfFameService) GetHallOfFameRecords(ctx context.Context, groupID int64) ([]types.HallOfFameRecord, error) {
	now := time.Now().UTC()

	var (
		stats    []models.MemberStats
		monthly  []dao.MonthlyCheckinRecord
		founders []models.GroupMember
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats, err = f.Stats.FindByGroup(gctx, groupID)
		return err
	})
	g.Go(func() (err error) {
		monthly, err = f.RSVPs.CheckinsByMemberMonth(gctx, groupID, now.Add(-fameMonthWindow))
		return err
	})
	g.Go(func() (err error) {
		founders, err = f.Members.FirstJoiners(gctx, groupID, fameFounderPool)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load hall of fame inputs: %w", err)
	}

	statsByMember := make(map[int64]models.MemberStats, len(stats))
	mostEvents := make([]fameCandidate, 0, len(stats))
	highestRate := make([]fameCandidate, 0, len(stats))
	longestStreak := make([]fameCandidate, 0, len(stats))
	mostConverts := make([]fameCandidate, 0, len(stats))
	for _, s := range stats {
		statsByMember[s.MemberID] = s
		mostEvents = append(mostEvents, fameCandidate{
			memberID: s.MemberID, value: float64(s.EventsAttended), achievedAt: s.UpdatedAt,
		})
		if s.EventsAttended >= f.Config.Scoring.FameMinEvents {
			highestRate = append(highestRate, fameCandidate{
				memberID: s.MemberID, value: s.AttendanceRate, achievedAt: s.UpdatedAt,
			})
		}
		longestStreak = append(longestStreak, fameCandidate{
			memberID: s.MemberID, value: float64(s.BestStreak), achievedAt: s.UpdatedAt,
		})
		mostConverts = append(mostConverts, fameCandidate{
			memberID: s.MemberID, value: float64(s.GuestConverts), achievedAt: s.UpdatedAt,
		})
	}

	bestMonth := make([]fameCandidate, 0, len(monthly))
	for _, m := range monthly {
		bestMonth = append(bestMonth, fameCandidate{
			memberID: m.MemberID, value: float64(m.Total), detail: m.Month, achievedAt: m.LastAt,
		})
	}

	// highest crew score among the first ten joiners
	founding := make([]fameCandidate, 0, len(founders))
	for _, m := range founders {
		s, ok := statsByMember[m.MemberId]
		if !ok {
			continue
		}
		tenureDays := int(now.Sub(m.JoinedAt).Hours() / 24)
		founding = append(founding, fameCandidate{
			memberID:   m.MemberId,
			value:      pillarsTotal(computePillars(&s, tenureDays)),
			achievedAt: s.UpdatedAt,
		})
	}

	kinds := []struct {
		kind  string
		cands []fameCandidate
	}{
		{types.RecordMostEvents, mostEvents},
		{types.RecordHighestRate, highestRate},
		{types.RecordBestMonth, bestMonth},
		{types.RecordLongestStreak, longestStreak},
		{types.RecordMostConverts, mostConverts},
		{types.RecordFoundingChampion, founding},
	}

	var records []types.HallOfFameRecord
	var profileIDs []int64
	for _, k := range kinds {
		if winner := pickRecord(k.cands); winner != nil {
			achieved := winner.achievedAt
			records = append(records, types.HallOfFameRecord{
				Kind:       k.kind,
				MemberID:   winner.memberID,
				Value:      winner.value,
				Detail:     winner.detail,
				AchievedAt: &achieved,
			})
			profileIDs = append(profileIDs, winner.memberID)
		}
	}

	profiles, err := f.Users.FindByIDs(ctx, profileIDs)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	for i := range records {
		if p, ok := profiles[records[i].MemberID]; ok {
			records[i].Nickname = p.Nickname
			records[i].Avatar = p.Avatar
		}
	}
	return records, nil
}
