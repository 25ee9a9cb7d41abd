package service

import (
	"Crewly/config"
	"Crewly/dao"
	"Crewly/models"
	"Crewly/types"
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

type IBoardService interface {
	GetMonthlyBoardData(ctx context.Context, groupID, requestingMemberID int64) (*types.MonthlyBoard, error)
}

// BoardService recomputes the board from raw rows on every read. Never
// cached: staleness here would be a correctness bug, the ranking has to
// reflect the latest check-in.
type BoardService struct {
	Config  *config.Config
	Events  *dao.Event
	RSVPs   *dao.EventRSVP
	Members *dao.GroupMember
	Stats   *dao.MemberStats
	Groups  *dao.Group
	Users   *dao.Users
}

var _ IBoardService = (*BoardService)(nil)

const boardTopN = 10

// boardCandidate is one member's in-month tally before ranking.
type boardCandidate struct {
	memberID    int64
	attended    int
	available   int
	rate        float64
	spiritMonth int
	hidden      bool
	tier        types.Tier
}

// rankCandidates sorts by attendance rate, ties by monthly spirit points,
// then member id for determinism. Callers pass only qualifying candidates.
func rankCandidates(cands []boardCandidate) {
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].rate != cands[j].rate {
			return cands[i].rate > cands[j].rate
		}
		if cands[i].spiritMonth != cands[j].spiritMonth {
			return cands[i].spiritMonth > cands[j].spiritMonth
		}
		return cands[i].memberID < cands[j].memberID
	})
}

// qualifiesForBoard applies the exclusion rule: a member with no events they
// could have attended, or no attendance at all, never appears, not even at 0%.
func qualifiesForBoard(attended, available int) bool {
	return available > 0 && attended > 0
}

// rankedCandidate pairs a candidate with its overall rank.
type rankedCandidate struct {
	rank int
	cand boardCandidate
}

// splitBoard partitions ranked candidates into the public rows and the
// viewer's own row. Hidden members are never listed publicly but still see
// their own standing; the viewer's row keeps its true overall rank either way.
func splitBoard(cands []boardCandidate, viewerID int64, topN int) (public []rankedCandidate, viewer *rankedCandidate) {
	for i, c := range cands {
		rank := i + 1
		if rank <= topN && !c.hidden {
			public = append(public, rankedCandidate{rank: rank, cand: c})
		}
		if c.memberID == viewerID {
			viewer = &rankedCandidate{rank: rank, cand: c}
		}
	}
	return public, viewer
}

// availableEvents counts in-month events the member could have attended:
// only those starting on/after the join date, so new joiners are never
// scored against a month they missed.
func availableEvents(events []models.Event, joinedAt time.Time) (int, map[int64]struct{}) {
	ids := make(map[int64]struct{})
	for _, ev := range events {
		if !ev.StartAt.Before(joinedAt) {
			ids[ev.Id] = struct{}{}
		}
	}
	return len(ids), ids
}

func (b *BoardService) GetMonthlyBoardData(ctx context.Context, groupID, requestingMemberID int64) (*types.MonthlyBoard, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)
	month := monthStart.Format("2006-01")

	var (
		events  []models.Event
		members []models.GroupMember
		stats   []models.MemberStats
		group   *models.Group
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		events, err = b.Events.InRange(gctx, groupID, monthStart, nextMonth)
		return err
	})
	g.Go(func() (err error) {
		members, err = b.Members.Approved(gctx, groupID)
		return err
	})
	g.Go(func() (err error) {
		stats, err = b.Stats.FindByGroup(gctx, groupID)
		return err
	})
	g.Go(func() (err error) {
		group, err = b.Groups.Find(gctx, groupID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load board inputs: %w", err)
	}

	board := &types.MonthlyBoard{Month: month, Entries: []types.BoardEntry{}}
	if len(events) == 0 {
		return board, nil // no events this month is a valid state, not an error
	}
	board.HasData = true

	eventIDs := make([]int64, 0, len(events))
	for _, ev := range events {
		eventIDs = append(eventIDs, ev.Id)
	}
	checkins, err := b.RSVPs.CheckinsForEvents(ctx, eventIDs)
	if err != nil {
		return nil, fmt.Errorf("load checkins: %w", err)
	}
	checkinsByMember := make(map[int64][]int64)
	for _, c := range checkins {
		checkinsByMember[c.MemberId] = append(checkinsByMember[c.MemberId], c.EventId)
	}

	statsByMember := make(map[int64]models.MemberStats, len(stats))
	for _, s := range stats {
		statsByMember[s.MemberID] = s
	}

	names := ThemeNames(group, b.Config.Scoring.DefaultTierTheme)

	var cands []boardCandidate
	for _, m := range members {
		available, availableIDs := availableEvents(events, m.JoinedAt)
		attended := 0
		for _, evID := range checkinsByMember[m.MemberId] {
			if _, ok := availableIDs[evID]; ok {
				attended++
			}
		}
		if !qualifiesForBoard(attended, available) {
			continue
		}

		cand := boardCandidate{
			memberID:  m.MemberId,
			attended:  attended,
			available: available,
			rate:      float64(attended) / float64(available),
		}
		if s, ok := statsByMember[m.MemberId]; ok {
			cand.hidden = s.HiddenFromBoard
			if s.MonthAnchor == month {
				cand.spiritMonth = s.SpiritMonth
			}
			tenureDays := int(now.Sub(m.JoinedAt).Hours() / 24)
			cand.tier = ResolveTier(pillarsTotal(computePillars(&s, tenureDays)), names)
		} else {
			cand.tier = ResolveTier(0, names)
		}
		cands = append(cands, cand)
	}

	if len(cands) == 0 {
		return board, nil
	}
	rankCandidates(cands)

	var rateSum float64
	for _, c := range cands {
		rateSum += c.rate
	}
	board.Qualifying = len(cands)
	board.GroupAverage = rateSum / float64(len(cands))

	public, viewer := splitBoard(cands, requestingMemberID, boardTopN)

	// resolve display profiles for the rows we will actually show
	profileIDs := make([]int64, 0, len(public)+1)
	for _, rc := range public {
		profileIDs = append(profileIDs, rc.cand.memberID)
	}
	if viewer != nil {
		profileIDs = append(profileIDs, viewer.cand.memberID)
	}
	profiles, err := b.Users.FindByIDs(ctx, profileIDs)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}

	entry := func(rank int, c boardCandidate) types.BoardEntry {
		e := types.BoardEntry{
			Rank:            rank,
			MemberID:        c.memberID,
			AttendanceRate:  c.rate,
			EventsAttended:  c.attended,
			EventsAvailable: c.available,
			SpiritMonth:     c.spiritMonth,
			Tier:            c.tier,
		}
		if p, ok := profiles[c.memberID]; ok {
			e.Nickname = p.Nickname
			e.Avatar = p.Avatar
		}
		return e
	}

	for _, rc := range public {
		board.Entries = append(board.Entries, entry(rc.rank, rc.cand))
	}
	if viewer != nil {
		own := entry(viewer.rank, viewer.cand)
		board.Viewer.Entry = &own
	}
	// no names below the fold, just how many more took part
	board.OthersCount = board.Qualifying - len(board.Entries)
	board.Viewer.GroupAverage = board.GroupAverage

	return board, nil
}
