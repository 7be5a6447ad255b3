package core

import (
	"sort"

	"github.com/samber/lo"
)

// solveScore returns the points for the solvedCount-th solved word of a
// round: 2 for the first, 1 after.
func solveScore(solvedCount int) int {
	if solvedCount == 1 {
		return 2
	}
	return 1
}

// playersInJoinOrderLocked returns players ordered by arrival, the
// tie-break for every displayed ranking.
func (r *Room) playersInJoinOrderLocked() []*Player {
	ps := lo.Values(r.players)
	sort.Slice(ps, func(i, j int) bool { return ps[i].joinSeq < ps[j].joinSeq })
	return ps
}

func (r *Room) rosterLocked() []RosterEntry {
	return lo.Map(r.playersInJoinOrderLocked(), func(p *Player, _ int) RosterEntry {
		return RosterEntry{Name: p.Name, Points: p.Points, Wins: p.Wins}
	})
}

// rankingLocked orders players by current-match points, ties by arrival.
func (r *Room) rankingLocked() []RankEntry {
	ps := r.playersInJoinOrderLocked()
	sort.SliceStable(ps, func(i, j int) bool { return ps[i].Points > ps[j].Points })
	return lo.Map(ps, func(p *Player, _ int) RankEntry {
		return RankEntry{Name: p.Name, Points: p.Points}
	})
}

// leaderboardLocked orders players by cumulative wins, ties by arrival,
// capped to the configured display size.
func (r *Room) leaderboardLocked() []WinEntry {
	ps := r.playersInJoinOrderLocked()
	sort.SliceStable(ps, func(i, j int) bool { return ps[i].Wins > ps[j].Wins })
	if n := r.settings.LeaderboardSize; n > 0 && len(ps) > n {
		ps = ps[:n]
	}
	return lo.Map(ps, func(p *Player, _ int) WinEntry {
		return WinEntry{Name: p.Name, Wins: p.Wins}
	})
}

// tallyWinnersLocked increments the win counter of every player whose
// points equal the room maximum. Applied at most once per match; the
// flag guards the two call paths into match end.
func (r *Room) tallyWinnersLocked() {
	if r.winnersTallied || len(r.players) == 0 {
		return
	}
	top := lo.MaxBy(lo.Values(r.players), func(a, b *Player) bool { return a.Points > b.Points }).Points
	for _, p := range r.players {
		if p.Points == top {
			p.Wins++
		}
	}
	r.winnersTallied = true
}
