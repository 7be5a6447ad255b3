package core

import (
	"testing"
)

func TestSolveScore(t *testing.T) {
	if got := solveScore(1); got != 2 {
		t.Fatalf("first solve: got %d, want 2", got)
	}
	for n := 2; n <= 5; n++ {
		if got := solveScore(n); got != 1 {
			t.Fatalf("solve %d: got %d, want 1", n, got)
		}
	}
}

func TestRankingOrdersByPointsThenArrival(t *testing.T) {
	g := newTestRegistry(t, testSettings())
	a, _ := g.Join("sala", "ana")
	b, _ := g.Join("sala", "bia")
	c, _ := g.Join("sala", "caio")
	room := g.rooms["sala"]

	room.mu.Lock()
	a.Points, b.Points, c.Points = 1, 3, 3
	ranking := room.rankingLocked()
	room.mu.Unlock()

	want := []RankEntry{{"bia", 3}, {"caio", 3}, {"ana", 1}}
	if len(ranking) != len(want) {
		t.Fatalf("ranking length %d, want %d", len(ranking), len(want))
	}
	for i, e := range want {
		if ranking[i] != e {
			t.Fatalf("ranking[%d] = %+v, want %+v", i, ranking[i], e)
		}
	}
}

func TestRosterFollowsJoinOrder(t *testing.T) {
	g := newTestRegistry(t, testSettings())
	_, _ = g.Join("sala", "ana")
	_, _ = g.Join("sala", "bia")
	room := g.rooms["sala"]

	room.mu.Lock()
	roster := room.rosterLocked()
	room.mu.Unlock()

	if roster[0].Name != "ana" || roster[1].Name != "bia" {
		t.Fatalf("roster out of join order: %+v", roster)
	}
}

func TestLeaderboardCapped(t *testing.T) {
	s := testSettings()
	s.LeaderboardSize = 2
	g := newTestRegistry(t, s)
	a, _ := g.Join("sala", "ana")
	b, _ := g.Join("sala", "bia")
	_, _ = g.Join("sala", "caio")
	room := g.rooms["sala"]

	room.mu.Lock()
	a.Wins, b.Wins = 3, 1
	board := room.leaderboardLocked()
	room.mu.Unlock()

	if len(board) != 2 {
		t.Fatalf("leaderboard length %d, want 2", len(board))
	}
	if board[0] != (WinEntry{"ana", 3}) || board[1] != (WinEntry{"bia", 1}) {
		t.Fatalf("unexpected leaderboard: %+v", board)
	}
}

func TestTallyAllZeroPointsEveryoneWins(t *testing.T) {
	g := newTestRegistry(t, testSettings())
	a, _ := g.Join("sala", "ana")
	b, _ := g.Join("sala", "bia")
	room := g.rooms["sala"]

	room.mu.Lock()
	room.tallyWinnersLocked()
	room.mu.Unlock()

	if a.Wins != 1 || b.Wins != 1 {
		t.Fatalf("zero-point tie should credit everyone: a=%d b=%d", a.Wins, b.Wins)
	}
}
