package services

import (
	"testing"

	"github.com/7kevin24/ZJU-SFL/models"
)

func statsLogs() []models.BattleLog {
	return []models.BattleLog{
		{MatchID: "M1", Position: models.PositionVanguard,
			HomePlayer: "ryu-main", HomeChar: "Ryu", AwayPlayer: "guile-main", AwayChar: "Guile",
			Winner: models.SideHome, Score: "2-0"},
		{MatchID: "M1", Position: models.PositionCenter,
			HomePlayer: "ken-main", HomeChar: "Ken", AwayPlayer: "juri-main", AwayChar: "Juri",
			Winner: models.SideAway, Score: "1-2"},
		{MatchID: "M1", Position: models.PositionGeneral,
			HomePlayer: "ryu-main", HomeChar: "Ryu", AwayPlayer: "juri-main", AwayChar: "Juri",
			Winner: models.SideHome, Score: "3-1"},
		// Extra row recorded winner-only: no players, no characters.
		{MatchID: "M2", Position: models.PositionExtra,
			Winner: models.SideAway, Score: "0-2"},
	}
}

func findCharacter(t *testing.T, stats *models.LeagueStats, name string) models.CharacterStats {
	t.Helper()
	for _, cs := range stats.Characters {
		if cs.Character == name {
			return cs
		}
	}
	t.Fatalf("character %s not found in stats", name)
	return models.CharacterStats{}
}

func findPlayer(t *testing.T, stats *models.LeagueStats, name string) models.PlayerStats {
	t.Helper()
	for _, ps := range stats.Players {
		if ps.Player == name {
			return ps
		}
	}
	t.Fatalf("player %s not found in stats", name)
	return models.PlayerStats{}
}

func TestAggregateStatsCharacters(t *testing.T) {
	stats := AggregateStats(statsLogs())

	ryu := findCharacter(t, stats, "Ryu")
	if ryu.Battles != 2 || ryu.Wins != 2 {
		t.Fatalf("Ryu = %d battles, %d wins, want 2/2", ryu.Battles, ryu.Wins)
	}
	// Vanguard win (10) + General win (20).
	if ryu.TotalPoints != 30 {
		t.Fatalf("Ryu points = %d, want 30", ryu.TotalPoints)
	}
	if ryu.WinRate == nil || *ryu.WinRate != 1.0 {
		t.Fatalf("Ryu win rate = %v, want 1.0", ryu.WinRate)
	}

	juri := findCharacter(t, stats, "Juri")
	if juri.Battles != 2 || juri.Wins != 1 || juri.TotalPoints != 10 {
		t.Fatalf("Juri = %d battles, %d wins, %d points, want 2/1/10", juri.Battles, juri.Wins, juri.TotalPoints)
	}
	if juri.WinRate == nil || *juri.WinRate != 0.5 {
		t.Fatalf("Juri win rate = %v, want 0.5", juri.WinRate)
	}

	// The winner-only Extra row carries no characters; 4 named characters
	// total, nothing for the empty entries.
	if len(stats.Characters) != 4 {
		t.Fatalf("character rows = %d, want 4", len(stats.Characters))
	}
	for _, cs := range stats.Characters {
		if cs.Character == "" {
			t.Fatal("empty character must be excluded from character stats")
		}
	}
}

func TestAggregateStatsPlayers(t *testing.T) {
	stats := AggregateStats(statsLogs())

	ryu := findPlayer(t, stats, "ryu-main")
	if ryu.Battles != 2 || ryu.Wins != 2 {
		t.Fatalf("ryu-main = %d battles, %d wins, want 2/2", ryu.Battles, ryu.Wins)
	}
	guile := findPlayer(t, stats, "guile-main")
	if guile.Battles != 1 || guile.Wins != 0 {
		t.Fatalf("guile-main = %d battles, %d wins, want 1/0", guile.Battles, guile.Wins)
	}
	if guile.WinRate == nil || *guile.WinRate != 0 {
		t.Fatalf("guile-main win rate = %v, want 0", guile.WinRate)
	}
	if len(stats.Players) != 4 {
		t.Fatalf("player rows = %d, want 4", len(stats.Players))
	}
}

func TestAggregateStatsPositions(t *testing.T) {
	stats := AggregateStats(statsLogs())

	if len(stats.Positions) != 4 {
		t.Fatalf("position rows = %d, want 4", len(stats.Positions))
	}

	byPosition := make(map[models.Position]models.PositionStats)
	for _, ps := range stats.Positions {
		byPosition[ps.Position] = ps
	}

	vanguard := byPosition[models.PositionVanguard]
	if vanguard.HomeWins != 1 || vanguard.AwayWins != 0 || vanguard.Battles != 1 {
		t.Fatalf("unexpected vanguard split: %+v", vanguard)
	}
	if vanguard.HomeWinPercentage != 1.0 {
		t.Fatalf("vanguard home win %% = %v, want 1.0", vanguard.HomeWinPercentage)
	}

	extra := byPosition[models.PositionExtra]
	if extra.Battles != 1 || extra.AwayWins != 1 || extra.HomeWinPercentage != 0 {
		t.Fatalf("unexpected extra split: %+v", extra)
	}
}

// A position with no recorded battles reports 0%, and an aggregation over no
// rows at all still yields all four position groups.
func TestAggregateStatsEmpty(t *testing.T) {
	stats := AggregateStats(nil)

	if len(stats.Characters) != 0 || len(stats.Players) != 0 {
		t.Fatalf("expected empty character/player stats, got %d/%d", len(stats.Characters), len(stats.Players))
	}
	if len(stats.Positions) != 4 {
		t.Fatalf("position rows = %d, want 4", len(stats.Positions))
	}
	for _, ps := range stats.Positions {
		if ps.HomeWinPercentage != 0 || ps.Battles != 0 {
			t.Fatalf("empty league position %s reports %+v", ps.Position, ps)
		}
	}
}

// The zero-battle win rate is nil (rendered as N/A), never a division by
// zero. Unreachable through AggregateStats but guarded defensively.
func TestWinRateZeroBattles(t *testing.T) {
	if got := winRate(0, 0); got != nil {
		t.Fatalf("winRate(0, 0) = %v, want nil", *got)
	}
	if got := winRate(1, 2); got == nil || *got != 0.5 {
		t.Fatalf("winRate(1, 2) = %v, want 0.5", got)
	}
}
