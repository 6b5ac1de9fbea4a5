package models

// CharacterStats aggregates every logged appearance of one character, home
// and away sides counted separately. WinRate is nil when Battles is zero.
type CharacterStats struct {
	Character   string   `json:"character"`
	Battles     int      `json:"battles"`
	Wins        int      `json:"wins"`
	TotalPoints int      `json:"total_points"`
	WinRate     *float64 `json:"win_rate"`
}

type PlayerStats struct {
	Player  string   `json:"player"`
	Battles int      `json:"battles"`
	Wins    int      `json:"wins"`
	WinRate *float64 `json:"win_rate"`
}

// PositionStats is the home/away win split for one sub-battle position.
// HomeWinPercentage is 0 when no battles were recorded at the position.
type PositionStats struct {
	Position          Position `json:"position"`
	HomeWins          int      `json:"home_wins"`
	AwayWins          int      `json:"away_wins"`
	Battles           int      `json:"battles"`
	HomeWinPercentage float64  `json:"home_win_percentage"`
}

type LeagueStats struct {
	Characters []CharacterStats `json:"character_stats"`
	Players    []PlayerStats    `json:"player_stats"`
	Positions  []PositionStats  `json:"position_stats"`
}
