package models

// ConfigRow is one row of the sparse configs table. Any subset of the three
// columns may be populated: a Team/Player pair declares roster membership, a
// bare Team registers the team, and the Character column independently
// enumerates the playable roster.
type ConfigRow struct {
	Team      string `json:"team" db:"team"`
	Player    string `json:"player" db:"player"`
	Character string `json:"character" db:"character"`
}

// LeagueConfig is the configs table folded into lookup form. Teams preserves
// first-appearance order, which also fixes the standings tie-break order.
type LeagueConfig struct {
	Teams      []string            `json:"teams"`
	Rosters    map[string][]string `json:"rosters"`
	Characters []string            `json:"characters"`
}

// BuildLeagueConfig folds raw config rows, dropping empty cells and
// duplicate entries.
func BuildLeagueConfig(rows []ConfigRow) *LeagueConfig {
	cfg := &LeagueConfig{
		Rosters: make(map[string][]string),
	}
	seenTeam := make(map[string]bool)
	seenChar := make(map[string]bool)

	for _, row := range rows {
		if row.Team != "" && !seenTeam[row.Team] {
			seenTeam[row.Team] = true
			cfg.Teams = append(cfg.Teams, row.Team)
		}
		if row.Team != "" && row.Player != "" {
			cfg.Rosters[row.Team] = append(cfg.Rosters[row.Team], row.Player)
		}
		if row.Character != "" && !seenChar[row.Character] {
			seenChar[row.Character] = true
			cfg.Characters = append(cfg.Characters, row.Character)
		}
	}
	return cfg
}

// OnRoster reports whether player is a configured member of team.
func (c *LeagueConfig) OnRoster(team, player string) bool {
	for _, p := range c.Rosters[team] {
		if p == player {
			return true
		}
	}
	return false
}
