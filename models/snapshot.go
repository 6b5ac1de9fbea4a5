package models

// TableSnapshot is one full read of the three backing tables. The store has
// no partial-update primitive, so every core operation works against a fresh
// snapshot and writes whole tables back.
type TableSnapshot struct {
	Schedule   []Match
	MatchLogs  []BattleLog
	ConfigRows []ConfigRow
	Config     *LeagueConfig
}

// FindMatch returns the schedule row with the given id, or nil.
func (s *TableSnapshot) FindMatch(matchID string) *Match {
	for i := range s.Schedule {
		if s.Schedule[i].MatchID == matchID {
			return &s.Schedule[i]
		}
	}
	return nil
}
