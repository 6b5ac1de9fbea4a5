package models

type MatchStatus string

const (
	MatchStatusPending MatchStatus = "Pending"
	MatchStatusDone    MatchStatus = "Done"
)

// Match is one row of the schedule table. HomeTotalPoints/AwayTotalPoints are
// nil until the match has been recorded; Status is Done iff both are set.
type Match struct {
	MatchID         string      `json:"match_id" db:"match_id"`
	HomeTeam        string      `json:"home_team" db:"home_team"`
	AwayTeam        string      `json:"away_team" db:"away_team"`
	Status          MatchStatus `json:"status" db:"status"`
	HomeTotalPoints *int        `json:"home_total_points,omitempty" db:"home_total_points"`
	AwayTotalPoints *int        `json:"away_total_points,omitempty" db:"away_total_points"`
}

func (m *Match) IsDone() bool {
	return m.Status == MatchStatusDone && m.HomeTotalPoints != nil && m.AwayTotalPoints != nil
}
