package models

type Position string

const (
	PositionVanguard Position = "Vanguard"
	PositionCenter   Position = "Center"
	PositionGeneral  Position = "General"
	PositionExtra    Position = "Extra"
)

type Side string

const (
	SideHome Side = "Home"
	SideAway Side = "Away"
)

// BattleLog is one row of the matchlogs table: a single sub-battle inside a
// match. Score is the literal "{homeSets}-{awaySets}" string. Player and
// character fields may be empty on an Extra row when only the winner was
// recorded.
type BattleLog struct {
	MatchID    string   `json:"match_id" db:"match_id"`
	Position   Position `json:"position" db:"position"`
	HomePlayer string   `json:"home_player" db:"home_player"`
	HomeChar   string   `json:"home_char" db:"home_char"`
	AwayPlayer string   `json:"away_player" db:"away_player"`
	AwayChar   string   `json:"away_char" db:"away_char"`
	Winner     Side     `json:"winner" db:"winner"`
	Score      string   `json:"score" db:"score"`
}
