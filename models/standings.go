package models

// StandingsRow is one team's aggregated league position. Rank starts at 1 and
// follows sorted order; equal-point teams still get distinct ranks.
type StandingsRow struct {
	Rank          int    `json:"rank"`
	Team          string `json:"team"`
	Points        int    `json:"points"`
	MatchesPlayed int    `json:"matches_played"`
}
