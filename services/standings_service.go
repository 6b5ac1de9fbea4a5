package services

import (
	"context"
	"sort"

	"github.com/7kevin24/ZJU-SFL/models"
	"github.com/7kevin24/ZJU-SFL/repositories"
)

type StandingsService interface {
	Standings(ctx context.Context) ([]models.StandingsRow, error)
}

type standingsService struct {
	store repositories.TableStore
}

func NewStandingsService(store repositories.TableStore) StandingsService {
	return &standingsService{store: store}
}

// Standings recomputes the league table from the full match history on every
// call; nothing is cached.
func (s *standingsService) Standings(ctx context.Context) ([]models.StandingsRow, error) {
	snapshot, err := s.store.LoadTables(ctx)
	if err != nil {
		return nil, err
	}
	return AggregateStandings(snapshot.Config, snapshot.Schedule), nil
}

// AggregateStandings folds every Done match into a per-team row: a team earns
// its HomeTotalPoints where it played home and its AwayTotalPoints where it
// played away. Rows sort descending by points; ties keep the configs-table
// team order (the store carries no round-level data, so a battle or round
// differential tie-break is not computable). Ranks are consecutive from 1,
// equal points included.
func AggregateStandings(cfg *models.LeagueConfig, matches []models.Match) []models.StandingsRow {
	index := make(map[string]*models.StandingsRow, len(cfg.Teams))
	rows := make([]models.StandingsRow, len(cfg.Teams))
	for i, team := range cfg.Teams {
		rows[i] = models.StandingsRow{Team: team}
		index[team] = &rows[i]
	}

	for _, match := range matches {
		if !match.IsDone() {
			continue
		}
		if home := index[match.HomeTeam]; home != nil {
			home.Points += *match.HomeTotalPoints
			home.MatchesPlayed++
		}
		if away := index[match.AwayTeam]; away != nil {
			away.Points += *match.AwayTotalPoints
			away.MatchesPlayed++
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Points > rows[j].Points
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}
