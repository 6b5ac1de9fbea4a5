package services

import (
	"context"

	"github.com/7kevin24/ZJU-SFL/league"
	"github.com/7kevin24/ZJU-SFL/models"
	"github.com/7kevin24/ZJU-SFL/repositories"
)

type StatsService interface {
	Stats(ctx context.Context) (*models.LeagueStats, error)
}

type statsService struct {
	store repositories.TableStore
}

func NewStatsService(store repositories.TableStore) StatsService {
	return &statsService{store: store}
}

func (s *statsService) Stats(ctx context.Context) (*models.LeagueStats, error) {
	snapshot, err := s.store.LoadTables(ctx)
	if err != nil {
		return nil, err
	}
	return AggregateStats(snapshot.MatchLogs), nil
}

// participant is one battle-log row seen from one side's perspective.
type participant struct {
	player    string
	character string
	position  models.Position
	isWin     bool
}

// AggregateStats flattens every battle-log row into its two participant
// records and groups them by character, player, and position. Records with an
// empty character (an Extra row where only the winner was entered) are left
// out of the character stats; likewise empty players for the player stats.
func AggregateStats(logs []models.BattleLog) *models.LeagueStats {
	stats := &models.LeagueStats{
		Characters: make([]models.CharacterStats, 0),
		Players:    make([]models.PlayerStats, 0),
	}

	charIndex := make(map[string]int)
	playerIndex := make(map[string]int)
	positionIndex := make(map[models.Position]int, 4)
	for _, position := range []models.Position{
		models.PositionVanguard,
		models.PositionCenter,
		models.PositionGeneral,
		models.PositionExtra,
	} {
		positionIndex[position] = len(stats.Positions)
		stats.Positions = append(stats.Positions, models.PositionStats{Position: position})
	}

	for _, entry := range logs {
		sides := []participant{
			{entry.HomePlayer, entry.HomeChar, entry.Position, entry.Winner == models.SideHome},
			{entry.AwayPlayer, entry.AwayChar, entry.Position, entry.Winner == models.SideAway},
		}

		for _, p := range sides {
			if p.character != "" {
				i, ok := charIndex[p.character]
				if !ok {
					i = len(stats.Characters)
					charIndex[p.character] = i
					stats.Characters = append(stats.Characters, models.CharacterStats{Character: p.character})
				}
				stats.Characters[i].Battles++
				if p.isWin {
					stats.Characters[i].Wins++
					stats.Characters[i].TotalPoints += league.PointsTable[p.position]
				}
			}

			if p.player != "" {
				i, ok := playerIndex[p.player]
				if !ok {
					i = len(stats.Players)
					playerIndex[p.player] = i
					stats.Players = append(stats.Players, models.PlayerStats{Player: p.player})
				}
				stats.Players[i].Battles++
				if p.isWin {
					stats.Players[i].Wins++
				}
			}
		}

		pos := &stats.Positions[positionIndex[entry.Position]]
		pos.Battles++
		if entry.Winner == models.SideHome {
			pos.HomeWins++
		} else {
			pos.AwayWins++
		}
	}

	for i := range stats.Characters {
		stats.Characters[i].WinRate = winRate(stats.Characters[i].Wins, stats.Characters[i].Battles)
	}
	for i := range stats.Players {
		stats.Players[i].WinRate = winRate(stats.Players[i].Wins, stats.Players[i].Battles)
	}
	for i := range stats.Positions {
		if stats.Positions[i].Battles > 0 {
			stats.Positions[i].HomeWinPercentage = float64(stats.Positions[i].HomeWins) / float64(stats.Positions[i].Battles)
		}
	}
	return stats
}

// winRate is nil (reported as N/A) rather than a division by zero when no
// battles were recorded.
func winRate(wins, battles int) *float64 {
	if battles == 0 {
		return nil
	}
	rate := float64(wins) / float64(battles)
	return &rate
}
