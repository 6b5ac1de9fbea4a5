package services

import (
	"context"
	"fmt"

	"github.com/7kevin24/ZJU-SFL/league"
	"github.com/7kevin24/ZJU-SFL/models"
	"github.com/7kevin24/ZJU-SFL/repositories"
)

// BattleInput is one sub-battle as submitted from the entry form.
type BattleInput struct {
	HomePlayer string          `json:"home_player"`
	HomeChar   string          `json:"home_char"`
	AwayPlayer string          `json:"away_player"`
	AwayChar   string          `json:"away_char"`
	Sets       league.SetScore `json:"sets"`
}

// RecordMatchInput is a full match submission. Extra is nil unless the
// tie-breaker battle was played.
type RecordMatchInput struct {
	MatchID  string       `json:"-"`
	Vanguard BattleInput  `json:"vanguard"`
	Center   BattleInput  `json:"center"`
	General  BattleInput  `json:"general"`
	Extra    *BattleInput `json:"extra,omitempty"`
}

type RecordMatchResult struct {
	Match      models.Match       `json:"match"`
	BattleLogs []models.BattleLog `json:"battle_logs"`
}

type MatchService interface {
	RecordMatch(ctx context.Context, input RecordMatchInput) (*RecordMatchResult, error)
	ListSchedule(ctx context.Context) ([]models.Match, error)
	PendingMatches(ctx context.Context) ([]models.Match, error)
	GenerateSchedule(ctx context.Context) ([]models.Match, error)
}

type matchService struct {
	store        repositories.TableStore
	hub          *league.Hub
	strictRoster bool
}

// NewMatchService builds the match recorder. hub may be nil when no live
// viewers are wired in. strictRoster rejects submissions naming players
// outside the configured rosters; the lax default matches the original
// sheets, which accepted guest players.
func NewMatchService(store repositories.TableStore, hub *league.Hub, strictRoster bool) MatchService {
	return &matchService{
		store:        store,
		hub:          hub,
		strictRoster: strictRoster,
	}
}

// RecordMatch validates a submission, computes the match score, and persists
// the result. All validation happens before any write. The matchlogs table is
// saved before the schedule table, as two independent calls: a failure
// in between leaves the tables inconsistent and is surfaced as-is, naming the
// table that failed.
func (s *matchService) RecordMatch(ctx context.Context, input RecordMatchInput) (*RecordMatchResult, error) {
	snapshot, err := s.store.LoadTables(ctx)
	if err != nil {
		return nil, err
	}

	match := snapshot.FindMatch(input.MatchID)
	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatch, input.MatchID)
	}

	if s.strictRoster {
		if err := validateRosters(snapshot.Config, match, input); err != nil {
			return nil, err
		}
	}

	var extra *league.SetScore
	if input.Extra != nil {
		extra = &input.Extra.Sets
	}
	score, err := league.Compute(input.Vanguard.Sets, input.Center.Sets, input.General.Sets, extra)
	if err != nil {
		return nil, err
	}

	logs := buildBattleLogs(input, score)

	updated := *match
	updated.Status = models.MatchStatusDone
	homeTotal, awayTotal := score.HomeTotal, score.AwayTotal
	updated.HomeTotalPoints = &homeTotal
	updated.AwayTotalPoints = &awayTotal

	// Resubmission is a full replace: every prior row for this match is
	// dropped before the new set goes in.
	newLogs := make([]models.BattleLog, 0, len(snapshot.MatchLogs)+len(logs))
	for _, entry := range snapshot.MatchLogs {
		if entry.MatchID != input.MatchID {
			newLogs = append(newLogs, entry)
		}
	}
	newLogs = append(newLogs, logs...)

	newSchedule := make([]models.Match, len(snapshot.Schedule))
	copy(newSchedule, snapshot.Schedule)
	for i := range newSchedule {
		if newSchedule[i].MatchID == input.MatchID {
			newSchedule[i] = updated
		}
	}

	if err := s.store.SaveMatchLogs(ctx, newLogs); err != nil {
		return nil, err
	}
	if err := s.store.SaveSchedule(ctx, newSchedule); err != nil {
		return nil, err
	}

	result := &RecordMatchResult{Match: updated, BattleLogs: logs}

	if s.hub != nil {
		s.hub.Broadcast(league.Event{Type: league.EventMatchRecorded, Payload: result})
		s.hub.Broadcast(league.Event{
			Type:    league.EventStandingsUpdated,
			Payload: AggregateStandings(snapshot.Config, newSchedule),
		})
	}

	return result, nil
}

func (s *matchService) ListSchedule(ctx context.Context) ([]models.Match, error) {
	snapshot, err := s.store.LoadTables(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.Schedule, nil
}

func (s *matchService) PendingMatches(ctx context.Context) ([]models.Match, error) {
	snapshot, err := s.store.LoadTables(ctx)
	if err != nil {
		return nil, err
	}
	pending := make([]models.Match, 0)
	for _, match := range snapshot.Schedule {
		if match.Status == models.MatchStatusPending {
			pending = append(pending, match)
		}
	}
	return pending, nil
}

// GenerateSchedule replaces the schedule table with a fresh single
// round-robin over the configured teams. Refused once any result has been
// recorded, since the replace would wipe it.
func (s *matchService) GenerateSchedule(ctx context.Context) ([]models.Match, error) {
	snapshot, err := s.store.LoadTables(ctx)
	if err != nil {
		return nil, err
	}
	if len(snapshot.Config.Teams) == 0 {
		return nil, ErrNoTeamsConfigured
	}
	for _, match := range snapshot.Schedule {
		if match.Status == models.MatchStatusDone {
			return nil, ErrScheduleHasResults
		}
	}

	matches, err := league.GenerateSchedule(snapshot.Config.Teams)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveSchedule(ctx, matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func validateRosters(cfg *models.LeagueConfig, match *models.Match, input RecordMatchInput) error {
	battles := []struct {
		position models.Position
		battle   BattleInput
	}{
		{models.PositionVanguard, input.Vanguard},
		{models.PositionCenter, input.Center},
		{models.PositionGeneral, input.General},
	}
	if input.Extra != nil {
		battles = append(battles, struct {
			position models.Position
			battle   BattleInput
		}{models.PositionExtra, *input.Extra})
	}

	for _, b := range battles {
		// Empty names are allowed on the Extra row, which may record only
		// the winner.
		if b.battle.HomePlayer != "" && !cfg.OnRoster(match.HomeTeam, b.battle.HomePlayer) {
			return fmt.Errorf("%w: %s player %q is not on %s", ErrPlayerNotOnRoster, b.position, b.battle.HomePlayer, match.HomeTeam)
		}
		if b.battle.AwayPlayer != "" && !cfg.OnRoster(match.AwayTeam, b.battle.AwayPlayer) {
			return fmt.Errorf("%w: %s player %q is not on %s", ErrPlayerNotOnRoster, b.position, b.battle.AwayPlayer, match.AwayTeam)
		}
	}
	return nil
}

func buildBattleLogs(input RecordMatchInput, score *league.MatchScore) []models.BattleLog {
	row := func(position models.Position, battle BattleInput) models.BattleLog {
		return models.BattleLog{
			MatchID:    input.MatchID,
			Position:   position,
			HomePlayer: battle.HomePlayer,
			HomeChar:   battle.HomeChar,
			AwayPlayer: battle.AwayPlayer,
			AwayChar:   battle.AwayChar,
			Winner:     score.Winners[position],
			Score:      battle.Sets.String(),
		}
	}

	logs := []models.BattleLog{
		row(models.PositionVanguard, input.Vanguard),
		row(models.PositionCenter, input.Center),
		row(models.PositionGeneral, input.General),
	}
	if score.TieBreakerPlayed {
		logs = append(logs, row(models.PositionExtra, *input.Extra))
	}
	return logs
}
