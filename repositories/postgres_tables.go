package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/7kevin24/ZJU-SFL/models"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"
)

type postgresTableStore struct {
	db *sql.DB
}

func NewPostgresTableStore(db *sql.DB) TableStore {
	return &postgresTableStore{db: db}
}

// LoadTables reads all three tables concurrently. Nothing is cached: every
// call reflects the latest committed write.
func (s *postgresTableStore) LoadTables(ctx context.Context) (*models.TableSnapshot, error) {
	var (
		schedule   []models.Match
		matchLogs  []models.BattleLog
		configRows []models.ConfigRow
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		schedule, err = s.loadSchedule(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		matchLogs, err = s.loadMatchLogs(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		configRows, err = s.loadConfigs(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.TableSnapshot{
		Schedule:   schedule,
		MatchLogs:  matchLogs,
		ConfigRows: configRows,
		Config:     models.BuildLeagueConfig(configRows),
	}, nil
}

func (s *postgresTableStore) loadSchedule(ctx context.Context) ([]models.Match, error) {
	query := `
		SELECT match_id, home_team, away_team, status, home_total_points, away_total_points
		FROM schedule
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: load schedule: %w", ErrPersistence, err)
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		var match models.Match
		if scanErr := rows.Scan(
			&match.MatchID,
			&match.HomeTeam,
			&match.AwayTeam,
			&match.Status,
			&match.HomeTotalPoints,
			&match.AwayTotalPoints,
		); scanErr != nil {
			return nil, fmt.Errorf("%w: scan schedule row: %w", ErrPersistence, scanErr)
		}
		matches = append(matches, match)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: load schedule: %w", ErrPersistence, err)
	}
	return matches, nil
}

func (s *postgresTableStore) loadMatchLogs(ctx context.Context) ([]models.BattleLog, error) {
	query := `
		SELECT match_id, position, home_player, home_char, away_player, away_char, winner, score
		FROM matchlogs
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: load matchlogs: %w", ErrPersistence, err)
	}
	defer rows.Close()

	logs := make([]models.BattleLog, 0)
	for rows.Next() {
		var entry models.BattleLog
		if scanErr := rows.Scan(
			&entry.MatchID,
			&entry.Position,
			&entry.HomePlayer,
			&entry.HomeChar,
			&entry.AwayPlayer,
			&entry.AwayChar,
			&entry.Winner,
			&entry.Score,
		); scanErr != nil {
			return nil, fmt.Errorf("%w: scan matchlogs row: %w", ErrPersistence, scanErr)
		}
		logs = append(logs, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: load matchlogs: %w", ErrPersistence, err)
	}
	return logs, nil
}

func (s *postgresTableStore) loadConfigs(ctx context.Context) ([]models.ConfigRow, error) {
	// configs is sparse: any cell may be empty.
	query := `
		SELECT COALESCE(team, ''), COALESCE(player, ''), COALESCE("character", '')
		FROM configs
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: load configs: %w", ErrPersistence, err)
	}
	defer rows.Close()

	configRows := make([]models.ConfigRow, 0)
	for rows.Next() {
		var row models.ConfigRow
		if scanErr := rows.Scan(&row.Team, &row.Player, &row.Character); scanErr != nil {
			return nil, fmt.Errorf("%w: scan configs row: %w", ErrPersistence, scanErr)
		}
		configRows = append(configRows, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: load configs: %w", ErrPersistence, err)
	}
	return configRows, nil
}

// SaveSchedule replaces the entire schedule table. The delete and inserts run
// in one transaction so a reader never observes a half-written table, but
// there is no coordination with SaveMatchLogs: the two tables are independent
// writes.
func (s *postgresTableStore) SaveSchedule(ctx context.Context, matches []models.Match) error {
	return s.replaceTable(ctx, "schedule", func(tx *sql.Tx) error {
		query := `
			INSERT INTO schedule (match_id, home_team, away_team, status, home_total_points, away_total_points)
			VALUES ($1, $2, $3, $4, $5, $6)`
		for _, match := range matches {
			if _, err := tx.ExecContext(ctx, query,
				match.MatchID,
				match.HomeTeam,
				match.AwayTeam,
				match.Status,
				match.HomeTotalPoints,
				match.AwayTotalPoints,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveMatchLogs replaces the entire matchlogs table.
func (s *postgresTableStore) SaveMatchLogs(ctx context.Context, logs []models.BattleLog) error {
	return s.replaceTable(ctx, "matchlogs", func(tx *sql.Tx) error {
		query := `
			INSERT INTO matchlogs (match_id, position, home_player, home_char, away_player, away_char, winner, score)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
		for _, entry := range logs {
			if _, err := tx.ExecContext(ctx, query,
				entry.MatchID,
				entry.Position,
				entry.HomePlayer,
				entry.HomeChar,
				entry.AwayPlayer,
				entry.AwayChar,
				entry.Winner,
				entry.Score,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *postgresTableStore) replaceTable(ctx context.Context, table string, insert func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin replace of %s: %w", ErrPersistence, table, err)
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: clear %s: %w", ErrPersistence, table, err)
	}
	if err := insert(tx); err != nil {
		tx.Rollback()
		return fmt.Errorf("%w: insert into %s: %w", ErrPersistence, table, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit replace of %s: %w", ErrPersistence, table, err)
	}
	return nil
}
