package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/7kevin24/ZJU-SFL/models"
	"github.com/7kevin24/ZJU-SFL/repositories"
	"github.com/7kevin24/ZJU-SFL/storage"
)

type ExportedFile struct {
	Table    string `json:"table"`
	Key      string `json:"key"`
	Location string `json:"location"`
}

// ExportService renders the three tables as CSV snapshots and uploads them to
// object storage under a timestamped prefix. Used as an off-site backup of
// the sheet-style store.
type ExportService interface {
	ExportSnapshot(ctx context.Context) ([]ExportedFile, error)
}

type exportService struct {
	store    repositories.TableStore
	uploader storage.FileUploader
}

func NewExportService(store repositories.TableStore, uploader storage.FileUploader) ExportService {
	return &exportService{
		store:    store,
		uploader: uploader,
	}
}

func (s *exportService) ExportSnapshot(ctx context.Context) ([]ExportedFile, error) {
	snapshot, err := s.store.LoadTables(ctx)
	if err != nil {
		return nil, err
	}

	prefix := time.Now().UTC().Format("20060102T150405Z")
	tables := []struct {
		name   string
		render func() ([]byte, error)
	}{
		{"schedule", func() ([]byte, error) { return renderScheduleCSV(snapshot.Schedule) }},
		{"matchlogs", func() ([]byte, error) { return renderMatchLogsCSV(snapshot.MatchLogs) }},
		{"configs", func() ([]byte, error) { return renderConfigsCSV(snapshot.ConfigRows) }},
	}

	exported := make([]ExportedFile, 0, len(tables))
	for _, table := range tables {
		data, err := table.render()
		if err != nil {
			return nil, fmt.Errorf("failed to render %s snapshot: %w", table.name, err)
		}
		key := fmt.Sprintf("exports/%s/%s.csv", prefix, table.name)
		result, err := s.uploader.Upload(ctx, key, "text/csv", bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to upload %s snapshot: %w", table.name, err)
		}
		exported = append(exported, ExportedFile{
			Table:    table.name,
			Key:      result.Key,
			Location: result.Location,
		})
	}
	return exported, nil
}

func renderScheduleCSV(matches []models.Match) ([]byte, error) {
	records := [][]string{
		{"MatchID", "HomeTeam", "AwayTeam", "Status", "HomeTotalPoints", "AwayTotalPoints"},
	}
	for _, match := range matches {
		home, away := "", ""
		if match.HomeTotalPoints != nil {
			home = strconv.Itoa(*match.HomeTotalPoints)
		}
		if match.AwayTotalPoints != nil {
			away = strconv.Itoa(*match.AwayTotalPoints)
		}
		records = append(records, []string{
			match.MatchID, match.HomeTeam, match.AwayTeam, string(match.Status), home, away,
		})
	}
	return renderCSV(records)
}

func renderMatchLogsCSV(logs []models.BattleLog) ([]byte, error) {
	records := [][]string{
		{"MatchID", "Position", "HomePlayer", "HomeChar", "AwayPlayer", "AwayChar", "Winner", "Score"},
	}
	for _, entry := range logs {
		records = append(records, []string{
			entry.MatchID, string(entry.Position),
			entry.HomePlayer, entry.HomeChar,
			entry.AwayPlayer, entry.AwayChar,
			string(entry.Winner), entry.Score,
		})
	}
	return renderCSV(records)
}

func renderConfigsCSV(rows []models.ConfigRow) ([]byte, error) {
	records := [][]string{
		{"Team", "Player", "Character"},
	}
	for _, row := range rows {
		records = append(records, []string{row.Team, row.Player, row.Character})
	}
	return renderCSV(records)
}

func renderCSV(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
