package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strings"
	"testing"

	"github.com/7kevin24/ZJU-SFL/models"
	"github.com/7kevin24/ZJU-SFL/storage"
)

type mockUploader struct {
	uploads map[string][]byte
}

func (m *mockUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if m.uploads == nil {
		m.uploads = make(map[string][]byte)
	}
	m.uploads[key] = data
	return &storage.UploadResult{Key: key, Location: "https://cdn.example/" + key}, nil
}

func (m *mockUploader) Delete(ctx context.Context, key string) error { return nil }

func (m *mockUploader) GetPublicURL(key string) string { return "https://cdn.example/" + key }

func TestExportSnapshot(t *testing.T) {
	points, other := 30, 10
	snapshot := &models.TableSnapshot{
		Schedule: []models.Match{
			{MatchID: "M1", HomeTeam: "Alpha", AwayTeam: "Bravo", Status: models.MatchStatusDone,
				HomeTotalPoints: &points, AwayTotalPoints: &other},
			{MatchID: "M2", HomeTeam: "Charlie", AwayTeam: "Alpha", Status: models.MatchStatusPending},
		},
		MatchLogs: []models.BattleLog{
			{MatchID: "M1", Position: models.PositionVanguard, HomePlayer: "ryu-main", HomeChar: "Ryu",
				AwayPlayer: "guile-main", AwayChar: "Guile", Winner: models.SideHome, Score: "2-0"},
		},
		ConfigRows: []models.ConfigRow{
			{Team: "Alpha", Player: "ryu-main"},
			{Character: "Ryu"},
		},
	}
	store := &mockTableStore{snapshot: snapshot}
	uploader := &mockUploader{}
	svc := NewExportService(store, uploader)

	exported, err := svc.ExportSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(exported) != 3 {
		t.Fatalf("exported %d files, want 3", len(exported))
	}

	wantHeaders := map[string][]string{
		"schedule":  {"MatchID", "HomeTeam", "AwayTeam", "Status", "HomeTotalPoints", "AwayTotalPoints"},
		"matchlogs": {"MatchID", "Position", "HomePlayer", "HomeChar", "AwayPlayer", "AwayChar", "Winner", "Score"},
		"configs":   {"Team", "Player", "Character"},
	}

	for _, file := range exported {
		data, ok := uploader.uploads[file.Key]
		if !ok {
			t.Fatalf("no upload recorded for key %s", file.Key)
		}
		records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		if err != nil {
			t.Fatalf("exported %s is not valid CSV: %v", file.Table, err)
		}
		header := wantHeaders[file.Table]
		if strings.Join(records[0], ",") != strings.Join(header, ",") {
			t.Fatalf("%s header = %v, want %v", file.Table, records[0], header)
		}
	}

	scheduleRecords, err := csv.NewReader(bytes.NewReader(uploader.uploads[exported[0].Key])).ReadAll()
	if err != nil {
		t.Fatalf("failed to reread schedule CSV: %v", err)
	}
	if scheduleRecords[1][4] != "30" || scheduleRecords[1][5] != "10" {
		t.Fatalf("done match totals = %v, want 30/10", scheduleRecords[1][4:6])
	}
	if scheduleRecords[2][4] != "" || scheduleRecords[2][5] != "" {
		t.Fatalf("pending match totals should be empty, got %v", scheduleRecords[2][4:6])
	}
}
