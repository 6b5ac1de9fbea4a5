package repositories

import (
	"context"
	"errors"

	"github.com/7kevin24/ZJU-SFL/models"
)

// ErrPersistence wraps any failure of the backing table store. The wrapped
// message names the table involved so operators can repair a half-applied
// two-table write by hand.
var ErrPersistence = errors.New("table store operation failed")

// TableStore is the row-table persistence collaborator. Reads always return
// the current full state of all three tables; writes replace an entire named
// table with no row-level or column-level partial update. Concurrent writers
// are last-writer-wins.
type TableStore interface {
	LoadTables(ctx context.Context) (*models.TableSnapshot, error)
	SaveSchedule(ctx context.Context, matches []models.Match) error
	SaveMatchLogs(ctx context.Context, logs []models.BattleLog) error
}
