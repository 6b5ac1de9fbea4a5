package league

import (
	"errors"
	"fmt"

	"github.com/7kevin24/ZJU-SFL/models"
)

var (
	// ErrMalformedScore covers any sub-battle score that does not yield a
	// definitive winner: tied set counts or sets outside the position's cap.
	ErrMalformedScore = errors.New("malformed sub-battle score")

	// ErrMissingTieBreaker is returned when the three regular battles end
	// 20-20 and no usable Extra battle result was supplied.
	ErrMissingTieBreaker = errors.New("match tied 20-20, an Extra battle result is required")
)

// PointsTable maps each sub-battle position to the points its winner earns.
// Fixed by the SFL ruleset, never derived from input.
var PointsTable = map[models.Position]int{
	models.PositionVanguard: 10,
	models.PositionCenter:   10,
	models.PositionGeneral:  20,
	models.PositionExtra:    10,
}

// maxSets is the first-to-N set cap per position: Vanguard/Center/Extra are
// best-of-3, General is best-of-5.
var maxSets = map[models.Position]int{
	models.PositionVanguard: 2,
	models.PositionCenter:   2,
	models.PositionGeneral:  3,
	models.PositionExtra:    2,
}

// SetScore is one sub-battle's recorded set counts.
type SetScore struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

func (s SetScore) String() string {
	return fmt.Sprintf("%d-%d", s.Home, s.Away)
}

func (s SetScore) winner() models.Side {
	if s.Home > s.Away {
		return models.SideHome
	}
	return models.SideAway
}

// MatchScore is the outcome of one full match computation.
type MatchScore struct {
	HomeTotal        int
	AwayTotal        int
	Winners          map[models.Position]models.Side
	TieBreakerPlayed bool
}

// Compute turns the three mandatory sub-battle scores, plus an optional Extra
// battle, into match totals. The regular battles always partition 40 points;
// a 20-20 split demands an Extra battle worth a further 10, so final totals
// sum to 40 or 50 and are never equal.
func Compute(vanguard, center, general SetScore, extra *SetScore) (*MatchScore, error) {
	regular := []struct {
		position models.Position
		score    SetScore
	}{
		{models.PositionVanguard, vanguard},
		{models.PositionCenter, center},
		{models.PositionGeneral, general},
	}

	result := &MatchScore{
		Winners: make(map[models.Position]models.Side, 4),
	}

	for _, battle := range regular {
		if err := validateScore(battle.position, battle.score); err != nil {
			return nil, err
		}
		winner := battle.score.winner()
		result.Winners[battle.position] = winner
		if winner == models.SideHome {
			result.HomeTotal += PointsTable[battle.position]
		} else {
			result.AwayTotal += PointsTable[battle.position]
		}
	}

	if result.HomeTotal != result.AwayTotal {
		if extra != nil {
			return nil, fmt.Errorf("%w: Extra battle supplied but the match is not tied (%d-%d)",
				ErrMalformedScore, result.HomeTotal, result.AwayTotal)
		}
		return result, nil
	}

	// 20-20: the tie-breaker decides the match.
	if extra == nil {
		return nil, ErrMissingTieBreaker
	}
	if err := validateScore(models.PositionExtra, *extra); err != nil {
		return nil, err
	}
	winner := extra.winner()
	result.Winners[models.PositionExtra] = winner
	result.TieBreakerPlayed = true
	if winner == models.SideHome {
		result.HomeTotal += PointsTable[models.PositionExtra]
	} else {
		result.AwayTotal += PointsTable[models.PositionExtra]
	}

	if result.HomeTotal == result.AwayTotal {
		return nil, fmt.Errorf("score computation produced equal totals %d-%d after tie-breaker",
			result.HomeTotal, result.AwayTotal)
	}
	return result, nil
}

func validateScore(position models.Position, score SetScore) error {
	limit := maxSets[position]
	if score.Home < 0 || score.Away < 0 || score.Home > limit || score.Away > limit {
		return fmt.Errorf("%w: %s sets %s outside 0-%d", ErrMalformedScore, position, score, limit)
	}
	if score.Home == score.Away {
		return fmt.Errorf("%w: %s sets tied %s, each sub-battle needs a winner", ErrMalformedScore, position, score)
	}
	return nil
}
