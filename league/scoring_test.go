package league

import (
	"errors"
	"testing"

	"github.com/7kevin24/ZJU-SFL/models"
)

func TestComputeRegularResults(t *testing.T) {
	tests := []struct {
		name                      string
		vanguard, center, general SetScore
		wantHome, wantAway        int
		wantVanguard, wantGeneral models.Side
	}{
		{
			name:     "home takes vanguard and general",
			vanguard: SetScore{2, 0}, center: SetScore{0, 2}, general: SetScore{3, 1},
			wantHome: 30, wantAway: 10,
			wantVanguard: models.SideHome, wantGeneral: models.SideHome,
		},
		{
			name:     "away takes center and general",
			vanguard: SetScore{2, 1}, center: SetScore{0, 2}, general: SetScore{1, 3},
			wantHome: 10, wantAway: 30,
			wantVanguard: models.SideHome, wantGeneral: models.SideAway,
		},
		{
			name:     "home sweep",
			vanguard: SetScore{2, 0}, center: SetScore{2, 0}, general: SetScore{3, 0},
			wantHome: 40, wantAway: 0,
			wantVanguard: models.SideHome, wantGeneral: models.SideHome,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.vanguard, tt.center, tt.general, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.HomeTotal != tt.wantHome || got.AwayTotal != tt.wantAway {
				t.Fatalf("totals = %d-%d, want %d-%d", got.HomeTotal, got.AwayTotal, tt.wantHome, tt.wantAway)
			}
			if got.TieBreakerPlayed {
				t.Fatal("tie-breaker should not be played")
			}
			if got.Winners[models.PositionVanguard] != tt.wantVanguard {
				t.Fatalf("vanguard winner = %s, want %s", got.Winners[models.PositionVanguard], tt.wantVanguard)
			}
			if got.Winners[models.PositionGeneral] != tt.wantGeneral {
				t.Fatalf("general winner = %s, want %s", got.Winners[models.PositionGeneral], tt.wantGeneral)
			}
			if _, ok := got.Winners[models.PositionExtra]; ok {
				t.Fatal("no Extra winner expected")
			}
		})
	}
}

func TestComputeTieBreaker(t *testing.T) {
	// Home sweeps Vanguard and Center (20), Away takes General (20).
	vanguard := SetScore{2, 0}
	center := SetScore{2, 1}
	general := SetScore{1, 3}

	got, err := Compute(vanguard, center, general, &SetScore{2, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.HomeTotal != 30 || got.AwayTotal != 20 {
		t.Fatalf("totals = %d-%d, want 30-20", got.HomeTotal, got.AwayTotal)
	}
	if !got.TieBreakerPlayed {
		t.Fatal("expected tie-breaker to be played")
	}
	if got.Winners[models.PositionExtra] != models.SideHome {
		t.Fatalf("extra winner = %s, want Home", got.Winners[models.PositionExtra])
	}
}

func TestComputeMissingTieBreaker(t *testing.T) {
	_, err := Compute(SetScore{2, 0}, SetScore{2, 1}, SetScore{1, 3}, nil)
	if !errors.Is(err, ErrMissingTieBreaker) {
		t.Fatalf("error = %v, want ErrMissingTieBreaker", err)
	}
}

func TestComputeMalformedScores(t *testing.T) {
	tests := []struct {
		name     string
		vanguard SetScore
		center   SetScore
		general  SetScore
		extra    *SetScore
	}{
		{"tied vanguard", SetScore{1, 1}, SetScore{2, 0}, SetScore{3, 0}, nil},
		{"tied general", SetScore{2, 0}, SetScore{0, 2}, SetScore{2, 2}, nil},
		{"vanguard sets over cap", SetScore{3, 0}, SetScore{2, 0}, SetScore{3, 0}, nil},
		{"general sets over cap", SetScore{2, 0}, SetScore{2, 0}, SetScore{4, 0}, nil},
		{"negative sets", SetScore{-1, 2}, SetScore{2, 0}, SetScore{3, 0}, nil},
		{"tied extra on a 20-20", SetScore{2, 0}, SetScore{2, 1}, SetScore{1, 3}, &SetScore{1, 1}},
		{"extra supplied without a tie", SetScore{2, 0}, SetScore{2, 0}, SetScore{3, 0}, &SetScore{2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compute(tt.vanguard, tt.center, tt.general, tt.extra)
			if !errors.Is(err, ErrMalformedScore) {
				t.Fatalf("error = %v, want ErrMalformedScore", err)
			}
		})
	}
}

// Every valid input must partition exactly 40 points, or 50 with a
// tie-breaker, and never produce equal totals.
func TestComputeTotalsInvariant(t *testing.T) {
	valid := func(home, away, limit int) bool {
		return home != away && home <= limit && away <= limit
	}

	for vh := 0; vh <= 2; vh++ {
		for va := 0; va <= 2; va++ {
			if !valid(vh, va, 2) {
				continue
			}
			for ch := 0; ch <= 2; ch++ {
				for ca := 0; ca <= 2; ca++ {
					if !valid(ch, ca, 2) {
						continue
					}
					for gh := 0; gh <= 3; gh++ {
						for ga := 0; ga <= 3; ga++ {
							if !valid(gh, ga, 3) {
								continue
							}
							vanguard := SetScore{vh, va}
							center := SetScore{ch, ca}
							general := SetScore{gh, ga}

							got, err := Compute(vanguard, center, general, nil)
							if errors.Is(err, ErrMissingTieBreaker) {
								got, err = Compute(vanguard, center, general, &SetScore{2, 1})
							}
							if err != nil {
								t.Fatalf("Compute(%s, %s, %s): %v", vanguard, center, general, err)
							}

							sum := got.HomeTotal + got.AwayTotal
							if sum != 40 && sum != 50 {
								t.Fatalf("Compute(%s, %s, %s): totals sum to %d", vanguard, center, general, sum)
							}
							if got.TieBreakerPlayed != (sum == 50) {
								t.Fatalf("Compute(%s, %s, %s): tie-breaker flag inconsistent with sum %d", vanguard, center, general, sum)
							}
							if got.HomeTotal == got.AwayTotal {
								t.Fatalf("Compute(%s, %s, %s): equal totals %d-%d", vanguard, center, general, got.HomeTotal, got.AwayTotal)
							}
						}
					}
				}
			}
		}
	}
}
