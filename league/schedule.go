package league

import (
	"fmt"

	"github.com/7kevin24/ZJU-SFL/models"
)

// GenerateSchedule creates a single round-robin schedule for the configured
// team list: each team meets every other team once, the earlier team in
// config order playing at home. Match IDs are deterministic ("M1", "M2", ...)
// so regenerating for the same team list yields the same schedule.
func GenerateSchedule(teams []string) ([]models.Match, error) {
	if len(teams) < 2 {
		return nil, fmt.Errorf("not enough teams for a schedule (found %d, min 2 required)", len(teams))
	}

	matches := make([]models.Match, 0, len(teams)*(len(teams)-1)/2)
	n := 0
	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			n++
			matches = append(matches, models.Match{
				MatchID:  fmt.Sprintf("M%d", n),
				HomeTeam: teams[i],
				AwayTeam: teams[j],
				Status:   models.MatchStatusPending,
			})
		}
	}
	return matches, nil
}
