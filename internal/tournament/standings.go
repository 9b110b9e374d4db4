package tournament

import (
	"sort"
	"time"

	"github.com/lox/flip7sim/internal/runid"
	"github.com/lox/flip7sim/internal/statistics"
)

// Standing is one strategy's aggregate line on the leaderboard
type Standing struct {
	Name        string  `json:"name"`
	Games       int     `json:"games"`
	Wins        int     `json:"wins"`
	WinRate     float64 `json:"win_rate"`
	TotalPoints int     `json:"total_points"`
	MeanScore   float64 `json:"mean_score"`
	MedianScore float64 `json:"median_score"`
	StdDev      float64 `json:"std_dev"`
	RoundWins   int     `json:"round_wins"`
	Busts       int     `json:"busts"`
	Stays       int     `json:"stays"`
	Frozen      int     `json:"frozen"`
	Flip7s      int     `json:"flip7s"`
	Rounds      int     `json:"rounds"`
}

// Results is the complete outcome of a league run
type Results struct {
	RunID          string        `json:"run_id"`
	Turns          int           `json:"turns"`
	PlayersPerGame int           `json:"players_per_game"`
	Seed           int64         `json:"seed"`
	Workers        int           `json:"workers"`
	Elapsed        time.Duration `json:"elapsed_ns"`
	Games          int           `json:"games"`
	FailedGames    int           `json:"failed_games"`
	Standings      []Standing    `json:"standings"`
}

type accumulator struct {
	standing Standing
	scores   statistics.Sample
}

// aggregate folds per-game outcomes into the leaderboard. The leaderboard
// orders by wins, then mean score, then name, so full-catalog runs have a
// stable total order.
func (l *League) aggregate(outcomes []outcome) *Results {
	results := &Results{
		RunID:          runid.Generate(),
		Turns:          l.cfg.Turns,
		PlayersPerGame: l.cfg.PlayersPerGame,
		Seed:           l.cfg.Seed,
		Workers:        l.cfg.Workers,
	}

	accs := make(map[string]*accumulator, len(l.roster))
	for _, s := range l.roster {
		accs[s.Name()] = &accumulator{standing: Standing{Name: s.Name()}}
	}

	for _, o := range outcomes {
		if o.err != nil {
			results.FailedGames++
			continue
		}
		results.Games++
		for i, seat := range o.result.Seats {
			acc := accs[seat.Strategy]
			acc.standing.Games++
			if i == o.result.Winner {
				acc.standing.Wins++
			}
			acc.standing.TotalPoints += seat.Total
			acc.standing.RoundWins += seat.RoundWins
			acc.standing.Busts += seat.Busts
			acc.standing.Stays += seat.Stays
			acc.standing.Frozen += seat.Frozen
			acc.standing.Flip7s += seat.Flip7s
			acc.standing.Rounds += o.result.Rounds
			acc.scores.Add(float64(seat.Total))
		}
	}

	results.Standings = make([]Standing, 0, len(accs))
	for _, acc := range accs {
		s := acc.standing
		if s.Games > 0 {
			s.WinRate = float64(s.Wins) / float64(s.Games)
			s.MeanScore = acc.scores.Mean()
			s.MedianScore = acc.scores.Median()
			s.StdDev = acc.scores.StdDev()
		}
		results.Standings = append(results.Standings, s)
	}
	sort.Slice(results.Standings, func(i, j int) bool {
		a, b := results.Standings[i], results.Standings[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		if a.MeanScore != b.MeanScore {
			return a.MeanScore > b.MeanScore
		}
		return a.Name < b.Name
	})
	return results
}
