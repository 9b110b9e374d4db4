package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/flip7sim/internal/randutil"
)

// SeatTotal is one player's cumulative outcome across a whole game
type SeatTotal struct {
	Seat      int    `json:"seat"`
	Name      string `json:"name"`
	Strategy  string `json:"strategy"`
	Total     int    `json:"total"`
	RoundWins int    `json:"round_wins"`
	Busts     int    `json:"busts"`
	Stays     int    `json:"stays"`
	Frozen    int    `json:"frozen"`
	Flip7s    int    `json:"flip7s"`
}

// GameResult is the final standing of one complete game
type GameResult struct {
	Seed   int64          `json:"seed"`
	Rounds int            `json:"rounds"`
	Winner int            `json:"winner"`
	Seats  []SeatTotal    `json:"seats"`
	Played []*RoundResult `json:"-"`
}

// GameOption configures a Game
type GameOption func(*Game)

// WithGameLogger sets the logger used for round debug output
func WithGameLogger(logger *log.Logger) GameOption {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Game runs successive rounds with a fixed roster until a cumulative total
// reaches the target score. Each round's deck shuffle derives from the game
// seed and the round number, so one seed reproduces the whole game.
type Game struct {
	players []*Player
	rules   Rules
	seed    int64
	logger  *log.Logger
}

// NewGame creates a game for the given players and seed
func NewGame(players []*Player, rules Rules, seed int64, opts ...GameOption) *Game {
	g := &Game{
		players: players,
		rules:   rules,
		seed:    seed,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run plays the game to completion. It returns an error for invalid setup,
// a round aborted by a contract violation, or a game that exceeds the
// MaxRounds safety valve.
func (g *Game) Run() (*GameResult, error) {
	if err := g.rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if len(g.players) < 2 {
		return nil, fmt.Errorf("need at least 2 players, got %d", len(g.players))
	}

	result := &GameResult{
		Seed:  g.seed,
		Seats: make([]SeatTotal, len(g.players)),
	}
	for i, p := range g.players {
		result.Seats[i] = SeatTotal{Seat: i, Name: p.Name, Strategy: p.Strategy.Name()}
	}

	for {
		if result.Rounds >= g.rules.MaxRounds {
			return nil, fmt.Errorf("no player reached %d points after %d rounds", g.rules.TargetScore, g.rules.MaxRounds)
		}
		roundNum := result.Rounds + 1
		rng := randutil.New(randutil.Derive(g.seed, uint64(roundNum)))
		round, err := NewRound(rng, g.players, g.rules, WithLogger(g.logger)).Run()
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", roundNum, err)
		}
		result.Rounds = roundNum
		result.Played = append(result.Played, round)

		for i, sr := range round.Seats {
			seat := &result.Seats[i]
			seat.Total += sr.Score
			switch sr.Status {
			case Busted:
				seat.Busts++
			case Stayed:
				seat.Stays++
			case Frozen:
				seat.Frozen++
			}
			if sr.Flip7 {
				seat.Flip7s++
			}
		}
		result.Seats[round.Winner].RoundWins++

		g.logger.Debug("round complete",
			"round", roundNum,
			"winner", g.players[round.Winner].Name,
			"turns", round.Turns)

		if g.reachedTarget(result) {
			break
		}
	}

	for i := range result.Seats {
		if result.Seats[i].Total > result.Seats[result.Winner].Total {
			result.Winner = i
		}
	}
	return result, nil
}

func (g *Game) reachedTarget(result *GameResult) bool {
	for i := range result.Seats {
		if result.Seats[i].Total >= g.rules.TargetScore {
			return true
		}
	}
	return false
}
