// Package tournament runs leagues of Flip 7 games across a strategy roster
// and aggregates the results into a leaderboard.
//
// Games are fully independent, so they run on a bounded worker pool. Every
// game's seed derives from the league seed and the game's global index,
// never from scheduling order, so a league replays identically for any
// worker count.
package tournament

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/flip7sim/internal/game"
	"github.com/lox/flip7sim/internal/gamelog"
	"github.com/lox/flip7sim/internal/randutil"
	"golang.org/x/sync/errgroup"
)

// Independent seed streams derived from the league seed: one for game
// shuffles, one for the per-turn table shuffles.
const (
	streamGames  = 1
	streamTables = 2
)

// Config holds league configuration
type Config struct {
	// Turns is how many times the full roster is shuffled into tables and
	// every table plays one game.
	Turns int

	// PlayersPerGame is the table size. The roster size must divide evenly.
	PlayersPerGame int

	// Seed determines the entire league: matchmaking and every shuffle.
	Seed int64

	// Workers bounds concurrent games; 0 means NumCPU.
	Workers int

	// Rules applies to every game in the league.
	Rules game.Rules

	// Logger receives failure warnings and debug output; nil discards.
	Logger *log.Logger

	// Clock measures elapsed time; nil means the real clock. Injected so
	// tests can use quartz.NewMock.
	Clock quartz.Clock

	// GameLog, when set, receives one JSONL record per completed game.
	GameLog *gamelog.Writer

	// OnGameComplete is called after each game with (completed, total).
	// Called from worker goroutines; must be safe for concurrent use.
	OnGameComplete func(completed, total int)
}

// DefaultConfig returns the standard league configuration
func DefaultConfig() Config {
	return Config{
		Turns:          100,
		PlayersPerGame: 5,
		Workers:        runtime.NumCPU(),
		Rules:          game.DefaultRules(),
	}
}

// League pairs a strategy roster with a configuration
type League struct {
	cfg    Config
	roster []game.Strategy
	logger *log.Logger
	clock  quartz.Clock
}

// New validates the configuration and creates a league
func New(roster []game.Strategy, cfg Config) (*League, error) {
	if cfg.Turns <= 0 {
		return nil, fmt.Errorf("turns must be positive, got %d", cfg.Turns)
	}
	if cfg.PlayersPerGame < 2 {
		return nil, fmt.Errorf("players_per_game must be at least 2, got %d", cfg.PlayersPerGame)
	}
	if len(roster) < cfg.PlayersPerGame {
		return nil, fmt.Errorf("roster of %d cannot fill a table of %d", len(roster), cfg.PlayersPerGame)
	}
	if len(roster)%cfg.PlayersPerGame != 0 {
		return nil, fmt.Errorf("roster size %d is not divisible by players_per_game %d", len(roster), cfg.PlayersPerGame)
	}
	if err := cfg.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	seen := make(map[string]bool, len(roster))
	for _, s := range roster {
		if seen[s.Name()] {
			return nil, fmt.Errorf("duplicate strategy name %q in roster", s.Name())
		}
		seen[s.Name()] = true
	}

	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	l := &League{cfg: cfg, roster: roster, logger: cfg.Logger, clock: cfg.Clock}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	if l.clock == nil {
		l.clock = quartz.NewReal()
	}
	return l, nil
}

// TotalGames returns how many games the league will play
func (l *League) TotalGames() int {
	return l.cfg.Turns * (len(l.roster) / l.cfg.PlayersPerGame)
}

type gameSpec struct {
	index      int
	seed       int64
	strategies []game.Strategy
}

type outcome struct {
	spec   gameSpec
	result *game.GameResult
	err    error
}

// schedule plans every game up front: each turn shuffles the roster with
// the turn's own derived seed and partitions it into tables in order.
func (l *League) schedule() []gameSpec {
	tablesBase := randutil.Derive(l.cfg.Seed, streamTables)
	gamesBase := randutil.Derive(l.cfg.Seed, streamGames)

	specs := make([]gameSpec, 0, l.TotalGames())
	for turn := 0; turn < l.cfg.Turns; turn++ {
		rng := randutil.New(randutil.Derive(tablesBase, uint64(turn)))
		order := rng.Perm(len(l.roster))
		for start := 0; start < len(order); start += l.cfg.PlayersPerGame {
			strategies := make([]game.Strategy, l.cfg.PlayersPerGame)
			for i := range strategies {
				strategies[i] = l.roster[order[start+i]]
			}
			index := len(specs)
			specs = append(specs, gameSpec{
				index:      index,
				seed:       randutil.Derive(gamesBase, uint64(index)),
				strategies: strategies,
			})
		}
	}
	return specs
}

// Run plays the whole league. A failed game is logged and counted but does
// not abort the run; only context cancellation does.
func (l *League) Run(ctx context.Context) (*Results, error) {
	start := l.clock.Now()
	specs := l.schedule()
	outcomes := make([]outcome, len(specs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.cfg.Workers)
	var completed atomic.Int64

	for _, spec := range specs {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			players := game.Roster(spec.strategies...)
			result, err := game.NewGame(players, l.cfg.Rules, spec.seed).Run()
			outcomes[spec.index] = outcome{spec: spec, result: result, err: err}

			if err != nil {
				l.logger.Warn("game failed", "game", spec.index, "seed", spec.seed, "error", err)
			} else if l.cfg.GameLog != nil {
				if logErr := l.cfg.GameLog.Write(gamelog.FromResult(spec.index, result)); logErr != nil {
					return logErr
				}
			}
			if err != nil && l.cfg.GameLog != nil {
				rec := gamelog.Record{GameIndex: spec.index, Seed: spec.seed, Error: err.Error()}
				for _, s := range spec.strategies {
					rec.Strategies = append(rec.Strategies, s.Name())
				}
				if logErr := l.cfg.GameLog.Write(rec); logErr != nil {
					return logErr
				}
			}

			if l.cfg.OnGameComplete != nil {
				l.cfg.OnGameComplete(int(completed.Add(1)), len(specs))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := l.aggregate(outcomes)
	results.Elapsed = l.clock.Since(start)
	l.logger.Info("league complete",
		"games", results.Games,
		"failed", results.FailedGames,
		"elapsed", results.Elapsed)
	return results, nil
}
