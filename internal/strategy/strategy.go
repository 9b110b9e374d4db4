// Package strategy implements the rule-based Flip 7 strategies: a single
// decision algorithm parameterized by up to three stay conditions, plus the
// fixed action-card targeting heuristics shared by every variant.
package strategy

import (
	"github.com/lox/flip7sim/internal/game"
)

// Strategy is one configured variant. All variants share the same decision
// algorithm and the same targeting heuristics; only the stay thresholds
// differ. It is stateless and safe to share across concurrent games.
type Strategy struct {
	name string
	cfg  Config
}

// New builds a strategy from a validated configuration, named canonically
func New(cfg Config) (*Strategy, error) {
	return NewNamed(cfg.Name(), cfg)
}

// NewNamed builds a strategy with an explicit display name. Configuration
// errors fail here, before any simulation starts.
func NewNamed(name string, cfg Config) (*Strategy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		name = cfg.Name()
	}
	return &Strategy{name: name, cfg: cfg}, nil
}

// Name returns the strategy's display name
func (s *Strategy) Name() string {
	return s.name
}

// Config returns the strategy's stay conditions
func (s *Strategy) Config() Config {
	return s.cfg
}

// HitOrStay stays as soon as any enabled condition holds and hits otherwise
func (s *Strategy) HitOrStay(hand *game.Hand, _ *game.TableView) game.Decision {
	if s.cfg.ScoreThreshold != 0 && hand.Score() >= s.cfg.ScoreThreshold {
		return game.Stay
	}
	if s.cfg.HandLimit != 0 && hand.NumberCount() >= s.cfg.HandLimit {
		return game.Stay
	}
	if s.cfg.HighCardThreshold != 0 && hand.HighestNumber() >= s.cfg.HighCardThreshold {
		return game.Stay
	}
	return game.Hit
}

// FreezeTarget picks the active opponent to freeze: token holders first,
// then the smallest number sum, then the lowest seat index.
func (s *Strategy) FreezeTarget(table *game.TableView) (int, bool) {
	best := -1
	for _, seat := range opponents(table) {
		if best == -1 {
			best = seat.Seat
			continue
		}
		current := table.Seats[best]
		if seat.HasToken != current.HasToken {
			if seat.HasToken {
				best = seat.Seat
			}
			continue
		}
		if seat.NumberSum < current.NumberSum {
			best = seat.Seat
		}
	}
	return best, best != -1
}

// Flip3Target picks the active opponent with the largest number sum,
// ties to the lowest seat index.
func (s *Strategy) Flip3Target(table *game.TableView) (int, bool) {
	best := -1
	for _, seat := range opponents(table) {
		if best == -1 || seat.NumberSum > table.Seats[best].NumberSum {
			best = seat.Seat
		}
	}
	return best, best != -1
}

// SecondChanceTarget picks who receives a surplus token: the active
// opponent without one holding the smallest number sum, ties to the
// lowest seat index. False means everyone eligible already has a token
// and the card is discarded.
func (s *Strategy) SecondChanceTarget(table *game.TableView) (int, bool) {
	best := -1
	for _, seat := range opponents(table) {
		if seat.HasToken {
			continue
		}
		if best == -1 || seat.NumberSum < table.Seats[best].NumberSum {
			best = seat.Seat
		}
	}
	return best, best != -1
}

// opponents returns the active seats other than the deciding player, in
// seat order. Seat-order iteration is what makes every tie-break resolve
// to the lowest index.
func opponents(table *game.TableView) []game.SeatView {
	eligible := make([]game.SeatView, 0, len(table.Seats))
	for _, seat := range table.Seats {
		if seat.Seat == table.Self || seat.Status != game.Active {
			continue
		}
		eligible = append(eligible, seat)
	}
	return eligible
}
