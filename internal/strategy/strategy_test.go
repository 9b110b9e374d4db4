package strategy

import (
	"testing"

	"github.com/lox/flip7sim/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, cfg Config) *Strategy {
	t.Helper()
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func handWith(t *testing.T, numbers ...int) *game.Hand {
	t.Helper()
	h := game.NewHand()
	for _, n := range numbers {
		require.Equal(t, game.OutcomeAdded, h.AddNumber(n))
	}
	return h
}

func TestHitOrStayScoreThreshold(t *testing.T) {
	s := mustNew(t, Config{ScoreThreshold: 15})

	assert.Equal(t, game.Hit, s.HitOrStay(handWith(t, 4, 6), nil))
	assert.Equal(t, game.Stay, s.HitOrStay(handWith(t, 4, 11), nil))
	assert.Equal(t, game.Stay, s.HitOrStay(handWith(t, 7, 12), nil))
}

func TestHitOrStayHandLimit(t *testing.T) {
	s := mustNew(t, Config{HandLimit: 3})

	assert.Equal(t, game.Hit, s.HitOrStay(handWith(t, 0, 1), nil))
	assert.Equal(t, game.Stay, s.HitOrStay(handWith(t, 0, 1, 2), nil))
}

func TestHitOrStayHighCard(t *testing.T) {
	s := mustNew(t, Config{HighCardThreshold: 10})

	assert.Equal(t, game.Hit, s.HitOrStay(handWith(t, 1, 9), nil))
	assert.Equal(t, game.Stay, s.HitOrStay(handWith(t, 1, 10), nil))
}

func TestHitOrStayConditionsAreOrED(t *testing.T) {
	s := mustNew(t, Config{ScoreThreshold: 20, HandLimit: 4, HighCardThreshold: 12})

	// none hold
	assert.Equal(t, game.Hit, s.HitOrStay(handWith(t, 1, 2, 3), nil))
	// only the hand limit holds
	assert.Equal(t, game.Stay, s.HitOrStay(handWith(t, 0, 1, 2, 3), nil))
	// only the high card holds
	assert.Equal(t, game.Stay, s.HitOrStay(handWith(t, 12), nil))
	// only the score holds
	assert.Equal(t, game.Stay, s.HitOrStay(handWith(t, 9, 11), nil))
}

// table builds a TableView where seat 0 is the deciding player.
func table(seats ...game.SeatView) *game.TableView {
	for i := range seats {
		seats[i].Seat = i
	}
	return &game.TableView{Self: 0, Seats: seats}
}

func TestFreezeTargetPrefersTokenHolders(t *testing.T) {
	s := mustNew(t, Config{ScoreThreshold: 15})

	target, ok := s.FreezeTarget(table(
		game.SeatView{Status: game.Active, NumberSum: 5},
		game.SeatView{Status: game.Active, NumberSum: 1},
		game.SeatView{Status: game.Active, NumberSum: 30, HasToken: true},
	))
	require.True(t, ok)
	assert.Equal(t, 2, target, "token holder wins over smaller sums")
}

func TestFreezeTargetSmallestSumThenSeat(t *testing.T) {
	s := mustNew(t, Config{ScoreThreshold: 15})

	target, ok := s.FreezeTarget(table(
		game.SeatView{Status: game.Active},
		game.SeatView{Status: game.Active, NumberSum: 8},
		game.SeatView{Status: game.Active, NumberSum: 3},
		game.SeatView{Status: game.Active, NumberSum: 3},
	))
	require.True(t, ok)
	assert.Equal(t, 2, target, "smallest sum, ties to lowest seat")
}

func TestFreezeTargetSkipsTerminalSeats(t *testing.T) {
	s := mustNew(t, Config{ScoreThreshold: 15})

	target, ok := s.FreezeTarget(table(
		game.SeatView{Status: game.Active},
		game.SeatView{Status: game.Busted, NumberSum: 1},
		game.SeatView{Status: game.Stayed, NumberSum: 2},
		game.SeatView{Status: game.Active, NumberSum: 20},
	))
	require.True(t, ok)
	assert.Equal(t, 3, target)

	_, ok = s.FreezeTarget(table(
		game.SeatView{Status: game.Active},
		game.SeatView{Status: game.Frozen},
	))
	assert.False(t, ok, "no eligible target")
}

func TestFlip3TargetLargestSum(t *testing.T) {
	s := mustNew(t, Config{ScoreThreshold: 15})

	target, ok := s.Flip3Target(table(
		game.SeatView{Status: game.Active},
		game.SeatView{Status: game.Active, NumberSum: 12},
		game.SeatView{Status: game.Active, NumberSum: 25},
		game.SeatView{Status: game.Active, NumberSum: 25},
	))
	require.True(t, ok)
	assert.Equal(t, 2, target, "largest sum, ties to lowest seat")
}

func TestSecondChanceTargetSkipsTokenHolders(t *testing.T) {
	s := mustNew(t, Config{ScoreThreshold: 15})

	target, ok := s.SecondChanceTarget(table(
		game.SeatView{Status: game.Active},
		game.SeatView{Status: game.Active, NumberSum: 1, HasToken: true},
		game.SeatView{Status: game.Active, NumberSum: 9},
		game.SeatView{Status: game.Active, NumberSum: 4},
	))
	require.True(t, ok)
	assert.Equal(t, 3, target, "smallest sum among seats without a token")

	_, ok = s.SecondChanceTarget(table(
		game.SeatView{Status: game.Active},
		game.SeatView{Status: game.Active, HasToken: true},
	))
	assert.False(t, ok, "all active opponents hold a token")
}

func TestTargetingIsDeterministic(t *testing.T) {
	s := mustNew(t, Config{HandLimit: 5})
	snapshot := func() *game.TableView {
		return table(
			game.SeatView{Status: game.Active, NumberSum: 7},
			game.SeatView{Status: game.Active, NumberSum: 7},
			game.SeatView{Status: game.Active, NumberSum: 7, HasToken: true},
		)
	}

	for i := 0; i < 10; i++ {
		freeze, _ := s.FreezeTarget(snapshot())
		flip3, _ := s.Flip3Target(snapshot())
		grant, _ := s.SecondChanceTarget(snapshot())
		assert.Equal(t, 2, freeze)
		assert.Equal(t, 1, flip3)
		assert.Equal(t, 1, grant)
	}
}

func TestCatalogSize(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, CatalogSize)

	names := make(map[string]bool, len(catalog))
	singles, pairs, triples := 0, 0, 0
	for _, s := range catalog {
		require.False(t, names[s.Name()], "duplicate name %q", s.Name())
		names[s.Name()] = true

		cfg := s.Config()
		set := 0
		for _, v := range []int{cfg.ScoreThreshold, cfg.HandLimit, cfg.HighCardThreshold} {
			if v != 0 {
				set++
			}
		}
		switch set {
		case 1:
			singles++
		case 2:
			pairs++
		case 3:
			triples++
		}
	}
	assert.Equal(t, 25, singles)
	assert.Equal(t, 175, pairs)
	assert.Equal(t, 375, triples)
}

func TestLookup(t *testing.T) {
	s, err := Lookup("score15-high10")
	require.NoError(t, err)
	assert.Equal(t, "score15-high10", s.Name())
	assert.Equal(t, Config{ScoreThreshold: 15, HighCardThreshold: 10}, s.Config())

	_, err = Lookup("score99")
	assert.Error(t, err)
}
