package game

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/flip7sim/internal/deck"
)

// SeatResult is one player's outcome for a single round
type SeatResult struct {
	Seat     int    `json:"seat"`
	Name     string `json:"name"`
	Strategy string `json:"strategy"`
	Score    int    `json:"score"`
	Status   Status `json:"status"`
	Flip7    bool   `json:"flip7,omitempty"`
}

// RoundResult is the full outcome of one round: scores, the round winner
// (highest round score, ties to the lowest seat), and the ordered event log.
type RoundResult struct {
	Seats         []SeatResult `json:"seats"`
	Winner        int          `json:"winner"`
	Turns         int          `json:"turns"`
	CardsDrawn    int          `json:"cards_drawn"`
	DeckExhausted bool         `json:"deck_exhausted,omitempty"`
	Events        []Event      `json:"events,omitempty"`
}

// RoundOption configures a Round
type RoundOption func(*Round)

// WithLogger sets the logger for round debug output
func WithLogger(logger *log.Logger) RoundOption {
	return func(r *Round) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithDeck supplies a pre-built deck instead of shuffling a fresh one.
// Intended for deterministic tests via deck.Stacked.
func WithDeck(d *deck.Deck) RoundOption {
	return func(r *Round) {
		r.deck = d
	}
}

// Round drives a single round of Flip 7 to completion: fresh hands, a
// fresh shuffled deck, fixed seat order with non-active hands skipped,
// and full resolution of every drawn card.
type Round struct {
	players []*Player
	rules   Rules
	deck    *deck.Deck
	hands   []*Hand
	logger  *log.Logger

	events    []Event
	turn      int
	turns     int
	drawn     int
	exhausted bool
	over      bool
}

// NewRound creates a round for the given players. The RNG shuffles the
// round's deck and is otherwise unused; it may be nil when WithDeck
// supplies the deck.
func NewRound(rng *rand.Rand, players []*Player, rules Rules, opts ...RoundOption) *Round {
	r := &Round{
		players: players,
		rules:   rules,
		hands:   make([]*Hand, len(players)),
		logger:  log.New(io.Discard),
	}
	for i := range r.hands {
		r.hands[i] = NewHand()
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.deck == nil {
		r.deck = deck.New(rng)
	}
	return r
}

// Hand exposes a seat's hand, primarily for tests and the verbose CLI view
func (r *Round) Hand(seat int) *Hand {
	return r.hands[seat]
}

// Run plays the round to completion. A contract violation inside the state
// machine (a bug, not a game outcome) is recovered here and returned as an
// error so that a tournament can skip the one affected game.
func (r *Round) Run() (result *RoundResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			result = nil
			err = fmt.Errorf("round aborted: %v", p)
		}
	}()

	if r.rules.DealInitial {
		for seat := range r.players {
			if r.over {
				break
			}
			if r.hands[seat].Status() != Active {
				continue
			}
			if _, ok := r.drawAndResolve(seat); !ok {
				break
			}
		}
	}

	for !r.over && r.anyActive() {
		r.turn++
		for seat := range r.players {
			if r.over {
				break
			}
			if r.hands[seat].Status() != Active {
				continue
			}
			r.takeTurn(seat)
		}
	}

	return r.finish(), nil
}

func (r *Round) anyActive() bool {
	for _, h := range r.hands {
		if h.Status() == Active {
			return true
		}
	}
	return false
}

// takeTurn runs one player's turn: a stay decision or a draw. With
// ModifierExtendsTurn set, a modifier draw loops back to another decision
// instead of ending the turn.
func (r *Round) takeTurn(seat int) {
	r.turns++
	hand := r.hands[seat]
	for {
		decision := r.players[seat].Strategy.HitOrStay(hand, r.view(seat))
		if decision == Stay {
			hand.Stay()
			r.log(EventTypeStay, seat, -1, "", fmt.Sprintf("stays at %d", hand.Score()))
			return
		}
		card, ok := r.drawAndResolve(seat)
		if !ok || r.over || hand.Status() != Active {
			return
		}
		if !r.rules.ModifierExtendsTurn || card.Kind != deck.Modifier {
			return
		}
	}
}

// drawAndResolve draws the next card for seat and resolves it fully.
// Returns false when the deck is exhausted, which ends the round.
func (r *Round) drawAndResolve(seat int) (deck.Card, bool) {
	card, ok := r.deck.Draw()
	if !ok {
		r.exhausted = true
		r.over = true
		r.log(EventTypeDeckExhausted, seat, -1, "", "deck exhausted, remaining hands stay")
		return deck.Card{}, false
	}
	r.drawn++
	r.resolve(seat, card)
	return card, true
}

func (r *Round) resolve(seat int, card deck.Card) {
	hand := r.hands[seat]
	switch card.Kind {
	case deck.Number:
		switch hand.AddNumber(card.Value) {
		case OutcomeAdded:
			r.log(EventTypeDraw, seat, -1, card.String(), "")
		case OutcomeSaved:
			r.log(EventTypeSecondChanceUsed, seat, -1, card.String(), fmt.Sprintf("duplicate %d absorbed by second chance", card.Value))
		case OutcomeBusted:
			r.log(EventTypeBust, seat, -1, card.String(), fmt.Sprintf("duplicate %d", card.Value))
		case OutcomeFlip7:
			r.log(EventTypeFlip7, seat, -1, card.String(), "seven distinct numbers")
			if r.rules.EndRoundOnFlip7 {
				r.over = true
			}
		}
	case deck.Modifier:
		hand.AddModifier(card.Modifier)
		r.log(EventTypeDraw, seat, -1, card.String(), "")
	case deck.Action:
		r.resolveAction(seat, card.Action)
	}
}

// resolveAction applies an action card drawn by seat. The drawer's own
// strategy chooses targets, even when the draw was forced by Flip Three.
func (r *Round) resolveAction(seat int, action deck.ActionKind) {
	strategy := r.players[seat].Strategy
	switch action {
	case deck.Freeze:
		target, ok := strategy.FreezeTarget(r.view(seat))
		if !ok {
			r.log(EventTypeFreezeDiscarded, seat, -1, action.String(), "no eligible target")
			return
		}
		r.hands[target].Freeze()
		r.log(EventTypeFreeze, seat, target, action.String(), fmt.Sprintf("frozen at %d", r.hands[target].Score()))

	case deck.FlipThree:
		target, ok := strategy.Flip3Target(r.view(seat))
		if !ok {
			r.log(EventTypeFlipThreeDiscarded, seat, -1, action.String(), "no eligible target")
			return
		}
		r.log(EventTypeFlipThree, seat, target, action.String(), "forced to draw three")
		for i := 0; i < 3; i++ {
			if r.over || r.hands[target].Status() != Active {
				break
			}
			if _, ok := r.drawAndResolve(target); !ok {
				break
			}
		}

	case deck.SecondChance:
		if !r.hands[seat].HasToken() {
			r.hands[seat].GrantToken()
			r.log(EventTypeSecondChanceKept, seat, -1, action.String(), "")
			return
		}
		target, ok := strategy.SecondChanceTarget(r.view(seat))
		if !ok {
			r.log(EventTypeSecondChanceDiscard, seat, -1, action.String(), "every active opponent holds a token")
			return
		}
		r.hands[target].GrantToken()
		r.log(EventTypeSecondChanceGiven, seat, target, action.String(), "")
	}
}

// view snapshots the public table state for a strategy decision
func (r *Round) view(self int) *TableView {
	seats := make([]SeatView, len(r.players))
	for i, p := range r.players {
		h := r.hands[i]
		seats[i] = SeatView{
			Seat:        i,
			Name:        p.Name,
			Status:      h.Status(),
			NumberCount: h.NumberCount(),
			NumberSum:   h.NumberSum(),
			HasToken:    h.HasToken(),
		}
	}
	return &TableView{Self: self, Seats: seats, DeckRemaining: r.deck.Remaining()}
}

func (r *Round) finish() *RoundResult {
	for seat, h := range r.hands {
		if h.Status() == Active {
			h.Stay()
			r.log(EventTypeStay, seat, -1, "", fmt.Sprintf("stays at %d (round over)", h.Score()))
		}
	}

	result := &RoundResult{
		Seats:         make([]SeatResult, len(r.players)),
		Turns:         r.turns,
		CardsDrawn:    r.drawn,
		DeckExhausted: r.exhausted,
	}
	for i, p := range r.players {
		h := r.hands[i]
		result.Seats[i] = SeatResult{
			Seat:     i,
			Name:     p.Name,
			Strategy: p.Strategy.Name(),
			Score:    h.Score(),
			Status:   h.Status(),
			Flip7:    h.Flip7(),
		}
		if result.Seats[i].Score > result.Seats[result.Winner].Score {
			result.Winner = i
		}
	}
	r.log(EventTypeRoundEnd, result.Winner, -1, "", fmt.Sprintf("%s wins the round with %d", r.players[result.Winner].Name, result.Seats[result.Winner].Score))
	result.Events = r.events
	return result
}

func (r *Round) log(eventType EventType, seat, target int, card, detail string) {
	r.events = append(r.events, Event{
		Turn:   r.turn,
		Type:   eventType,
		Seat:   seat,
		Target: target,
		Card:   card,
		Detail: detail,
	})
	r.logger.Debug(eventType.String(), "turn", r.turn, "seat", seat, "target", target, "card", card, "detail", detail)
}
