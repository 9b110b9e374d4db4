package game

import (
	"fmt"

	"github.com/lox/flip7sim/internal/deck"
)

// Status represents the state of a player's hand within a round. Active is
// the only non-terminal state; every transition out of it is final for the
// round.
type Status int

const (
	Active Status = iota
	Stayed
	Frozen
	Busted
)

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Stayed:
		return "stayed"
	case Frozen:
		return "frozen"
	case Busted:
		return "busted"
	default:
		return "?"
	}
}

// Terminal returns true if the status ends the hand's participation in the round
func (s Status) Terminal() bool {
	return s != Active
}

// MarshalText renders the status as its string form in JSON output
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Flip7Count is the number of distinct number cards that completes a hand
// and earns the bonus.
const Flip7Count = 7

// Flip7Bonus is the flat score bonus for collecting seven distinct numbers.
const Flip7Bonus = 15

// DrawOutcome describes what happened when a number card was added to a hand
type DrawOutcome int

const (
	// OutcomeAdded means the card joined the hand normally
	OutcomeAdded DrawOutcome = iota
	// OutcomeFlip7 means the card was the seventh distinct number; the hand
	// is now Stayed with the bonus locked in
	OutcomeFlip7
	// OutcomeSaved means a duplicate was absorbed by a Second Chance token
	OutcomeSaved
	// OutcomeBusted means a duplicate arrived with no token to spend
	OutcomeBusted
)

// Hand is one player's card state for one round. It is created empty at
// round start and discarded after scoring; nothing in it survives the round.
//
// All mutating methods require the hand to be Active. Mutating a terminal
// hand is a state machine bug, so it panics; Round.Run recovers the panic
// and surfaces it as an error for that round only.
type Hand struct {
	numbers     [deck.MaxNumber + 1]bool
	numberCount int
	numberSum   int
	modifiers   []deck.ModifierKind
	tokens      int
	flip7       bool
	status      Status
}

// NewHand creates an empty active hand
func NewHand() *Hand {
	return &Hand{status: Active}
}

// Status returns the hand's current status
func (h *Hand) Status() Status {
	return h.status
}

// NumberCount returns how many distinct number cards the hand holds
func (h *Hand) NumberCount() int {
	return h.numberCount
}

// NumberSum returns the sum of the hand's distinct number cards
func (h *Hand) NumberSum() int {
	return h.numberSum
}

// Has returns true if the hand holds the given number value
func (h *Hand) Has(value int) bool {
	if value < 0 || value > deck.MaxNumber {
		return false
	}
	return h.numbers[value]
}

// Numbers returns the held number values in ascending order
func (h *Hand) Numbers() []int {
	values := make([]int, 0, h.numberCount)
	for n := 0; n <= deck.MaxNumber; n++ {
		if h.numbers[n] {
			values = append(values, n)
		}
	}
	return values
}

// HighestNumber returns the largest held number value, or -1 for an empty hand
func (h *Hand) HighestNumber() int {
	for n := deck.MaxNumber; n >= 0; n-- {
		if h.numbers[n] {
			return n
		}
	}
	return -1
}

// Modifiers returns the modifier cards collected so far
func (h *Hand) Modifiers() []deck.ModifierKind {
	return h.modifiers
}

// HasToken returns true if the hand holds an unused Second Chance token
func (h *Hand) HasToken() bool {
	return h.tokens > 0
}

// Flip7 returns true if the hand completed seven distinct numbers
func (h *Hand) Flip7() bool {
	return h.flip7
}

// AddNumber resolves a drawn number card. A duplicate consumes a Second
// Chance token if one is held (both cards discarded, hand stays Active)
// and busts the hand otherwise. The seventh distinct number completes
// Flip 7 and forces the hand to Stayed.
func (h *Hand) AddNumber(value int) DrawOutcome {
	h.mustBeActive("add number")
	if value < 0 || value > deck.MaxNumber {
		panic(fmt.Sprintf("game: number value %d out of range", value))
	}

	if h.numbers[value] {
		if h.tokens > 0 {
			h.tokens--
			return OutcomeSaved
		}
		h.status = Busted
		return OutcomeBusted
	}

	h.numbers[value] = true
	h.numberCount++
	h.numberSum += value

	if h.numberCount == Flip7Count {
		h.flip7 = true
		h.status = Stayed
		return OutcomeFlip7
	}
	return OutcomeAdded
}

// AddModifier adds a modifier card to the hand
func (h *Hand) AddModifier(kind deck.ModifierKind) {
	h.mustBeActive("add modifier")
	h.modifiers = append(h.modifiers, kind)
}

// GrantToken gives the hand a Second Chance token. A hand can never hold
// more than one; the round must redistribute or discard a second token
// before it reaches a holder.
func (h *Hand) GrantToken() {
	h.mustBeActive("grant token")
	if h.tokens > 0 {
		panic("game: hand already holds a second chance token")
	}
	h.tokens = 1
}

// Stay transitions the hand to Stayed, banking its current score
func (h *Hand) Stay() {
	h.mustBeActive("stay")
	h.status = Stayed
}

// Freeze transitions the hand to Frozen. A frozen hand forfeits the rest
// of the round but scores as it stands.
func (h *Hand) Freeze() {
	h.mustBeActive("freeze")
	h.status = Frozen
}

// Score computes the hand's score for the round. Busted hands score zero.
// Otherwise the distinct number sum is doubled once if x2 is held, every
// +N modifier is added, and the Flip 7 bonus applies if it was achieved.
func (h *Hand) Score() int {
	if h.status == Busted {
		return 0
	}
	score := h.numberSum
	for _, m := range h.modifiers {
		if m.Doubles() {
			score *= 2
			break
		}
	}
	for _, m := range h.modifiers {
		score += m.Bonus()
	}
	if h.flip7 {
		score += Flip7Bonus
	}
	return score
}

func (h *Hand) mustBeActive(op string) {
	if h.status != Active {
		panic(fmt.Sprintf("game: cannot %s on %s hand", op, h.status))
	}
}
