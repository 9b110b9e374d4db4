package deck

import rand "math/rand/v2"

const (
	// MaxNumber is the highest number card face value.
	MaxNumber = 12

	// Size is the fixed deck size: one 0 plus n copies of each number n
	// (79 number cards), one of each modifier, three of each action.
	Size = 79 + 6 + 9

	// CopiesPerAction is how many of each action card the deck holds.
	CopiesPerAction = 3
)

// Deck holds the shuffled draw order for a single round. A fresh deck is
// built per round; there is no discard pile and no reshuffle.
type Deck struct {
	cards []Card
}

// New builds the fixed 94-card composition and shuffles it with the
// provided RNG. The same RNG seed always yields the same draw order.
func New(rng *rand.Rand) *Deck {
	d := &Deck{cards: composition()}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	return d
}

// Stacked builds a deck that deals the given cards in order, unshuffled.
// Intended for deterministic tests.
func Stacked(cards ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cards))}
	copy(d.cards, cards)
	return d
}

func composition() []Card {
	cards := make([]Card, 0, Size)
	cards = append(cards, NumberCard(0))
	for n := 1; n <= MaxNumber; n++ {
		for i := 0; i < n; i++ {
			cards = append(cards, NumberCard(n))
		}
	}
	for m := Plus2; m <= Times2; m++ {
		cards = append(cards, ModifierCard(m))
	}
	for a := Freeze; a <= SecondChance; a++ {
		for i := 0; i < CopiesPerAction; i++ {
			cards = append(cards, ActionCard(a))
		}
	}
	return cards
}

// Draw removes and returns the top card. The second return value is false
// once the deck is exhausted; exhaustion is an ordinary termination path
// for a round, not an error.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Empty returns true if the deck has no cards left
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}
