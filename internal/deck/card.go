package deck

import "fmt"

// Kind discriminates the three card families in a Flip 7 deck.
type Kind int

const (
	Number Kind = iota
	Modifier
	Action
)

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Modifier:
		return "modifier"
	case Action:
		return "action"
	default:
		return "?"
	}
}

// ModifierKind represents one of the six score modifier cards
type ModifierKind int

const (
	Plus2 ModifierKind = iota
	Plus4
	Plus6
	Plus8
	Plus10
	Times2
)

// String returns the string representation of a modifier ("+4", "x2")
func (m ModifierKind) String() string {
	switch m {
	case Plus2:
		return "+2"
	case Plus4:
		return "+4"
	case Plus6:
		return "+6"
	case Plus8:
		return "+8"
	case Plus10:
		return "+10"
	case Times2:
		return "x2"
	default:
		return "?"
	}
}

// Bonus returns the additive score bonus of the modifier (0 for x2)
func (m ModifierKind) Bonus() int {
	switch m {
	case Plus2:
		return 2
	case Plus4:
		return 4
	case Plus6:
		return 6
	case Plus8:
		return 8
	case Plus10:
		return 10
	default:
		return 0
	}
}

// Doubles returns true for the x2 modifier
func (m ModifierKind) Doubles() bool {
	return m == Times2
}

// ActionKind represents one of the three action cards
type ActionKind int

const (
	Freeze ActionKind = iota
	FlipThree
	SecondChance
)

// String returns the string representation of an action card
func (a ActionKind) String() string {
	switch a {
	case Freeze:
		return "Freeze"
	case FlipThree:
		return "Flip Three"
	case SecondChance:
		return "Second Chance"
	default:
		return "?"
	}
}

// Card represents a single Flip 7 card. Only the field matching Kind is
// meaningful; cards are immutable once created.
type Card struct {
	Kind     Kind
	Value    int // number cards only, 0..MaxNumber
	Modifier ModifierKind
	Action   ActionKind
}

// NumberCard creates a number card with the given face value
func NumberCard(value int) Card {
	if value < 0 || value > MaxNumber {
		panic(fmt.Sprintf("deck: number card value %d out of range", value))
	}
	return Card{Kind: Number, Value: value}
}

// ModifierCard creates a modifier card
func ModifierCard(kind ModifierKind) Card {
	return Card{Kind: Modifier, Modifier: kind}
}

// ActionCard creates an action card
func ActionCard(kind ActionKind) Card {
	return Card{Kind: Action, Action: kind}
}

// String returns the string representation of a card (e.g. "7", "+4", "Freeze")
func (c Card) String() string {
	switch c.Kind {
	case Number:
		return fmt.Sprintf("%d", c.Value)
	case Modifier:
		return c.Modifier.String()
	case Action:
		return c.Action.String()
	default:
		return "?"
	}
}
