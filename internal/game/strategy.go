package game

// Decision is a strategy's answer to hit-or-stay
type Decision int

const (
	Hit Decision = iota
	Stay
)

// String returns the string representation of a decision
func (d Decision) String() string {
	if d == Stay {
		return "stay"
	}
	return "hit"
}

// SeatView is the publicly observable state of one seat: what every player
// at the table can see without looking at the exact cards. Targeting
// heuristics work from this alone.
type SeatView struct {
	Seat        int
	Name        string
	Status      Status
	NumberCount int
	NumberSum   int
	HasToken    bool
}

// TableView is a snapshot of the table handed to a strategy when it must
// decide. Self is the seat index of the deciding player.
type TableView struct {
	Self          int
	Seats         []SeatView
	DeckRemaining int
}

// Strategy decides when to stop drawing and whom to target with action
// cards. Implementations must be deterministic: the same hand and table
// snapshot always produce the same answer, so rounds replay exactly from
// a seed.
//
// Target methods return (seat, true) for the chosen opponent, or false
// when no opponent is eligible; the round then discards the card's effect.
type Strategy interface {
	Name() string
	HitOrStay(hand *Hand, table *TableView) Decision
	FreezeTarget(table *TableView) (int, bool)
	Flip3Target(table *TableView) (int, bool)
	SecondChanceTarget(table *TableView) (int, bool)
}
