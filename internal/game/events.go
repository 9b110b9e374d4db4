package game

// EventType represents a round event type with type safety
type EventType string

// EventType constants for everything the round state machine can log
const (
	EventTypeDraw                 EventType = "draw"
	EventTypeStay                 EventType = "stay"
	EventTypeBust                 EventType = "bust"
	EventTypeFlip7                EventType = "flip7"
	EventTypeFreeze               EventType = "freeze"
	EventTypeFreezeDiscarded      EventType = "freeze_discarded"
	EventTypeFlipThree            EventType = "flip_three"
	EventTypeFlipThreeDiscarded   EventType = "flip_three_discarded"
	EventTypeSecondChanceKept     EventType = "second_chance_kept"
	EventTypeSecondChanceGiven    EventType = "second_chance_given"
	EventTypeSecondChanceUsed     EventType = "second_chance_used"
	EventTypeSecondChanceDiscard  EventType = "second_chance_discarded"
	EventTypeDeckExhausted        EventType = "deck_exhausted"
	EventTypeRoundEnd             EventType = "round_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event is one entry in a round's ordered log. Seat is the acting player;
// Target is the affected opponent for action cards, or -1 when there is
// none. Card is the drawn card's string rendering, empty for events with
// no card.
type Event struct {
	Turn   int       `json:"turn"`
	Type   EventType `json:"type"`
	Seat   int       `json:"seat"`
	Target int       `json:"target"`
	Card   string    `json:"card,omitempty"`
	Detail string    `json:"detail,omitempty"`
}
