package game

// Player binds a seat index and display name to a strategy. Players
// persist across the rounds of a game; hands do not.
type Player struct {
	Seat     int
	Name     string
	Strategy Strategy
}

// NewPlayer creates a player at the given seat
func NewPlayer(seat int, name string, strategy Strategy) *Player {
	if name == "" {
		name = strategy.Name()
	}
	return &Player{Seat: seat, Name: name, Strategy: strategy}
}

// Roster builds seat-ordered players straight from strategies, naming each
// player after its strategy.
func Roster(strategies ...Strategy) []*Player {
	players := make([]*Player, len(strategies))
	for i, s := range strategies {
		players[i] = NewPlayer(i, s.Name(), s)
	}
	return players
}
