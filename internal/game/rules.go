package game

import "fmt"

// Rules holds the game-level parameters and the rule toggles whose readings
// differ between published variants. The zero value is not valid; start
// from DefaultRules.
type Rules struct {
	// TargetScore ends the game after the first completed round in which
	// any cumulative total reaches it.
	TargetScore int

	// MaxRounds is a safety valve: a game still unfinished after this many
	// rounds is reported as an error rather than looping forever.
	MaxRounds int

	// ModifierExtendsTurn controls what happens after a modifier draw.
	// False: the draw ends the turn like any other safe draw. True: the
	// drawer immediately re-evaluates hit/stay and may draw again within
	// the same turn.
	ModifierExtendsTurn bool

	// DealInitial deals one card to every player at round start, resolved
	// through the normal draw path (actions included).
	DealInitial bool

	// EndRoundOnFlip7 ends the whole round as soon as any hand completes
	// Flip 7, instead of only staying that one hand.
	EndRoundOnFlip7 bool
}

// DefaultRules returns the standard rule set
func DefaultRules() Rules {
	return Rules{
		TargetScore: 200,
		MaxRounds:   200,
	}
}

// Validate checks the rules for internal consistency
func (r Rules) Validate() error {
	if r.TargetScore <= 0 {
		return fmt.Errorf("target_score must be positive, got %d", r.TargetScore)
	}
	if r.MaxRounds <= 0 {
		return fmt.Errorf("max_rounds must be positive, got %d", r.MaxRounds)
	}
	return nil
}
