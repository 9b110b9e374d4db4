package strategy

import (
	"fmt"
	"strings"
)

// The discrete value sets the stay conditions may take. Together they
// enumerate to the 575-variant catalog: 25 singles, 175 pairs and 375
// triples.
const (
	MinScoreThreshold = 10
	MaxScoreThreshold = 24
	MinHandLimit      = 3
	MaxHandLimit      = 7
	MinHighCard       = 8
	MaxHighCard       = 12
)

// Config holds up to three optional stay conditions. A zero field means
// the condition is disabled; at least one must be enabled. The hit/stay
// decision stays as soon as ANY enabled condition holds.
type Config struct {
	// ScoreThreshold stays once the hand's current score (modifiers
	// included) reaches it. Valid values are 10..24.
	ScoreThreshold int `json:"score_threshold,omitempty"`

	// HandLimit stays once the hand holds this many distinct number
	// cards. Valid values are 3..7.
	HandLimit int `json:"hand_limit,omitempty"`

	// HighCardThreshold stays once any held number card is at least this
	// value. Valid values are 8..12.
	HighCardThreshold int `json:"high_card_threshold,omitempty"`
}

// Validate rejects configurations outside the documented discrete sets and
// configurations with no stay condition at all. It never silently defaults.
func (c Config) Validate() error {
	if c.ScoreThreshold == 0 && c.HandLimit == 0 && c.HighCardThreshold == 0 {
		return fmt.Errorf("invalid strategy config: at least one stay condition must be set")
	}
	if c.ScoreThreshold != 0 && (c.ScoreThreshold < MinScoreThreshold || c.ScoreThreshold > MaxScoreThreshold) {
		return fmt.Errorf("invalid strategy config: score_threshold %d outside %d..%d", c.ScoreThreshold, MinScoreThreshold, MaxScoreThreshold)
	}
	if c.HandLimit != 0 && (c.HandLimit < MinHandLimit || c.HandLimit > MaxHandLimit) {
		return fmt.Errorf("invalid strategy config: hand_limit %d outside %d..%d", c.HandLimit, MinHandLimit, MaxHandLimit)
	}
	if c.HighCardThreshold != 0 && (c.HighCardThreshold < MinHighCard || c.HighCardThreshold > MaxHighCard) {
		return fmt.Errorf("invalid strategy config: high_card_threshold %d outside %d..%d", c.HighCardThreshold, MinHighCard, MaxHighCard)
	}
	return nil
}

// Name derives the canonical catalog name for the configuration, e.g.
// "score16", "hand5-high9" or "score16-hand5-high9".
func (c Config) Name() string {
	var parts []string
	if c.ScoreThreshold != 0 {
		parts = append(parts, fmt.Sprintf("score%d", c.ScoreThreshold))
	}
	if c.HandLimit != 0 {
		parts = append(parts, fmt.Sprintf("hand%d", c.HandLimit))
	}
	if c.HighCardThreshold != 0 {
		parts = append(parts, fmt.Sprintf("high%d", c.HighCardThreshold))
	}
	return strings.Join(parts, "-")
}

// ParseName resolves a canonical catalog name back to its configuration
func ParseName(name string) (Config, error) {
	var cfg Config
	if name == "" {
		return cfg, fmt.Errorf("invalid strategy name: empty")
	}
	for _, part := range strings.Split(name, "-") {
		var field *int
		var prefix string
		switch {
		case strings.HasPrefix(part, "score"):
			field, prefix = &cfg.ScoreThreshold, "score"
		case strings.HasPrefix(part, "hand"):
			field, prefix = &cfg.HandLimit, "hand"
		case strings.HasPrefix(part, "high"):
			field, prefix = &cfg.HighCardThreshold, "high"
		default:
			return Config{}, fmt.Errorf("invalid strategy name %q: unknown condition %q", name, part)
		}
		if *field != 0 {
			return Config{}, fmt.Errorf("invalid strategy name %q: duplicate condition %q", name, prefix)
		}
		var value int
		if _, err := fmt.Sscanf(part[len(prefix):], "%d", &value); err != nil || value <= 0 {
			return Config{}, fmt.Errorf("invalid strategy name %q: bad value in %q", name, part)
		}
		*field = value
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid strategy name %q: %w", name, err)
	}
	if cfg.Name() != name {
		return Config{}, fmt.Errorf("invalid strategy name %q: canonical form is %q", name, cfg.Name())
	}
	return cfg, nil
}
