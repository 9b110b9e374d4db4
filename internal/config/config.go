// Package config loads league configuration from HCL files.
//
// A file can configure the league shape, the rule toggles, and an explicit
// strategy roster:
//
//	league {
//	  turns            = 50
//	  players_per_game = 5
//	  seed             = 42
//	}
//
//	rules {
//	  target_score          = 200
//	  modifier_extends_turn = true
//	}
//
//	strategy "score15" {}
//	strategy "custom" {
//	  score_threshold = 18
//	  hand_limit      = 5
//	}
//
// Every block is optional; a missing file yields the defaults, with the
// full 575-variant catalog as the roster.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/flip7sim/internal/game"
	"github.com/lox/flip7sim/internal/strategy"
)

// File is the decoded HCL configuration
type File struct {
	League     *LeagueBlock    `hcl:"league,block"`
	Rules      *RulesBlock     `hcl:"rules,block"`
	Strategies []StrategyBlock `hcl:"strategy,block"`
}

// LeagueBlock configures the league shape
type LeagueBlock struct {
	Turns          int    `hcl:"turns,optional"`
	PlayersPerGame int    `hcl:"players_per_game,optional"`
	Seed           int64  `hcl:"seed,optional"`
	Workers        int    `hcl:"workers,optional"`
	Output         string `hcl:"output,optional"`
	GameLog        string `hcl:"game_log,optional"`
}

// RulesBlock configures the game rules
type RulesBlock struct {
	TargetScore         int  `hcl:"target_score,optional"`
	MaxRounds           int  `hcl:"max_rounds,optional"`
	ModifierExtendsTurn bool `hcl:"modifier_extends_turn,optional"`
	DealInitial         bool `hcl:"deal_initial,optional"`
	EndRoundOnFlip7     bool `hcl:"end_round_on_flip7,optional"`
}

// StrategyBlock names one roster entry. An empty block resolves the label
// as a catalog name; a block with fields defines the stay conditions
// directly, with the label as the display name.
type StrategyBlock struct {
	Name              string `hcl:"name,label"`
	ScoreThreshold    int    `hcl:"score_threshold,optional"`
	HandLimit         int    `hcl:"hand_limit,optional"`
	HighCardThreshold int    `hcl:"high_card_threshold,optional"`
}

// Load parses the HCL file at path. A missing file is not an error: it
// returns an empty File whose accessors produce all defaults.
func Load(path string) (*File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &File{}, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %s", path, diags.Error())
	}

	var cfg File
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %s", path, diags.Error())
	}
	return &cfg, nil
}

// GameRules returns the configured rules on top of the defaults
func (f *File) GameRules() game.Rules {
	rules := game.DefaultRules()
	if f.Rules == nil {
		return rules
	}
	if f.Rules.TargetScore != 0 {
		rules.TargetScore = f.Rules.TargetScore
	}
	if f.Rules.MaxRounds != 0 {
		rules.MaxRounds = f.Rules.MaxRounds
	}
	rules.ModifierExtendsTurn = f.Rules.ModifierExtendsTurn
	rules.DealInitial = f.Rules.DealInitial
	rules.EndRoundOnFlip7 = f.Rules.EndRoundOnFlip7
	return rules
}

// Roster builds the configured roster, or the full catalog when no
// strategy blocks are present. Configuration errors surface here, before
// any simulation starts.
func (f *File) Roster() ([]game.Strategy, error) {
	if len(f.Strategies) == 0 {
		catalog := strategy.Catalog()
		roster := make([]game.Strategy, len(catalog))
		for i, s := range catalog {
			roster[i] = s
		}
		return roster, nil
	}

	roster := make([]game.Strategy, 0, len(f.Strategies))
	for _, block := range f.Strategies {
		s, err := block.build()
		if err != nil {
			return nil, err
		}
		roster = append(roster, s)
	}
	return roster, nil
}

func (b StrategyBlock) build() (game.Strategy, error) {
	cfg := strategy.Config{
		ScoreThreshold:    b.ScoreThreshold,
		HandLimit:         b.HandLimit,
		HighCardThreshold: b.HighCardThreshold,
	}
	if cfg == (strategy.Config{}) {
		s, err := strategy.Lookup(b.Name)
		if err != nil {
			return nil, fmt.Errorf("strategy %q: %w", b.Name, err)
		}
		return s, nil
	}
	s, err := strategy.NewNamed(b.Name, cfg)
	if err != nil {
		return nil, fmt.Errorf("strategy %q: %w", b.Name, err)
	}
	return s, nil
}
