package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/lox/flip7sim/internal/game"
	"github.com/lox/flip7sim/internal/strategy"
)

type GameCmd struct {
	Strategies          []string `help:"Strategy names to seat, in seat order" default:"score15,score18-hand5,high9,score14-hand4-high10,score21"`
	Seed                int64    `help:"Game seed; 0 derives one from the clock"`
	TargetScore         int      `help:"Cumulative score that ends the game" default:"200"`
	MaxRounds           int      `help:"Abort the game after this many rounds" default:"200"`
	ModifierExtendsTurn bool     `help:"Modifier draws let the drawer keep hitting in the same turn"`
	DealInitial         bool     `help:"Deal one card to every player at round start"`
	EndRoundOnFlip7     bool     `help:"A completed Flip 7 ends the round for every hand"`
	Verbose             bool     `help:"Narrate every event of every round"`
	LogLevel            string   `default:"warn" help:"Log level (debug|info|warn|error)"`
	NoColor             bool     `help:"Disable colour output"`
}

func (c *GameCmd) Run() error {
	logger, err := newLogger(c.LogLevel, c.NoColor)
	if err != nil {
		return err
	}

	if len(c.Strategies) < 2 {
		return fmt.Errorf("a game needs at least 2 strategies, got %d", len(c.Strategies))
	}
	strategies := make([]game.Strategy, len(c.Strategies))
	for i, name := range c.Strategies {
		s, err := strategy.Lookup(name)
		if err != nil {
			return err
		}
		strategies[i] = s
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rules := game.DefaultRules()
	rules.TargetScore = c.TargetScore
	rules.MaxRounds = c.MaxRounds
	rules.ModifierExtendsTurn = c.ModifierExtendsTurn
	rules.DealInitial = c.DealInitial
	rules.EndRoundOnFlip7 = c.EndRoundOnFlip7

	g := game.NewGame(game.Roster(strategies...), rules, seed, game.WithGameLogger(logger))
	result, err := g.Run()
	if err != nil {
		return err
	}

	if c.Verbose {
		narrateRounds(result)
	}
	printGameResult(result, seed)
	return nil
}

func narrateRounds(result *game.GameResult) {
	names := make([]string, len(result.Seats))
	for _, s := range result.Seats {
		names[s.Seat] = s.Name
	}
	for i, round := range result.Played {
		fmt.Println(headerStyle.Render(fmt.Sprintf("Round %d", i+1)))
		for _, ev := range round.Events {
			fmt.Println("  " + formatEvent(ev, names))
		}
	}
}

func formatEvent(ev game.Event, names []string) string {
	line := fmt.Sprintf("%s: %s", names[ev.Seat], ev.Type)
	if ev.Card != "" {
		line += " " + ev.Card
	}
	if ev.Target >= 0 && ev.Target < len(names) {
		line += " -> " + names[ev.Target]
	}
	if ev.Detail != "" {
		line += " (" + ev.Detail + ")"
	}
	switch ev.Type {
	case game.EventTypeBust:
		return bustStyle.Render(line)
	case game.EventTypeFlip7:
		return winnerStyle.Render(line)
	case game.EventTypeRoundEnd, game.EventTypeDeckExhausted:
		return dimStyle.Render(line)
	}
	return line
}

func printGameResult(result *game.GameResult, seed int64) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("Game over after %d rounds (seed %d)", result.Rounds, seed)))

	order := make([]game.SeatTotal, len(result.Seats))
	copy(order, result.Seats)
	sort.Slice(order, func(i, j int) bool {
		if order[i].Total != order[j].Total {
			return order[i].Total > order[j].Total
		}
		return order[i].Seat < order[j].Seat
	})

	fmt.Println(headerStyle.Render(fmt.Sprintf("%-28s %6s %5s %5s %5s %6s %6s",
		"strategy", "total", "wins", "bust", "stay", "froze", "flip7")))
	for _, s := range order {
		line := fmt.Sprintf("%-28s %6d %5d %5d %5d %6d %6d",
			s.Name, s.Total, s.RoundWins, s.Busts, s.Stays, s.Frozen, s.Flip7s)
		if s.Seat == result.Winner {
			line = winnerStyle.Render(line + "  *")
		}
		fmt.Println(line)
	}
}
