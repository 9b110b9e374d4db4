// Package game implements the core Flip 7 game logic.
//
// The main types are Round, which drives a single round of draws, busts and
// action-card effects to completion, and Game, which plays successive rounds
// for a fixed roster until a cumulative total reaches the target score.
//
// # Basic Usage
//
// Play one game between catalog strategies:
//
//	players := game.Roster(strategyA, strategyB, strategyC)
//	g := game.NewGame(players, game.DefaultRules(), 42)
//	result, err := g.Run()
//
// Or a single round with an explicit RNG:
//
//	round := game.NewRound(randutil.New(seed), players, rules)
//	result, err := round.Run()
//
// # Determinism
//
// Every shuffle comes from an injected RNG and every strategy decision is a
// pure function of the visible state, so an identical seed and roster always
// reproduce the identical result. Tests stack decks explicitly:
//
//	round := game.NewRound(nil, players, rules,
//	    game.WithDeck(deck.Stacked(deck.NumberCard(5), deck.NumberCard(5))))
//
// # Architecture
//
// Round delegates to specialized components:
//   - deck.Deck: the 94-card shuffled draw order, rebuilt fresh per round
//   - Hand: per-seat card state with bust / Flip 7 / Second Chance handling
//   - Strategy: hit/stay decisions and action-card targeting
//
// Hands accept mutations only while Active; a mutation on a terminal hand
// panics and Round.Run converts the panic into an error, isolating the
// failure to that one round.
package game
