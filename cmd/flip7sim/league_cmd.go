package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lox/flip7sim/internal/config"
	"github.com/lox/flip7sim/internal/game"
	"github.com/lox/flip7sim/internal/gamelog"
	"github.com/lox/flip7sim/internal/tournament"
	"github.com/lox/flip7sim/internal/tui"
)

type LeagueCmd struct {
	Config         string `help:"HCL config file" default:"league.hcl" type:"path"`
	Turns          int    `help:"Override the configured turn count"`
	PlayersPerGame int    `help:"Override the configured table size"`
	Seed           int64  `help:"Override the league seed; 0 derives one from the clock"`
	Workers        int    `help:"Concurrent games; 0 means one per CPU"`
	Output         string `help:"Write the JSON report here" type:"path"`
	GameLog        string `help:"Write one JSONL record per game here" type:"path"`
	Top            int    `default:"20" help:"Leaderboard rows to print; 0 prints all"`
	Progress       string `default:"dots" enum:"tui,dots,none" help:"Progress display (tui|dots|none)"`
	LogLevel       string `default:"warn" help:"Log level (debug|info|warn|error)"`
	NoColor        bool   `help:"Disable colour output"`
}

func (c *LeagueCmd) Run() error {
	logger, err := newLogger(c.LogLevel, c.NoColor)
	if err != nil {
		return err
	}

	file, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	cfg := tournament.DefaultConfig()
	cfg.Rules = file.GameRules()
	cfg.Logger = logger

	output := c.Output
	gameLogPath := c.GameLog
	if lb := file.League; lb != nil {
		if lb.Turns > 0 {
			cfg.Turns = lb.Turns
		}
		if lb.PlayersPerGame > 0 {
			cfg.PlayersPerGame = lb.PlayersPerGame
		}
		if lb.Seed != 0 {
			cfg.Seed = lb.Seed
		}
		if lb.Workers > 0 {
			cfg.Workers = lb.Workers
		}
		if output == "" {
			output = lb.Output
		}
		if gameLogPath == "" {
			gameLogPath = lb.GameLog
		}
	}

	// Flags beat the config file
	if c.Turns > 0 {
		cfg.Turns = c.Turns
	}
	if c.PlayersPerGame > 0 {
		cfg.PlayersPerGame = c.PlayersPerGame
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	if c.Workers > 0 {
		cfg.Workers = c.Workers
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	roster, err := file.Roster()
	if err != nil {
		return err
	}

	if gameLogPath != "" {
		w, err := gamelog.Create(gameLogPath)
		if err != nil {
			return fmt.Errorf("opening game log: %w", err)
		}
		defer w.Close()
		cfg.GameLog = w
	}

	ctx, cancel := signalContext()
	defer cancel()

	var results *tournament.Results
	switch c.Progress {
	case "tui":
		results, err = runWithProgressBar(ctx, cancel, roster, cfg)
	case "dots":
		results, err = runWithDots(ctx, roster, cfg)
	default:
		results, err = runLeague(ctx, roster, cfg)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("league aborted")
		}
		return err
	}

	printLeaderboard(results, c.Top)

	if output != "" {
		if err := tournament.WriteReport(output, results); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Println(dimStyle.Render("report written to " + output))
	}
	if gameLogPath != "" {
		fmt.Println(dimStyle.Render("game log written to " + gameLogPath))
	}
	return nil
}

func runLeague(ctx context.Context, roster []game.Strategy, cfg tournament.Config) (*tournament.Results, error) {
	l, err := tournament.New(roster, cfg)
	if err != nil {
		return nil, err
	}
	return l.Run(ctx)
}

func runWithDots(ctx context.Context, roster []game.Strategy, cfg tournament.Config) (*tournament.Results, error) {
	cfg.OnGameComplete = func(completed, total int) {
		fmt.Print(".")
		if completed%50 == 0 || completed == total {
			fmt.Printf(" %d/%d\n", completed, total)
		}
	}
	return runLeague(ctx, roster, cfg)
}

func runWithProgressBar(ctx context.Context, cancel context.CancelFunc, roster []game.Strategy, cfg tournament.Config) (*tournament.Results, error) {
	l, err := tournament.New(roster, cfg)
	if err != nil {
		return nil, err
	}

	p := tui.NewProgram(l.TotalGames())
	cfg.OnGameComplete = func(completed, total int) {
		p.Send(tui.GameCompleteMsg{Completed: completed, Total: total})
	}
	l, err = tournament.New(roster, cfg)
	if err != nil {
		return nil, err
	}

	var (
		results *tournament.Results
		runErr  error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		results, runErr = l.Run(ctx)
		p.Send(tui.DoneMsg{})
	}()

	model, uiErr := p.Run()
	if m, ok := model.(tui.ProgressModel); ok && m.Aborted() {
		cancel()
	}
	<-done
	if uiErr != nil {
		return nil, uiErr
	}
	return results, runErr
}

func printLeaderboard(results *tournament.Results, top int) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("League complete: %d games over %d turns (seed %d)",
		results.Games, results.Turns, results.Seed)))
	if results.FailedGames > 0 {
		fmt.Println(bustStyle.Render(fmt.Sprintf("%d games failed and were excluded", results.FailedGames)))
	}

	rows := results.Standings
	if top > 0 && top < len(rows) {
		rows = rows[:top]
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%4s %-28s %6s %7s %8s %8s %8s %6s",
		"rank", "strategy", "wins", "rate", "mean", "median", "stddev", "flip7")))
	for i, s := range rows {
		line := fmt.Sprintf("%4d %-28s %6d %6.1f%% %8.1f %8.1f %8.1f %6d",
			i+1, s.Name, s.Wins, s.WinRate*100, s.MeanScore, s.MedianScore, s.StdDev, s.Flip7s)
		if i == 0 {
			line = winnerStyle.Render(line)
		}
		fmt.Println(line)
	}
	if top > 0 && top < len(results.Standings) {
		fmt.Println(dimStyle.Render(fmt.Sprintf("... %d more strategies", len(results.Standings)-top)))
	}
	fmt.Println(dimStyle.Render(fmt.Sprintf("run %s finished in %s", results.RunID, results.Elapsed.Round(time.Millisecond))))
}
