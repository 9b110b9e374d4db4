// Package gamelog streams one JSON line per completed game to a log file,
// so long tournament runs can be inspected or replayed without holding
// every event in memory.
package gamelog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/lox/flip7sim/internal/game"
)

// Record is one game's line in the log
type Record struct {
	GameIndex  int              `json:"game_index"`
	Seed       int64            `json:"seed"`
	Strategies []string         `json:"strategies"`
	Rounds     int              `json:"rounds"`
	Winner     string           `json:"winner"`
	Totals     []int            `json:"totals"`
	Error      string           `json:"error,omitempty"`
	Played     []RoundRecord    `json:"played,omitempty"`
}

// RoundRecord is the per-round detail embedded in a game's record
type RoundRecord struct {
	Scores []int        `json:"scores"`
	Winner int          `json:"winner"`
	Events []game.Event `json:"events,omitempty"`
}

// Writer appends records as JSON lines. Safe for concurrent use by the
// tournament worker pool; lines are written whole under a single lock.
type Writer struct {
	mu  sync.Mutex
	f   *os.File
	buf *bufio.Writer
	enc *json.Encoder
}

// Create opens (and truncates) the log file at path
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create game log: %w", err)
	}
	buf := bufio.NewWriter(f)
	return &Writer{f: f, buf: buf, enc: json.NewEncoder(buf)}, nil
}

// Write appends one record as a single JSON line
func (w *Writer) Write(rec Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.enc.Encode(rec); err != nil {
		return fmt.Errorf("failed to write game log record: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.buf.Flush(); err != nil {
		w.f.Close()
		return fmt.Errorf("failed to flush game log: %w", err)
	}
	return w.f.Close()
}

// FromResult builds a record from a finished game
func FromResult(index int, result *game.GameResult) Record {
	rec := Record{
		GameIndex:  index,
		Seed:       result.Seed,
		Strategies: make([]string, len(result.Seats)),
		Rounds:     result.Rounds,
		Winner:     result.Seats[result.Winner].Name,
		Totals:     make([]int, len(result.Seats)),
	}
	for i, seat := range result.Seats {
		rec.Strategies[i] = seat.Strategy
		rec.Totals[i] = seat.Total
	}
	for _, round := range result.Played {
		rr := RoundRecord{
			Scores: make([]int, len(round.Seats)),
			Winner: round.Winner,
			Events: round.Events,
		}
		for i, seat := range round.Seats {
			rr.Scores[i] = seat.Score
		}
		rec.Played = append(rec.Played, rr)
	}
	return rec
}
