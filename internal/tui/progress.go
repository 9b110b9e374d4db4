// Package tui renders the league progress bar while a tournament runs.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// GameCompleteMsg reports tournament progress; the league's completion
// callback sends one per finished game.
type GameCompleteMsg struct {
	Completed int
	Total     int
}

// DoneMsg tells the progress UI the run is finished
type DoneMsg struct{}

// ProgressModel is a bubbletea model showing a progress bar with a
// games-per-second rate line.
type ProgressModel struct {
	bar       progress.Model
	total     int
	completed int
	start     time.Time
	aborted   bool
}

// NewProgressModel creates a progress model for a run of total games
func NewProgressModel(total int) ProgressModel {
	return ProgressModel{
		bar:   progress.New(progress.WithDefaultGradient()),
		total: total,
		start: time.Now(),
	}
}

// NewProgram wraps the model in a bubbletea program
func NewProgram(total int) *tea.Program {
	return tea.NewProgram(NewProgressModel(total))
}

// Aborted reports whether the user quit before the run finished
func (m ProgressModel) Aborted() bool {
	return m.aborted
}

// Init implements tea.Model
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = msg.Width - 4
		if m.bar.Width > 72 {
			m.bar.Width = 72
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.aborted = true
			return m, tea.Quit
		}
		return m, nil

	case GameCompleteMsg:
		m.completed = msg.Completed
		m.total = msg.Total
		return m, nil

	case DoneMsg:
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model
func (m ProgressModel) View() string {
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.completed) / float64(m.total)
	}
	elapsed := time.Since(m.start).Seconds()
	rate := 0.0
	if elapsed > 0 {
		rate = float64(m.completed) / elapsed
	}
	return fmt.Sprintf("\n  %s\n\n  %d/%d games (%.1f%%)  %.0f games/sec\n",
		m.bar.ViewAs(pct), m.completed, m.total, pct*100, rate)
}
