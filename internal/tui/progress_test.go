package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressModelUpdatesCounts(t *testing.T) {
	m := NewProgressModel(100)

	updated, cmd := m.Update(GameCompleteMsg{Completed: 42, Total: 100})
	require.Nil(t, cmd)
	m = updated.(ProgressModel)

	view := m.View()
	assert.Contains(t, view, "42/100")
	assert.Contains(t, view, "42.0%")
}

func TestProgressModelQuitsOnDone(t *testing.T) {
	m := NewProgressModel(10)
	_, cmd := m.Update(DoneMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestProgressModelAbortsOnCtrlC(t *testing.T) {
	m := NewProgressModel(10)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.True(t, updated.(ProgressModel).Aborted())
}

func TestProgressModelZeroTotal(t *testing.T) {
	m := NewProgressModel(0)
	view := m.View()
	assert.True(t, strings.Contains(view, "0/0"))
}
