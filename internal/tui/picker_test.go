package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []Item {
	return []Item{
		{Name: "personal", Account: "me@gmail.com"},
		{Name: "work", Account: "a@x.com", Project: "proj-1", Active: true},
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestEnterSelectsHighlightedItem(t *testing.T) {
	var m tea.Model = NewModel(testItems())

	m, _ = m.Update(keyMsg("enter"))
	model, ok := m.(Model)
	require.True(t, ok)
	assert.Equal(t, "personal", model.Choice())
	assert.False(t, model.Aborted())
}

func TestNavigationThenSelect(t *testing.T) {
	var m tea.Model = NewModel(testItems())

	m, _ = m.Update(keyMsg("j"))
	m, _ = m.Update(keyMsg("enter"))
	model := m.(Model)
	assert.Equal(t, "work", model.Choice())
}

func TestEscAborts(t *testing.T) {
	var m tea.Model = NewModel(testItems())

	m, _ = m.Update(keyMsg("esc"))
	model := m.(Model)
	assert.True(t, model.Aborted())
	assert.Empty(t, model.Choice())
}

func TestQAborts(t *testing.T) {
	var m tea.Model = NewModel(testItems())

	m, _ = m.Update(keyMsg("q"))
	model := m.(Model)
	assert.True(t, model.Aborted())
}

func TestItemRendering(t *testing.T) {
	active := Item{Name: "work", Account: "a@x.com", Project: "proj-1", Active: true}
	assert.Contains(t, active.Title(), "work")
	assert.Contains(t, active.Title(), "(active)")
	assert.Contains(t, active.Description(), "a@x.com")
	assert.Contains(t, active.Description(), "proj-1")

	bare := Item{Name: "scratch"}
	assert.Contains(t, bare.Description(), "no details saved")
	assert.Contains(t, bare.FilterValue(), "scratch")
}
