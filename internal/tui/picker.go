// Package tui implements the interactive context picker shown when
// `gcpctx switch` is invoked without a context name.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	pickerWidth      = 64
	pickerHeight     = 18
	descriptionWidth = 56
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	frameStyle  = lipgloss.NewStyle().Margin(1, 2)
)

// Item is one selectable context in the picker.
type Item struct {
	Name    string
	Account string
	Project string
	Active  bool
}

// Title renders the context name, marking the active one.
func (i Item) Title() string {
	if i.Active {
		return activeStyle.Render("* " + i.Name + " (active)")
	}
	return "  " + i.Name
}

// Description renders account and project, truncated to the list width.
func (i Item) Description() string {
	parts := []string{}
	if i.Account != "" {
		parts = append(parts, i.Account)
	}
	if i.Project != "" {
		parts = append(parts, i.Project)
	}
	if len(parts) == 0 {
		return "  (no details saved)"
	}
	return "  " + runewidth.Truncate(strings.Join(parts, " · "), descriptionWidth, "…")
}

// FilterValue makes items findable by name or account.
func (i Item) FilterValue() string { return i.Name + " " + i.Account }

// Model is the bubbletea model behind the picker.
type Model struct {
	list    list.Model
	choice  string
	aborted bool
	status  string
}

// NewModel builds a picker over the given items.
func NewModel(items []Item) Model {
	listItems := make([]list.Item, len(items))
	for idx, item := range items {
		listItems[idx] = item
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(listItems, delegate, pickerWidth, pickerHeight)
	l.Title = "Select GCP context"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "switch")),
			key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy name")),
		}
	}

	return Model{list: l}
}

// Choice returns the selected context name, or "" when the picker was
// aborted.
func (m Model) Choice() string { return m.choice }

// Aborted reports whether the user left without selecting.
func (m Model) Aborted() bool { return m.aborted }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := frameStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil

	case tea.KeyMsg:
		// Filtering owns the keyboard while active.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(Item); ok {
				m.choice = item.Name
				return m, tea.Quit
			}
		case "y":
			if item, ok := m.list.SelectedItem().(Item); ok {
				if err := clipboard.WriteAll(item.Name); err != nil {
					m.status = fmt.Sprintf("copy failed: %v", err)
				} else {
					m.status = fmt.Sprintf("copied %q", item.Name)
				}
			}
			return m, nil
		case "q", "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	view := frameStyle.Render(m.list.View())
	if m.status != "" {
		view += "\n" + statusStyle.Render("  "+m.status)
	}
	return view
}

// Pick runs the interactive picker and returns the selected context name.
// An abort (q/esc) returns "" with no error.
func Pick(items []Item) (string, error) {
	program := tea.NewProgram(NewModel(items), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("picker failed: %w", err)
	}
	model, ok := final.(Model)
	if !ok {
		return "", fmt.Errorf("picker returned unexpected model type %T", final)
	}
	if model.Aborted() {
		return "", nil
	}
	return model.Choice(), nil
}
