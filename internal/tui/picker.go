// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"venvctl/internal/discovery"
)

// PickerOptions configures the environment picker.
type PickerOptions struct {
	// Title is displayed above the list.
	Title string
	// Items are the candidates to choose from.
	Items []discovery.Descriptor
	// Height limits the visible height (0 for auto).
	Height int
	// Width limits the visible width (0 for auto).
	Width int
}

// pickerItem implements list.Item for one environment candidate.
type pickerItem struct {
	d discovery.Descriptor
}

func (i pickerItem) Title() string       { return i.d.Name }
func (i pickerItem) Description() string { return i.d.Source.String() + " · " + i.d.Path }
func (i pickerItem) FilterValue() string { return i.d.Name }

// pickerModel is the bubbletea model for the picker.
type pickerModel struct {
	list      list.Model
	quitting  bool
	cancelled bool
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// While the user is typing a filter, only ctrl+c cancels.
		if m.list.FilterState() == list.Filtering {
			if msg.String() == "ctrl+c" {
				m.quitting = true
				m.cancelled = true
				return m, tea.Quit
			}
			break
		}
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.quitting = true
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 2)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.quitting {
		return ""
	}
	return m.list.View()
}

// newPickerModel builds the model; split out so tests can drive Update
// without running a terminal program.
func newPickerModel(opts PickerOptions) pickerModel {
	items := make([]list.Item, len(opts.Items))
	for i, d := range opts.Items {
		items[i] = pickerItem{d: d}
	}

	height := opts.Height
	if height == 0 {
		height = 14
	}
	width := opts.Width
	if width == 0 {
		width = 60
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, width, height)
	l.Title = opts.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

	return pickerModel{list: l}
}

// Pick presents the candidates and returns the chosen one. A cancelled
// picker returns (nil, nil): cancellation is a silent no-op for callers.
func Pick(opts PickerOptions) (*discovery.Descriptor, error) {
	if len(opts.Items) == 0 {
		return nil, nil
	}

	p := tea.NewProgram(newPickerModel(opts))
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := finalModel.(pickerModel)
	if m.cancelled {
		return nil, nil
	}
	if item, ok := m.list.SelectedItem().(pickerItem); ok {
		d := item.d
		return &d, nil
	}
	return nil, nil
}
