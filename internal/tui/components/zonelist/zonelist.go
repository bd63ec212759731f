package zonelist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/zoneline/internal/models"
)

type InspectZoneMsg struct {
	Zone models.ZoneRecord
}

type DeleteZoneMsg struct {
	Name string
}

type RestoreZoneMsg struct {
	Name string
}

type Item struct {
	Zone models.ZoneRecord
}

func (i Item) Title() string {
	if i.Zone.DeletedAt != nil {
		return "👻 " + i.Zone.Name + " (deleted)"
	}
	return i.Zone.Name
}
func (i Item) Description() string {
	desc := fmt.Sprintf("%s | %d transitions", i.Zone.Source, len(i.Zone.Table.Transitions))
	if i.Zone.DeletedAt != nil {
		desc += " | can restore with 'r'"
	}
	return desc
}
func (i Item) FilterValue() string { return i.Zone.Name }

type KeyMap struct {
	Inspect key.Binding
	Delete  key.Binding
	Restore key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Inspect: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "transitions"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(zones []models.ZoneRecord, width, height int) Model {
	items := make([]list.Item, len(zones))
	for i, z := range zones {
		items[i] = Item{Zone: z}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Zones"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is handled globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Inspect, keys.Delete, keys.Restore}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Inspect, keys.Delete, keys.Restore}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetZones(zones []models.ZoneRecord) {
	items := make([]list.Item, len(zones))
	for i, z := range zones {
		items[i] = Item{Zone: z}
	}
	m.list.SetItems(items)
}

// Selected returns the highlighted zone, if any.
func (m Model) Selected() (models.ZoneRecord, bool) {
	if i, ok := m.list.SelectedItem().(Item); ok {
		return i.Zone, true
	}
	return models.ZoneRecord{}, false
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Inspect):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Zone.DeletedAt == nil {
					return m, func() tea.Msg { return InspectZoneMsg{Zone: i.Zone} }
				}
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Zone.DeletedAt == nil {
					return m, func() tea.Msg { return DeleteZoneMsg{Name: i.Zone.Name} }
				}
			}
		case key.Matches(msg, m.keys.Restore):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Zone.DeletedAt != nil {
					return m, func() tea.Msg { return RestoreZoneMsg{Name: i.Zone.Name} }
				}
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No zones stored.\n  Import one with 'zoneline zone import <name>'."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
