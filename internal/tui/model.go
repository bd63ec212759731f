package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/zoneline/internal/civil"
	"github.com/julianstephens/zoneline/internal/models"
	"github.com/julianstephens/zoneline/internal/resolve"
	"github.com/julianstephens/zoneline/internal/storage"
	"github.com/julianstephens/zoneline/internal/tui/components/transitions"
	"github.com/julianstephens/zoneline/internal/tui/components/zonelist"
)

type SessionState int

const (
	StateResolve SessionState = iota
	StateZones
	StateTransitions
	StateResolveForm
)

// tabCount covers only the tabbed states; form and confirm overlays are
// entered and left explicitly.
const tabCount = 3

type ResolveFormModel struct {
	Zone     string
	When     string
	DateOnly bool
}

type Model struct {
	store       storage.Provider
	clock       resolve.ClockSource
	state       SessionState
	keys        KeyMap
	help        help.Model
	zoneList    zonelist.Model
	transitions transitions.Model

	form      *huh.Form
	formModel *ResolveFormModel

	// Last resolution shown on the Resolve tab.
	result     *resolve.Result
	resultZone string
	resultIn   string

	errMsg string

	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, clock resolve.ClockSource) (Model, error) {
	zones, err := store.GetAllZones(true)
	if err != nil {
		return Model{}, fmt.Errorf("failed to list zones: %w", err)
	}

	m := Model{
		store:       store,
		clock:       clock,
		state:       StateResolve,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		zoneList:    zonelist.New(zones, 0, 0),
		transitions: transitions.New(0, 0),
	}

	// Preselect the default zone's table for the transitions tab.
	if settings, err := store.GetSettings(); err == nil {
		if record, err := store.GetZone(settings.DefaultZone); err == nil {
			m.transitions.SetZone(record, clock.NowUTC().Unix())
		}
	}

	return m, nil
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateResolve:
		keys = append(keys, m.keys.Resolve)
	case StateZones:
		keys = append(keys, m.keys.Enter, m.keys.Delete, m.keys.Restore)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateResolve:
		actions = []key.Binding{m.keys.Resolve}
	case StateZones:
		actions = []key.Binding{m.keys.Delete, m.keys.Restore}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshZones reloads the zone list after a mutation.
func (m *Model) refreshZones() {
	zones, err := m.store.GetAllZones(true)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.zoneList.SetZones(zones)
}

// zoneNames lists the live zones for the resolve form's select.
func (m *Model) zoneNames() []string {
	zones, err := m.store.GetAllZones(false)
	if err != nil {
		return []string{"UTC"}
	}
	names := make([]string, 0, len(zones))
	for _, z := range zones {
		names = append(names, z.Name)
	}
	if len(names) == 0 {
		names = []string{"UTC"}
	}
	return names
}

// newResolveForm builds the naive-time entry form.
func (m *Model) newResolveForm() *huh.Form {
	names := m.zoneNames()
	options := make([]huh.Option[string], len(names))
	for i, n := range names {
		options[i] = huh.NewOption(n, n)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Zone").
				Options(options...).
				Value(&m.formModel.Zone),
			huh.NewInput().
				Title("Local date/time").
				Description("YYYY-MM-DD[THH:MM[:SS]]").
				Value(&m.formModel.When).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("enter a date/time")
					}
					_, err := civil.ParseDateTime(strings.TrimSpace(s))
					return err
				}),
			huh.NewConfirm().
				Title("Date only (resolve midnight)").
				Value(&m.formModel.DateOnly),
		),
	).WithTheme(huh.ThemeDracula())
}

// runResolve executes the form's query and stores the outcome for the
// Resolve tab to render.
func (m *Model) runResolve() {
	name := m.formModel.Zone
	input := strings.TrimSpace(m.formModel.When)

	resolver, err := m.resolverFor(name)
	if err != nil {
		m.errMsg = err.Error()
		return
	}

	var res resolve.Result
	if m.formModel.DateOnly {
		date, err := civil.ParseDate(input)
		if err != nil {
			m.errMsg = err.Error()
			return
		}
		res = resolver.ResolveLocalDate(date)
	} else {
		dt, err := civil.ParseDateTime(input)
		if err != nil {
			m.errMsg = err.Error()
			return
		}
		res = resolver.ResolveLocal(dt)
	}

	m.result = &res
	m.resultZone = name
	m.resultIn = input
	m.errMsg = ""
}

func (m *Model) resolverFor(name string) (*resolve.Resolver, error) {
	if strings.EqualFold(name, "UTC") {
		return resolve.UTCResolver(), nil
	}
	record, err := m.store.GetZone(name)
	if err != nil {
		return nil, fmt.Errorf("zone %q not found", name)
	}
	return resolve.New(record.Table), nil
}

// inspectZone switches the transitions tab to the given zone.
func (m *Model) inspectZone(zone models.ZoneRecord) {
	m.transitions.SetZone(zone, m.clock.NowUTC().Unix())
	m.state = StateTransitions
}
