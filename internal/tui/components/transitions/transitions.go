package transitions

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/zoneline/internal/civil"
	"github.com/julianstephens/zoneline/internal/constants"
	"github.com/julianstephens/zoneline/internal/models"
)

var (
	whenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(24)

	zoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	currentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))
)

type Model struct {
	viewport viewport.Model
	Zone     *models.ZoneRecord
	nowUnix  int64
	width    int
	height   int
}

func New(width, height int) Model {
	vp := viewport.New(width, height)
	return Model{
		viewport: vp,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Zone == nil {
		return "No zone selected. Pick one on the Zones tab."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

// SetZone points the browser at a zone; nowUnix marks the interval the
// current instant falls into.
func (m *Model) SetZone(zone models.ZoneRecord, nowUnix int64) {
	m.Zone = &zone
	m.nowUnix = nowUnix
	m.Render()
}

func (m *Model) Render() {
	if m.Zone == nil {
		m.viewport.SetContent("No zone loaded.")
		return
	}

	tab := m.Zone.Table
	var b strings.Builder

	initial := tab.Zones[tab.InitialZone]
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		whenStyle.Render("(beginning of table)"),
		zoneStyle.Render(initial.Name),
		offsetStyle.Render(offsetLabel(initial.OffsetSeconds, initial.IsDST)),
	))

	_, curStart, _ := tab.Lookup(m.nowUnix)
	for _, tr := range tab.Transitions {
		z := tab.Zones[tr.ZoneIndex]
		when := time.Unix(tr.When, 0).UTC().Format(constants.TimestampFormat)

		line := fmt.Sprintf("%s %s %s",
			whenStyle.Render(when),
			zoneStyle.Render(z.Name),
			offsetStyle.Render(offsetLabel(z.OffsetSeconds, z.IsDST)),
		)
		if tr.When == curStart {
			line += currentStyle.Render("  ← now")
		}
		b.WriteString(line + "\n")
	}

	if tab.IsFixed() {
		b.WriteString("\nFixed offset; the table never transitions.\n")
	}

	m.viewport.SetContent(b.String())
}

func offsetLabel(seconds int, isDST bool) string {
	label := fmt.Sprintf("%ds", seconds)
	if o, err := civil.NewFixedOffset(seconds); err == nil {
		label = o.String()
	}
	if isDST {
		label += " (DST)"
	}
	return label
}
