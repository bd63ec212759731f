package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/zoneline/internal/resolve"
)

var tabNames = []string{"Resolve", "Zones", "Transitions"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == StateResolveForm && m.form != nil {
		return docStyle.Render(m.form.View())
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	switch m.state {
	case StateResolve:
		b.WriteString(m.viewResolve())
	case StateZones:
		b.WriteString(m.zoneList.View())
	case StateTransitions:
		b.WriteString(m.transitions.View())
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.errMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(m))

	return docStyle.Render(b.String())
}

func (m Model) viewTabs() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if SessionState(i) == m.state {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = inactiveTabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewResolve() string {
	if m.result == nil {
		return faintStyle.Render("Press r to resolve a local date/time.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s in %s\n\n", m.resultIn, m.resultZone)

	switch m.result.Kind() {
	case resolve.KindSingle:
		r, _ := m.result.Single()
		b.WriteString(singleStyle.Render("single"))
		fmt.Fprintf(&b, "  %s", r)
	case resolve.KindAmbiguous:
		earliest, _ := m.result.Earliest()
		latest, _ := m.result.Latest()
		b.WriteString(ambiguousStyle.Render("ambiguous"))
		fmt.Fprintf(&b, "\n  earliest  %s\n  latest    %s", earliest, latest)
	case resolve.KindNone:
		b.WriteString(noneStyle.Render("none"))
		b.WriteString("  no such local time (spring-forward gap)")
	}

	return b.String()
}
