package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/zoneline/internal/tui/components/zonelist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		frameX, frameY := docStyle.GetFrameSize()
		contentWidth := msg.Width - frameX
		contentHeight := msg.Height - frameY - 4
		m.zoneList.SetSize(contentWidth, contentHeight)
		m.transitions.SetSize(contentWidth, contentHeight)
		m.help.Width = contentWidth

	case zonelist.InspectZoneMsg:
		m.inspectZone(msg.Zone)
		return m, nil

	case zonelist.DeleteZoneMsg:
		if err := m.store.DeleteZone(msg.Name); err != nil {
			m.errMsg = err.Error()
		} else {
			m.errMsg = ""
		}
		m.refreshZones()
		return m, nil

	case zonelist.RestoreZoneMsg:
		if err := m.store.RestoreZone(msg.Name); err != nil {
			m.errMsg = err.Error()
		} else {
			m.errMsg = ""
		}
		m.refreshZones()
		return m, nil

	case tea.KeyMsg:
		// The form owns the keyboard while it is open, except for quit.
		if m.state == StateResolveForm {
			if key.Matches(msg, m.keys.Quit) {
				m.state = StateResolve
				m.form = nil
				return m, nil
			}
			break
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state + tabCount - 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Resolve) && m.state == StateResolve:
			m.formModel = &ResolveFormModel{Zone: m.resultZone}
			m.form = m.newResolveForm()
			m.state = StateResolveForm
			return m, m.form.Init()
		}
	}

	switch m.state {
	case StateResolveForm:
		if m.form != nil {
			form, cmd := m.form.Update(msg)
			if f, ok := form.(*huh.Form); ok {
				m.form = f
			}
			cmds = append(cmds, cmd)

			if m.form.State == huh.StateCompleted {
				m.runResolve()
				m.form = nil
				m.state = StateResolve
			} else if m.form.State == huh.StateAborted {
				m.form = nil
				m.state = StateResolve
			}
		}
	case StateZones:
		var cmd tea.Cmd
		m.zoneList, cmd = m.zoneList.Update(msg)
		cmds = append(cmds, cmd)
	case StateTransitions:
		var cmd tea.Cmd
		m.transitions, cmd = m.transitions.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
