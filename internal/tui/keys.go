package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/matchdaycli/matchday/internal/session"
)

// handleKey dispatches keyboard input by tab.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.tab == TabAuth {
		return m.handleAuthKey(msg)
	}
	return m.handleSquadKey(msg)
}

// handleAuthKey drives the login and register forms.
func (m Model) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.tab = TabSquad
		return m, nil

	case "tab", "down":
		return m.focusAuthField(m.authFocus + 1), nil

	case "shift+tab", "up":
		return m.focusAuthField(m.authFocus - 1), nil

	case "enter":
		return m.submitAuthForm()
	}

	var cmd tea.Cmd
	m.authInputs[m.authFocus], cmd = m.authInputs[m.authFocus].Update(msg)
	return m, cmd
}

// focusAuthField moves focus to the given field, wrapping around.
func (m Model) focusAuthField(index int) Model {
	m.authInputs[m.authFocus].Blur()
	m.authFocus = (index + fieldCount) % fieldCount
	m.authInputs[m.authFocus].Focus()
	return m
}

// submitAuthForm submits whichever form owns the focused field. Required
// fields are presence-checked locally; a missing field shows an error
// without any request being made.
func (m Model) submitAuthForm() (tea.Model, tea.Cmd) {
	if m.authFocus == fieldLoginEmail || m.authFocus == fieldLoginPassword {
		email := strings.TrimSpace(m.authInputs[fieldLoginEmail].Value())
		password := m.authInputs[fieldLoginPassword].Value()
		if err := validateCredentials(email, password); err != nil {
			m.authStatus = errStatus(err.Error())
			return m, nil
		}
		m.authStatus = okStatus("signing in…")
		return m, m.loginCmd(email, password)
	}

	email := strings.TrimSpace(m.authInputs[fieldRegisterEmail].Value())
	password := m.authInputs[fieldRegisterPassword].Value()
	if err := validateCredentials(email, password); err != nil {
		m.authStatus = errStatus(err.Error())
		return m, nil
	}
	m.authStatus = okStatus("creating account…")
	return m, m.registerCmd(email, password)
}

// handleSquadKey drives the market and pitch panes.
func (m Model) handleSquadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.teamNameFocused {
		return m.handleTeamNameKey(msg)
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.tab = TabAuth
		return m, nil

	case "tab":
		if m.pane == PaneMarket {
			m.pane = PanePitch
		} else {
			m.pane = PaneMarket
		}
		return m, nil

	case "left", "p":
		// Previous page only exists past the first one.
		if !m.controls.PrevEnabled {
			return m, nil
		}
		m.cursor.Prev()
		return m.startPlayersLoad()

	case "right", "n":
		if !m.controls.NextEnabled {
			return m, nil
		}
		m.cursor.Next()
		return m.startPlayersLoad()

	case "r":
		// Explicit refresh restarts from the first page.
		m.cursor.Reset()
		return m.startPlayersLoad()

	case "up", "k":
		return m.moveSelection(-1), nil

	case "down", "j":
		return m.moveSelection(1), nil

	case "enter", " ":
		return m.activateSelection()

	case "c":
		m.teamNameFocused = true
		m.teamName.Focus()
		return m, textinput.Blink

	case "l":
		return m.logout()
	}

	return m, nil
}

// handleTeamNameKey drives the create-team input.
func (m Model) handleTeamNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.teamName.Blur()
		m.teamNameFocused = false
		return m, nil

	case "enter":
		name := strings.TrimSpace(m.teamName.Value())
		if name == "" {
			m.squadStatus = errStatus("team name is required")
			return m, nil
		}
		m.squadStatus = okStatus("creating team…")
		return m, m.createTeamCmd(name)
	}

	var cmd tea.Cmd
	m.teamName, cmd = m.teamName.Update(msg)
	return m, cmd
}

// startPlayersLoad dispatches a market fetch for the current cursor.
func (m Model) startPlayersLoad() (tea.Model, tea.Cmd) {
	m.loadingPlayers = true
	m.marketIndex = 0
	m.marketStatus = okStatus("loading…")
	return m, m.loadPlayersCmd()
}

// moveSelection moves the focused pane's selection.
func (m Model) moveSelection(delta int) Model {
	if m.pane == PaneMarket {
		m.marketIndex = clamp(m.marketIndex+delta, 0, len(m.players)-1)
		return m
	}
	if m.team != nil {
		m.pitchIndex = clamp(m.pitchIndex+delta, 0, len(m.team.Players)-1)
	}
	return m
}

// activateSelection adds the selected market player, or removes the
// selected squad player, depending on the focused pane.
func (m Model) activateSelection() (tea.Model, tea.Cmd) {
	if m.pane == PaneMarket {
		if m.marketIndex < 0 || m.marketIndex >= len(m.players) {
			return m, nil
		}
		m.squadStatus = okStatus("adding player…")
		return m, m.addPlayerCmd(m.players[m.marketIndex].ID)
	}

	if m.team == nil || m.pitchIndex < 0 || m.pitchIndex >= len(m.team.Players) {
		return m, nil
	}
	m.squadStatus = okStatus("removing player…")
	return m, m.removePlayerCmd(m.team.Players[m.pitchIndex].ID)
}

// logout clears the stored token and returns to the sign in tab.
func (m Model) logout() (tea.Model, tea.Cmd) {
	if err := m.sessions.Set(""); err != nil {
		m.squadStatus = errStatus(err.Error())
		return m, nil
	}
	m.connState = session.StateDisconnected
	m.team = nil
	m.formation = nil
	m.tab = TabAuth
	m.authStatus = okStatus("signed out")
	return m, nil
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
