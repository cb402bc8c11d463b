// Package tui is the interactive terminal client: a Sign in tab with the
// login and register forms, and a Squad tab showing the player market next
// to the pitch view of the user's team.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/matchdaycli/matchday/internal/api"
	"github.com/matchdaycli/matchday/internal/errors"
	"github.com/matchdaycli/matchday/internal/roster"
	"github.com/matchdaycli/matchday/internal/session"
)

// Tab identifies one of the two mutually exclusive screens.
type Tab int

// Tab constants
const (
	// TabAuth is the sign in / register screen
	TabAuth Tab = iota
	// TabSquad is the market and team screen
	TabSquad
)

// Pane identifies which half of the squad tab owns the selection.
type Pane int

// Squad tab panes
const (
	PaneMarket Pane = iota
	PanePitch
)

// Auth form field indexes, in focus order.
const (
	fieldLoginEmail = iota
	fieldLoginPassword
	fieldRegisterEmail
	fieldRegisterPassword
	fieldCount
)

// Model is the terminal client state.
type Model struct {
	client   *api.Client
	sessions *session.Store

	// UI state
	tab      Tab
	pane     Pane
	width    int
	height   int
	quitting bool

	// Session state, updated through the store listener
	connState session.State

	// Auth forms
	authInputs [fieldCount]textinput.Model
	authFocus  int
	authStatus status

	// Market state
	cursor         roster.Cursor
	players        []api.Player
	controls       roster.Controls
	marketIndex    int
	marketStatus   status
	loadingPlayers bool

	// Squad state
	team        *api.Team
	formation   roster.Formation
	pitchIndex  int
	squadStatus status
	loadingTeam bool

	// Create-team input, shown when no team exists yet
	teamName        textinput.Model
	teamNameFocused bool

	styles Styles
}

// status is one inline message line: text plus whether it reports an error.
type status struct {
	text string
	err  bool
}

func okStatus(text string) status  { return status{text: text} }
func errStatus(text string) status { return status{text: text, err: true} }

// NewModel creates the client model. The connection badge is seeded from
// the store and updated by the login/logout handlers; bubbletea models
// are values, so state flows through messages rather than callbacks.
func NewModel(client *api.Client, sessions *session.Store, pageSize int) Model {
	m := Model{
		client:    client,
		sessions:  sessions,
		cursor:    roster.NewCursor(pageSize),
		connState: sessions.State(),
		styles:    DefaultStyles(),
	}

	labels := [fieldCount]string{"email", "password", "email", "password"}
	for i := range m.authInputs {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.CharLimit = 128
		if i == fieldLoginPassword || i == fieldRegisterPassword {
			in.EchoMode = textinput.EchoPassword
		}
		m.authInputs[i] = in
	}
	m.authInputs[fieldLoginEmail].Focus()

	m.teamName = textinput.New()
	m.teamName.Placeholder = "team name"
	m.teamName.CharLimit = 64

	if m.connState == session.StateConnected {
		m.tab = TabSquad
	}

	return m
}

// Init kicks off the first market page and, when logged in, the team load.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadPlayersCmd(), textinput.Blink}
	if m.sessions.Active() {
		cmds = append(cmds, m.loadTeamCmd())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case playersLoadedMsg:
		return m.handlePlayersLoaded(msg)

	case teamLoadedMsg:
		return m.handleTeamLoaded(msg)

	case loginResultMsg:
		return m.handleLoginResult(msg)

	case registerResultMsg:
		if msg.err != nil {
			m.authStatus = errStatus(msg.err.Error())
		} else {
			m.authStatus = okStatus("account created, you can sign in")
		}
		return m, nil

	case teamCreatedMsg:
		if msg.err != nil {
			m.squadStatus = errStatus(msg.err.Error())
			return m, nil
		}
		m.teamName.SetValue("")
		m.teamName.Blur()
		m.teamNameFocused = false
		m = m.resetTeamView("team created, loading…")
		return m, m.loadTeamCmd()

	case playerAddedMsg:
		if msg.err != nil {
			m.squadStatus = errStatus(msg.err.Error())
			return m, nil
		}
		m = m.resetTeamView("player added, reloading…")
		return m, m.loadTeamCmd()

	case playerRemovedMsg:
		if msg.err != nil {
			m.squadStatus = errStatus(msg.err.Error())
			return m, nil
		}
		m = m.resetTeamView("player removed, reloading…")
		return m, m.loadTeamCmd()
	}

	return m, nil
}

// handlePlayersLoaded replaces the market list wholesale with the fetched
// page. Rapid page flips can complete out of order; the last completion
// wins.
func (m Model) handlePlayersLoaded(msg playersLoadedMsg) (tea.Model, tea.Cmd) {
	m.loadingPlayers = false
	if msg.err != nil {
		m.players = nil
		m.controls = roster.PageControls(m.cursor, 0)
		m.marketStatus = errStatus(msg.err.Error())
		return m, nil
	}

	m.players = msg.players
	m.controls = roster.PageControls(m.cursor, len(msg.players))
	if m.marketIndex >= len(m.players) {
		m.marketIndex = 0
	}
	if len(msg.players) == 0 {
		m.marketStatus = okStatus("no players on this page")
	} else {
		m.marketStatus = okStatus(playersCount(len(msg.players)))
	}
	return m, nil
}

func (m Model) handleTeamLoaded(msg teamLoadedMsg) (tea.Model, tea.Cmd) {
	m.loadingTeam = false
	if msg.err != nil {
		m.squadStatus = errStatus(msg.err.Error())
		return m, nil
	}

	m.team = msg.team
	m.formation = roster.Project(msg.team.Players)
	if m.pitchIndex >= len(msg.team.Players) {
		m.pitchIndex = 0
	}
	m.squadStatus = okStatus("OK")
	return m, nil
}

// handleLoginResult stores the token and switches to the squad tab on
// success. A failed login clears any stored token and stays on the sign
// in tab.
func (m Model) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		_ = m.sessions.Set("")
		m.connState = session.StateDisconnected
		m.authStatus = errStatus(msg.err.Error())
		return m, nil
	}

	if err := m.sessions.Set(msg.token); err != nil {
		m.authStatus = errStatus(err.Error())
		return m, nil
	}
	m.connState = session.StateConnected
	m.authStatus = okStatus("signed in")
	m.tab = TabSquad
	m = m.resetTeamView("loading…")
	return m, m.loadTeamCmd()
}

// resetTeamView clears the rendered team to a placeholder before a reload
// so no stale squad shows while the fetch is in flight.
func (m Model) resetTeamView(statusText string) Model {
	m.team = nil
	m.formation = nil
	m.loadingTeam = true
	m.squadStatus = okStatus(statusText)
	return m
}

// View renders the client.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.tab {
	case TabSquad:
		return m.renderSquad()
	default:
		return m.renderAuth()
	}
}

// Commands

func (m Model) loadPlayersCmd() tea.Cmd {
	client := m.client
	offset, limit := m.cursor.Offset, m.cursor.PageSize
	return func() tea.Msg {
		players, err := client.ListPlayers(context.Background(), offset, limit)
		return playersLoadedMsg{offset: offset, players: players, err: err}
	}
}

// loadTeamCmd fetches the team. The caller is expected to have cleared the
// rendered team first so no stale data shows during the reload.
func (m Model) loadTeamCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		team, err := client.GetTeam(context.Background())
		return teamLoadedMsg{team: team, err: err}
	}
}

func (m Model) loginCmd(email, password string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		token, err := client.Login(context.Background(), email, password)
		return loginResultMsg{token: token, err: err}
	}
}

func (m Model) registerCmd(email, password string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		_, err := client.Register(context.Background(), email, password)
		return registerResultMsg{err: err}
	}
}

func (m Model) createTeamCmd(name string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		_, err := client.CreateTeam(context.Background(), name)
		return teamCreatedMsg{err: err}
	}
}

func (m Model) addPlayerCmd(id int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		// Backend expects a list-shaped payload even for one player.
		_, err := client.AddPlayers(context.Background(), []int{id})
		return playerAddedMsg{err: err}
	}
}

func (m Model) removePlayerCmd(id int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.RemovePlayer(context.Background(), id)
		return playerRemovedMsg{err: err}
	}
}

// Messages

// playersLoadedMsg carries one fetched market page. offset is the cursor
// position the fetch was dispatched with.
type playersLoadedMsg struct {
	offset  int
	players []api.Player
	err     error
}

// teamLoadedMsg carries the fetched team.
type teamLoadedMsg struct {
	team *api.Team
	err  error
}

// loginResultMsg carries the login outcome.
type loginResultMsg struct {
	token string
	err   error
}

// registerResultMsg carries the registration outcome.
type registerResultMsg struct {
	err error
}

// teamCreatedMsg carries the create-team outcome.
type teamCreatedMsg struct {
	err error
}

// playerAddedMsg carries the add-player outcome.
type playerAddedMsg struct {
	err error
}

// playerRemovedMsg carries the remove-player outcome.
type playerRemovedMsg struct {
	err error
}

// validateCredentials short-circuits before any network call when a
// required field is empty.
func validateCredentials(email, password string) error {
	if email == "" || password == "" {
		return errors.NewMissingCredentialsError()
	}
	return nil
}
