package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matchdaycli/matchday/internal/api"
	"github.com/matchdaycli/matchday/internal/roster"
	"github.com/matchdaycli/matchday/internal/session"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	client := api.NewClient(api.Config{BaseURL: "http://localhost:0", Tokens: store})
	return NewModel(client, store, 50)
}

// TestNewModel tests model initialization
func TestNewModel(t *testing.T) {
	m := newTestModel(t)

	if m.tab != TabAuth {
		t.Errorf("Expected TabAuth for a logged-out start, got %v", m.tab)
	}
	if m.cursor.PageSize != 50 {
		t.Errorf("Expected page size 50, got %d", m.cursor.PageSize)
	}
	if m.connState != session.StateDisconnected {
		t.Errorf("Expected disconnected state, got %v", m.connState)
	}
}

// TestNewModelLoggedIn tests that a stored token opens on the squad tab
func TestNewModelLoggedIn(t *testing.T) {
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	if err := store.Set("tok"); err != nil {
		t.Fatal(err)
	}
	client := api.NewClient(api.Config{BaseURL: "http://localhost:0", Tokens: store})

	m := NewModel(client, store, 50)

	if m.tab != TabSquad {
		t.Errorf("Expected TabSquad when a session exists, got %v", m.tab)
	}
	if m.connState != session.StateConnected {
		t.Errorf("Expected connected state, got %v", m.connState)
	}
}

// TestPlayersLoaded tests a successful market page
func TestPlayersLoaded(t *testing.T) {
	m := newTestModel(t)

	players := make([]api.Player, 50)
	for i := range players {
		players[i] = api.Player{ID: i + 1, Name: "P", Position: "MID"}
	}

	updated, _ := m.Update(playersLoadedMsg{offset: 0, players: players})
	got := updated.(Model)

	if len(got.players) != 50 {
		t.Fatalf("Expected 50 players, got %d", len(got.players))
	}
	if got.marketStatus.text != "OK (50 players)" {
		t.Errorf("Expected count status, got %q", got.marketStatus.text)
	}
	if !got.controls.NextEnabled {
		t.Error("Expected next enabled after a full page")
	}
	if got.controls.PrevEnabled {
		t.Error("Expected prev disabled at offset zero")
	}
}

// TestPlayersLoadedShortPage tests the end-of-data heuristic
func TestPlayersLoadedShortPage(t *testing.T) {
	m := newTestModel(t)
	m.cursor.Next()

	updated, _ := m.Update(playersLoadedMsg{offset: 50, players: []api.Player{{ID: 1}}})
	got := updated.(Model)

	if got.controls.NextEnabled {
		t.Error("Expected next disabled after a short page")
	}
	if !got.controls.PrevEnabled {
		t.Error("Expected prev enabled past the first page")
	}
}

// TestPlayersLoadedEmptyPage tests the empty-state message
func TestPlayersLoadedEmptyPage(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(playersLoadedMsg{offset: 0, players: nil})
	got := updated.(Model)

	if got.marketStatus.text != "no players on this page" {
		t.Errorf("Expected empty-state status, got %q", got.marketStatus.text)
	}
	view := got.renderMarket()
	if !strings.Contains(view, "no players found on this page") {
		t.Error("Expected empty-state line in the market view")
	}
}

// TestPlayersLoadError tests the normalized error surface
func TestPlayersLoadError(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(playersLoadedMsg{err: &api.Error{Status: 502, Detail: "HTTP 502"}})
	got := updated.(Model)

	if !got.marketStatus.err {
		t.Error("Expected error status")
	}
	if got.marketStatus.text != "HTTP 502" {
		t.Errorf("Expected normalized error text, got %q", got.marketStatus.text)
	}
}

// TestTeamLoaded tests formation projection on team load
func TestTeamLoaded(t *testing.T) {
	m := newTestModel(t)

	team := &api.Team{
		Name:        "Les Bleus",
		BudgetLeft:  500,
		TotalBudget: 1000,
		Players: []api.Player{
			{ID: 1, Name: "A", Position: "FWD"},
			{ID: 2, Name: "B", Position: "XYZ"},
		},
	}

	updated, _ := m.Update(teamLoadedMsg{team: team})
	got := updated.(Model)

	if got.team == nil {
		t.Fatal("Expected team to be set")
	}
	if len(got.formation[roster.LineForward]) != 1 {
		t.Error("Expected one forward")
	}
	if len(got.formation[roster.LineMidfield]) != 1 {
		t.Error("Expected unknown position bucketed to midfield")
	}
}

// TestLoginSuccess tests token storage and the tab switch
func TestLoginSuccess(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(loginResultMsg{token: "tok-abc"})
	got := updated.(Model)

	if got.sessions.Token() != "tok-abc" {
		t.Errorf("Expected stored token, got %q", got.sessions.Token())
	}
	if got.tab != TabSquad {
		t.Error("Expected switch to the squad tab")
	}
	if cmd == nil {
		t.Error("Expected a team reload command")
	}
	if got.team != nil {
		t.Error("Expected team placeholder during reload")
	}
}

// TestLoginFailure tests the implicit logout on a failed login
func TestLoginFailure(t *testing.T) {
	m := newTestModel(t)
	if err := m.sessions.Set("stale-token"); err != nil {
		t.Fatal(err)
	}
	m.connState = session.StateConnected

	updated, _ := m.Update(loginResultMsg{err: &api.Error{Status: 401, Detail: "bad credentials"}})
	got := updated.(Model)

	if got.authStatus.text != "bad credentials" {
		t.Errorf("Expected literal backend detail, got %q", got.authStatus.text)
	}
	if got.sessions.Token() != "" {
		t.Error("Expected stored token cleared by the failed login")
	}
	if got.tab != TabAuth {
		t.Error("Expected to stay on the sign in tab")
	}
	if got.connState != session.StateDisconnected {
		t.Error("Expected disconnected state")
	}
}

// TestPaginationKeys tests the next/prev key gating
func TestPaginationKeys(t *testing.T) {
	m := newTestModel(t)
	m.tab = TabSquad
	m.controls = roster.Controls{PrevEnabled: false, NextEnabled: true}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	got := updated.(Model)

	if got.cursor.Offset != 50 {
		t.Errorf("Expected offset 50 after next, got %d", got.cursor.Offset)
	}
	if cmd == nil {
		t.Error("Expected a fetch command for the next page")
	}

	// Prev is a no-op while disabled at the first page.
	got.controls = roster.Controls{PrevEnabled: false}
	updated, cmd = got.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	got = updated.(Model)

	if got.cursor.Offset != 50 {
		t.Errorf("Expected offset unchanged by disabled prev, got %d", got.cursor.Offset)
	}
	if cmd != nil {
		t.Error("Expected no fetch for a disabled prev")
	}
}

// TestRefreshResetsCursor tests the refresh key
func TestRefreshResetsCursor(t *testing.T) {
	m := newTestModel(t)
	m.tab = TabSquad
	m.cursor.Next()
	m.cursor.Next()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	got := updated.(Model)

	if got.cursor.Offset != 0 {
		t.Errorf("Expected cursor reset, got offset %d", got.cursor.Offset)
	}
	if cmd == nil {
		t.Error("Expected a fetch command after refresh")
	}
}

// TestLocalValidationShortCircuits tests that empty credentials never
// reach the network
func TestLocalValidationShortCircuits(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := updated.(Model)

	if cmd != nil {
		t.Error("Expected no request for empty credentials")
	}
	if !got.authStatus.err {
		t.Error("Expected a validation error status")
	}
}

// TestLogoutKey tests the logout flow
func TestLogoutKey(t *testing.T) {
	m := newTestModel(t)
	if err := m.sessions.Set("tok"); err != nil {
		t.Fatal(err)
	}
	m.tab = TabSquad
	m.connState = session.StateConnected

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	got := updated.(Model)

	if got.sessions.Token() != "" {
		t.Error("Expected token cleared on logout")
	}
	if got.tab != TabAuth {
		t.Error("Expected return to the sign in tab")
	}
}

// TestTabSwitchKeys tests esc-based tab switching
func TestTabSwitchKeys(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	got := updated.(Model)
	if got.tab != TabSquad {
		t.Error("Expected esc to switch to the squad tab")
	}

	updated, _ = got.Update(tea.KeyMsg{Type: tea.KeyEsc})
	got = updated.(Model)
	if got.tab != TabAuth {
		t.Error("Expected esc to switch back to the sign in tab")
	}
}

// TestBudgetBarRendering tests the gauge colors and widths indirectly
// through the rendered view
func TestBudgetBarRendering(t *testing.T) {
	m := newTestModel(t)
	m.tab = TabSquad
	m.team = &api.Team{Name: "T", BudgetLeft: 50, TotalBudget: 1000}
	m.formation = roster.Project(nil)

	bar := m.renderBudgetBar()
	if !strings.Contains(bar, "5%") {
		t.Errorf("Expected 5%% in the bar, got %q", bar)
	}
}

// TestViewSmoke tests that both tabs render without panicking
func TestViewSmoke(t *testing.T) {
	m := newTestModel(t)

	if m.View() == "" {
		t.Error("Expected non-empty auth view")
	}

	m.tab = TabSquad
	m.team = &api.Team{
		Name:        "Les Bleus",
		BudgetLeft:  500,
		TotalBudget: 1000,
		Players:     []api.Player{{ID: 1, Name: "Mbappé", Position: "FWD"}},
	}
	m.formation = roster.Project(m.team.Players)

	view := m.View()
	if !strings.Contains(view, "Les Bleus") {
		t.Error("Expected team name in the squad view")
	}
	if !strings.Contains(view, "Mbappé") {
		t.Error("Expected player token in the squad view")
	}
}
