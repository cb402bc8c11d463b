package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matchdaycli/matchday/internal/api"
	"github.com/matchdaycli/matchday/internal/roster"
	"github.com/matchdaycli/matchday/internal/session"
)

// Styles contains lipgloss styles for the client
type Styles struct {
	Title     lipgloss.Style
	TabActive lipgloss.Style
	TabIdle   lipgloss.Style
	Muted     lipgloss.Style
	Ok        lipgloss.Style
	Err       lipgloss.Style
	Selected  lipgloss.Style
	Border    lipgloss.Style
	Pill      lipgloss.Style
	BarOk     lipgloss.Style
	BarLow    lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the default lipgloss styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("36")). // Green
			MarginBottom(1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("36")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 2),
		TabIdle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Gray
			Padding(0, 2),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Ok: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")), // Green
		Err: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")), // Red
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color("36")).
			Foreground(lipgloss.Color("230")).
			Bold(true),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("36")).
			Padding(1, 2),
		Pill: lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")), // Cyan
		BarOk: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")), // Green
		BarLow: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")), // Red
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
	}
}

// renderTabs renders the tab bar with the active tab highlighted.
func (m Model) renderTabs() string {
	auth := m.styles.TabIdle.Render("Sign in")
	squad := m.styles.TabIdle.Render("Squad")
	if m.tab == TabAuth {
		auth = m.styles.TabActive.Render("Sign in")
	} else {
		squad = m.styles.TabActive.Render("Squad")
	}

	badge := m.styles.Muted.Render(m.connState.String())
	if m.connState == session.StateConnected {
		badge = m.styles.Ok.Render(m.connState.String())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, auth, squad, "  ", badge)
}

// renderAuth renders the sign in tab: login and register forms stacked.
func (m Model) renderAuth() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("⚽ matchday"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	var login strings.Builder
	login.WriteString(m.styles.Pill.Render("Sign in"))
	login.WriteString("\n")
	login.WriteString(m.authInputs[fieldLoginEmail].View())
	login.WriteString("\n")
	login.WriteString(m.authInputs[fieldLoginPassword].View())
	b.WriteString(m.styles.Border.Render(login.String()))
	b.WriteString("\n\n")

	var register strings.Builder
	register.WriteString(m.styles.Pill.Render("Create account"))
	register.WriteString("\n")
	register.WriteString(m.authInputs[fieldRegisterEmail].View())
	register.WriteString("\n")
	register.WriteString(m.authInputs[fieldRegisterPassword].View())
	b.WriteString(m.styles.Border.Render(register.String()))
	b.WriteString("\n")

	b.WriteString(m.renderStatus(m.authStatus))
	b.WriteString(m.styles.Help.Render("tab: next field • enter: submit • esc: squad • ctrl+c: quit"))
	b.WriteString("\n")

	return b.String()
}

// renderSquad renders the squad tab: market pane and pitch pane.
func (m Model) renderSquad() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("⚽ matchday"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	market := m.styles.Border.Render(m.renderMarket())
	pitch := m.styles.Border.Render(m.renderPitch())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, market, " ", pitch))
	b.WriteString("\n")

	b.WriteString(m.renderStatus(m.squadStatus))
	b.WriteString(m.styles.Help.Render(
		"tab: pane • ↑/↓: select • enter: add/remove • ←/→: page • r: refresh • c: create team • l: logout • esc: sign in • q: quit"))
	b.WriteString("\n")

	return b.String()
}

// renderMarket renders one page of the player market.
func (m Model) renderMarket() string {
	var b strings.Builder

	header := fmt.Sprintf("Market — page %d", m.cursor.Page())
	if m.pane == PaneMarket {
		header += " •"
	}
	b.WriteString(m.styles.Pill.Render(header))
	b.WriteString("\n")
	b.WriteString(m.renderStatus(m.marketStatus))

	if len(m.players) == 0 && !m.loadingPlayers {
		b.WriteString(m.styles.Muted.Render("no players found on this page"))
		b.WriteString("\n")
	}

	for i, p := range m.players {
		club := p.Club
		if club == "" {
			club = "-"
		}
		position := p.Position
		if position == "" {
			position = "-"
		}
		row := fmt.Sprintf("%-22s %-12s %-4s %8.0f", p.Name, club, position, p.Value())
		if m.pane == PaneMarket && i == m.marketIndex {
			row = m.styles.Selected.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderPageControls())
	return b.String()
}

// renderPageControls renders the previous/next indicators, dimmed when
// disabled.
func (m Model) renderPageControls() string {
	prev := "← prev"
	if !m.controls.PrevEnabled {
		prev = m.styles.Muted.Render(prev)
	}
	next := "next →"
	if !m.controls.NextEnabled {
		next = m.styles.Muted.Render(next)
	}
	return prev + "   " + next
}

// renderPitch renders the team as four pitch rows with the budget gauge.
func (m Model) renderPitch() string {
	var b strings.Builder

	header := "Team"
	if m.pane == PanePitch {
		header += " •"
	}
	b.WriteString(m.styles.Pill.Render(header))
	b.WriteString("\n")

	if m.team == nil {
		// Placeholder while loading or before a team exists.
		b.WriteString(m.styles.Muted.Render("–"))
		b.WriteString("\n\n")
		if !m.loadingTeam {
			b.WriteString(m.styles.Muted.Render("no team yet, press c to create one"))
			b.WriteString("\n")
		}
		if m.teamNameFocused {
			b.WriteString(m.teamName.View())
			b.WriteString("\n")
		}
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%s — %.0f left", m.team.Name, m.team.BudgetLeft))
	b.WriteString("\n")
	b.WriteString(m.renderBudgetBar())
	b.WriteString("\n\n")

	index := indexByLine(m.team.Players)
	for _, line := range roster.Lines {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%-10s", line.String())))
		players := m.formation[line]
		if len(players) == 0 {
			b.WriteString(m.styles.Muted.Render("·"))
		}
		for i, p := range players {
			token := fmt.Sprintf("[%s ✕]", p.Name)
			if m.pane == PanePitch && index[line][i] == m.pitchIndex {
				token = m.styles.Selected.Render(token)
			}
			b.WriteString(token)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	if m.teamNameFocused {
		b.WriteString("\n")
		b.WriteString(m.teamName.View())
		b.WriteString("\n")
	}

	return b.String()
}

// renderBudgetBar renders the proportional budget-remaining bar, in the
// warning color below the low-budget threshold.
func (m Model) renderBudgetBar() string {
	if m.team == nil {
		return ""
	}
	gauge := roster.Gauge(m.team.BudgetLeft, m.team.TotalBudget)
	if !gauge.Known {
		return m.styles.Muted.Render("budget unknown")
	}

	barWidth := 30
	filled := int(gauge.Percent / 100 * float64(barWidth))

	var bar strings.Builder
	for i := 0; i < barWidth; i++ {
		if i < filled {
			bar.WriteString("█")
		} else {
			bar.WriteString("░")
		}
	}

	style := m.styles.BarOk
	if gauge.Low {
		style = m.styles.BarLow
	}
	return style.Render(bar.String()) + m.styles.Muted.Render(fmt.Sprintf(" %.0f%%", gauge.Percent))
}

// renderStatus renders one inline status line.
func (m Model) renderStatus(s status) string {
	if s.text == "" {
		return ""
	}
	if s.err {
		return m.styles.Err.Render(s.text) + "\n"
	}
	return m.styles.Ok.Render(s.text) + "\n"
}

// indexByLine maps each formation slot back to its flat index in the
// team's player list, so the pitch selection and the removal target agree.
// Project preserves fetch order within each line, so walking the players
// in order reproduces the per-line slots.
func indexByLine(players []api.Player) map[roster.Line][]int {
	idx := map[roster.Line][]int{}
	for i, p := range players {
		line := roster.LineFor(p.Position)
		idx[line] = append(idx[line], i)
	}
	return idx
}

func playersCount(n int) string {
	if n == 1 {
		return "OK (1 player)"
	}
	return fmt.Sprintf("OK (%d players)", n)
}
