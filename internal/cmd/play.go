package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matchdaycli/matchday/internal/log"
	"github.com/matchdaycli/matchday/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the interactive client",
	Long: `Start the interactive terminal client.

The client opens on the sign in tab when logged out and on the squad tab
when a session is stored. Keys are shown in the footer of each screen.

Examples:
  matchday
  matchday play`,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The terminal belongs to the UI while the program runs.
	log.SetDefaultLogger(log.New(log.Config{
		Output: log.OutputDiscard(),
	}))

	client, store, cfg, err := newClient()
	if err != nil {
		return err
	}

	model := tui.NewModel(client, store, cfg.PageSize)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("client exited: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(playCmd)
}
