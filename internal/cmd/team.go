package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matchdaycli/matchday/internal/api"
	"github.com/matchdaycli/matchday/internal/errors"
	"github.com/matchdaycli/matchday/internal/roster"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage your squad",
	Long: `Manage your squad. All team operations require a stored session;
run 'matchday auth login' first.

Subcommands:
  show    Show the squad in pitch formation
  create  Create (or rename) your team
  add     Add a player by id
  remove  Remove a player by id

Examples:
  matchday team show
  matchday team create "Les Bleus"
  matchday team add 7
  matchday team remove 7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var teamShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the squad in pitch formation",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, store, _, err := newClient()
		if err != nil {
			return err
		}
		if !store.Active() {
			return errors.NewNotLoggedInError()
		}

		team, err := client.GetTeam(cmd.Context())
		if err != nil {
			return err
		}
		printTeam(team)
		return nil
	},
}

var teamCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create (or rename) your team",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) > 0 {
			name = strings.TrimSpace(args[0])
		}
		if name == "" {
			return errors.NewTeamNameRequiredError()
		}

		client, store, _, err := newClient()
		if err != nil {
			return err
		}
		if !store.Active() {
			return errors.NewNotLoggedInError()
		}

		team, err := client.CreateTeam(cmd.Context(), name)
		if err != nil {
			return err
		}
		fmt.Printf("Team %q created.\n", team.Name)
		return nil
	},
}

var teamAddCmd = &cobra.Command{
	Use:   "add <player-id>",
	Short: "Add a player to the squad",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid player id %q", args[0])
		}

		client, store, _, err := newClient()
		if err != nil {
			return err
		}
		if !store.Active() {
			return errors.NewNotLoggedInError()
		}

		player, err := client.GetPlayer(cmd.Context(), id)
		if err != nil {
			return err
		}

		if _, err := client.AddPlayers(cmd.Context(), []int{id}); err != nil {
			return err
		}

		// Re-fetch so the printed squad reflects the mutation.
		team, err := client.GetTeam(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Added %s.\n", player.Name)
		printTeam(team)
		return nil
	},
}

var teamRemoveCmd = &cobra.Command{
	Use:   "remove <player-id>",
	Short: "Remove a player from the squad",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid player id %q", args[0])
		}

		client, store, _, err := newClient()
		if err != nil {
			return err
		}
		if !store.Active() {
			return errors.NewNotLoggedInError()
		}

		if err := client.RemovePlayer(cmd.Context(), id); err != nil {
			return err
		}

		team, err := client.GetTeam(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println("Player removed.")
		printTeam(team)
		return nil
	},
}

// printTeam prints the squad as pitch rows with the budget line.
func printTeam(team *api.Team) {
	fmt.Printf("\n%s\n", team.Name)

	gauge := roster.Gauge(team.BudgetLeft, team.TotalBudget)
	if gauge.Known {
		marker := ""
		if gauge.Low {
			marker = " (low)"
		}
		fmt.Printf("Budget: %.0f / %.0f (%.0f%%)%s\n", team.BudgetLeft, team.TotalBudget, gauge.Percent, marker)
	} else if team.BudgetLeft > 0 {
		fmt.Printf("Budget left: %.0f\n", team.BudgetLeft)
	}
	fmt.Println()

	formation := roster.Project(team.Players)
	for _, line := range roster.Lines {
		names := make([]string, 0, len(formation[line]))
		for _, p := range formation[line] {
			names = append(names, fmt.Sprintf("%s (#%d)", p.Name, p.ID))
		}
		row := strings.Join(names, "  ")
		if row == "" {
			row = "·"
		}
		fmt.Printf("%-11s %s\n", line.String(), row)
	}
}

func init() {
	teamCmd.AddCommand(teamShowCmd)
	teamCmd.AddCommand(teamCreateCmd)
	teamCmd.AddCommand(teamAddCmd)
	teamCmd.AddCommand(teamRemoveCmd)
	rootCmd.AddCommand(teamCmd)
}
