package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/matchdaycli/matchday/internal/roster"
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List one page of the player market",
	Long: `List one page of the player market.

Pages are 1-based. The end of the market is inferred from short pages;
the backend exposes no total count.

Examples:
  matchday players
  matchday players --page 3
  matchday players --page 2 --page-size 25`,
	RunE: runPlayers,
}

func runPlayers(cmd *cobra.Command, args []string) error {
	page, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")

	client, _, cfg, err := newClient()
	if err != nil {
		return err
	}
	if pageSize <= 0 {
		pageSize = cfg.PageSize
	}
	if page < 1 {
		page = 1
	}

	cursor := roster.Cursor{Offset: (page - 1) * pageSize, PageSize: pageSize}
	players, err := client.ListPlayers(cmd.Context(), cursor.Offset, cursor.PageSize)
	if err != nil {
		return err
	}

	if len(players) == 0 {
		fmt.Printf("No players found on page %d.\n", page)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCLUB\tPOS\tCOST")
	for _, p := range players {
		club := p.Club
		if club == "" {
			club = "-"
		}
		position := p.Position
		if position == "" {
			position = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.0f\n", p.ID, p.Name, club, position, p.Value())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	controls := roster.PageControls(cursor, len(players))
	fmt.Printf("\nPage %d (%d players)", cursor.Page(), len(players))
	if controls.NextEnabled {
		fmt.Printf(" — more on --page %d", page+1)
	}
	fmt.Println()
	return nil
}

func init() {
	playersCmd.Flags().Int("page", 1, "1-based market page")
	playersCmd.Flags().Int("page-size", 0, "players per page (default from config)")
	rootCmd.AddCommand(playersCmd)
}
