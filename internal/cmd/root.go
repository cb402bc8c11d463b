package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matchdaycli/matchday/internal/api"
	"github.com/matchdaycli/matchday/internal/config"
	"github.com/matchdaycli/matchday/internal/log"
	"github.com/matchdaycli/matchday/internal/session"
)

var rootCmd = &cobra.Command{
	Use:   "matchday",
	Short: "Fantasy football from your terminal",
	Long: `matchday is a terminal client for a fantasy football backend.
It lists the player market, manages your squad, and handles
registration and login.

Running matchday with no arguments starts the interactive client.`,
	SilenceUsage: true,
	RunE:         runPlay,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentPreRunE = setupLogging
}

// setupLogging configures the default logger from the effective config.
// The interactive client replaces it with a discard logger so the
// terminal stays owned by the UI.
func setupLogging(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log.SetDefaultLogger(log.New(log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		Format: log.ParseFormat(cfg.LogFormat),
		Output: log.OutputStderr(),
	}))
	return nil
}

// newClient builds the API client and session store from the effective
// configuration. Every command goes through here so they all share the
// same token source and base URL.
func newClient() (*api.Client, *session.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, cfg, err
	}
	path, err := session.DefaultPath()
	if err != nil {
		return nil, nil, cfg, err
	}
	store := session.NewStore(path)
	store.OnChange(func(state session.State) {
		log.DefaultLogger().Debug("session state changed", "state", state.String())
	})
	client := api.NewClient(api.Config{
		BaseURL: cfg.BaseURL,
		Tokens:  store,
		Logger:  log.DefaultLogger(),
	})
	return client, store, cfg, nil
}
