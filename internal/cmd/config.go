package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/matchdaycli/matchday/internal/config"
	"github.com/matchdaycli/matchday/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or edit matchday configuration",
	Long: `Manage the matchday configuration stored at ~/.matchday/config.yaml

Settings:
  base_url    backend base URL
  page_size   market page size
  log_level   debug, info, warn, error
  log_format  text or json

Environment variables (MATCHDAY_BASE_URL, MATCHDAY_PAGE_SIZE,
MATCHDAY_LOG_LEVEL, MATCHDAY_LOG_FORMAT) override the file.

Examples:
  matchday config view
  matchday config get base_url
  matchday config set base_url https://fantasy.example.com
  matchday config path`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Display the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		value, err := configValue(cfg, args[0])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		cfg, err := config.LoadFile(path)
		if err != nil {
			return err
		}
		if err := setConfigValue(&cfg, args[0], args[1]); err != nil {
			return err
		}
		if err := cfg.Save(path); err != nil {
			return err
		}
		fmt.Printf("Set %s = %s\n", args[0], args[1])
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func configValue(cfg config.Config, key string) (string, error) {
	switch key {
	case "base_url":
		return cfg.BaseURL, nil
	case "page_size":
		return strconv.Itoa(cfg.PageSize), nil
	case "log_level":
		return cfg.LogLevel, nil
	case "log_format":
		return cfg.LogFormat, nil
	default:
		return "", errors.New(errors.ErrCodeConfigInvalid, fmt.Sprintf("unknown config key: %s", key))
	}
}

func setConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "base_url":
		cfg.BaseURL = value
	case "page_size":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return errors.New(errors.ErrCodeConfigInvalid, fmt.Sprintf("page_size must be a positive integer, got %q", value))
		}
		cfg.PageSize = n
	case "log_level":
		cfg.LogLevel = value
	case "log_format":
		cfg.LogFormat = value
	default:
		return errors.New(errors.ErrCodeConfigInvalid, fmt.Sprintf("unknown config key: %s", key))
	}
	return nil
}

func init() {
	configCmd.AddCommand(configViewCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
