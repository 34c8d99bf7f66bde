package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, as YAML.

The configuration is searched in this order:
  --config <path>
  ~/.asteroids/configs/asteroids.yaml
  ./configs/asteroids.yaml
  built-in defaults

Examples:
  asteroids config
  asteroids config --default > ~/.asteroids/configs/asteroids.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in defaults with comments")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagConfigDefault {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML("asteroids"))
		return err
	}

	cfg, err := config.LoadAsteroids(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.MarshalAsteroids(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
