package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/relgen/internal/config"
)

// ConfigCommand returns the config command. Both subcommands operate on the
// path given by the global --config flag, so "relgen -c custom.toml config
// init" and later runs agree on where the file lives.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage configuration",
		Subcommands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Write a starter configuration file to the --config path",
				Action: runConfigInit,
			},
			{
				Name:   "validate",
				Usage:  "Validate the configuration file",
				Action: runConfigValidate,
			},
		},
	}
}

func runConfigInit(c *cli.Context) error {
	path := c.String("config")

	if err := config.InitConfig(path); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	fmt.Printf("Created configuration file at %s\n", path)
	return nil
}

func runConfigValidate(c *cli.Context) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	fmt.Println("Configuration is valid")
	return nil
}
