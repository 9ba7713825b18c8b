package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/relgen/internal/config"
	"github.com/relgen/internal/version"
)

// BumpCommand returns the bump command
func BumpCommand() *cli.Command {
	return &cli.Command{
		Name:  "bump",
		Usage: "Increment the versionCode in the configured build descriptor file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Override the gradle file path from the config",
			},
		},
		Action: runBump,
	}
}

func runBump(c *cli.Context) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	gradleFile := cfg.Project.GradleFile
	if override := c.String("file"); override != "" {
		gradleFile = override
	}

	newCode, err := version.Bump(gradleFile)
	if err != nil {
		return err
	}

	fmt.Printf("Incremented versionCode in %s to %d\n", gradleFile, newCode)
	return nil
}
