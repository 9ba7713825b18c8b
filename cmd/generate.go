package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/relgen/internal/ai"
	"github.com/relgen/internal/ai/gemini"
	"github.com/relgen/internal/config"
	"github.com/relgen/internal/gitlog"
	"github.com/relgen/internal/notes"
	"github.com/relgen/internal/prompt"
	"github.com/relgen/internal/ui"
	"github.com/relgen/internal/version"
)

// GenerateCommand returns the generate command
func GenerateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate multi-language release notes from recent commits and bump the versionCode",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "commits",
				Aliases: []string{"n"},
				Usage:   "Number of recent commits to use (skips the interactive prompt)",
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"d"},
				Usage:   "Run without bumping the version or writing the output file",
			},
			&cli.BoolFlag{
				Name:  "bump-after-notes",
				Usage: "Bump the versionCode only after notes are generated successfully",
			},
		},
		Action: runGenerate,
	}
}

func runGenerate(c *cli.Context) error {
	// Load configuration
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Validate configuration
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Resolve credential before any other work
	apiKey, err := cfg.ResolveAPIKey()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	generator, err := gemini.New(ctx, gemini.Config{
		APIKey:      apiKey,
		Model:       cfg.AI.Gemini.Model,
		Temperature: cfg.AI.Gemini.Temperature,
		MaxTokens:   cfg.AI.Gemini.MaxTokens,
	})
	if err != nil {
		return fmt.Errorf("failed to configure the generation client: %w", err)
	}
	log.Info().Str("model", cfg.AI.Gemini.Model).Msg("Gemini API configured")

	numCommits, err := resolveCommitCount(c, cfg.Git.DefaultCommits, cfg.Git.MaxCommits)
	if err != nil {
		return err
	}

	bumpAfterNotes := cfg.Project.BumpAfterNotes || c.Bool("bump-after-notes")

	commits, err := gitlog.Subjects(numCommits)
	if err != nil {
		return err
	}
	if len(commits) == 0 {
		return errors.New("no commit messages found or fetched; cannot generate release notes")
	}

	return runGeneratePipeline(ctx, cfg, generator, commits, c.Bool("dry-run"), bumpAfterNotes)
}

// resolveCommitCount takes the commit count from the --commits flag when it
// was passed (any value, including zero, is validated rather than ignored)
// and falls back to the interactive prompt otherwise.
func resolveCommitCount(c *cli.Context, defaultCount, maxCount int) (int, error) {
	if c.IsSet("commits") {
		n := c.Int("commits")
		if err := ui.ValidateCommitCount(n, maxCount); err != nil {
			return 0, err
		}
		return n, nil
	}
	return ui.AskCommitCount(defaultCount, maxCount)
}

func runGeneratePipeline(
	ctx context.Context,
	cfg *config.Config,
	generator ai.Generator,
	commits []string,
	dryRun bool,
	bumpAfterNotes bool,
) error {
	// The default ordering consumes a build number on every attempted release,
	// even if generation fails afterwards. bumpAfterNotes defers the stamp.
	if !bumpAfterNotes {
		if err := bumpVersion(cfg.Project.GradleFile, dryRun); err != nil {
			return err
		}
	}

	fmt.Printf("Generating and translating release notes (single API call to %s)...\n", generator.Name())
	raw := generator.Generate(ctx, prompt.Build(commits))
	if raw == "" {
		return errors.New("failed to get a valid response from the generation service")
	}

	bundle := notes.Parse(raw)
	if !bundle.HasEnglish() {
		return errors.New("failed to generate essential release notes; check the generation service output")
	}
	bundle = notes.FillMissing(bundle)

	if bumpAfterNotes {
		if err := bumpVersion(cfg.Project.GradleFile, dryRun); err != nil {
			return err
		}
	}

	formatted := notes.Format(bundle)

	if dryRun {
		log.Info().Str("path", cfg.Project.OutputFile).Msg("Dry run: skipping output file write")
	} else if err := os.WriteFile(cfg.Project.OutputFile, []byte(formatted), 0644); err != nil {
		// Non-fatal: the notes are still printed below.
		log.Error().Err(err).Str("path", cfg.Project.OutputFile).Msg("Error writing release notes file")
	} else {
		fmt.Printf("\nRelease notes written to %s\n", cfg.Project.OutputFile)
	}

	fmt.Printf("\n--- Play Store Release Notes ---\n%s\n--------------------------------\n", formatted)
	return nil
}

func bumpVersion(gradleFile string, dryRun bool) error {
	if dryRun {
		log.Info().Str("path", gradleFile).Msg("Dry run: skipping versionCode bump")
		return nil
	}
	newCode, err := version.Bump(gradleFile)
	if err != nil {
		return err
	}
	log.Info().Int("version_code", newCode).Str("path", gradleFile).Msg("Incremented versionCode")
	return nil
}
