package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config represents the application configuration
type Config struct {
	Project struct {
		GradleFile     string `koanf:"gradle_file"`
		OutputFile     string `koanf:"output_file"`
		BumpAfterNotes bool   `koanf:"bump_after_notes"`
	} `koanf:"project"`

	Git struct {
		DefaultCommits int `koanf:"default_commits"`
		MaxCommits     int `koanf:"max_commits"`
	} `koanf:"git"`

	AI struct {
		Gemini struct {
			APIKey      string  `koanf:"api_key"`
			Model       string  `koanf:"model"`
			Temperature float64 `koanf:"temperature"`
			MaxTokens   int     `koanf:"max_tokens"`
		} `koanf:"gemini"`
	} `koanf:"ai"`
}

// LoadConfig loads the configuration from a file
func LoadConfig(configPath string) (*Config, error) {
	var k = koanf.New(".")

	// Set up default configuration
	k.Load(confmap.Provider(map[string]interface{}{
		"project.gradle_file":  "android/app/build.gradle",
		"project.output_file":  "latest-release-note.txt",
		"git.default_commits":  5,
		"git.max_commits":      49,
		"ai.gemini.model":      "gemini-1.5-flash",
		"ai.gemini.max_tokens": 8192,
	}, "."), nil)

	// Load from TOML file if it exists
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
				return nil, fmt.Errorf("error loading config: %w", err)
			}
		}
	} else {
		defaultPaths := []string{"./relgen.toml", "$HOME/.relgen.toml"}
		for _, path := range defaultPaths {
			path = os.ExpandEnv(path)
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), toml.Parser()); err == nil {
					break
				}
			}
		}
	}

	// Load from environment variables with prefix RELGEN_. A double
	// underscore separates path segments so keys that themselves contain
	// underscores stay reachable: RELGEN_GIT__MAX_COMMITS -> git.max_commits.
	k.Load(env.Provider("RELGEN_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "RELGEN_")), "__", ".", -1)
	}), nil)

	// Unmarshal into Config struct
	var config Config
	if err := k.Unmarshal("", &config); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &config, nil
}

// ResolveAPIKey returns the Gemini credential, preferring the config file and
// falling back to the GEMINI_API_KEY environment variable.
func (c *Config) ResolveAPIKey() (string, error) {
	if c.AI.Gemini.APIKey != "" {
		return c.AI.Gemini.APIKey, nil
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("GEMINI_API_KEY environment variable not set; set it with your Google Gemini API key or add ai.gemini.api_key to the config file")
}

// InitConfig initializes a new configuration file
func InitConfig(configPath string) error {
	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("configuration file already exists at %s", configPath)
	}

	sampleConfig := `# relgen Configuration
# Any key can be overridden from the environment with the RELGEN_ prefix and
# a double underscore between segments, e.g. RELGEN_GIT__MAX_COMMITS=20.

[project]
gradle_file = "android/app/build.gradle"
output_file = "latest-release-note.txt"
# Set to true to bump versionCode only after notes are generated successfully.
bump_after_notes = false

[git]
default_commits = 5
max_commits = 49

[ai.gemini]
# Leave api_key empty to read it from the GEMINI_API_KEY environment variable.
api_key = ""
model = "gemini-1.5-flash"
temperature = 0.2
max_tokens = 8192
`

	return os.WriteFile(configPath, []byte(sampleConfig), 0644)
}

// Validate validates the configuration
func Validate(config *Config) error {
	if config.Project.GradleFile == "" {
		return fmt.Errorf("project gradle_file is required")
	}

	if config.Project.OutputFile == "" {
		return fmt.Errorf("project output_file is required")
	}

	if config.Git.MaxCommits < 1 {
		return fmt.Errorf("git max_commits must be at least 1")
	}

	if config.Git.DefaultCommits < 1 || config.Git.DefaultCommits > config.Git.MaxCommits {
		return fmt.Errorf("git default_commits must be between 1 and %d", config.Git.MaxCommits)
	}

	if config.AI.Gemini.Model == "" {
		return fmt.Errorf("gemini model is required")
	}

	return nil
}
