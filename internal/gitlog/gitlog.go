package gitlog

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrGitNotFound indicates the git executable is not available on PATH.
var ErrGitNotFound = errors.New("'git' command not found; make sure Git is installed and in your PATH")

// Subjects returns the subject lines of the last n commits, newest first,
// with blank lines removed. n <= 0 returns an empty slice without invoking git.
func Subjects(n int) ([]string, error) {
	if n <= 0 {
		log.Error().Int("count", n).Msg("Number of commits must be positive")
		return nil, nil
	}

	cmd := exec.Command("git", "log", fmt.Sprintf("-%d", n), "--pretty=format:%s")
	out, err := cmd.Output()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, ErrGitNotFound
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("git log failed: %w (stderr: %s); are you in a git repository with commits?",
				err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("git log failed: %w", err)
	}

	subjects := parseSubjects(string(out))
	if len(subjects) == 0 {
		log.Warn().Int("count", n).Msg("No non-empty commit messages found")
		return subjects, nil
	}

	log.Info().Int("fetched", len(subjects)).Msg("Fetched commit messages")
	return subjects, nil
}

// parseSubjects splits raw git log output into trimmed, non-blank subject lines.
func parseSubjects(out string) []string {
	var subjects []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			subjects = append(subjects, line)
		}
	}
	return subjects
}
