package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrCancelled indicates the user cancelled the interactive prompt (Ctrl-C or
// end-of-input).
var ErrCancelled = errors.New("input cancelled")

// AskCommitCount prompts for the number of recent commits to use. Blank input
// returns def; non-integer or out-of-range input re-prompts with a validation
// message. Valid range is 1..max inclusive.
func AskCommitCount(def, max int) (int, error) {
	q := &survey.Input{
		Message: "Number of last commits to use for release notes:",
		Default: strconv.Itoa(def),
	}

	var answer string
	err := survey.AskOne(q, &answer, survey.WithValidator(commitCountValidator(max)))
	if err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return 0, ErrCancelled
		}
		return 0, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, fmt.Errorf("invalid commit count %q: %w", answer, err)
	}
	return n, nil
}

func commitCountValidator(max int) survey.Validator {
	return func(ans interface{}) error {
		s, ok := ans.(string)
		if !ok {
			return fmt.Errorf("unexpected answer type")
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("invalid input, please enter a whole number")
		}
		if n < 1 || n > max {
			return fmt.Errorf("please enter a positive number (1-%d)", max)
		}
		return nil
	}
}

// ValidateCommitCount checks a commit count supplied via flag against the
// same bounds as the interactive prompt.
func ValidateCommitCount(n, max int) error {
	if n < 1 || n > max {
		return fmt.Errorf("commit count must be between 1 and %d, got %d", max, n)
	}
	return nil
}
