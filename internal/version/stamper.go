package version

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

// ErrPatternNotFound indicates the descriptor file has no versionCode entry.
var ErrPatternNotFound = errors.New("versionCode pattern not found")

// versionCodePattern matches "versionCode 12" and "versionCode = 12".
// Group 1 is the prefix up to the digits, group 2 is the integer itself.
var versionCodePattern = regexp.MustCompile(`(\bversionCode\s+=?\s*)(\d+)`)

// Bump increments the first versionCode integer in the file at path by one,
// preserving every other byte. The rewrite goes through a temp file and rename
// so an interrupted run cannot leave a half-written descriptor. Returns the
// new version code.
func Bump(path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, fmt.Errorf("gradle file not found at %s; run relgen from the root of your project", path)
		}
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	loc := versionCodePattern.FindSubmatchIndex(content)
	if loc == nil {
		return 0, fmt.Errorf("%w in %s; ensure the file has a versionCode line (e.g., versionCode 1)", ErrPatternNotFound, path)
	}

	// loc[4]:loc[5] bounds the digits capture group.
	current, err := strconv.Atoi(string(content[loc[4]:loc[5]]))
	if err != nil {
		return 0, fmt.Errorf("parsing versionCode in %s: %w", path, err)
	}
	next := current + 1

	var updated []byte
	updated = append(updated, content[:loc[4]]...)
	updated = append(updated, []byte(strconv.Itoa(next))...)
	updated = append(updated, content[loc[5]:]...)

	if err := writeAtomic(path, updated); err != nil {
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}

	return next, nil
}

// writeAtomic writes data to a temp file next to path and renames it over the
// original, keeping the original's permission bits.
func writeAtomic(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Chmod(tmpName, info.Mode()); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
