package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// repoPathRegex allows the characters that show up in blog repository paths:
// alphanumerics, dots, hyphens, underscores, spaces, and segment separators
var repoPathRegex = regexp.MustCompile(`^[a-zA-Z0-9._ /-]+$`)

const maxRepoPathLength = 255

// ValidateRepoPath validates a repository-relative path before it is
// interpolated into a GitHub Contents API URL. Rejects traversal sequences
// and anything that could escape the intended directory.
func ValidateRepoPath(path string) error {
	if path == "" {
		return errors.New("path cannot be empty")
	}
	if len(path) > maxRepoPathLength {
		return fmt.Errorf("path must be %d characters or less", maxRepoPathLength)
	}

	if strings.Contains(path, "..") {
		return errors.New("path must not contain traversal sequences")
	}
	if strings.HasPrefix(path, "/") {
		return errors.New("path must be repository-relative")
	}
	if strings.Contains(path, "//") {
		return errors.New("path must not contain empty segments")
	}

	if !repoPathRegex.MatchString(path) {
		return errors.New("path contains invalid characters")
	}

	return nil
}

// ValidateFileName validates a bare filename (no directory separators)
func ValidateFileName(name string) error {
	if strings.Contains(name, "/") {
		return errors.New("filename must not contain path separators")
	}
	return ValidateRepoPath(name)
}
