package content

import (
	"path"
	"strings"
)

// DefaultExcludePatterns contains paths skipped while loading content:
// dependency directories and hidden files or directories.
var DefaultExcludePatterns = []string{
	"**/node_modules/**",
	"**/.*/**",
	"**/.*",
}

// MatchGlob matches a slash separated path against a glob pattern.
// A "**" segment matches any number of path segments, including none.
// Other segments follow path.Match semantics and never cross a "/".
func MatchGlob(pattern, name string) bool {
	return matchSegments(strings.Split(pattern, "/"), strings.Split(name, "/"))
}

func matchSegments(pattern, name []string) bool {
	for len(pattern) > 0 {
		if pattern[0] == "**" {
			rest := pattern[1:]
			for i := 0; i <= len(name); i++ {
				if matchSegments(rest, name[i:]) {
					return true
				}
			}
			return false
		}

		if len(name) == 0 {
			return false
		}
		matched, err := path.Match(pattern[0], name[0])
		if err != nil || !matched {
			return false
		}
		pattern, name = pattern[1:], name[1:]
	}
	return len(name) == 0
}

// ValidateGlob reports whether pattern is a well-formed glob.
func ValidateGlob(pattern string) error {
	if pattern == "" {
		return path.ErrBadPattern
	}
	for _, segment := range strings.Split(pattern, "/") {
		if _, err := path.Match(segment, ""); err != nil {
			return err
		}
	}
	return nil
}

// isExcluded returns true if the path matches any of the exclusion patterns.
func isExcluded(patterns []string, relPath string) bool {
	for _, pattern := range patterns {
		if MatchGlob(pattern, relPath) {
			return true
		}
	}
	return false
}
