// Package locate finds config files referenced from other config files.
package locate

import (
	"os"
	"path/filepath"
	"strings"
)

// SearchPath resolves file references. A relative reference is looked up
// beside the referencing file, then in each of Dirs, then in the working
// directory.
type SearchPath struct {
	Dirs   []string
	Getenv func(string) string
}

// Resolve returns the canonical path of reference, or false if no regular
// file matches.
func (s *SearchPath) Resolve(reference, referrer string) (string, bool) {
	ref := s.Expand(reference)
	if ref == "" {
		return "", false
	}

	if filepath.IsAbs(ref) {
		return found(ref)
	}

	var candidates []string
	if referrer != "" {
		candidates = append(candidates, filepath.Join(filepath.Dir(referrer), ref))
	}
	for _, dir := range s.Dirs {
		if dir = s.Expand(dir); dir != "" {
			candidates = append(candidates, filepath.Join(dir, ref))
		}
	}
	candidates = append(candidates, ref)

	for _, c := range candidates {
		if path, ok := found(c); ok {
			return path, true
		}
	}
	return "", false
}

// Expand replaces a leading ~ with the home directory and substitutes $VAR
// and ${VAR}.
func (s *SearchPath) Expand(path string) string {
	getenv := s.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	path = strings.TrimSpace(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home := getenv("HOME"); home != "" {
			path = home + path[1:]
		}
	}
	return os.Expand(path, getenv)
}

func found(path string) (string, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real, true
	}
	return abs, true
}
