// Package container detects whether bljconfig runs inside a container.
package container

import (
	"os"
	"path/filepath"
	"strconv"
)

// Environment inspects marker files under Root and the environment.
type Environment struct {
	// Root is the filesystem root to inspect, "/" when empty.
	Root   string
	Getenv func(string) string
}

// IsContainerized reports whether any container marker is present.
func (e *Environment) IsContainerized() bool {
	root := e.Root
	if root == "" {
		root = "/"
	}
	getenv := e.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	for _, marker := range []string{".dockerenv", "run/.containerenv"} {
		if _, err := os.Stat(filepath.Join(root, marker)); err == nil {
			return true
		}
	}
	if v, err := strconv.ParseBool(getenv("BLJ_DOCKER")); err == nil && v {
		return true
	}
	return getenv("container") != ""
}
