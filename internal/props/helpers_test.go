package props

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/biolockj/bljconfig/internal/locate"
)

// writeTree creates files under a fresh temporary directory and returns the
// canonical directory path.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

// newTestBuilder returns a Builder with no standard config that resolves
// references beside the referencing file.
func newTestBuilder() *Builder {
	return &Builder{
		Files: &locate.SearchPath{Getenv: func(string) string { return "" }},
	}
}

type fixedDetector bool

func (d fixedDetector) IsContainerized() bool { return bool(d) }
