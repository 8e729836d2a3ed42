package props

import (
	"errors"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/biolockj/bljconfig/internal/locate"
)

var errDisk = errors.New("input/output error")

// brokenFile yields some content and then fails.
type brokenFile struct {
	r io.Reader
}

func (f *brokenFile) Read(p []byte) (int, error) {
	n, err := f.r.Read(p)
	if err == io.EOF {
		return n, errDisk
	}
	return n, err
}

func (f *brokenFile) Close() error { return nil }

// failReads makes opening the given config files succeed but reading them
// fail. With no paths every file fails.
func failReads(t *testing.T, paths ...string) {
	t.Helper()
	orig := openFile
	openFile = func(path string) (io.ReadCloser, error) {
		if len(paths) == 0 || slices.Contains(paths, path) {
			return &brokenFile{r: strings.NewReader("A=1\n")}, nil
		}
		return orig(path)
	}
	t.Cleanup(func() { openFile = orig })
}

func TestReadError(t *testing.T) {
	dir := writeTree(t, map[string]string{"exists.props": "A=1\n"})

	tests := []struct {
		name       string
		path       string
		target     error
		unreadable bool
	}{
		{name: "existing file", path: filepath.Join(dir, "exists.props"), target: ErrUnreadableFile, unreadable: true},
		{name: "missing file", path: filepath.Join(dir, "missing.props"), target: ErrPathNotFound},
		{name: "directory", path: dir, target: ErrPathNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := readError(tt.path, errDisk)
			if !errors.Is(err, tt.target) {
				t.Fatalf("expected %v, got %v", tt.target, err)
			}

			var unreadable *UnreadableFileError
			if errors.As(err, &unreadable) != tt.unreadable {
				t.Fatalf("expected UnreadableFileError=%v, got %T", tt.unreadable, err)
			}
			if tt.unreadable {
				if unreadable.Path != tt.path {
					t.Errorf("expected path %s, got %s", tt.path, unreadable.Path)
				}
				if errors.Unwrap(err) != errDisk {
					t.Errorf("expected the cause to unwrap, got %v", errors.Unwrap(err))
				}
			}
		})
	}
}

func TestFileReaders_ClassifyReadFailures(t *testing.T) {
	dir := writeTree(t, map[string]string{"entry.props": "A=1\n"})
	resolver := &Resolver{Files: &locate.SearchPath{}}

	readers := map[string]func(string) error{
		"LoadFile": func(p string) error {
			_, err := LoadFile(p)
			return err
		},
		"DirectDefaults": func(p string) error {
			_, err := resolver.DirectDefaults(p)
			return err
		},
		"DeclaredModules": func(p string) error {
			_, err := DeclaredModules(p)
			return err
		},
	}

	tests := []struct {
		name   string
		path   string
		target error
	}{
		{name: "existing file", path: filepath.Join(dir, "entry.props"), target: ErrUnreadableFile},
		{name: "vanished file", path: filepath.Join(dir, "gone.props"), target: ErrPathNotFound},
	}

	for reader, read := range readers {
		for _, tt := range tests {
			t.Run(reader+"/"+tt.name, func(t *testing.T) {
				failReads(t)

				err := read(tt.path)
				if !errors.Is(err, tt.target) {
					t.Fatalf("expected %v, got %v", tt.target, err)
				}
				if tt.target == ErrUnreadableFile && !errors.Is(err, errDisk) {
					t.Errorf("expected the I/O cause in the chain, got %v", err)
				}
			})
		}
	}
}

func TestBuilder_UnreadableDefault(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"entry.props": "pipeline.defaultProps=a.props\n",
		"a.props":     "A=1\n",
	})
	failReads(t, filepath.Join(dir, "a.props"))

	resolved, err := newTestBuilder().Build(filepath.Join(dir, "entry.props"))
	var unreadable *UnreadableFileError
	if !errors.As(err, &unreadable) {
		t.Fatalf("expected UnreadableFileError, got %v", err)
	}
	if unreadable.Path != filepath.Join(dir, "a.props") {
		t.Errorf("expected a.props to be reported, got %s", unreadable.Path)
	}
	if errors.Unwrap(err) != errDisk {
		t.Errorf("expected the cause to unwrap, got %v", errors.Unwrap(err))
	}
	if resolved != nil {
		t.Errorf("expected no partial result, got %+v", resolved)
	}
}
