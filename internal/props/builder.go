package props

import (
	"errors"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

const (
	// InternalModules holds the comma separated modules declared in the entry file.
	InternalModules = "internal.bljModules"
	// InternalDefaultConfig holds the comma separated default config files
	// consumed by a run, excluding the entry file.
	InternalDefaultConfig = "internal.defaultConfig"
)

// Detector reports whether the process runs inside an isolated container.
type Detector interface {
	IsContainerized() bool
}

// Builder resolves an entry config file together with its standard config,
// the container platform overlay and all transitive default config files.
//
// Layers are applied in this order, each one overriding the ones before:
//
//  1. StandardConfig, if it exists
//  2. PlatformConfig, only inside a container
//  3. default config files, deepest first
//  4. the entry file
type Builder struct {
	StandardConfig string
	PlatformConfig string
	Files          FileResolver
	Container      Detector
	Logger         *slog.Logger
}

// Resolved is the flattened result of one resolution run.
type Resolved struct {
	Entry    string
	RunID    uuid.UUID
	Values   map[string]string
	Modules  []string
	Defaults []string
	Files    []LedgerEntry

	origins map[string]string
}

// Get returns the effective value of key.
func (r *Resolved) Get(key string) (string, bool) {
	v, ok := r.Values[key]
	return v, ok
}

// Origin returns the config file that supplied the effective value of key.
// Derived keys have no origin.
func (r *Resolved) Origin(key string) (string, bool) {
	o, ok := r.origins[key]
	return o, ok
}

// Keys returns every key, sorted.
func (r *Resolved) Keys() []string {
	keys := make([]string, 0, len(r.Values))
	for k := range r.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Build resolves entry. Every call uses a fresh Ledger; on failure no partial
// configuration is returned.
func (b *Builder) Build(entry string) (*Resolved, error) {
	ledger := NewLedger()
	log := b.logger().With("run", ledger.RunID.String())

	if !isRegularFile(entry) {
		return nil, &PathNotFoundError{Path: entry}
	}
	entry = canonical(entry)
	log.Info("import config properties", "entry", entry)

	// The entry file is never a base layer; it always loads last.
	var stack Stack
	if path, ok := existingFile(b.StandardConfig); ok && path != entry && !ledger.Contains(path) {
		if _, err := b.push(log, ledger, &stack, path); err != nil {
			return nil, err
		}
	}

	if b.Container != nil && b.Container.IsContainerized() {
		if path, ok := existingFile(b.PlatformConfig); ok && path != entry && !ledger.Contains(path) {
			if _, err := b.push(log, ledger, &stack, path); err != nil {
				return nil, err
			}
		}
	}

	resolver := Resolver{Files: b.Files}
	defaults, err := resolver.Defaults(ledger, entry)
	if err != nil {
		return nil, err
	}
	for _, path := range defaults {
		if _, err := b.push(log, ledger, &stack, path); err != nil && !errors.Is(err, errAlreadyLoaded) {
			return nil, err
		}
	}

	entryLayer, err := b.push(log, ledger, &stack, entry)
	if err != nil {
		return nil, err
	}
	for _, k := range entryLayer.Keys() {
		v, _ := entryLayer.Get(k)
		log.Debug("project config", "key", k, "value", v)
	}

	modules, err := DeclaredModules(entry)
	if err != nil {
		return nil, err
	}
	for _, m := range modules {
		log.Info("configured module", "module", m)
	}

	values, origins := stack.Flatten()
	resolved := &Resolved{
		Entry:   entry,
		RunID:   ledger.RunID,
		Values:  values,
		Modules: modules,
		Files:   ledger.Entries(),
		origins: origins,
	}

	values[InternalModules] = strings.Join(modules, ",")
	if ledger.Len() > 1 {
		for _, e := range resolved.Files {
			if e.Path != entry {
				resolved.Defaults = append(resolved.Defaults, e.Path)
			}
		}
		values[InternalDefaultConfig] = strings.Join(resolved.Defaults, ",")
	}
	delete(origins, InternalModules)
	delete(origins, InternalDefaultConfig)

	return resolved, nil
}

// errAlreadyLoaded is returned by push for a file the ledger already holds.
var errAlreadyLoaded = errors.New("config already loaded")

// push loads path, records it in the ledger and places it on top of stack.
// A file is read at most once per run.
func (b *Builder) push(log *slog.Logger, ledger *Ledger, stack *Stack, path string) (*Layer, error) {
	if ledger.Contains(path) {
		log.Debug("skip config", "path", path, "reason", errAlreadyLoaded)
		return nil, errAlreadyLoaded
	}

	entries, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	seq, ok := ledger.Record(path)
	if !ok {
		return nil, errAlreadyLoaded
	}
	log.Info("load config", "seq", seq, "path", path)

	layer := newLayer(path, seq, entries)
	stack.Push(layer)
	return layer, nil
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}

func existingFile(path string) (string, bool) {
	if path == "" || !isRegularFile(path) {
		return "", false
	}
	return canonical(path), true
}

// canonical returns the absolute, symlink free form of path, which is the
// identity of a config file within a run.
func canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		return real
	}
	return abs
}
