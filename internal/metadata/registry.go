// Package metadata describes known BioLockJ configuration properties.
package metadata

import (
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// Type classifies the value of a property.
type Type string

const (
	String     Type = "string"
	Boolean    Type = "boolean"
	FilePath   Type = "file path"
	Executable Type = "executable"
	List       Type = "list"
)

const (
	// ExePrefix marks properties holding the path of a local executable.
	ExePrefix = "exe."
	// HostExePrefix marks properties holding the host path of an executable.
	HostExePrefix = "hostExe."
)

// ErrMetadataInconsistency is logged when the description and type tables
// name different properties.
var ErrMetadataInconsistency = errors.New("property list in descriptions map and type map are not identical")

// Property is the metadata of one property.
type Property struct {
	Name        string `json:"name"`
	Type        Type   `json:"type"`
	Description string `json:"description"`
}

// Registry holds property metadata. The tables are built on first use and
// never change afterwards.
type Registry struct {
	descriptions func() map[string]string
	types        func() map[string]Type

	once     sync.Once
	descMap  map[string]string
	typeMap  map[string]Type
	logger   *slog.Logger
	mismatch bool
}

// NewRegistry returns a Registry whose tables are produced by the given
// functions on first access.
func NewRegistry(descriptions func() map[string]string, types func() map[string]Type, logger *slog.Logger) *Registry {
	return &Registry{descriptions: descriptions, types: types, logger: logger}
}

var defaultRegistry = NewRegistry(builtinDescriptions, builtinTypes, nil)

// Default returns the registry of built-in BioLockJ properties.
func Default() *Registry {
	return defaultRegistry
}

func (r *Registry) init() {
	r.once.Do(func() {
		r.descMap = r.descriptions()
		r.typeMap = r.types()

		if !sameKeys(r.descMap, r.typeMap) {
			r.mismatch = true
			logger := r.logger
			if logger == nil {
				logger = slog.Default()
			}
			logger.Warn(ErrMetadataInconsistency.Error(),
				"descriptions", len(r.descMap), "types", len(r.typeMap))
		}
	})
}

// Consistent reports whether both tables name the same properties.
func (r *Registry) Consistent() bool {
	r.init()
	return !r.mismatch
}

// Lookup returns the metadata of name. Executable properties are recognized by
// prefix and need no table entry.
func (r *Registry) Lookup(name string) (Property, bool) {
	if rest, ok := strings.CutPrefix(name, ExePrefix); ok {
		return Property{Name: name, Type: Executable, Description: `Path for the "` + rest + `" executable.`}, true
	}
	if rest, ok := strings.CutPrefix(name, HostExePrefix); ok {
		return Property{Name: name, Type: Executable, Description: `Host machine path for the "` + rest + `" executable.`}, true
	}

	r.init()
	desc, hasDesc := r.descMap[name]
	typ, hasType := r.typeMap[name]
	if !hasDesc && !hasType {
		return Property{}, false
	}
	return Property{Name: name, Type: typ, Description: desc}, true
}

// Type returns the type of name, or "" if unknown.
func (r *Registry) Type(name string) Type {
	p, _ := r.Lookup(name)
	return p.Type
}

// Description returns the description of name, or "" if unknown.
func (r *Registry) Description(name string) string {
	p, _ := r.Lookup(name)
	return p.Description
}

// Names returns every property named in either table, sorted.
func (r *Registry) Names() []string {
	r.init()
	set := map[string]struct{}{}
	for k := range r.descMap {
		set[k] = struct{}{}
	}
	for k := range r.typeMap {
		set[k] = struct{}{}
	}
	names := make([]string, 0, len(set))
	for k := range set {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func sameKeys(desc map[string]string, types map[string]Type) bool {
	if len(desc) != len(types) {
		return false
	}
	for k := range desc {
		if _, ok := types[k]; !ok {
			return false
		}
	}
	return true
}
