package props

import (
	"sort"
)

// Layer is the immutable key/value contribution of a single config file.
type Layer struct {
	Source  string
	Seq     int
	entries map[string]string
}

func newLayer(source string, seq int, entries map[string]string) *Layer {
	copied := make(map[string]string, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return &Layer{Source: source, Seq: seq, entries: copied}
}

// Get returns the value this layer itself defines for key.
func (l *Layer) Get(key string) (string, bool) {
	v, ok := l.entries[key]
	return v, ok
}

// Keys returns the layer's own keys, sorted.
func (l *Layer) Keys() []string {
	keys := make([]string, 0, len(l.entries))
	for k := range l.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Stack is an ordered list of layers, least specific first. A layer falls
// back to every layer pushed before it; pushing never modifies earlier
// layers.
type Stack struct {
	layers []*Layer
}

// Push places l on top of the stack, giving it the highest precedence.
func (s *Stack) Push(l *Layer) {
	s.layers = append(s.layers, l)
}

// Lookup walks from the most specific layer down and returns the first value
// found for key, together with the layer that supplied it.
func (s *Stack) Lookup(key string) (string, *Layer, bool) {
	for i := len(s.layers) - 1; i >= 0; i-- {
		if v, ok := s.layers[i].Get(key); ok {
			return v, s.layers[i], true
		}
	}
	return "", nil, false
}

// Flatten materializes the effective value of every key by looking it up
// once. The second map records the source file of each effective value.
func (s *Stack) Flatten() (values map[string]string, origins map[string]string) {
	values = map[string]string{}
	origins = map[string]string{}
	for _, l := range s.layers {
		for k := range l.entries {
			if _, done := values[k]; done {
				continue
			}
			v, src, _ := s.Lookup(k)
			values[k] = v
			origins[k] = src.Source
		}
	}
	return values, origins
}
