package buildsettings

import (
	"fmt"
	"sort"
)

// Settings maps build setting keys to values. Setting an existing key
// replaces its value.
type Settings struct {
	values map[string]Value
}

// New returns empty settings.
func New() *Settings {
	return &Settings{values: map[string]Value{}}
}

// FromMap converts decoded configuration into settings.
func FromMap(m map[string]any) (*Settings, error) {
	s := New()
	for _, key := range sortedKeys(m) {
		v, err := FromAny(m[key])
		if err != nil {
			return nil, fmt.Errorf("build setting %s: %w", key, err)
		}
		s.Set(key, v)
	}
	return s, nil
}

// Set stores v under key, replacing any previous value.
func (s *Settings) Set(key string, v Value) *Settings {
	if s.values == nil {
		s.values = map[string]Value{}
	}
	s.values[key] = v
	return s
}

// Get returns the value stored under key.
func (s *Settings) Get(key string) (Value, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Delete removes key.
func (s *Settings) Delete(key string) {
	delete(s.values, key)
}

// Len returns the number of keys.
func (s *Settings) Len() int {
	return len(s.values)
}

// Keys returns all keys in sorted order.
func (s *Settings) Keys() []string {
	return sortedKeys(s.values)
}

// Merge copies every entry of other into s. On collision the value from
// other wins.
func (s *Settings) Merge(other *Settings) *Settings {
	if other == nil {
		return s
	}
	for k, v := range other.values {
		s.Set(k, v)
	}
	return s
}

// Clone returns an independent copy.
func (s *Settings) Clone() *Settings {
	return New().Merge(s)
}

// Merged layers every set on top of the previous ones, last write winning.
func Merged(layers ...*Settings) *Settings {
	out := New()
	for _, l := range layers {
		out.Merge(l)
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
