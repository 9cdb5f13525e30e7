package model

import (
	"slices"

	json "github.com/goccy/go-json"
)

// StringSet is an unordered set of tags. It serializes as a sorted list so
// equal sets always encode identically.
type StringSet map[string]struct{}

func NewStringSet(items ...string) StringSet {
	s := make(StringSet, len(items))
	s.Add(items...)
	return s
}

func (s StringSet) Add(items ...string) {
	for _, it := range items {
		s[it] = struct{}{}
	}
}

func (s StringSet) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Intersects reports whether any of items belongs to the set.
func (s StringSet) Intersects(items []string) bool {
	for _, it := range items {
		if s.Has(it) {
			return true
		}
	}
	return false
}

// Overlap counts distinct items that belong to the set.
func (s StringSet) Overlap(items []string) int {
	seen := make(map[string]struct{}, len(items))
	n := 0
	for _, it := range items {
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}
		if s.Has(it) {
			n++
		}
	}
	return n
}

func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

func (s StringSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *StringSet) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*s = NewStringSet(items...)
	return nil
}
