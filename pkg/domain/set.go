package domain

import "strings"

// Set is an insertion-ordered collection of unique names.
type Set []string

// NewSet builds a Set from values, trimming blanks and dropping empty strings
// and duplicates. The first occurrence of a value wins.
func NewSet(values ...string) Set {
	seen := make(map[string]struct{}, len(values))
	out := make(Set, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// Lookup returns a membership index for s.
func (s Set) Lookup() map[string]struct{} {
	idx := make(map[string]struct{}, len(s))
	for _, v := range s {
		idx[v] = struct{}{}
	}

	return idx
}

// Contains reports whether v is a member of s.
func (s Set) Contains(v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}

	return false
}
